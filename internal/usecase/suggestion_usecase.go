package usecase

import (
	"context"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewSuggestionInput changes how the restaurant answered a suggestion.
// Nil fields keep their stored value.
type ReviewSuggestionInput struct {
	Liked    *bool
	Response *string
}

// SuggestionUsecase handles the suggestion box.
type SuggestionUsecase interface {
	// SendSuggestion stores a message from the customer, stamped with their email.
	SendSuggestion(ctx context.Context, userID uuid.UUID, message string) (*entity.Suggestion, error)

	// ListMySuggestions returns the customer's suggestions newest first.
	ListMySuggestions(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error)

	// ListSuggestions returns every suggestion newest first, for the back office.
	ListSuggestions(ctx context.Context) ([]*entity.Suggestion, error)

	ReviewSuggestion(ctx context.Context, id uuid.UUID, input ReviewSuggestionInput) (*entity.Suggestion, error)
}
