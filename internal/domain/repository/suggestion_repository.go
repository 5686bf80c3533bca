package repository

import (
	"context"
	"errors"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSuggestionNotFound is returned when a suggestion is not found.
var ErrSuggestionNotFound = errors.New("suggestion not found")

// SuggestionRepository persists customer suggestions.
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *entity.Suggestion) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error)

	// ListByUser returns the user's suggestions newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error)

	// List returns every suggestion newest first.
	List(ctx context.Context) ([]*entity.Suggestion, error)

	// Review stores the liked flag and the reply.
	Review(ctx context.Context, id uuid.UUID, liked bool, response string) error
}
