package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SuggestionServiceParams holds dependencies for the suggestion service, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

type suggestionService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	return &suggestionService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *suggestionService) SendSuggestion(ctx context.Context, userID uuid.UUID, message string) (*entity.Suggestion, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Por favor escribe tu sugerencia")
	}
	if utf8.RuneCountInString(message) > entity.MaxSuggestionLength {
		return nil, domainerrors.ErrValidationFailed.WithMessage("La sugerencia es demasiado larga")
	}

	suggestion := &entity.Suggestion{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		suggestion.UserEmail = user.Email

		return errors.Wrap(repoFactory.SuggestionRepo().Create(ctx, suggestion), "failed to create suggestion")
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Suggestion received", slog.Any("suggestion_id", suggestion.ID), slog.Any("user_id", userID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventSuggestionCreated, suggestion.ID.String(), map[string]any{
		"user_id": userID.String(),
		"email":   suggestion.UserEmail,
	})

	return suggestion, nil
}

func (srv *suggestionService) ListMySuggestions(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error) {
	return srv.list(ctx, func(repo repository.SuggestionRepository) ([]*entity.Suggestion, error) {
		return repo.ListByUser(ctx, userID)
	})
}

func (srv *suggestionService) ListSuggestions(ctx context.Context) ([]*entity.Suggestion, error) {
	return srv.list(ctx, func(repo repository.SuggestionRepository) ([]*entity.Suggestion, error) {
		return repo.List(ctx)
	})
}

func (srv *suggestionService) list(ctx context.Context, fetch func(repository.SuggestionRepository) ([]*entity.Suggestion, error)) ([]*entity.Suggestion, error) {
	var suggestions []*entity.Suggestion
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		suggestions, err = fetch(repoFactory.SuggestionRepo())

		return errors.Wrap(err, "failed to list suggestions")
	})
	if err != nil {
		return nil, surfaceError(err)
	}
	if suggestions == nil {
		suggestions = []*entity.Suggestion{}
	}

	return suggestions, nil
}

// ReviewSuggestion marks a suggestion as liked or stores the reply. A reply
// cannot be cleared once sent.
func (srv *suggestionService) ReviewSuggestion(ctx context.Context, id uuid.UUID, input usecase.ReviewSuggestionInput) (*entity.Suggestion, error) {
	if input.Liked == nil && input.Response == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}
	if input.Response != nil && strings.TrimSpace(*input.Response) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Escribe una respuesta")
	}

	var suggestion *entity.Suggestion
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.SuggestionRepo()

		var err error
		suggestion, err = repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSuggestionNotFound) {
				return domainerrors.ErrSuggestionNotFound
			}

			return errors.Wrap(err, "failed to find suggestion")
		}

		if input.Liked != nil {
			suggestion.Liked = *input.Liked
		}
		if input.Response != nil {
			suggestion.AdminResponse = strings.TrimSpace(*input.Response)
		}

		if err := repo.Review(ctx, id, suggestion.Liked, suggestion.AdminResponse); err != nil {
			if errors.Is(err, repository.ErrSuggestionNotFound) {
				return domainerrors.ErrSuggestionNotFound
			}

			return errors.Wrap(err, "failed to review suggestion")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Suggestion reviewed",
		slog.Any("suggestion_id", id),
		slog.Bool("liked", suggestion.Liked),
		slog.Bool("answered", suggestion.Answered()),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventSuggestionReviewed, id.String(), map[string]any{
		"user_id":  suggestion.UserID.String(),
		"liked":    suggestion.Liked,
		"answered": suggestion.Answered(),
	})

	return suggestion, nil
}
