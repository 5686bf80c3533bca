package postgres

import (
	"context"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// suggestionRepository implements the repository.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository is the constructor for suggestionRepository.
func NewSuggestionRepository(db *gorm.DB) repository.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

func (repo *suggestionRepository) Create(ctx context.Context, suggestion *entity.Suggestion) error {
	suggestionM := fromSuggestionDomain(suggestion)

	if err := repo.db.WithContext(ctx).Create(suggestionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required suggestion information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create suggestion")
	}

	suggestion.ID = suggestionM.ID
	suggestion.CreatedAt = suggestionM.CreatedAt
	suggestion.UpdatedAt = suggestionM.UpdatedAt

	return nil
}

func (repo *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Suggestion, error) {
	var suggestionM model.SuggestionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&suggestionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSuggestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find suggestion by ID")
	}

	return toSuggestionDomain(&suggestionM), nil
}

func (repo *suggestionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Suggestion, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *suggestionRepository) List(ctx context.Context) ([]*entity.Suggestion, error) {
	return repo.list(repo.db.WithContext(ctx))
}

func (repo *suggestionRepository) list(query *gorm.DB) ([]*entity.Suggestion, error) {
	var suggestionModels []*model.SuggestionModel

	if err := query.Order("created_at DESC").Find(&suggestionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suggestions")
	}

	suggestions := make([]*entity.Suggestion, 0, len(suggestionModels))
	for _, suggestionM := range suggestionModels {
		suggestions = append(suggestions, toSuggestionDomain(suggestionM))
	}

	return suggestions, nil
}

func (repo *suggestionRepository) Review(ctx context.Context, id uuid.UUID, liked bool, response string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SuggestionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"liked":          liked,
			"admin_response": response,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to review suggestion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSuggestionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSuggestionDomain(data *model.SuggestionModel) *entity.Suggestion {
	if data == nil {
		return nil
	}

	return &entity.Suggestion{
		ID:            data.ID,
		UserID:        data.UserID,
		UserEmail:     data.UserEmail,
		Message:       data.Message,
		Liked:         data.Liked,
		AdminResponse: data.AdminResponse,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSuggestionDomain(data *entity.Suggestion) *model.SuggestionModel {
	if data == nil {
		return nil
	}

	return &model.SuggestionModel{
		ID:            data.ID,
		UserID:        data.UserID,
		UserEmail:     data.UserEmail,
		Message:       data.Message,
		Liked:         data.Liked,
		AdminResponse: data.AdminResponse,
	}
}
