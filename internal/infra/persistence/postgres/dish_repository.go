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

// dishRepository implements the repository.DishRepository interface.
type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository is the constructor for dishRepository.
func NewDishRepository(db *gorm.DB) repository.DishRepository {
	return &dishRepository{
		db: db,
	}
}

// Create persists a new dish.
func (repo *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Create(dishM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required dish information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// Update overwrites every editable column of an existing dish.
func (repo *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	result := repo.db.WithContext(ctx).
		Model(dishM).
		Select("name", "description", "price", "category", "image_url", "video_url", "active", "updated_at").
		Where("id = ?", dish.ID).
		Updates(dishM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// Delete removes a dish. Orders keep their own copy of name and price.
func (repo *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DishModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete dish")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDishNotFound
	}

	return nil
}

// FindByID retrieves a dish by its unique ID.
func (repo *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dishM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish by ID")
	}

	return toDishDomain(&dishM), nil
}

// FindByIDs loads the given dishes keyed by ID. Missing IDs are simply absent.
func (repo *dishRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Dish, error) {
	dishes := make(map[uuid.UUID]*entity.Dish, len(ids))
	if len(ids) == 0 {
		return dishes, nil
	}

	var dishModels []*model.DishModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dishes by IDs")
	}

	for _, dishM := range dishModels {
		dishes[dishM.ID] = toDishDomain(dishM)
	}

	return dishes, nil
}

// List returns dishes ordered by category then name.
func (repo *dishRepository) List(ctx context.Context, filter repository.DishFilter) ([]*entity.Dish, error) {
	var dishModels []*model.DishModel

	query := repo.db.WithContext(ctx).Order("category ASC, name ASC")
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Find(&dishModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dishes")
	}

	dishes := make([]*entity.Dish, 0, len(dishModels))
	for _, dishM := range dishModels {
		dishes = append(dishes, toDishDomain(dishM))
	}

	return dishes, nil
}

// --- Mapper Functions ---

func toDishDomain(data *model.DishModel) *entity.Dish {
	if data == nil {
		return nil
	}

	return &entity.Dish{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.DishCategory(data.Category),
		ImageURL:    data.ImageURL,
		VideoURL:    data.VideoURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromDishDomain(data *entity.Dish) *model.DishModel {
	if data == nil {
		return nil
	}

	return &model.DishModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    string(data.Category),
		ImageURL:    data.ImageURL,
		VideoURL:    data.VideoURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
