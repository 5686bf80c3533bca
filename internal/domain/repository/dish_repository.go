package repository

import (
	"context"
	"errors"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDishNotFound is returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

// DishFilter narrows List.
type DishFilter struct {
	Category   entity.DishCategory
	ActiveOnly bool
}

// DishRepository persists the menu.
type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error

	Update(ctx context.Context, dish *entity.Dish) error

	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)

	// FindByIDs returns the dishes that exist among ids, keyed by id.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Dish, error)

	List(ctx context.Context, filter DishFilter) ([]*entity.Dish, error)
}
