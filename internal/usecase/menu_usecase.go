package usecase

import (
	"context"
	"io"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// DishInput defines the editable fields of a dish.
type DishInput struct {
	Name        string
	Description string
	Price       int64
	Category    entity.DishCategory
	ImageURL    string
	VideoURL    string
	Active      bool
}

// MediaUploadInput is a file received from the menu editor.
type MediaUploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUploadOutput is where the uploaded file is served from.
type MediaUploadOutput struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// MenuUsecase manages the menu and its media.
type MenuUsecase interface {
	// ListDishes returns active dishes, optionally of one category.
	ListDishes(ctx context.Context, category entity.DishCategory) ([]*entity.Dish, error)

	// ListAllDishes returns every dish including inactive ones, for the menu editor.
	ListAllDishes(ctx context.Context) ([]*entity.Dish, error)

	CreateDish(ctx context.Context, input DishInput) (*entity.Dish, error)

	UpdateDish(ctx context.Context, id uuid.UUID, input DishInput) (*entity.Dish, error)

	DeleteDish(ctx context.Context, id uuid.UUID) error

	UploadMedia(ctx context.Context, kind entity.MediaKind, input MediaUploadInput) (*MediaUploadOutput, error)
}
