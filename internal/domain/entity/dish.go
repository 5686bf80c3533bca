package entity

import (
	"time"

	"github.com/google/uuid"
)

// DishCategory groups dishes on the menu.
type DishCategory string

const (
	CategoryMenu  DishCategory = "menu"
	CategoryExtra DishCategory = "adicional"
)

// IsValid checks if the DishCategory is a valid value.
func (c DishCategory) IsValid() bool {
	return c == CategoryMenu || c == CategoryExtra
}

// Dish is a menu item. Price is in whole Colombian pesos.
type Dish struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	Category    DishCategory `json:"category"`
	ImageURL    string       `json:"image_url,omitempty"`
	VideoURL    string       `json:"video_url,omitempty"`
	Active      bool         `json:"active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// MediaKind is the type of file uploaded for a dish.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// IsValid checks if the MediaKind is a valid value.
func (k MediaKind) IsValid() bool {
	return k == MediaImage || k == MediaVideo
}
