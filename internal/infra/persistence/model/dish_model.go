package model

import (
	"time"

	"github.com/google/uuid"
)

// DishModel mirrors the 'dishes' table.
type DishModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	Category    string    `gorm:"type:varchar(20);not null;index"`
	ImageURL    string    `gorm:"type:text"`
	VideoURL    string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}
