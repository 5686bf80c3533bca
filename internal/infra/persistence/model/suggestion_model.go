package model

import (
	"time"

	"github.com/google/uuid"
)

// SuggestionModel mirrors the 'suggestions' table.
type SuggestionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserEmail     string    `gorm:"type:varchar(255);not null"`
	Message       string    `gorm:"type:text;not null"`
	Liked         bool      `gorm:"not null;default:false"`
	AdminResponse string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SuggestionModel) TableName() string {
	return "suggestions"
}
