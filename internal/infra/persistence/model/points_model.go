package model

import (
	"time"

	"github.com/google/uuid"
)

// PointsCodeModel mirrors the 'points_codes' table.
// Code text is unique only among unconsumed rows, so a number can be reissued once used.
type PointsCodeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code      string     `gorm:"type:varchar(5);not null;uniqueIndex:idx_points_codes_unused,where:used = false"`
	Type      string     `gorm:"type:varchar(2);not null"`
	Used      bool       `gorm:"not null;default:false"`
	UsedBy    *uuid.UUID `gorm:"type:uuid"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PointsCodeModel) TableName() string {
	return "points_codes"
}

// PointsTransactionModel mirrors the append-only 'points_transactions' ledger.
type PointsTransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_points_tx_user_created,priority:1"`
	Type        string    `gorm:"type:varchar(10);not null"`
	Points      int       `gorm:"not null"`
	Code        string    `gorm:"type:varchar(5)"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"index:idx_points_tx_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (PointsTransactionModel) TableName() string {
	return "points_transactions"
}
