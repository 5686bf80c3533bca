package repository

import (
	"context"
	"time"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerRepository is append-only storage for points_transactions.
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error

	// ListByUserSince returns entries created at or after since, newest first.
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.LedgerEntry, error)
}
