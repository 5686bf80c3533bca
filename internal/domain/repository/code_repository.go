package repository

import (
	"context"
	"errors"
	"time"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCodeNotFound is returned when no unconsumed code matches.
	ErrCodeNotFound = errors.New("redemption code not found")
	// ErrDuplicateCode is returned when an unconsumed code with the same text exists.
	ErrDuplicateCode = errors.New("redemption code already issued")
)

// CodeFilter narrows ListCodes.
type CodeFilter struct {
	Kind       entity.CodeKind // Empty means any kind.
	UnusedOnly bool
	Limit      int
}

// CodeRepository persists redemption codes.
type CodeRepository interface {
	// CreateCode inserts an unconsumed code. It returns ErrDuplicateCode when
	// the same text is already issued and unconsumed.
	CreateCode(ctx context.Context, code *entity.RedemptionCode) error

	// ConsumeCode marks the unconsumed code with the given text as consumed by
	// userID in a single conditional statement and returns the updated row.
	// Of any number of concurrent callers at most one succeeds; the rest get ErrCodeNotFound.
	ConsumeCode(ctx context.Context, code string, userID uuid.UUID, at time.Time) (*entity.RedemptionCode, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.RedemptionCode, error)

	List(ctx context.Context, filter CodeFilter) ([]*entity.RedemptionCode, error)

	// CountUnused counts unconsumed codes per kind.
	CountUnused(ctx context.Context) (map[entity.CodeKind]int, error)
}
