package postgres

import (
	"context"
	"time"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Append writes one ledger row. Rows are never updated afterwards.
func (repo *ledgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	entryM := &model.PointsTransactionModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Type:        string(entry.Direction),
		Points:      entry.Points,
		Code:        entry.Code,
		Description: entry.Description,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append points transaction")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByUserSince returns a user's ledger rows created at or after since, newest first.
func (repo *ledgerRepository) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.LedgerEntry, error) {
	var entryModels []*model.PointsTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list points transactions")
	}

	entries := make([]*entity.LedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.LedgerEntry{
			ID:          entryM.ID,
			UserID:      entryM.UserID,
			Direction:   entity.LedgerDirection(entryM.Type),
			Points:      entryM.Points,
			Code:        entryM.Code,
			Description: entryM.Description,
			CreatedAt:   entryM.CreatedAt,
		})
	}

	return entries, nil
}
