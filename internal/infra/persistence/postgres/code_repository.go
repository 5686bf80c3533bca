package postgres

import (
	"context"
	"time"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/infra/persistence/model"
	"aunerarroz/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// codeRepository implements the repository.CodeRepository interface.
type codeRepository struct {
	fx.In

	q *query.Query
}

// NewCodeRepository is the constructor for codeRepository.
func NewCodeRepository(db *gorm.DB) repository.CodeRepository {
	return &codeRepository{
		q: query.Use(db),
	}
}

// CreateCode inserts a new unconsumed code. A clash with another unconsumed
// code of the same text is reported as ErrDuplicateCode without aborting
// the surrounding transaction.
func (repo *codeRepository) CreateCode(ctx context.Context, code *entity.RedemptionCode) error {
	codeM := &model.PointsCodeModel{
		ID:   code.ID,
		Code: code.Code,
		Type: string(code.Kind),
	}

	// gen's Create does not report RowsAffected, which DO NOTHING needs.
	result := repo.q.PointsCodeModel.WithContext(ctx).
		UnderlyingDB().
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(codeM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCode
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create points code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateCode
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// ConsumeCode flips an unconsumed code to consumed in a single conditional
// UPDATE. Of two concurrent callers exactly one gets the row back.
func (repo *codeRepository) ConsumeCode(ctx context.Context, code string, userID uuid.UUID, at time.Time) (*entity.RedemptionCode, error) {
	var codeM model.PointsCodeModel

	c := repo.q.PointsCodeModel
	result, err := c.WithContext(ctx).
		Returning(&codeM).
		Where(c.Code.Eq(code), c.Used.Is(false)).
		UpdateColumnSimple(
			c.Used.Value(true),
			c.UsedBy.Value(userID),
			c.UsedAt.Value(at),
		)

	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to consume points code")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCodeNotFound
	}

	return toCodeDomain(&codeM), nil
}

// FindByID retrieves a code by its unique ID.
func (repo *codeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RedemptionCode, error) {
	codeM, err := repo.q.PointsCodeModel.WithContext(ctx).
		Where(repo.q.PointsCodeModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find points code by ID")
	}

	return toCodeDomain(codeM), nil
}

// List returns codes newest first.
func (repo *codeRepository) List(ctx context.Context, filter repository.CodeFilter) ([]*entity.RedemptionCode, error) {
	c := repo.q.PointsCodeModel
	do := c.WithContext(ctx).Order(c.CreatedAt.Desc())
	if filter.Kind != "" {
		do = do.Where(c.Type.Eq(string(filter.Kind)))
	}
	if filter.UnusedOnly {
		do = do.Where(c.Used.Is(false))
	}
	if filter.Limit > 0 {
		do = do.Limit(filter.Limit)
	}

	codeModels, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list points codes")
	}

	codes := make([]*entity.RedemptionCode, 0, len(codeModels))
	for _, codeM := range codeModels {
		codes = append(codes, toCodeDomain(codeM))
	}

	return codes, nil
}

// CountUnused reports how many unconsumed codes exist per kind.
func (repo *codeRepository) CountUnused(ctx context.Context) (map[entity.CodeKind]int, error) {
	var rows []struct {
		Type  string
		Count int
	}

	c := repo.q.PointsCodeModel
	if err := c.WithContext(ctx).
		Select(c.Type, c.ID.Count().As("count")).
		Where(c.Used.Is(false)).
		Group(c.Type).
		Scan(&rows); err != nil {
		return nil, errors.Wrap(err, "failed to count unused points codes")
	}

	counts := map[entity.CodeKind]int{
		entity.CodeKindVisit:    0,
		entity.CodeKindReferral: 0,
	}
	for _, row := range rows {
		counts[entity.CodeKind(row.Type)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toCodeDomain(data *model.PointsCodeModel) *entity.RedemptionCode {
	if data == nil {
		return nil
	}

	return &entity.RedemptionCode{
		ID:         data.ID,
		Code:       data.Code,
		Kind:       entity.CodeKind(data.Type),
		Consumed:   data.Used,
		ConsumedBy: data.UsedBy,
		ConsumedAt: data.UsedAt,
		CreatedAt:  data.CreatedAt,
	}
}
