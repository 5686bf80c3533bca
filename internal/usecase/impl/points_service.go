package impl

import (
	"context"
	"log/slog"
	"time"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PointsServiceParams holds dependencies for the points service, injected by Fx.
type PointsServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type pointsService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	policy    entity.PointsPolicy
	now       func() time.Time
}

// NewPointsService is the constructor for pointsService.
func NewPointsService(params PointsServiceParams) usecase.PointsUsecase {
	return &pointsService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
		policy:    policyFromConfig(params.Config),
		now:       time.Now,
	}
}

// policyFromConfig reads the loyalty constants, keeping the program defaults
// for anything unset.
func policyFromConfig(cfg *config.Config) entity.PointsPolicy {
	policy := entity.PointsPolicy{
		PointsPerVisit:    50,
		PointsPerReferral: 350,
		MinimumRedeem:     6000,
	}
	if cfg == nil || cfg.Points == nil {
		return policy
	}

	if cfg.Points.PointsPerVisit > 0 {
		policy.PointsPerVisit = cfg.Points.PointsPerVisit
	}
	if cfg.Points.PointsPerReferral > 0 {
		policy.PointsPerReferral = cfg.Points.PointsPerReferral
	}
	if cfg.Points.MinimumRedeem > 0 {
		policy.MinimumRedeem = cfg.Points.MinimumRedeem
	}

	return policy
}

func (srv *pointsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Redeem consumes code and credits userID. The consume, the increment and the
// ledger append commit together or not at all.
func (srv *pointsService) Redeem(ctx context.Context, userID uuid.UUID, code string, currentBalance int) (*entity.Redemption, error) {
	kind, ok := entity.ParseCodeKind(code)
	if !ok {
		return nil, domainerrors.ErrInvalidCodeFormat
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	award := srv.policy.Award(kind)

	var newBalance int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consumed, err := repoFactory.CodeRepo().ConsumeCode(ctx, code, userID, srv.now().UTC())
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.ErrInvalidCode
			}

			return errors.Wrap(err, "failed to consume code")
		}

		newBalance, err = repoFactory.UserRepo().IncrementPoints(ctx, userID, award)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to credit points")
		}

		err = repoFactory.LedgerRepo().Append(ctx, &entity.LedgerEntry{
			UserID:      userID,
			Direction:   entity.LedgerEarned,
			Points:      award,
			Code:        consumed.Code,
			Description: kind.Description(),
		})
		if err != nil {
			return errors.Wrap(err, "failed to append ledger entry")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Redemption failed",
			slog.Any("user_id", userID),
			slog.String("code_type", string(kind)),
			slog.Any("error", err),
		)

		return nil, surfaceError(err)
	}

	if currentBalance+award != newBalance {
		srv.log(ctx).Debug("Cached balance was stale",
			slog.Any("user_id", userID),
			slog.Int("cached", currentBalance),
			slog.Int("stored", newBalance-award),
		)
	}

	srv.log(ctx).Info("Code redeemed",
		slog.Any("user_id", userID),
		slog.String("code_type", string(kind)),
		slog.Int("award", award),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventPointsRedeemed, userID.String(), map[string]any{
		"code":        code,
		"type":        string(kind),
		"award":       award,
		"new_balance": newBalance,
	})

	return &entity.Redemption{
		Code:       code,
		Kind:       kind,
		Award:      award,
		NewBalance: newBalance,
		Eligible:   srv.policy.Eligible(newBalance),
	}, nil
}

// RedeemEligibility is true once the balance reaches the minimum, inclusive.
func (srv *pointsService) RedeemEligibility(balance int) bool {
	return srv.policy.Eligible(balance)
}

// GetSummary returns the stored balance with eligibility and progress.
func (srv *pointsService) GetSummary(ctx context.Context, userID uuid.UUID) (*usecase.PointsSummary, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	return &usecase.PointsSummary{
		Balance:  user.Points,
		Eligible: srv.policy.Eligible(user.Points),
		Progress: srv.policy.Progress(user.Points),
		Policy:   srv.policy,
	}, nil
}

// ListTransactions returns the ledger for the last week or month.
func (srv *pointsService) ListTransactions(ctx context.Context, userID uuid.UUID, period entity.StatementPeriod) (*usecase.TransactionStatement, error) {
	switch period {
	case "":
		period = entity.PeriodWeek
	case entity.PeriodWeek, entity.PeriodMonth:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("period must be week or month")
	}

	since := srv.now().UTC().Add(-period.Duration())

	var entries []*entity.LedgerEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		entries, err = repoFactory.LedgerRepo().ListByUserSince(ctx, userID, since)
		if err != nil {
			return errors.Wrap(err, "failed to list ledger entries")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	statement := &usecase.TransactionStatement{
		Period:  period,
		Entries: entries,
	}
	for _, entry := range entries {
		switch entry.Direction {
		case entity.LedgerEarned:
			statement.Earned += entry.Points
		case entity.LedgerUsed:
			statement.Used += entry.Points
		}
	}
	if statement.Entries == nil {
		statement.Entries = []*entity.LedgerEntry{}
	}

	return statement, nil
}
