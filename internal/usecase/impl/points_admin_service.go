package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/usecase"
	"aunerarroz/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCodeListLimit = 100
	maxCodeListLimit     = 500
	defaultDeductReason  = "Canje de puntos"
)

// PointsAdminServiceParams holds dependencies for the points admin service, injected by Fx.
type PointsAdminServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type pointsAdminService struct {
	txManager   repository.TransactionManager
	qrCode      service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
	policy      entity.PointsPolicy
	batchSize   int
	maxAttempts int

	randomDigits func(n int) (string, error)
	now          func() time.Time
}

// NewPointsAdminService is the constructor for pointsAdminService.
func NewPointsAdminService(params PointsAdminServiceParams) usecase.PointsAdminUsecase {
	srv := &pointsAdminService{
		txManager:    params.TxManager,
		qrCode:       params.QRCode,
		publisher:    params.Publisher,
		logger:       params.Logger,
		policy:       policyFromConfig(params.Config),
		batchSize:    50,
		maxAttempts:  20,
		randomDigits: util.RandomDigits,
		now:          time.Now,
	}
	if params.Config != nil && params.Config.Points != nil {
		if params.Config.Points.CodesPerBatch > 0 {
			srv.batchSize = params.Config.Points.CodesPerBatch
		}
		if params.Config.Points.MaxGenerateAttempts > 0 {
			srv.maxAttempts = params.Config.Points.MaxGenerateAttempts
		}
	}

	return srv
}

func (srv *pointsAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateCodes inserts a full batch or nothing. Each code retries on a
// collision with an unconsumed code up to maxAttempts times.
func (srv *pointsAdminService) GenerateCodes(ctx context.Context, kind entity.CodeKind) ([]*entity.RedemptionCode, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be 3d or 5d")
	}

	codes := make([]*entity.RedemptionCode, 0, srv.batchSize)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		for len(codes) < srv.batchSize {
			code, err := srv.insertUniqueCode(ctx, codeRepo, kind)
			if err != nil {
				return err
			}
			codes = append(codes, code)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to generate codes", slog.String("type", string(kind)), slog.Any("error", err))

		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Codes generated", slog.String("type", string(kind)), slog.Int("count", len(codes)))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventCodesGenerated, string(kind), map[string]any{
		"type":  string(kind),
		"count": len(codes),
	})

	return codes, nil
}

func (srv *pointsAdminService) insertUniqueCode(ctx context.Context, codeRepo repository.CodeRepository, kind entity.CodeKind) (*entity.RedemptionCode, error) {
	for attempt := 0; attempt < srv.maxAttempts; attempt++ {
		digits, err := srv.randomDigits(kind.Digits())
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw code")
		}

		code := &entity.RedemptionCode{
			ID:        uuid.New(),
			Code:      digits,
			Kind:      kind,
			CreatedAt: srv.now().UTC(),
		}
		err = codeRepo.CreateCode(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			return nil, errors.Wrap(err, "failed to store code")
		}
	}

	return nil, domainerrors.ErrCodeGenerationExhausted
}

// ListCodes returns recent codes with unused counts per kind.
func (srv *pointsAdminService) ListCodes(ctx context.Context, input usecase.ListCodesInput) (*usecase.CodeList, error) {
	if input.Kind != "" && !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be 3d or 5d")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultCodeListLimit
	}
	if limit > maxCodeListLimit {
		limit = maxCodeListLimit
	}

	result := &usecase.CodeList{Policy: srv.policy}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		codes, err := codeRepo.List(ctx, repository.CodeFilter{
			Kind:       input.Kind,
			UnusedOnly: input.UnusedOnly,
			Limit:      limit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list codes")
		}

		counts, err := codeRepo.CountUnused(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count codes")
		}

		result.Codes = codes
		result.UnusedByKind = counts

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}
	if result.Codes == nil {
		result.Codes = []*entity.RedemptionCode{}
	}

	return result, nil
}

// CodeQR renders the code text as a PNG.
func (srv *pointsAdminService) CodeQR(ctx context.Context, codeID uuid.UUID) ([]byte, error) {
	var code *entity.RedemptionCode
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		code, err = repoFactory.CodeRepo().FindByID(ctx, codeID)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.ErrCodeNotFound
			}

			return errors.Wrap(err, "failed to find code")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	png, err := srv.qrCode.GenerateCodeQR(code.Code)
	if err != nil {
		srv.log(ctx).Error("Failed to render QR code", slog.Any("code_id", codeID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// DeductPoints removes amount from the customer when the balance covers it.
func (srv *pointsAdminService) DeductPoints(ctx context.Context, userID uuid.UUID, amount int, reason string) (*usecase.DeductOutput, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultDeductReason
	}

	var newBalance int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		newBalance, err = repoFactory.UserRepo().DecrementPoints(ctx, userID, amount)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrInsufficientBalance):
				return domainerrors.ErrInsufficientPoints
			case errors.Is(err, repository.ErrUserNotFound):
				return domainerrors.ErrUserNotFound
			default:
				return errors.Wrap(err, "failed to debit points")
			}
		}

		err = repoFactory.LedgerRepo().Append(ctx, &entity.LedgerEntry{
			UserID:      userID,
			Direction:   entity.LedgerUsed,
			Points:      amount,
			Description: reason,
		})
		if err != nil {
			return errors.Wrap(err, "failed to append ledger entry")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Deduction failed", slog.Any("user_id", userID), slog.Int("amount", amount), slog.Any("error", err))

		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Points deducted", slog.Any("user_id", userID), slog.Int("amount", amount))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventPointsDeducted, userID.String(), map[string]any{
		"amount":      amount,
		"reason":      reason,
		"new_balance": newBalance,
	})

	return &usecase.DeductOutput{
		UserID:     userID,
		Deducted:   amount,
		NewBalance: newBalance,
	}, nil
}

// ListCustomers returns every customer with the stored balance.
func (srv *pointsAdminService) ListCustomers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		users, err = repoFactory.UserRepo().ListByRole(ctx, entity.RoleCustomer)
		if err != nil {
			return errors.Wrap(err, "failed to list customers")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}
	if users == nil {
		users = []*entity.User{}
	}

	return users, nil
}
