package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentOrdersLimit = 5

// DashboardServiceParams holds dependencies for the dashboard service, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

type dashboardService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MonthlyStats reads the summary inside one transaction so the counts agree.
func (srv *dashboardService) MonthlyStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{Since: entity.StartOfMonth(srv.now())}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		summary, err := orderRepo.SummarizeSince(ctx, stats.Since)
		if err != nil {
			return errors.Wrap(err, "failed to summarize orders")
		}
		stats.TotalOrders = summary.Count
		stats.TotalRevenue = summary.Revenue
		stats.PendingOrders = summary.Pending

		stats.NewCustomers, err = repoFactory.UserRepo().CountByRoleSince(ctx, entity.RoleCustomer, stats.Since)
		if err != nil {
			return errors.Wrap(err, "failed to count new customers")
		}

		stats.RecentOrders, err = orderRepo.ListRecent(ctx, recentOrdersLimit)

		return errors.Wrap(err, "failed to list recent orders")
	})
	if err != nil {
		return nil, surfaceError(err)
	}
	if stats.RecentOrders == nil {
		stats.RecentOrders = []*entity.Order{}
	}

	srv.log(ctx).Debug("Dashboard stats built",
		slog.Int("orders", stats.TotalOrders),
		slog.Int("new_customers", stats.NewCustomers),
	)

	return stats, nil
}
