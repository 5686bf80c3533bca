package impl

import (
	"context"
	"testing"
	"time"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	mockRepo "aunerarroz/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDashboardService(t *testing.T, now time.Time) (*dashboardService, *mockRepo.MockTransactionManager) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewDashboardService(DashboardServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	}).(*dashboardService)
	srv.now = func() time.Time { return now }

	return srv, txManager
}

func TestDashboardService_MonthlyStats(t *testing.T) {
	ctx := context.Background()
	bogota := time.FixedZone("COT", -5*60*60)
	srv, txManager := createTestDashboardService(t, time.Date(2026, time.October, 19, 14, 30, 0, 0, bogota))
	since := time.Date(2026, time.October, 1, 0, 0, 0, 0, bogota)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	recent := []*entity.Order{{ID: uuid.New(), Total: 25000, Status: entity.OrderPending}}

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().OrderRepo().Return(orderRepo)
		f.EXPECT().UserRepo().Return(userRepo)
	})
	orderRepo.EXPECT().
		SummarizeSince(ctx, since).
		Return(repository.OrderSummary{Count: 145, Revenue: 2850000, Pending: 5}, nil)
	userRepo.EXPECT().CountByRoleSince(ctx, entity.RoleCustomer, since).Return(23, nil)
	orderRepo.EXPECT().ListRecent(ctx, recentOrdersLimit).Return(recent, nil)

	stats, err := srv.MonthlyStats(ctx)

	require.NoError(t, err)
	assert.True(t, since.Equal(stats.Since))
	assert.Equal(t, 145, stats.TotalOrders)
	assert.Equal(t, int64(2850000), stats.TotalRevenue)
	assert.Equal(t, 5, stats.PendingOrders)
	assert.Equal(t, 23, stats.NewCustomers)
	assert.Equal(t, recent, stats.RecentOrders)
}

func TestDashboardService_MonthlyStats_DatabaseError(t *testing.T) {
	ctx := context.Background()
	srv, txManager := createTestDashboardService(t, time.Now())
	orderRepo := mockRepo.NewMockOrderRepository(t)

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().OrderRepo().Return(orderRepo)
	})
	orderRepo.EXPECT().
		SummarizeSince(ctx, entity.StartOfMonth(srv.now())).
		Return(repository.OrderSummary{}, errors.New("connection reset"))

	_, err := srv.MonthlyStats(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendUnavailable))
}

func TestStartOfMonth(t *testing.T) {
	got := entity.StartOfMonth(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}
