package handler

import (
	"net/http"
	"testing"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	mockUsecase "aunerarroz/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_MonthlyStats(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/admin/dashboard", h.MonthlyStats, asActor(entity.AdminActor(), nil))

	dashboardUC.EXPECT().
		MonthlyStats(mock.Anything).
		Return(&entity.DashboardStats{TotalOrders: 145, TotalRevenue: 2850000, PendingOrders: 5, NewCustomers: 23}, nil).
		Once()

	rec, env := serve(t, e, http.MethodGet, "/admin/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats entity.DashboardStats
	decodeData(t, env, &stats)
	assert.Equal(t, 145, stats.TotalOrders)
	assert.Equal(t, int64(2850000), stats.TotalRevenue)
	assert.Equal(t, 5, stats.PendingOrders)
	assert.Equal(t, 23, stats.NewCustomers)

	dashboardUC.EXPECT().MonthlyStats(mock.Anything).Return(nil, domainerrors.ErrBackendUnavailable).Once()

	rec, env = serve(t, e, http.MethodGet, "/admin/dashboard", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "BACKEND_UNAVAILABLE", env.Error.Code)
}
