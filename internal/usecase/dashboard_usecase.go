package usecase

import (
	"context"

	"aunerarroz/internal/domain/entity"
)

// DashboardUsecase builds the back-office summary.
type DashboardUsecase interface {
	// MonthlyStats summarises orders and new customers since the first day
	// of the current month.
	MonthlyStats(ctx context.Context) (*entity.DashboardStats, error)
}
