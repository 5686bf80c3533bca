package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"aunerarroz/config"
	"aunerarroz/internal/domain/repository"
	mockRepo "aunerarroz/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   4,
			RoleFallback: "customer",
		},
		Admin: &config.AdminConfig{
			Username:     "AUNER MASA",
			PasswordHash: "admin-hash",
		},
		Points: &config.PointsConfig{
			PointsPerVisit:      50,
			PointsPerReferral:   350,
			MinimumRedeem:       6000,
			CodesPerBatch:       3,
			MaxGenerateAttempts: 4,
		},
		Restaurant: &config.RestaurantConfig{
			Name:     "Auner Arroz",
			WhatsApp: "+57 313 747 1549",
		},
		Media: &config.MediaConfig{
			MaxImageSize: 16,
			MaxVideoSize: 64,
		},
	}
}

// expectTx makes txManager run the next transaction against a fresh factory
// prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(f *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			f := mockRepo.NewMockRepositoryFactory(t)
			setup(f)

			return fn(f)
		}).
		Once()
}
