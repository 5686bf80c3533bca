package impl

import (
	"context"
	"sync"
	"testing"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	mockRepo "aunerarroz/internal/mocks/repository"
	mockSvc "aunerarroz/internal/mocks/service"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pointsServiceFixtures holds all test dependencies for points service tests.
type pointsServiceFixtures struct {
	service   usecase.PointsUsecase
	store     *memoryStore
	publisher *mockSvc.MockEventPublisher
}

func createTestPointsService(t *testing.T) pointsServiceFixtures {
	store := newMemoryStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	srv := NewPointsService(PointsServiceParams{
		Config:    newTestConfig(),
		TxManager: store,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return pointsServiceFixtures{
		service:   srv,
		store:     store,
		publisher: publisher,
	}
}

func TestPointsService_Redeem_RejectsMalformedCodeWithoutBackendCall(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewPointsService(PointsServiceParams{
		Config:    newTestConfig(),
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	codes := []string{"", "1", "12", "1234", "123456", "12a", "1 3", " 123", "12.45", "١٢٣"}
	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			result, err := srv.Redeem(context.Background(), uuid.New(), code, 0)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCodeFormat))
		})
	}

	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPointsService_Redeem_VisitCodeFromZeroBalance(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 0
	fx.store.addCode("042")

	result, err := fx.service.Redeem(context.Background(), userID, "042", 0)

	require.NoError(t, err)
	assert.Equal(t, 50, result.Award)
	assert.Equal(t, 50, result.NewBalance)
	assert.Equal(t, entity.CodeKindVisit, result.Kind)
	assert.False(t, result.Eligible)

	assert.Equal(t, 50, fx.store.balances[userID])
	assert.NotContains(t, fx.store.codes, "042")
	require.Len(t, fx.store.consumed, 1)
	assert.Equal(t, userID, *fx.store.consumed[0].ConsumedBy)
	assert.NotNil(t, fx.store.consumed[0].ConsumedAt)

	require.Len(t, fx.store.ledger, 1)
	entry := fx.store.ledger[0]
	assert.Equal(t, entity.LedgerEarned, entry.Direction)
	assert.Equal(t, 50, entry.Points)
	assert.Equal(t, "042", entry.Code)
	assert.Equal(t, "Por comer", entry.Description)
}

func TestPointsService_Redeem_ReferralCodeBelowMinimum(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 5000
	fx.store.addCode("90210")

	result, err := fx.service.Redeem(context.Background(), userID, "90210", 5000)

	require.NoError(t, err)
	assert.Equal(t, 350, result.Award)
	assert.Equal(t, 5350, result.NewBalance)
	assert.Equal(t, entity.CodeKindReferral, result.Kind)
	assert.False(t, fx.service.RedeemEligibility(5350))

	require.Len(t, fx.store.ledger, 1)
	assert.Equal(t, "Por referir amigo", fx.store.ledger[0].Description)
}

func TestPointsService_Redeem_SecondAttemptFails(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 100
	fx.store.addCode("777")

	_, err := fx.service.Redeem(context.Background(), userID, "777", 100)
	require.NoError(t, err)

	result, err := fx.service.Redeem(context.Background(), userID, "777", 150)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
	assert.Equal(t, 150, fx.store.balances[userID])
	assert.Len(t, fx.store.ledger, 1)
}

func TestPointsService_Redeem_UnknownCode(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 0

	_, err := fx.service.Redeem(context.Background(), userID, "55555", 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
	assert.Equal(t, 0, fx.store.balances[userID])
	assert.Empty(t, fx.store.ledger)
}

func TestPointsService_Redeem_ConcurrentCallersOnlyOneWins(t *testing.T) {
	fx := createTestPointsService(t)
	first, second := uuid.New(), uuid.New()
	fx.store.balances[first] = 0
	fx.store.balances[second] = 0
	fx.store.addCode("314")

	const callers = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		invalid   int
	)
	for i := 0; i < callers; i++ {
		userID := first
		if i%2 == 1 {
			userID = second
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.Redeem(context.Background(), userID, "314", 0)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrInvalidCode):
				invalid++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, invalid)
	assert.Equal(t, 50, fx.store.balances[first]+fx.store.balances[second])
	assert.Len(t, fx.store.ledger, 1)
	assert.Len(t, fx.store.consumed, 1)
}

func TestPointsService_Redeem_LedgerFailureRollsBack(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 200
	fx.store.addCode("123")
	fx.store.failLedger = errors.New("connection reset by peer")

	result, err := fx.service.Redeem(context.Background(), userID, "123", 200)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendUnavailable))

	assert.Equal(t, 200, fx.store.balances[userID])
	assert.Contains(t, fx.store.codes, "123")
	assert.Empty(t, fx.store.consumed)
	assert.Empty(t, fx.store.ledger)
}

func TestPointsService_Redeem_StoredBalanceWinsOverCachedBalance(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 1000
	fx.store.addCode("808")

	result, err := fx.service.Redeem(context.Background(), userID, "808", 0)

	require.NoError(t, err)
	assert.Equal(t, 1050, result.NewBalance)
}

func TestPointsService_Redeem_CancelledContext(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 0
	fx.store.addCode("909")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.Redeem(ctx, userID, "909", 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, fx.store.codes, "909")
	assert.Equal(t, 0, fx.store.balances[userID])
}

func TestPointsService_Redeem_PublishesEventAfterCommit(t *testing.T) {
	store := newMemoryStore()
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewPointsService(PointsServiceParams{
		Config:    newTestConfig(),
		TxManager: store,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	userID := uuid.New()
	store.balances[userID] = 0
	store.addCode("246")

	publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventPointsRedeemed &&
				event.AggregateID == userID.String() &&
				event.Payload["award"] == 50
		})).
		Return(errors.New("broker down"))

	result, err := srv.Redeem(context.Background(), userID, "246", 0)

	require.NoError(t, err)
	assert.Equal(t, 50, result.NewBalance)
}

func TestPointsService_RedeemEligibility(t *testing.T) {
	fx := createTestPointsService(t)

	tests := []struct {
		balance  int
		expected bool
	}{
		{0, false},
		{5350, false},
		{5999, false},
		{6000, true},
		{6001, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, fx.service.RedeemEligibility(tt.balance), "balance %d", tt.balance)
	}
}

func TestPointsService_GetSummary(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewPointsService(PointsServiceParams{
		Config:    newTestConfig(),
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Points: 3000}, nil)

	summary, err := srv.GetSummary(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3000, summary.Balance)
	assert.False(t, summary.Eligible)
	assert.Equal(t, 50, summary.Progress)
	assert.Equal(t, 6000, summary.Policy.MinimumRedeem)
}

func TestPointsService_GetSummary_DatabaseError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewPointsService(PointsServiceParams{
		Config:    newTestConfig(),
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := srv.GetSummary(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendUnavailable))
}

func TestPointsService_GetSummary_UserNotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewPointsService(PointsServiceParams{
		Config:    newTestConfig(),
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetSummary(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPointsService_ListTransactions(t *testing.T) {
	fx := createTestPointsService(t)
	userID := uuid.New()
	fx.store.balances[userID] = 1000
	fx.store.addCode("111")
	fx.store.addCode("22222")

	_, err := fx.service.Redeem(context.Background(), userID, "111", 1000)
	require.NoError(t, err)
	_, err = fx.service.Redeem(context.Background(), userID, "22222", 1050)
	require.NoError(t, err)

	statement, err := fx.service.ListTransactions(context.Background(), userID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.PeriodWeek, statement.Period)
	require.Len(t, statement.Entries, 2)
	assert.Equal(t, "22222", statement.Entries[0].Code)
	assert.Equal(t, 400, statement.Earned)
	assert.Equal(t, 0, statement.Used)
}

func TestPointsService_ListTransactions_InvalidPeriod(t *testing.T) {
	fx := createTestPointsService(t)

	_, err := fx.service.ListTransactions(context.Background(), uuid.New(), "year")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
