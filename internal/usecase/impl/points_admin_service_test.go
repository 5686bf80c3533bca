package impl

import (
	"context"
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

// sequenceDigits returns the given draws in order, then repeats the last one.
func sequenceDigits(draws ...string) func(int) (string, error) {
	i := 0

	return func(int) (string, error) {
		d := draws[i]
		if i < len(draws)-1 {
			i++
		}

		return d, nil
	}
}

func createTestPointsAdminService(t *testing.T, txManager repository.TransactionManager) (*pointsAdminService, *mockSvc.MockQRCodeService, *mockSvc.MockEventPublisher) {
	qrCode := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	srv := NewPointsAdminService(PointsAdminServiceParams{
		Config:    newTestConfig(),
		TxManager: txManager,
		QRCode:    qrCode,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return srv.(*pointsAdminService), qrCode, publisher
}

func TestPointsAdminService_GenerateCodes_RetriesDuplicates(t *testing.T) {
	store := newMemoryStore()
	store.addCode("100")
	srv, _, _ := createTestPointsAdminService(t, store)
	srv.randomDigits = sequenceDigits("100", "101", "101", "102", "103")

	codes, err := srv.GenerateCodes(context.Background(), entity.CodeKindVisit)

	require.NoError(t, err)
	require.Len(t, codes, 3)
	assert.Equal(t, "101", codes[0].Code)
	assert.Equal(t, "102", codes[1].Code)
	assert.Equal(t, "103", codes[2].Code)
	for _, code := range codes {
		assert.Equal(t, entity.CodeKindVisit, code.Kind)
		assert.False(t, code.Consumed)
	}
	assert.Len(t, store.codes, 4)
}

func TestPointsAdminService_GenerateCodes_ExhaustionRollsBackBatch(t *testing.T) {
	store := newMemoryStore()
	store.addCode("55555")
	srv, _, _ := createTestPointsAdminService(t, store)
	srv.randomDigits = sequenceDigits("12345", "55555")

	codes, err := srv.GenerateCodes(context.Background(), entity.CodeKindReferral)

	require.Error(t, err)
	assert.Nil(t, codes)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeGenerationExhausted))
	assert.Len(t, store.codes, 1)
}

func TestPointsAdminService_GenerateCodes_DrawsKindLength(t *testing.T) {
	store := newMemoryStore()
	srv, _, _ := createTestPointsAdminService(t, store)

	codes, err := srv.GenerateCodes(context.Background(), entity.CodeKindReferral)

	require.NoError(t, err)
	require.Len(t, codes, 3)
	for _, code := range codes {
		kind, ok := entity.ParseCodeKind(code.Code)
		require.True(t, ok, code.Code)
		assert.Equal(t, entity.CodeKindReferral, kind)
	}
}

func TestPointsAdminService_GenerateCodes_InvalidKind(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv, _, _ := createTestPointsAdminService(t, txManager)

	_, err := srv.GenerateCodes(context.Background(), entity.CodeKind("4d"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPointsAdminService_ListCodes_CapsLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	codeRepo := mockRepo.NewMockCodeRepository(t)
	srv, _, _ := createTestPointsAdminService(t, txManager)
	ctx := context.Background()

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().CodeRepo().Return(codeRepo)
	})
	codeRepo.EXPECT().
		List(ctx, repository.CodeFilter{Kind: entity.CodeKindVisit, UnusedOnly: true, Limit: maxCodeListLimit}).
		Return(nil, nil)
	codeRepo.EXPECT().
		CountUnused(ctx).
		Return(map[entity.CodeKind]int{entity.CodeKindVisit: 7, entity.CodeKindReferral: 2}, nil)

	list, err := srv.ListCodes(ctx, usecase.ListCodesInput{Kind: entity.CodeKindVisit, UnusedOnly: true, Limit: 10000})

	require.NoError(t, err)
	assert.NotNil(t, list.Codes)
	assert.Empty(t, list.Codes)
	assert.Equal(t, 7, list.UnusedByKind[entity.CodeKindVisit])
	assert.Equal(t, 350, list.Policy.PointsPerReferral)
}

func TestPointsAdminService_CodeQR(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	codeRepo := mockRepo.NewMockCodeRepository(t)
	srv, qrCode, _ := createTestPointsAdminService(t, txManager)
	ctx := context.Background()
	codeID := uuid.New()

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().CodeRepo().Return(codeRepo)
	})
	codeRepo.EXPECT().FindByID(ctx, codeID).Return(&entity.RedemptionCode{ID: codeID, Code: "031"}, nil)
	qrCode.EXPECT().GenerateCodeQR("031").Return([]byte("png"), nil)

	png, err := srv.CodeQR(ctx, codeID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestPointsAdminService_CodeQR_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	codeRepo := mockRepo.NewMockCodeRepository(t)
	srv, _, _ := createTestPointsAdminService(t, txManager)
	ctx := context.Background()
	codeID := uuid.New()

	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().CodeRepo().Return(codeRepo)
	})
	codeRepo.EXPECT().FindByID(ctx, codeID).Return(nil, repository.ErrCodeNotFound)

	_, err := srv.CodeQR(ctx, codeID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestPointsAdminService_DeductPoints(t *testing.T) {
	store := newMemoryStore()
	srv, _, publisher := createTestPointsAdminService(t, store)
	userID := uuid.New()
	store.balances[userID] = 6200

	out, err := srv.DeductPoints(context.Background(), userID, 6000, "")

	require.NoError(t, err)
	assert.Equal(t, 200, out.NewBalance)
	assert.Equal(t, 6000, out.Deducted)
	assert.Equal(t, 200, store.balances[userID])

	require.Len(t, store.ledger, 1)
	assert.Equal(t, entity.LedgerUsed, store.ledger[0].Direction)
	assert.Equal(t, 6000, store.ledger[0].Points)
	assert.Equal(t, defaultDeductReason, store.ledger[0].Description)

	publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
		return event.Type == service.EventPointsDeducted
	}))
}

func TestPointsAdminService_DeductPoints_InsufficientBalance(t *testing.T) {
	store := newMemoryStore()
	srv, _, _ := createTestPointsAdminService(t, store)
	userID := uuid.New()
	store.balances[userID] = 5999

	_, err := srv.DeductPoints(context.Background(), userID, 6000, "Almuerzo gratis")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))
	assert.Equal(t, 5999, store.balances[userID])
	assert.Empty(t, store.ledger)
}

func TestPointsAdminService_DeductPoints_NonPositiveAmount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv, _, _ := createTestPointsAdminService(t, txManager)

	for _, amount := range []int{0, -10} {
		_, err := srv.DeductPoints(context.Background(), uuid.New(), amount, "x")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestPointsAdminService_ListCustomers(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	srv, _, _ := createTestPointsAdminService(t, txManager)
	ctx := context.Background()

	users := []*entity.User{{ID: uuid.New(), FullName: "Ana", Points: 300}}
	expectTx(t, txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().ListByRole(ctx, entity.RoleCustomer).Return(users, nil)

	result, err := srv.ListCustomers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, result)
}
