package handler

import (
	"net/http"
	"testing"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	mockUsecase "aunerarroz/internal/mocks/usecase"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPointsHandler(t *testing.T, actor entity.Actor) (*echo.Echo, *mockUsecase.MockPointsUsecase) {
	pointsUC := mockUsecase.NewMockPointsUsecase(t)
	h := NewPointsHandler(PointsHandlerParams{PointsUC: pointsUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/points", asActor(actor, nil))
	g.GET("", h.GetSummary)
	g.POST("/redeem", h.Redeem)
	g.GET("/transactions", h.ListTransactions)

	return e, pointsUC
}

func TestPointsHandler_Redeem(t *testing.T) {
	userID := uuid.New()
	e, pointsUC := setupPointsHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer))

	pointsUC.EXPECT().
		Redeem(mock.Anything, userID, "12345", 5000).
		Return(&entity.Redemption{Code: "12345", Kind: entity.CodeKindReferral, Award: 350, NewBalance: 5350}, nil)

	rec, env := serve(t, e, http.MethodPost, "/points/redeem", `{"code":" 12345 ","current_balance":5000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var redemption entity.Redemption
	decodeData(t, env, &redemption)
	assert.Equal(t, 350, redemption.Award)
	assert.Equal(t, 5350, redemption.NewBalance)
	assert.False(t, redemption.Eligible)
}

func TestPointsHandler_Redeem_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "malformed", err: domainerrors.ErrInvalidCodeFormat, status: http.StatusBadRequest, code: "INVALID_CODE_FORMAT"},
		{name: "used or unknown", err: domainerrors.ErrInvalidCode, status: http.StatusConflict, code: "INVALID_CODE"},
		{name: "backend down", err: domainerrors.ErrBackendUnavailable, status: http.StatusServiceUnavailable, code: "BACKEND_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			e, pointsUC := setupPointsHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer))
			pointsUC.EXPECT().Redeem(mock.Anything, userID, "123", 0).Return(nil, tt.err)

			rec, env := serve(t, e, http.MethodPost, "/points/redeem", `{"code":"123"}`)

			require.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestPointsHandler_GetSummary(t *testing.T) {
	userID := uuid.New()
	e, pointsUC := setupPointsHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer))

	pointsUC.EXPECT().
		GetSummary(mock.Anything, userID).
		Return(&usecase.PointsSummary{Balance: 6000, Eligible: true, Progress: 100}, nil)

	rec, env := serve(t, e, http.MethodGet, "/points", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var summary usecase.PointsSummary
	decodeData(t, env, &summary)
	assert.True(t, summary.Eligible)
	assert.Equal(t, 100, summary.Progress)
}

func TestPointsHandler_GetSummary_AdminSentinelIsRejected(t *testing.T) {
	e, _ := setupPointsHandler(t, entity.AdminActor())

	rec, env := serve(t, e, http.MethodGet, "/points", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestPointsHandler_ListTransactions(t *testing.T) {
	userID := uuid.New()
	e, pointsUC := setupPointsHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer))

	pointsUC.EXPECT().
		ListTransactions(mock.Anything, userID, entity.PeriodMonth).
		Return(&usecase.TransactionStatement{Period: entity.PeriodMonth, Entries: []*entity.LedgerEntry{}, Earned: 400}, nil)

	rec, env := serve(t, e, http.MethodGet, "/points/transactions?period=month", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var statement usecase.TransactionStatement
	decodeData(t, env, &statement)
	assert.Equal(t, 400, statement.Earned)
	assert.NotNil(t, statement.Entries)
}
