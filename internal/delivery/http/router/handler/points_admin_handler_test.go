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

func setupPointsAdminHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockPointsAdminUsecase) {
	pointsAdminUC := mockUsecase.NewMockPointsAdminUsecase(t)
	h := NewPointsAdminHandler(PointsAdminHandlerParams{PointsAdminUC: pointsAdminUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/admin", asActor(entity.AdminActor(), nil))
	g.POST("/points/codes", h.GenerateCodes)
	g.GET("/points/codes", h.ListCodes)
	g.GET("/points/codes/:id/qr", h.CodeQR)
	g.GET("/customers", h.ListCustomers)
	g.POST("/customers/:id/points/deduct", h.DeductPoints)

	return e, pointsAdminUC
}

func TestPointsAdminHandler_GenerateCodes(t *testing.T) {
	e, pointsAdminUC := setupPointsAdminHandler(t)

	pointsAdminUC.EXPECT().
		GenerateCodes(mock.Anything, entity.CodeKindVisit).
		Return([]*entity.RedemptionCode{{ID: uuid.New(), Code: "042", Kind: entity.CodeKindVisit}}, nil)

	rec, env := serve(t, e, http.MethodPost, "/admin/points/codes", `{"type":"3d"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var codes []entity.RedemptionCode
	decodeData(t, env, &codes)
	require.Len(t, codes, 1)
	assert.Equal(t, "042", codes[0].Code)
}

func TestPointsAdminHandler_GenerateCodes_RejectsUnknownType(t *testing.T) {
	e, _ := setupPointsAdminHandler(t)

	rec, env := serve(t, e, http.MethodPost, "/admin/points/codes", `{"type":"4d"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestPointsAdminHandler_ListCodes(t *testing.T) {
	e, pointsAdminUC := setupPointsAdminHandler(t)

	pointsAdminUC.EXPECT().
		ListCodes(mock.Anything, usecase.ListCodesInput{Kind: entity.CodeKindReferral, UnusedOnly: true, Limit: 20}).
		Return(&usecase.CodeList{Codes: []*entity.RedemptionCode{}}, nil)

	rec, _ := serve(t, e, http.MethodGet, "/admin/points/codes?type=5d&unused=true&limit=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := serve(t, e, http.MethodGet, "/admin/points/codes?limit=many", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestPointsAdminHandler_CodeQR(t *testing.T) {
	e, pointsAdminUC := setupPointsAdminHandler(t)
	codeID := uuid.New()

	pointsAdminUC.EXPECT().CodeQR(mock.Anything, codeID).Return([]byte("\x89PNG"), nil)

	rec, _ := serve(t, e, http.MethodGet, "/admin/points/codes/"+codeID.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestPointsAdminHandler_CodeQR_BadID(t *testing.T) {
	e, _ := setupPointsAdminHandler(t)

	rec, env := serve(t, e, http.MethodGet, "/admin/points/codes/not-a-uuid/qr", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "id inválido", env.Error.Details)
}

func TestPointsAdminHandler_DeductPoints(t *testing.T) {
	e, pointsAdminUC := setupPointsAdminHandler(t)
	userID := uuid.New()

	pointsAdminUC.EXPECT().
		DeductPoints(mock.Anything, userID, 6000, "Almuerzo gratis").
		Return(nil, domainerrors.ErrInsufficientPoints)

	rec, env := serve(t, e, http.MethodPost, "/admin/customers/"+userID.String()+"/points/deduct",
		`{"amount":6000,"reason":"Almuerzo gratis"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_POINTS", env.Error.Code)

	rec, env = serve(t, e, http.MethodPost, "/admin/customers/"+userID.String()+"/points/deduct", `{"amount":-5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestPointsAdminHandler_ListCustomers(t *testing.T) {
	e, pointsAdminUC := setupPointsAdminHandler(t)

	pointsAdminUC.EXPECT().
		ListCustomers(mock.Anything).
		Return([]*entity.User{{ID: uuid.New(), FullName: "Ana", Points: 300, Role: entity.RoleCustomer}}, nil)

	rec, env := serve(t, e, http.MethodGet, "/admin/customers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var customers []map[string]any
	decodeData(t, env, &customers)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0]["full_name"])
	assert.InDelta(t, 300, customers[0]["points"], 0)
}
