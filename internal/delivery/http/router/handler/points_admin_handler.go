package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PointsAdminHandlerParams holds dependencies for PointsAdminHandler, injected by Fx.
type PointsAdminHandlerParams struct {
	fx.In

	PointsAdminUC usecase.PointsAdminUsecase
	Logger        *slog.Logger
}

// PointsAdminHandler serves code generation and balance adjustments.
type PointsAdminHandler struct {
	pointsAdminUC usecase.PointsAdminUsecase
	logger        *slog.Logger
}

// NewPointsAdminHandler is the constructor for PointsAdminHandler
func NewPointsAdminHandler(params PointsAdminHandlerParams) *PointsAdminHandler {
	return &PointsAdminHandler{
		pointsAdminUC: params.PointsAdminUC,
		logger:        params.Logger,
	}
}

// GenerateCodesRequest selects the kind of the batch
type GenerateCodesRequest struct {
	Type string `json:"type" validate:"required,oneof=3d 5d"`
}

// DeductPointsRequest represents the request body for an admin deduction
type DeductPointsRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"max=200"`
}

// GenerateCodes issues a batch of codes
func (h *PointsAdminHandler) GenerateCodes(c echo.Context) error {
	var req GenerateCodesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	codes, err := h.pointsAdminUC.GenerateCodes(c.Request().Context(), entity.CodeKind(req.Type))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, codes)
}

// ListCodes lists recent codes, ?type=3d|5d&unused=true&limit=N
func (h *PointsAdminHandler) ListCodes(c echo.Context) error {
	input := usecase.ListCodesInput{Kind: entity.CodeKind(c.QueryParam("type"))}

	if raw := c.QueryParam("unused"); raw != "" {
		unused, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("unused debe ser true o false")
		}
		input.UnusedOnly = unused
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("limit debe ser un número")
		}
		input.Limit = limit
	}

	list, err := h.pointsAdminUC.ListCodes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list)
}

// CodeQR returns the printable PNG of a code
func (h *PointsAdminHandler) CodeQR(c echo.Context) error {
	codeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.pointsAdminUC.CodeQR(c.Request().Context(), codeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListCustomers returns customers with their balances
func (h *PointsAdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.pointsAdminUC.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// DeductPoints subtracts points from a customer
func (h *PointsAdminHandler) DeductPoints(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req DeductPointsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.pointsAdminUC.DeductPoints(c.Request().Context(), userID, req.Amount, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
