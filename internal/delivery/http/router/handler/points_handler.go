package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PointsHandlerParams holds dependencies for PointsHandler, injected by Fx.
type PointsHandlerParams struct {
	fx.In

	PointsUC usecase.PointsUsecase
	Logger   *slog.Logger
}

// PointsHandler serves the customer's loyalty card.
type PointsHandler struct {
	pointsUC usecase.PointsUsecase
	logger   *slog.Logger
}

// NewPointsHandler is the constructor for PointsHandler
func NewPointsHandler(params PointsHandlerParams) *PointsHandler {
	return &PointsHandler{
		pointsUC: params.PointsUC,
		logger:   params.Logger,
	}
}

// RedeemRequest represents the request body for redeeming a code
type RedeemRequest struct {
	Code           string `json:"code" validate:"required"`
	CurrentBalance int    `json:"current_balance" validate:"gte=0"`
}

// GetSummary returns balance, eligibility and progress
func (h *PointsHandler) GetSummary(c echo.Context) error {
	userID, err := actorUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.pointsUC.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Redeem consumes a code typed by the customer
func (h *PointsHandler) Redeem(c echo.Context) error {
	userID, err := actorUserID(c)
	if err != nil {
		return err
	}

	var req RedeemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	redemption, err := h.pointsUC.Redeem(c.Request().Context(), userID, strings.TrimSpace(req.Code), req.CurrentBalance)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, redemption)
}

// ListTransactions returns the ledger for ?period=week|month
func (h *PointsHandler) ListTransactions(c echo.Context) error {
	userID, err := actorUserID(c)
	if err != nil {
		return err
	}

	period := entity.StatementPeriod(c.QueryParam("period"))
	statement, err := h.pointsUC.ListTransactions(c.Request().Context(), userID, period)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statement)
}
