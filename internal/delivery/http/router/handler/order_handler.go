package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the admin order queue.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CartLineRequest is one cart line
type CartLineRequest struct {
	DishID   uuid.UUID `json:"dish_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0,lte=99"`
}

// PlaceOrderRequest is the checkout form. Customer fields are checked by the
// order usecase so the messages match the checkout screen.
type PlaceOrderRequest struct {
	Customer entity.Customer   `json:"customer"`
	Items    []CartLineRequest `json:"items" validate:"dive"`
}

// UpdateOrderStatusRequest moves an order to a new status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PlaceOrder stores the order and returns the WhatsApp link that submits it
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := usecase.PlaceOrderInput{
		Customer: req.Customer,
		Lines:    make([]usecase.CartLine, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Lines = append(input.Lines, usecase.CartLine{DishID: item.DishID, Quantity: item.Quantity})
	}
	if actor := deliverycontext.GetActor(c); actor.Kind == entity.ActorCustomer {
		if userID, err := uuid.Parse(actor.ID); err == nil {
			input.UserID = &userID
		}
	}

	output, err := h.orderUC.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ListOrders lists orders newest first, ?status=pending|confirmed|delivered|cancelled
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context(), entity.OrderStatus(c.QueryParam("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus applies a status transition
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}
