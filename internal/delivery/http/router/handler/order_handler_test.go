package handler

import (
	"context"
	"fmt"
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

const checkoutBody = `{
	"customer": {"full_name": "Ana Pérez", "cedula": "1020304050", "address": "Calle 10 # 5-20", "whatsapp": "3001234567"},
	"items": [{"dish_id": "%s", "quantity": 2}]
}`

func setupOrderHandler(t *testing.T, actor entity.Actor) (*echo.Echo, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/orders", h.PlaceOrder, asActor(actor, nil))
	g := e.Group("/admin", asActor(entity.AdminActor(), nil))
	g.GET("/orders", h.ListOrders)
	g.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	return e, orderUC
}

func TestOrderHandler_PlaceOrder_Guest(t *testing.T) {
	e, orderUC := setupOrderHandler(t, entity.GuestActor())
	dishID := uuid.New()

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.AnythingOfType("usecase.PlaceOrderInput")).
		RunAndReturn(func(_ context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
			assert.Nil(t, input.UserID)
			assert.Equal(t, "Ana Pérez", input.Customer.FullName)
			require.Len(t, input.Lines, 1)
			assert.Equal(t, dishID, input.Lines[0].DishID)
			assert.Equal(t, 2, input.Lines[0].Quantity)

			return &usecase.PlaceOrderOutput{
				Order:       &entity.Order{ID: uuid.New(), Total: 30000, Status: entity.OrderPending},
				WhatsAppURL: "https://wa.me/573137471549?text=hola",
			}, nil
		})

	rec, env := serve(t, e, http.MethodPost, "/orders", fmt.Sprintf(checkoutBody, dishID))

	require.Equal(t, http.StatusCreated, rec.Code)
	var output usecase.PlaceOrderOutput
	decodeData(t, env, &output)
	assert.Equal(t, "https://wa.me/573137471549?text=hola", output.WhatsAppURL)
	assert.Equal(t, int64(30000), output.Order.Total)
}

func TestOrderHandler_PlaceOrder_CustomerIsLinked(t *testing.T) {
	userID := uuid.New()
	e, orderUC := setupOrderHandler(t, entity.ActorForRole(userID.String(), entity.RoleCustomer))

	orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(input usecase.PlaceOrderInput) bool {
			return input.UserID != nil && *input.UserID == userID
		})).
		Return(nil, domainerrors.ErrDishUnavailable.WithDetails("Arroz marinero"))

	rec, env := serve(t, e, http.MethodPost, "/orders", fmt.Sprintf(checkoutBody, uuid.New()))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DISH_UNAVAILABLE", env.Error.Code)
	assert.Equal(t, "Arroz marinero", env.Error.Details)
}

func TestOrderHandler_PlaceOrder_ZeroQuantity(t *testing.T) {
	e, _ := setupOrderHandler(t, entity.GuestActor())

	rec, env := serve(t, e, http.MethodPost, "/orders",
		`{"customer":{"full_name":"Ana"},"items":[{"dish_id":"`+uuid.NewString()+`","quantity":0}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOrderHandler_PlaceOrder_QuantityOverLimit(t *testing.T) {
	e, _ := setupOrderHandler(t, entity.GuestActor())

	rec, env := serve(t, e, http.MethodPost, "/orders",
		`{"customer":{"full_name":"Ana"},"items":[{"dish_id":"`+uuid.NewString()+`","quantity":100}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	e, orderUC := setupOrderHandler(t, entity.GuestActor())
	id := uuid.New()

	orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, id, entity.OrderDelivered).
		Return(nil, domainerrors.ErrInvalidOrderStatus)

	rec, env := serve(t, e, http.MethodPatch, "/admin/orders/"+id.String()+"/status", `{"status":"delivered"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ORDER_STATUS", env.Error.Code)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	e, orderUC := setupOrderHandler(t, entity.GuestActor())

	orderUC.EXPECT().
		ListOrders(mock.Anything, entity.OrderStatus("")).
		Return([]*entity.Order{{ID: uuid.New(), Status: entity.OrderConfirmed}}, nil)

	rec, env := serve(t, e, http.MethodGet, "/admin/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []entity.Order
	decodeData(t, env, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderConfirmed, orders[0].Status)
}
