package impl

import (
	"context"
	"math"
	"net/url"
	"strings"
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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	dishRepo  *mockRepo.MockDishRepository
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		dishRepo:  mockRepo.NewMockDishRepository(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		Config:    newTestConfig(),
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func validCustomer() entity.Customer {
	return entity.Customer{
		FullName: "Ana Pérez",
		Cedula:   "1020304050",
		Address:  "Calle 10 # 5-20",
		WhatsApp: "3001234567",
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	rice := &entity.Dish{ID: uuid.New(), Name: "Arroz con pollo", Price: 15000, Active: true}
	juice := &entity.Dish{ID: uuid.New(), Name: "Jugo natural", Price: 6000, Active: true}

	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DishRepo().Return(fx.dishRepo)
		f.EXPECT().OrderRepo().Return(fx.orderRepo)
	})
	fx.dishRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{rice.ID, juice.ID}).
		Return(map[uuid.UUID]*entity.Dish{rice.ID: rice, juice.ID: juice}, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderPending && o.Total == 42000 && len(o.Items) == 2
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool { return e.Type == service.EventOrderPlaced })).
		Return(nil)

	out, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Customer: validCustomer(),
		Lines: []usecase.CartLine{
			{DishID: rice.ID, Quantity: 1},
			{DishID: juice.ID, Quantity: 2},
			{DishID: rice.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42000), out.Order.Total)
	assert.Equal(t, 2, out.Order.Items[0].Quantity)
	assert.Equal(t, int64(15000), out.Order.Items[0].Price)

	assert.True(t, strings.HasPrefix(out.Message, "🍚 *NUEVO PEDIDO - AUNER ARROZ*\n\n"))
	assert.Contains(t, out.Message, "👤 Nombre: Ana Pérez\n")
	assert.Contains(t, out.Message, "• 2x Arroz con pollo - $ 30.000\n")
	assert.Contains(t, out.Message, "• 2x Jugo natural - $ 12.000\n")
	assert.Contains(t, out.Message, "💰 *TOTAL: $ 42.000*\n")
	assert.True(t, strings.HasSuffix(out.Message, "¡Gracias por tu pedido! 🙏"))

	require.True(t, strings.HasPrefix(out.WhatsAppURL, "https://wa.me/573137471549?text="))
	assert.NotContains(t, out.WhatsAppURL, "+")
	parsed, err := url.Parse(out.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, out.Message, parsed.Query().Get("text"))
}

func TestOrderService_PlaceOrder_CustomerValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *entity.Customer)
		message string
	}{
		{name: "name", mutate: func(c *entity.Customer) { c.FullName = "  " }, message: "Por favor ingresa tu nombre completo"},
		{name: "cedula", mutate: func(c *entity.Customer) { c.Cedula = "" }, message: "Por favor ingresa tu cédula"},
		{name: "address", mutate: func(c *entity.Customer) { c.Address = "" }, message: "Por favor ingresa la dirección de entrega"},
		{name: "whatsapp", mutate: func(c *entity.Customer) { c.WhatsApp = "" }, message: "Por favor ingresa tu número de WhatsApp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			customer := validCustomer()
			tt.mutate(&customer)

			_, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
				Customer: customer,
				Lines:    []usecase.CartLine{{DishID: uuid.New(), Quantity: 1}},
			})

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{Customer: validCustomer()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_PlaceOrder_UnavailableDish(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	dish := &entity.Dish{ID: uuid.New(), Name: "Arroz marinero", Price: 20000, Active: false}

	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DishRepo().Return(fx.dishRepo)
	})
	fx.dishRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{dish.ID}).
		Return(map[uuid.UUID]*entity.Dish{dish.ID: dish}, nil)

	_, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Customer: validCustomer(),
		Lines:    []usecase.CartLine{{DishID: dish.ID, Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDishUnavailable))
}

func TestOrderService_PlaceOrder_UnknownDish(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DishRepo().Return(fx.dishRepo)
	})
	fx.dishRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{id}).Return(map[uuid.UUID]*entity.Dish{}, nil)

	_, err := fx.service.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Customer: validCustomer(),
		Lines:    []usecase.CartLine{{DishID: id, Quantity: 3}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestOrderService_PlaceOrder_BadQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Customer: validCustomer(),
		Lines:    []usecase.CartLine{{DishID: uuid.New(), Quantity: 0}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_PlaceOrder_QuantityLimit(t *testing.T) {
	dishID := uuid.New()

	tests := []struct {
		name  string
		lines []usecase.CartLine
	}{
		{
			name:  "single line over the limit",
			lines: []usecase.CartLine{{DishID: dishID, Quantity: maxLineQuantity + 1}},
		},
		{
			name: "repeated lines sum over the limit",
			lines: []usecase.CartLine{
				{DishID: dishID, Quantity: 60},
				{DishID: dishID, Quantity: 40},
			},
		},
		{
			name: "repeated lines that would overflow",
			lines: []usecase.CartLine{
				{DishID: dishID, Quantity: math.MaxInt},
				{DishID: dishID, Quantity: math.MaxInt},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
				Customer: validCustomer(),
				Lines:    tt.lines,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestMergeCartLines(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	merged, err := mergeCartLines([]usecase.CartLine{
		{DishID: first, Quantity: 2},
		{DishID: second, Quantity: 1},
		{DishID: first, Quantity: 97},
	})

	require.NoError(t, err)
	assert.Equal(t, []usecase.CartLine{
		{DishID: first, Quantity: 99},
		{DishID: second, Quantity: 1},
	}, merged)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		allowed bool
	}{
		{name: "confirm pending", from: entity.OrderPending, to: entity.OrderConfirmed, allowed: true},
		{name: "deliver confirmed", from: entity.OrderConfirmed, to: entity.OrderDelivered, allowed: true},
		{name: "cancel confirmed", from: entity.OrderConfirmed, to: entity.OrderCancelled, allowed: true},
		{name: "deliver pending", from: entity.OrderPending, to: entity.OrderDelivered},
		{name: "cancel delivered", from: entity.OrderDelivered, to: entity.OrderCancelled},
		{name: "reopen cancelled", from: entity.OrderCancelled, to: entity.OrderPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			id := uuid.New()

			expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
				f.EXPECT().OrderRepo().Return(fx.orderRepo)
			})
			fx.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Status: tt.from}, nil)
			if tt.allowed {
				fx.orderRepo.EXPECT().UpdateStatus(ctx, id, tt.to).Return(nil)
				fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)
			}

			order, err := fx.service.UpdateOrderStatus(ctx, id, tt.to)

			if !tt.allowed {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().OrderRepo().Return(fx.orderRepo)
	})
	fx.orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrderStatus(ctx, id, entity.OrderConfirmed)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New(), Status: entity.OrderPending}}

	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().OrderRepo().Return(fx.orderRepo)
	})
	fx.orderRepo.EXPECT().List(ctx, entity.OrderPending).Return(orders, nil)

	result, err := fx.service.ListOrders(ctx, entity.OrderPending)

	require.NoError(t, err)
	assert.Equal(t, orders, result)

	_, err = fx.service.ListOrders(ctx, "lost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
