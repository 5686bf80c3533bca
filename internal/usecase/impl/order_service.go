package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/usecase"
	"aunerarroz/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRestaurantName     = "AUNER ARROZ"
	defaultRestaurantWhatsApp = "+573137471549"
	maxLineQuantity           = 99
)

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type orderService struct {
	txManager      repository.TransactionManager
	publisher      service.EventPublisher
	logger         *slog.Logger
	restaurantName string
	whatsApp       string
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:      params.TxManager,
		publisher:      params.Publisher,
		logger:         params.Logger,
		restaurantName: defaultRestaurantName,
		whatsApp:       defaultRestaurantWhatsApp,
	}
	if params.Config != nil && params.Config.Restaurant != nil {
		if name := strings.TrimSpace(params.Config.Restaurant.Name); name != "" {
			srv.restaurantName = strings.ToUpper(name)
		}
		if number := strings.TrimSpace(params.Config.Restaurant.WhatsApp); number != "" {
			srv.whatsApp = number
		}
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the cart from the menu, stores a pending order and
// returns the WhatsApp link that sends it to the restaurant.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	customer, err := validateCustomer(input.Customer)
	if err != nil {
		return nil, err
	}

	lines, err := mergeCartLines(input.Lines)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:       uuid.New(),
		UserID:   input.UserID,
		Customer: customer,
		Status:   entity.OrderPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.DishID)
		}

		dishes, err := repoFactory.DishRepo().FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to load dishes")
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			dish, ok := dishes[line.DishID]
			if !ok {
				return domainerrors.ErrDishNotFound.WithDetails(line.DishID.String())
			}
			if !dish.Active {
				return domainerrors.ErrDishUnavailable.WithDetails(dish.Name)
			}

			items = append(items, entity.OrderItem{
				DishID:   dish.ID,
				Name:     dish.Name,
				Quantity: line.Quantity,
				Price:    dish.Price,
			})
		}

		order.Items = items
		order.Total = order.ComputeTotal()

		return errors.Wrap(repoFactory.OrderRepo().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	message := buildOrderMessage(srv.restaurantName, order)

	srv.log(ctx).Info("Order placed",
		slog.Any("order_id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Int64("total", order.Total),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderPlaced, order.ID.String(), map[string]any{
		"total":    order.Total,
		"items":    len(order.Items),
		"status":   string(order.Status),
		"customer": order.Customer.FullName,
		"message":  message,
	})

	return &usecase.PlaceOrderOutput{
		Order:       order,
		Message:     message,
		WhatsAppURL: whatsAppURL(srv.whatsApp, message),
	}, nil
}

// ListOrders returns orders newest first.
func (srv *orderService) ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.OrderRepo().List(ctx, status)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	return orders, nil
}

// UpdateOrderStatus moves the order along pending, confirmed, delivered.
// Cancelling is allowed until the order is delivered.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	var (
		order    *entity.Order
		previous entity.OrderStatus
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		var err error
		order, err = orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		previous = order.Status
		if !previous.CanTransitionTo(status) {
			return domainerrors.ErrInvalidOrderStatus.WithDetails(fmt.Sprintf("%s -> %s", previous, status))
		}

		if err := orderRepo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = status

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Order status changed",
		slog.Any("order_id", id),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderUpdated, id.String(), map[string]any{
		"from": string(previous),
		"to":   string(status),
	})

	return order, nil
}

func validateCustomer(customer entity.Customer) (entity.Customer, error) {
	customer.FullName = strings.TrimSpace(customer.FullName)
	customer.Cedula = strings.TrimSpace(customer.Cedula)
	customer.Address = strings.TrimSpace(customer.Address)
	customer.WhatsApp = strings.TrimSpace(customer.WhatsApp)

	switch {
	case customer.FullName == "":
		return customer, domainerrors.ErrValidationFailed.WithMessage("Por favor ingresa tu nombre completo")
	case customer.Cedula == "":
		return customer, domainerrors.ErrValidationFailed.WithMessage("Por favor ingresa tu cédula")
	case customer.Address == "":
		return customer, domainerrors.ErrValidationFailed.WithMessage("Por favor ingresa la dirección de entrega")
	case customer.WhatsApp == "":
		return customer, domainerrors.ErrValidationFailed.WithMessage("Por favor ingresa tu número de WhatsApp")
	}

	return customer, nil
}

// mergeCartLines folds repeated dishes into one line, keeping first-seen order.
func mergeCartLines(lines []usecase.CartLine) ([]usecase.CartLine, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	merged := make([]usecase.CartLine, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if line.DishID == uuid.Nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("dish_id is required")
		}
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}
		// Each line is bounded before summing so the merged total cannot overflow.
		if line.Quantity > maxLineQuantity {
			return nil, errQuantityTooLarge()
		}

		if i, ok := index[line.DishID]; ok {
			merged[i].Quantity += line.Quantity
			if merged[i].Quantity > maxLineQuantity {
				return nil, errQuantityTooLarge()
			}
		} else {
			index[line.DishID] = len(merged)
			merged = append(merged, line)
		}
	}

	return merged, nil
}

func errQuantityTooLarge() error {
	return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("quantity must not exceed %d", maxLineQuantity))
}

// buildOrderMessage renders the order the way the restaurant reads it on WhatsApp.
func buildOrderMessage(restaurantName string, order *entity.Order) string {
	var b strings.Builder

	b.WriteString("🍚 *NUEVO PEDIDO - " + restaurantName + "*\n\n")
	b.WriteString("📋 *DATOS DEL CLIENTE:*\n")
	b.WriteString("👤 Nombre: " + order.Customer.FullName + "\n")
	b.WriteString("🆔 Cédula: " + order.Customer.Cedula + "\n")
	b.WriteString("📍 Dirección: " + order.Customer.Address + "\n")
	b.WriteString("📱 WhatsApp: " + order.Customer.WhatsApp + "\n\n")

	b.WriteString("🍽️ *PEDIDO:*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %dx %s - %s\n", item.Quantity, item.Name, util.FormatPrice(item.Subtotal()))
	}

	b.WriteString("\n💰 *TOTAL: " + util.FormatPrice(order.Total) + "*\n")
	b.WriteString("\n¡Gracias por tu pedido! 🙏")

	return b.String()
}

// whatsAppURL builds a wa.me link. Spaces are encoded as %20 since WhatsApp
// shows a literal "+" otherwise.
func whatsAppURL(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, number)

	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
