package usecase

import (
	"context"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLine is one dish and quantity from the cart.
type CartLine struct {
	DishID   uuid.UUID
	Quantity int
}

// PlaceOrderInput is a checkout. UserID is set when a customer is signed in.
type PlaceOrderInput struct {
	UserID   *uuid.UUID
	Customer entity.Customer
	Lines    []CartLine
}

// PlaceOrderOutput returns the stored order and the WhatsApp link that submits it.
type PlaceOrderOutput struct {
	Order       *entity.Order `json:"order"`
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// OrderUsecase handles checkout and the admin order queue.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error)

	// ListOrders returns orders newest first; an empty status lists all.
	ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
