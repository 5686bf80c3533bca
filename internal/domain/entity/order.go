package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered, OrderCancelled},
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order in s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Customer is the contact data typed at checkout.
type Customer struct {
	FullName string `json:"full_name"`
	Cedula   string `json:"cedula"`
	Address  string `json:"address"`
	WhatsApp string `json:"whatsapp"`
}

// OrderItem is one cart line, priced from the menu at checkout.
type OrderItem struct {
	DishID   uuid.UUID `json:"dish_id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    int64     `json:"price"` // Unit price.
}

// Subtotal is quantity times unit price.
func (i OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.Price
}

// Order is a checkout submitted to the restaurant.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	UserID    *uuid.UUID  `json:"user_id,omitempty"` // Set when a signed-in customer ordered.
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ComputeTotal sums the item subtotals.
func (o *Order) ComputeTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}
