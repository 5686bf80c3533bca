package repository

import (
	"context"
	"errors"
	"time"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderSummary aggregates the orders placed in a period.
type OrderSummary struct {
	Count   int
	Revenue int64
	Pending int
}

// OrderRepository persists orders together with their items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders newest first; an empty status lists every order.
	List(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// SummarizeSince counts orders created at or after since, sums their
	// totals and counts the ones still pending. Cancelled orders are included.
	SummarizeSince(ctx context.Context, since time.Time) (OrderSummary, error)

	// ListRecent returns up to limit orders newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Order, error)
}
