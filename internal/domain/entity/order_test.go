package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{from: OrderPending, to: OrderConfirmed, expected: true},
		{from: OrderPending, to: OrderCancelled, expected: true},
		{from: OrderPending, to: OrderDelivered, expected: false},
		{from: OrderConfirmed, to: OrderDelivered, expected: true},
		{from: OrderConfirmed, to: OrderCancelled, expected: true},
		{from: OrderConfirmed, to: OrderPending, expected: false},
		{from: OrderDelivered, to: OrderCancelled, expected: false},
		{from: OrderCancelled, to: OrderConfirmed, expected: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderDelivered.IsValid())
	assert.False(t, OrderStatus("lost").IsValid())
}

func TestOrder_ComputeTotal(t *testing.T) {
	order := &Order{Items: []OrderItem{
		{Name: "Arroz con pollo", Quantity: 2, Price: 15000},
		{Name: "Jugo natural", Quantity: 3, Price: 6000},
	}}

	assert.Equal(t, int64(30000), order.Items[0].Subtotal())
	assert.Equal(t, int64(48000), order.ComputeTotal())
	assert.Zero(t, (&Order{}).ComputeTotal())
}
