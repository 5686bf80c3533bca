package service

import (
	"context"
	"time"
)

// Event types published by the use cases.
const (
	EventPointsRedeemed = "points.redeemed"
	EventPointsDeducted = "points.deducted"
	EventCodesGenerated = "points.codes_generated"
	EventOrderPlaced    = "order.placed"
	EventOrderUpdated   = "order.status_changed"

	EventSuggestionCreated  = "suggestion.created"
	EventSuggestionReviewed = "suggestion.reviewed"

	EventSessionSignedIn         = "session.signed_in"
	EventSessionSignedOut        = "session.signed_out"
	EventSessionPasswordRecovery = "session.password_recovery"
)

// DomainEvent is a fact published after a transaction commits.
type DomainEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
