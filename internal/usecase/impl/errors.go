package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "aunerarroz/internal/delivery/context"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/service"

	"github.com/pkg/errors"
)

// surfaceError passes application errors and cancellation through unchanged
// and turns anything else into ErrBackendUnavailable.
func surfaceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var dbErr *domainerrors.DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return domainerrors.ErrBackendUnavailable.WithDetails(dbErr.Details())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrBackendUnavailable, err.Error())
}

// publishEvent sends a domain event after commit. A failure is logged and
// never undoes the committed work.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType, aggregateID string, payload map[string]any) {
	if publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", aggregateID),
			slog.Any("error", err),
		)
	}
}
