package impl

import (
	"context"
	"log/slog"

	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/domain/service"

	"go.uber.org/fx"
)

// SessionEventRelayParams holds dependencies for the session event relay, injected by Fx.
type SessionEventRelayParams struct {
	fx.In
	fx.Lifecycle

	Identity  service.IdentityProvider
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

var sessionEventTypes = map[entity.SessionEventType]string{
	entity.SessionSignedIn:         service.EventSessionSignedIn,
	entity.SessionSignedOut:        service.EventSessionSignedOut,
	entity.SessionPasswordRecovery: service.EventSessionPasswordRecovery,
}

// SessionEventRelay forwards identity provider notifications to the event
// publisher for as long as the application runs.
type SessionEventRelay struct {
	identity  service.IdentityProvider
	publisher service.EventPublisher
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionEventRelay builds the relay and ties it to the application lifecycle.
func NewSessionEventRelay(params SessionEventRelayParams) *SessionEventRelay {
	relay := &SessionEventRelay{
		identity:  params.Identity,
		publisher: params.Publisher,
		logger:    params.Logger,
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStart: func(context.Context) error {
				relay.Start()

				return nil
			},
			OnStop: func(ctx context.Context) error {
				return relay.Stop(ctx)
			},
		})
	}

	return relay
}

// Start subscribes to the identity provider and relays in the background.
func (r *SessionEventRelay) Start() {
	events, unsubscribe := r.identity.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		defer unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				r.relay(ctx, event)
			}
		}
	}()

	r.logger.Info("Session event relay started")
}

// Stop ends the relay and waits for it, or for ctx.
func (r *SessionEventRelay) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *SessionEventRelay) relay(ctx context.Context, event entity.SessionEvent) {
	eventType, ok := sessionEventTypes[event.Type]
	if !ok {
		r.logger.Warn("Unknown session event", slog.String("event", string(event.Type)))

		return
	}

	subject := event.Subject()
	payload := map[string]any{"user_id": subject.String()}
	if event.Session != nil && event.Session.Email != "" {
		payload["email"] = event.Session.Email
	}

	publishEvent(ctx, r.publisher, r.logger, eventType, subject.String(), payload)
}
