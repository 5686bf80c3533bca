package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const defaultSubjectPrefix = "aunerarroz"

// natsPublisher publishes each event on "<prefix>.<event type>".
type natsPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

// NewNatsPublisher connects to the NATS server at url.
func NewNatsPublisher(url, subjectPrefix string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := nats.Connect(url, nats.Name(defaultSubjectPrefix))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to NATS")
	}

	prefix := strings.Trim(subjectPrefix, ".")
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}

	logger.Info("NATS publisher initialized",
		slog.String("url", conn.ConnectedUrlRedacted()),
		slog.String("subject_prefix", prefix),
	)

	return &natsPublisher{
		conn:   conn,
		prefix: prefix,
		logger: logger,
	}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(subjectFor(p.prefix, event.Type))
	msg.Data = data
	for key, value := range eventAttributes(event) {
		msg.Header.Set(key, value)
	}
	if event.RequestID != "" {
		msg.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrapf(err, "failed to publish %s", msg.Subject)
	}

	p.logger.DebugContext(ctx, "[NATS] Event published", slog.String("subject", msg.Subject))

	return nil
}

// Close flushes pending messages before closing the connection.
func (p *natsPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()

		return errors.WithStack(err)
	}

	return nil
}

func subjectFor(prefix, eventType string) string {
	return prefix + "." + eventType
}
