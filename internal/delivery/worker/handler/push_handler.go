package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const envLocal = "local"

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes domain events delivered in the Pub/Sub push format
// and mails the restaurant about new orders.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	mailer         service.Mailer
	adminEmail     string
	restaurantName string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	verifyPushAuth := cfg.PubSub != nil &&
		cfg.PubSub.Provider == pubsub.ProviderGoogle &&
		cfg.Env.Env != envLocal

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		mailer:         params.Mailer,
		restaurantName: "Auner Arroz",
	}
	if cfg.Admin != nil {
		h.adminEmail = cfg.Admin.Email
	}
	if cfg.Restaurant != nil && cfg.Restaurant.Name != "" {
		h.restaurantName = cfg.Restaurant.Name
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so the broker redelivers; everything else is acknowledged.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("type", event.Type),
		slog.String("aggregate_id", event.AggregateID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("type", event.Type),
			slog.String("aggregate_id", event.AggregateID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.DomainEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.DomainEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.EventOrderPlaced:
		return h.notifyOrderPlaced(ctx, event)
	case service.EventOrderUpdated:
		logger.Info("[Worker] Order status changed",
			slog.String("order_id", event.AggregateID),
			slog.Any("from", event.Payload["from"]),
			slog.Any("to", event.Payload["to"]),
		)
	default:
		logger.Debug("[Worker] Event ignored", slog.String("type", event.Type))
	}

	return nil
}

func (h *PushHandler) notifyOrderPlaced(ctx context.Context, event *service.DomainEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	if h.adminEmail == "" {
		logger.Warn("[Worker] Admin email not configured, order notification skipped",
			slog.String("order_id", event.AggregateID),
		)

		return nil
	}

	message, _ := event.Payload["message"].(string)
	if message == "" {
		return errors.Errorf("order %s event carries no message", event.AggregateID)
	}
	customer, _ := event.Payload["customer"].(string)

	subject := fmt.Sprintf("%s: nuevo pedido", h.restaurantName)
	if customer != "" {
		subject = fmt.Sprintf("%s: nuevo pedido de %s", h.restaurantName, customer)
	}

	messageID, err := h.mailer.Send(ctx, &service.Mail{
		ToEmail: h.adminEmail,
		ToName:  h.restaurantName,
		Subject: subject,
		Text:    message,
	})
	if err != nil {
		return newRetryableError(errors.Wrap(err, "failed to send order notification"))
	}

	logger.Info("[Worker] Order notification sent",
		slog.String("order_id", event.AggregateID),
		slog.String("message_id", messageID),
	)

	return nil
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
