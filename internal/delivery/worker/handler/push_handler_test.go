package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aunerarroz/config"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/infra/pubsub"
	mockSvc "aunerarroz/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig(adminEmail string) *config.Config {
	cfg := &config.Config{
		Admin:      &config.AdminConfig{Email: adminEmail},
		Restaurant: &config.RestaurantConfig{Name: "Auner Arroz"},
		PubSub:     &config.PubSubConfig{Provider: pubsub.ProviderLocal},
	}
	cfg.Env.Env = "local"

	return cfg
}

func pushBody(t *testing.T, event *service.DomainEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-42"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func push(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newHandler(t *testing.T, adminEmail string) (*PushHandler, *mockSvc.MockMailer) {
	mailer := mockSvc.NewMockMailer(t)
	h := NewPushHandler(PushHandlerParams{
		Config: newTestConfig(adminEmail),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer: mailer,
	})

	return h, mailer
}

func orderPlaced() *service.DomainEvent {
	return &service.DomainEvent{
		Type:        service.EventOrderPlaced,
		AggregateID: "order-1",
		OccurredAt:  time.Now().UTC(),
		Payload: map[string]any{
			"customer": "Ana Pérez",
			"message":  "¡Hola Auner Arroz!\n• 1x Arroz chino",
			"total":    18000,
		},
	}
}

func TestPushHandler_OrderPlacedMailsAdmin(t *testing.T) {
	h, mailer := newHandler(t, "admin@aunerarroz.co")

	mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Mail")).
		RunAndReturn(func(_ context.Context, mail *service.Mail) (string, error) {
			assert.Equal(t, "admin@aunerarroz.co", mail.ToEmail)
			assert.Equal(t, "Auner Arroz: nuevo pedido de Ana Pérez", mail.Subject)
			assert.Contains(t, mail.Text, "Arroz chino")

			return "msg-1", nil
		})

	rec := push(h, pushBody(t, orderPlaced()))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MailerFailureIsRetried(t *testing.T) {
	h, mailer := newHandler(t, "admin@aunerarroz.co")

	mailer.EXPECT().Send(mock.Anything, mock.Anything).Return("", errors.New("mailersend: 502"))

	rec := push(h, pushBody(t, orderPlaced()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_AcknowledgesWithoutMailing(t *testing.T) {
	tests := []struct {
		name       string
		adminEmail string
		event      *service.DomainEvent
	}{
		{name: "no admin email", adminEmail: "", event: orderPlaced()},
		{name: "status change", adminEmail: "admin@aunerarroz.co", event: &service.DomainEvent{
			Type:        service.EventOrderUpdated,
			AggregateID: "order-1",
			Payload:     map[string]any{"from": "pending", "to": "confirmed"},
		}},
		{name: "points event", adminEmail: "admin@aunerarroz.co", event: &service.DomainEvent{
			Type:        service.EventPointsRedeemed,
			AggregateID: "user-1",
		}},
		{name: "order without message", adminEmail: "admin@aunerarroz.co", event: &service.DomainEvent{
			Type:        service.EventOrderPlaced,
			AggregateID: "order-2",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newHandler(t, tt.adminEmail)

			rec := push(h, pushBody(t, tt.event))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	h, _ := newHandler(t, "admin@aunerarroz.co")

	rec := push(h, []byte(`{"message":{"data":"%%%"}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = push(h, []byte(`{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewPushHandler_VerifiesGooglePushOutsideLocal(t *testing.T) {
	cfg := newTestConfig("")
	cfg.PubSub.Provider = pubsub.ProviderGoogle
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	assert.True(t, h.verifyPushAuth)

	rec := push(h, pushBody(t, orderPlaced()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
