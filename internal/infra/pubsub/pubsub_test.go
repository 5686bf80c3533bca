package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aunerarroz/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.DomainEvent {
	return &service.DomainEvent{
		RequestID:   "req-1",
		Type:        service.EventPointsRedeemed,
		AggregateID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		OccurredAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Payload:     map[string]any{"award": 50},
	}
}

func TestEventAttributes(t *testing.T) {
	event := newTestEvent()

	attrs := eventAttributes(event)
	assert.Equal(t, service.EventPointsRedeemed, attrs["type"])
	assert.Equal(t, event.AggregateID, attrs["aggregate_id"])
	assert.Equal(t, "req-1", attrs["request_id"])

	event.RequestID = ""
	_, ok := eventAttributes(event)["request_id"]
	assert.False(t, ok)
}

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, "aunerarroz.order.placed", subjectFor("aunerarroz", service.EventOrderPlaced))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.EventPointsRedeemed, received.Message.Attributes["type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.AggregateID, decoded.AggregateID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.Publish(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.Publish(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}
