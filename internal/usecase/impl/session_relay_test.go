package impl

import (
	"context"
	"testing"
	"time"

	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/domain/service"
	mockSvc "aunerarroz/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionEventRelay_PublishesProviderEvents(t *testing.T) {
	identity := mockSvc.NewMockIdentityProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	userID := uuid.New()

	events := make(chan entity.SessionEvent, 2)
	unsubscribed := make(chan struct{})
	identity.EXPECT().Subscribe().Return((<-chan entity.SessionEvent)(events), func() { close(unsubscribed) })

	published := make(chan *service.DomainEvent, 2)
	publisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*service.DomainEvent")).
		RunAndReturn(func(_ context.Context, event *service.DomainEvent) error {
			published <- event

			return nil
		}).
		Times(2)

	relay := NewSessionEventRelay(SessionEventRelayParams{
		Identity:  identity,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	relay.Start()

	events <- entity.SessionEvent{
		Type:    entity.SessionSignedIn,
		UserID:  userID,
		Session: &entity.Session{UserID: userID, Email: "ana@example.com"},
	}
	events <- entity.SessionEvent{Type: entity.SessionSignedOut, UserID: userID}

	for _, want := range []string{service.EventSessionSignedIn, service.EventSessionSignedOut} {
		select {
		case event := <-published:
			assert.Equal(t, want, event.Type)
			assert.Equal(t, userID.String(), event.AggregateID)
			assert.Equal(t, userID.String(), event.Payload["user_id"])
		case <-time.After(time.Second):
			t.Fatalf("expected a %s event", want)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, relay.Stop(ctx))
	<-unsubscribed
}

func TestSessionEventRelay_StopBeforeStart(t *testing.T) {
	relay := NewSessionEventRelay(SessionEventRelayParams{
		Identity: mockSvc.NewMockIdentityProvider(t),
		Logger:   newDiscardLogger(),
	})

	assert.NoError(t, relay.Stop(context.Background()))
}
