package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated customer session issued by the identity provider.
type Session struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SessionEventType names a change notified by the identity provider.
type SessionEventType string

const (
	SessionSignedIn         SessionEventType = "SIGNED_IN"
	SessionSignedOut        SessionEventType = "SIGNED_OUT"
	SessionPasswordRecovery SessionEventType = "PASSWORD_RECOVERY"
)

// SessionEvent is one notification from the identity provider. UserID names
// the user the event belongs to; Session is nil when the session disappeared.
type SessionEvent struct {
	Type    SessionEventType
	UserID  uuid.UUID
	Session *Session
}

// Subject returns the user the event belongs to.
func (e SessionEvent) Subject() uuid.UUID {
	if e.UserID != uuid.Nil {
		return e.UserID
	}
	if e.Session != nil {
		return e.Session.UserID
	}

	return uuid.Nil
}

// AppState is the explicit application state a client carries between calls:
// the resolved actor, whether resolution is still running, and the session
// backing a non-admin actor. It is safe for concurrent use.
type AppState struct {
	mu      sync.RWMutex
	actor   Actor
	loading bool
	session *Session
}

// AppStateSnapshot is an immutable copy of AppState.
type AppStateSnapshot struct {
	Actor   Actor    `json:"actor"`
	Loading bool     `json:"loading"`
	Session *Session `json:"session,omitempty"`
}

// NewAppState returns a guest state that has not been resolved yet.
func NewAppState() *AppState {
	return &AppState{actor: GuestActor(), loading: true}
}

// Snapshot copies the current state.
func (s *AppState) Snapshot() AppStateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return AppStateSnapshot{Actor: s.actor, Loading: s.loading, Session: s.session}
}

// Actor returns the current actor.
func (s *AppState) Actor() Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.actor
}

// Session returns the session backing the current actor, if any.
func (s *AppState) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// Loading reports whether resolution is still in progress.
func (s *AppState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// BeginResolve marks resolution as in progress.
func (s *AppState) BeginResolve() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// Resolve sets the actor and session and ends resolution.
func (s *AppState) Resolve(actor Actor, session *Session) {
	s.mu.Lock()
	s.actor = actor
	s.session = session
	s.loading = false
	s.mu.Unlock()
}

// Clear resets to guest and ends resolution.
func (s *AppState) Clear() {
	s.Resolve(GuestActor(), nil)
}
