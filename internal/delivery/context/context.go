// Package context carries request-scoped values (request ID, logger, actor)
// between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyActor     ContextKey = "actor"
	KeyAppState  ContextKey = "app_state"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID or "" when none was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetActor stores the resolved actor on the echo context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the actor resolved by the auth middleware, Guest otherwise.
func GetActor(c echo.Context) entity.Actor {
	if actor, ok := c.Get(string(KeyActor)).(entity.Actor); ok {
		return actor
	}

	return entity.GuestActor()
}

// SetAppState stores the per-request session state on the echo context.
func SetAppState(c echo.Context, state *entity.AppState) {
	c.Set(string(KeyAppState), state)
	SetActor(c, state.Actor())
}

// GetAppState returns the state resolved by the auth middleware, or a fresh guest state.
func GetAppState(c echo.Context) *entity.AppState {
	if state, ok := c.Get(string(KeyAppState)).(*entity.AppState); ok {
		return state
	}

	state := entity.NewAppState()
	state.Clear()

	return state
}
