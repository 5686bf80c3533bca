// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"aunerarroz/internal/domain/entity"
)

// SignUpInput defines the data required to register a customer.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// AdminLoginOutput carries the administrator's bearer token.
type AdminLoginOutput struct {
	Actor       entity.Actor `json:"actor"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// SessionUsecase resolves who the client is and moves it between guest,
// customer and administrator. Every operation takes the client's AppState
// explicitly and mutates only that state.
type SessionUsecase interface {
	// ResolveOnStart asks the identity provider for the session behind
	// accessToken and resolves the actor. Loading ends in every outcome.
	ResolveOnStart(ctx context.Context, state *entity.AppState, accessToken string) entity.Actor

	// OnIdentityChanged re-resolves when a session appears and resets to guest
	// when it disappears. Only events for the user behind state apply.
	OnIdentityChanged(ctx context.Context, state *entity.AppState, event entity.SessionEvent) entity.Actor

	// LoginAsAdmin checks the fixed administrator credentials. It never calls the identity provider.
	LoginAsAdmin(ctx context.Context, state *entity.AppState, username, password string) (*AdminLoginOutput, error)

	// LoginAsCustomer delegates to the identity provider. The caller applies
	// the resulting SIGNED_IN notification to its state.
	LoginAsCustomer(ctx context.Context, email, password string) (*entity.Session, error)

	SignUp(ctx context.Context, input SignUpInput) (*entity.Session, error)

	// Logout clears state. Only non-admin actors reach the identity provider.
	Logout(ctx context.Context, state *entity.AppState) error

	RequestPasswordReset(ctx context.Context, email string) error

	VerifyOneTimeCode(ctx context.Context, email, code, newPassword string) (*entity.Session, error)
}
