package service

import (
	"context"

	"aunerarroz/internal/domain/entity"
)

// IdentityProvider authenticates customers and notifies session changes.
// Admin sign-in never goes through it.
type IdentityProvider interface {
	// SignUp creates the account with a customer role and signs it in.
	SignUp(ctx context.Context, email, password, fullName string) (*entity.Session, error)

	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut ends the session identified by its refresh token.
	SignOut(ctx context.Context, session *entity.Session) error

	// GetCurrentSession returns the session for an access token, or nil when
	// the token is absent, expired or invalid.
	GetCurrentSession(ctx context.Context, accessToken string) (*entity.Session, error)

	// ResetPasswordForEmail mails a one-time code. Unknown emails succeed silently.
	ResetPasswordForEmail(ctx context.Context, email string) error

	// VerifyOneTimeCode checks the mailed code and, when newPassword is not
	// empty, replaces the password. It returns a new session.
	VerifyOneTimeCode(ctx context.Context, email, code, newPassword string) (*entity.Session, error)

	// Subscribe returns a stream of session changes and a func that ends it.
	Subscribe() (<-chan entity.SessionEvent, func())
}
