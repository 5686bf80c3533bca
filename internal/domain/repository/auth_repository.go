package repository

import (
	"context"
	"errors"
	"time"

	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrTokenNotFound is returned when a refresh token is not found.
	ErrTokenNotFound = errors.New("refresh token not found")
	// ErrOneTimeCodeNotFound is returned when no usable one-time code exists.
	ErrOneTimeCodeNotFound = errors.New("one-time code not found")
)

// AuthRepository stores credentials, customer sessions and one-time codes.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByID looks a session up by the session id its tokens carry.
	FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	DeleteRefreshTokenByID(ctx context.Context, id uuid.UUID) error

	// CreateOneTimeCode stores a new code and invalidates older unused codes for the same email.
	CreateOneTimeCode(ctx context.Context, code *entity.OneTimeCode) error

	// FindLatestOneTimeCode returns the newest unused, unexpired code for email.
	FindLatestOneTimeCode(ctx context.Context, email string, now time.Time) (*entity.OneTimeCode, error)

	MarkOneTimeCodeUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}
