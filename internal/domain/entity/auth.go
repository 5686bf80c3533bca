package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail is the only credential provider the local identity provider issues.
const ProviderEmail = "email"

// Authentication is a login credential attached to a user.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // "email"
	ProviderUserID string // The normalized email for the email provider.
	PasswordHash   string // bcrypt hash.
	CreatedAt      time.Time
}

// RefreshToken is a persisted customer session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OneTimeCode is a short numeric code mailed for password recovery.
type OneTimeCode struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string // bcrypt hash of the digits.
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the code can still be verified at now.
func (c *OneTimeCode) IsUsable(now time.Time) bool {
	return c.UsedAt == nil && now.Before(c.ExpiresAt)
}
