package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
// Subject is a user id, or entity.AdminSentinelID for the administrator.
// SessionID is shared by the access and refresh token of one issue.
type Claims struct {
	Roles     []string `json:"roles,omitempty"`
	Type      string   `json:"type"`
	SessionID string   `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates an access token carrying roles and a refresh token for subject.
	// Both carry the same session id.
	GenerateTokens(subject string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies signature, expiry and type of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	GetAccessTokenDuration() time.Duration

	GetRefreshTokenDuration() time.Duration
}
