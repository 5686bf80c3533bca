package auth

import (
	"testing"
	"time"

	"aunerarroz/config"
	"aunerarroz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID.String(), []string{"client"})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), accessClaims.Subject)
	assert.Equal(t, []string{"client"}, accessClaims.Roles)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), refreshClaims.Subject)
	assert.Empty(t, refreshClaims.Roles)

	assert.NotEmpty(t, accessClaims.SessionID)
	assert.Equal(t, accessClaims.SessionID, refreshClaims.SessionID)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)
}

func TestJWTService_AdminSentinelSubject(t *testing.T) {
	jwtService := newTestJWTService(t)

	accessToken, _, err := jwtService.GenerateTokens(entity.AdminSentinelID, []string{"admin"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.AdminSentinelID, claims.Subject)
	assert.True(t, entity.RolesFromStrings(claims.Roles).Contains(entity.RoleAdmin))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	for _, token := range []string{"", "invalid.token.here", "a.b"} {
		_, err := jwtService.ValidateAccessToken(token)
		assert.Error(t, err, token)
	}
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService := newTestJWTService(t)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.NewString(), nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	issued := time.Now().Add(-time.Hour)
	jwtService.now = func() time.Time { return issued }

	accessToken, _, err := jwtService.GenerateTokens(uuid.NewString(), nil)
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_Durations(t *testing.T) {
	jwtService := newTestJWTService(t)

	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
