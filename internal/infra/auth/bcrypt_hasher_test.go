package auth

import (
	"testing"

	"aunerarroz/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("Arroz6000+2000")
	require.NoError(t, err)
	assert.NotEqual(t, "Arroz6000+2000", hash)

	assert.True(t, hasher.Check("Arroz6000+2000", hash))
	assert.False(t, hasher.Check("arroz6000+2000", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected int
	}{
		{name: "nil config", cfg: nil, expected: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, expected: 5},
		{name: "below minimum", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}, expected: bcrypt.DefaultCost},
		{name: "above maximum", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 40}}, expected: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.expected, hasher.cost)
		})
	}
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}
