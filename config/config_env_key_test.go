package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"admin": map[string]any{
			"passwordHash": "",
		},
		"mailer": map[string]any{
			"apiKey":    "",
			"fromEmail": "",
		},
		"media": map[string]any{
			"bucketUrl": "mem://",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ADMIN_PASSWORDHASH", want: "admin.passwordHash"},
		{envKey: "MAILER_APIKEY", want: "mailer.apiKey"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RESTAURANT_WHATSAPP", want: "restaurant.whatsapp"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "customer", cfg.Auth.RoleFallback)
	assert.Equal(t, defaultOTPTTL, cfg.Auth.OTPTTL)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 50, cfg.Points.PointsPerVisit)
	assert.Equal(t, 350, cfg.Points.PointsPerReferral)
	assert.Equal(t, 6000, cfg.Points.MinimumRedeem)
	assert.Equal(t, 50, cfg.Points.CodesPerBatch)
	assert.Equal(t, int64(5<<20), cfg.Media.MaxImageSize)
	assert.Equal(t, int64(50<<20), cfg.Media.MaxVideoSize)

	cfg = &Config{Points: &PointsConfig{PointsPerVisit: 75}}
	applyDefaults(cfg)
	assert.Equal(t, 75, cfg.Points.PointsPerVisit)
	assert.Equal(t, 350, cfg.Points.PointsPerReferral)
}

func TestMediaConfig_MaxUploadSize(t *testing.T) {
	var unset *MediaConfig
	assert.Equal(t, defaultMaxVideoSize, unset.MaxUploadSize())

	cfg := &MediaConfig{MaxImageSize: 8 << 20, MaxVideoSize: 20 << 20}
	assert.Equal(t, int64(20<<20), cfg.MaxUploadSize())
}
