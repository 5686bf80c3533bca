package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"aunerarroz/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.level)

	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 10, ErrorCorrectionLevel: "H"}}
	svc = NewQRCodeService(cfg).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Highest, svc.level)
}

func TestQRCodeService_GenerateCodeQR(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}}
	svc := NewQRCodeService(cfg)

	for _, code := range []string{"042", "90210"} {
		t.Run(code, func(t *testing.T) {
			qrBytes, err := svc.GenerateCodeQR(code)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, 128, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateCodeQR_RejectsInvalidCode(t *testing.T) {
	svc := NewQRCodeService(nil)

	for _, code := range []string{"", "12", "1234", "12a", "123456"} {
		_, err := svc.GenerateCodeQR(code)
		assert.Error(t, err, code)
	}
}
