package qrcode

import (
	"aunerarroz/config"
	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	minSize     = 64
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService builds the printer for redemption code QR images from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size >= minSize {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:  size,
		level: parseRecoveryLevel(level),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCodeQR renders the bare code digits, which is exactly what the
// customer would otherwise type into the redeem form.
func (s *qrcodeService) GenerateCodeQR(code string) ([]byte, error) {
	if _, ok := entity.ParseCodeKind(code); !ok {
		return nil, errors.Errorf("invalid redemption code %q", code)
	}

	qrCode, err := qrcode.New(code, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
