package service

// QRCodeService renders printable QR codes for redemption codes.
type QRCodeService interface {
	// GenerateCodeQR returns a PNG encoding the code text.
	GenerateCodeQR(code string) ([]byte, error)
}
