package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShareQR generates a PNG QR code that encodes a share URL.
	GenerateShareQR(url string) ([]byte, error)
}
