package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateNavigationQR generates a PNG QR code carrying a navigation launch URI
	GenerateNavigationQR(uri string) ([]byte, error)
}
