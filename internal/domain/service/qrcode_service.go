package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateContactQR encodes a contact link (wa.me, tel:, mailto:) as a PNG QR code
	GenerateContactQR(link string) ([]byte, error)
}
