package service

// QRCodeImageService defines the interface for rendering QR code images.
type QRCodeImageService interface {
	// GeneratePNG renders the given content (usually a landing-page URL) as a PNG image.
	GeneratePNG(content string) ([]byte, error)
}
