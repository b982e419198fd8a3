package qrcode

import (
	"fmt"

	"onevisit/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeImageService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeImageService creates a new QR code image service instance
func NewQRCodeImageService(size int, errorCorrectionLevel string) service.QRCodeImageService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeImageService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG renders the given content as a PNG image.
func (s *qrcodeImageService) GeneratePNG(content string) ([]byte, error) {
	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
