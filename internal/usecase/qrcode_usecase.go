package usecase

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateQRCodeRequest captures a new venue QR code.
type CreateQRCodeRequest struct {
	Name        string
	Description string
}

// QRCodeUsecase defines the dashboard-facing QR code management use cases.
type QRCodeUsecase interface {
	// CreateQRCode issues a new QR code with a random opaque code string.
	CreateQRCode(ctx context.Context, businessID uuid.UUID, req *CreateQRCodeRequest) (*entity.QRCode, error)

	// ListQRCodes returns all QR codes owned by the business.
	ListQRCodes(ctx context.Context, businessID uuid.UUID) ([]*entity.QRCode, error)

	// SetQRCodeActive activates or deactivates a QR code.
	SetQRCodeActive(ctx context.Context, businessID, qrCodeID uuid.UUID, active bool) (*entity.QRCode, error)

	// GenerateQRCodeImage renders the QR code's landing URL as a PNG image.
	GenerateQRCodeImage(ctx context.Context, businessID, qrCodeID uuid.UUID) ([]byte, error)
}
