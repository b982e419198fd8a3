package repository

import (
	"context"
	"errors"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrQRCodeNotFound is a domain-specific error returned when a QR code is not found.
var ErrQRCodeNotFound = errors.New("qr code not found")

// QRCodeRepository defines the standard operations for QR code persistence.
type QRCodeRepository interface {
	// FindByID retrieves a single QR code by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error)

	// FindByCode retrieves a single QR code by its opaque code string.
	// Returns ErrQRCodeNotFound when the code does not resolve.
	FindByCode(ctx context.Context, code string) (*entity.QRCode, error)

	// Create persists a new QR code entity.
	Create(ctx context.Context, qrCode *entity.QRCode) error

	// ListByBusiness returns all QR codes owned by a business.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.QRCode, error)

	// IncrementScanCount atomically increments the scan counter by exactly 1.
	IncrementScanCount(ctx context.Context, id uuid.UUID) error

	// SetActive flips the active flag of a QR code.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// TotalScans sums the scan counters of a business's QR codes.
	TotalScans(ctx context.Context, businessID uuid.UUID) (int64, error)
}
