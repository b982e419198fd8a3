package entity

import (
	"time"

	"github.com/google/uuid"
)

// QRCode is a venue-issued scannable token that attributes onboardings to a
// business and physical location. Code is the opaque lookup key printed into
// the QR image, distinct from the record ID.
type QRCode struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	BusinessID  uuid.UUID
	IsActive    bool
	ScansCount  int // Incremented once per onboarding attempt that resolves this code.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
