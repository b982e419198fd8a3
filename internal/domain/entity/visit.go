package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit links a customer to a single attendance, optionally attributed to the
// QR code that brought them in.
type Visit struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	QRCodeID    *uuid.UUID
	VisitDate   time.Time
	AmountSpent *float64
	Notes       string
}
