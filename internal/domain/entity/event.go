package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a venue-hosted happening (live music, quiz night) that campaigns
// can promote to customers.
type Event struct {
	ID          uuid.UUID
	Name        string
	Description string
	EventType   string
	StartDate   time.Time
	EndDate     *time.Time
	BusinessID  uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
