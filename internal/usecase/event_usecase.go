package usecase

import (
	"context"
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventRequest captures a new venue event.
type CreateEventRequest struct {
	Name        string
	Description string
	EventType   string
	StartDate   time.Time
	EndDate     *time.Time
}

// EventUsecase defines the dashboard-facing event management use cases.
type EventUsecase interface {
	// CreateEvent registers a new venue event.
	CreateEvent(ctx context.Context, businessID uuid.UUID, req *CreateEventRequest) (*entity.Event, error)

	// ListEvents returns all events owned by the business, soonest first.
	ListEvents(ctx context.Context, businessID uuid.UUID) ([]*entity.Event, error)

	// SetEventActive activates or deactivates an event.
	SetEventActive(ctx context.Context, businessID, eventID uuid.UUID, active bool) (*entity.Event, error)
}
