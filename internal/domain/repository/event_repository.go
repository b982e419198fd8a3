package repository

import (
	"context"
	"errors"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is a domain-specific error returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for venue event persistence.
type EventRepository interface {
	// FindByID retrieves a single event by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// Create persists a new event entity.
	Create(ctx context.Context, event *entity.Event) error

	// ListByBusiness returns all events owned by a business, soonest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Event, error)

	// SetActive flips the active flag of an event.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
