package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository defines the standard operations for visit persistence.
type VisitRepository interface {
	// Create persists a new visit record.
	Create(ctx context.Context, visit *entity.Visit) error

	// ListByCustomer returns all visits of a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error)
}
