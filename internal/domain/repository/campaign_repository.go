package repository

import (
	"context"
	"errors"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampaignNotFound is a domain-specific error returned when a campaign is not found.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository defines the standard operations for campaign persistence.
type CampaignRepository interface {
	// FindByID retrieves a single campaign by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// Create persists a new campaign entity.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// Update modifies an existing campaign entity (status, sentAt).
	Update(ctx context.Context, campaign *entity.Campaign) error

	// ListByBusiness returns all campaigns owned by a business, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Campaign, error)
}
