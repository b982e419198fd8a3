package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines the standard operations for outbound message persistence.
type MessageRepository interface {
	// Create persists a new outbound message record.
	Create(ctx context.Context, message *entity.Message) error

	// ListByCampaign returns all messages produced by a campaign.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Message, error)

	// CountSentByBusiness counts messages with SENT status across a business's customers.
	CountSentByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
