package usecase

import (
	"context"
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignRequest captures a new draft campaign.
type CreateCampaignRequest struct {
	Name            string
	Description     string
	Type            entity.CampaignType
	MessageTemplate string
	MessageType     entity.MessageType
	ScheduledAt     *time.Time
}

// CampaignSendResult summarizes a campaign dispatch.
type CampaignSendResult struct {
	Campaign   *entity.Campaign
	Sent       int
	Failed     int
	Recipients int
}

// CampaignUsecase defines the dashboard-facing campaign use cases.
type CampaignUsecase interface {
	// CreateCampaign stores a new campaign in DRAFT status.
	CreateCampaign(ctx context.Context, businessID, createdByID uuid.UUID, req *CreateCampaignRequest) (*entity.Campaign, error)

	// ListCampaigns returns all campaigns owned by the business, newest first.
	ListCampaigns(ctx context.Context, businessID uuid.UUID) ([]*entity.Campaign, error)

	// SendCampaign dispatches a campaign to every consented customer of the
	// business, recording one Message row per recipient, and marks the
	// campaign SENT.
	SendCampaign(ctx context.Context, businessID, campaignID uuid.UUID) (*CampaignSendResult, error)
}
