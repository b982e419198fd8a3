package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignType classifies the marketing intent of a campaign.
type CampaignType string

const (
	CampaignTypeWelcome      CampaignType = "WELCOME"
	CampaignTypeEventInvite  CampaignType = "EVENT_INVITE"
	CampaignTypeSpecialOffer CampaignType = "SPECIAL_OFFER"
	CampaignTypeBirthday     CampaignType = "BIRTHDAY"
	CampaignTypeWinBack      CampaignType = "WIN_BACK"
	CampaignTypeGeneral      CampaignType = "GENERAL"
)

// CampaignStatus tracks a campaign through its lifecycle.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusSent      CampaignStatus = "SENT"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

// Campaign is a composed marketing message to be dispatched to a business's
// consented customers. MessageTemplate may contain the {name} placeholder,
// replaced per recipient at send time.
type Campaign struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Type            CampaignType
	Status          CampaignStatus
	BusinessID      uuid.UUID
	CreatedByID     uuid.UUID
	ScheduledAt     *time.Time
	SentAt          *time.Time
	MessageTemplate string
	MessageType     MessageType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
