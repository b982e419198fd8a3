package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	Type            string    `gorm:"type:varchar(20);not null"`
	Status          string    `gorm:"type:varchar(20);index;not null"`
	BusinessID      uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByID     uuid.UUID `gorm:"type:uuid;not null"`
	ScheduledAt     *time.Time
	SentAt          *time.Time
	MessageTemplate string `gorm:"type:text;not null"`
	MessageType     string `gorm:"type:varchar(20);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Messages []MessageModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
