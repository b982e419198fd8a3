package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	CampaignID   *uuid.UUID `gorm:"type:uuid;index"`
	Type         string     `gorm:"type:varchar(20);not null"`
	Content      string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:varchar(20);index;not null"`
	SentAt       *time.Time
	ErrorMessage string `gorm:"type:text"`
	ExternalID   string `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
