package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	EventType   string    `gorm:"type:varchar(50);not null"`
	StartDate   time.Time `gorm:"index;not null"`
	EndDate     *time.Time
	BusinessID  uuid.UUID `gorm:"type:uuid;index;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
