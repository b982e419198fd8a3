package model

import (
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsEventModel mirrors the 'analytics_events' table. Rows are
// append-only facts; nothing updates or deletes them.
type AnalyticsEventModel struct {
	ID         uuid.UUID                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID                `gorm:"type:uuid;index;not null"`
	Date       time.Time                `gorm:"index;not null"`
	Metric     string                   `gorm:"type:varchar(64);index;not null"`
	Value      float64                  `gorm:"not null"`
	Metadata   entity.AnalyticsMetadata `gorm:"type:jsonb;serializer:json"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}
