package model

import (
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The unique index on phone is the real enforcement point
// for the one-customer-per-phone rule; the application-level pre-check only
// produces a friendlier error in the common case.
type CustomerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Email        *string   `gorm:"type:varchar(255)"`
	DateOfBirth  *time.Time
	Gender       *string                    `gorm:"type:varchar(20)"`
	Preferences  entity.CustomerPreferences `gorm:"type:jsonb;serializer:json"`
	ConsentGiven bool                       `gorm:"not null"`
	ConsentDate  *time.Time
	BusinessID   uuid.UUID `gorm:"type:uuid;index;not null"`
	VisitCount   int       `gorm:"not null;default:0"`
	LastVisit    *time.Time
	TotalSpent   float64 `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Visits []VisitModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
