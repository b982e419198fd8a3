package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel mirrors the 'visits' table.
type VisitModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	QRCodeID    *uuid.UUID `gorm:"type:uuid;index"`
	VisitDate   time.Time  `gorm:"not null"`
	AmountSpent *float64   `gorm:"type:numeric(12,2)"`
	Notes       string     `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
