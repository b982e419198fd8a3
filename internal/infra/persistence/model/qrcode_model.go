package model

import (
	"time"

	"github.com/google/uuid"
)

// QRCodeModel mirrors the 'qr_codes' table. Code is the opaque scan-target
// string encoded into the printed QR image.
type QRCodeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code        string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	BusinessID  uuid.UUID `gorm:"type:uuid;index;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	ScansCount  int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Visits []VisitModel `gorm:"foreignKey:QRCodeID"`
}

// TableName explicitly sets the table name for GORM.
func (QRCodeModel) TableName() string {
	return "qr_codes"
}
