package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Industry  string    `gorm:"type:varchar(100)"`
	Address   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(20)"`
	Email     string    `gorm:"type:varchar(255)"`
	Website   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Customers []CustomerModel `gorm:"foreignKey:BusinessID"`
	QRCodes   []QRCodeModel   `gorm:"foreignKey:BusinessID"`
	Users     []UserModel     `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
