package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business represents a venue (bar, restaurant) using the platform.
type Business struct {
	ID        uuid.UUID
	Name      string
	Industry  string
	Address   string
	Phone     string
	Email     string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
