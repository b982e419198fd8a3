package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a dashboard user.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleBusinessOwner Role = "BUSINESS_OWNER"
	RoleStaff         Role = "STAFF"
)

// User is a dashboard operator (venue owner or staff). Users authenticate with
// email and password and act on behalf of exactly one business.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	BusinessID   uuid.UUID
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
