package service

import (
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessClaims are the verified claims extracted from a dashboard access token.
type AccessClaims struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       entity.Role
	ExpiresAt  time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a dashboard user.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateAccessToken verifies a token string and returns its claims.
	ValidateAccessToken(token string) (*AccessClaims, error)
}
