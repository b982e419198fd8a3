package usecase

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterRequest captures a new dashboard user signup.
type RegisterRequest struct {
	Email      string
	Name       string
	Password   string
	Role       entity.Role
	BusinessID uuid.UUID
}

// LoginRequest captures a dashboard login attempt.
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User        *entity.User
	AccessToken string
}

// AuthUsecase defines the dashboard authentication use cases.
type AuthUsecase interface {
	// Register creates a new dashboard user and issues an access token.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
}
