package impl

import (
	"context"
	"strings"
	"time"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/domain/service"
	"onevisit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		businessRepo: params.BusinessRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
	}
}

// Register creates a new dashboard user and issues an access token.
func (s *authService) Register(ctx context.Context, req *usecase.RegisterRequest) (*usecase.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}
	if !isValidEmail(email) {
		return nil, domainerrors.ErrInvalidEmailFormat
	}

	// The business must exist before a user can be bound to it.
	if _, err := s.businessRepo.FindByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}

	user := &entity.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         role,
		BusinessID:   req.BusinessID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthResult{User: user, AccessToken: token}, nil
}

// Login verifies credentials and issues an access token.
func (s *authService) Login(ctx context.Context, req *usecase.LoginRequest) (*usecase.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error for unknown email and wrong password.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(req.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update last login")
	}

	token, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthResult{User: user, AccessToken: token}, nil
}
