package impl

import (
	"context"
	"testing"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	mockRepo "onevisit/internal/mocks/repository"
	mockSvc "onevisit/internal/mocks/service"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authFixtures holds all test dependencies for auth service tests.
type authFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		BusinessRepo: businessRepo,
		Hasher:       hasher,
		TokenService: tokenService,
	})

	return authFixtures{
		service:      svc,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	businessID := uuid.New()
	req := &usecase.RegisterRequest{
		Email:      "Owner@Example.com",
		Name:       "Alex Reyes",
		Password:   "Password123!",
		BusinessID: businessID,
	}

	f.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, Name: "The Crown"}, nil)
	f.userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(req.Password).Return("hashed_password", nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()

			assert.Equal(t, "owner@example.com", user.Email)
			assert.Equal(t, entity.RoleStaff, user.Role)
			assert.Equal(t, "hashed_password", user.PasswordHash)
		}).
		Return(nil)
	f.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("*entity.User")).
		Return("access-token", nil)

	result, err := f.service.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "owner@example.com", result.User.Email)
}

func TestAuthService_Register_UnknownBusiness(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	businessID := uuid.New()
	req := &usecase.RegisterRequest{
		Email:      "owner@example.com",
		Password:   "Password123!",
		BusinessID: businessID,
	}

	f.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)

	_, err := f.service.Register(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	businessID := uuid.New()
	req := &usecase.RegisterRequest{
		Email:      "owner@example.com",
		Password:   "Password123!",
		BusinessID: businessID,
	}

	f.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID}, nil)
	f.userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "owner@example.com"}, nil)

	_, err := f.service.Register(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, &usecase.RegisterRequest{
		Email:    "not-an-email",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmailFormat)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleBusinessOwner,
		BusinessID:   uuid.New(),
	}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.User)

			require.NotNil(t, updated.LastLogin)
		}).
		Return(nil)
	f.tokenService.EXPECT().GenerateAccessToken(user).Return("access-token", nil)

	result, err := f.service.Login(ctx, &usecase.LoginRequest{
		Email:    "Owner@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: "hashed_password",
	}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
