package auth

import (
	"testing"
	"time"

	"onevisit/config"
	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:         uuid.New(),
		Email:      "owner@thefox.pub",
		Role:       entity.RoleBusinessOwner,
		BusinessID: uuid.New(),
	}
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	user := newTestUser()
	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.BusinessID, claims.BusinessID)
	assert.Equal(t, entity.RoleBusinessOwner, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_ValidateAccessToken_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)

	verifier, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(newTestUser())
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	cfg := newTestConfig("test-secret")
	cfg.Auth.AccessTokenTTL = time.Nanosecond

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(newTestUser())
	require.NoError(t, err)

	time.Sleep(time.Second)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}
