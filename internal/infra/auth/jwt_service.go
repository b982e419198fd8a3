// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"onevisit/config"
	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/service"
)

const defaultAccessTTL = time.Hour * 24

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user's
// identity, business scope and role.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        user.ID.String(),            // Subject (who the token is for)
		"businessId": user.BusinessID.String(),    // Business scope of the user
		"role":       string(user.Role),           // Role for stateless authorization
		"iat":        now.Unix(),                  // Issued At
		"exp":        now.Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateAccessToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("malformed token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid subject claim")
	}

	businessRaw, _ := claims["businessId"].(string)
	businessID, err := uuid.Parse(businessRaw)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid business claim")
	}

	role, _ := claims["role"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("missing expiration claim")
	}

	return &service.AccessClaims{
		UserID:     userID,
		BusinessID: businessID,
		Role:       entity.Role(role),
		ExpiresAt:  exp.Time,
	}, nil
}
