package handler

import (
	"net/http"
	"time"

	"onevisit/internal/delivery/http/response"
	"onevisit/internal/domain/entity"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role"`
	BusinessID string `json:"businessId" validate:"required,uuid"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userView is the user shape returned by auth endpoints. The password hash
// never leaves the server.
type userView struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	BusinessID string     `json:"businessId"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

type authView struct {
	User        userView `json:"user"`
	AccessToken string   `json:"accessToken"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	result, err := h.uc.Register(c.Request().Context(), &usecase.RegisterRequest{
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		Role:       entity.Role(req.Role),
		BusinessID: businessID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthView(result), "User registered successfully")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.Login(c.Request().Context(), &usecase.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthView(result), "Login successful")
}

func toAuthView(result *usecase.AuthResult) authView {
	return authView{
		User: userView{
			ID:         result.User.ID.String(),
			Email:      result.User.Email,
			Name:       result.User.Name,
			Role:       string(result.User.Role),
			BusinessID: result.User.BusinessID.String(),
			LastLogin:  result.User.LastLogin,
		},
		AccessToken: result.AccessToken,
	}
}
