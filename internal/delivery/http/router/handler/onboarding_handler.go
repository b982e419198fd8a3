// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "onevisit/internal/delivery/context"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// onboardResponse is the public landing-form contract. It predates the admin
// API envelope and must stay exactly as released.
type onboardResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type onboardSuccessData struct {
	CustomerID string `json:"customerId"`
	Message    string `json:"message"`
}

// OnboardingHandler serves the public QR landing form submission.
type OnboardingHandler struct {
	uc     usecase.OnboardingUsecase
	logger *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler, injected by Fx.
func NewOnboardingHandler(uc usecase.OnboardingUsecase, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Onboard handles POST /api/customers/onboard.
func (h *OnboardingHandler) Onboard(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	var req usecase.OnboardRequest
	if err := c.Bind(&req); err != nil {
		// Unreadable bodies get the same generic answer as any other
		// unexpected failure.
		logger.Error("failed to bind onboarding request", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, onboardResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}

	result, err := h.uc.Onboard(c.Request().Context(), &req)
	if err != nil {
		// Only client-class errors carry their message to the caller.
		// Server-class failures collapse to the generic body so storage
		// details never leak through the public endpoint.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return c.JSON(appErr.HTTPCode(), onboardResponse{
				Success: false,
				Error:   appErr.Message(),
			})
		}

		logger.Error("onboarding failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, onboardResponse{
			Success: false,
			Error:   "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, onboardResponse{
		Success: true,
		Data: onboardSuccessData{
			CustomerID: result.CustomerID.String(),
			Message:    result.Message,
		},
	})
}
