package handler

import (
	"onevisit/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// businessIDFrom reads the authenticated business scope set by the auth middleware.
func businessIDFrom(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyBusinessID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("business scope missing from context")
	}

	return id, nil
}

// userIDFrom reads the authenticated user ID set by the auth middleware.
func userIDFrom(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user identity missing from context")
	}

	return id, nil
}
