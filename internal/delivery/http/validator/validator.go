// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator wraps a validator.Validate instance for echo.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(),
	}
}

// Validate runs struct validation and maps failures to a 400 HTTPError.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
