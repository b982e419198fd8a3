// Package usecase defines the application service interfaces and their
// request/response models.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// OnboardRequest carries the untrusted form fields submitted from the public
// QR landing page.
type OnboardRequest struct {
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	DateOfBirth      string   `json:"dateOfBirth"`
	Gender           string   `json:"gender"`
	DrinkPreferences []string `json:"drinkPreferences"`
	EventPreferences []string `json:"eventPreferences"`
	ConsentGiven     bool     `json:"consentGiven"`
	QRCode           string   `json:"qrCode"`
}

// OnboardResult is the success payload of an onboarding.
type OnboardResult struct {
	CustomerID uuid.UUID
	Message    string
}

// OnboardingUsecase defines the public customer onboarding use case.
type OnboardingUsecase interface {
	// Onboard validates a landing-form submission, creates the customer with
	// correct business attribution, records the first visit when a QR code
	// resolved, and emits an analytics fact.
	Onboard(ctx context.Context, req *OnboardRequest) (*OnboardResult, error)
}
