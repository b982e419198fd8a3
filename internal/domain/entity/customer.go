// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender enumerates the values a customer may self-report during onboarding.
type Gender string

const (
	GenderMale           Gender = "MALE"
	GenderFemale         Gender = "FEMALE"
	GenderOther          Gender = "OTHER"
	GenderPreferNotToSay Gender = "PREFER_NOT_TO_SAY"
)

// CommunicationPreference is the channel a customer wants to be contacted on.
type CommunicationPreference string

const (
	CommunicationSMS      CommunicationPreference = "SMS"
	CommunicationWhatsApp CommunicationPreference = "WHATSAPP"
	CommunicationEmail    CommunicationPreference = "EMAIL"
)

// CustomerPreferences captures the structured preference snapshot collected on
// the onboarding form. DrinkTypes and EventTypes are free-text tags.
type CustomerPreferences struct {
	DrinkTypes              []string                `json:"drinkTypes"`
	EventTypes              []string                `json:"eventTypes"`
	CommunicationPreference CommunicationPreference `json:"communicationPreference"`
}

// Customer is the identity and preference record of a venue's patron.
// The phone number is unique across the whole system: a second onboarding
// attempt with the same phone is rejected, never merged.
type Customer struct {
	ID           uuid.UUID           // The Global Unique Identifier (GUID) for the customer.
	Name         string              // Display name, trimmed at creation.
	Phone        string              // Globally unique phone number, trimmed at creation.
	Email        *string             // Optional contact email.
	DateOfBirth  *time.Time          // Optional date of birth.
	Gender       *Gender             // Optional self-reported gender.
	Preferences  CustomerPreferences // Preference snapshot collected at onboarding.
	ConsentGiven bool                // Explicit marketing opt-in; required before creation.
	ConsentDate  *time.Time          // When consent was recorded.
	BusinessID   uuid.UUID           // The owning business (venue) this customer belongs to.
	VisitCount   int                 // Number of recorded visits, starts at 1.
	LastVisit    *time.Time          // Timestamp of the most recent visit.
	TotalSpent   float64             // Cumulative amount spent; zero at creation.
	CreatedAt    time.Time           // Timestamp of when this record was created.
	UpdatedAt    time.Time           // Timestamp of the last modification.
}
