// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByPhone retrieves a single customer by their exact phone number.
	// Returns ErrCustomerNotFound when no customer has that phone.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// Create persists a new customer entity. A unique constraint on phone is
	// the real uniqueness guarantee; violations surface as
	// domainerrors.ErrPhoneAlreadyRegistered.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer entity in the storage.
	Update(ctx context.Context, customer *entity.Customer) error

	// ListByBusiness returns a page of a business's customers plus the total count.
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, int64, error)

	// ListConsentedByBusiness returns every customer of a business who has
	// given marketing consent. Used for campaign targeting.
	ListConsentedByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Customer, error)

	// CountByBusiness returns the number of customers owned by a business.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
