package usecase

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerPage is a single page of a business's customers.
type CustomerPage struct {
	Customers []*entity.Customer
	Total     int64
	Limit     int
	Offset    int
}

// RecordVisitRequest captures a staff-recorded customer visit.
type RecordVisitRequest struct {
	CustomerID  uuid.UUID
	AmountSpent *float64
	Notes       string
}

// CustomerUsecase defines the dashboard-facing customer management use cases.
type CustomerUsecase interface {
	// ListCustomers returns a page of the business's customers.
	ListCustomers(ctx context.Context, businessID uuid.UUID, limit, offset int) (*CustomerPage, error)

	// GetCustomer retrieves one customer, scoped to the business.
	GetCustomer(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error)

	// RecordVisit appends a visit for a customer and updates their visit
	// count, last-visit timestamp and cumulative spend.
	RecordVisit(ctx context.Context, businessID uuid.UUID, req *RecordVisitRequest) (*entity.Customer, error)
}
