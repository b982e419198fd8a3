package impl

import (
	"context"
	"time"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCustomerPageSize = 50
	maxCustomerPageSize     = 200
)

type customerService struct {
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	TxManager    repository.TransactionManager
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		txManager:    params.TxManager,
	}
}

// ListCustomers returns a page of the business's customers.
func (s *customerService) ListCustomers(ctx context.Context, businessID uuid.UUID, limit, offset int) (*usecase.CustomerPage, error) {
	if limit <= 0 {
		limit = defaultCustomerPageSize
	}
	if limit > maxCustomerPageSize {
		limit = maxCustomerPageSize
	}
	if offset < 0 {
		offset = 0
	}

	customers, total, err := s.customerRepo.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers by business")
	}

	return &usecase.CustomerPage{
		Customers: customers,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// GetCustomer retrieves one customer, scoped to the business.
func (s *customerService) GetCustomer(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	// Customers of other businesses are indistinguishable from missing ones.
	if customer.BusinessID != businessID {
		return nil, domainerrors.ErrCustomerNotFound
	}

	return customer, nil
}

// RecordVisit appends a visit for a customer and updates their counters.
func (s *customerService) RecordVisit(ctx context.Context, businessID uuid.UUID, req *usecase.RecordVisitRequest) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, businessID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customer.VisitCount++
	customer.LastVisit = &now
	if req.AmountSpent != nil {
		customer.TotalSpent += *req.AmountSpent
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.CustomerRepo().Update(ctx, customer); err != nil {
			return err
		}

		visit := &entity.Visit{
			CustomerID:  customer.ID,
			VisitDate:   now,
			AmountSpent: req.AmountSpent,
			Notes:       req.Notes,
		}

		return f.VisitRepo().Create(ctx, visit)
	})
	if err != nil {
		return nil, errors.Wrap(err, "record visit transaction failed")
	}

	return customer, nil
}
