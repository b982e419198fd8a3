package impl

import (
	"context"
	"testing"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	mockRepo "onevisit/internal/mocks/repository"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerFixtures holds all test dependencies for customer service tests.
type customerFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	visitRepo    *mockRepo.MockVisitRepository
}

func createTestCustomerService(t *testing.T) customerFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)

	txManager := newStubTxManager(txMocks{
		customerRepo: customerRepo,
		visitRepo:    visitRepo,
	})

	svc := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		TxManager:    txManager,
	})

	return customerFixtures{
		service:      svc,
		customerRepo: customerRepo,
		visitRepo:    visitRepo,
	}
}

func TestCustomerService_ListCustomers_ClampsPaging(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()
	businessID := uuid.New()

	customers := []*entity.Customer{{ID: uuid.New(), BusinessID: businessID}}

	f.customerRepo.EXPECT().
		ListByBusiness(ctx, businessID, defaultCustomerPageSize, 0).
		Return(customers, int64(1), nil)

	page, err := f.service.ListCustomers(ctx, businessID, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, defaultCustomerPageSize, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Customers, 1)
}

func TestCustomerService_ListCustomers_CapsLimit(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()
	businessID := uuid.New()

	f.customerRepo.EXPECT().
		ListByBusiness(ctx, businessID, maxCustomerPageSize, 10).
		Return([]*entity.Customer{}, int64(0), nil)

	page, err := f.service.ListCustomers(ctx, businessID, 5000, 10)

	require.NoError(t, err)
	assert.Equal(t, maxCustomerPageSize, page.Limit)
}

func TestCustomerService_GetCustomer_OtherBusiness(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	customerID := uuid.New()
	f.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.Customer{ID: customerID, BusinessID: uuid.New()}, nil)

	_, err := f.service.GetCustomer(ctx, uuid.New(), customerID)

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	customerID := uuid.New()
	f.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := f.service.GetCustomer(ctx, uuid.New(), customerID)

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_RecordVisit_UpdatesCounters(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	businessID := uuid.New()
	customer := &entity.Customer{
		ID:         uuid.New(),
		BusinessID: businessID,
		VisitCount: 3,
		TotalSpent: 42.5,
	}
	amount := 17.5

	f.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	f.customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Customer)

			assert.Equal(t, 4, updated.VisitCount)
			assert.InDelta(t, 60.0, updated.TotalSpent, 0.001)
			require.NotNil(t, updated.LastVisit)
		}).
		Return(nil)
	f.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(args mock.Arguments) {
			visit := args.Get(1).(*entity.Visit)

			assert.Equal(t, customer.ID, visit.CustomerID)
			require.NotNil(t, visit.AmountSpent)
			assert.InDelta(t, amount, *visit.AmountSpent, 0.001)
			assert.Nil(t, visit.QRCodeID)
		}).
		Return(nil)

	updated, err := f.service.RecordVisit(ctx, businessID, &usecase.RecordVisitRequest{
		CustomerID:  customer.ID,
		AmountSpent: &amount,
		Notes:       "Friday night",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, updated.VisitCount)
}
