// Package repository contains hand-maintained testify mocks for the
// domain repository interfaces.
package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock type for the CustomerRepository interface.
type MockCustomerRepository struct {
	mock.Mock
}

type MockCustomerRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCustomerRepository) EXPECT() *MockCustomerRepository_Expecter {
	return &MockCustomerRepository_Expecter{mock: &_m.Mock}
}

// NewMockCustomerRepository creates a new mock, registering cleanup assertions on t.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Customer)
	}

	return r0, ret.Error(1)
}

func (e *MockCustomerRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (_m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	ret := _m.Called(ctx, phone)

	var r0 *entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Customer)
	}

	return r0, ret.Error(1)
}

func (e *MockCustomerRepository_Expecter) FindByPhone(ctx any, phone any) *mock.Call {
	return e.mock.On("FindByPhone", ctx, phone)
}

func (_m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	ret := _m.Called(ctx, customer)

	return ret.Error(0)
}

func (e *MockCustomerRepository_Expecter) Create(ctx any, customer any) *mock.Call {
	return e.mock.On("Create", ctx, customer)
}

func (_m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	ret := _m.Called(ctx, customer)

	return ret.Error(0)
}

func (e *MockCustomerRepository_Expecter) Update(ctx any, customer any) *mock.Call {
	return e.mock.On("Update", ctx, customer)
}

func (_m *MockCustomerRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, int64, error) {
	ret := _m.Called(ctx, businessID, limit, offset)

	var r0 []*entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Customer)
	}

	return r0, ret.Get(1).(int64), ret.Error(2)
}

func (e *MockCustomerRepository_Expecter) ListByBusiness(ctx, businessID, limit, offset any) *mock.Call {
	return e.mock.On("ListByBusiness", ctx, businessID, limit, offset)
}

func (_m *MockCustomerRepository) ListConsentedByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Customer, error) {
	ret := _m.Called(ctx, businessID)

	var r0 []*entity.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Customer)
	}

	return r0, ret.Error(1)
}

func (e *MockCustomerRepository_Expecter) ListConsentedByBusiness(ctx any, businessID any) *mock.Call {
	return e.mock.On("ListConsentedByBusiness", ctx, businessID)
}

func (_m *MockCustomerRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, businessID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (e *MockCustomerRepository_Expecter) CountByBusiness(ctx any, businessID any) *mock.Call {
	return e.mock.On("CountByBusiness", ctx, businessID)
}
