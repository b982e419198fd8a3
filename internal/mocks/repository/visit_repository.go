package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVisitRepository is a mock type for the VisitRepository interface.
type MockVisitRepository struct {
	mock.Mock
}

type MockVisitRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockVisitRepository) EXPECT() *MockVisitRepository_Expecter {
	return &MockVisitRepository_Expecter{mock: &_m.Mock}
}

// NewMockVisitRepository creates a new mock, registering cleanup assertions on t.
func NewMockVisitRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVisitRepository {
	m := &MockVisitRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockVisitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	ret := _m.Called(ctx, visit)

	return ret.Error(0)
}

func (e *MockVisitRepository_Expecter) Create(ctx any, visit any) *mock.Call {
	return e.mock.On("Create", ctx, visit)
}

func (_m *MockVisitRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []*entity.Visit
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Visit)
	}

	return r0, ret.Error(1)
}

func (e *MockVisitRepository_Expecter) ListByCustomer(ctx any, customerID any) *mock.Call {
	return e.mock.On("ListByCustomer", ctx, customerID)
}
