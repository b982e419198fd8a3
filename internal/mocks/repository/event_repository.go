package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEventRepository is a mock type for the EventRepository interface.
type MockEventRepository struct {
	mock.Mock
}

type MockEventRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventRepository) EXPECT() *MockEventRepository_Expecter {
	return &MockEventRepository_Expecter{mock: &_m.Mock}
}

// NewMockEventRepository creates a new mock, registering cleanup assertions on t.
func NewMockEventRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventRepository {
	m := &MockEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Event)
	}

	return r0, ret.Error(1)
}

func (e *MockEventRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (_m *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (e *MockEventRepository_Expecter) Create(ctx any, event any) *mock.Call {
	return e.mock.On("Create", ctx, event)
}

func (_m *MockEventRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Event, error) {
	ret := _m.Called(ctx, businessID)

	var r0 []*entity.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Event)
	}

	return r0, ret.Error(1)
}

func (e *MockEventRepository_Expecter) ListByBusiness(ctx any, businessID any) *mock.Call {
	return e.mock.On("ListByBusiness", ctx, businessID)
}

func (_m *MockEventRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, id, active)

	return ret.Error(0)
}

func (e *MockEventRepository_Expecter) SetActive(ctx, id, active any) *mock.Call {
	return e.mock.On("SetActive", ctx, id, active)
}
