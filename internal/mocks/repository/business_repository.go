package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBusinessRepository is a mock type for the BusinessRepository interface.
type MockBusinessRepository struct {
	mock.Mock
}

type MockBusinessRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBusinessRepository) EXPECT() *MockBusinessRepository_Expecter {
	return &MockBusinessRepository_Expecter{mock: &_m.Mock}
}

// NewMockBusinessRepository creates a new mock, registering cleanup assertions on t.
func NewMockBusinessRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBusinessRepository {
	m := &MockBusinessRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Business
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Business)
	}

	return r0, ret.Error(1)
}

func (e *MockBusinessRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (_m *MockBusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	ret := _m.Called(ctx, business)

	return ret.Error(0)
}

func (e *MockBusinessRepository_Expecter) Create(ctx any, business any) *mock.Call {
	return e.mock.On("Create", ctx, business)
}
