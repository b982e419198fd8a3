package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMessageRepository is a mock type for the MessageRepository interface.
type MockMessageRepository struct {
	mock.Mock
}

type MockMessageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageRepository) EXPECT() *MockMessageRepository_Expecter {
	return &MockMessageRepository_Expecter{mock: &_m.Mock}
}

// NewMockMessageRepository creates a new mock, registering cleanup assertions on t.
func NewMockMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	ret := _m.Called(ctx, message)

	return ret.Error(0)
}

func (e *MockMessageRepository_Expecter) Create(ctx any, message any) *mock.Call {
	return e.mock.On("Create", ctx, message)
}

func (_m *MockMessageRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Message, error) {
	ret := _m.Called(ctx, campaignID)

	var r0 []*entity.Message
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Message)
	}

	return r0, ret.Error(1)
}

func (e *MockMessageRepository_Expecter) ListByCampaign(ctx any, campaignID any) *mock.Call {
	return e.mock.On("ListByCampaign", ctx, campaignID)
}

func (_m *MockMessageRepository) CountSentByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, businessID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (e *MockMessageRepository_Expecter) CountSentByBusiness(ctx any, businessID any) *mock.Call {
	return e.mock.On("CountSentByBusiness", ctx, businessID)
}
