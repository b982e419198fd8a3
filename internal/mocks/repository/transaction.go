package repository

import (
	"context"

	"onevisit/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock type for the TransactionManager interface.
type MockTransactionManager struct {
	mock.Mock
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// NewMockTransactionManager creates a new mock, registering cleanup assertions on t.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	return ret.Error(0)
}

func (e *MockTransactionManager_Expecter) Execute(ctx any, fn any) *mock.Call {
	return e.mock.On("Execute", ctx, fn)
}

// MockRepositoryFactory is a mock type for the RepositoryFactory interface.
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewMockRepositoryFactory creates a new mock, registering cleanup assertions on t.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	ret := _m.Called()

	var r0 repository.CustomerRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.CustomerRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) CustomerRepo() *mock.Call {
	return e.mock.On("CustomerRepo")
}

func (_m *MockRepositoryFactory) VisitRepo() repository.VisitRepository {
	ret := _m.Called()

	var r0 repository.VisitRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.VisitRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) VisitRepo() *mock.Call {
	return e.mock.On("VisitRepo")
}

func (_m *MockRepositoryFactory) AnalyticsRepo() repository.AnalyticsRepository {
	ret := _m.Called()

	var r0 repository.AnalyticsRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.AnalyticsRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) AnalyticsRepo() *mock.Call {
	return e.mock.On("AnalyticsRepo")
}

func (_m *MockRepositoryFactory) BusinessRepo() repository.BusinessRepository {
	ret := _m.Called()

	var r0 repository.BusinessRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.BusinessRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) BusinessRepo() *mock.Call {
	return e.mock.On("BusinessRepo")
}

func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	var r0 repository.UserRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.UserRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) UserRepo() *mock.Call {
	return e.mock.On("UserRepo")
}

func (_m *MockRepositoryFactory) CampaignRepo() repository.CampaignRepository {
	ret := _m.Called()

	var r0 repository.CampaignRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.CampaignRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) CampaignRepo() *mock.Call {
	return e.mock.On("CampaignRepo")
}

func (_m *MockRepositoryFactory) MessageRepo() repository.MessageRepository {
	ret := _m.Called()

	var r0 repository.MessageRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.MessageRepository)
	}

	return r0
}

func (e *MockRepositoryFactory_Expecter) MessageRepo() *mock.Call {
	return e.mock.On("MessageRepo")
}
