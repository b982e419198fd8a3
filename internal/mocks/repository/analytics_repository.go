package repository

import (
	"context"
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsRepository is a mock type for the AnalyticsRepository interface.
type MockAnalyticsRepository struct {
	mock.Mock
}

type MockAnalyticsRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAnalyticsRepository) EXPECT() *MockAnalyticsRepository_Expecter {
	return &MockAnalyticsRepository_Expecter{mock: &_m.Mock}
}

// NewMockAnalyticsRepository creates a new mock, registering cleanup assertions on t.
func NewMockAnalyticsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAnalyticsRepository {
	m := &MockAnalyticsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockAnalyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (e *MockAnalyticsRepository_Expecter) Create(ctx any, event any) *mock.Call {
	return e.mock.On("Create", ctx, event)
}

func (_m *MockAnalyticsRepository) SumMetric(ctx context.Context, businessID uuid.UUID, metric string, from, to time.Time) (float64, error) {
	ret := _m.Called(ctx, businessID, metric, from, to)

	return ret.Get(0).(float64), ret.Error(1)
}

func (e *MockAnalyticsRepository_Expecter) SumMetric(ctx, businessID, metric, from, to any) *mock.Call {
	return e.mock.On("SumMetric", ctx, businessID, metric, from, to)
}
