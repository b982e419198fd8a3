// Package service contains hand-maintained testify mocks for the domain
// service interfaces.
package service

import (
	"context"

	"onevisit/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock type for the EventPublisher interface.
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// NewMockEventPublisher creates a new mock, registering cleanup assertions on t.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockEventPublisher) PublishAnalyticsEvent(ctx context.Context, event *service.AnalyticsEventMessage) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (e *MockEventPublisher_Expecter) PublishAnalyticsEvent(ctx any, event any) *mock.Call {
	return e.mock.On("PublishAnalyticsEvent", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func (e *MockEventPublisher_Expecter) Close() *mock.Call {
	return e.mock.On("Close")
}
