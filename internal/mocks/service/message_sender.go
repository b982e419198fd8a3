package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMessageSender is a mock type for the MessageSender interface.
type MockMessageSender struct {
	mock.Mock
}

type MockMessageSender_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageSender) EXPECT() *MockMessageSender_Expecter {
	return &MockMessageSender_Expecter{mock: &_m.Mock}
}

// NewMockMessageSender creates a new mock, registering cleanup assertions on t.
func NewMockMessageSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageSender {
	m := &MockMessageSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockMessageSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	ret := _m.Called(ctx, to, body)

	return ret.String(0), ret.Error(1)
}

func (e *MockMessageSender_Expecter) SendSMS(ctx, to, body any) *mock.Call {
	return e.mock.On("SendSMS", ctx, to, body)
}

func (_m *MockMessageSender) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	ret := _m.Called(ctx, to, body)

	return ret.String(0), ret.Error(1)
}

func (e *MockMessageSender_Expecter) SendWhatsApp(ctx, to, body any) *mock.Call {
	return e.mock.On("SendWhatsApp", ctx, to, body)
}
