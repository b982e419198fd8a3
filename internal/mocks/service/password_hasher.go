package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the PasswordHasher interface.
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

// NewMockPasswordHasher creates a new mock, registering cleanup assertions on t.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

func (e *MockPasswordHasher_Expecter) Check(password, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}
