package service

import (
	"onevisit/internal/domain/entity"
	"onevisit/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// NewMockTokenService creates a new mock, registering cleanup assertions on t.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockTokenService) GenerateAccessToken(user *entity.User) (string, error) {
	ret := _m.Called(user)

	return ret.String(0), ret.Error(1)
}

func (e *MockTokenService_Expecter) GenerateAccessToken(user any) *mock.Call {
	return e.mock.On("GenerateAccessToken", user)
}

func (_m *MockTokenService) ValidateAccessToken(token string) (*service.AccessClaims, error) {
	ret := _m.Called(token)

	var r0 *service.AccessClaims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.AccessClaims)
	}

	return r0, ret.Error(1)
}

func (e *MockTokenService_Expecter) ValidateAccessToken(token any) *mock.Call {
	return e.mock.On("ValidateAccessToken", token)
}
