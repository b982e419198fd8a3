package service

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeImageService is a mock type for the QRCodeImageService interface.
type MockQRCodeImageService struct {
	mock.Mock
}

type MockQRCodeImageService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeImageService) EXPECT() *MockQRCodeImageService_Expecter {
	return &MockQRCodeImageService_Expecter{mock: &_m.Mock}
}

// NewMockQRCodeImageService creates a new mock, registering cleanup assertions on t.
func NewMockQRCodeImageService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeImageService {
	m := &MockQRCodeImageService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockQRCodeImageService) GeneratePNG(content string) ([]byte, error) {
	ret := _m.Called(content)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (e *MockQRCodeImageService_Expecter) GeneratePNG(content any) *mock.Call {
	return e.mock.On("GeneratePNG", content)
}
