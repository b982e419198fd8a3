package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeRepository is a mock type for the QRCodeRepository interface.
type MockQRCodeRepository struct {
	mock.Mock
}

type MockQRCodeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeRepository) EXPECT() *MockQRCodeRepository_Expecter {
	return &MockQRCodeRepository_Expecter{mock: &_m.Mock}
}

// NewMockQRCodeRepository creates a new mock, registering cleanup assertions on t.
func NewMockQRCodeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeRepository {
	m := &MockQRCodeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockQRCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.QRCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.QRCode)
	}

	return r0, ret.Error(1)
}

func (e *MockQRCodeRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (_m *MockQRCodeRepository) FindByCode(ctx context.Context, code string) (*entity.QRCode, error) {
	ret := _m.Called(ctx, code)

	var r0 *entity.QRCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.QRCode)
	}

	return r0, ret.Error(1)
}

func (e *MockQRCodeRepository_Expecter) FindByCode(ctx any, code any) *mock.Call {
	return e.mock.On("FindByCode", ctx, code)
}

func (_m *MockQRCodeRepository) Create(ctx context.Context, qrCode *entity.QRCode) error {
	ret := _m.Called(ctx, qrCode)

	return ret.Error(0)
}

func (e *MockQRCodeRepository_Expecter) Create(ctx any, qrCode any) *mock.Call {
	return e.mock.On("Create", ctx, qrCode)
}

func (_m *MockQRCodeRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.QRCode, error) {
	ret := _m.Called(ctx, businessID)

	var r0 []*entity.QRCode
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.QRCode)
	}

	return r0, ret.Error(1)
}

func (e *MockQRCodeRepository_Expecter) ListByBusiness(ctx any, businessID any) *mock.Call {
	return e.mock.On("ListByBusiness", ctx, businessID)
}

func (_m *MockQRCodeRepository) IncrementScanCount(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (e *MockQRCodeRepository_Expecter) IncrementScanCount(ctx any, id any) *mock.Call {
	return e.mock.On("IncrementScanCount", ctx, id)
}

func (_m *MockQRCodeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	ret := _m.Called(ctx, id, active)

	return ret.Error(0)
}

func (e *MockQRCodeRepository_Expecter) SetActive(ctx, id, active any) *mock.Call {
	return e.mock.On("SetActive", ctx, id, active)
}

func (_m *MockQRCodeRepository) TotalScans(ctx context.Context, businessID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, businessID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (e *MockQRCodeRepository_Expecter) TotalScans(ctx any, businessID any) *mock.Call {
	return e.mock.On("TotalScans", ctx, businessID)
}
