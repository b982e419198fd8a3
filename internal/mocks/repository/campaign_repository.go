package repository

import (
	"context"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCampaignRepository is a mock type for the CampaignRepository interface.
type MockCampaignRepository struct {
	mock.Mock
}

type MockCampaignRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCampaignRepository) EXPECT() *MockCampaignRepository_Expecter {
	return &MockCampaignRepository_Expecter{mock: &_m.Mock}
}

// NewMockCampaignRepository creates a new mock, registering cleanup assertions on t.
func NewMockCampaignRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCampaignRepository {
	m := &MockCampaignRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Campaign
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Campaign)
	}

	return r0, ret.Error(1)
}

func (e *MockCampaignRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (_m *MockCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	ret := _m.Called(ctx, campaign)

	return ret.Error(0)
}

func (e *MockCampaignRepository_Expecter) Create(ctx any, campaign any) *mock.Call {
	return e.mock.On("Create", ctx, campaign)
}

func (_m *MockCampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	ret := _m.Called(ctx, campaign)

	return ret.Error(0)
}

func (e *MockCampaignRepository_Expecter) Update(ctx any, campaign any) *mock.Call {
	return e.mock.On("Update", ctx, campaign)
}

func (_m *MockCampaignRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Campaign, error) {
	ret := _m.Called(ctx, businessID)

	var r0 []*entity.Campaign
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Campaign)
	}

	return r0, ret.Error(1)
}

func (e *MockCampaignRepository_Expecter) ListByBusiness(ctx any, businessID any) *mock.Call {
	return e.mock.On("ListByBusiness", ctx, businessID)
}
