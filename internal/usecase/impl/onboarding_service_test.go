package impl

import (
	"context"
	"testing"

	"onevisit/internal/domain/constants"
	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/domain/service"
	mockRepo "onevisit/internal/mocks/repository"
	mockSvc "onevisit/internal/mocks/service"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testFallbackBusinessID = "0198c3a0-0000-7000-8000-000000000001"

// onboardingFixtures holds all test dependencies for onboarding service tests.
type onboardingFixtures struct {
	service       usecase.OnboardingUsecase
	customerRepo  *mockRepo.MockCustomerRepository
	qrCodeRepo    *mockRepo.MockQRCodeRepository
	visitRepo     *mockRepo.MockVisitRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestOnboardingService(t *testing.T) onboardingFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	qrCodeRepo := mockRepo.NewMockQRCodeRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	txManager := newStubTxManager(txMocks{
		customerRepo:  customerRepo,
		visitRepo:     visitRepo,
		analyticsRepo: analyticsRepo,
	})

	svc, err := NewOnboardingService(OnboardingServiceParams{
		CustomerRepo:   customerRepo,
		QRCodeRepo:     qrCodeRepo,
		TxManager:      txManager,
		EventPublisher: publisher,
		Config:         newTestConfig(testFallbackBusinessID),
		Logger:         newDiscardLogger(),
	})
	require.NoError(t, err)

	return onboardingFixtures{
		service:       svc,
		customerRepo:  customerRepo,
		qrCodeRepo:    qrCodeRepo,
		visitRepo:     visitRepo,
		analyticsRepo: analyticsRepo,
		publisher:     publisher,
	}
}

func validOnboardRequest() *usecase.OnboardRequest {
	return &usecase.OnboardRequest{
		Name:         "Jamie Soto",
		Phone:        "+44 7700 900123",
		ConsentGiven: true,
	}
}

func TestOnboardingService_Onboard_WithResolvedQRCode(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	qrBusinessID := uuid.New()
	qr := &entity.QRCode{
		ID:         uuid.New(),
		Code:       "a1b2c3d4e5f60708",
		BusinessID: qrBusinessID,
		IsActive:   true,
	}

	req := validOnboardRequest()
	req.QRCode = qr.Code
	req.Email = "jamie@example.com"
	req.DrinkPreferences = []string{"craft beer"}

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)
	f.qrCodeRepo.EXPECT().FindByCode(ctx, qr.Code).Return(qr, nil)
	f.qrCodeRepo.EXPECT().IncrementScanCount(ctx, qr.ID).Return(nil)

	customerID := uuid.New()
	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			customer := args.Get(1).(*entity.Customer)
			customer.ID = customerID

			assert.Equal(t, qrBusinessID, customer.BusinessID)
			assert.Equal(t, 1, customer.VisitCount)
			require.NotNil(t, customer.Email)
			assert.Equal(t, "jamie@example.com", *customer.Email)
		}).
		Return(nil)

	f.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(args mock.Arguments) {
			visit := args.Get(1).(*entity.Visit)

			assert.Equal(t, customerID, visit.CustomerID)
			require.NotNil(t, visit.QRCodeID)
			assert.Equal(t, qr.ID, *visit.QRCodeID)
			assert.Equal(t, initialVisitNote, visit.Notes)
		}).
		Return(nil)

	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*entity.AnalyticsEvent)

			assert.Equal(t, qrBusinessID, event.BusinessID)
			assert.Equal(t, constants.MetricNewCustomer, event.Metric)
			assert.Equal(t, float64(1), event.Value)
			assert.Equal(t, constants.AnalyticsSourceQRCode, event.Metadata.Source)
			assert.Equal(t, qr.Code, event.Metadata.QRCode)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.AnalyticsEventMessage)

			assert.Equal(t, constants.AnalyticsSourceQRCode, event.Source)
			assert.Equal(t, qrBusinessID.String(), event.BusinessID)
		}).
		Return(nil)

	result, err := f.service.Onboard(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, customerID, result.CustomerID)
	assert.Equal(t, welcomeMessage, result.Message)
}

func TestOnboardingService_Onboard_WithoutQRCode(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)

	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			customer := args.Get(1).(*entity.Customer)
			customer.ID = uuid.New()

			assert.Equal(t, testFallbackBusinessID, customer.BusinessID.String())
			assert.True(t, customer.ConsentGiven)
			require.NotNil(t, customer.ConsentDate)
		}).
		Return(nil)

	// No visit without a resolved QR code.
	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*entity.AnalyticsEvent)

			assert.Equal(t, constants.AnalyticsSourceDirect, event.Metadata.Source)
			assert.Empty(t, event.Metadata.QRCode)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.AnalyticsEventMessage)

			assert.Equal(t, constants.AnalyticsSourceDirect, event.Source)
		}).
		Return(nil)

	_, err := f.service.Onboard(ctx, req)

	require.NoError(t, err)
}

func TestOnboardingService_Onboard_UnknownQRCodeFallsBack(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()
	req.QRCode = "deadbeef00000000"

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)
	f.qrCodeRepo.EXPECT().
		FindByCode(ctx, req.QRCode).
		Return(nil, repository.ErrQRCodeNotFound)

	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			customer := args.Get(1).(*entity.Customer)
			customer.ID = uuid.New()

			assert.Equal(t, testFallbackBusinessID, customer.BusinessID.String())
		}).
		Return(nil)

	// Source reflects that a code was submitted, even though it did not resolve.
	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*entity.AnalyticsEvent)

			assert.Equal(t, constants.AnalyticsSourceQRCode, event.Metadata.Source)
			assert.Equal(t, req.QRCode, event.Metadata.QRCode)
		}).
		Return(nil)

	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(nil)

	_, err := f.service.Onboard(ctx, req)

	require.NoError(t, err)
}

func TestOnboardingService_Onboard_MissingRequiredFields(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *usecase.OnboardRequest)
	}{
		{"empty name", func(req *usecase.OnboardRequest) { req.Name = "  " }},
		{"empty phone", func(req *usecase.OnboardRequest) { req.Phone = "" }},
		{"consent not given", func(req *usecase.OnboardRequest) { req.ConsentGiven = false }},
		{"missing name wins over bad phone", func(req *usecase.OnboardRequest) {
			req.Name = ""
			req.Phone = "abc"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOnboardRequest()
			tt.mutate(req)

			_, err := f.service.Onboard(ctx, req)

			assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredFields)
		})
	}
}

func TestOnboardingService_Onboard_InvalidPhoneFormat(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()
	req.Phone = "not-a-phone"

	_, err := f.service.Onboard(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneFormat)
}

func TestOnboardingService_Onboard_InvalidEmailFormat(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()
	req.Email = "not an email"

	_, err := f.service.Onboard(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmailFormat)
}

func TestOnboardingService_Onboard_DuplicatePhone(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(&entity.Customer{ID: uuid.New(), Phone: req.Phone}, nil)

	_, err := f.service.Onboard(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestOnboardingService_Onboard_LostDuplicateRace(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)

	// Another request slipped in between the pre-check and the insert.
	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(domainerrors.ErrPhoneAlreadyRegistered)

	_, err := f.service.Onboard(ctx, req)

	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestOnboardingService_Onboard_ScanCountSurvivesFailedCreate(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	qr := &entity.QRCode{
		ID:         uuid.New(),
		Code:       "a1b2c3d4e5f60708",
		BusinessID: uuid.New(),
		IsActive:   true,
	}

	req := validOnboardRequest()
	req.QRCode = qr.Code

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)
	f.qrCodeRepo.EXPECT().FindByCode(ctx, qr.Code).Return(qr, nil)

	// The scan is counted before the create, so it sticks even when the
	// customer row never lands.
	f.qrCodeRepo.EXPECT().IncrementScanCount(ctx, qr.ID).Return(nil).Once()

	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "create customer"))

	_, err := f.service.Onboard(ctx, req)

	require.Error(t, err)
}

func TestOnboardingService_Onboard_PublishFailureDoesNotFailOnboarding(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)
	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Customer).ID = uuid.New()
		}).
		Return(nil)
	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Return(nil)
	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(errors.New("broker unavailable"))

	result, err := f.service.Onboard(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, welcomeMessage, result.Message)
}

func TestOnboardingService_Onboard_DefaultPreferences(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()

	req := validOnboardRequest()

	f.customerRepo.EXPECT().
		FindByPhone(ctx, req.Phone).
		Return(nil, repository.ErrCustomerNotFound)
	f.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(args mock.Arguments) {
			customer := args.Get(1).(*entity.Customer)
			customer.ID = uuid.New()

			assert.NotNil(t, customer.Preferences.DrinkTypes)
			assert.Empty(t, customer.Preferences.DrinkTypes)
			assert.NotNil(t, customer.Preferences.EventTypes)
			assert.Empty(t, customer.Preferences.EventTypes)
			assert.Equal(t, entity.CommunicationSMS, customer.Preferences.CommunicationPreference)
		}).
		Return(nil)
	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Return(nil)
	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(nil)

	_, err := f.service.Onboard(ctx, req)

	require.NoError(t, err)
}

func TestOnboardingService_New_InvalidDefaultBusinessID(t *testing.T) {
	_, err := NewOnboardingService(OnboardingServiceParams{
		Config: newTestConfig("not-a-uuid"),
		Logger: newDiscardLogger(),
	})

	require.Error(t, err)
}
