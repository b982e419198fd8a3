package impl

import (
	"context"
	"testing"
	"time"

	"onevisit/internal/domain/constants"
	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	mockRepo "onevisit/internal/mocks/repository"
	mockSvc "onevisit/internal/mocks/service"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// campaignFixtures holds all test dependencies for campaign service tests.
type campaignFixtures struct {
	service       usecase.CampaignUsecase
	campaignRepo  *mockRepo.MockCampaignRepository
	customerRepo  *mockRepo.MockCustomerRepository
	messageRepo   *mockRepo.MockMessageRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	sender        *mockSvc.MockMessageSender
	publisher     *mockSvc.MockEventPublisher
}

func createTestCampaignService(t *testing.T) campaignFixtures {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	sender := mockSvc.NewMockMessageSender(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCampaignService(CampaignServiceParams{
		CampaignRepo:   campaignRepo,
		CustomerRepo:   customerRepo,
		MessageRepo:    messageRepo,
		AnalyticsRepo:  analyticsRepo,
		MessageSender:  sender,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})

	return campaignFixtures{
		service:       svc,
		campaignRepo:  campaignRepo,
		customerRepo:  customerRepo,
		messageRepo:   messageRepo,
		analyticsRepo: analyticsRepo,
		sender:        sender,
		publisher:     publisher,
	}
}

func TestCampaignService_CreateCampaign_Defaults(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()
	businessID := uuid.New()
	createdByID := uuid.New()

	f.campaignRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(args mock.Arguments) {
			campaign := args.Get(1).(*entity.Campaign)
			campaign.ID = uuid.New()

			assert.Equal(t, entity.CampaignTypeGeneral, campaign.Type)
			assert.Equal(t, entity.MessageTypeSMS, campaign.MessageType)
			assert.Equal(t, entity.CampaignStatusDraft, campaign.Status)
			assert.Equal(t, createdByID, campaign.CreatedByID)
		}).
		Return(nil)

	campaign, err := f.service.CreateCampaign(ctx, businessID, createdByID, &usecase.CreateCampaignRequest{
		Name:            "Friday specials",
		MessageTemplate: "Hi {name}, free entry tonight!",
	})

	require.NoError(t, err)
	assert.Equal(t, "Friday specials", campaign.Name)
}

func TestCampaignService_CreateCampaign_ScheduledStatus(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()

	scheduledAt := time.Now().Add(24 * time.Hour)

	f.campaignRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(args mock.Arguments) {
			campaign := args.Get(1).(*entity.Campaign)

			assert.Equal(t, entity.CampaignStatusScheduled, campaign.Status)
		}).
		Return(nil)

	_, err := f.service.CreateCampaign(ctx, uuid.New(), uuid.New(), &usecase.CreateCampaignRequest{
		Name:            "Quiz night invite",
		MessageTemplate: "See you Thursday",
		ScheduledAt:     &scheduledAt,
	})

	require.NoError(t, err)
}

func TestCampaignService_CreateCampaign_MissingTemplate(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()

	_, err := f.service.CreateCampaign(ctx, uuid.New(), uuid.New(), &usecase.CreateCampaignRequest{
		Name: "No body",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCampaignService_SendCampaign_Success(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()

	businessID := uuid.New()
	campaign := &entity.Campaign{
		ID:              uuid.New(),
		Name:            "Friday specials",
		Status:          entity.CampaignStatusDraft,
		BusinessID:      businessID,
		MessageTemplate: "Hi {name}!",
		MessageType:     entity.MessageTypeSMS,
	}
	recipients := []*entity.Customer{
		{ID: uuid.New(), Name: "Jamie", Phone: "+447700900001"},
		{ID: uuid.New(), Name: "Alex", Phone: "+447700900002"},
	}

	f.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	f.customerRepo.EXPECT().ListConsentedByBusiness(ctx, businessID).Return(recipients, nil)

	f.sender.EXPECT().SendSMS(ctx, "+447700900001", "Hi Jamie!").Return("SM001", nil)
	f.sender.EXPECT().SendSMS(ctx, "+447700900002", "Hi Alex!").Return("SM002", nil)

	f.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(args mock.Arguments) {
			message := args.Get(1).(*entity.Message)

			assert.Equal(t, entity.MessageStatusSent, message.Status)
			require.NotNil(t, message.CampaignID)
			assert.Equal(t, campaign.ID, *message.CampaignID)
			require.NotNil(t, message.SentAt)
		}).
		Return(nil).
		Times(2)

	f.campaignRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Campaign)

			assert.Equal(t, entity.CampaignStatusSent, updated.Status)
			require.NotNil(t, updated.SentAt)
		}).
		Return(nil)

	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Run(func(args mock.Arguments) {
			fact := args.Get(1).(*entity.AnalyticsEvent)

			assert.Equal(t, constants.MetricCampaignSent, fact.Metric)
			assert.Equal(t, float64(2), fact.Value)
			assert.Equal(t, campaign.ID.String(), fact.Metadata.CampaignID)
		}).
		Return(nil)
	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(nil)

	result, err := f.service.SendCampaign(ctx, businessID, campaign.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, result.Recipients)
}

func TestCampaignService_SendCampaign_PartialFailure(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()

	businessID := uuid.New()
	campaign := &entity.Campaign{
		ID:              uuid.New(),
		Status:          entity.CampaignStatusDraft,
		BusinessID:      businessID,
		MessageTemplate: "Hi {name}!",
		MessageType:     entity.MessageTypeWhatsApp,
	}
	recipients := []*entity.Customer{
		{ID: uuid.New(), Name: "Jamie", Phone: "+447700900001"},
		{ID: uuid.New(), Name: "Alex", Phone: "+447700900002"},
	}

	f.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)
	f.customerRepo.EXPECT().ListConsentedByBusiness(ctx, businessID).Return(recipients, nil)

	f.sender.EXPECT().SendWhatsApp(ctx, "+447700900001", "Hi Jamie!").Return("WA001", nil)
	f.sender.EXPECT().
		SendWhatsApp(ctx, "+447700900002", "Hi Alex!").
		Return("", errors.New("undeliverable"))

	var statuses []entity.MessageStatus
	f.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(args mock.Arguments) {
			message := args.Get(1).(*entity.Message)
			statuses = append(statuses, message.Status)

			if message.Status == entity.MessageStatusFailed {
				assert.Nil(t, message.SentAt)
				assert.Equal(t, "undeliverable", message.ErrorMessage)
			}
		}).
		Return(nil).
		Times(2)

	f.campaignRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Campaign")).Return(nil)
	f.analyticsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AnalyticsEvent")).
		Return(nil)
	f.publisher.EXPECT().
		PublishAnalyticsEvent(ctx, mock.AnythingOfType("*service.AnalyticsEventMessage")).
		Return(nil)

	result, err := f.service.SendCampaign(ctx, businessID, campaign.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, statuses, entity.MessageStatusSent)
	assert.Contains(t, statuses, entity.MessageStatusFailed)
}

func TestCampaignService_SendCampaign_AlreadySent(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()

	businessID := uuid.New()
	campaign := &entity.Campaign{
		ID:         uuid.New(),
		Status:     entity.CampaignStatusSent,
		BusinessID: businessID,
	}

	f.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

	_, err := f.service.SendCampaign(ctx, businessID, campaign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCampaignAlreadySent)
}

func TestCampaignService_SendCampaign_OtherBusiness(t *testing.T) {
	f := createTestCampaignService(t)
	ctx := context.Background()

	campaign := &entity.Campaign{
		ID:         uuid.New(),
		Status:     entity.CampaignStatusDraft,
		BusinessID: uuid.New(),
	}

	f.campaignRepo.EXPECT().FindByID(ctx, campaign.ID).Return(campaign, nil)

	_, err := f.service.SendCampaign(ctx, uuid.New(), campaign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCampaignNotFound)
}
