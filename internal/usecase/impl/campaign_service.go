package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "onevisit/internal/delivery/context"
	"onevisit/internal/domain/constants"
	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/domain/service"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// namePlaceholder is replaced with the recipient's name at dispatch time.
const namePlaceholder = "{name}"

type campaignService struct {
	campaignRepo   repository.CampaignRepository
	customerRepo   repository.CustomerRepository
	messageRepo    repository.MessageRepository
	analyticsRepo  repository.AnalyticsRepository
	messageSender  service.MessageSender
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	CampaignRepo   repository.CampaignRepository
	CustomerRepo   repository.CustomerRepository
	MessageRepo    repository.MessageRepository
	AnalyticsRepo  repository.AnalyticsRepository
	MessageSender  service.MessageSender
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo:   params.CampaignRepo,
		customerRepo:   params.CustomerRepo,
		messageRepo:    params.MessageRepo,
		analyticsRepo:  params.AnalyticsRepo,
		messageSender:  params.MessageSender,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// CreateCampaign stores a new campaign in DRAFT status.
func (s *campaignService) CreateCampaign(ctx context.Context, businessID, createdByID uuid.UUID, req *usecase.CreateCampaignRequest) (*entity.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if strings.TrimSpace(req.MessageTemplate) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("messageTemplate is required")
	}

	campaignType := req.Type
	if campaignType == "" {
		campaignType = entity.CampaignTypeGeneral
	}
	messageType := req.MessageType
	if messageType == "" {
		messageType = entity.MessageTypeSMS
	}

	status := entity.CampaignStatusDraft
	if req.ScheduledAt != nil {
		status = entity.CampaignStatusScheduled
	}

	campaign := &entity.Campaign{
		Name:            name,
		Description:     strings.TrimSpace(req.Description),
		Type:            campaignType,
		Status:          status,
		BusinessID:      businessID,
		CreatedByID:     createdByID,
		ScheduledAt:     req.ScheduledAt,
		MessageTemplate: req.MessageTemplate,
		MessageType:     messageType,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// ListCampaigns returns all campaigns owned by the business, newest first.
func (s *campaignService) ListCampaigns(ctx context.Context, businessID uuid.UUID) ([]*entity.Campaign, error) {
	campaigns, err := s.campaignRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns by business")
	}

	return campaigns, nil
}

// SendCampaign dispatches a campaign to every consented customer of the
// business and marks the campaign SENT. Dispatch is sequential; a failed
// recipient is recorded as FAILED and does not abort the rest.
func (s *campaignService) SendCampaign(ctx context.Context, businessID, campaignID uuid.UUID) (*usecase.CampaignSendResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}
	if campaign.BusinessID != businessID {
		return nil, domainerrors.ErrCampaignNotFound
	}
	if campaign.Status == entity.CampaignStatusSent {
		return nil, domainerrors.ErrCampaignAlreadySent
	}

	recipients, err := s.customerRepo.ListConsentedByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consented customers")
	}

	var sent, failed int
	for _, customer := range recipients {
		if s.dispatchToCustomer(ctx, campaign, customer, logger) {
			sent++
		} else {
			failed++
		}
	}

	now := time.Now()
	campaign.Status = entity.CampaignStatusSent
	campaign.SentAt = &now
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to mark campaign sent")
	}

	s.recordCampaignFact(ctx, campaign, sent, now, logger)

	return &usecase.CampaignSendResult{
		Campaign:   campaign,
		Sent:       sent,
		Failed:     failed,
		Recipients: len(recipients),
	}, nil
}

// dispatchToCustomer renders and sends one message, recording its outcome.
// Returns true when the provider accepted the message.
func (s *campaignService) dispatchToCustomer(ctx context.Context, campaign *entity.Campaign, customer *entity.Customer, logger *slog.Logger) bool {
	content := strings.ReplaceAll(campaign.MessageTemplate, namePlaceholder, customer.Name)

	var externalID string
	var sendErr error
	switch campaign.MessageType {
	case entity.MessageTypeWhatsApp:
		externalID, sendErr = s.messageSender.SendWhatsApp(ctx, customer.Phone, content)
	default:
		externalID, sendErr = s.messageSender.SendSMS(ctx, customer.Phone, content)
	}

	now := time.Now()
	message := &entity.Message{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Type:       campaign.MessageType,
		Content:    content,
		Status:     entity.MessageStatusSent,
		SentAt:     &now,
		ExternalID: externalID,
	}
	if sendErr != nil {
		message.Status = entity.MessageStatusFailed
		message.SentAt = nil
		message.ErrorMessage = sendErr.Error()

		logger.Warn("campaign message dispatch failed",
			slog.String("campaign_id", campaign.ID.String()),
			slog.String("customer_id", customer.ID.String()),
			slog.Any("error", sendErr),
		)
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		logger.Error("failed to record campaign message",
			slog.String("campaign_id", campaign.ID.String()),
			slog.String("customer_id", customer.ID.String()),
			slog.Any("error", err),
		)

		return false
	}

	return sendErr == nil
}

func (s *campaignService) recordCampaignFact(ctx context.Context, campaign *entity.Campaign, sent int, occurredAt time.Time, logger *slog.Logger) {
	fact := &entity.AnalyticsEvent{
		BusinessID: campaign.BusinessID,
		Date:       occurredAt,
		Metric:     constants.MetricCampaignSent,
		Value:      float64(sent),
		Metadata: entity.AnalyticsMetadata{
			CampaignID: campaign.ID.String(),
		},
	}
	if err := s.analyticsRepo.Create(ctx, fact); err != nil {
		logger.Error("failed to record campaign analytics",
			slog.String("campaign_id", campaign.ID.String()),
			slog.Any("error", err),
		)
	}

	event := &service.AnalyticsEventMessage{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		BusinessID: campaign.BusinessID.String(),
		Metric:     constants.MetricCampaignSent,
		Value:      float64(sent),
		OccurredAt: occurredAt.UTC().Format(time.RFC3339),
	}
	if err := s.eventPublisher.PublishAnalyticsEvent(ctx, event); err != nil {
		logger.Warn("failed to publish analytics event",
			slog.String("metric", constants.MetricCampaignSent),
			slog.Any("error", err),
		)
	}
}
