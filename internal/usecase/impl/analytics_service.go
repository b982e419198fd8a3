package impl

import (
	"context"
	"time"

	"onevisit/internal/domain/constants"
	"onevisit/internal/domain/repository"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultStatsWindow is used when the caller supplies no date range.
const defaultStatsWindow = 30 * 24 * time.Hour

type analyticsService struct {
	customerRepo  repository.CustomerRepository
	messageRepo   repository.MessageRepository
	qrCodeRepo    repository.QRCodeRepository
	analyticsRepo repository.AnalyticsRepository
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	CustomerRepo  repository.CustomerRepository
	MessageRepo   repository.MessageRepository
	QRCodeRepo    repository.QRCodeRepository
	AnalyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		customerRepo:  params.CustomerRepo,
		messageRepo:   params.MessageRepo,
		qrCodeRepo:    params.QRCodeRepo,
		analyticsRepo: params.AnalyticsRepo,
	}
}

// GetDashboardStats computes headline stats for a business over [from, to).
func (s *analyticsService) GetDashboardStats(ctx context.Context, businessID uuid.UUID, from, to time.Time) (*usecase.DashboardStats, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultStatsWindow)
	}

	totalCustomers, err := s.customerRepo.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	messagesSent, err := s.messageRepo.CountSentByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sent messages")
	}

	totalScans, err := s.qrCodeRepo.TotalScans(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum qr scans")
	}

	newCustomers, err := s.analyticsRepo.SumMetric(ctx, businessID, constants.MetricNewCustomer, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum new customer metric")
	}

	campaignsSent, err := s.analyticsRepo.SumMetric(ctx, businessID, constants.MetricCampaignSent, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum campaign metric")
	}

	return &usecase.DashboardStats{
		TotalCustomers: totalCustomers,
		MessagesSent:   messagesSent,
		TotalQRScans:   totalScans,
		NewCustomers:   newCustomers,
		CampaignsSent:  campaignsSent,
		From:           from,
		To:             to,
	}, nil
}
