// Package impl provides the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"onevisit/config"
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

const (
	// welcomeMessage is returned verbatim to every successfully onboarded customer.
	welcomeMessage = "Welcome to OneVisit! You will receive special offers and event notifications."

	// initialVisitNote is attached to the visit created for a resolved QR onboarding.
	initialVisitNote = "Initial QR code onboarding"
)

type onboardingService struct {
	customerRepo       repository.CustomerRepository
	qrCodeRepo         repository.QRCodeRepository
	txManager          repository.TransactionManager
	eventPublisher     service.EventPublisher
	fallbackBusinessID uuid.UUID
	logger             *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	CustomerRepo   repository.CustomerRepository
	QRCodeRepo     repository.QRCodeRepository
	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOnboardingService creates a new onboarding service instance
func NewOnboardingService(params OnboardingServiceParams) (usecase.OnboardingUsecase, error) {
	fallbackID, err := uuid.Parse(params.Config.Onboarding.DefaultBusinessID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid onboarding.defaultBusinessId")
	}

	return &onboardingService{
		customerRepo:       params.CustomerRepo,
		qrCodeRepo:         params.QRCodeRepo,
		txManager:          params.TxManager,
		eventPublisher:     params.EventPublisher,
		fallbackBusinessID: fallbackID,
		logger:             params.Logger,
	}, nil
}

func (s *onboardingService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Onboard validates a landing-form submission and turns it into a durable
// customer record with correct business attribution.
func (s *onboardingService) Onboard(ctx context.Context, req *usecase.OnboardRequest) (*usecase.OnboardResult, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	// Fail fast, first violated rule wins. Required fields precede format checks.
	if name == "" || phone == "" || !req.ConsentGiven {
		return nil, domainerrors.ErrMissingRequiredFields
	}
	if !isValidPhone(phone) {
		return nil, domainerrors.ErrInvalidPhoneFormat
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !isValidEmail(email) {
		return nil, domainerrors.ErrInvalidEmailFormat
	}

	// Uniqueness pre-check. The DB unique index on phone is the real guard;
	// this just returns a clean 409 in the common case.
	existing, err := s.customerRepo.FindByPhone(ctx, phone)
	if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to find customer by phone")
	}
	if existing != nil {
		return nil, domainerrors.ErrPhoneAlreadyRegistered
	}

	businessID, resolvedQR, err := s.resolveAttribution(ctx, strings.TrimSpace(req.QRCode))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customer := s.buildCustomer(req, name, phone, email, businessID, now)

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.CustomerRepo().Create(ctx, customer); err != nil {
			return err
		}

		// A visit is recorded only when the submitted code resolved.
		if resolvedQR != nil {
			visit := &entity.Visit{
				CustomerID: customer.ID,
				QRCodeID:   &resolvedQR.ID,
				VisitDate:  now,
				Notes:      initialVisitNote,
			}
			if err := f.VisitRepo().Create(ctx, visit); err != nil {
				return err
			}
		}

		analyticsEvent := &entity.AnalyticsEvent{
			BusinessID: businessID,
			Date:       now,
			Metric:     constants.MetricNewCustomer,
			Value:      1,
			Metadata:   buildOnboardingMetadata(req.QRCode, customer.Preferences),
		}

		return f.AnalyticsRepo().Create(ctx, analyticsEvent)
	})
	if err != nil {
		// A lost duplicate-phone race surfaces the same conflict as the pre-check.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(err, "onboarding transaction failed")
	}

	s.publishNewCustomerFact(ctx, businessID, req.QRCode, now)

	return &usecase.OnboardResult{
		CustomerID: customer.ID,
		Message:    welcomeMessage,
	}, nil
}

// resolveAttribution decides the owning business for the new customer. A
// resolving QR code wins; anything else falls back to the configured default.
// The scan counter counts attempts, so it is bumped before the customer
// create rather than inside its transaction.
func (s *onboardingService) resolveAttribution(ctx context.Context, code string) (uuid.UUID, *entity.QRCode, error) {
	if code == "" {
		return s.fallbackBusinessID, nil, nil
	}

	qr, err := s.qrCodeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			// Unknown codes fall back silently.
			return s.fallbackBusinessID, nil, nil
		}

		return uuid.Nil, nil, errors.Wrap(err, "failed to find qr code by code")
	}

	if err := s.qrCodeRepo.IncrementScanCount(ctx, qr.ID); err != nil {
		return uuid.Nil, nil, errors.Wrap(err, "failed to increment qr scan count")
	}

	return qr.BusinessID, qr, nil
}

func (s *onboardingService) buildCustomer(req *usecase.OnboardRequest, name, phone, email string, businessID uuid.UUID, now time.Time) *entity.Customer {
	prefs := entity.CustomerPreferences{
		DrinkTypes:              req.DrinkPreferences,
		EventTypes:              req.EventPreferences,
		CommunicationPreference: entity.CommunicationSMS,
	}
	if prefs.DrinkTypes == nil {
		prefs.DrinkTypes = []string{}
	}
	if prefs.EventTypes == nil {
		prefs.EventTypes = []string{}
	}

	customer := &entity.Customer{
		Name:         name,
		Phone:        phone,
		Preferences:  prefs,
		ConsentGiven: true,
		ConsentDate:  &now,
		BusinessID:   businessID,
		VisitCount:   1,
		LastVisit:    &now,
	}

	if email != "" {
		customer.Email = &email
	}
	if dob := parseDateOfBirth(req.DateOfBirth); dob != nil {
		customer.DateOfBirth = dob
	}
	if gender := parseGender(req.Gender); gender != nil {
		customer.Gender = gender
	}

	return customer
}

func (s *onboardingService) publishNewCustomerFact(ctx context.Context, businessID uuid.UUID, qrCode string, occurredAt time.Time) {
	event := &service.AnalyticsEventMessage{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		BusinessID: businessID.String(),
		Metric:     constants.MetricNewCustomer,
		Value:      1,
		Source:     onboardingSource(qrCode),
		QRCode:     qrCode,
		OccurredAt: occurredAt.UTC().Format(time.RFC3339),
	}

	// Reporting is best-effort; a publish failure never fails the onboarding.
	if err := s.eventPublisher.PublishAnalyticsEvent(ctx, event); err != nil {
		s.loggerFrom(ctx).Warn("failed to publish analytics event",
			slog.String("metric", constants.MetricNewCustomer),
			slog.Any("error", err),
		)
	}
}

// onboardingSource attributes by presence of the submitted code, not by
// whether it resolved.
func onboardingSource(qrCode string) string {
	if qrCode != "" {
		return constants.AnalyticsSourceQRCode
	}

	return constants.AnalyticsSourceDirect
}

func buildOnboardingMetadata(qrCode string, prefs entity.CustomerPreferences) entity.AnalyticsMetadata {
	return entity.AnalyticsMetadata{
		Source:      onboardingSource(qrCode),
		QRCode:      qrCode,
		Preferences: &prefs,
	}
}

// parseDateOfBirth parses lenient date input; unparseable values become nil
// rather than an error.
func parseDateOfBirth(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	return nil
}

func parseGender(raw string) *entity.Gender {
	switch g := entity.Gender(strings.TrimSpace(raw)); g {
	case entity.GenderMale, entity.GenderFemale, entity.GenderOther, entity.GenderPreferNotToSay:
		return &g
	default:
		return nil
	}
}
