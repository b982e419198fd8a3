package impl

import (
	"context"
	"strings"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	eventRepo repository.EventRepository
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
	}
}

// CreateEvent registers a new venue event.
func (s *eventService) CreateEvent(ctx context.Context, businessID uuid.UUID, req *usecase.CreateEventRequest) (*entity.Event, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if req.StartDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("startDate is required")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("endDate must not precede startDate")
	}

	event := &entity.Event{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		EventType:   strings.TrimSpace(req.EventType),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BusinessID:  businessID,
		IsActive:    true,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// ListEvents returns all events owned by the business, soonest first.
func (s *eventService) ListEvents(ctx context.Context, businessID uuid.UUID) ([]*entity.Event, error) {
	events, err := s.eventRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by business")
	}

	return events, nil
}

// SetEventActive activates or deactivates an event.
func (s *eventService) SetEventActive(ctx context.Context, businessID, eventID uuid.UUID, active bool) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}
	if event.BusinessID != businessID {
		return nil, domainerrors.ErrEventNotFound
	}

	if err := s.eventRepo.SetActive(ctx, eventID, active); err != nil {
		return nil, errors.Wrap(err, "failed to update event active flag")
	}
	event.IsActive = active

	return event, nil
}
