package postgres

import (
	"context"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// FindByID retrieves a single event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// Create persists a new event entity.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid business reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// ListByBusiness returns all events owned by a business, soonest first.
func (repo *eventRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Event, error) {
	var eventMs []model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("start_date ASC").
		Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events by business")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for i := range eventMs {
		events = append(events, toEventDomain(&eventMs[i]))
	}

	return events, nil
}

// SetActive flips the active flag of an event.
func (repo *eventRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		EventType:   data.EventType,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		BusinessID:  data.BusinessID,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		EventType:   data.EventType,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		BusinessID:  data.BusinessID,
		IsActive:    data.IsActive,
	}
}
