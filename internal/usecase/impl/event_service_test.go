package impl

import (
	"context"
	"testing"
	"time"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	mockRepo "onevisit/internal/mocks/repository"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventService(t *testing.T) (usecase.EventUsecase, *mockRepo.MockEventRepository) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := NewEventService(EventServiceParams{EventRepo: eventRepo})

	return svc, eventRepo
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo := createTestEventService(t)
	ctx := context.Background()
	businessID := uuid.New()

	start := time.Now().Add(48 * time.Hour)
	end := start.Add(3 * time.Hour)

	eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*entity.Event)
			event.ID = uuid.New()

			assert.Equal(t, businessID, event.BusinessID)
			assert.True(t, event.IsActive)
		}).
		Return(nil)

	event, err := svc.CreateEvent(ctx, businessID, &usecase.CreateEventRequest{
		Name:      "  Quiz Night ",
		EventType: "quiz",
		StartDate: start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	assert.Equal(t, "Quiz Night", event.Name)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc, _ := createTestEventService(t)
	ctx := context.Background()

	start := time.Now()
	before := start.Add(-time.Hour)

	tests := []struct {
		name string
		req  *usecase.CreateEventRequest
	}{
		{"missing name", &usecase.CreateEventRequest{StartDate: start}},
		{"missing start date", &usecase.CreateEventRequest{Name: "Quiz Night"}},
		{"end before start", &usecase.CreateEventRequest{
			Name:      "Quiz Night",
			StartDate: start,
			EndDate:   &before,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, uuid.New(), tt.req)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEventService_SetEventActive_OtherBusiness(t *testing.T) {
	svc, eventRepo := createTestEventService(t)
	ctx := context.Background()

	eventID := uuid.New()
	eventRepo.EXPECT().
		FindByID(ctx, eventID).
		Return(&entity.Event{ID: eventID, BusinessID: uuid.New()}, nil)

	_, err := svc.SetEventActive(ctx, uuid.New(), eventID, false)

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_SetEventActive_Success(t *testing.T) {
	svc, eventRepo := createTestEventService(t)
	ctx := context.Background()

	businessID := uuid.New()
	eventID := uuid.New()
	eventRepo.EXPECT().
		FindByID(ctx, eventID).
		Return(&entity.Event{ID: eventID, BusinessID: businessID, IsActive: true}, nil)
	eventRepo.EXPECT().SetActive(ctx, eventID, false).Return(nil)

	event, err := svc.SetEventActive(ctx, businessID, eventID, false)

	require.NoError(t, err)
	assert.False(t, event.IsActive)
}
