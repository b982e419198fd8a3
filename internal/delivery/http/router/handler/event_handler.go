package handler

import (
	"net/http"
	"time"

	"onevisit/internal/delivery/http/response"
	"onevisit/internal/domain/entity"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event dashboard handlers.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

type createEventRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	EventType   string     `json:"eventType"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
}

type eventView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	EventType   string     `json:"eventType,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Create handles POST /api/admin/events.
func (h *EventHandler) Create(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), businessID, &usecase.CreateEventRequest{
		Name:        req.Name,
		Description: req.Description,
		EventType:   req.EventType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEventView(event), "Event created")
}

// List handles GET /api/admin/events.
func (h *EventHandler) List(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	events, err := h.uc.ListEvents(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]eventView, 0, len(events))
	for _, event := range events {
		views = append(views, toEventView(event))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// SetActive handles PATCH /api/admin/events/:id/active.
func (h *EventHandler) SetActive(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event ID")
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	event, err := h.uc.SetEventActive(c.Request().Context(), businessID, eventID, req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventView(event), "Event updated")
}

func toEventView(event *entity.Event) eventView {
	return eventView{
		ID:          event.ID.String(),
		Name:        event.Name,
		Description: event.Description,
		EventType:   event.EventType,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		IsActive:    event.IsActive,
		CreatedAt:   event.CreatedAt,
	}
}
