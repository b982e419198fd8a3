package handler

import (
	"net/http"
	"strconv"
	"time"

	"onevisit/internal/delivery/http/response"
	"onevisit/internal/domain/entity"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer dashboard handlers.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

type customerView struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Phone       string                     `json:"phone"`
	Email       *string                    `json:"email,omitempty"`
	DateOfBirth *time.Time                 `json:"dateOfBirth,omitempty"`
	Gender      *entity.Gender             `json:"gender,omitempty"`
	Preferences entity.CustomerPreferences `json:"preferences"`
	VisitCount  int                        `json:"visitCount"`
	LastVisit   *time.Time                 `json:"lastVisit,omitempty"`
	TotalSpent  float64                    `json:"totalSpent"`
	CreatedAt   time.Time                  `json:"createdAt"`
}

type customerPageView struct {
	Customers []customerView `json:"customers"`
	Total     int64          `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

type recordVisitRequest struct {
	AmountSpent *float64 `json:"amountSpent"`
	Notes       string   `json:"notes"`
}

// List handles GET /api/admin/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	page, err := h.uc.ListCustomers(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]customerView, 0, len(page.Customers))
	for _, customer := range page.Customers {
		views = append(views, toCustomerView(customer))
	}

	return response.Success(c, http.StatusOK, customerPageView{
		Customers: views,
		Total:     page.Total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}, "")
}

// Get handles GET /api/admin/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), businessID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerView(customer), "")
}

// RecordVisit handles POST /api/admin/customers/:id/visits.
func (h *CustomerHandler) RecordVisit(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer ID")
	}

	var req recordVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	customer, err := h.uc.RecordVisit(c.Request().Context(), businessID, &usecase.RecordVisitRequest{
		CustomerID:  customerID,
		AmountSpent: req.AmountSpent,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerView(customer), "Visit recorded")
}

func toCustomerView(customer *entity.Customer) customerView {
	return customerView{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Phone:       customer.Phone,
		Email:       customer.Email,
		DateOfBirth: customer.DateOfBirth,
		Gender:      customer.Gender,
		Preferences: customer.Preferences,
		VisitCount:  customer.VisitCount,
		LastVisit:   customer.LastVisit,
		TotalSpent:  customer.TotalSpent,
		CreatedAt:   customer.CreatedAt,
	}
}
