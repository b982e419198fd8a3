package handler

import (
	"net/http"
	"time"

	"onevisit/internal/delivery/http/response"
	"onevisit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for reporting dashboard handlers.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

type dashboardStatsView struct {
	TotalCustomers int64     `json:"totalCustomers"`
	MessagesSent   int64     `json:"messagesSent"`
	TotalQRScans   int64     `json:"totalQrScans"`
	NewCustomers   float64   `json:"newCustomers"`
	CampaignsSent  float64   `json:"campaignsSent"`
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
}

// Dashboard handles GET /api/admin/analytics/dashboard. The from/to query
// params are optional RFC 3339 timestamps.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var from, to time.Time
	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid from timestamp")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid to timestamp")
		}
	}

	stats, err := h.uc.GetDashboardStats(c.Request().Context(), businessID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	view := dashboardStatsView{
		TotalCustomers: stats.TotalCustomers,
		MessagesSent:   stats.MessagesSent,
		TotalQRScans:   stats.TotalQRScans,
		NewCustomers:   stats.NewCustomers,
		CampaignsSent:  stats.CampaignsSent,
		From:           stats.From,
		To:             stats.To,
	}

	return response.Success(c, http.StatusOK, view, "")
}
