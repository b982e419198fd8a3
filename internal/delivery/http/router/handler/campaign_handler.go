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

// CampaignHandler holds dependencies for campaign dashboard handlers.
type CampaignHandler struct {
	uc usecase.CampaignUsecase
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

type createCampaignRequest struct {
	Name            string     `json:"name" validate:"required"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	MessageTemplate string     `json:"messageTemplate" validate:"required"`
	MessageType     string     `json:"messageType"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
}

type campaignView struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	MessageTemplate string     `json:"messageTemplate"`
	MessageType     string     `json:"messageType"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
	SentAt          *time.Time `json:"sentAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type campaignSendView struct {
	Campaign   campaignView `json:"campaign"`
	Sent       int          `json:"sent"`
	Failed     int          `json:"failed"`
	Recipients int          `json:"recipients"`
}

// Create handles POST /api/admin/campaigns.
func (h *CampaignHandler) Create(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	userID, err := userIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), businessID, userID, &usecase.CreateCampaignRequest{
		Name:            req.Name,
		Description:     req.Description,
		Type:            entity.CampaignType(req.Type),
		MessageTemplate: req.MessageTemplate,
		MessageType:     entity.MessageType(req.MessageType),
		ScheduledAt:     req.ScheduledAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCampaignView(campaign), "Campaign created")
}

// List handles GET /api/admin/campaigns.
func (h *CampaignHandler) List(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaigns, err := h.uc.ListCampaigns(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]campaignView, 0, len(campaigns))
	for _, campaign := range campaigns {
		views = append(views, toCampaignView(campaign))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Send handles POST /api/admin/campaigns/:id/send.
func (h *CampaignHandler) Send(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	result, err := h.uc.SendCampaign(c.Request().Context(), businessID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := campaignSendView{
		Campaign:   toCampaignView(result.Campaign),
		Sent:       result.Sent,
		Failed:     result.Failed,
		Recipients: result.Recipients,
	}

	return response.Success(c, http.StatusOK, view, "Campaign sent")
}

func toCampaignView(campaign *entity.Campaign) campaignView {
	return campaignView{
		ID:              campaign.ID.String(),
		Name:            campaign.Name,
		Description:     campaign.Description,
		Type:            string(campaign.Type),
		Status:          string(campaign.Status),
		MessageTemplate: campaign.MessageTemplate,
		MessageType:     string(campaign.MessageType),
		ScheduledAt:     campaign.ScheduledAt,
		SentAt:          campaign.SentAt,
		CreatedAt:       campaign.CreatedAt,
	}
}
