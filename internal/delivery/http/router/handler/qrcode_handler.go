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

// QRCodeHandler holds dependencies for QR code dashboard handlers.
type QRCodeHandler struct {
	uc usecase.QRCodeUsecase
}

// NewQRCodeHandler is the constructor for QRCodeHandler, injected by Fx.
func NewQRCodeHandler(uc usecase.QRCodeUsecase) *QRCodeHandler {
	return &QRCodeHandler{uc: uc}
}

type createQRCodeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type setActiveRequest struct {
	IsActive bool `json:"isActive"`
}

type qrCodeView struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	ScansCount  int       `json:"scansCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Create handles POST /api/admin/qrcodes.
func (h *QRCodeHandler) Create(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createQRCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	qrCode, err := h.uc.CreateQRCode(c.Request().Context(), businessID, &usecase.CreateQRCodeRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toQRCodeView(qrCode), "QR code created")
}

// List handles GET /api/admin/qrcodes.
func (h *QRCodeHandler) List(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	qrCodes, err := h.uc.ListQRCodes(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]qrCodeView, 0, len(qrCodes))
	for _, qrCode := range qrCodes {
		views = append(views, toQRCodeView(qrCode))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// SetActive handles PATCH /api/admin/qrcodes/:id/active.
func (h *QRCodeHandler) SetActive(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	qrCodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR code ID")
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	qrCode, err := h.uc.SetQRCodeActive(c.Request().Context(), businessID, qrCodeID, req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQRCodeView(qrCode), "QR code updated")
}

// Image handles GET /api/admin/qrcodes/:id/image.
func (h *QRCodeHandler) Image(c echo.Context) error {
	businessID, err := businessIDFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	qrCodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR code ID")
	}

	png, err := h.uc.GenerateQRCodeImage(c.Request().Context(), businessID, qrCodeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func toQRCodeView(qrCode *entity.QRCode) qrCodeView {
	return qrCodeView{
		ID:          qrCode.ID.String(),
		Code:        qrCode.Code,
		Name:        qrCode.Name,
		Description: qrCode.Description,
		IsActive:    qrCode.IsActive,
		ScansCount:  qrCode.ScansCount,
		CreatedAt:   qrCode.CreatedAt,
	}
}
