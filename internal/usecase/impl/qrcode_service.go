package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"onevisit/config"
	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/domain/service"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// qrCodeBytes is the entropy of a generated code string (hex-encoded).
const qrCodeBytes = 8

type qrCodeService struct {
	qrCodeRepo     repository.QRCodeRepository
	imageService   service.QRCodeImageService
	landingBaseURL string
}

// QRCodeServiceParams holds dependencies for QRCodeService, injected by Fx.
type QRCodeServiceParams struct {
	fx.In

	QRCodeRepo   repository.QRCodeRepository
	ImageService service.QRCodeImageService
	Config       *config.Config
}

// NewQRCodeService creates a new QR code management service instance
func NewQRCodeService(params QRCodeServiceParams) usecase.QRCodeUsecase {
	return &qrCodeService{
		qrCodeRepo:     params.QRCodeRepo,
		imageService:   params.ImageService,
		landingBaseURL: params.Config.Onboarding.LandingBaseURL,
	}
}

// CreateQRCode issues a new QR code with a random opaque code string.
func (s *qrCodeService) CreateQRCode(ctx context.Context, businessID uuid.UUID, req *usecase.CreateQRCodeRequest) (*entity.QRCode, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	code, err := generateOpaqueCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code string")
	}

	qrCode := &entity.QRCode{
		Code:        code,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		BusinessID:  businessID,
		IsActive:    true,
	}

	if err := s.qrCodeRepo.Create(ctx, qrCode); err != nil {
		return nil, err
	}

	return qrCode, nil
}

// ListQRCodes returns all QR codes owned by the business.
func (s *qrCodeService) ListQRCodes(ctx context.Context, businessID uuid.UUID) ([]*entity.QRCode, error) {
	qrCodes, err := s.qrCodeRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list qr codes by business")
	}

	return qrCodes, nil
}

// SetQRCodeActive activates or deactivates a QR code.
func (s *qrCodeService) SetQRCodeActive(ctx context.Context, businessID, qrCodeID uuid.UUID, active bool) (*entity.QRCode, error) {
	qrCode, err := s.findOwned(ctx, businessID, qrCodeID)
	if err != nil {
		return nil, err
	}

	if err := s.qrCodeRepo.SetActive(ctx, qrCodeID, active); err != nil {
		return nil, errors.Wrap(err, "failed to update qr code active flag")
	}
	qrCode.IsActive = active

	return qrCode, nil
}

// GenerateQRCodeImage renders the QR code's landing URL as a PNG image.
func (s *qrCodeService) GenerateQRCodeImage(ctx context.Context, businessID, qrCodeID uuid.UUID) ([]byte, error) {
	qrCode, err := s.findOwned(ctx, businessID, qrCodeID)
	if err != nil {
		return nil, err
	}

	landingURL := fmt.Sprintf("%s?code=%s", s.landingBaseURL, url.QueryEscape(qrCode.Code))

	png, err := s.imageService.GeneratePNG(landingURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code image")
	}

	return png, nil
}

func (s *qrCodeService) findOwned(ctx context.Context, businessID, qrCodeID uuid.UUID) (*entity.QRCode, error) {
	qrCode, err := s.qrCodeRepo.FindByID(ctx, qrCodeID)
	if err != nil {
		if errors.Is(err, repository.ErrQRCodeNotFound) {
			return nil, domainerrors.ErrQRCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find qr code by ID")
	}
	if qrCode.BusinessID != businessID {
		return nil, domainerrors.ErrQRCodeNotFound
	}

	return qrCode, nil
}

func generateOpaqueCode() (string, error) {
	buf := make([]byte, qrCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
