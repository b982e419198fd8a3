package impl

import (
	"context"
	"testing"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	mockRepo "onevisit/internal/mocks/repository"
	mockSvc "onevisit/internal/mocks/service"
	"onevisit/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// qrCodeFixtures holds all test dependencies for QR code service tests.
type qrCodeFixtures struct {
	service      usecase.QRCodeUsecase
	qrCodeRepo   *mockRepo.MockQRCodeRepository
	imageService *mockSvc.MockQRCodeImageService
}

func createTestQRCodeService(t *testing.T) qrCodeFixtures {
	qrCodeRepo := mockRepo.NewMockQRCodeRepository(t)
	imageService := mockSvc.NewMockQRCodeImageService(t)

	svc := NewQRCodeService(QRCodeServiceParams{
		QRCodeRepo:   qrCodeRepo,
		ImageService: imageService,
		Config:       newTestConfig(testFallbackBusinessID),
	})

	return qrCodeFixtures{
		service:      svc,
		qrCodeRepo:   qrCodeRepo,
		imageService: imageService,
	}
}

func TestQRCodeService_CreateQRCode_Success(t *testing.T) {
	f := createTestQRCodeService(t)
	ctx := context.Background()
	businessID := uuid.New()

	f.qrCodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.QRCode")).
		Run(func(args mock.Arguments) {
			qrCode := args.Get(1).(*entity.QRCode)
			qrCode.ID = uuid.New()

			assert.Equal(t, businessID, qrCode.BusinessID)
			assert.True(t, qrCode.IsActive)
			assert.Len(t, qrCode.Code, qrCodeBytes*2)
		}).
		Return(nil)

	qrCode, err := f.service.CreateQRCode(ctx, businessID, &usecase.CreateQRCodeRequest{
		Name: "Front door",
	})

	require.NoError(t, err)
	assert.Equal(t, "Front door", qrCode.Name)
	assert.NotEmpty(t, qrCode.Code)
}

func TestQRCodeService_CreateQRCode_MissingName(t *testing.T) {
	f := createTestQRCodeService(t)
	ctx := context.Background()

	_, err := f.service.CreateQRCode(ctx, uuid.New(), &usecase.CreateQRCodeRequest{Name: " "})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestQRCodeService_SetQRCodeActive_OtherBusiness(t *testing.T) {
	f := createTestQRCodeService(t)
	ctx := context.Background()

	qrCodeID := uuid.New()
	f.qrCodeRepo.EXPECT().
		FindByID(ctx, qrCodeID).
		Return(&entity.QRCode{ID: qrCodeID, BusinessID: uuid.New()}, nil)

	_, err := f.service.SetQRCodeActive(ctx, uuid.New(), qrCodeID, false)

	assert.ErrorIs(t, err, domainerrors.ErrQRCodeNotFound)
}

func TestQRCodeService_SetQRCodeActive_Success(t *testing.T) {
	f := createTestQRCodeService(t)
	ctx := context.Background()

	businessID := uuid.New()
	qrCodeID := uuid.New()
	f.qrCodeRepo.EXPECT().
		FindByID(ctx, qrCodeID).
		Return(&entity.QRCode{ID: qrCodeID, BusinessID: businessID, IsActive: true}, nil)
	f.qrCodeRepo.EXPECT().SetActive(ctx, qrCodeID, false).Return(nil)

	qrCode, err := f.service.SetQRCodeActive(ctx, businessID, qrCodeID, false)

	require.NoError(t, err)
	assert.False(t, qrCode.IsActive)
}

func TestQRCodeService_GenerateQRCodeImage_EncodesLandingURL(t *testing.T) {
	f := createTestQRCodeService(t)
	ctx := context.Background()

	businessID := uuid.New()
	qrCode := &entity.QRCode{
		ID:         uuid.New(),
		Code:       "a1b2c3d4e5f60708",
		BusinessID: businessID,
	}

	f.qrCodeRepo.EXPECT().FindByID(ctx, qrCode.ID).Return(qrCode, nil)
	f.imageService.EXPECT().
		GeneratePNG("https://onboard.example.com/join?code=a1b2c3d4e5f60708").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := f.service.GenerateQRCodeImage(ctx, businessID, qrCode.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_GenerateQRCodeImage_NotFound(t *testing.T) {
	f := createTestQRCodeService(t)
	ctx := context.Background()

	qrCodeID := uuid.New()
	f.qrCodeRepo.EXPECT().
		FindByID(ctx, qrCodeID).
		Return(nil, repository.ErrQRCodeNotFound)

	_, err := f.service.GenerateQRCodeImage(ctx, uuid.New(), qrCodeID)

	assert.ErrorIs(t, err, domainerrors.ErrQRCodeNotFound)
}
