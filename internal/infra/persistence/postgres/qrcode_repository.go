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

// qrCodeRepository implements the repository.QRCodeRepository interface.
type qrCodeRepository struct {
	db *gorm.DB
}

// NewQRCodeRepository is the constructor for qrCodeRepository.
func NewQRCodeRepository(db *gorm.DB) repository.QRCodeRepository {
	return &qrCodeRepository{
		db: db,
	}
}

// FindByID retrieves a single QR code by its unique ID.
func (repo *qrCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error) {
	var qrM model.QRCodeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&qrM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQRCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find qr code by ID")
	}

	return toQRCodeDomain(&qrM), nil
}

// FindByCode retrieves a single QR code by its opaque code string.
func (repo *qrCodeRepository) FindByCode(ctx context.Context, code string) (*entity.QRCode, error) {
	var qrM model.QRCodeModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&qrM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQRCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find qr code by code")
	}

	return toQRCodeDomain(&qrM), nil
}

// Create persists a new QR code entity.
func (repo *qrCodeRepository) Create(ctx context.Context, qrCode *entity.QRCode) error {
	qrM := fromQRCodeDomain(qrCode)

	if err := repo.db.WithContext(ctx).Create(qrM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("qr code string already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create qr code")
	}

	qrCode.ID = qrM.ID
	qrCode.CreatedAt = qrM.CreatedAt
	qrCode.UpdatedAt = qrM.UpdatedAt

	return nil
}

// ListByBusiness returns all QR codes owned by a business.
func (repo *qrCodeRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.QRCode, error) {
	var qrMs []model.QRCodeModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&qrMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list qr codes by business")
	}

	qrCodes := make([]*entity.QRCode, 0, len(qrMs))
	for i := range qrMs {
		qrCodes = append(qrCodes, toQRCodeDomain(&qrMs[i]))
	}

	return qrCodes, nil
}

// IncrementScanCount atomically bumps the scan counter by exactly 1.
// The update runs as a single SQL expression so concurrent scans never lose increments.
func (repo *qrCodeRepository) IncrementScanCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QRCodeModel{}).
		Where("id = ?", id).
		UpdateColumn("scans_count", gorm.Expr("scans_count + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment scan count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQRCodeNotFound
	}

	return nil
}

// SetActive flips the active flag of a QR code.
func (repo *qrCodeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QRCodeModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update qr code status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQRCodeNotFound
	}

	return nil
}

// TotalScans sums the scan counters of a business's QR codes.
func (repo *qrCodeRepository) TotalScans(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.QRCodeModel{}).
		Where("business_id = ?", businessID).
		Select("COALESCE(SUM(scans_count), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum qr code scans")
	}

	return total, nil
}

// --- Mapper Functions ---

func toQRCodeDomain(data *model.QRCodeModel) *entity.QRCode {
	if data == nil {
		return nil
	}

	return &entity.QRCode{
		ID:          data.ID,
		Code:        data.Code,
		Name:        data.Name,
		Description: data.Description,
		BusinessID:  data.BusinessID,
		IsActive:    data.IsActive,
		ScansCount:  data.ScansCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromQRCodeDomain(data *entity.QRCode) *model.QRCodeModel {
	if data == nil {
		return nil
	}

	return &model.QRCodeModel{
		ID:          data.ID,
		Code:        data.Code,
		Name:        data.Name,
		Description: data.Description,
		BusinessID:  data.BusinessID,
		IsActive:    data.IsActive,
		ScansCount:  data.ScansCount,
	}
}
