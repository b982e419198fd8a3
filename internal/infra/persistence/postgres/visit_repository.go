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

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Create persists a new visit record.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("invalid customer or qr code reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required visit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.ID = visitM.ID

	return nil
}

// ListByCustomer returns all visits of a customer, newest first.
func (repo *visitRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Visit, error) {
	var visitMs []model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("visit_date DESC").
		Find(&visitMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visits by customer")
	}

	visits := make([]*entity.Visit, 0, len(visitMs))
	for i := range visitMs {
		visits = append(visits, toVisitDomain(&visitMs[i]))
	}

	return visits, nil
}

// --- Mapper Functions ---

func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		QRCodeID:    data.QRCodeID,
		VisitDate:   data.VisitDate,
		AmountSpent: data.AmountSpent,
		Notes:       data.Notes,
	}
}

func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	return &model.VisitModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		QRCodeID:    data.QRCodeID,
		VisitDate:   data.VisitDate,
		AmountSpent: data.AmountSpent,
		Notes:       data.Notes,
	}
}
