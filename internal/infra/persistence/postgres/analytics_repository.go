package postgres

import (
	"context"
	"time"

	"onevisit/internal/domain/entity"
	domainerrors "onevisit/internal/domain/errors"
	"onevisit/internal/domain/repository"
	"onevisit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
// Analytics rows are append-only facts; no update or delete paths exist.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Create appends a new analytics event.
func (repo *analyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	eventM := fromAnalyticsDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required analytics information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analytics event")
	}

	event.ID = eventM.ID

	return nil
}

// SumMetric sums the values of a metric for a business in [from, to).
func (repo *analyticsRepository) SumMetric(ctx context.Context, businessID uuid.UUID, metric string, from, to time.Time) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.AnalyticsEventModel{}).
		Where("business_id = ? AND metric = ? AND date >= ? AND date < ?", businessID, metric, from, to).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum analytics metric")
	}

	return total, nil
}

// --- Mapper Functions ---

func fromAnalyticsDomain(data *entity.AnalyticsEvent) *model.AnalyticsEventModel {
	if data == nil {
		return nil
	}

	return &model.AnalyticsEventModel{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		Date:       data.Date,
		Metric:     data.Metric,
		Value:      data.Value,
		Metadata:   data.Metadata,
	}
}
