package repository

import (
	"context"
	"time"

	"onevisit/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository defines operations for the append-only analytics facts.
type AnalyticsRepository interface {
	// Create appends a new analytics event. Events are never mutated or deleted.
	Create(ctx context.Context, event *entity.AnalyticsEvent) error

	// SumMetric sums the values of a metric for a business in [from, to).
	SumMetric(ctx context.Context, businessID uuid.UUID, metric string, from, to time.Time) (float64, error)
}
