package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardStats aggregates the headline numbers of the reporting dashboard.
type DashboardStats struct {
	TotalCustomers int64
	MessagesSent   int64
	TotalQRScans   int64
	NewCustomers   float64
	CampaignsSent  float64
	From           time.Time
	To             time.Time
}

// AnalyticsUsecase defines the dashboard-facing reporting use cases.
type AnalyticsUsecase interface {
	// GetDashboardStats computes headline stats for a business over [from, to).
	GetDashboardStats(ctx context.Context, businessID uuid.UUID, from, to time.Time) (*DashboardStats, error)
}
