package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsMetadata is the free-form context attached to an analytics fact.
// QRCode carries the raw submitted code string even when it did not resolve.
type AnalyticsMetadata struct {
	Source      string               `json:"source,omitempty"`
	QRCode      string               `json:"qr_code,omitempty"`
	CampaignID  string               `json:"campaign_id,omitempty"`
	Preferences *CustomerPreferences `json:"preferences,omitempty"`
}

// AnalyticsEvent is an immutable fact record for reporting. Rows are
// append-only: they are never mutated or deleted by this system.
type AnalyticsEvent struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Date       time.Time
	Metric     string
	Value      float64
	Metadata   AnalyticsMetadata
}
