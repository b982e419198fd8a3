package service

import (
	"context"
)

// AnalyticsEventMessage is the wire form of an analytics fact offered to
// downstream reporting consumers.
type AnalyticsEventMessage struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	BusinessID string  `json:"business_id"`
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
	Source     string  `json:"source,omitempty"`
	QRCode     string  `json:"qr_code,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing analytics facts to a message queue.
type EventPublisher interface {
	// PublishAnalyticsEvent publishes an analytics fact for async processing.
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
