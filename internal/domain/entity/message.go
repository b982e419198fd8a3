package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType is the outbound channel a message is dispatched on.
type MessageType string

const (
	MessageTypeSMS      MessageType = "SMS"
	MessageTypeWhatsApp MessageType = "WHATSAPP"
	MessageTypeEmail    MessageType = "EMAIL"
)

// MessageStatus tracks delivery state of a single outbound message.
type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "PENDING"
	MessageStatusSent      MessageStatus = "SENT"
	MessageStatusDelivered MessageStatus = "DELIVERED"
	MessageStatusRead      MessageStatus = "READ"
	MessageStatusFailed    MessageStatus = "FAILED"
)

// Message is one rendered outbound message to one customer, usually produced
// by a campaign dispatch. ExternalID holds the provider-side message SID.
type Message struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CampaignID   *uuid.UUID
	Type         MessageType
	Content      string
	Status       MessageStatus
	SentAt       *time.Time
	ErrorMessage string
	ExternalID   string
	CreatedAt    time.Time
}
