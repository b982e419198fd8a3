package service

import "context"

// MessageSender defines the interface for outbound customer messaging
// (SMS/WhatsApp). Implementations return the provider-side message identifier
// so delivery can be reconciled later.
type MessageSender interface {
	// SendSMS dispatches a plain SMS to the given phone number.
	SendSMS(ctx context.Context, to, body string) (externalID string, err error)

	// SendWhatsApp dispatches a WhatsApp message to the given phone number.
	SendWhatsApp(ctx context.Context, to, body string) (externalID string, err error)
}
