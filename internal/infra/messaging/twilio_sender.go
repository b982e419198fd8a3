// Package messaging provides concrete implementations for outbound customer messaging.
package messaging

import (
	"context"
	"log/slog"

	"onevisit/config"
	"onevisit/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// twilioSender implements MessageSender using the Twilio REST API.
type twilioSender struct {
	client       *twilio.RestClient
	fromPhone    string
	fromWhatsApp string
	logger       *slog.Logger
}

// NewTwilioSender creates a new Twilio-backed message sender.
func NewTwilioSender(cfg *config.TwilioConfig, logger *slog.Logger) (service.MessageSender, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, errors.New("twilio account SID and auth token must be provided")
	}
	if cfg.FromPhone == "" {
		return nil, errors.New("twilio from phone must be provided")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	fromWhatsApp := cfg.FromWhatsApp
	if fromWhatsApp == "" {
		fromWhatsApp = cfg.FromPhone
	}

	return &twilioSender{
		client:       client,
		fromPhone:    cfg.FromPhone,
		fromWhatsApp: fromWhatsApp,
		logger:       logger,
	}, nil
}

// SendSMS dispatches a plain SMS through Twilio.
func (s *twilioSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromPhone)
	params.SetBody(body)

	return s.createMessage(params, to, "sms")
}

// SendWhatsApp dispatches a WhatsApp message through Twilio.
func (s *twilioSender) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + s.fromWhatsApp)
	params.SetBody(body)

	return s.createMessage(params, to, "whatsapp")
}

func (s *twilioSender) createMessage(params *twilioApi.CreateMessageParams, to, channel string) (string, error) {
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", errors.Wrapf(err, "failed to send %s message", channel)
	}

	var sid string
	if resp.Sid != nil {
		sid = *resp.Sid
	}

	s.logger.Info("[Twilio] Message dispatched",
		slog.String("channel", channel),
		slog.String("to", to),
		slog.String("sid", sid),
	)

	return sid, nil
}
