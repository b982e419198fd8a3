package messaging

import (
	"context"
	"log/slog"

	"onevisit/config"
	"onevisit/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// noopSender is a no-op implementation used when Twilio is not configured.
// It fabricates a local identifier so campaign dispatch still records messages.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	s.logger.Debug("[NoopSender] SMS dispatch disabled, skipping",
		slog.String("to", to),
	)

	return "noop-" + uuid.NewString(), nil
}

func (s *noopSender) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	s.logger.Debug("[NoopSender] WhatsApp dispatch disabled, skipping",
		slog.String("to", to),
	)

	return "noop-" + uuid.NewString(), nil
}

// SenderParams holds dependencies for MessageSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMessageSender creates a MessageSender based on configuration
func NewMessageSender(params SenderParams) (service.MessageSender, error) {
	cfg := params.Config.Twilio
	logger := params.Logger

	// If Twilio is not configured, return a no-op sender
	if cfg == nil || cfg.AccountSID == "" {
		logger.Info("Twilio not configured, using no-op message sender")

		return &noopSender{logger: logger}, nil
	}

	logger.Info("Using Twilio message sender",
		slog.String("from_phone", cfg.FromPhone),
	)

	return NewTwilioSender(cfg, logger)
}

// Module provides the messaging FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMessageSender),
)
