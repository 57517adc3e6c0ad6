package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NoopSender logs messages instead of delivering them. Used when no provider
// API key is configured.
type NoopSender struct {
	logger *slog.Logger
}

func NewNoopSender(logger *slog.Logger) *NoopSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopSender{logger: logger}
}

func (s *NoopSender) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	s.logger.InfoContext(ctx, "email_not_sent_noop",
		"to", req.To,
		"subject", req.Subject,
		"text", req.Text,
	)
	return SendResult{MessageID: "noop-" + uuid.NewString(), SentAt: time.Now()}, nil
}
