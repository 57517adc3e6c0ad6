package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

type ResendOption func(*resendConfig)

type resendConfig struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *slog.Logger
}

// WithHTTPClient sets the client used for API calls; its Timeout bounds every send.
func WithHTTPClient(c *http.Client) ResendOption {
	return func(cfg *resendConfig) {
		cfg.httpClient = c
	}
}

// WithBaseURL points the sender at another API host.
func WithBaseURL(u *url.URL) ResendOption {
	return func(cfg *resendConfig) {
		cfg.baseURL = u
	}
}

func WithResendLogger(logger *slog.Logger) ResendOption {
	return func(cfg *resendConfig) {
		cfg.logger = logger
	}
}

// NewResendSender creates a ResendSender with the given API key and default
// from address.
func NewResendSender(apiKey, from string, opts ...ResendOption) *ResendSender {
	cfg := resendConfig{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := resend.NewCustomClient(cfg.httpClient, apiKey)
	if cfg.baseURL != nil {
		client.BaseURL = cfg.baseURL
	}
	return &ResendSender{client: client, from: from, logger: cfg.logger}
}

// Send sends a single email via Resend.
func (s *ResendSender) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	from := req.From
	if from == "" {
		from = s.from
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      req.To,
		Subject: req.Subject,
		Html:    req.HTML,
		Text:    req.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "resend_send_failed", "error", err, "to", req.To, "subject", req.Subject)
		return SendResult{}, fmt.Errorf("resend send failed: %w", err)
	}

	s.logger.InfoContext(ctx, "resend_sent", "message_id", sent.Id, "subject", req.Subject)
	return SendResult{
		MessageID: sent.Id,
		SentAt:    time.Now(),
	}, nil
}
