package service

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"newsletter/internal/subscriptions/metrics"
	"newsletter/internal/subscriptions/models"
	"newsletter/internal/subscriptions/ports"
)

const tracerName = "newsletter/internal/subscriptions/service"

// Service runs the double opt-in workflows: Subscribe records a pending
// subscriber and mails a confirmation link, Confirm redeems the link.
type Service struct {
	tx      ports.StoreTx
	email   ports.EmailClient
	baseURL string
	tokens  *models.TokenGenerator
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTokenGenerator replaces the crypto/rand backed generator.
func WithTokenGenerator(g *models.TokenGenerator) Option {
	return func(s *Service) {
		s.tokens = g
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service. baseURL is the public address confirmation links
// point at; a trailing slash is ignored.
func New(tx ports.StoreTx, email ports.EmailClient, baseURL string, opts ...Option) (*Service, error) {
	if tx == nil {
		return nil, errors.New("store transaction is required")
	}
	if email == nil {
		return nil, errors.New("email client is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.New("base url must be absolute")
	}

	s := &Service{
		tx:      tx,
		email:   email,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tokens == nil {
		s.tokens = models.NewTokenGenerator(nil)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s, nil
}
