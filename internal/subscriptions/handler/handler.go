package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"newsletter/internal/platform/metrics"
	"newsletter/internal/platform/middleware"
	"newsletter/internal/subscriptions/service"
	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/platform/httputil"
)

const (
	requestTimeout = 30 * time.Second
	maxFormBytes   = 16 << 10
)

// Service is the subscriptions workflow surface the handler drives.
type Service interface {
	Subscribe(ctx context.Context, req service.SubscribeRequest) error
	Confirm(ctx context.Context, rawToken string) error
}

// Handler serves the subscribe form and the confirmation link.
type Handler struct {
	logger        *slog.Logger
	subscriptions Service
	metrics       *metrics.Metrics
}

// New creates a subscriptions Handler. metrics may be nil.
func New(subscriptions Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:        logger,
		subscriptions: subscriptions,
		metrics:       metrics,
	}
}

// Register registers the subscription routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.RequestTime)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(middleware.LatencyMiddleware(h.metrics))
		r.Post("/subscriptions", h.handleSubscribe)
		r.Get("/subscriptions/confirm", h.handleConfirm)
	})
}

// handleSubscribe accepts an urlencoded form with name and email.
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "invalid subscribe form",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid form body"))
		return
	}

	req := service.SubscribeRequest{
		Name:  r.PostForm.Get("name"),
		Email: r.PostForm.Get("email"),
	}
	if err := h.subscriptions.Subscribe(ctx, req); err != nil {
		h.writeServiceError(ctx, w, "subscribe failed", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handleConfirm redeems the token from the confirmation link.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, ok := r.URL.Query()["subscription_token"]
	if !ok || len(values) == 0 {
		h.logger.WarnContext(ctx, "confirmation without token",
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "subscription_token is required"))
		return
	}

	if err := h.subscriptions.Confirm(ctx, values[0]); err != nil {
		h.writeServiceError(ctx, w, "confirm failed", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeServiceError logs client faults at warn and everything else at error,
// then renders the classified error.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	requestID := middleware.GetRequestID(ctx)
	if dErrors.Is(err, dErrors.CodeValidation) || dErrors.Is(err, dErrors.CodeUnauthorized) {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestID,
		"error", err.Error(),
	)
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, msg))
}
