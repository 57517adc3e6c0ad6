package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for workflow counters.
const (
	OutcomeSuccess      = "success"
	OutcomeRejected     = "rejected"
	OutcomeStoreFailed  = "store_failed"
	OutcomeEmailFailed  = "email_failed"
	OutcomeUnauthorized = "unauthorized"
)

// Metrics provides observability for the subscriptions module.
// Tracks subscribe/confirm outcomes and email delivery latency.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SubscribeTotal    *prometheus.CounterVec
	ConfirmTotal      *prometheus.CounterVec
	TokensReused      prometheus.Counter
	EmailSendDuration prometheus.Histogram
	SubscribeDuration prometheus.Histogram
}

// New registers the subscriptions metrics on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubscribeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_subscribe_requests_total",
			Help: "Subscribe workflow results by outcome",
		}, []string{"outcome"}),
		ConfirmTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_confirm_requests_total",
			Help: "Confirm workflow results by outcome",
		}, []string{"outcome"}),
		TokensReused: factory.NewCounter(prometheus.CounterOpts{
			Name: "newsletter_subscription_tokens_reused_total",
			Help: "Subscribe requests answered by resending an existing pending token",
		}),
		EmailSendDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsletter_confirmation_email_duration_seconds",
			Help:    "Duration of confirmation email delivery attempts",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SubscribeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsletter_subscribe_duration_seconds",
			Help:    "Duration of the whole subscribe workflow",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) IncrementSubscribe(outcome string) {
	if m == nil {
		return
	}
	m.SubscribeTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementConfirm(outcome string) {
	if m == nil {
		return
	}
	m.ConfirmTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementTokenReused() {
	if m == nil {
		return
	}
	m.TokensReused.Inc()
}

// ObserveEmailSend records the duration of one delivery attempt.
// Call with time.Now() at the start of the attempt.
func (m *Metrics) ObserveEmailSend(start time.Time) {
	if m == nil {
		return
	}
	m.EmailSendDuration.Observe(time.Since(start).Seconds())
}

// ObserveSubscribe records the duration of a Subscribe call.
func (m *Metrics) ObserveSubscribe(start time.Time) {
	if m == nil {
		return
	}
	m.SubscribeDuration.Observe(time.Since(start).Seconds())
}
