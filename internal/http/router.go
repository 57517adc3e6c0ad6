package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/platform/httputil"
)

const readinessTimeout = 2 * time.Second

// Registrar is implemented by feature handlers.
type Registrar interface {
	Register(r chi.Router)
}

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig lists what the router exposes. DB may be nil when the
// in-memory store is in use.
type RouterConfig struct {
	ServiceName string
	Handlers    []Registrar
	DB          Pinger
	Gatherer    prometheus.Gatherer
}

// NewRouter wires feature handlers plus the operational endpoints and wraps
// everything in an OpenTelemetry server span.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Get("/health_check", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/readyz", readyz(cfg.DB))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	for _, h := range cfg.Handlers {
		h.Register(r)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "newsletter"
	}
	return otelhttp.NewHandler(r, name)
}

func readyz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "in-memory"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  string(dErrors.CodeInternal),
			})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "reachable"})
	}
}
