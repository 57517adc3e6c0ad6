package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	httpapi "newsletter/internal/http"
	"newsletter/internal/platform/config"
	"newsletter/internal/platform/email"
	"newsletter/internal/platform/httpserver"
	"newsletter/internal/platform/logger"
	platformmetrics "newsletter/internal/platform/metrics"
	"newsletter/internal/platform/postgres"
	"newsletter/internal/platform/tracing"
	"newsletter/internal/subscriptions/handler"
	subscriptionmetrics "newsletter/internal/subscriptions/metrics"
	"newsletter/internal/subscriptions/ports"
	"newsletter/internal/subscriptions/service"
	"newsletter/internal/subscriptions/store/subscriber"
	"newsletter/migrations"
)

const (
	serviceName     = "newsletter"
	shutdownTimeout = 10 * time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var traceOut io.Writer
	if cfg.TracingStdout {
		traceOut = os.Stdout
	}
	shutdownTracing, err := tracing.Setup(serviceName, traceOut)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	tx, db, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	emailClient, err := newEmailClient(cfg.Email, log)
	if err != nil {
		return err
	}

	subscriptions, err := service.New(tx, emailClient, cfg.Server.BaseURL,
		service.WithLogger(log),
		service.WithMetrics(subscriptionmetrics.New(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		return err
	}

	routerCfg := httpapi.RouterConfig{
		ServiceName: serviceName,
		Handlers: []httpapi.Registrar{
			handler.New(subscriptions, log, platformmetrics.New(prometheus.DefaultRegisterer)),
		},
		Gatherer: prometheus.DefaultGatherer,
	}
	if db != nil {
		routerCfg.DB = db
	}
	srv := httpserver.New(cfg.Server.Addr, httpapi.NewRouter(routerCfg))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting newsletter", "addr", cfg.Server.Addr, "base_url", cfg.Server.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// openStore returns the PostgreSQL store when DATABASE_URL is set and the
// in-memory store otherwise. db is nil for the in-memory store.
func openStore(ctx context.Context, cfg config.Database, log *slog.Logger) (ports.StoreTx, *sql.DB, error) {
	if cfg.URL == "" {
		log.Warn("DATABASE_URL not set; subscribers are kept in memory")
		return subscriber.NewInMemory(), nil, nil
	}

	db, err := postgres.Open(ctx, cfg.URL, postgres.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoMigrate {
		if err := migrations.Apply(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("migrations applied", "count", len(migrations.Names()))
	}
	return subscriber.NewPostgresTx(db), db, nil
}

func newEmailClient(cfg config.Email, log *slog.Logger) (*email.Client, error) {
	var sender email.Sender
	if cfg.ResendAPIKey == "" {
		log.Warn("RESEND_API_KEY not set; confirmation emails are logged, not sent")
		sender = email.NewNoopSender(log)
	} else {
		sender = email.NewResendSender(cfg.ResendAPIKey, cfg.Sender,
			email.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			email.WithResendLogger(log),
		)
	}
	return email.NewClient(sender, cfg.Sender)
}
