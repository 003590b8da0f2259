// Command analytics aggregates the search and index events the searcher
// publishes to Kafka and serves the running statistics.
//
// With PostgreSQL enabled the aggregate is snapshotted every
// analytics.snapshotInterval and the latest snapshot is restored on start.
//
// Usage:
//
//	go run ./cmd/analytics [-config configs/config.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analytics/aggregator"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/health"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/middleware"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/postgres"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := run(cfg); err != nil {
		slog.Error("analytics service failed", "error", err)
		os.Exit(1)
	}
	slog.Info("analytics service stopped")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := analytics.NewAggregator()
	checker := health.NewChecker()

	var (
		snapshots analytics.SnapshotLister
		workers   sync.WaitGroup
	)
	if cfg.Postgres.Enabled {
		db, err := postgres.New(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		store := aggregator.NewStore(db, resilience.NewCircuitBreaker("analytics-snapshots", resilience.CircuitBreakerConfig{}))
		if err := restore(ctx, store, agg); err != nil {
			slog.Warn("starting with empty statistics", "error", err)
		}
		workers.Go(func() { store.Run(ctx, agg, cfg.Analytics.SnapshotInterval) })
		snapshots = store
		checker.Register("postgres", health.PingCheck(db.Ping, false))
	}

	if cfg.Kafka.Enabled {
		topic := cfg.Kafka.Topics.AnalyticsEvents
		consumer := kafka.NewConsumer(cfg.Kafka, topic, analytics.HandleEvent(agg))
		defer consumer.Close()
		workers.Go(func() {
			if err := consumer.Start(ctx); err != nil {
				slog.Error("analytics consumer stopped", "error", err)
			}
		})
		slog.Info("consuming analytics events", "topic", topic)
	} else {
		slog.Warn("kafka disabled, no events will be aggregated")
	}

	h := analytics.NewHandler(agg, snapshots)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/analytics", h.Stats)
	mux.HandleFunc("GET /api/v1/analytics/snapshots", h.Snapshots)
	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var chain http.Handler = mux
	chain = middleware.CORS(cfg.Server.CORSOrigins)(chain)
	chain = middleware.RequestID(chain)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Analytics.Port),
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("analytics service listening", "addr", server.Addr, "postgres", cfg.Postgres.Enabled)
	err := server.ListenAndServe()
	stop()
	workers.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func restore(ctx context.Context, store *aggregator.Store, agg *analytics.Aggregator) error {
	latest, err := store.Latest(ctx)
	if err != nil || latest == nil {
		return err
	}
	agg.Restore(latest.Stats)
	slog.Info("statistics restored from snapshot", "taken_at", latest.TakenAt, "total_searches", latest.Stats.TotalSearches)
	return nil
}
