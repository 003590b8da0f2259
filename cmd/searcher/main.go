// Command searcher runs the name search HTTP service.
//
// It opens the indexes under index.baseDir on demand, serves the
// /searchindex, /personsearch and /management APIs, and, when Kafka is
// enabled, consumes queued index requests and person search batches and
// publishes analytics events.
//
// Usage:
//
//	go run ./cmd/searcher [-config configs/config.yaml]
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

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/apikey"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/ratelimit"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/consumer"
	ingesthandler "github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion/handler"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion/publisher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/person"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/router"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/cache"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/handler"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/templates"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/health"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/postgres"
	pkgredis "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/redis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/tracing"
	"github.com/prometheus/client_golang/prometheus"
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
		slog.Error("search service failed", "error", err)
		os.Exit(1)
	}
	slog.Info("search service stopped")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics.Port, reg)
		metricsServer.Start()
		defer metricsServer.Shutdown(context.Background())
	}

	encoder := phonetic.New(phonetic.WithKeyLength(cfg.Index.KeyLength))
	keys := analysis.NewKeyCache(encoder, cfg.Index.KeyCacheSize)
	synonyms, err := analysis.LoadSynonyms(cfg.Index.SynonymsPath)
	if err != nil {
		return err
	}
	analyzers, err := analysis.NewAnalyzers(keys, synonyms)
	if err != nil {
		return err
	}
	slog.Info("analysis ready", "key_length", encoder.KeyLength(), "synonyms", len(synonyms))

	factory, err := searcher.NewFactory(cfg.Index, analyzers, searcher.WithMetrics(m))
	if err != nil {
		return err
	}
	defer func() {
		if err := factory.Close(); err != nil {
			slog.Error("closing indexes failed", "error", err)
		}
	}()

	store, err := templates.Load(cfg.Search.TemplatesPath)
	if err != nil {
		return err
	}
	if cfg.Search.WatchTemplates {
		if err := store.Watch(ctx); err != nil {
			slog.Warn("template watching disabled", "error", err)
		}
	}

	checker := health.NewChecker()
	checker.Register("indexes", health.IndexCheck(factory.Indexes))

	execOpts := []executor.Option{executor.WithMetrics(m)}

	if cfg.Redis.Enabled && cfg.Search.CacheEnabled {
		redisClient, err := pkgredis.NewClient(cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, result caching disabled", "error", err)
		} else {
			defer redisClient.Close()
			execOpts = append(execOpts, executor.WithCache(cache.New(redisClient, cfg.Redis.CacheTTL, m)))
			checker.Register("redis", health.PingCheck(redisClient.Ping, true))
			slog.Info("result cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
		}
	}

	var db *postgres.Client
	if cfg.Postgres.Enabled {
		db, err = postgres.New(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		checker.Register("postgres", health.PingCheck(db.Ping, false))
	}

	// Producers are closed after the HTTP server and consumers stop.
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				slog.Error("shutdown step failed", "error", err)
			}
		}
	}()

	if cfg.Kafka.Enabled {
		analyticsProducer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.AnalyticsEvents)
		closers = append(closers, analyticsProducer.Close)
		collector := analytics.NewCollector(analyticsProducer, cfg.Analytics.BufferSize)
		collector.Start(ctx)
		closers = append(closers, func() error { collector.Close(); return nil })
		execOpts = append(execOpts, executor.WithTracker(collector))
		slog.Info("analytics collector started", "topic", cfg.Kafka.Topics.AnalyticsEvents)
	}

	exec, err := executor.New(factory, store, parser.NewInterpreter(keys), cfg.Search, execOpts...)
	if err != nil {
		return err
	}
	defer exec.Close()

	personOpts := []person.Option{person.WithMetrics(m), person.WithDefaults(cfg.Search.PersonDefaults)}
	var workers sync.WaitGroup
	var consumers []func() error

	routes := router.Config{
		Routes:         []router.Routes{handler.New(exec)},
		Health:         checker,
		Metrics:        m,
		Tracer:         tracing.NewTracer(cfg.Tracing),
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
	}

	if cfg.Kafka.Enabled {
		indexProducer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.IndexRequests)
		closers = append(closers, indexProducer.Close)
		routes.Enqueue = ingesthandler.New(publisher.New(indexProducer)).Enqueue

		indexConsumer := consumer.New(kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.IndexRequests, consumer.HandleMessage(exec)))
		consumers = append(consumers, indexConsumer.Close)
		startConsumer(ctx, &workers, "index-requests", indexConsumer.Start)

		if db != nil {
			breaker := resilience.NewCircuitBreaker("postgres-batches", resilience.CircuitBreakerConfig{
				OnStateChange: func(name string, state resilience.State) {
					m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
				},
			})
			batchProducer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.PersonSearchBatch)
			closers = append(closers, batchProducer.Close)
			personOpts = append(personOpts, person.WithBatches(person.NewPostgresJobStore(db, breaker), batchProducer))
		}
	}

	personService := person.NewService(exec, cfg.Search.PersonQuery, personOpts...)
	routes.Routes = append(routes.Routes, person.NewHandler(personService))

	if cfg.Kafka.Enabled && db != nil {
		worker := person.NewWorker(personService)
		batchConsumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.PersonSearchBatch, worker.HandleMessage())
		consumers = append(consumers, batchConsumer.Close)
		startConsumer(ctx, &workers, "person-batches", batchConsumer.Start)
	}

	if cfg.Auth.Enabled {
		routes.Limiter = ratelimit.New(cfg.Auth.RateLimitWindow)
		routes.Validator = apikey.NewValidator(db, apikey.WithCacheTTL(cfg.Auth.KeyCacheTTL))
		routes.DefaultLimit = cfg.Auth.DefaultRateLimit
		slog.Info("api key authentication enabled", "default_rate_limit", cfg.Auth.DefaultRateLimit)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.New(routes),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("search service listening",
		"addr", server.Addr,
		"templates", len(store.All()),
		"kafka", cfg.Kafka.Enabled,
		"postgres", cfg.Postgres.Enabled,
	)
	serveErr := server.ListenAndServe()
	stop()
	workers.Wait()
	for _, closeConsumer := range consumers {
		if err := closeConsumer(); err != nil {
			slog.Error("closing consumer failed", "error", err)
		}
	}
	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return nil
}

func startConsumer(ctx context.Context, wg *sync.WaitGroup, name string, start func(context.Context) error) {
	wg.Go(func() {
		if err := start(ctx); err != nil {
			slog.Error("consumer stopped with error", "consumer", name, "error", err)
		}
	})
	slog.Info("consumer started", "consumer", name)
}
