package searcher

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/nrt"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
)

// optimizeQuietPeriod is how long the factory must go without handing out
// a context before the optimize ticker merges indexes.
const optimizeQuietPeriod = 5 * time.Minute

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithMetrics records index metrics for every manager the factory opens.
func WithMetrics(m *metrics.Metrics) FactoryOption {
	return func(f *Factory) { f.metrics = m }
}

// Factory owns one nrt.Manager per index name, opened on first use under
// <baseDir>/<name>, and hands out search contexts over them. Index names
// are case-insensitive.
type Factory struct {
	cfg       config.IndexConfig
	analyzers *analysis.Analyzers
	metrics   *metrics.Metrics
	logger    *slog.Logger

	managers sync.Map // lower-cased name -> *nrt.Manager
	mu       sync.Mutex
	closed   atomic.Bool

	lastAccess atomic.Int64
	optimizing atomic.Bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFactory creates a factory and starts its commit ticker and, when
// cfg.OptimizeInterval is positive, its optimize ticker.
func NewFactory(cfg config.IndexConfig, analyzers *analysis.Analyzers, opts ...FactoryOption) (*Factory, error) {
	if strings.TrimSpace(cfg.BaseDir) == "" {
		return nil, apperrors.New(apperrors.ErrConfiguration, http.StatusInternalServerError, "index base directory is not configured")
	}
	if cfg.CommitInterval <= 0 {
		cfg.CommitInterval = time.Minute
	}
	f := &Factory{
		cfg:       cfg,
		analyzers: analyzers,
		logger:    slog.Default().With("component", "searcher-factory"),
	}
	for _, opt := range opts {
		opt(f)
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.startLoop(ctx, cfg.CommitInterval, "commit", func(context.Context) { f.CommitAll() })
	if cfg.OptimizeInterval > 0 {
		f.startLoop(ctx, cfg.OptimizeInterval, "optimize", f.optimizeIfQuiet)
	}
	f.logger.Info("searcher context factory ready",
		"base_dir", cfg.BaseDir,
		"commit_interval", cfg.CommitInterval,
		"optimize_interval", cfg.OptimizeInterval,
	)
	return f, nil
}

// CreateSearchContext opens the named index if needed and returns a
// context leasing its current snapshot. Callers must Close it.
func (f *Factory) CreateSearchContext(indexName string) (*Context, error) {
	m, err := f.manager(indexName)
	if err != nil {
		return nil, err
	}
	f.lastAccess.Store(time.Now().UnixNano())
	return newContext(m)
}

// Manager returns the manager of an already opened index.
func (f *Factory) Manager(indexName string) (*nrt.Manager, bool) {
	v, ok := f.managers.Load(strings.ToLower(indexName))
	if !ok {
		return nil, false
	}
	return v.(*nrt.Manager), true
}

func (f *Factory) manager(indexName string) (*nrt.Manager, error) {
	if f.closed.Load() {
		return nil, f.closedError()
	}
	if err := validateIndexName(indexName); err != nil {
		return nil, err
	}
	key := strings.ToLower(indexName)
	if v, ok := f.managers.Load(key); ok {
		return v.(*nrt.Manager), nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed.Load() {
		return nil, f.closedError()
	}
	if v, ok := f.managers.Load(key); ok {
		return v.(*nrt.Manager), nil
	}

	var opts []nrt.Option
	if f.metrics != nil {
		opts = append(opts, nrt.WithMetrics(f.metrics))
	}
	// index names are case-insensitive; the directory is always lower case
	path := filepath.Join(f.cfg.BaseDir, key)
	m, err := nrt.Open(key, path, f.analyzers, opts...)
	if err != nil {
		return nil, err
	}
	f.managers.Store(key, m)
	if f.metrics != nil {
		f.metrics.OpenIndexes.Inc()
	}
	f.logger.Info("index opened", "index", key, "path", path)
	return m, nil
}

func validateIndexName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return apperrors.New(apperrors.ErrInvalidInput, http.StatusBadRequest, "index name is required")
	case strings.ContainsAny(name, `/\`), name == ".", name == "..":
		return apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest, "invalid index name %q", name)
	}
	return nil
}

// Indexes returns the names of the open indexes, sorted.
func (f *Factory) Indexes() []string {
	var names []string
	f.managers.Range(func(_, v any) bool {
		names = append(names, v.(*nrt.Manager).Name())
		return true
	})
	slices.Sort(names)
	return names
}

// CommitAll commits every open index. A failing index is logged and
// skipped; the next call retries it.
func (f *Factory) CommitAll() {
	f.managers.Range(func(_, v any) bool {
		m := v.(*nrt.Manager)
		if err := m.Commit(); err != nil {
			f.logger.Error("periodic commit failed", "index", m.Name(), "error", err)
		}
		return true
	})
}

// OptimizeAll merges every open index, returning the first error.
func (f *Factory) OptimizeAll(ctx context.Context) error {
	if !f.optimizing.CompareAndSwap(false, true) {
		return nil
	}
	defer f.optimizing.Store(false)

	var firstErr error
	f.managers.Range(func(_, v any) bool {
		m := v.(*nrt.Manager)
		if err := m.Optimize(ctx); err != nil {
			f.logger.Error("optimize failed", "index", m.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
		return ctx.Err() == nil
	})
	return firstErr
}

func (f *Factory) optimizeIfQuiet(ctx context.Context) {
	last := f.lastAccess.Load()
	if last != 0 && time.Since(time.Unix(0, last)) < optimizeQuietPeriod {
		f.logger.Debug("skipping optimize, indexes recently used")
		return
	}
	_ = f.OptimizeAll(ctx)
}

func (f *Factory) startLoop(ctx context.Context, interval time.Duration, name string, tick func(context.Context)) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				f.logger.Debug("background loop stopping", "loop", name)
				return
			case <-ticker.C:
				tick(ctx)
			}
		}
	}()
}

// Close stops the background loops, then closes every index. Every index
// is attempted and the first error is returned. Later calls return nil;
// later CreateSearchContext calls fail with ErrFactoryClosed.
func (f *Factory) Close() error {
	f.mu.Lock()
	if !f.closed.CompareAndSwap(false, true) {
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	f.cancel()
	f.wg.Wait()

	var firstErr error
	f.managers.Range(func(key, v any) bool {
		m := v.(*nrt.Manager)
		if err := m.Close(); err != nil {
			f.logger.Error("close failed", "index", m.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
		f.managers.Delete(key)
		if f.metrics != nil {
			f.metrics.OpenIndexes.Dec()
		}
		return true
	})
	f.logger.Info("searcher context factory closed")
	return firstErr
}

func (f *Factory) closedError() error {
	return apperrors.New(apperrors.ErrFactoryClosed, http.StatusServiceUnavailable, "searcher context factory is closed")
}
