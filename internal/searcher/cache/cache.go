// Package cache keeps search results in Redis, keyed by the index
// generation they were computed from, and collapses concurrent identical
// searches into one.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "search:"

// Backend is the key-value store behind the cache; *redis.Client
// satisfies it.
type Backend interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	FlushByPattern(ctx context.Context, pattern string) (int64, error)
}

// Key identifies a search. Generation ties the entry to the snapshot it was
// computed from, so writes to the index make older entries unreachable.
type Key struct {
	Index      string
	Generation uint64
	Template   string
	Query      string
	Fields     map[string]string
	Tokens     map[string]string
	TopN       int
	Explain    bool
}

func (k Key) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d|%s|%d|%t|", k.Template, k.Generation, k.Query, k.TopN, k.Explain)
	writeSorted(&b, k.Fields)
	b.WriteByte('|')
	writeSorted(&b, k.Tokens)
	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%s%s:%x", keyPrefix, strings.ToLower(k.Index), sum[:16])
}

func writeSorted(b *strings.Builder, m map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(b, "%q=%q;", name, m[name])
	}
}

type QueryCache struct {
	backend Backend
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
	logger  *slog.Logger
	hits    atomic.Int64
	misses  atomic.Int64
}

func New(backend Backend, ttl time.Duration, m *metrics.Metrics) *QueryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &QueryCache{
		backend: backend,
		ttl:     ttl,
		metrics: m,
		logger:  slog.Default().With("component", "query-cache"),
	}
}

// Get returns the cached results for key. Backend failures count as
// misses.
func (c *QueryCache) Get(ctx context.Context, key Key) ([]searcher.Result, bool) {
	k := key.String()
	var results []searcher.Result
	found, err := c.backend.GetJSON(ctx, k, &results)
	if err != nil {
		c.logger.Error("cache get failed", "key", k, "error", err)
	}
	if err != nil || !found {
		c.misses.Add(1)
		if c.metrics != nil {
			c.metrics.CacheMissesTotal.Inc()
		}
		return nil, false
	}
	c.hits.Add(1)
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.Inc()
	}
	c.logger.Debug("cache hit", "key", k)
	return results, true
}

func (c *QueryCache) Set(ctx context.Context, key Key, results []searcher.Result) {
	k := key.String()
	if err := c.backend.SetJSON(ctx, k, results, c.ttl); err != nil {
		c.logger.Error("cache set failed", "key", k, "error", err)
	}
}

// GetOrCompute returns cached results or runs computeFn once for all
// concurrent callers with the same key. The bool reports a cache hit.
func (c *QueryCache) GetOrCompute(
	ctx context.Context,
	key Key,
	computeFn func() ([]searcher.Result, error),
) ([]searcher.Result, bool, error) {
	if results, ok := c.Get(ctx, key); ok {
		return results, true, nil
	}
	val, err, _ := c.group.Do(key.String(), func() (any, error) {
		results, err := computeFn()
		if err != nil {
			return nil, err
		}
		c.Set(ctx, key, results)
		return results, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val.([]searcher.Result), false, nil
}

// Invalidate drops the entries of one index, or of every index when index
// is empty.
func (c *QueryCache) Invalidate(ctx context.Context, index string) error {
	pattern := keyPrefix + "*"
	if index != "" {
		pattern = keyPrefix + strings.ToLower(index) + ":*"
	}
	deleted, err := c.backend.FlushByPattern(ctx, pattern)
	if err != nil {
		return fmt.Errorf("invalidating cache: %w", err)
	}
	c.logger.Info("cache invalidate", "index", index, "keys_deleted", deleted)
	return nil
}

func (c *QueryCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
