// Package ratelimit implements the per-API-key token bucket applied to the
// search endpoints.
package ratelimit

import (
	"math"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maxTrackedKeys bounds memory; the least recently used bucket is dropped
// first and comes back full.
const maxTrackedKeys = 10_000

type bucket struct {
	tokens float64
	seen   time.Time
}

// Limiter gives each key `limit` requests per window, refilled
// continuously.
type Limiter struct {
	mu      sync.Mutex
	buckets *lru.Cache[string, *bucket]
	window  time.Duration
	now     func() time.Time
}

func New(window time.Duration) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	buckets, _ := lru.New[string, *bucket](maxTrackedKeys) // only fails for size <= 0
	return &Limiter{
		buckets: buckets,
		window:  window,
		now:     time.Now,
	}
}

// Allow takes one token from key's bucket. When the bucket is empty it
// reports how long until a token is available. A non-positive limit is
// unlimited.
func (l *Limiter) Allow(key string, limit int) (bool, time.Duration) {
	if limit <= 0 {
		return true, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	capacity := float64(limit)
	perSecond := capacity / l.window.Seconds()

	b, ok := l.buckets.Get(key)
	if !ok {
		l.buckets.Add(key, &bucket{tokens: capacity - 1, seen: now})
		return true, 0
	}
	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.seen).Seconds()*perSecond)
	b.seen = now

	if b.tokens < 1 {
		wait := (1 - b.tokens) / perSecond
		return false, time.Duration(math.Ceil(wait * float64(time.Second)))
	}
	b.tokens--
	return true, 0
}

// Reset refills key's bucket.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets.Remove(key)
}
