package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func allowed(l *Limiter, key string, limit int) bool {
	ok, _ := l.Allow(key, limit)
	return ok
}

func TestAllowConsumesAndRefills(t *testing.T) {
	l := New(time.Minute)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	assert.True(t, allowed(l, "k", 2))
	assert.True(t, allowed(l, "k", 2))
	ok, wait := l.Allow("k", 2)
	assert.False(t, ok)
	assert.InDelta(t, float64(30*time.Second), float64(wait), float64(time.Millisecond))

	now = now.Add(20 * time.Second)
	ok, wait = l.Allow("k", 2)
	assert.False(t, ok)
	assert.InDelta(t, float64(10*time.Second), float64(wait), float64(time.Millisecond))

	now = now.Add(10 * time.Second)
	assert.True(t, allowed(l, "k", 2))
	assert.False(t, allowed(l, "k", 2))
}

func TestKeysAreIndependentAndResettable(t *testing.T) {
	l := New(time.Minute)

	assert.True(t, allowed(l, "a", 1))
	assert.False(t, allowed(l, "a", 1))
	assert.True(t, allowed(l, "b", 1))

	l.Reset("a")
	assert.True(t, allowed(l, "a", 1))
}

func TestNonPositiveLimitIsUnlimited(t *testing.T) {
	l := New(time.Minute)
	for range 100 {
		ok, wait := l.Allow("k", 0)
		assert.True(t, ok)
		assert.Zero(t, wait)
	}
}
