package apikey

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKeyIsStableHex(t *testing.T) {
	h := HashKey("ns_abc")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashKey("ns_abc"))
	assert.NotEqual(t, h, HashKey("ns_abd"))
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past, future := now.Add(-time.Hour), now.Add(time.Hour)
	assert.False(t, KeyInfo{}.Expired(now))
	assert.True(t, KeyInfo{ExpiresAt: &past}.Expired(now))
	assert.False(t, KeyInfo{ExpiresAt: &future}.Expired(now))
}

// stubbed returns a validator whose lookups are served from keys by hash.
func stubbed(ttl time.Duration, keys map[string]*KeyInfo) (*Validator, *int) {
	calls := 0
	v := NewValidator(nil, WithCacheTTL(ttl))
	v.lookup = func(_ context.Context, hash string) (*KeyInfo, error) {
		calls++
		if info, ok := keys[hash]; ok {
			copied := *info
			return &copied, nil
		}
		return nil, ErrInvalidKey
	}
	return v, &calls
}

func TestValidateCachesAcceptedKeys(t *testing.T) {
	raw := KeyPrefix + rand.Text()
	v, calls := stubbed(time.Minute, map[string]*KeyInfo{HashKey(raw): {Name: "loader", RateLimit: 50}})

	for range 3 {
		info, err := v.Validate(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "loader", info.Name)
	}
	assert.Equal(t, 1, *calls)

	v.forget(HashKey(raw))
	_, err := v.Validate(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
}

func TestValidateRejects(t *testing.T) {
	expired := time.Now().Add(-time.Minute)
	old := KeyPrefix + "old"
	v, calls := stubbed(time.Minute, map[string]*KeyInfo{HashKey(old): {Name: "old", ExpiresAt: &expired}})

	_, err := v.Validate(context.Background(), "not-a-key")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Equal(t, 0, *calls)

	_, err = v.Validate(context.Background(), KeyPrefix+"unknown")
	assert.ErrorIs(t, err, ErrInvalidKey)

	for range 2 {
		_, err = v.Validate(context.Background(), old)
		assert.ErrorIs(t, err, ErrExpiredKey)
	}
	assert.Equal(t, 3, *calls, "rejected keys are not cached")
}

func TestValidateWithoutCache(t *testing.T) {
	raw := KeyPrefix + "k"
	v, calls := stubbed(0, map[string]*KeyInfo{HashKey(raw): {Name: "k"}})
	for range 2 {
		_, err := v.Validate(context.Background(), raw)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, *calls)
}
