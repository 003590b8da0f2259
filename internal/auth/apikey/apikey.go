// Package apikey manages the API keys that guard the search endpoints.
// Only the SHA-256 of a key is stored; the raw key is shown once, when the
// namesearch CLI creates it.
package apikey

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/postgres"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	ErrInvalidKey = errors.New("invalid api key")
	ErrExpiredKey = errors.New("api key expired")
)

// KeyPrefix marks raw keys so they are recognisable in logs and configs.
const KeyPrefix = "ns_"

const keyCacheSize = 1024

type KeyInfo struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	RateLimit int        `json:"rateLimit"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the key's expiry lies before now.
func (k KeyInfo) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}

type Option func(*Validator)

// WithCacheTTL keeps validated keys in memory for ttl, so a search request
// does not cost a postgres round trip. A revoked key stays usable on other
// instances for up to ttl. Zero disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(v *Validator) { v.ttl = ttl }
}

// Validator checks keys against the api_keys table.
type Validator struct {
	db     *postgres.Client
	lookup func(ctx context.Context, hash string) (*KeyInfo, error)
	ttl    time.Duration
	cache  *expirable.LRU[string, KeyInfo]
	logger *slog.Logger
}

func NewValidator(db *postgres.Client, opts ...Option) *Validator {
	v := &Validator{
		db:     db,
		logger: slog.Default().With("component", "apikey-validator"),
	}
	v.lookup = v.queryActive
	for _, opt := range opts {
		opt(v)
	}
	if v.ttl > 0 {
		v.cache = expirable.NewLRU[string, KeyInfo](keyCacheSize, nil, v.ttl)
	}
	return v
}

// Validate resolves a raw key. Unknown and revoked keys give ErrInvalidKey,
// keys past their expiry ErrExpiredKey. Only accepted keys are cached.
func (v *Validator) Validate(ctx context.Context, rawKey string) (*KeyInfo, error) {
	if !strings.HasPrefix(rawKey, KeyPrefix) {
		return nil, ErrInvalidKey
	}
	hash := HashKey(rawKey)

	if v.cache != nil {
		if info, ok := v.cache.Get(hash); ok {
			return checkExpiry(info)
		}
	}
	info, err := v.lookup(ctx, hash)
	if err != nil {
		return nil, err
	}
	if _, err := checkExpiry(*info); err != nil {
		return nil, err
	}
	if v.cache != nil {
		v.cache.Add(hash, *info)
	}
	return info, nil
}

func checkExpiry(info KeyInfo) (*KeyInfo, error) {
	if info.Expired(time.Now()) {
		return nil, ErrExpiredKey
	}
	return &info, nil
}

func (v *Validator) queryActive(ctx context.Context, hash string) (*KeyInfo, error) {
	var (
		info      KeyInfo
		expiresAt sql.NullTime
	)
	err := v.db.DB.QueryRowContext(ctx,
		`SELECT id, name, rate_limit, is_active, created_at, expires_at
		 FROM api_keys WHERE key_hash = $1 AND is_active`,
		hash,
	).Scan(&info.ID, &info.Name, &info.RateLimit, &info.IsActive, &info.CreatedAt, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrInvalidKey
	case err != nil:
		return nil, fmt.Errorf("querying api key: %w", err)
	}
	if expiresAt.Valid {
		info.ExpiresAt = &expiresAt.Time
	}
	return &info, nil
}

// CreateKey stores a new key and returns it raw. It cannot be recovered
// later.
func (v *Validator) CreateKey(ctx context.Context, name string, rateLimit int, expiresAt *time.Time) (string, error) {
	rawKey := KeyPrefix + rand.Text()
	_, err := v.db.DB.ExecContext(ctx,
		`INSERT INTO api_keys (key_hash, name, rate_limit, expires_at) VALUES ($1, $2, $3, $4)`,
		HashKey(rawKey), name, rateLimit, expiresAt,
	)
	if err != nil {
		return "", fmt.Errorf("creating api key %q: %w", name, err)
	}
	v.logger.Info("api key created", "name", name, "rate_limit", rateLimit)
	return rawKey, nil
}

// RevokeKey deactivates rawKey and drops it from this process's cache.
func (v *Validator) RevokeKey(ctx context.Context, rawKey string) error {
	hash := HashKey(rawKey)
	result, err := v.db.DB.ExecContext(ctx,
		`UPDATE api_keys SET is_active = false WHERE key_hash = $1 AND is_active`, hash)
	if err != nil {
		return fmt.Errorf("revoking api key: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrInvalidKey
	}
	v.forget(hash)
	v.logger.Info("api key revoked")
	return nil
}

func (v *Validator) forget(hash string) {
	if v.cache != nil {
		v.cache.Remove(hash)
	}
}

// ListKeys returns the active keys, newest first.
func (v *Validator) ListKeys(ctx context.Context) ([]KeyInfo, error) {
	rows, err := v.db.DB.QueryContext(ctx,
		`SELECT id, name, rate_limit, is_active, created_at, expires_at
		 FROM api_keys WHERE is_active ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing api keys: %w", err)
	}
	defer rows.Close()

	var keys []KeyInfo
	for rows.Next() {
		var (
			k         KeyInfo
			expiresAt sql.NullTime
		)
		if err := rows.Scan(&k.ID, &k.Name, &k.RateLimit, &k.IsActive, &k.CreatedAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("scanning api key row: %w", err)
		}
		if expiresAt.Valid {
			k.ExpiresAt = &expiresAt.Time
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// HashKey returns the hex SHA-256 of a raw key.
func HashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
