// Package postgres opens the lib/pq connection pool and owns the schema for
// API keys, batch person-search jobs and analytics snapshots.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

// migrationLock serialises Migrate across processes sharing a database.
const migrationLock = 0x6e73_6d69

type Client struct {
	DB *sql.DB
}

// New opens the pool and waits for the server to answer, retrying while it
// starts up.
func New(ctx context.Context, cfg config.PostgresConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	err = resilience.Retry(ctx, "postgres-connect", resilience.RetryConfig{MaxAttempts: 5, InitialDelay: 500 * time.Millisecond}, func() error {
		return resilience.WithTimeout(ctx, pingTimeout, "postgres ping", db.PingContext)
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &Client{DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// migrations are applied in order and recorded in schema_migrations; a
// migration's index is its version, so entries are only ever appended.
var migrations = []string{
	`CREATE TABLE api_keys (
		id          BIGSERIAL PRIMARY KEY,
		key_hash    TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		rate_limit  INTEGER NOT NULL DEFAULT 600,
		is_active   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at  TIMESTAMPTZ
	)`,
	`CREATE TABLE person_batch_jobs (
		id           TEXT PRIMARY KEY,
		status       TEXT NOT NULL,
		total        INTEGER NOT NULL,
		request      JSONB NOT NULL,
		response     JSONB,
		error        TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE search_stats_snapshots (
		id         BIGSERIAL PRIMARY KEY,
		taken_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		stats      JSONB NOT NULL
	)`,
	`CREATE INDEX search_stats_snapshots_taken_at ON search_stats_snapshots (taken_at DESC)`,
}

// Migrate brings the schema up to date. Concurrent callers wait on an
// advisory lock, so the searcher and analytics services can start together.
func (c *Client) Migrate(ctx context.Context) error {
	return c.InTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLock); err != nil {
			return fmt.Errorf("taking migration lock: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
			return fmt.Errorf("creating schema_migrations: %w", err)
		}
		var current int
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
		for v := current + 1; v <= len(migrations); v++ {
			if _, err := tx.ExecContext(ctx, migrations[v-1]); err != nil {
				return fmt.Errorf("applying migration %d: %w", v, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, v); err != nil {
				return fmt.Errorf("recording migration %d: %w", v, err)
			}
		}
		if current < len(migrations) {
			slog.Info("postgres schema migrated", "from", current, "to", len(migrations))
		}
		return nil
	})
}

// InTx runs fn in a transaction, committing when it returns nil.
func (c *Client) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
