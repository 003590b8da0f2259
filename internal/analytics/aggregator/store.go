// Package aggregator persists periodic snapshots of the analytics
// statistics to PostgreSQL.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/postgres"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
)

const finalSaveTimeout = 5 * time.Second

// Store reads and writes the search_stats_snapshots table.
type Store struct {
	db      *postgres.Client
	breaker *resilience.CircuitBreaker
	logger  *slog.Logger
}

var _ analytics.SnapshotLister = (*Store)(nil)

func NewStore(db *postgres.Client, breaker *resilience.CircuitBreaker) *Store {
	return &Store{
		db:      db,
		breaker: breaker,
		logger:  slog.Default().With("component", "analytics-store"),
	}
}

func (s *Store) Save(ctx context.Context, stats analytics.AggregatedStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	err = s.breaker.Execute(ctx, func() error {
		_, err := s.db.DB.ExecContext(ctx,
			`INSERT INTO search_stats_snapshots (stats, taken_at) VALUES ($1, $2)`, data, time.Now().UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("saving analytics snapshot: %w", err)
	}
	return nil
}

// Latest loads the newest snapshot, or nil when there is none.
func (s *Store) Latest(ctx context.Context) (*analytics.Snapshot, error) {
	snaps, err := s.ListSnapshots(ctx, 1)
	if err != nil || len(snaps) == 0 {
		return nil, err
	}
	return &snaps[0], nil
}

// ListSnapshots returns up to limit snapshots, newest first. Rows that no
// longer decode are skipped.
func (s *Store) ListSnapshots(ctx context.Context, limit int) ([]analytics.Snapshot, error) {
	var snaps []analytics.Snapshot
	err := s.breaker.Execute(ctx, func() error {
		snaps = snaps[:0]
		rows, err := s.db.DB.QueryContext(ctx,
			`SELECT taken_at, stats FROM search_stats_snapshots ORDER BY taken_at DESC LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				snap analytics.Snapshot
				data []byte
			)
			if err := rows.Scan(&snap.TakenAt, &data); err != nil {
				return err
			}
			if err := json.Unmarshal(data, &snap.Stats); err != nil {
				s.logger.Warn("skipping undecodable snapshot", "taken_at", snap.TakenAt, "error", err)
				continue
			}
			snaps = append(snaps, snap)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return snaps, nil
}

// Run saves agg every interval until ctx ends, then saves once more. A tick
// on which no event arrived since the last save writes nothing.
func (s *Store) Run(ctx context.Context, agg *analytics.Aggregator, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.logger.Info("periodic snapshots started", "interval", interval)

	var saved analytics.AggregatedStats
	save := func(ctx context.Context) {
		stats := agg.Stats()
		if !changed(saved, stats) {
			return
		}
		if err := s.Save(ctx, stats); err != nil {
			s.logger.Error("snapshot failed", "error", err)
			return
		}
		saved = stats
		s.logger.Debug("snapshot saved", "total_searches", stats.TotalSearches, "total_docs_indexed", stats.TotalDocsIndexed)
	}
	for {
		select {
		case <-ticker.C:
			save(ctx)
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalSaveTimeout)
			save(final)
			cancel()
			return
		}
	}
}

func changed(prev, cur analytics.AggregatedStats) bool {
	return prev.TotalSearches != cur.TotalSearches ||
		prev.TotalBatchSearches != cur.TotalBatchSearches ||
		prev.TotalDocsIndexed != cur.TotalDocsIndexed ||
		prev.TotalDocsDeleted != cur.TotalDocsDeleted ||
		prev.FailedSearches != cur.FailedSearches
}
