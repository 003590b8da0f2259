package person

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/postgres"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
)

// Job statuses.
const (
	StatusQueued    = "QUEUED"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// ItemResult is the outcome of one search of a batch, at the position the
// request had in the batch.
type ItemResult struct {
	Position int               `json:"position"`
	Results  []searcher.Result `json:"results"`
	Error    string            `json:"error,omitempty"`
}

// Job is a queued batch of person searches.
type Job struct {
	ID          string
	Status      string
	Requests    []Request
	Results     []ItemResult
	Error       string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// JobStore persists batch jobs.
type JobStore interface {
	Create(ctx context.Context, id string, requests []Request) error
	Get(ctx context.Context, id string) (*Job, error)
	Complete(ctx context.Context, id string, results []ItemResult) error
	Fail(ctx context.Context, id string, reason string) error
}

// PostgresJobStore keeps jobs in the person_batch_jobs table created by
// postgres.Client.Migrate. Every statement runs through the breaker.
type PostgresJobStore struct {
	db      *postgres.Client
	breaker *resilience.CircuitBreaker
	logger  *slog.Logger
}

var _ JobStore = (*PostgresJobStore)(nil)

func NewPostgresJobStore(db *postgres.Client, breaker *resilience.CircuitBreaker) *PostgresJobStore {
	return &PostgresJobStore{
		db:      db,
		breaker: breaker,
		logger:  slog.Default().With("component", "person-job-store"),
	}
}

func (s *PostgresJobStore) Create(ctx context.Context, id string, requests []Request) error {
	data, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("marshaling batch request: %w", err)
	}
	err = s.breaker.Execute(ctx, func() error {
		_, err := s.db.DB.ExecContext(ctx,
			`INSERT INTO person_batch_jobs (id, status, total, request) VALUES ($1, $2, $3, $4)`,
			id, StatusQueued, len(requests), data,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("inserting batch job %s: %w", id, err)
	}
	return nil
}

func (s *PostgresJobStore) Get(ctx context.Context, id string) (*Job, error) {
	var (
		job       Job
		request   []byte
		response  []byte
		errText   sql.NullString
		completed sql.NullTime
		found     = true
	)
	err := s.breaker.Execute(ctx, func() error {
		err := s.db.DB.QueryRowContext(ctx,
			`SELECT id, status, request, response, error, created_at, completed_at
			 FROM person_batch_jobs WHERE id = $1`, id,
		).Scan(&job.ID, &job.Status, &request, &response, &errText, &job.CreatedAt, &completed)
		if errors.Is(err, sql.ErrNoRows) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("querying batch job %s: %w", id, err)
	}
	if !found {
		return nil, apperrors.Newf(apperrors.ErrDocumentNotFound, http.StatusNotFound, "batch %s was not found", id)
	}
	if err := json.Unmarshal(request, &job.Requests); err != nil {
		return nil, fmt.Errorf("decoding batch request %s: %w", id, err)
	}
	if len(response) > 0 {
		if err := json.Unmarshal(response, &job.Results); err != nil {
			return nil, fmt.Errorf("decoding batch response %s: %w", id, err)
		}
	}
	job.Error = errText.String
	if completed.Valid {
		job.CompletedAt = &completed.Time
	}
	return &job, nil
}

func (s *PostgresJobStore) Complete(ctx context.Context, id string, results []ItemResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling batch results: %w", err)
	}
	return s.finish(ctx, id, StatusCompleted, data, nil)
}

func (s *PostgresJobStore) Fail(ctx context.Context, id string, reason string) error {
	return s.finish(ctx, id, StatusFailed, nil, &reason)
}

func (s *PostgresJobStore) finish(ctx context.Context, id, status string, response []byte, reason *string) error {
	err := s.breaker.Execute(ctx, func() error {
		_, err := s.db.DB.ExecContext(ctx,
			`UPDATE person_batch_jobs
			 SET status = $2, response = $3, error = $4, completed_at = $5
			 WHERE id = $1`,
			id, status, response, reason, time.Now().UTC(),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("updating batch job %s: %w", id, err)
	}
	s.logger.Info("batch job finished", "batch_id", id, "status", status)
	return nil
}
