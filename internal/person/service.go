package person

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/executor"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
	"github.com/google/uuid"
)

const maxBatchSize = 1000

// Searcher runs template searches; *executor.Executor satisfies it.
type Searcher interface {
	Search(ctx context.Context, req executor.SearchRequest) ([]searcher.Result, error)
}

// BatchMessage is the Kafka payload announcing a queued batch.
type BatchMessage struct {
	BatchID string `json:"batchId"`
}

type Option func(*Service)

// WithBatches enables queued batch searches.
func WithBatches(jobs JobStore, queue kafka.Publisher) Option {
	return func(s *Service) {
		s.jobs = jobs
		s.queue = queue
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithDefaults supplies token values used when a request leaves the
// matching weight, tolerance or minimum unset.
func WithDefaults(tokens map[string]string) Option {
	return func(s *Service) { s.defaults = tokens }
}

// Service runs person searches against one query template.
type Service struct {
	searcher Searcher
	template string
	defaults map[string]string
	jobs     JobStore
	queue    kafka.Publisher
	retry    resilience.RetryConfig
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewService(s Searcher, template string, opts ...Option) *Service {
	svc := &Service{
		searcher: s,
		template: template,
		retry: resilience.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Retryable: func(err error) bool {
				return !errors.Is(err, context.Canceled)
			},
		},
		logger: slog.Default().With("component", "person-search"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Search runs one person search.
func (s *Service) Search(ctx context.Context, req Request) ([]searcher.Result, error) {
	fields, err := req.Fields()
	if err != nil {
		return nil, err
	}
	return s.searcher.Search(ctx, executor.SearchRequest{
		Template: s.template,
		Fields:   fields,
		Tokens:   s.tokens(req),
		TopN:     req.TopResultCount,
		Explain:  req.Explain,
	})
}

func (s *Service) tokens(req Request) map[string]string {
	tokens := req.Tokens()
	for name, v := range s.defaults {
		if _, set := tokens[name]; !set {
			tokens[name] = v
		}
	}
	return tokens
}

// QueueBatch stores requests as a new job and announces it on Kafka. It
// returns the job ID.
func (s *Service) QueueBatch(ctx context.Context, requests []Request) (string, error) {
	if s.jobs == nil || s.queue == nil {
		return "", apperrors.New(apperrors.ErrServiceUnavailable, http.StatusServiceUnavailable,
			"batch person search is not enabled")
	}
	switch {
	case len(requests) == 0:
		return "", apperrors.New(apperrors.ErrInvalidInput, http.StatusBadRequest, "personSearches must not be empty")
	case len(requests) > maxBatchSize:
		return "", apperrors.Newf(apperrors.ErrInvalidInput, http.StatusBadRequest,
			"at most %d person searches are allowed per batch", maxBatchSize)
	}
	for i, r := range requests {
		if _, err := normalizeBirthDate(r.BirthDate); err != nil {
			return "", fmt.Errorf("personSearches[%d]: %w", i, err)
		}
	}

	id := uuid.NewString()
	if err := s.jobs.Create(ctx, id, requests); err != nil {
		return "", err
	}
	event := kafka.Event{Key: id, Value: BatchMessage{BatchID: id}}
	err := resilience.Retry(ctx, "publish-person-batch", s.retry, func() error {
		return s.queue.Publish(ctx, event)
	})
	if err != nil {
		if failErr := s.jobs.Fail(context.WithoutCancel(ctx), id, "could not be queued: "+err.Error()); failErr != nil {
			s.logger.Error("marking unqueued batch failed", "batch_id", id, "error", failErr)
		}
		s.countJob(StatusFailed)
		return "", fmt.Errorf("queueing batch %s: %w", id, err)
	}
	logger.FromContext(ctx).Info("person batch queued", "batch_id", id, "searches", len(requests))
	return id, nil
}

// BatchStatus returns the job with its results once it has run.
func (s *Service) BatchStatus(ctx context.Context, id string) (*Job, error) {
	if s.jobs == nil {
		return nil, apperrors.New(apperrors.ErrServiceUnavailable, http.StatusServiceUnavailable,
			"batch person search is not enabled")
	}
	return s.jobs.Get(ctx, id)
}

// RunBatch runs every search of job. A failing search is recorded on its
// item and does not stop the rest.
func (s *Service) RunBatch(ctx context.Context, job *Job) []ItemResult {
	results := make([]ItemResult, len(job.Requests))
	for i, req := range job.Requests {
		item := ItemResult{Position: i, Results: []searcher.Result{}}
		found, err := s.Search(ctx, req)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Results = found
		}
		results[i] = item
	}
	return results
}

func (s *Service) countJob(status string) {
	if s.metrics != nil {
		s.metrics.BatchJobsTotal.WithLabelValues(status).Inc()
	}
}
