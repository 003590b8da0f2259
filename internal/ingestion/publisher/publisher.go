// Package publisher queues validated index requests on Kafka for the
// indexer consumer.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
	"github.com/google/uuid"
)

// Publisher sends index requests to the index-requests topic, keyed by
// index name so one index's requests stay ordered.
type Publisher struct {
	producer kafka.Publisher
	retry    resilience.RetryConfig
	logger   *slog.Logger
}

func New(producer kafka.Publisher) *Publisher {
	return &Publisher{
		producer: producer,
		retry: resilience.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Retryable: func(err error) bool {
				return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
			},
		},
		logger: slog.Default().With("component", "index-publisher"),
	}
}

// Enqueue publishes req and returns the ID it was queued under. requestID
// is reused when set.
func (p *Publisher) Enqueue(ctx context.Context, req ingestion.IndexRequest, requestID string) (string, error) {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	event := kafka.Event{
		Key: strings.ToLower(req.IndexName),
		Value: ingestion.IndexMessage{
			RequestID:  requestID,
			Request:    req,
			EnqueuedAt: time.Now().UTC(),
		},
	}
	err := resilience.Retry(ctx, "publish-index-request", p.retry, func() error {
		return p.producer.Publish(ctx, event)
	})
	if err != nil {
		return "", fmt.Errorf("enqueueing index request: %w", err)
	}
	p.logger.Info("index request enqueued",
		"request_id", requestID,
		"index", req.IndexName,
		"records", len(req.IndexRecords),
	)
	return requestID, nil
}
