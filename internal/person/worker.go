package person

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
)

// Worker runs batches announced on the person-search-batch topic.
type Worker struct {
	service *Service
	logger  *slog.Logger
}

func NewWorker(service *Service) *Worker {
	return &Worker{
		service: service,
		logger:  slog.Default().With("component", "person-batch-worker"),
	}
}

// HandleMessage returns the Kafka handler for batch announcements. Jobs that
// are missing or already finished are skipped; store failures are returned
// so the message is retried.
func (w *Worker) HandleMessage() kafka.MessageHandler {
	return func(ctx context.Context, key []byte, value []byte) error {
		msg, err := kafka.DecodeJSON[BatchMessage](value)
		if err != nil || msg.BatchID == "" {
			w.logger.Error("skipping undecodable batch message", "key", string(key), "error", err)
			return nil
		}
		return w.Run(ctx, msg.BatchID)
	}
}

// Run executes the job with id and records its outcome.
func (w *Worker) Run(ctx context.Context, id string) error {
	log := w.logger.With("batch_id", id)
	job, err := w.service.jobs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			log.Warn("batch job not found")
			return nil
		}
		return err
	}
	if job.Status != StatusQueued {
		log.Info("batch job already finished", "status", job.Status)
		return nil
	}

	results := w.service.RunBatch(ctx, job)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := w.service.jobs.Complete(ctx, id, results); err != nil {
		return err
	}
	w.service.countJob(StatusCompleted)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	log.Info("batch job completed", "searches", len(results), "failed_searches", failed)
	return nil
}
