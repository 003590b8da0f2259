// Package consumer applies index requests queued on Kafka to the local
// indexes.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion/validator"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
)

// Indexer upserts documents into a named index; the search executor
// satisfies it.
type Indexer interface {
	Index(ctx context.Context, index, idField string, docs []store.Document, source string) error
}

// IndexConsumer wraps a Kafka consumer to drive the indexing pipeline.
type IndexConsumer struct {
	consumer *kafka.Consumer
	logger   *slog.Logger
}

func New(kafkaConsumer *kafka.Consumer) *IndexConsumer {
	return &IndexConsumer{
		consumer: kafkaConsumer,
		logger:   slog.Default().With("component", "index-consumer"),
	}
}

// Start begins consuming Kafka messages. It blocks until ctx is cancelled.
func (ic *IndexConsumer) Start(ctx context.Context) error {
	ic.logger.Info("index consumer starting")
	return ic.consumer.Start(ctx)
}

func (ic *IndexConsumer) Close() error {
	return ic.consumer.Close()
}

// HandleMessage returns a Kafka MessageHandler that applies each queued
// index request. Messages that can never succeed (undecodable, invalid, or
// with values that do not convert) are logged and skipped; store failures
// are returned so the message stays uncommitted.
func HandleMessage(indexer Indexer) kafka.MessageHandler {
	log := slog.Default().With("component", "index-consumer")
	return func(ctx context.Context, key []byte, value []byte) error {
		msg, err := kafka.DecodeJSON[ingestion.IndexMessage](value)
		if err != nil {
			log.Error("failed to decode index request", "error", err, "key", string(key))
			return nil
		}
		ctx = logger.WithRequestID(ctx, msg.RequestID)
		reqLog := logger.FromContext(ctx).With("component", "index-consumer", "index", msg.Request.IndexName)

		if err := validator.ValidateIndexRequest(&msg.Request); err != nil {
			reqLog.Error("skipping invalid index request", "error", err)
			return nil
		}
		docs, err := msg.Request.Documents()
		if err != nil {
			reqLog.Error("skipping index request with bad field types", "error", err)
			return nil
		}

		err = indexer.Index(ctx, msg.Request.IndexName, msg.Request.IDFieldName, docs, "kafka")
		switch {
		case err == nil:
		case isPermanent(err):
			reqLog.Error("skipping index request that cannot be applied", "error", err)
			return nil
		default:
			return fmt.Errorf("indexing %d records into %s: %w", len(docs), msg.Request.IndexName, err)
		}

		reqLog.Info("index request applied",
			"records", len(docs),
			"enqueued_at", msg.EnqueuedAt,
		)
		return nil
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, apperrors.ErrFieldConversion) ||
		errors.Is(err, apperrors.ErrInvalidInput) ||
		errors.Is(err, apperrors.ErrMissingParameter)
}
