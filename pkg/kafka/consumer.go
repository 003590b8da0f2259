// Package kafka wraps segmentio/kafka-go for the three topics the services
// share: queued index requests, person search batches and analytics events.
// Values travel as JSON.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/resilience"
	"github.com/segmentio/kafka-go"
)

const fetchBackoff = time.Second

// MessageHandler processes one message. Handlers return nil for messages
// that can never succeed; an error means "try again".
type MessageHandler func(ctx context.Context, key []byte, value []byte) error

type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader  reader
	handler MessageHandler
	retry   resilience.RetryConfig
	logger  *slog.Logger
}

type ConsumerOption func(*Consumer)

// WithRetry replaces the backoff used when a handler fails.
func WithRetry(cfg resilience.RetryConfig) ConsumerOption {
	return func(c *Consumer) { c.retry = cfg }
}

// NewConsumer joins the group "<consumerGroup>-<topic>", so one configured
// group can follow several topics.
func NewConsumer(cfg config.KafkaConfig, topic string, handler MessageHandler, opts ...ConsumerOption) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       topic,
		GroupID:     cfg.ConsumerGroup + "-" + topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	return newConsumer(r, topic, handler, opts...)
}

func newConsumer(r reader, topic string, handler MessageHandler, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		reader:  r,
		handler: handler,
		retry: resilience.RetryConfig{
			MaxAttempts:  5,
			InitialDelay: 250 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Retryable: func(err error) bool {
				return !errors.Is(err, context.Canceled)
			},
		},
		logger: slog.Default().With("component", "kafka-consumer", "topic", topic),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start consumes until ctx is cancelled. A failing message is retried with
// backoff; once the attempts run out it is logged and committed so it cannot
// stall the partition. On shutdown the in-flight message stays uncommitted
// and is redelivered.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("consumer stopping", "reason", ctx.Err())
				return nil
			}
			c.logger.Error("failed to fetch message", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchBackoff):
			}
			continue
		}
		if !c.process(ctx, msg) {
			return nil
		}
	}
}

// process reports false when ctx ended before msg was settled.
func (c *Consumer) process(ctx context.Context, msg kafka.Message) bool {
	log := c.logger.With("partition", msg.Partition, "offset", msg.Offset)
	log.Debug("message received", "key", string(msg.Key), "value_size", len(msg.Value))

	err := resilience.Retry(ctx, "consume "+msg.Topic, c.retry, func() error {
		return c.handler(ctx, msg.Key, msg.Value)
	})
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		log.Error("dropping message after failed attempts", "key", string(msg.Key), "error", err)
	}
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		log.Error("failed to commit message", "error", err)
	}
	return true
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

// DecodeJSON unmarshals a message value into T.
func DecodeJSON[T any](value []byte) (T, error) {
	var result T
	if err := json.Unmarshal(value, &result); err != nil {
		return result, fmt.Errorf("decoding kafka message: %w", err)
	}
	return result, nil
}
