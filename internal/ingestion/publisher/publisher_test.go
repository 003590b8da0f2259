package publisher

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyProducer struct {
	mu       sync.Mutex
	failures int
	events   []kafka.Event
}

func (p *flakyProducer) Publish(_ context.Context, event kafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failures > 0 {
		p.failures--
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, event)
	return nil
}

func (p *flakyProducer) PublishBatch(ctx context.Context, events []kafka.Event) error {
	for _, e := range events {
		if err := p.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *flakyProducer) Close() error { return nil }

func TestEnqueueRetriesAndKeysByIndex(t *testing.T) {
	producer := &flakyProducer{failures: 1}
	pub := New(producer)

	id, err := pub.Enqueue(context.Background(), ingestion.IndexRequest{IndexName: "People"}, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "req-1", id)

	require.Len(t, producer.events, 1)
	assert.Equal(t, "people", producer.events[0].Key)
	msg := producer.events[0].Value.(ingestion.IndexMessage)
	assert.Equal(t, "req-1", msg.RequestID)
	assert.Equal(t, "People", msg.Request.IndexName)
	assert.False(t, msg.EnqueuedAt.IsZero())
}

func TestEnqueueMintsIDAndGivesUp(t *testing.T) {
	producer := &flakyProducer{}
	id, err := New(producer).Enqueue(context.Background(), ingestion.IndexRequest{IndexName: "People"}, "")
	require.NoError(t, err)
	assert.Len(t, id, 36)

	producer.failures = 10
	_, err = New(producer).Enqueue(context.Background(), ingestion.IndexRequest{IndexName: "People"}, "")
	assert.ErrorContains(t, err, "broker unavailable")
}
