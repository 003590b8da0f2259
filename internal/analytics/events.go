// Package analytics collects search and indexing events, publishes them to
// Kafka and aggregates them into service-level statistics.
package analytics

import "time"

type EventType string

const (
	EventSearch      EventType = "search"
	EventBatchSearch EventType = "batch_search"
	EventIndex       EventType = "index"
	EventDelete      EventType = "delete"
)

// SearchEvent describes one template search.
type SearchEvent struct {
	Type      EventType `json:"type"`
	Template  string    `json:"template"`
	Index     string    `json:"index"`
	Fields    []string  `json:"fields"`
	Returned  int       `json:"returned"`
	LatencyMs int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// IndexEvent describes one write to an index.
type IndexEvent struct {
	Type      EventType `json:"type"`
	Index     string    `json:"index"`
	Documents int       `json:"documents"`
	Source    string    `json:"source"`
	LatencyMs int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// envelope peeks at the type of an encoded event.
type envelope struct {
	Type EventType `json:"type"`
}
