package analytics

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/kafka"
)

// maxLatencySamples bounds the latency window used for percentiles.
const maxLatencySamples = 10000

type AggregatedStats struct {
	TotalSearches       int64           `json:"total_searches"`
	TotalBatchSearches  int64           `json:"total_batch_searches"`
	FailedSearches      int64           `json:"failed_searches"`
	TotalDocsIndexed    int64           `json:"total_docs_indexed"`
	TotalDocsDeleted    int64           `json:"total_docs_deleted"`
	CacheHits           int64           `json:"cache_hits"`
	CacheMisses         int64           `json:"cache_misses"`
	ZeroResultCount     int64           `json:"zero_result_count"`
	AvgLatencyMs        float64         `json:"avg_latency_ms"`
	P50LatencyMs        int64           `json:"p50_latency_ms"`
	P95LatencyMs        int64           `json:"p95_latency_ms"`
	P99LatencyMs        int64           `json:"p99_latency_ms"`
	TopTemplates        []TemplateCount `json:"top_templates"`
	ZeroResultTemplates []TemplateCount `json:"zero_result_templates"`
	SearchesPerMinute   float64         `json:"searches_per_minute"`
	Since               time.Time       `json:"since"`
}

type TemplateCount struct {
	Template string `json:"template"`
	Count    int64  `json:"count"`
}

// Aggregator folds events into running statistics.
type Aggregator struct {
	mu                  sync.RWMutex
	totalSearches       atomic.Int64
	totalBatchSearches  atomic.Int64
	failedSearches      atomic.Int64
	totalDocsIndexed    atomic.Int64
	totalDocsDeleted    atomic.Int64
	cacheHits           atomic.Int64
	cacheMisses         atomic.Int64
	zeroResults         atomic.Int64
	latencies           []int64
	templateCounts      map[string]int64
	zeroResultTemplates map[string]int64
	startTime           time.Time

	logger *slog.Logger
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		latencies:           make([]int64, 0, 1024),
		templateCounts:      make(map[string]int64),
		zeroResultTemplates: make(map[string]int64),
		startTime:           time.Now(),
		logger:              slog.Default().With("component", "analytics-aggregator"),
	}
}

// HandleEvent returns a Kafka handler feeding agg. Undecodable messages
// are logged and acknowledged.
func HandleEvent(agg *Aggregator) kafka.MessageHandler {
	return func(ctx context.Context, key []byte, value []byte) error {
		var env envelope
		if err := json.Unmarshal(value, &env); err != nil {
			agg.logger.Error("failed to decode analytics event", "error", err)
			return nil
		}
		switch env.Type {
		case EventSearch, EventBatchSearch:
			event, err := kafka.DecodeJSON[SearchEvent](value)
			if err != nil {
				agg.logger.Error("failed to decode search event", "error", err)
				return nil
			}
			agg.RecordSearch(event)
		case EventIndex, EventDelete:
			event, err := kafka.DecodeJSON[IndexEvent](value)
			if err != nil {
				agg.logger.Error("failed to decode index event", "error", err)
				return nil
			}
			agg.RecordIndex(event)
		default:
			agg.logger.Warn("unknown analytics event type", "type", env.Type)
		}
		return nil
	}
}

func (a *Aggregator) RecordSearch(event SearchEvent) {
	a.totalSearches.Add(1)
	if event.Type == EventBatchSearch {
		a.totalBatchSearches.Add(1)
	}
	if event.Error != "" {
		a.failedSearches.Add(1)
		return
	}
	if event.CacheHit {
		a.cacheHits.Add(1)
	} else {
		a.cacheMisses.Add(1)
	}
	if event.Returned == 0 {
		a.zeroResults.Add(1)
	}

	a.mu.Lock()
	if len(a.latencies) == maxLatencySamples {
		a.latencies = a.latencies[1:]
	}
	a.latencies = append(a.latencies, event.LatencyMs)
	a.templateCounts[event.Template]++
	if event.Returned == 0 {
		a.zeroResultTemplates[event.Template]++
	}
	a.mu.Unlock()
}

func (a *Aggregator) RecordIndex(event IndexEvent) {
	if event.Type == EventDelete {
		a.totalDocsDeleted.Add(int64(event.Documents))
		return
	}
	a.totalDocsIndexed.Add(int64(event.Documents))
}

// Restore seeds the running totals from a persisted snapshot so restarts
// keep counting from where the last snapshot left off.
func (a *Aggregator) Restore(s AggregatedStats) {
	a.totalSearches.Add(s.TotalSearches)
	a.totalBatchSearches.Add(s.TotalBatchSearches)
	a.failedSearches.Add(s.FailedSearches)
	a.totalDocsIndexed.Add(s.TotalDocsIndexed)
	a.totalDocsDeleted.Add(s.TotalDocsDeleted)
	a.cacheHits.Add(s.CacheHits)
	a.cacheMisses.Add(s.CacheMisses)
	a.zeroResults.Add(s.ZeroResultCount)

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, t := range s.TopTemplates {
		a.templateCounts[t.Template] += t.Count
	}
	for _, t := range s.ZeroResultTemplates {
		a.zeroResultTemplates[t.Template] += t.Count
	}
	if !s.Since.IsZero() && s.Since.Before(a.startTime) {
		a.startTime = s.Since
	}
}

func (a *Aggregator) Stats() AggregatedStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := AggregatedStats{
		TotalSearches:      a.totalSearches.Load(),
		TotalBatchSearches: a.totalBatchSearches.Load(),
		FailedSearches:     a.failedSearches.Load(),
		TotalDocsIndexed:   a.totalDocsIndexed.Load(),
		TotalDocsDeleted:   a.totalDocsDeleted.Load(),
		CacheHits:          a.cacheHits.Load(),
		CacheMisses:        a.cacheMisses.Load(),
		ZeroResultCount:    a.zeroResults.Load(),
		Since:              a.startTime,
	}
	if len(a.latencies) > 0 {
		sorted := slices.Clone(a.latencies)
		slices.Sort(sorted)

		var sum int64
		for _, l := range sorted {
			sum += l
		}
		stats.AvgLatencyMs = float64(sum) / float64(len(sorted))
		stats.P50LatencyMs = percentile(sorted, 50)
		stats.P95LatencyMs = percentile(sorted, 95)
		stats.P99LatencyMs = percentile(sorted, 99)
	}
	stats.TopTemplates = topN(a.templateCounts, 10)
	stats.ZeroResultTemplates = topN(a.zeroResultTemplates, 10)
	elapsed := time.Since(a.startTime).Minutes()
	if elapsed > 0 {
		stats.SearchesPerMinute = float64(stats.TotalSearches) / elapsed
	}
	return stats
}

func percentile(sorted []int64, pct int) int64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (pct * len(sorted)) / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func topN(counts map[string]int64, n int) []TemplateCount {
	result := make([]TemplateCount, 0, len(counts))
	for template, count := range counts {
		result = append(result, TemplateCount{Template: template, Count: count})
	}
	slices.SortFunc(result, func(a, b TemplateCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Template, b.Template)
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}
