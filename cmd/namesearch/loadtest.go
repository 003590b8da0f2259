package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/person"
	"github.com/spf13/cobra"
)

// sampleNames are sent round robin, deliberately misspelled in places so
// fuzzy and phonetic clauses do work.
var sampleNames = []person.Request{
	{FirstName: "Fred", LastName: "Flintstone"},
	{FirstName: "Wilma", LastName: "Flintstan"},
	{FirstName: "Barney", LastName: "Rubble"},
	{FirstName: "Betty", LastName: "Rubel"},
	{FirstName: "Catherine", LastName: "Smith"},
	{FirstName: "Kathryn", LastName: "Schmidt"},
	{FirstName: "Bill", MiddleName: "Henry", LastName: "Johnson"},
	{FirstName: "William", LastName: "Jonson", BirthDate: "1970-01-02"},
}

type loadStats struct {
	total     atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64

	mu        sync.Mutex
	latencies []time.Duration
	statuses  map[int]int64
}

func newLoadStats() *loadStats {
	return &loadStats{
		latencies: make([]time.Duration, 0, 1<<14),
		statuses:  make(map[int]int64),
	}
}

// record counts a request as succeeded only when the body reports success.
func (s *loadStats) record(d time.Duration, status int, ok bool, err error) {
	s.total.Add(1)
	if err != nil {
		s.failed.Add(1)
		return
	}
	if ok {
		s.succeeded.Add(1)
	} else {
		s.failed.Add(1)
	}
	s.mu.Lock()
	s.latencies = append(s.latencies, d)
	s.statuses[status]++
	s.mu.Unlock()
}

func newLoadTestCmd() *cobra.Command {
	var (
		baseURL     string
		apiKey      string
		concurrency int
		duration    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Send person searches to a running searcher and report latency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "target %s, %d workers for %s\n", baseURL, concurrency, duration)

			ctx, cancel := context.WithTimeout(cmd.Context(), duration)
			defer cancel()
			stats := runLoad(ctx, strings.TrimRight(baseURL, "/"), apiKey, concurrency)
			printLoadReport(out, stats, duration)
			if stats.total.Load() == 0 {
				return fmt.Errorf("no requests completed; is the searcher running at %s?", baseURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the searcher")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key sent as X-API-Key")
	cmd.Flags().IntVar(&concurrency, "concurrency", 10, "concurrent workers")
	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "test duration")
	return cmd
}

func runLoad(ctx context.Context, baseURL, apiKey string, concurrency int) *loadStats {
	stats := newLoadStats()
	client := &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        concurrency * 2,
			MaxIdleConnsPerHost: concurrency * 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	bodies := make([][]byte, len(sampleNames))
	for i, r := range sampleNames {
		r.TopResultCount = 10
		bodies[i], _ = json.Marshal(r)
	}

	var wg sync.WaitGroup
	for w := range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := w; ctx.Err() == nil; i++ {
				req, err := http.NewRequestWithContext(ctx, http.MethodPost,
					baseURL+"/personsearch/search", bytes.NewReader(bodies[i%len(bodies)]))
				if err != nil {
					stats.record(0, 0, false, err)
					return
				}
				req.Header.Set("Content-Type", "application/json")
				if apiKey != "" {
					req.Header.Set("X-API-Key", apiKey)
				}

				start := time.Now()
				resp, err := client.Do(req)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					stats.record(time.Since(start), 0, false, err)
					continue
				}
				var body struct {
					Success bool `json:"success"`
				}
				decodeErr := json.NewDecoder(resp.Body).Decode(&body)
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				stats.record(time.Since(start), resp.StatusCode, decodeErr == nil && body.Success, nil)
			}
		}()
	}
	wg.Wait()
	return stats
}

func printLoadReport(w io.Writer, stats *loadStats, duration time.Duration) {
	total := stats.total.Load()
	fmt.Fprintf(w, "requests:   %d\n", total)
	fmt.Fprintf(w, "succeeded:  %d\n", stats.succeeded.Load())
	fmt.Fprintf(w, "failed:     %d\n", stats.failed.Load())
	if total > 0 {
		fmt.Fprintf(w, "req/sec:    %.2f\n", float64(total)/duration.Seconds())
	}

	stats.mu.Lock()
	latencies := slices.Clone(stats.latencies)
	statuses := maps.Clone(stats.statuses)
	stats.mu.Unlock()

	if len(latencies) > 0 {
		slices.Sort(latencies)
		fmt.Fprintf(w, "latency:    min %s  p50 %s  p95 %s  p99 %s  max %s\n",
			latencies[0],
			percentile(latencies, 50),
			percentile(latencies, 95),
			percentile(latencies, 99),
			latencies[len(latencies)-1],
		)
	}
	for _, code := range slices.Sorted(maps.Keys(statuses)) {
		fmt.Fprintf(w, "status %d:  %d\n", code, statuses[code])
	}
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	return sorted[min(max(idx, 0), len(sorted)-1)]
}
