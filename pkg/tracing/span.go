// Package tracing times the stages of a request. Spans travel in the
// context; when the root span ends the trace is logged as a single debug
// record listing every finished span.
package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
)

type spanKey struct{}

// Record is a finished span.
type Record struct {
	Name     string
	Parent   string
	Duration time.Duration
	Attrs    []slog.Attr
}

func (r Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", r.Name, r.Duration.Round(time.Microsecond))
	for _, a := range r.Attrs {
		fmt.Fprintf(&b, " %s", a)
	}
	return b.String()
}

type trace struct {
	mu       sync.Mutex
	finished []Record
}

// Span times one stage. A nil *Span ignores every call, so code can open
// spans without checking whether the request is sampled.
type Span struct {
	Name    string
	TraceID string

	start  time.Time
	parent *Span
	trace  *trace
	attrs  []slog.Attr
}

// Tracer decides which requests are traced.
type Tracer struct {
	enabled    bool
	sampleRate float64
}

// NewTracer builds a Tracer from config. A sample rate outside (0, 1] is
// treated as 1.
func NewTracer(cfg config.TracingConfig) *Tracer {
	rate := cfg.SampleRate
	if rate <= 0 || rate > 1 {
		rate = 1
	}
	return &Tracer{enabled: cfg.Enabled, sampleRate: rate}
}

// Start opens a root span when the request is sampled and returns ctx
// unchanged with a nil span otherwise.
func (t *Tracer) Start(ctx context.Context, name, traceID string) (context.Context, *Span) {
	if t == nil || !t.enabled {
		return ctx, nil
	}
	if t.sampleRate < 1 && rand.Float64() >= t.sampleRate {
		return ctx, nil
	}
	return StartSpan(ctx, name, traceID)
}

// StartSpan opens a root span regardless of sampling.
func StartSpan(ctx context.Context, name, traceID string) (context.Context, *Span) {
	s := &Span{Name: name, TraceID: traceID, start: time.Now(), trace: &trace{}}
	return context.WithValue(ctx, spanKey{}, s), s
}

// StartChildSpan opens a span under the one in ctx. Without a parent it
// returns ctx and a nil span.
func StartChildSpan(ctx context.Context, name string) (context.Context, *Span) {
	parent := SpanFromContext(ctx)
	if parent == nil {
		return ctx, nil
	}
	s := &Span{
		Name:    name,
		TraceID: parent.TraceID,
		start:   time.Now(),
		parent:  parent,
		trace:   parent.trace,
	}
	return context.WithValue(ctx, spanKey{}, s), s
}

func SpanFromContext(ctx context.Context) *Span {
	s, _ := ctx.Value(spanKey{}).(*Span)
	return s
}

// SetAttr must be called from the goroutine that owns the span.
func (s *Span) SetAttr(key string, value any) {
	if s == nil {
		return
	}
	s.attrs = append(s.attrs, slog.Any(key, value))
}

// End finishes the span. Ending the root logs the trace.
func (s *Span) End() {
	if s == nil {
		return
	}
	rec := Record{Name: s.Name, Duration: time.Since(s.start), Attrs: s.attrs}
	if s.parent != nil {
		rec.Parent = s.parent.Name
	}
	s.trace.mu.Lock()
	s.trace.finished = append(s.trace.finished, rec)
	s.trace.mu.Unlock()

	if s.parent == nil {
		s.log(rec.Duration)
	}
}

// Finished returns the spans of the trace that have ended so far, in the
// order they ended.
func (s *Span) Finished() []Record {
	if s == nil {
		return nil
	}
	s.trace.mu.Lock()
	defer s.trace.mu.Unlock()
	return append([]Record(nil), s.trace.finished...)
}

func (s *Span) log(d time.Duration) {
	ctx := context.Background()
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}
	finished := s.Finished()
	spans := make([]string, len(finished))
	for i, r := range finished {
		spans[i] = r.String()
	}
	slog.LogAttrs(ctx, slog.LevelDebug, "trace",
		slog.String("trace_id", s.TraceID),
		slog.String("root", s.Name),
		slog.Int64("duration_ms", d.Milliseconds()),
		slog.Any("spans", spans),
	)
}
