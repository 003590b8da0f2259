// Package executor runs named query templates against the searcher factory:
// template lookup, token substitution, query building, result caching and
// search accounting.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analytics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/cache"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/templates"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/tracing"
	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/errgroup"
)

const (
	treeCacheCounters    = 1e5
	treeCacheBufferItems = 64
	defaultTreeCacheCost = 1 << 20
)

// SearchRequest runs the template named Template. Index overrides the
// template's target index when set.
type SearchRequest struct {
	Template string
	Index    string
	Fields   map[string]string
	Tokens   map[string]string
	TopN     int
	Explain  bool
}

// BatchEntry is one search of a batch; it shares the template and tokens of
// its batch.
type BatchEntry struct {
	ReferenceID string
	Fields      map[string]string
}

type BatchSearchRequest struct {
	ReferenceID string
	Template    string
	Index       string
	Tokens      map[string]string
	TopN        int
	Explain     bool
	Entries     []BatchEntry
}

type BatchResult struct {
	ReferenceID string
	Results     []searcher.Result
}

// AdhocRequest runs query XML that is not registered as a template.
type AdhocRequest struct {
	Index   string
	Query   string
	Fields  map[string]string
	Tokens  map[string]string
	TopN    int
	Explain bool
}

type Option func(*Executor)

// WithCache routes searches through a result cache.
func WithCache(c *cache.QueryCache) Option {
	return func(e *Executor) { e.cache = c }
}

// WithTracker reports search and index events.
func WithTracker(t analytics.Tracker) Option {
	return func(e *Executor) { e.tracker = t }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Executor) { e.metrics = m }
}

// Executor is safe for concurrent use.
type Executor struct {
	factory     *searcher.Factory
	templates   *templates.Store
	interpreter *parser.Interpreter
	trees       *ristretto.Cache
	cache       *cache.QueryCache
	tracker     analytics.Tracker
	metrics     *metrics.Metrics
	cfg         config.SearchConfig
	logger      *slog.Logger
}

func New(
	factory *searcher.Factory,
	store *templates.Store,
	interpreter *parser.Interpreter,
	cfg config.SearchConfig,
	opts ...Option,
) (*Executor, error) {
	maxCost := cfg.TemplateCacheSize
	if maxCost <= 0 {
		maxCost = defaultTreeCacheCost
	}
	trees, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: treeCacheCounters,
		MaxCost:     maxCost,
		BufferItems: treeCacheBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("creating query tree cache: %w", err)
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	e := &Executor{
		factory:     factory,
		templates:   store,
		interpreter: interpreter,
		trees:       trees,
		cfg:         cfg,
		logger:      slog.Default().With("component", "search-executor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Close releases the query tree cache. The factory is owned by the caller.
func (e *Executor) Close() {
	e.trees.Close()
}

// Templates lists the registered query templates.
func (e *Executor) Templates() []templates.Template {
	return e.templates.All()
}

// Search runs one template search.
func (e *Executor) Search(ctx context.Context, req SearchRequest) ([]searcher.Result, error) {
	start := time.Now()
	tmpl, err := e.template(req.Template)
	if err != nil {
		e.observe(ctx, analytics.EventSearch, req.Template, req.Index, req.Fields, nil, false, start, err)
		return nil, err
	}
	index := targetIndex(req.Index, tmpl)
	results, hit, err := e.run(ctx, index, tmpl.Name, tmpl.Query, req.Fields, req.Tokens, req.TopN, req.Explain)
	e.observe(ctx, analytics.EventSearch, tmpl.Name, index, req.Fields, results, hit, start, err)
	return results, err
}

// BatchSearch runs every entry of req with at most search.batchConcurrency
// searches in flight. Results keep the order of the entries; the first
// failing entry fails the batch.
func (e *Executor) BatchSearch(ctx context.Context, req BatchSearchRequest) ([]BatchResult, error) {
	start := time.Now()
	tmpl, err := e.template(req.Template)
	if err != nil {
		e.observe(ctx, analytics.EventBatchSearch, req.Template, req.Index, nil, nil, false, start, err)
		return nil, err
	}
	index := targetIndex(req.Index, tmpl)

	out := make([]BatchResult, len(req.Entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.BatchConcurrency)
	for i, entry := range req.Entries {
		g.Go(func() error {
			results, _, err := e.run(gctx, index, tmpl.Name, tmpl.Query, entry.Fields, req.Tokens, req.TopN, req.Explain)
			if err != nil {
				return err
			}
			out[i] = BatchResult{ReferenceID: entry.ReferenceID, Results: results}
			return nil
		})
	}
	err = g.Wait()

	var returned []searcher.Result
	for _, r := range out {
		returned = append(returned, r.Results...)
	}
	e.observe(ctx, analytics.EventBatchSearch, tmpl.Name, index, nil, returned, false, start, err)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("batch search completed",
		"reference_id", req.ReferenceID,
		"template", tmpl.Name,
		"entries", len(req.Entries),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// AdhocSearch runs req.Query against req.Index and reports how long the
// search took.
func (e *Executor) AdhocSearch(ctx context.Context, req AdhocRequest) ([]searcher.Result, time.Duration, error) {
	start := time.Now()
	if strings.TrimSpace(req.Index) == "" {
		return nil, 0, apperrors.New(apperrors.ErrMissingParameter, http.StatusBadRequest, "indexName is required")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, 0, apperrors.New(apperrors.ErrMissingParameter, http.StatusBadRequest, "queryXml is required")
	}
	results, _, err := e.run(ctx, req.Index, "", req.Query, req.Fields, req.Tokens, req.TopN, req.Explain)
	return results, time.Since(start), err
}

// run substitutes tokens, builds the query and searches a fresh context.
// The bool reports a result cache hit.
func (e *Executor) run(
	ctx context.Context,
	index, template, queryXML string,
	fields, tokens map[string]string,
	topN int,
	explain bool,
) ([]searcher.Result, bool, error) {
	if fields == nil {
		return nil, false, apperrors.New(apperrors.ErrInvalidInput, http.StatusBadRequest, "Search fields cannot be null")
	}
	topN = e.topN(topN)

	_, span := tracing.StartChildSpan(ctx, "parse")
	text := parser.ReplaceTokens(queryXML, tokens)
	tree, err := e.compile(text)
	if err != nil {
		span.End()
		return nil, false, err
	}
	q, err := e.interpreter.Build(tree, fields)
	span.End()
	if err != nil {
		return nil, false, err
	}

	sc, err := e.factory.CreateSearchContext(index)
	if err != nil {
		return nil, false, err
	}
	defer sc.Close()

	if q == nil {
		return []searcher.Result{}, false, nil
	}

	search := func() ([]searcher.Result, error) {
		sctx, span := tracing.StartChildSpan(ctx, "search")
		defer span.End()
		span.SetAttr("index", index)
		return sc.Search(sctx, q, topN, explain)
	}
	if e.cache == nil {
		results, err := search()
		return results, false, err
	}
	key := cache.Key{
		Index:      sc.IndexName(),
		Generation: sc.Generation(),
		Template:   template,
		Query:      text,
		Fields:     fields,
		Tokens:     tokens,
		TopN:       topN,
		Explain:    explain,
	}
	return e.cache.GetOrCompute(ctx, key, search)
}

// compile returns the decoded tree for text, reusing earlier decodes of the
// same substituted template.
func (e *Executor) compile(text string) (*parser.Tree, error) {
	if v, ok := e.trees.Get(text); ok {
		if tree, ok := v.(*parser.Tree); ok {
			return tree, nil
		}
	}
	tree, err := parser.Compile(text)
	if err != nil {
		return nil, err
	}
	e.trees.Set(text, tree, int64(len(text)))
	return tree, nil
}

func (e *Executor) template(name string) (templates.Template, error) {
	tmpl, ok := e.templates.Get(name)
	if !ok {
		return templates.Template{}, apperrors.Newf(apperrors.ErrTemplateNotFound, http.StatusNotFound,
			"Unable to find configuration for %s", name)
	}
	return tmpl, nil
}

func (e *Executor) topN(n int) int {
	if n <= 0 {
		n = e.cfg.DefaultTopResults
	}
	if n <= 0 {
		n = 10
	}
	if e.cfg.MaxTopResults > 0 && n > e.cfg.MaxTopResults {
		n = e.cfg.MaxTopResults
	}
	return n
}

func targetIndex(requested string, tmpl templates.Template) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return tmpl.TargetIndex
}

func (e *Executor) observe(
	ctx context.Context,
	kind analytics.EventType,
	template, index string,
	fields map[string]string,
	results []searcher.Result,
	cacheHit bool,
	start time.Time,
	err error,
) {
	latency := time.Since(start)
	outcome := "hit"
	switch {
	case err != nil:
		outcome = "error"
	case len(results) == 0:
		outcome = "zero_result"
	}
	if e.metrics != nil {
		e.metrics.SearchQueriesTotal.WithLabelValues(template, outcome).Inc()
		if err == nil {
			e.metrics.SearchLatency.WithLabelValues(e.cacheStatus(cacheHit)).Observe(latency.Seconds())
			e.metrics.SearchResultsCount.Observe(float64(len(results)))
		}
	}

	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn("search failed", "template", template, "index", index, "error", err)
	} else {
		log.Debug("search completed",
			"template", template,
			"index", index,
			"returned", len(results),
			"cache_hit", cacheHit,
			"latency_ms", latency.Milliseconds(),
		)
	}

	if e.tracker == nil {
		return
	}
	event := analytics.SearchEvent{
		Type:      kind,
		Template:  template,
		Index:     index,
		Fields:    fieldNames(fields),
		Returned:  len(results),
		LatencyMs: latency.Milliseconds(),
		CacheHit:  cacheHit,
		Timestamp: time.Now().UTC(),
		RequestID: logger.RequestID(ctx),
	}
	if err != nil {
		event.Error = err.Error()
	}
	e.tracker.Track(event)
}

func (e *Executor) cacheStatus(hit bool) string {
	switch {
	case e.cache == nil:
		return "disabled"
	case hit:
		return "hit"
	default:
		return "miss"
	}
}

func fieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name, v := range fields {
		if strings.TrimSpace(v) != "" {
			names = append(names, name)
		}
	}
	return names
}

// Index upserts docs into index, keyed by idField. Source names the caller
// in the index event ("api" or "kafka").
func (e *Executor) Index(ctx context.Context, index, idField string, docs []store.Document, source string) error {
	start := time.Now()
	err := e.withContext(index, func(sc *searcher.Context) error {
		return sc.CreateOrUpdateIndex(idField, docs)
	})
	if err != nil {
		return err
	}
	e.afterWrite(ctx, analytics.EventIndex, index, len(docs), source, start)
	return nil
}

// Delete removes the documents whose idField equals one of ids.
func (e *Executor) Delete(ctx context.Context, index, idField string, ids []string) error {
	if strings.TrimSpace(idField) == "" {
		return apperrors.New(apperrors.ErrMissingParameter, http.StatusBadRequest, "idFieldName is required")
	}
	start := time.Now()
	err := e.withContext(index, func(sc *searcher.Context) error {
		return sc.DeleteIndexes(ctx, idField, ids...)
	})
	if err != nil {
		return err
	}
	e.afterWrite(ctx, analytics.EventDelete, index, len(ids), "api", start)
	return nil
}

// Clear removes every document of index.
func (e *Executor) Clear(ctx context.Context, index string) error {
	start := time.Now()
	if err := e.withContext(index, (*searcher.Context).ClearIndexes); err != nil {
		return err
	}
	e.afterWrite(ctx, analytics.EventDelete, index, 0, "api", start)
	return nil
}

// Optimize merges index down to one segment.
func (e *Executor) Optimize(ctx context.Context, index string) error {
	return e.withContext(index, func(sc *searcher.Context) error {
		return sc.Optimize(ctx)
	})
}

// IndexSummary describes an index for management views.
type IndexSummary struct {
	Name           string
	DocumentCount  uint64
	FirstDocuments []searcher.Result
}

// Inspect reports the document count and the first n documents of index.
func (e *Executor) Inspect(index string, n int) (IndexSummary, error) {
	summary := IndexSummary{Name: index}
	err := e.withContext(index, func(sc *searcher.Context) error {
		count, err := sc.GetDocumentCount()
		if err != nil {
			return err
		}
		first, err := sc.GetFirstResults(n)
		if err != nil {
			return err
		}
		summary.DocumentCount = count
		summary.FirstDocuments = first
		return nil
	})
	return summary, err
}

func (e *Executor) withContext(index string, fn func(*searcher.Context) error) error {
	sc, err := e.factory.CreateSearchContext(index)
	if err != nil {
		return err
	}
	defer sc.Close()
	return fn(sc)
}

// afterWrite drops cached results of index and reports the write.
func (e *Executor) afterWrite(ctx context.Context, kind analytics.EventType, index string, docs int, source string, start time.Time) {
	if e.cache != nil {
		if err := e.cache.Invalidate(ctx, index); err != nil && !errors.Is(err, context.Canceled) {
			logger.FromContext(ctx).Warn("cache invalidation after write failed", "index", index, "error", err)
		}
	}
	if e.tracker != nil {
		e.tracker.Track(analytics.IndexEvent{
			Type:      kind,
			Index:     index,
			Documents: docs,
			Source:    source,
			LatencyMs: time.Since(start).Milliseconds(),
			Timestamp: time.Now().UTC(),
		})
	}
}
