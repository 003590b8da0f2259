// Package searcher exposes per-request search contexts over the
// near-real-time indexes owned by a Factory.
package searcher

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/nrt"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Result is one matched document. Fields holds stored fields only.
type Result struct {
	DocumentID  string            `json:"indexDocumentId"`
	Fields      map[string]string `json:"fields"`
	Score       float64           `json:"score"`
	Explanation string            `json:"explanation,omitempty"`
}

// Context is a unit of work against one index. It leases the published
// snapshot when created and releases it on Close, so every read made
// through it sees the same point-in-time view.
type Context struct {
	manager  *nrt.Manager
	snapshot *nrt.Snapshot
	logger   *slog.Logger
	closed   atomic.Bool
}

func newContext(m *nrt.Manager) (*Context, error) {
	s, err := m.Acquire()
	if err != nil {
		return nil, err
	}
	return &Context{
		manager:  m,
		snapshot: s,
		logger:   slog.Default().With("component", "searcher-context", "index", m.Name()),
	}, nil
}

// IndexName returns the name of the index this context reads.
func (c *Context) IndexName() string { return c.manager.Name() }

// Generation returns the generation of the leased snapshot.
func (c *Context) Generation() uint64 { return c.snapshot.Generation() }

// Search runs q against the leased snapshot and returns at most topN
// results by descending score. A nil query matches nothing.
func (c *Context) Search(ctx context.Context, q query.Query, topN int, explain bool) ([]Result, error) {
	hits, err := c.snapshot.Reader().Search(ctx, q, topN, explain)
	if err != nil {
		return nil, err
	}
	return toResults(hits), nil
}

// GetDocument returns the stored fields of the document with id.
func (c *Context) GetDocument(id string) (Result, error) {
	hit, err := c.snapshot.Reader().Document(id)
	if err != nil {
		return Result{}, err
	}
	return toResult(hit), nil
}

// GetFirstResults returns up to n documents in index order.
func (c *Context) GetFirstResults(n int) ([]Result, error) {
	hits, err := c.snapshot.Reader().FirstDocuments(n)
	if err != nil {
		return nil, err
	}
	return toResults(hits), nil
}

// GetDocumentCount returns the number of live documents in the snapshot.
func (c *Context) GetDocumentCount() (uint64, error) {
	return c.snapshot.Reader().DocCount()
}

// CreateOrUpdateIndex upserts docs keyed by idField. New contexts see the
// documents; this one keeps its snapshot.
func (c *Context) CreateOrUpdateIndex(idField string, docs []store.Document) error {
	if err := c.manager.AddOrUpdate(idField, docs); err != nil {
		return err
	}
	_, err := c.manager.MaybeReopen(false)
	return err
}

// DeleteIndexes removes every document whose field equals one of values.
func (c *Context) DeleteIndexes(ctx context.Context, field string, values ...string) error {
	n, err := c.manager.Delete(ctx, field, values)
	if err != nil {
		return err
	}
	c.logger.Debug("documents deleted", "field", field, "values", len(values), "deleted", n)
	_, err = c.manager.MaybeReopen(true)
	return err
}

// ClearIndexes removes every document from the index.
func (c *Context) ClearIndexes() error {
	n, err := c.manager.DeleteAll()
	if err != nil {
		return err
	}
	if err := c.manager.Commit(); err != nil {
		return err
	}
	c.logger.Info("index cleared", "deleted", n)
	_, err = c.manager.MaybeReopen(true)
	return err
}

// Optimize merges the index down to a single segment.
func (c *Context) Optimize(ctx context.Context) error {
	return c.manager.Optimize(ctx)
}

// Close commits pending writes and releases the snapshot. Failures are
// logged, never returned; closing twice is a no-op.
func (c *Context) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	if err := c.manager.Commit(); err != nil {
		c.logger.Warn("commit on context close failed", "error", err)
	}
	if err := c.manager.Release(c.snapshot); err != nil {
		c.logger.Warn("releasing snapshot failed", "error", err)
	}
}

func toResults(hits []store.Hit) []Result {
	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = toResult(h)
	}
	return results
}

func toResult(h store.Hit) Result {
	fields := h.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	return Result{
		DocumentID:  h.ID,
		Fields:      fields,
		Score:       h.Score,
		Explanation: h.Explanation,
	}
}
