package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/document"
	"github.com/blevesearch/bleve/v2/index/scorch/mergeplan"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Writer buffers mutations in a pending batch. Commit applies the batch
// durably; readers opened afterwards observe it.
type Writer struct {
	mu        sync.Mutex
	dir       *Directory
	analyzers *analysis.Analyzers
	batch     *bleve.Batch
	logger    *slog.Logger
}

func newWriter(dir *Directory, analyzers *analysis.Analyzers) *Writer {
	return &Writer{
		dir:       dir,
		analyzers: analyzers,
		batch:     dir.index.NewBatch(),
		logger:    slog.Default().With("component", "index-writer", "path", dir.path),
	}
}

// AddOrUpdate replaces any document whose identity equals a doc's idField
// value and returns how many were buffered. Every document is converted
// before any is buffered, so a conversion error leaves the batch untouched.
func (w *Writer) AddOrUpdate(idField string, docs ...Document) (int, error) {
	bdocs := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		bdoc, err := build(idField, doc, w.analyzers)
		if err != nil {
			return 0, err
		}
		bdocs = append(bdocs, bdoc)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i, bdoc := range bdocs {
		if err := w.batch.IndexAdvanced(bdoc); err != nil {
			return i, storeError(err, "buffering document "+bdoc.ID())
		}
	}
	return len(bdocs), nil
}

// DeleteTerm deletes every document whose field holds the exact term
// value, returning the number of documents matched. The value is not
// analyzed: identity fields match case-sensitively, analyzed fields match
// their indexed (lower-cased) terms. Pending mutations are applied first so
// buffered documents are matched too.
func (w *Writer) DeleteTerm(ctx context.Context, field, value string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.flushLocked(); err != nil {
		return 0, err
	}

	ids, err := w.matchingIDs(ctx, field, value)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		w.batch.Delete(id)
	}
	return len(ids), nil
}

func (w *Writer) matchingIDs(ctx context.Context, field, term string) ([]string, error) {
	count, err := w.dir.index.DocCount()
	if err != nil {
		return nil, storeError(err, "counting documents")
	}
	if count == 0 {
		return nil, nil
	}
	q := query.NewTermQuery(term)
	q.SetField(field)
	req := bleve.NewSearchRequestOptions(q, int(count), 0, false)
	res, err := w.dir.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, storeError(err, fmt.Sprintf("finding documents with %s=%s", field, term))
	}
	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// DeleteAll drops pending mutations and deletes every committed document.
func (w *Writer) DeleteAll() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.batch.Reset()

	r, err := w.dir.OpenReader()
	if err != nil {
		return 0, err
	}
	defer r.Close()

	ids, err := r.allIDs(-1)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		w.batch.Delete(id)
	}
	return len(ids), nil
}

// Commit applies the pending batch. Committing with nothing pending is a
// no-op.
func (w *Writer) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushLocked()
}

func (w *Writer) flushLocked() error {
	n := w.batch.Size()
	if n == 0 {
		return nil
	}
	if err := w.dir.index.Batch(w.batch); err != nil {
		return storeError(err, "committing batch")
	}
	w.logger.Debug("batch committed", "operations", n)
	w.batch.Reset()
	return nil
}

// Pending reports the number of buffered operations.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.batch.Size()
}

type forceMerger interface {
	ForceMerge(ctx context.Context, mo *mergeplan.MergePlanOptions) error
}

// ForceMerge commits and merges the index down to a single segment.
func (w *Writer) ForceMerge(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.flushLocked(); err != nil {
		return err
	}
	adv, err := w.dir.index.Advanced()
	if err != nil {
		return storeError(err, "accessing index internals")
	}
	fm, ok := adv.(forceMerger)
	if !ok {
		return apperrors.New(apperrors.ErrStoreIO, http.StatusInternalServerError, "index does not support merging")
	}
	if err := fm.ForceMerge(ctx, &mergeplan.SingleSegmentMergePlanOptions); err != nil {
		return storeError(err, "merging segments")
	}
	w.logger.Info("segments merged")
	return nil
}

// Close commits anything pending.
func (w *Writer) Close() error {
	return w.Commit()
}
