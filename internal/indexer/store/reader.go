package store

import (
	"context"
	"net/http"
	"sync/atomic"

	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/blevesearch/bleve/v2/search/collector"
	"github.com/blevesearch/bleve/v2/search/query"
	index "github.com/blevesearch/bleve_index_api"
)

// Hit is a matched document with its stored fields.
type Hit struct {
	ID          string
	Score       float64
	Explanation string
	Fields      map[string]string
}

// Reader is an immutable point-in-time view of the index.
type Reader struct {
	reader  index.IndexReader
	mapping mapping.IndexMapping
	closed  atomic.Bool
}

// Search returns the topN best matches by descending score. A nil query
// matches nothing.
func (r *Reader) Search(ctx context.Context, q query.Query, topN int, explain bool) ([]Hit, error) {
	if q == nil || topN <= 0 {
		return nil, nil
	}
	searcher, err := q.Searcher(ctx, r.reader, r.mapping, search.SearcherOptions{Explain: explain})
	if err != nil {
		return nil, storeError(err, "building searcher")
	}
	defer searcher.Close()

	coll := collector.NewTopNCollector(topN, 0, search.SortOrder{&search.SortScore{Desc: true}})
	if err := coll.Collect(ctx, searcher, r.reader); err != nil {
		return nil, storeError(err, "collecting results")
	}

	matches := coll.Results()
	hits := make([]Hit, 0, len(matches))
	for _, m := range matches {
		fields, err := r.storedFields(m.ID)
		if err != nil {
			return nil, err
		}
		hit := Hit{ID: m.ID, Score: m.Score, Fields: fields}
		if explain && m.Expl != nil {
			hit.Explanation = m.Expl.String()
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Document returns the stored fields of the document with the given id.
func (r *Reader) Document(id string) (Hit, error) {
	doc, err := r.reader.Document(id)
	if err != nil {
		return Hit{}, storeError(err, "loading document "+id)
	}
	if doc == nil {
		return Hit{}, apperrors.Newf(apperrors.ErrDocumentNotFound, http.StatusNotFound, "document %s not found", id)
	}
	return Hit{ID: id, Fields: visitStored(doc)}, nil
}

// FirstDocuments returns up to n documents in index order.
func (r *Reader) FirstDocuments(n int) ([]Hit, error) {
	if n <= 0 {
		return nil, nil
	}
	ids, err := r.allIDs(n)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(ids))
	for _, id := range ids {
		fields, err := r.storedFields(id)
		if err != nil {
			return nil, err
		}
		hits = append(hits, Hit{ID: id, Fields: fields})
	}
	return hits, nil
}

// DocCount returns the number of live documents in the view.
func (r *Reader) DocCount() (uint64, error) {
	n, err := r.reader.DocCount()
	if err != nil {
		return 0, storeError(err, "counting documents")
	}
	return n, nil
}

// Close releases the view. Closing twice is a no-op.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := r.reader.Close(); err != nil {
		return storeError(err, "closing reader")
	}
	return nil
}

// allIDs lists external ids in index order; limit < 0 means all.
func (r *Reader) allIDs(limit int) ([]string, error) {
	it, err := r.reader.DocIDReaderAll()
	if err != nil {
		return nil, storeError(err, "iterating documents")
	}
	defer it.Close()

	var ids []string
	for limit < 0 || len(ids) < limit {
		internal, err := it.Next()
		if err != nil {
			return nil, storeError(err, "iterating documents")
		}
		if internal == nil {
			break
		}
		id, err := r.reader.ExternalID(internal)
		if err != nil {
			return nil, storeError(err, "resolving document id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Reader) storedFields(id string) (map[string]string, error) {
	doc, err := r.reader.Document(id)
	if err != nil {
		return nil, storeError(err, "loading document "+id)
	}
	if doc == nil {
		return map[string]string{}, nil
	}
	return visitStored(doc), nil
}

func visitStored(doc index.Document) map[string]string {
	fields := make(map[string]string)
	doc.VisitFields(func(f index.Field) {
		if f.Name() == "_id" {
			return
		}
		if _, seen := fields[f.Name()]; seen {
			return
		}
		fields[f.Name()] = string(f.Value())
	})
	return fields
}
