package executor

import (
	"context"
	"fmt"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/stretchr/testify/require"
)

func seedMany(b *testing.B, e *Executor, n int) {
	b.Helper()
	first := []string{"Fred", "Wilma", "Barney", "Betty", "Pebbles", "Bamm"}
	last := []string{"Flintstone", "Rubble", "Slate", "Gravel"}
	docs := make([]store.Document, 0, n)
	for i := range n {
		docs = append(docs, person(fmt.Sprint(i), first[i%len(first)], last[i%len(last)]))
	}
	require.NoError(b, e.Index(context.Background(), "People", "Id", docs, "bench"))
}

func BenchmarkSearch(b *testing.B) {
	e := newExecutor(b)
	seedMany(b, e, 2000)
	req := SearchRequest{
		Template: "NameSearch",
		Fields:   map[string]string{"FirstName": "Fred", "LastName": "Rubble"},
		Tokens:   map[string]string{"MinimumFieldMatches": "1"},
		TopN:     10,
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Search(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBatchSearch(b *testing.B) {
	e := newExecutor(b)
	seedMany(b, e, 2000)
	entries := make([]BatchEntry, 50)
	for i := range entries {
		entries[i] = BatchEntry{
			ReferenceID: fmt.Sprint(i),
			Fields:      map[string]string{"FirstName": "Betty", "LastName": "Slate"},
		}
	}
	req := BatchSearchRequest{Template: "NameSearch", TopN: 5, Entries: entries}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.BatchSearch(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
