package searcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSearch = `<booleanQuery operator="and">
	<fieldQuery indexField="FirstName" searchField="FirstName"/>
	<fieldQuery indexField="LastName" searchField="LastName"/>
</booleanQuery>`

func newKeys() *analysis.KeyCache {
	return analysis.NewKeyCache(phonetic.New(), 128)
}

func newFactory(t *testing.T, keys *analysis.KeyCache) *Factory {
	t.Helper()
	a, err := analysis.NewAnalyzers(keys, analysis.MapSynonyms{"fred": {"frederick"}})
	require.NoError(t, err)
	f, err := NewFactory(config.IndexConfig{BaseDir: t.TempDir(), CommitInterval: time.Hour}, a)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func person(id, first, last string) store.Document {
	return store.Document{Fields: []store.Field{
		{Name: "Id", Value: id, Stored: true},
		{Name: "FirstName", Value: first, Stored: true, Analyzed: true},
		{Name: "LastName", Value: last, Stored: true, Analyzed: true},
		{Name: "PhoneticLastName", Value: last, Analyzed: true, Analyzer: "synonym"},
	}}
}

func index(t *testing.T, f *Factory, name string, docs ...store.Document) {
	t.Helper()
	sc, err := f.CreateSearchContext(name)
	require.NoError(t, err)
	defer sc.Close()
	require.NoError(t, sc.CreateOrUpdateIndex("Id", docs))
}

func search(t *testing.T, f *Factory, name, xml string, fields map[string]string) []Result {
	t.Helper()
	q, err := parser.NewInterpreter(newKeys()).Parse(xml, fields)
	require.NoError(t, err)
	sc, err := f.CreateSearchContext(name)
	require.NoError(t, err)
	defer sc.Close()
	results, err := sc.Search(context.Background(), q, 10, false)
	require.NoError(t, err)
	return results
}

func TestSearchFindsIndexedPerson(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "TestSearch", person("1", "Fred", "Flintstone"), person("2", "Barney", "Rubble"))

	results := search(t, f, "TestSearch", testSearch, map[string]string{"FirstName": "Fred", "LastName": "Flintstone"})
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].DocumentID)
	assert.Equal(t, "Fred", results[0].Fields["FirstName"])
	assert.Greater(t, results[0].Score, 0.0)
	assert.NotContains(t, results[0].Fields, "PhoneticLastName")
}

func TestPhoneticQueryMatchesMisspelling(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "people", store.Document{Fields: []store.Field{
		{Name: "Id", Value: "1", Stored: true},
		{Name: "PhoneticLastName", Value: "flntstn"},
	}})

	results := search(t, f, "people",
		`<fieldQuery indexField="PhoneticLastName" searchField="LastName" matchType="phonetic"/>`,
		map[string]string{"LastName": "Flintstan"})
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].DocumentID)
}

func TestSynonymAnalyzedFieldMatchesSynonym(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "people", store.Document{Fields: []store.Field{
		{Name: "Id", Value: "1", Stored: true},
		{Name: "FirstNameKeys", Value: "Fred", Analyzed: true, Analyzer: "synonym"},
	}})

	results := search(t, f, "people",
		`<fieldQuery indexField="FirstNameKeys" searchField="FirstName" matchType="phonetic"/>`,
		map[string]string{"FirstName": "Frederick"})
	require.Len(t, results, 1)
}

func TestNewContextSeesWritesOlderDoesNot(t *testing.T) {
	f := newFactory(t, newKeys())
	older, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	defer older.Close()

	index(t, f, "people", person("1", "Fred", "Flintstone"))

	newer, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	defer newer.Close()

	n, err := newer.GetDocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	n, err = older.GetDocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
	assert.Less(t, older.Generation(), newer.Generation())
}

func TestDeleteAndClearVisibility(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "people", person("1", "Fred", "Flintstone"), person("2", "Wilma", "Flintstone"), person("3", "Barney", "Rubble"))

	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	require.NoError(t, sc.DeleteIndexes(context.Background(), "Id", "1", "3"))
	sc.Close()

	sc, err = f.CreateSearchContext("people")
	require.NoError(t, err)
	_, err = sc.GetDocument("1")
	assert.True(t, errors.Is(err, apperrors.ErrDocumentNotFound))
	doc, err := sc.GetDocument("2")
	require.NoError(t, err)
	assert.Equal(t, "Wilma", doc.Fields["FirstName"])
	require.NoError(t, sc.ClearIndexes())
	sc.Close()

	sc, err = f.CreateSearchContext("people")
	require.NoError(t, err)
	defer sc.Close()
	n, err := sc.GetDocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestUpdateReplacesDocument(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "people", person("1", "Fred", "Flintstone"))
	index(t, f, "people", person("1", "Frederick", "Flintstone"))

	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	defer sc.Close()
	first, err := sc.GetFirstResults(5)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Frederick", first[0].Fields["FirstName"])
}

func TestOptimize(t *testing.T) {
	f := newFactory(t, newKeys())
	for i := range 5 {
		index(t, f, "people", person(fmt.Sprint(i), "Fred", "Flintstone"))
	}
	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	require.NoError(t, sc.Optimize(context.Background()))
	sc.Close()

	assert.Len(t, search(t, f, "people", testSearch, map[string]string{"FirstName": "Fred"}), 5)
}

func TestContextCloseIsIdempotent(t *testing.T) {
	f := newFactory(t, newKeys())
	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	sc.Close()
	sc.Close()

	m, ok := f.Manager("people")
	require.True(t, ok)
	assert.Equal(t, int64(0), m.Leases())
}

func TestFactoryCreatesOneManagerPerIndex(t *testing.T) {
	f := newFactory(t, newKeys())

	var wg sync.WaitGroup
	contexts := make([]*Context, 16)
	errs := make([]error, 16)
	for i := range contexts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			contexts[i], errs[i] = f.CreateSearchContext("People")
		}()
	}
	wg.Wait()

	for i, sc := range contexts {
		require.NoError(t, errs[i])
		assert.Same(t, contexts[0].manager, sc.manager)
		sc.Close()
	}
	assert.Equal(t, []string{"people"}, f.Indexes())

	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	defer sc.Close()
	assert.Same(t, contexts[0].manager, sc.manager)
}

func TestIndexNameCasingSurvivesRestart(t *testing.T) {
	base := t.TempDir()
	a, err := analysis.NewAnalyzers(newKeys(), analysis.NoSynonyms)
	require.NoError(t, err)

	f, err := NewFactory(config.IndexConfig{BaseDir: base, CommitInterval: time.Hour}, a)
	require.NoError(t, err)
	index(t, f, "People", person("1", "Fred", "Flintstone"))
	require.NoError(t, f.Close())
	assert.DirExists(t, filepath.Join(base, "people"))

	again, err := NewFactory(config.IndexConfig{BaseDir: base, CommitInterval: time.Hour}, a)
	require.NoError(t, err)
	defer again.Close()
	sc, err := again.CreateSearchContext("people")
	require.NoError(t, err)
	defer sc.Close()
	n, err := sc.GetDocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestFactoryRejectsBadNames(t *testing.T) {
	f := newFactory(t, newKeys())
	for _, name := range []string{"", "  ", "../etc", "a/b", ".."} {
		_, err := f.CreateSearchContext(name)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput), "name %q", name)
	}
}

func TestFactoryRequiresBaseDir(t *testing.T) {
	_, err := NewFactory(config.IndexConfig{}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrConfiguration))
}

func TestFactoryReclaimsStaleLock(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "people"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "people", store.LockFileName), nil, 0o644))

	a, err := analysis.NewAnalyzers(newKeys(), analysis.NoSynonyms)
	require.NoError(t, err)
	f, err := NewFactory(config.IndexConfig{BaseDir: base}, a)
	require.NoError(t, err)
	defer f.Close()

	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	sc.Close()
}

func TestFactoryCloseRejectsLaterCalls(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "a", person("1", "Fred", "Flintstone"))
	index(t, f, "b", person("1", "Fred", "Flintstone"))

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, err := f.CreateSearchContext("a")
	assert.True(t, errors.Is(err, apperrors.ErrFactoryClosed))
	assert.Empty(t, f.Indexes())
}

func TestCommitAllAndOptimizeAll(t *testing.T) {
	f := newFactory(t, newKeys())
	index(t, f, "a", person("1", "Fred", "Flintstone"))
	index(t, f, "b", person("2", "Barney", "Rubble"))

	f.CommitAll()
	require.NoError(t, f.OptimizeAll(context.Background()))
	assert.Len(t, search(t, f, "b", testSearch, map[string]string{"LastName": "Rubble"}), 1)
}

func TestCommitLoopRuns(t *testing.T) {
	a, err := analysis.NewAnalyzers(newKeys(), analysis.NoSynonyms)
	require.NoError(t, err)
	f, err := NewFactory(config.IndexConfig{
		BaseDir:          t.TempDir(),
		CommitInterval:   10 * time.Millisecond,
		OptimizeInterval: 10 * time.Millisecond,
	}, a)
	require.NoError(t, err)

	sc, err := f.CreateSearchContext("people")
	require.NoError(t, err)
	m := sc.manager
	require.NoError(t, m.AddOrUpdate("Id", []store.Document{person("1", "Fred", "Flintstone")}))
	sc.Close()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, f.Close())
}
