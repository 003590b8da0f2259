package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalyzers(t *testing.T) *analysis.Analyzers {
	t.Helper()
	a, err := analysis.NewAnalyzers(analysis.NewKeyCache(phonetic.New(), 64), analysis.MapSynonyms{})
	require.NoError(t, err)
	return a
}

func openDir(t *testing.T) *Directory {
	t.Helper()
	dir, err := Open(filepath.Join(t.TempDir(), "people"))
	require.NoError(t, err)
	t.Cleanup(func() { dir.Close() })
	return dir
}

func person(id, first, last string) Document {
	return Document{Fields: []Field{
		{Name: "Id", Value: id, Stored: true},
		{Name: "FirstName", Value: first, Analyzed: true, Stored: true},
		{Name: "LastName", Value: last, Analyzed: true, Stored: true},
	}}
}

func add(t *testing.T, w *Writer, docs ...Document) {
	t.Helper()
	n, err := w.AddOrUpdate("Id", docs...)
	require.NoError(t, err)
	require.Equal(t, len(docs), n)
}

func termQuery(field, term string) query.Query {
	q := query.NewTermQuery(term)
	q.SetField(field)
	return q
}

func TestWriterCommitMakesDocumentsVisibleToNewReaders(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))

	add(t, w, person("1", "Fred", "Flintstone"))
	assert.Equal(t, 1, w.Pending())

	before, err := dir.OpenReader()
	require.NoError(t, err)
	defer before.Close()

	require.NoError(t, w.Commit())
	assert.Equal(t, 0, w.Pending())

	after, err := dir.OpenReader()
	require.NoError(t, err)
	defer after.Close()

	n, err := before.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	n, err = after.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	hits, err := after.Search(context.Background(), termQuery("FirstName", "fred"), 10, true)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "1", hits[0].ID)
	assert.Equal(t, "Fred", hits[0].Fields["FirstName"])
	assert.NotEmpty(t, hits[0].Explanation)
}

func TestAddOrUpdateReplacesByID(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))

	add(t, w, person("1", "Fred", "Flintstone"))
	require.NoError(t, w.Commit())
	add(t, w, person("1", "Wilma", "Flintstone"))
	require.NoError(t, w.Commit())

	r, err := dir.OpenReader()
	require.NoError(t, err)
	defer r.Close()

	n, _ := r.DocCount()
	assert.Equal(t, uint64(1), n)
	doc, err := r.Document("1")
	require.NoError(t, err)
	assert.Equal(t, "Wilma", doc.Fields["FirstName"])
}

func TestDeleteTermMatchesPendingAndCommitted(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))

	add(t, w, person("1", "Fred", "Flintstone"))
	require.NoError(t, w.Commit())
	add(t, w, person("2", "Wilma", "Flintstone"))
	add(t, w, person("3", "Barney", "Rubble"))

	n, err := w.DeleteTerm(context.Background(), "LastName", "flintstone")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, w.Commit())

	r, err := dir.OpenReader()
	require.NoError(t, err)
	defer r.Close()
	count, _ := r.DocCount()
	assert.Equal(t, uint64(1), count)

	_, err = r.Document("1")
	assert.True(t, errors.Is(err, apperrors.ErrDocumentNotFound))
}

func TestDeleteTermIdentityIsCaseSensitive(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	add(t, w, person("AB1", "Fred", "Flintstone"), person("ab1", "Wilma", "Flintstone"))

	n, err := w.DeleteTerm(context.Background(), "Id", "AB1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, w.Commit())

	r, err := dir.OpenReader()
	require.NoError(t, err)
	defer r.Close()
	count, _ := r.DocCount()
	assert.Equal(t, uint64(1), count)
	got, err := r.Document("ab1")
	require.NoError(t, err)
	assert.Equal(t, "Wilma", got.Fields["FirstName"])
}

func TestAddOrUpdateBuffersNothingWhenAnyDocumentFails(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	bad := Document{Fields: []Field{
		{Name: "Id", Value: "2"},
		{Name: "Age", Value: "x", DataType: Long},
	}}

	n, err := w.AddOrUpdate("Id", person("1", "Fred", "Flintstone"), bad)
	assert.True(t, errors.Is(err, apperrors.ErrFieldConversion))
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, w.Pending())
}

func TestDeleteAll(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	for _, id := range []string{"1", "2", "3"} {
		add(t, w, person(id, "A", "B"))
	}
	require.NoError(t, w.Commit())
	add(t, w, person("4", "A", "B"))

	n, err := w.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, w.Commit())

	r, err := dir.OpenReader()
	require.NoError(t, err)
	defer r.Close()
	count, _ := r.DocCount()
	assert.Equal(t, uint64(0), count)
}

func TestFirstDocuments(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	for _, id := range []string{"1", "2", "3"} {
		add(t, w, person(id, "A", "B"))
	}
	require.NoError(t, w.Commit())

	r, err := dir.OpenReader()
	require.NoError(t, err)
	defer r.Close()

	hits, err := r.FirstDocuments(2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
	for _, h := range hits {
		assert.Equal(t, h.ID, h.Fields["Id"])
	}
}

func TestFieldConversionErrors(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))

	tests := []struct {
		dataType DataType
		value    string
		message  string
	}{
		{Long, "abc", "Unable to convert string 'abc' to Numeric Field"},
		{Date, "2020-01-01", "Unable to convert date string '2020-01-01' to numeric"},
		{DateTime, "soon", "Unable to convert date string 'soon' to numeric"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dataType), func(t *testing.T) {
			doc := Document{Fields: []Field{
				{Name: "Id", Value: "1"},
				{Name: "Value", Value: tt.value, DataType: tt.dataType},
			}}
			_, err := w.AddOrUpdate("Id", doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrFieldConversion))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNumericFieldsRoundTripAndMatch(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	doc := Document{Fields: []Field{
		{Name: "Id", Value: "1", Stored: true},
		{Name: "BirthDate", Value: "19650301", DataType: Date, Stored: true},
		{Name: "Created", Value: "20240131235959123", DataType: DateTime, Stored: true},
	}}
	add(t, w, doc)
	require.NoError(t, w.Commit())

	r, err := dir.OpenReader()
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Document("1")
	require.NoError(t, err)
	assert.Equal(t, "19650301", got.Fields["BirthDate"])
	assert.Equal(t, "20240131235959123", got.Fields["Created"])

	hits, err := r.Search(context.Background(), termQuery("BirthDate", "19650301"), 5, false)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestMissingIDFieldIsInvalidInput(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	_, err := w.AddOrUpdate("Id", Document{Fields: []Field{{Name: "FirstName", Value: "Fred"}}})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestOpenIsExclusiveAndReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people")
	dir, err := Open(path)
	require.NoError(t, err)

	_, err = Open(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStoreIO))

	w := dir.NewWriter(testAnalyzers(t))
	add(t, w, person("1", "Fred", "Flintstone"))
	require.NoError(t, w.Close())
	require.NoError(t, dir.Close())

	// the lock file is left behind; re-locking it is not an error
	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()
	r, err := again.OpenReader()
	require.NoError(t, err)
	defer r.Close()
	n, _ := r.DocCount()
	assert.Equal(t, uint64(1), n)
}

func TestCleanReopenLogsNoWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "people")
	for range 2 {
		dir, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, dir.Close())
	}
	assert.FileExists(t, filepath.Join(path, LockFileName))
	assert.NotContains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "index opened")
}

func TestForceMerge(t *testing.T) {
	dir := openDir(t)
	w := dir.NewWriter(testAnalyzers(t))
	for _, id := range []string{"1", "2"} {
		add(t, w, person(id, "A", "B"))
		require.NoError(t, w.Commit())
	}
	require.NoError(t, w.ForceMerge(context.Background()))
}

func TestParseDataType(t *testing.T) {
	for in, want := range map[string]DataType{"": String, "string": String, "LONG": Long, "Date": Date, "datetime": DateTime} {
		got, err := ParseDataType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDataType("float")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
