package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/person"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/handler"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/templates"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/health"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configsDir = filepath.Join("..", "..", "configs")

// newStack wires the shipped templates and synonyms behind the full
// middleware chain.
func newStack(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	synonyms, err := analysis.LoadSynonyms(filepath.Join(configsDir, "synonyms.yaml"))
	require.NoError(t, err)
	keys := analysis.NewKeyCache(phonetic.New(), 256)
	analyzers, err := analysis.NewAnalyzers(keys, synonyms)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	factory, err := searcher.NewFactory(config.IndexConfig{BaseDir: t.TempDir(), CommitInterval: time.Hour}, analyzers, searcher.WithMetrics(m))
	require.NoError(t, err)
	t.Cleanup(func() { factory.Close() })

	store, err := templates.Load(filepath.Join(configsDir, "search-queries.xml"))
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	exec, err := executor.New(factory, store, parser.NewInterpreter(keys), cfg.Search, executor.WithMetrics(m))
	require.NoError(t, err)
	t.Cleanup(exec.Close)

	svc := person.NewService(exec, cfg.Search.PersonQuery, person.WithDefaults(cfg.Search.PersonDefaults), person.WithMetrics(m))
	srv := httptest.NewServer(New(Config{
		Routes:         []Routes{handler.New(exec), person.NewHandler(svc)},
		Health:         health.NewChecker(),
		Metrics:        m,
		RequestTimeout: 5 * time.Second,
	}))
	t.Cleanup(srv.Close)
	return srv, m
}

func personRecord(id, first, last, birthDate string) ingestion.IndexRecord {
	name := func(field, value string) []ingestion.IndexField {
		return []ingestion.IndexField{
			{Name: field, Value: value, IsStored: true, IsAnalyzed: true},
			{Name: field + "Synonyms", Value: value, IsAnalyzed: true, Analyzer: analysis.FieldAnalyzerSynonym},
		}
	}
	fields := []ingestion.IndexField{
		{Name: "WiseId", Value: id, IsStored: true},
		{Name: "BirthDate", Value: birthDate, IsStored: true},
	}
	fields = append(fields, name("FirstName", first)...)
	fields = append(fields, name("LastName", last)...)
	return ingestion.IndexRecord{Fields: fields}
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any, dst any) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(string(data)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	return resp.StatusCode
}

func TestPersonSearchThroughFullStack(t *testing.T) {
	srv, m := newStack(t)

	var put handler.Response
	status := doJSON(t, srv, http.MethodPut, "/searchindex/put", ingestion.IndexRequest{
		IndexName:   "Person",
		IDFieldName: "WiseId",
		IndexRecords: []ingestion.IndexRecord{
			personRecord("1", "Fred", "Flintstone", "19700102"),
			personRecord("2", "William", "Rubble", "19720315"),
			personRecord("3", "Barney", "Rubble", "19710611"),
		},
	}, &put)
	require.Equal(t, http.StatusOK, status)
	require.True(t, put.Success, put.Messages)

	// "Bill" reaches William through the synonym list.
	var found person.SearchResponse
	status = doJSON(t, srv, http.MethodPost, "/personsearch/search", person.Request{
		FirstName: "Bill",
		LastName:  "Rubble",
	}, &found)
	require.Equal(t, http.StatusOK, status)
	require.True(t, found.Success, found.Messages)
	require.NotEmpty(t, found.Results)
	assert.Equal(t, "2", found.Results[0].IndexDocumentID)
	for _, r := range found.Results {
		assert.NotEqual(t, "1", r.IndexDocumentID)
	}

	var byDate person.SearchResponse
	doJSON(t, srv, http.MethodPost, "/personsearch/search", person.Request{
		LastName:  "Flintstone",
		BirthDate: "1970-01-02",
	}, &byDate)
	require.True(t, byDate.Success, byDate.Messages)
	require.NotEmpty(t, byDate.Results)
	assert.Equal(t, "1", byDate.Results[0].IndexDocumentID)

	var bad person.SearchResponse
	status = doJSON(t, srv, http.MethodPost, "/personsearch/search", person.Request{BirthDate: "02/01/1970"}, &bad)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, bad.Success)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPut, "/searchindex/put", "200")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/personsearch/search", "200")))
}

func TestTemplatesListedThroughFullStack(t *testing.T) {
	srv, _ := newStack(t)
	resp, err := srv.Client().Get(srv.URL + "/management/templates")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body handler.TemplatesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	names := make([]string, 0, len(body.Templates))
	for _, tmpl := range body.Templates {
		names = append(names, tmpl.Name)
	}
	assert.Equal(t, []string{"EverythingSearch", "LastNameSearch", "PersonSearch"}, names)
}
