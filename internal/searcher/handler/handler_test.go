package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/analysis"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/phonetic"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/templates"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nameQuery = `<booleanQuery operator="and">
	<fieldQuery indexField="FirstName" searchField="FirstName"/>
	<fieldQuery indexField="LastName" searchField="LastName"/>
</booleanQuery>`

const putBody = `{
	"indexName": "People",
	"idFieldName": "Id",
	"indexRecords": [
		{"fields": [
			{"name": "Id", "value": "1", "isStored": true},
			{"name": "FirstName", "value": "Fred", "isStored": true, "isAnalyzed": true},
			{"name": "LastName", "value": "Flintstone", "isStored": true, "isAnalyzed": true}
		]},
		{"fields": [
			{"name": "Id", "value": "2", "isStored": true},
			{"name": "FirstName", "value": "Barney", "isStored": true, "isAnalyzed": true},
			{"name": "LastName", "value": "Rubble", "isStored": true, "isAnalyzed": true}
		]}
	]
}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	keys := analysis.NewKeyCache(phonetic.New(), 128)
	a, err := analysis.NewAnalyzers(keys, analysis.MapSynonyms{})
	require.NoError(t, err)
	f, err := searcher.NewFactory(config.IndexConfig{BaseDir: t.TempDir(), CommitInterval: time.Hour}, a)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	set := map[string]templates.Template{
		"NameSearch": {Name: "NameSearch", TargetIndex: "People", Query: nameQuery},
	}
	exec, err := executor.New(f, templates.NewStore(set), parser.NewInterpreter(keys), config.SearchConfig{
		DefaultTopResults: 10,
		MaxTopResults:     100,
		BatchConcurrency:  2,
	})
	require.NoError(t, err)
	t.Cleanup(exec.Close)

	mux := http.NewServeMux()
	New(exec).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string, dst any) int {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	return resp.StatusCode
}

func put(t *testing.T, srv *httptest.Server) {
	t.Helper()
	var resp Response
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodPut, "/searchindex/put", putBody, &resp))
	require.True(t, resp.Success, resp.Messages)
}

func TestPutThenSearch(t *testing.T) {
	srv := newServer(t)
	put(t, srv)

	var resp SearchResponse
	status := call(t, srv, http.MethodPost, "/searchindex/search", `{
		"searchQueryName": "NameSearch",
		"topResults": 5,
		"searchFields": [{"fieldName": "FirstName", "value": "Fred"}, {"fieldName": "LastName", "value": "Flintstone"}]
	}`, &resp)
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success, resp.Messages)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "1", resp.Results[0].IndexDocumentID)
	assert.Equal(t, []ResultField{
		{Name: "FirstName", Value: "Fred"},
		{Name: "Id", Value: "1"},
		{Name: "LastName", Value: "Flintstone"},
	}, resp.Results[0].Fields)
	assert.Empty(t, resp.Messages)
}

func TestSearchFailuresReportedInBody(t *testing.T) {
	srv := newServer(t)

	var resp SearchResponse
	status := call(t, srv, http.MethodPost, "/searchindex/search", `{"searchQueryName": "Unknown", "searchFields": []}`, &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"Unable to find configuration for Unknown"}, resp.Messages)
	assert.Empty(t, resp.Results)

	resp = SearchResponse{}
	call(t, srv, http.MethodPost, "/searchindex/search", `{"searchQueryName": "NameSearch"}`, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"Search fields cannot be null"}, resp.Messages)

	resp = SearchResponse{}
	status = call(t, srv, http.MethodPost, "/searchindex/search", `{"searchQueryName": `, &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, resp.Success)
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "not valid JSON")
}

func TestPutConversionFailure(t *testing.T) {
	srv := newServer(t)
	var resp Response
	call(t, srv, http.MethodPut, "/searchindex/put", `{
		"indexName": "People", "idFieldName": "Id",
		"indexRecords": [{"fields": [{"name": "Id", "value": "1"}, {"name": "Age", "value": "old", "dataType": "Long"}]}]
	}`, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"Unable to convert string 'old' to Numeric Field"}, resp.Messages)
}

func TestPutValidationFailure(t *testing.T) {
	srv := newServer(t)
	var resp Response
	call(t, srv, http.MethodPut, "/searchindex/put", `{"indexName": "People", "indexRecords": []}`, &resp)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Messages, "idFieldName: idFieldName is required")
}

func TestBatchSearch(t *testing.T) {
	srv := newServer(t)
	put(t, srv)

	var resp BatchSearchResponse
	call(t, srv, http.MethodPost, "/searchindex/batchsearch", `{
		"referenceId": "outer",
		"searchQueryName": "NameSearch",
		"searches": [
			{"referenceId": "r1", "searchFields": [{"fieldName": "LastName", "value": "Rubble"}]},
			{"referenceId": "r2", "searchFields": [{"fieldName": "LastName", "value": "Slate"}]}
		]
	}`, &resp)
	require.True(t, resp.Success, resp.Messages)
	assert.Equal(t, "outer", resp.ReferenceID)
	require.Len(t, resp.SearchResults, 2)
	assert.Equal(t, "r1", resp.SearchResults[0].ReferenceID)
	require.Len(t, resp.SearchResults[0].SearchResults, 1)
	assert.Equal(t, "2", resp.SearchResults[0].SearchResults[0].IndexDocumentID)
	assert.Empty(t, resp.SearchResults[1].SearchResults)
}

func TestDeleteClearOptimize(t *testing.T) {
	srv := newServer(t)
	put(t, srv)

	var resp Response
	call(t, srv, http.MethodDelete, "/searchindex/delete", `{"indexName": "People", "idFieldName": "Id", "deleteIds": ["1"]}`, &resp)
	require.True(t, resp.Success, resp.Messages)

	var idx IndexResponse
	call(t, srv, http.MethodGet, "/management/indexes/People", "", &idx)
	require.True(t, idx.Success, idx.Messages)
	assert.Equal(t, uint64(1), idx.DocumentCount)
	require.Len(t, idx.FirstDocuments, 1)
	assert.Equal(t, "2", idx.FirstDocuments[0].IndexDocumentID)

	resp = Response{}
	call(t, srv, http.MethodDelete, "/searchindex/clear", `{"indexName": "People"}`, &resp)
	require.True(t, resp.Success, resp.Messages)

	resp = Response{}
	call(t, srv, http.MethodGet, "/searchindex/optimize?indexName=People", "", &resp)
	assert.True(t, resp.Success, resp.Messages)

	resp = Response{}
	call(t, srv, http.MethodPost, "/searchindex/optimize", `{"indexName": "People"}`, &resp)
	assert.True(t, resp.Success, resp.Messages)

	resp = Response{}
	call(t, srv, http.MethodPost, "/searchindex/optimize", `{}`, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"indexName is required"}, resp.Messages)

	idx = IndexResponse{}
	call(t, srv, http.MethodGet, "/management/indexes/People", "", &idx)
	assert.Zero(t, idx.DocumentCount)
}

func TestManagementQueryAndTemplates(t *testing.T) {
	srv := newServer(t)
	put(t, srv)

	var q QueryResponse
	call(t, srv, http.MethodPost, "/management/query", `{
		"indexName": "People",
		"queryXml": "<fieldQuery indexField=\"LastName\" searchField=\"Name\" matchType=\"fuzzy\" tolerance=\"${Tol}\"/>",
		"searchFields": [{"fieldName": "Name", "value": "Rubbel"}],
		"searchConfigurationParameters": [{"name": "Tol", "value": "2"}]
	}`, &q)
	require.True(t, q.Success, q.Messages)
	require.Len(t, q.Results, 1)
	assert.Equal(t, "2", q.Results[0].IndexDocumentID)

	var tmpl TemplatesResponse
	call(t, srv, http.MethodGet, "/management/templates", "", &tmpl)
	require.True(t, tmpl.Success)
	require.Len(t, tmpl.Templates, 1)
	assert.Equal(t, "NameSearch", tmpl.Templates[0].Name)
	assert.Equal(t, "People", tmpl.Templates[0].TargetIndex)
}

func TestBadIndexNameRejected(t *testing.T) {
	srv := newServer(t)
	var resp Response
	status := call(t, srv, http.MethodDelete, "/searchindex/clear", `{"indexName": ".."}`, &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Messages)
}
