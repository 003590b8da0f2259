package handler

import (
	"maps"
	"slices"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/executor"
)

// Response is embedded in every response body.
type Response struct {
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
}

// SearchField is a named value read by a template's field queries.
type SearchField struct {
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

// Parameter fills a ${name} placeholder of a template.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SearchRequest struct {
	TopResults                    int           `json:"topResults"`
	Explain                       bool          `json:"explain"`
	IndexName                     string        `json:"indexName"`
	SearchQueryName               string        `json:"searchQueryName"`
	SearchFields                  []SearchField `json:"searchFields"`
	SearchConfigurationParameters []Parameter   `json:"searchConfigurationParameters"`
}

type SearchResponse struct {
	Response
	Results []Result `json:"results"`
}

type Search struct {
	ReferenceID  string        `json:"referenceId"`
	SearchFields []SearchField `json:"searchFields"`
}

type BatchSearchRequest struct {
	ReferenceID                   string      `json:"referenceId"`
	TopResults                    int         `json:"topResults"`
	Explain                       bool        `json:"explain"`
	IndexName                     string      `json:"indexName"`
	SearchQueryName               string      `json:"searchQueryName"`
	SearchConfigurationParameters []Parameter `json:"searchConfigurationParameters"`
	Searches                      []Search    `json:"searches"`
}

type BatchSearchResult struct {
	ReferenceID   string   `json:"referenceId"`
	SearchResults []Result `json:"searchResults"`
}

type BatchSearchResponse struct {
	Response
	ReferenceID   string              `json:"referenceId"`
	SearchResults []BatchSearchResult `json:"searchResults"`
}

type DeleteRequest struct {
	IndexName   string   `json:"indexName"`
	IDFieldName string   `json:"idFieldName"`
	DeleteIDs   []string `json:"deleteIds"`
}

// IndexNameRequest is the body of clear and optimize.
type IndexNameRequest struct {
	IndexName string `json:"indexName"`
}

type ResultField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Result struct {
	IndexDocumentID string        `json:"indexDocumentId"`
	Explanation     string        `json:"explanation,omitempty"`
	Fields          []ResultField `json:"fields"`
	Score           float64       `json:"score"`
}

type QueryRequest struct {
	IndexName                     string        `json:"indexName"`
	QueryXML                      string        `json:"queryXml"`
	SearchFields                  []SearchField `json:"searchFields"`
	SearchConfigurationParameters []Parameter   `json:"searchConfigurationParameters"`
	TopResults                    int           `json:"topResults"`
	Explain                       bool          `json:"explain"`
}

type QueryResponse struct {
	Response
	Results   []Result `json:"results"`
	ElapsedMs int64    `json:"elapsedMs"`
}

type IndexResponse struct {
	Response
	IndexName      string   `json:"indexName"`
	DocumentCount  uint64   `json:"documentCount"`
	FirstDocuments []Result `json:"firstDocuments"`
}

type TemplateInfo struct {
	Name        string `json:"name"`
	TargetIndex string `json:"targetIndex"`
	Query       string `json:"query"`
}

type TemplatesResponse struct {
	Response
	Templates []TemplateInfo `json:"templates"`
}

// fieldMap keeps a nil slice nil so the executor can reject it.
func fieldMap(fields []SearchField) map[string]string {
	if fields == nil {
		return nil
	}
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.FieldName] = f.Value
	}
	return m
}

func parameterMap(params []Parameter) map[string]string {
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Name] = p.Value
	}
	return m
}

// ToResults converts search results to their wire form, fields sorted by
// name.
func ToResults(results []searcher.Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		fields := make([]ResultField, 0, len(r.Fields))
		for _, name := range slices.Sorted(maps.Keys(r.Fields)) {
			fields = append(fields, ResultField{Name: name, Value: r.Fields[name]})
		}
		out[i] = Result{
			IndexDocumentID: r.DocumentID,
			Explanation:     r.Explanation,
			Fields:          fields,
			Score:           r.Score,
		}
	}
	return out
}

func toBatchEntries(searches []Search) []executor.BatchEntry {
	entries := make([]executor.BatchEntry, len(searches))
	for i, s := range searches {
		entries[i] = executor.BatchEntry{ReferenceID: s.ReferenceID, Fields: fieldMap(s.SearchFields)}
	}
	return entries
}
