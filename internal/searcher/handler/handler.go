// Package handler serves the /searchindex and /management HTTP API. Every
// response carries success and messages; failures of the request itself are
// reported in the body with HTTP 200.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion/validator"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/templates"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
)

const firstDocumentsShown = 5

// Service is the search and index surface behind the handlers;
// *executor.Executor satisfies it.
type Service interface {
	Search(ctx context.Context, req executor.SearchRequest) ([]searcher.Result, error)
	BatchSearch(ctx context.Context, req executor.BatchSearchRequest) ([]executor.BatchResult, error)
	AdhocSearch(ctx context.Context, req executor.AdhocRequest) ([]searcher.Result, time.Duration, error)
	Index(ctx context.Context, index, idField string, docs []store.Document, source string) error
	Delete(ctx context.Context, index, idField string, ids []string) error
	Clear(ctx context.Context, index string) error
	Optimize(ctx context.Context, index string) error
	Inspect(index string, n int) (executor.IndexSummary, error)
	Templates() []templates.Template
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
		logger:  slog.Default().With("component", "search-handler"),
	}
}

// Register mounts the routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("PUT /searchindex/put", h.Put)
	mux.HandleFunc("POST /searchindex/search", h.Search)
	mux.HandleFunc("POST /searchindex/batchsearch", h.BatchSearch)
	mux.HandleFunc("DELETE /searchindex/delete", h.Delete)
	mux.HandleFunc("DELETE /searchindex/clear", h.Clear)
	mux.HandleFunc("POST /searchindex/optimize", h.Optimize)
	mux.HandleFunc("GET /searchindex/optimize", h.Optimize)
	mux.HandleFunc("POST /management/query", h.Query)
	mux.HandleFunc("GET /management/indexes/{name}", h.Index)
	mux.HandleFunc("GET /management/templates", h.Templates)
}

func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	var req ingestion.IndexRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validator.ValidateIndexRequest(&req); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			h.writeJSON(w, http.StatusOK, Response{Messages: ve.Messages()})
			return
		}
		h.fail(w, r, err, &Response{})
		return
	}
	docs, err := req.Documents()
	if err == nil {
		err = h.service.Index(r.Context(), req.IndexName, req.IDFieldName, docs, "api")
	}
	h.finish(w, r, err, &Response{})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !h.decode(w, r, &req) {
		return
	}
	results, err := h.service.Search(r.Context(), executor.SearchRequest{
		Template: req.SearchQueryName,
		Index:    req.IndexName,
		Fields:   fieldMap(req.SearchFields),
		Tokens:   parameterMap(req.SearchConfigurationParameters),
		TopN:     req.TopResults,
		Explain:  req.Explain,
	})
	resp := &SearchResponse{Results: []Result{}}
	if err == nil {
		resp.Results = ToResults(results)
	}
	h.finish(w, r, err, resp)
}

func (h *Handler) BatchSearch(w http.ResponseWriter, r *http.Request) {
	var req BatchSearchRequest
	if !h.decode(w, r, &req) {
		return
	}
	out, err := h.service.BatchSearch(r.Context(), executor.BatchSearchRequest{
		ReferenceID: req.ReferenceID,
		Template:    req.SearchQueryName,
		Index:       req.IndexName,
		Tokens:      parameterMap(req.SearchConfigurationParameters),
		TopN:        req.TopResults,
		Explain:     req.Explain,
		Entries:     toBatchEntries(req.Searches),
	})
	resp := &BatchSearchResponse{ReferenceID: req.ReferenceID, SearchResults: []BatchSearchResult{}}
	if err == nil {
		for _, b := range out {
			resp.SearchResults = append(resp.SearchResults, BatchSearchResult{
				ReferenceID:   b.ReferenceID,
				SearchResults: ToResults(b.Results),
			})
		}
	}
	h.finish(w, r, err, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := requireIndexName(req.IndexName)
	if err == nil {
		err = h.service.Delete(r.Context(), req.IndexName, req.IDFieldName, req.DeleteIDs)
	}
	h.finish(w, r, err, &Response{})
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	var req IndexNameRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := requireIndexName(req.IndexName)
	if err == nil {
		err = h.service.Clear(r.Context(), req.IndexName)
	}
	h.finish(w, r, err, &Response{})
}

// Optimize accepts the index name as a JSON body (POST) or the indexName
// query parameter (GET).
func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req IndexNameRequest
	if r.Method == http.MethodGet {
		req.IndexName = r.URL.Query().Get("indexName")
	} else if !h.decode(w, r, &req) {
		return
	}
	err := requireIndexName(req.IndexName)
	if err == nil {
		err = h.service.Optimize(r.Context(), req.IndexName)
	}
	h.finish(w, r, err, &Response{})
}

// Query runs query XML that is not registered as a template.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !h.decode(w, r, &req) {
		return
	}
	fields := fieldMap(req.SearchFields)
	if fields == nil {
		fields = map[string]string{}
	}
	results, elapsed, err := h.service.AdhocSearch(r.Context(), executor.AdhocRequest{
		Index:   req.IndexName,
		Query:   req.QueryXML,
		Fields:  fields,
		Tokens:  parameterMap(req.SearchConfigurationParameters),
		TopN:    req.TopResults,
		Explain: req.Explain,
	})
	resp := &QueryResponse{Results: []Result{}}
	if err == nil {
		resp.Results = ToResults(results)
		resp.ElapsedMs = elapsed.Milliseconds()
	}
	h.finish(w, r, err, resp)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	summary, err := h.service.Inspect(name, firstDocumentsShown)
	resp := &IndexResponse{IndexName: name, FirstDocuments: []Result{}}
	if err == nil {
		resp.DocumentCount = summary.DocumentCount
		resp.FirstDocuments = ToResults(summary.FirstDocuments)
	}
	h.finish(w, r, err, resp)
}

func (h *Handler) Templates(w http.ResponseWriter, r *http.Request) {
	all := h.service.Templates()
	resp := &TemplatesResponse{Templates: make([]TemplateInfo, 0, len(all))}
	for _, t := range all {
		resp.Templates = append(resp.Templates, TemplateInfo{Name: t.Name, TargetIndex: t.TargetIndex, Query: t.Query})
	}
	h.finish(w, r, nil, resp)
}

func requireIndexName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.New(apperrors.ErrMissingParameter, http.StatusBadRequest, "indexName is required")
	}
	return nil
}

// responder is implemented by every response type through the embedded
// Response.
type responder interface {
	base() *Response
}

func (r *Response) base() *Response { return r }

// decode reads the JSON body into dst. A malformed body is answered like
// any other failed request.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusOK, Response{Messages: []string{"request body is not valid JSON: " + err.Error()}})
		return false
	}
	return true
}

func (h *Handler) finish(w http.ResponseWriter, r *http.Request, err error, resp responder) {
	if err != nil {
		h.fail(w, r, err, resp)
		return
	}
	b := resp.base()
	b.Success = true
	if b.Messages == nil {
		b.Messages = []string{}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// fail reports err in the body. Request errors keep HTTP 200; server side
// failures carry their status so load balancers can see them.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, resp responder) {
	status := apperrors.ResponseStatus(err)
	log := logger.FromContext(r.Context())
	if status != http.StatusOK {
		log.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		log.Warn("request rejected", "path", r.URL.Path, "error", err)
	}
	b := resp.base()
	b.Success = false
	b.Messages = append(b.Messages, apperrors.Message(err))
	h.writeJSON(w, status, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
