package person

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	searchhandler "github.com/Adithya-Monish-Kumar-K/namesearch/internal/searcher/handler"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
)

type SearchResponse struct {
	searchhandler.Response
	Results []searchhandler.Result `json:"results"`
}

type BatchRequest struct {
	PersonSearches []Request `json:"personSearches"`
}

type BatchResponse struct {
	searchhandler.Response
	BatchID string `json:"batchId,omitempty"`
}

type BatchItem struct {
	Position int                    `json:"position"`
	Results  []searchhandler.Result `json:"results"`
	Error    string                 `json:"error,omitempty"`
}

type BatchStatusResponse struct {
	searchhandler.Response
	BatchID     string      `json:"batchId"`
	Status      string      `json:"status,omitempty"`
	Results     []BatchItem `json:"results"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

// Handler serves /personsearch.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		logger:  slog.Default().With("component", "person-handler"),
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /personsearch/search", h.Search)
	mux.HandleFunc("POST /personsearch/batch", h.QueueBatch)
	mux.HandleFunc("GET /personsearch/batch/{id}", h.BatchStatus)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	resp := &SearchResponse{Results: []searchhandler.Result{}}
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, invalidBody(err), &resp.Response, resp)
		return
	}
	results, err := h.service.Search(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, &resp.Response, resp)
		return
	}
	resp.Results = searchhandler.ToResults(results)
	h.ok(w, &resp.Response, resp)
}

func (h *Handler) QueueBatch(w http.ResponseWriter, r *http.Request) {
	resp := &BatchResponse{}
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, invalidBody(err), &resp.Response, resp)
		return
	}
	id, err := h.service.QueueBatch(r.Context(), req.PersonSearches)
	if err != nil {
		h.fail(w, r, err, &resp.Response, resp)
		return
	}
	resp.BatchID = id
	h.ok(w, &resp.Response, resp)
}

func (h *Handler) BatchStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	resp := &BatchStatusResponse{BatchID: id, Results: []BatchItem{}}
	job, err := h.service.BatchStatus(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, &resp.Response, resp)
		return
	}
	resp.Status = job.Status
	resp.CompletedAt = job.CompletedAt
	for _, item := range job.Results {
		resp.Results = append(resp.Results, BatchItem{
			Position: item.Position,
			Results:  searchhandler.ToResults(item.Results),
			Error:    item.Error,
		})
	}
	if job.Error != "" {
		resp.Messages = append(resp.Messages, job.Error)
	}
	h.ok(w, &resp.Response, resp)
}

func invalidBody(err error) error {
	return apperrors.Wrap(apperrors.ErrInvalidInput, http.StatusBadRequest, err, "request body is not valid JSON: "+err.Error())
}

func (h *Handler) ok(w http.ResponseWriter, base *searchhandler.Response, body any) {
	base.Success = true
	if base.Messages == nil {
		base.Messages = []string{}
	}
	h.writeJSON(w, http.StatusOK, body)
}

// fail keeps HTTP 200 for request errors and reports server side failures
// with their status.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, base *searchhandler.Response, body any) {
	status := apperrors.ResponseStatus(err)
	log := logger.FromContext(r.Context())
	if status != http.StatusOK {
		log.Error("person search request failed", "path", r.URL.Path, "error", err)
	} else {
		log.Warn("person search request rejected", "path", r.URL.Path, "error", err)
	}
	base.Success = false
	base.Messages = append(base.Messages, apperrors.Message(err))
	h.writeJSON(w, status, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
