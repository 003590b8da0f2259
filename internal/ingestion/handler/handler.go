package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion/publisher"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/ingestion/validator"
	apperrors "github.com/Adithya-Monish-Kumar-K/namesearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
)

type enqueueResponse struct {
	Success   bool     `json:"success"`
	Messages  []string `json:"messages"`
	RequestID string   `json:"requestId,omitempty"`
}

// Handler serves PUT /searchindex/enqueue.
type Handler struct {
	publisher *publisher.Publisher
	logger    *slog.Logger
}

func New(pub *publisher.Publisher) *Handler {
	return &Handler{
		publisher: pub,
		logger:    slog.Default().With("component", "enqueue-handler"),
	}
}

// Enqueue validates an index request and queues it. Failures are reported
// in the body with success=false; an unreachable broker also sets 503.
func (h *Handler) Enqueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req ingestion.IndexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusOK, failed("request body is not valid JSON: "+err.Error()))
		return
	}
	if err := validator.ValidateIndexRequest(&req); err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			h.writeJSON(w, http.StatusOK, failed(validationErr.Messages()...))
			return
		}
		h.writeJSON(w, http.StatusOK, failed(err.Error()))
		return
	}

	id, err := h.publisher.Enqueue(ctx, req, logger.RequestID(ctx))
	if err != nil {
		log.Error("enqueue failed", "index", req.IndexName, "error", err)
		h.writeJSON(w, apperrors.ResponseStatus(err), failed(apperrors.Message(err)))
		return
	}
	h.writeJSON(w, http.StatusOK, enqueueResponse{Success: true, Messages: []string{}, RequestID: id})
}

func failed(messages ...string) enqueueResponse {
	return enqueueResponse{Messages: messages}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
