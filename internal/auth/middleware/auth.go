// Package middleware authenticates API keys and applies per-key rate limits
// in front of the searcher's HTTP routes. Rejections use the same
// {success, messages} body as the search API.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/apikey"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/logger"
)

// APIKeyHeader is checked when no bearer token is present.
const APIKeyHeader = "X-API-Key"

type keyInfoKey struct{}

// KeyValidator resolves a raw key to its metadata.
type KeyValidator interface {
	Validate(ctx context.Context, rawKey string) (*apikey.KeyInfo, error)
}

// Auth requires a valid key on every route except health probes. Keys come
// from "Authorization: Bearer <key>" or the X-API-Key header; keys in the
// query string are not accepted.
func Auth(validator KeyValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			key := presentedKey(r)
			if key == "" {
				writeError(w, http.StatusUnauthorized, "missing api key")
				return
			}

			info, err := validator.Validate(r.Context(), key)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), keyInfoKey{}, info)))
			case errors.Is(err, apikey.ErrInvalidKey):
				writeError(w, http.StatusUnauthorized, "invalid api key")
			case errors.Is(err, apikey.ErrExpiredKey):
				writeError(w, http.StatusUnauthorized, "expired api key")
			default:
				logger.FromContext(r.Context()).Error("api key lookup failed", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusServiceUnavailable, "authentication unavailable")
			}
		})
	}
}

// GetKeyInfo returns the key Auth accepted, or nil.
func GetKeyInfo(ctx context.Context) *apikey.KeyInfo {
	info, _ := ctx.Value(keyInfoKey{}).(*apikey.KeyInfo)
	return info
}

func exempt(path string) bool {
	return strings.HasPrefix(path, "/health/")
}

func presentedKey(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(r.Header.Get(APIKeyHeader))
}

type errorBody struct {
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Messages: []string{message}})
}
