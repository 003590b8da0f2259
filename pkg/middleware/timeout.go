package middleware

import (
	"encoding/json"
	"net/http"
	"time"
)

type failure struct {
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
}

// Timeout bounds each request with http.TimeoutHandler. A handler still
// running at the deadline has its context cancelled and the client gets a
// 503 with a failed response body.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(failure{Messages: []string{"request timeout"}})
	return func(next http.Handler) http.Handler {
		bounded := http.TimeoutHandler(next, timeout, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Handlers set their own Content-Type; this one covers the
			// timeout body.
			w.Header().Set("Content-Type", "application/json")
			bounded.ServeHTTP(w, r)
		})
	}
}
