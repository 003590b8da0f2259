package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/ratelimit"
)

// RateLimit applies the authenticated key's limit, or defaultLimit when the
// key has none. It must run after Auth; unauthenticated requests pass.
func RateLimit(limiter *ratelimit.Limiter, defaultLimit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := GetKeyInfo(r.Context())
			if info == nil || exempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			limit := info.RateLimit
			if limit <= 0 {
				limit = defaultLimit
			}
			if ok, wait := limiter.Allow(info.ID, limit); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(max(int(math.Ceil(wait.Seconds())), 1)))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded for key "+info.Name)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
