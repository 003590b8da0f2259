package middleware

import (
	"net/http"

	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/tracing"
)

// Tracing opens a root span per sampled request, using the request ID as
// the trace ID. Spans opened further down attach to it as children.
func Tracing(tracer *tracing.Tracer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method+" "+normalizePath(r.URL.Path), GetRequestID(r.Context()))
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
