// Package router wires the searcher's HTTP routes and applies the
// middleware chain.
package router

import (
	"net/http"
	"time"

	authmw "github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/middleware"
	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/ratelimit"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/health"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/middleware"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/tracing"
)

// Routes is implemented by handlers that mount themselves on a mux.
type Routes interface {
	Register(mux *http.ServeMux)
}

// Config carries everything the router mounts. Nil members are skipped.
type Config struct {
	Routes         []Routes
	Enqueue        http.HandlerFunc
	Health         *health.Checker
	Metrics        *metrics.Metrics
	Tracer         *tracing.Tracer
	RequestTimeout time.Duration
	Validator      authmw.KeyValidator
	Limiter        *ratelimit.Limiter
	DefaultLimit   int
	CORSOrigins    []string
}

// New builds the full HTTP handler.
//
// Route table:
//
//	PUT    /searchindex/put
//	POST   /searchindex/search
//	POST   /searchindex/batchsearch
//	DELETE /searchindex/delete
//	DELETE /searchindex/clear
//	GET    /searchindex/optimize, POST /searchindex/optimize
//	PUT    /searchindex/enqueue          (kafka enabled)
//	POST   /personsearch/search
//	POST   /personsearch/batch
//	GET    /personsearch/batch/{id}
//	POST   /management/query
//	GET    /management/indexes/{name}
//	GET    /management/templates
//	GET    /health/live, /health/ready
//
// Middleware chain (outermost first):
//
//	RequestID → CORS → Metrics → Tracing → Auth → RateLimit → Timeout → mux
func New(cfg Config) http.Handler {
	mux := http.NewServeMux()
	for _, r := range cfg.Routes {
		r.Register(mux)
	}
	if cfg.Enqueue != nil {
		mux.HandleFunc("PUT /searchindex/enqueue", cfg.Enqueue)
	}
	if cfg.Health != nil {
		mux.HandleFunc("GET /health/live", cfg.Health.LiveHandler())
		mux.HandleFunc("GET /health/ready", cfg.Health.ReadyHandler())
	}

	var chain http.Handler = mux
	if cfg.RequestTimeout > 0 {
		chain = middleware.Timeout(cfg.RequestTimeout)(chain)
	}
	if cfg.Validator != nil {
		if cfg.Limiter != nil {
			chain = authmw.RateLimit(cfg.Limiter, cfg.DefaultLimit)(chain)
		}
		chain = authmw.Auth(cfg.Validator)(chain)
	}
	if cfg.Tracer != nil {
		chain = middleware.Tracing(cfg.Tracer)(chain)
	}
	if cfg.Metrics != nil {
		chain = middleware.Metrics(cfg.Metrics)(chain)
	}
	chain = middleware.CORS(cfg.CORSOrigins)(chain)
	chain = middleware.RequestID(chain)
	return chain
}
