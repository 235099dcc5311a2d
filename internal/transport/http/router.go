// Package httptransport assembles the HTTP surface: the middleware chain,
// the module handlers and the operator endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hotline/internal/platform/metrics"
	"hotline/internal/platform/middleware"
	dErrors "hotline/pkg/domain-errors"
	"hotline/pkg/platform/httputil"
	"hotline/pkg/platform/middleware/admin"
	"hotline/pkg/platform/middleware/metadata"
	"hotline/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's public routes.
type Registrar interface {
	Register(r chi.Router)
}

// AdminRegistrar mounts a module's operator routes.
type AdminRegistrar interface {
	RegisterAdmin(r chi.Router)
}

type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	AdminToken     string
	// Clock stamps each request; nil uses time.Now.
	Clock          func() time.Time
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	Public         []Registrar
	Admin          []AdminRegistrar
}

// NewRouter wires every endpoint behind the shared middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware(cfg.Clock))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Latency(cfg.Metrics))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no such endpoint"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "method not allowed"))
	})

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		for _, reg := range cfg.Public {
			reg.Register(r)
		}
		r.Group(func(r chi.Router) {
			r.Use(admin.RequireAdminToken(cfg.AdminToken, cfg.Logger))
			for _, reg := range cfg.Admin {
				reg.RegisterAdmin(r)
			}
		})
	})
	return r
}
