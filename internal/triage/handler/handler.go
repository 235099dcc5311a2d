package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotline/internal/triage/models"
	"hotline/internal/triage/service"
	"hotline/pkg/platform/httputil"
	"hotline/pkg/requestcontext"
)

// Service defines the triage operations exposed over HTTP.
type Service interface {
	Resolve(ctx context.Context, req service.ResolveRequest) (*models.Resolution, error)
	Health() models.Health
	ReloadDirectory(ctx context.Context) (*models.ReloadResult, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public triage endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/triage/resolve", h.HandleResolve)
	r.Get("/healthz", h.HandleHealth)
}

// RegisterAdmin mounts operator endpoints. Callers guard r with the admin
// token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/directory/reload", h.HandleReload)
}

// HandleResolve handles POST /v1/triage/resolve.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ResolveRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resolution, err := h.service.Resolve(ctx, req.ToService())
	if err != nil {
		h.logger.WarnContext(ctx, "resolve failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resolution)
}

// HandleHealth handles GET /healthz. A degraded directory answers 503 so a
// load balancer stops routing to an instance that would escalate every call.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	health := h.service.Health()
	status := http.StatusOK
	if health.Status != models.HealthOK {
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, health)
}

// HandleReload handles POST /admin/directory/reload.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	result, err := h.service.ReloadDirectory(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "directory reload rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "directory reloaded by operator",
		"request_id", requestID,
		"contacts", result.Contacts,
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}
