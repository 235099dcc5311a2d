package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotline/internal/session/models"
	"hotline/pkg/platform/httputil"
	"hotline/pkg/requestcontext"
)

// Service defines the session operations exposed over HTTP.
type Service interface {
	Get(ctx context.Context, callSID string) (*models.Session, error)
	Record(ctx context.Context, callSID string, u models.Update) (*models.Session, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts session endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/v1/sessions/{callSID}", h.HandleGet)
	r.Put("/v1/sessions/{callSID}", h.HandleRecord)
}

// HandleGet handles GET /v1/sessions/{callSID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, err := h.service.Get(ctx, chi.URLParam(r, "callSID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, session)
}

// HandleRecord handles PUT /v1/sessions/{callSID}.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	session, err := h.service.Record(ctx, chi.URLParam(r, "callSID"), req.Update())
	if err != nil {
		h.logger.WarnContext(ctx, "failed to record session",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, session)
}
