package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotline/internal/notify/models"
	"hotline/internal/notify/service"
	"hotline/pkg/platform/httputil"
	"hotline/pkg/requestcontext"
)

// Service defines the interface for follow-up delivery.
type Service interface {
	SendFollowUp(ctx context.Context, req service.FollowUpRequest) (*models.FollowUp, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the SMS endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/sms/follow-up", h.HandleFollowUp)
}

// HandleFollowUp handles POST /v1/sms/follow-up.
func (h *Handler) HandleFollowUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FollowUpRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.SendFollowUp(ctx, req.ToService())
	if err != nil {
		h.logger.WarnContext(ctx, "follow-up not sent",
			"request_id", requestID,
			"call_sid", req.CallSID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toFollowUpResponse(result))
}
