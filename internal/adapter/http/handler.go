package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promo-engine/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the promotion usecase to execute business logic and a
// logger for structured logging.
type Handler struct {
	svc    port.PromotionUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PromotionUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/promotions", h.handleCreate)
		r.Post("/promotions/estimate", h.handleEstimate)
		r.Post("/promotions/{id}/stop", h.handleStop)
		r.Get("/promotions/{id}", h.handleStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps domain errors onto HTTP status codes. Validation
// errors and safety rejections carry their reason; everything else is a
// generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validationErr *port.ValidationError
	var safetyErr *port.SafetyError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &safetyErr):
		http.Error(w, safetyErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, port.ErrContentNotFound), errors.Is(err, port.ErrPromotionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
