package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleStatus returns a promotion with its spend to date and remaining
// budget.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing promotion id", http.StatusBadRequest)
		return
	}
	status, err := h.svc.GetPromotion(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(status); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
