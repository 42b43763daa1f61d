package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleStop terminates an active promotion early. It expects an {id}
// path parameter bound by the router. Stopping an already-terminated
// promotion succeeds with alreadyTerminated set, so retries are safe.
func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing promotion id", http.StatusBadRequest)
		return
	}
	result, err := h.svc.StopPromotion(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
