package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"promo-engine/internal/core/port"
)

// handleCreate creates a promotion: the request body is decoded into a
// port.PromotionRequest, planned and committed. On success it returns
// the allocation plan as JSON. Parsing errors produce HTTP 400, unknown
// posts 404, safety rejections 422.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req port.PromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	plan, err := h.svc.CreatePromotion(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(plan); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleEstimate builds the same plan without committing anything.
func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req port.PromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	plan, err := h.svc.EstimatePromotion(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(plan); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
