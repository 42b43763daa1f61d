package usecase

import "promo-engine/internal/core/port"

// Request bounds.
const (
	minBudget   = 100
	maxBudget   = 10_000_000
	maxDuration = 30
	maxRegions  = 10
)

// validateRequest rejects malformed or out-of-range requests before any
// store access.
func validateRequest(req port.PromotionRequest) error {
	if req.AuthorID == "" {
		return &port.ValidationError{Field: "authorId", Reason: "must not be empty"}
	}
	if req.PostID == "" {
		return &port.ValidationError{Field: "postId", Reason: "must not be empty"}
	}
	if req.Budget.Total < minBudget || req.Budget.Total > maxBudget {
		return &port.ValidationError{Field: "budget.total", Reason: "out of range"}
	}
	if req.Budget.DailyLimit != nil && *req.Budget.DailyLimit <= 0 {
		return &port.ValidationError{Field: "budget.dailyLimit", Reason: "must be positive"}
	}
	if req.Budget.Duration < 1 || req.Budget.Duration > maxDuration {
		return &port.ValidationError{Field: "budget.duration", Reason: "must be between 1 and 30 days"}
	}
	if len(req.Targeting.WealthLevels) == 0 {
		return &port.ValidationError{Field: "targeting.wealthLevels", Reason: "must not be empty"}
	}
	for _, tier := range req.Targeting.WealthLevels {
		if !tier.Valid() {
			return &port.ValidationError{Field: "targeting.wealthLevels", Reason: "unknown tier " + string(tier)}
		}
	}
	if len(req.Targeting.PreferredRegions) > maxRegions {
		return &port.ValidationError{Field: "targeting.preferredRegions", Reason: "too many regions"}
	}
	return nil
}
