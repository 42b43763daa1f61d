package domain

import "time"

// Refund task status values. Completed and failed are terminal.
const (
	RefundScheduled = "scheduled"
	RefundCompleted = "completed"
	RefundFailed    = "failed"
)

// RefundTask schedules the end-of-life reconciliation of one promotion.
// Exactly one is created per promotion, due at createdAt plus
// min(duration, 7) days.
type RefundTask struct {
	ID             int64
	PromotionID    string
	OriginalBudget int64
	RefundDate     time.Time
	RefundAmount   *int64
	Status         string // scheduled, completed, failed
}
