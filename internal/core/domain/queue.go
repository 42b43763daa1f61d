package domain

import "time"

// Delivery queue entry status values.
const (
	DeliveryScheduled = "scheduled"
	DeliveryDelivered = "delivered"
	DeliveryCancelled = "cancelled"
)

// Cancellation reasons recorded on bulk-cancelled queue entries.
const (
	ReasonBudgetExhausted = "budget_exhausted"
	ReasonAuthorRequest   = "author_request"
)

// QueueEntry is one planned delivery of a promotion to one recipient.
// Entries are created in a batch at plan-commit time and cancelled in
// bulk on early stop; delivery marking happens outside this engine.
type QueueEntry struct {
	ID                 int64
	PromotionID        string
	UserID             string
	ScheduledDelivery  time.Time
	ActualDelivery     *time.Time
	Status             string // scheduled, delivered, cancelled
	CancellationReason *string
}
