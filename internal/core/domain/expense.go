package domain

import "time"

// Action types a promotion pays for, cheapest first.
const (
	ActionView   = "view"
	ActionLike   = "like"
	ActionReply  = "reply"
	ActionShare  = "share"
	ActionFollow = "follow"
	ActionUnlock = "unlock"
)

// Expense is one append-only ledger row of promotion spend. Rows are
// written by the external event accounting pipeline; this engine only
// sums them. The sum over time is the authoritative spend figure.
type Expense struct {
	ID          int64
	PromotionID string
	UserID      string
	ActionType  string
	Cost        int64
	CreatedAt   time.Time
}
