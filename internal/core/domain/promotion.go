package domain

import "time"

// Promotion status values. A promotion leaves StatusActive at most once,
// to either StatusCompleted (natural refund) or StatusStoppedEarly
// (budget exhaustion). Transitions are compare-and-set on the previous
// status at the store.
const (
	StatusActive       = "active"
	StatusCompleted    = "completed"
	StatusStoppedEarly = "stopped_early"
)

// Promotion represents a budgeted promotion of a single post.
// Budgets are stored in integer units (e.g. cents).
type Promotion struct {
	ID               string
	PostID           string
	AuthorID         string
	BudgetTotal      int64
	DurationDays     int
	WealthLevels     []WealthTier
	PreferredRegions []string
	ExcludeFollowers bool
	Status           string // active, completed, stopped_early
	CreatedAt        time.Time
	ExpiresAt        time.Time
	CompletedAt      *time.Time
}
