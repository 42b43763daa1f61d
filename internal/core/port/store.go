package port

import (
	"context"
	"time"

	"promo-engine/internal/core/domain"
)

// CandidateStore defines the persistence layer for the promotion engine.
// It is an outbound port in hexagonal architecture. Implementations must
// be concurrency-safe; every status transition must be a conditional
// (compare-and-set) write so racing sweeps cannot double-apply.
type CandidateStore interface {
	// SelectCandidates returns pre-scored candidate rows matching the
	// targeting framework, ordered by recent activity and historical
	// engagement descending, capped at 2000 rows. Accounts younger than
	// 24 hours are excluded at the source. When targeting excludes the
	// author's followers, authorID identifies whose followers to skip.
	SelectCandidates(ctx context.Context, targeting domain.Targeting, authorID string) ([]CandidateRow, error)
	// GetContent returns the post under promotion, or nil when absent.
	GetContent(ctx context.Context, postID string) (*domain.Content, error)
	// GetPromotion returns a promotion by id, or nil when absent.
	GetPromotion(ctx context.Context, id string) (*domain.Promotion, error)
	// RecentDeliveryCount counts promotion deliveries to one user within
	// the trailing window.
	RecentDeliveryCount(ctx context.Context, userID string, window time.Duration) (int, error)
	// AuthorDeliveryCount counts deliveries of one author's promotions
	// within the trailing window.
	AuthorDeliveryCount(ctx context.Context, authorID string, window time.Duration) (int, error)
	// ContentTypeShares returns each content type's fraction of all
	// deliveries within the trailing window. Fractions sum to 1 when any
	// deliveries exist.
	ContentTypeShares(ctx context.Context, window time.Duration) (map[string]float64, error)
	// AuthorReputation returns the author's reputation in [0,1].
	AuthorReputation(ctx context.Context, authorID string) (float64, error)
	// SumExpenses returns the authoritative spend of a promotion: the sum
	// over its append-only expense ledger.
	SumExpenses(ctx context.Context, promotionID string) (int64, error)

	// CreatePromotion persists a new promotion row.
	CreatePromotion(ctx context.Context, p *domain.Promotion) error
	// EnqueueDeliveries inserts the plan's queue entries in one batch.
	EnqueueDeliveries(ctx context.Context, entries []domain.QueueEntry) error
	// ScheduleRefund persists the promotion's single refund task.
	ScheduleRefund(ctx context.Context, task *domain.RefundTask) error
	// CancelScheduledDeliveries cancels all still-scheduled entries of a
	// promotion with the given reason, returning how many were cancelled.
	CancelScheduledDeliveries(ctx context.Context, promotionID, reason string) (int64, error)
	// TransitionPromotionStatus performs a compare-and-set status update.
	// It reports false without error when the promotion was not in the
	// expected from status.
	TransitionPromotionStatus(ctx context.Context, promotionID, from, to string) (bool, error)
	// AppendLedgerCredit appends a credit for the user. The reference
	// carries a unique key so repeated refund attempts stay idempotent.
	AppendLedgerCredit(ctx context.Context, userID string, amount int64, reference string) error

	// DueRefundTasks returns scheduled refund tasks whose refund date has
	// passed, joined with each promotion's current total spend.
	DueRefundTasks(ctx context.Context, now time.Time) ([]DueRefund, error)
	// ExhaustedPromotions returns active, unexpired promotions whose
	// summed spend has reached the threshold share of budget.
	ExhaustedPromotions(ctx context.Context, threshold float64, now time.Time) ([]ExhaustedPromotion, error)
	// RefundTaskForPromotion returns the promotion's refund task, or nil
	// when absent.
	RefundTaskForPromotion(ctx context.Context, promotionID string) (*domain.RefundTask, error)
	// CompleteRefundTask marks a refund task completed with the credited
	// amount. The update is conditional on the task still being
	// scheduled; it reports false when the task was already terminal.
	CompleteRefundTask(ctx context.Context, taskID int64, amount int64) (bool, error)
	// FailRefundTask marks a refund task failed. Terminal.
	FailRefundTask(ctx context.Context, taskID int64) error
	// ResetDailyCounters zeroes per-user daily delivery counters whose
	// last reset precedes today, returning how many were reset.
	ResetDailyCounters(ctx context.Context, today time.Time) (int64, error)
}

// CandidateRow is one pre-scored candidate as read from the store.
type CandidateRow struct {
	UserID         string
	WealthLevel    domain.WealthTier
	Followers      int64
	RecentActivity float64
	AvgEngagement  float64
	Location       string
}

// DueRefund pairs a due refund task with its promotion's spend to date.
type DueRefund struct {
	Task       domain.RefundTask
	AuthorID   string
	TotalSpent int64
}

// ExhaustedPromotion pairs an over-threshold promotion with its spend.
type ExhaustedPromotion struct {
	Promotion  domain.Promotion
	TotalSpent int64
}
