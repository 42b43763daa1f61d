package port

import (
	"context"
	"errors"
	"fmt"
	"time"

	"promo-engine/internal/core/domain"
)

// ErrContentNotFound is returned when the promoted post does not exist.
var ErrContentNotFound = errors.New("content not found")

// ErrPromotionNotFound is returned when the referenced promotion does
// not exist.
var ErrPromotionNotFound = errors.New("promotion not found")

// ValidationError reports a malformed or out-of-range request field. No
// side effects have been performed when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SafetyError reports that the experience-protection gate rejected the
// promotion. Reason is one of the protector's rejection reasons.
type SafetyError struct {
	Reason string
}

func (e *SafetyError) Error() string {
	return fmt.Sprintf("promotion rejected: %s", e.Reason)
}

// PromotionUseCase defines the business operations exposed by the
// promotion engine. This interface is the primary port into the
// application domain.
type PromotionUseCase interface {
	// CreatePromotion validates the request, builds an allocation plan,
	// and commits it: the promotion row, its delivery queue and its
	// refund task. A request targeting zero eligible users succeeds with
	// an empty plan and writes nothing beyond the promotion itself.
	CreatePromotion(ctx context.Context, req PromotionRequest) (*domain.PromotionPlan, error)

	// EstimatePromotion builds the same plan without persisting anything.
	EstimatePromotion(ctx context.Context, req PromotionRequest) (*domain.PromotionPlan, error)

	// StopPromotion terminates an active promotion early: cancels its
	// scheduled deliveries, transitions it to stopped_early and refunds
	// the unspent budget. Stopping an already-terminated promotion is a
	// zero-value no-op.
	StopPromotion(ctx context.Context, promotionID string) (*StopResult, error)

	// GetPromotion returns a promotion with its spend to date.
	GetPromotion(ctx context.Context, promotionID string) (*PromotionStatus, error)
}

// BudgetRequest carries the monetary parameters of a promotion request.
// Total is in the currency's smallest unit. DailyLimit is advisory.
type BudgetRequest struct {
	Total      int64  `json:"total"`
	DailyLimit *int64 `json:"dailyLimit,omitempty"`
	Duration   int    `json:"duration"`
}

// PromotionRequest is the plain-data input to plan generation. No
// transport or authentication concerns belong here.
type PromotionRequest struct {
	AuthorID  string           `json:"authorId"`
	PostID    string           `json:"postId"`
	Budget    BudgetRequest    `json:"budget"`
	Targeting domain.Targeting `json:"targeting"`
	Goals     []string         `json:"goals,omitempty"`
}

// StopResult reports the effect of an early stop.
type StopResult struct {
	Stopped           bool  `json:"stopped"`
	CancelledEntries  int64 `json:"cancelledEntries"`
	RefundAmount      int64 `json:"refundAmount"`
	AlreadyTerminated bool  `json:"alreadyTerminated"`
}

// PromotionStatus is a promotion with its reconciled spend figures.
type PromotionStatus struct {
	Promotion  domain.Promotion `json:"promotion"`
	TotalSpent int64            `json:"totalSpent"`
	Remaining  int64            `json:"remaining"`
	AsOf       time.Time        `json:"asOf"`
}
