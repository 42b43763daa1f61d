package reconciler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
	"promo-engine/internal/core/port/mocks"
)

func testReconciler(store port.CandidateStore) *Reconciler {
	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{
		RefundInterval:      time.Hour,
		ExhaustionInterval:  10 * time.Minute,
		ResetInterval:       24 * time.Hour,
		ExhaustionThreshold: 0.98,
	})
}

// TestRefundSweepCreditsUnspentBudget covers the natural end of life: a
// promotion with budget 100 and spend 40 at its refund date credits 60
// to the author and completes both the task and the promotion.
func TestRefundSweepCreditsUnspentBudget(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	due := []port.DueRefund{{
		Task: domain.RefundTask{
			ID:             7,
			PromotionID:    "promo-1",
			OriginalBudget: 100,
			Status:         domain.RefundScheduled,
		},
		AuthorID:   "author-1",
		TotalSpent: 40,
	}}
	repo.EXPECT().DueRefundTasks(mock.Anything, mock.Anything).Return(due, nil)
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusCompleted).
		Return(true, nil)
	repo.EXPECT().AppendLedgerCredit(mock.Anything, "author-1", int64(60), "promotion_refund:promo-1").Return(nil)
	repo.EXPECT().CompleteRefundTask(mock.Anything, int64(7), int64(60)).Return(true, nil)

	if err := testReconciler(repo).RefundSweep(context.Background()); err != nil {
		t.Fatalf("RefundSweep error: %v", err)
	}
}

// TestRefundSweepIsIdempotent runs the sweep twice over the same due
// task. The second run loses the compare-and-set and settles the task
// with a zero amount, without a second credit.
func TestRefundSweepIsIdempotent(t *testing.T) {
	due := []port.DueRefund{{
		Task:       domain.RefundTask{ID: 7, PromotionID: "promo-1", OriginalBudget: 100, Status: domain.RefundScheduled},
		AuthorID:   "author-1",
		TotalSpent: 40,
	}}

	repo := mocks.NewMockCandidateStore(t)
	repo.EXPECT().DueRefundTasks(mock.Anything, mock.Anything).Return(due, nil).Twice()
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusCompleted).
		Return(true, nil).Once()
	repo.EXPECT().AppendLedgerCredit(mock.Anything, "author-1", int64(60), "promotion_refund:promo-1").Return(nil).Once()
	repo.EXPECT().CompleteRefundTask(mock.Anything, int64(7), int64(60)).Return(true, nil).Once()
	// second run: transition fails, task settles at zero
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusCompleted).
		Return(false, nil).Once()
	repo.EXPECT().CompleteRefundTask(mock.Anything, int64(7), int64(0)).Return(false, nil).Once()

	r := testReconciler(repo)
	for i := 0; i < 2; i++ {
		if err := r.RefundSweep(context.Background()); err != nil {
			t.Fatalf("RefundSweep run %d error: %v", i+1, err)
		}
	}
}

// TestExhaustionSweepStopsEarly covers budget exhaustion: spend 99 of
// 100 stops the promotion, cancels its scheduled deliveries and credits
// the remaining 1.
func TestExhaustionSweepStopsEarly(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	exhausted := []port.ExhaustedPromotion{{
		Promotion: domain.Promotion{
			ID:          "promo-1",
			AuthorID:    "author-1",
			BudgetTotal: 100,
			Status:      domain.StatusActive,
		},
		TotalSpent: 99,
	}}
	repo.EXPECT().ExhaustedPromotions(mock.Anything, 0.98, mock.Anything).Return(exhausted, nil)
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusStoppedEarly).
		Return(true, nil)
	repo.EXPECT().CancelScheduledDeliveries(mock.Anything, "promo-1", domain.ReasonBudgetExhausted).
		Return(int64(12), nil)
	repo.EXPECT().RefundTaskForPromotion(mock.Anything, "promo-1").
		Return(&domain.RefundTask{ID: 7, PromotionID: "promo-1", OriginalBudget: 100, Status: domain.RefundScheduled}, nil)
	repo.EXPECT().AppendLedgerCredit(mock.Anything, "author-1", int64(1), "promotion_refund:promo-1").Return(nil)
	repo.EXPECT().CompleteRefundTask(mock.Anything, int64(7), int64(1)).Return(true, nil)

	if err := testReconciler(repo).ExhaustionSweep(context.Background()); err != nil {
		t.Fatalf("ExhaustionSweep error: %v", err)
	}
}

// TestExhaustionSweepLosesRace proves the mutual exclusion of terminal
// states: when the refund sweep already completed the promotion, the
// exhaustion sweep observes the lost compare-and-set and does nothing.
func TestExhaustionSweepLosesRace(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	exhausted := []port.ExhaustedPromotion{{
		Promotion:  domain.Promotion{ID: "promo-1", AuthorID: "author-1", BudgetTotal: 100},
		TotalSpent: 99,
	}}
	repo.EXPECT().ExhaustedPromotions(mock.Anything, 0.98, mock.Anything).Return(exhausted, nil)
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusStoppedEarly).
		Return(false, nil)

	if err := testReconciler(repo).ExhaustionSweep(context.Background()); err != nil {
		t.Fatalf("ExhaustionSweep error: %v", err)
	}
	// no cancellation, credit or task expectations: the mock fails the
	// test on any further store write
}

// TestRefundSweepContinuesAfterItemFailure ensures one failing item
// does not abort the rest of the batch.
func TestRefundSweepContinuesAfterItemFailure(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	due := []port.DueRefund{
		{Task: domain.RefundTask{ID: 1, PromotionID: "promo-bad", OriginalBudget: 100}, AuthorID: "a1", TotalSpent: 0},
		{Task: domain.RefundTask{ID: 2, PromotionID: "promo-good", OriginalBudget: 100}, AuthorID: "a2", TotalSpent: 100},
	}
	repo.EXPECT().DueRefundTasks(mock.Anything, mock.Anything).Return(due, nil)
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-bad", domain.StatusActive, domain.StatusCompleted).
		Return(false, context.DeadlineExceeded)
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-good", domain.StatusActive, domain.StatusCompleted).
		Return(true, nil)
	repo.EXPECT().CompleteRefundTask(mock.Anything, int64(2), int64(0)).Return(true, nil)

	if err := testReconciler(repo).RefundSweep(context.Background()); err != nil {
		t.Fatalf("RefundSweep error: %v", err)
	}
}

// TestStatsResetSweep resets stale daily counters.
func TestStatsResetSweep(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	repo.EXPECT().ResetDailyCounters(mock.Anything, mock.Anything).Return(int64(3), nil)

	if err := testReconciler(repo).StatsResetSweep(context.Background()); err != nil {
		t.Fatalf("StatsResetSweep error: %v", err)
	}
}
