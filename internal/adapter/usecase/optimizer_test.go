package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
	"promo-engine/internal/core/port/mocks"
)

func testRequest() port.PromotionRequest {
	return port.PromotionRequest{
		AuthorID: "author-1",
		PostID:   "post-1",
		Budget:   port.BudgetRequest{Total: 10_000, Duration: 7},
		Targeting: domain.Targeting{
			WealthLevels: []domain.WealthTier{domain.TierGold, domain.TierPlatinum},
		},
	}
}

// expectProtectionPass arms the store reads the safety gate performs on
// its happy path.
func expectProtectionPass(repo *mocks.MockCandidateStore) {
	repo.EXPECT().AuthorReputation(mock.Anything, "author-1").Return(0.8, nil)
	repo.EXPECT().RecentDeliveryCount(mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
	repo.EXPECT().AuthorDeliveryCount(mock.Anything, "author-1", mock.Anything).Return(0, nil)
	repo.EXPECT().ContentTypeShares(mock.Anything, mock.Anything).Return(nil, nil)
}

// TestCreateWithZeroCandidates commits a promotion with an empty plan:
// zero reach, no queue entries, no error. The refund task still returns
// the full budget at end of life.
func TestCreateWithZeroCandidates(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	repo.EXPECT().GetContent(mock.Anything, "post-1").Return(testContent(), nil)
	repo.EXPECT().SelectCandidates(mock.Anything, mock.Anything, "author-1").Return(nil, nil)
	repo.EXPECT().CreatePromotion(mock.Anything, mock.AnythingOfType("*domain.Promotion")).Return(nil)
	repo.EXPECT().ScheduleRefund(mock.Anything, mock.AnythingOfType("*domain.RefundTask")).Return(nil)

	svc := NewPromotionOptimizer(repo)
	req := testRequest()
	req.Targeting.WealthLevels = []domain.WealthTier{domain.TierWhale}

	plan, err := svc.CreatePromotion(context.Background(), req)
	if err != nil {
		t.Fatalf("CreatePromotion error: %v", err)
	}
	if plan.TotalReach != 0 {
		t.Fatalf("expected zero reach, got %d", plan.TotalReach)
	}
	// no EnqueueDeliveries expectation: the mock fails the test if the
	// optimizer tries to enqueue anything
}

// TestCreateContentNotFound aborts before any writes when the post is
// absent.
func TestCreateContentNotFound(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	repo.EXPECT().GetContent(mock.Anything, "post-1").Return(nil, nil)

	svc := NewPromotionOptimizer(repo)
	_, err := svc.CreatePromotion(context.Background(), testRequest())
	if !errors.Is(err, port.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

// TestCreateValidation rejects out-of-range requests without touching
// the store.
func TestCreateValidation(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	svc := NewPromotionOptimizer(repo)

	req := testRequest()
	req.Budget.Total = 1
	var validationErr *port.ValidationError
	if _, err := svc.CreatePromotion(context.Background(), req); !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	req = testRequest()
	req.Targeting.WealthLevels = []domain.WealthTier{"oligarch"}
	if _, err := svc.CreatePromotion(context.Background(), req); !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestEstimatePlanShape verifies the plan's invariants: 70/30 split,
// hourly budget summing to the total, duration-sized cohorts, and no
// writes whatsoever.
func TestEstimatePlanShape(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	rows := make([]port.CandidateRow, 10)
	for i := range rows {
		rows[i] = port.CandidateRow{
			UserID:         string(rune('a' + i)),
			WealthLevel:    domain.TierGold,
			RecentActivity: 60,
			AvgEngagement:  40,
			Location:       "us/ca",
		}
	}
	repo.EXPECT().GetContent(mock.Anything, "post-1").Return(testContent(), nil)
	repo.EXPECT().SelectCandidates(mock.Anything, mock.Anything, "author-1").Return(rows, nil)
	expectProtectionPass(repo)

	svc := NewPromotionOptimizer(repo)
	plan, err := svc.EstimatePromotion(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("EstimatePromotion error: %v", err)
	}

	if plan.TotalReach != 10 {
		t.Fatalf("reach = %d, want 10", plan.TotalReach)
	}
	if len(plan.Split.Primary) != 7 || len(plan.Split.Secondary) != 3 {
		t.Fatalf("split = %d/%d, want 7/3", len(plan.Split.Primary), len(plan.Split.Secondary))
	}
	var hourly int64
	for _, b := range plan.Schedule.HourlyBudget {
		hourly += b
	}
	if hourly != 10_000 {
		t.Fatalf("hourly budget sums to %d, want 10000", hourly)
	}
	if len(plan.Schedule.DailyCohorts) != 7 {
		t.Fatalf("cohorts = %d, want 7", len(plan.Schedule.DailyCohorts))
	}
	var alloc int64
	for _, v := range plan.Allocation {
		alloc += v
	}
	if alloc != 10_000 {
		t.Fatalf("allocation sums to %d, want 10000", alloc)
	}
	if plan.Outcome.GoalProbability < 0 || plan.Outcome.GoalProbability > 0.95 {
		t.Fatalf("goal probability %v out of range", plan.Outcome.GoalProbability)
	}
}

// TestCreateCommitsPlan verifies creation persists the promotion, the
// full delivery queue and a refund task capped at seven days out.
func TestCreateCommitsPlan(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	rows := make([]port.CandidateRow, 6)
	for i := range rows {
		rows[i] = port.CandidateRow{
			UserID:      string(rune('a' + i)),
			WealthLevel: domain.TierGold,
			Location:    "us/ca",
		}
	}
	repo.EXPECT().GetContent(mock.Anything, "post-1").Return(testContent(), nil)
	repo.EXPECT().SelectCandidates(mock.Anything, mock.Anything, "author-1").Return(rows, nil)
	expectProtectionPass(repo)

	var created *domain.Promotion
	repo.EXPECT().CreatePromotion(mock.Anything, mock.AnythingOfType("*domain.Promotion")).
		Run(func(_ context.Context, p *domain.Promotion) { created = p }).Return(nil)
	var entries []domain.QueueEntry
	repo.EXPECT().EnqueueDeliveries(mock.Anything, mock.AnythingOfType("[]domain.QueueEntry")).
		Run(func(_ context.Context, e []domain.QueueEntry) { entries = e }).Return(nil)
	var task *domain.RefundTask
	repo.EXPECT().ScheduleRefund(mock.Anything, mock.AnythingOfType("*domain.RefundTask")).
		Run(func(_ context.Context, rt *domain.RefundTask) { task = rt }).Return(nil)

	svc := NewPromotionOptimizer(repo)
	req := testRequest()
	req.Budget.Duration = 14

	if _, err := svc.CreatePromotion(context.Background(), req); err != nil {
		t.Fatalf("CreatePromotion error: %v", err)
	}
	if created == nil || created.Status != domain.StatusActive {
		t.Fatalf("promotion not created active: %+v", created)
	}
	if len(entries) != 6 {
		t.Fatalf("queued %d entries, want 6", len(entries))
	}
	for _, e := range entries {
		if e.PromotionID != created.ID || e.Status != domain.DeliveryScheduled {
			t.Fatalf("malformed entry: %+v", e)
		}
	}
	if task == nil || task.Status != domain.RefundScheduled {
		t.Fatalf("refund task not scheduled: %+v", task)
	}
	if got := task.RefundDate.Sub(created.CreatedAt); got != 7*24*time.Hour {
		t.Fatalf("refund date offset = %v, want 168h", got)
	}
}

// TestStopPromotion verifies the early-stop path credits the unspent
// budget once, and that a second stop is a zero-value no-op.
func TestStopPromotion(t *testing.T) {
	promo := &domain.Promotion{
		ID:          "promo-1",
		AuthorID:    "author-1",
		BudgetTotal: 100,
		Status:      domain.StatusActive,
	}

	repo := mocks.NewMockCandidateStore(t)
	repo.EXPECT().GetPromotion(mock.Anything, "promo-1").Return(promo, nil)
	repo.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusStoppedEarly).
		Return(true, nil)
	repo.EXPECT().CancelScheduledDeliveries(mock.Anything, "promo-1", domain.ReasonAuthorRequest).
		Return(int64(5), nil)
	repo.EXPECT().RefundTaskForPromotion(mock.Anything, "promo-1").
		Return(&domain.RefundTask{ID: 9, PromotionID: "promo-1", OriginalBudget: 100, Status: domain.RefundScheduled}, nil)
	repo.EXPECT().SumExpenses(mock.Anything, "promo-1").Return(int64(40), nil)
	repo.EXPECT().CompleteRefundTask(mock.Anything, int64(9), int64(60)).Return(true, nil)
	repo.EXPECT().AppendLedgerCredit(mock.Anything, "author-1", int64(60), "promotion_refund:promo-1").Return(nil)

	svc := NewPromotionOptimizer(repo)
	result, err := svc.StopPromotion(context.Background(), "promo-1")
	if err != nil {
		t.Fatalf("StopPromotion error: %v", err)
	}
	if !result.Stopped || result.RefundAmount != 60 || result.CancelledEntries != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}

	// second stop loses the compare-and-set and performs nothing else
	repo2 := mocks.NewMockCandidateStore(t)
	repo2.EXPECT().GetPromotion(mock.Anything, "promo-1").Return(promo, nil)
	repo2.EXPECT().TransitionPromotionStatus(mock.Anything, "promo-1", domain.StatusActive, domain.StatusStoppedEarly).
		Return(false, nil)

	svc2 := NewPromotionOptimizer(repo2)
	result2, err := svc2.StopPromotion(context.Background(), "promo-1")
	if err != nil {
		t.Fatalf("StopPromotion error: %v", err)
	}
	if !result2.AlreadyTerminated || result2.RefundAmount != 0 {
		t.Fatalf("expected no-op, got %+v", result2)
	}
}
