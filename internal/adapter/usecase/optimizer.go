package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// Targeting split: the first primaryShare of the ranked targets form
// the primary segment.
const primaryShare = 0.7

// refundCapDays bounds how long after creation the scheduled refund
// runs, regardless of promotion duration.
const refundCapDays = 7

// currencyConversion converts predicted business value into ROI units.
const currencyConversion = 0.01

// businessKeywords feed the content business-potential heuristic.
var businessKeywords = []string{"sale", "exclusive", "limited", "premium", "new", "offer"}

// PromotionOptimizer orchestrates targeting, pricing and experience
// protection into a single allocation plan, and commits accepted plans
// to the store. It implements port.PromotionUseCase.
type PromotionOptimizer struct {
	store     port.CandidateStore
	targeting *TargetingEngine
	pricing   *PricingStrategy
	protector *ExperienceProtector
	now       func() time.Time
}

// NewPromotionOptimizer wires the optimizer and its sub-components onto
// one store.
func NewPromotionOptimizer(store port.CandidateStore) *PromotionOptimizer {
	return &PromotionOptimizer{
		store:     store,
		targeting: NewTargetingEngine(store),
		pricing:   NewPricingStrategy(),
		protector: NewExperienceProtector(store),
		now:       time.Now,
	}
}

// EstimatePromotion builds a plan without persisting anything.
func (o *PromotionOptimizer) EstimatePromotion(ctx context.Context, req port.PromotionRequest) (*domain.PromotionPlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return o.buildPlan(ctx, req)
}

// CreatePromotion builds a plan and commits it: the promotion row, the
// delivery queue materialized from the schedule, and the refund task. A
// plan with zero reach commits the promotion and its refund task but no
// queue entries.
func (o *PromotionOptimizer) CreatePromotion(ctx context.Context, req port.PromotionRequest) (*domain.PromotionPlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	plan, err := o.buildPlan(ctx, req)
	if err != nil {
		return nil, err
	}

	now := o.now()
	promotion := &domain.Promotion{
		ID:               uuid.NewString(),
		PostID:           req.PostID,
		AuthorID:         req.AuthorID,
		BudgetTotal:      req.Budget.Total,
		DurationDays:     req.Budget.Duration,
		WealthLevels:     req.Targeting.WealthLevels,
		PreferredRegions: req.Targeting.PreferredRegions,
		ExcludeFollowers: req.Targeting.ExcludeFollowers,
		Status:           domain.StatusActive,
		CreatedAt:        now,
		ExpiresAt:        now.AddDate(0, 0, req.Budget.Duration),
	}
	if err := o.store.CreatePromotion(ctx, promotion); err != nil {
		return nil, err
	}

	entries := queueEntries(promotion.ID, plan.Schedule)
	if len(entries) > 0 {
		if err := o.store.EnqueueDeliveries(ctx, entries); err != nil {
			return nil, err
		}
	}

	refundDays := req.Budget.Duration
	if refundDays > refundCapDays {
		refundDays = refundCapDays
	}
	task := &domain.RefundTask{
		PromotionID:    promotion.ID,
		OriginalBudget: req.Budget.Total,
		RefundDate:     now.AddDate(0, 0, refundDays),
		Status:         domain.RefundScheduled,
	}
	if err := o.store.ScheduleRefund(ctx, task); err != nil {
		return nil, err
	}
	return plan, nil
}

// StopPromotion terminates an active promotion early on the author's
// request. The status transition is compare-and-set; a loser observes
// the terminal status and reports a zero-value no-op.
func (o *PromotionOptimizer) StopPromotion(ctx context.Context, promotionID string) (*port.StopResult, error) {
	promotion, err := o.store.GetPromotion(ctx, promotionID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, port.ErrPromotionNotFound
	}

	won, err := o.store.TransitionPromotionStatus(ctx, promotionID, domain.StatusActive, domain.StatusStoppedEarly)
	if err != nil {
		return nil, err
	}
	if !won {
		return &port.StopResult{AlreadyTerminated: true}, nil
	}

	cancelled, err := o.store.CancelScheduledDeliveries(ctx, promotionID, domain.ReasonAuthorRequest)
	if err != nil {
		return nil, err
	}

	refund, err := o.settleRefund(ctx, promotion)
	if err != nil {
		return nil, err
	}
	return &port.StopResult{Stopped: true, CancelledEntries: cancelled, RefundAmount: refund}, nil
}

// settleRefund credits the unspent budget and completes the refund
// task. It is only called after winning the status transition; the task
// completion is itself conditional, so a task already settled by a
// sweep yields no second credit.
func (o *PromotionOptimizer) settleRefund(ctx context.Context, promotion *domain.Promotion) (int64, error) {
	task, err := o.store.RefundTaskForPromotion(ctx, promotion.ID)
	if err != nil {
		return 0, err
	}
	if task == nil || task.Status != domain.RefundScheduled {
		return 0, nil
	}
	spent, err := o.store.SumExpenses(ctx, promotion.ID)
	if err != nil {
		return 0, err
	}
	refund := promotion.BudgetTotal - spent
	if refund < 0 {
		refund = 0
	}
	won, err := o.store.CompleteRefundTask(ctx, task.ID, refund)
	if err != nil {
		return 0, err
	}
	if !won {
		return 0, nil
	}
	if refund > 0 {
		if err := o.store.AppendLedgerCredit(ctx, promotion.AuthorID, refund, "promotion_refund:"+promotion.ID); err != nil {
			return 0, err
		}
	}
	return refund, nil
}

// GetPromotion returns a promotion with its reconciled spend.
func (o *PromotionOptimizer) GetPromotion(ctx context.Context, promotionID string) (*port.PromotionStatus, error) {
	promotion, err := o.store.GetPromotion(ctx, promotionID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, port.ErrPromotionNotFound
	}
	spent, err := o.store.SumExpenses(ctx, promotionID)
	if err != nil {
		return nil, err
	}
	remaining := promotion.BudgetTotal - spent
	if remaining < 0 {
		remaining = 0
	}
	return &port.PromotionStatus{
		Promotion:  *promotion,
		TotalSpent: spent,
		Remaining:  remaining,
		AsOf:       o.now(),
	}, nil
}

// buildPlan runs the full pipeline: content fetch, targeting, safety
// gate, budget allocation, schedule and outcome prediction. Every
// numeric step is deterministic given identical inputs.
func (o *PromotionOptimizer) buildPlan(ctx context.Context, req port.PromotionRequest) (*domain.PromotionPlan, error) {
	content, err := o.store.GetContent(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, port.ErrContentNotFound
	}

	targets, err := o.targeting.FindTargets(ctx, content, req.Targeting)
	if err != nil {
		return nil, err
	}

	now := o.now()
	plan := &domain.PromotionPlan{
		PostID:     req.PostID,
		AuthorID:   req.AuthorID,
		Budget:     req.Budget.Total,
		TotalReach: len(targets),
		Allocation: map[domain.WealthTier]int64{},
		Schedule: domain.DeliverySchedule{
			DailyCohorts: make([][]domain.TargetUser, req.Budget.Duration),
			StartAt:      now,
		},
	}
	if len(targets) == 0 {
		// zero eligible targets is an empty plan, not an error
		return plan, nil
	}

	protection, err := o.protector.Protect(ctx, content, targets)
	if err != nil {
		return nil, err
	}
	if !protection.Approved {
		return nil, &port.SafetyError{Reason: protection.Reason}
	}
	plan.Safety = protection.Constraints

	counts := make(map[domain.WealthTier]int, len(req.Targeting.WealthLevels))
	for _, target := range targets {
		counts[target.WealthLevel]++
	}
	plan.Allocation = o.pricing.AllocateBudget(req.Budget.Total, req.Targeting.WealthLevels, counts)
	plan.Forecast = o.pricing.PredictConsumption(req.Budget.Total, targets, req.Budget.Duration, protection.QualityScore, now)

	plan.Schedule = buildSchedule(req.Budget.Total, targets, req.Budget.Duration, now)
	plan.Split = splitTargets(targets)
	plan.Outcome = o.predictOutcome(content, targets, req.Budget.Total, protection.QualityScore, now)
	return plan, nil
}

// splitTargets partitions the ranked targets 70/30 into primary and
// secondary segments, rounding down on the boundary.
func splitTargets(targets []domain.TargetUser) domain.TargetingSplit {
	cut := int(float64(len(targets)) * primaryShare)
	return domain.TargetingSplit{Primary: targets[:cut], Secondary: targets[cut:]}
}

// buildSchedule distributes the budget across 24 hourly buckets
// weighted by the targets' inferred activity hours, and partitions the
// targets into equal daily cohorts.
func buildSchedule(budget int64, targets []domain.TargetUser, duration int, startAt time.Time) domain.DeliverySchedule {
	var weights [24]float64
	for _, target := range targets {
		business := target.WealthLevel.Ordinal() >= domain.TierPlatinum.Ordinal()
		for h := 0; h < 24; h++ {
			w := 1.0
			if business && h >= 9 && h <= 18 {
				w = 2.0
			} else if !business && h >= 19 && h <= 23 {
				w = 2.0
			}
			weights[h] += w
		}
	}
	var sum float64
	heaviest := 0
	for h, w := range weights {
		sum += w
		if w > weights[heaviest] {
			heaviest = h
		}
	}

	schedule := domain.DeliverySchedule{
		DailyCohorts: partition(targets, duration),
		StartAt:      startAt,
	}
	var assigned int64
	for h, w := range weights {
		schedule.HourlyBudget[h] = int64(float64(budget) * w / sum)
		assigned += schedule.HourlyBudget[h]
	}
	schedule.HourlyBudget[heaviest] += budget - assigned
	return schedule
}

// queueEntries materializes one scheduled delivery per (day, recipient)
// slot of the schedule.
func queueEntries(promotionID string, schedule domain.DeliverySchedule) []domain.QueueEntry {
	var entries []domain.QueueEntry
	for day, cohort := range schedule.DailyCohorts {
		deliverAt := schedule.StartAt.AddDate(0, 0, day)
		for _, target := range cohort {
			entries = append(entries, domain.QueueEntry{
				PromotionID:       promotionID,
				UserID:            target.UserID,
				ScheduledDelivery: deliverAt,
				Status:            domain.DeliveryScheduled,
			})
		}
	}
	return entries
}

// predictOutcome derives the deterministic forecast attached to a plan.
func (o *PromotionOptimizer) predictOutcome(content *domain.Content, targets []domain.TargetUser, budget int64, quality float64, now time.Time) domain.PredictedOutcome {
	var viewCost, meanEngagement, meanRelevance, meanTierValue, meanInfluence float64
	for _, target := range targets {
		viewCost += float64(o.pricing.Price(domain.ActionView, target, quality, now))
		meanEngagement += target.EngagementProbability
		meanRelevance += target.RelevanceScore
		meanTierValue += target.WealthLevel.Value()
		meanInfluence += target.InfluenceMultiplier
	}
	n := float64(len(targets))
	viewCost /= n
	meanEngagement /= n
	meanRelevance /= n
	meanTierValue /= n
	meanInfluence /= n

	views := int64(float64(budget) / viewCost)
	outcome := domain.PredictedOutcome{
		EstimatedViews:      views,
		EstimatedClicks:     int64(0.12 * float64(views) * meanEngagement),
		EstimatedEngagement: int64(0.08 * float64(views) * meanEngagement),
		EstimatedFollows:    int64(0.02 * float64(views) * meanEngagement),
	}

	potential := businessPotential(content.Body)
	audienceValue := meanTierValue * meanInfluence
	businessValue := potential * audienceValue * n * currencyConversion
	outcome.ExpectedROI = businessValue / float64(budget)

	audienceQuality := meanEngagement * 100
	outcome.GoalProbability = clamp(0, 0.95,
		0.4+0.3*quality/100+0.2*audienceQuality/100+0.1*meanRelevance/100)
	return outcome
}

// businessPotential is a keyword heuristic over the post body: 20 base
// plus 20 per matched commercial keyword, capped at 100.
func businessPotential(body string) float64 {
	lower := strings.ToLower(body)
	score := 20.0
	for _, kw := range businessKeywords {
		if strings.Contains(lower, kw) {
			score += 20
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}
