package usecase

import (
	"testing"
	"time"

	"promo-engine/internal/core/domain"
)

// TestAllocateBudgetSumsExactly ensures per-tier allocations always add
// up to the requested total, with the remainder assigned to the
// highest-ROI tier.
func TestAllocateBudgetSumsExactly(t *testing.T) {
	s := NewPricingStrategy()
	tiers := []domain.WealthTier{domain.TierBronze, domain.TierGold, domain.TierWhale}
	counts := map[domain.WealthTier]int{
		domain.TierBronze: 10,
		domain.TierGold:   7,
		domain.TierWhale:  1,
	}

	for _, total := range []int64{100, 101, 999, 1000, 333333, 10_000_000} {
		alloc := s.AllocateBudget(total, tiers, counts)
		var sum int64
		for _, v := range alloc {
			sum += v
		}
		if sum != total {
			t.Fatalf("allocation for total %d sums to %d", total, sum)
		}
	}
}

// TestAllocateBudgetSkipsEmptyTiers ensures tiers without expected
// actions receive nothing.
func TestAllocateBudgetSkipsEmptyTiers(t *testing.T) {
	s := NewPricingStrategy()
	tiers := []domain.WealthTier{domain.TierSilver, domain.TierWhale}
	counts := map[domain.WealthTier]int{domain.TierSilver: 5}

	alloc := s.AllocateBudget(1000, tiers, counts)
	if alloc[domain.TierWhale] != 0 {
		t.Fatalf("whale tier allocated %d without expected actions", alloc[domain.TierWhale])
	}
	if alloc[domain.TierSilver] != 1000 {
		t.Fatalf("silver tier allocated %d, want 1000", alloc[domain.TierSilver])
	}
}

// TestPriceIsPositiveInteger sweeps the price table across tiers and
// discount extremes: the ceiling must never round to zero.
func TestPriceIsPositiveInteger(t *testing.T) {
	s := NewPricingStrategy()
	at := time.Date(2025, 3, 4, 3, 0, 0, 0, time.UTC) // off-peak hour

	actions := []string{
		domain.ActionView, domain.ActionLike, domain.ActionReply,
		domain.ActionShare, domain.ActionFollow, domain.ActionUnlock,
	}
	for _, tier := range domain.Tiers {
		for _, action := range actions {
			target := domain.TargetUser{
				WealthLevel:    tier,
				RelevanceScore: 95, // steepest relevance discount
			}
			if p := s.Price(action, target, 95, at); p < 1 {
				t.Fatalf("price(%s, %s) = %d, want >= 1", action, tier, p)
			}
		}
	}
}

// TestPriceAppliesQualityDiscount verifies high-quality content prices
// below low-quality content for the same target.
func TestPriceAppliesQualityDiscount(t *testing.T) {
	s := NewPricingStrategy()
	at := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	target := domain.TargetUser{WealthLevel: domain.TierGold, RelevanceScore: 70}

	high := s.Price(domain.ActionFollow, target, 95, at)
	low := s.Price(domain.ActionFollow, target, 30, at)
	if high >= low {
		t.Fatalf("quality discount not applied: high=%d low=%d", high, low)
	}
}

// TestPredictConsumptionSuggestsShorterDuration verifies the advisory
// remediation when projected spend exceeds the budget.
func TestPredictConsumptionSuggestsShorterDuration(t *testing.T) {
	s := NewPricingStrategy()
	at := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	targets := make([]domain.TargetUser, 200)
	for i := range targets {
		targets[i] = domain.TargetUser{
			WealthLevel:           domain.TierWhale,
			RelevanceScore:        50,
			EngagementProbability: 0.9,
			InfluenceMultiplier:   2,
		}
	}

	forecast := s.PredictConsumption(100, targets, 10, 50, at)
	if len(forecast.DailySpend) != 10 {
		t.Fatalf("expected 10 daily buckets, got %d", len(forecast.DailySpend))
	}
	if forecast.Total <= 100 {
		t.Fatalf("expected projection above budget, got %d", forecast.Total)
	}
	if forecast.SuggestedDuration < 1 || forecast.SuggestedDuration >= 10 {
		t.Fatalf("suggested duration %d out of range", forecast.SuggestedDuration)
	}
}

// TestPredictConsumptionWithinBudget verifies no remediation is
// proposed when the budget covers the projection.
func TestPredictConsumptionWithinBudget(t *testing.T) {
	s := NewPricingStrategy()
	at := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	targets := []domain.TargetUser{{
		WealthLevel:           domain.TierSilver,
		RelevanceScore:        70,
		EngagementProbability: 0.3,
	}}
	forecast := s.PredictConsumption(10_000, targets, 3, 80, at)
	if forecast.SuggestedDuration != 0 {
		t.Fatalf("unexpected remediation: %d", forecast.SuggestedDuration)
	}
	if forecast.Remaining != 10_000-forecast.Total {
		t.Fatalf("remaining %d inconsistent with total %d", forecast.Remaining, forecast.Total)
	}
}

// TestLegacyPriorityDecay keeps the compatibility formula's freshness
// decay intact: a 48h-old promotion loses the entire freshness bonus.
func TestLegacyPriorityDecay(t *testing.T) {
	fresh := LegacyPriority(1000, 0, 10)
	stale := LegacyPriority(1000, 48, 10)
	if fresh-stale != 24 {
		t.Fatalf("freshness decay = %v, want 24", fresh-stale)
	}
	if older := LegacyPriority(1000, 100, 10); older != stale {
		t.Fatalf("freshness bonus went negative: %v != %v", older, stale)
	}
}
