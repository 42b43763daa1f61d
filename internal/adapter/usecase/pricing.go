package usecase

import (
	"math"
	"time"

	"promo-engine/internal/core/domain"
)

// basePrices is the fixed price table per action type, in the currency's
// smallest unit.
var basePrices = map[string]int64{
	domain.ActionView:   1,
	domain.ActionLike:   3,
	domain.ActionReply:  5,
	domain.ActionShare:  8,
	domain.ActionFollow: 12,
	domain.ActionUnlock: 15,
}

// regionMultipliers adjusts demand by country. Unknown regions price at
// the baseline.
var regionMultipliers = map[string]float64{
	"us":   1.3,
	"eu":   1.2,
	"asia": 1.1,
}

// tierStats holds the assumed per-tier economics used for budget
// allocation: conversion rate, average action value and average action
// cost in currency units.
type tierStats struct {
	conversionRate float64
	averageValue   float64
	averageCost    float64
}

var tierEconomics = map[domain.WealthTier]tierStats{
	domain.TierStarter:  {0.010, 5, 2},
	domain.TierBronze:   {0.012, 8, 3},
	domain.TierSilver:   {0.015, 12, 4},
	domain.TierGold:     {0.018, 20, 6},
	domain.TierPlatinum: {0.020, 35, 8},
	domain.TierDiamond:  {0.022, 60, 12},
	domain.TierElite:    {0.025, 110, 20},
	domain.TierTycoon:   {0.028, 250, 40},
	domain.TierWhale:    {0.030, 600, 80},
}

// actionShares weights each action type's expected frequency relative to
// a view when forecasting consumption.
var actionShares = map[string]float64{
	domain.ActionView:   1.0,
	domain.ActionLike:   0.25,
	domain.ActionReply:  0.12,
	domain.ActionShare:  0.08,
	domain.ActionFollow: 0.05,
	domain.ActionUnlock: 0.02,
}

// PricingStrategy computes action-level prices and splits a budget
// across wealth tiers. It holds no mutable state.
type PricingStrategy struct{}

// NewPricingStrategy returns the pricing strategy.
func NewPricingStrategy() *PricingStrategy {
	return &PricingStrategy{}
}

// Price returns the dynamic price of one action for one target user at
// the given time. The result is always a positive integer: the product
// of base price and multipliers is ceiled, never rounded to zero.
func (s *PricingStrategy) Price(action string, target domain.TargetUser, contentQuality float64, at time.Time) int64 {
	base, ok := basePrices[action]
	if !ok {
		base = basePrices[domain.ActionView]
	}
	price := float64(base) *
		target.WealthLevel.Value() *
		s.demandMultiplier(at, target.Location) *
		qualityDiscount(contentQuality) *
		relevanceDiscount(target.RelevanceScore)
	p := int64(math.Ceil(price))
	if p < 1 {
		p = 1
	}
	return p
}

// demandMultiplier reflects hour-of-day demand bands, the weekend
// premium and the per-region market adjustment.
func (s *PricingStrategy) demandMultiplier(at time.Time, location string) float64 {
	m := 0.8
	switch h := at.Hour(); {
	case h >= 9 && h <= 18:
		m = 1.2
	case h >= 19 && h <= 23:
		m = 1.3
	}
	if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
		m *= 1.15
	}
	if rm, ok := regionMultipliers[country(location)]; ok {
		m *= rm
	}
	return m
}

func qualityDiscount(quality float64) float64 {
	switch {
	case quality >= 90:
		return 0.7
	case quality >= 75:
		return 0.8
	case quality >= 60:
		return 0.9
	default:
		return 1.2
	}
}

func relevanceDiscount(relevance float64) float64 {
	switch {
	case relevance >= 80:
		return 0.8
	case relevance >= 60:
		return 0.9
	default:
		return 1.1
	}
}

// AllocateBudget splits total across the given tiers proportionally to
// each tier's ROI (conversionRate times averageValue over averageCost).
// Tiers with no expected actions receive nothing. The remainder after
// proportional division is assigned to the highest-ROI tier so the
// allocations always sum to total exactly.
func (s *PricingStrategy) AllocateBudget(total int64, tiers []domain.WealthTier, expectedActions map[domain.WealthTier]int) map[domain.WealthTier]int64 {
	alloc := make(map[domain.WealthTier]int64, len(tiers))
	if total <= 0 || len(tiers) == 0 {
		return alloc
	}

	rois := make(map[domain.WealthTier]float64, len(tiers))
	var sum float64
	var best domain.WealthTier
	bestROI := -1.0
	for _, tier := range tiers {
		if expectedActions[tier] == 0 {
			continue
		}
		st, ok := tierEconomics[tier]
		if !ok {
			st = tierEconomics[domain.TierSilver]
		}
		roi := st.conversionRate * st.averageValue / st.averageCost
		rois[tier] = roi
		sum += roi
		if roi > bestROI {
			bestROI = roi
			best = tier
		}
	}
	if sum == 0 {
		return alloc
	}

	var assigned int64
	for tier, roi := range rois {
		share := int64(float64(total) * roi / sum)
		alloc[tier] = share
		assigned += share
	}
	// floating remainder goes to the highest-ROI tier
	alloc[best] += total - assigned
	return alloc
}

// PredictConsumption projects daily spend by partitioning targets into
// duration equal cohorts and summing each cohort's expected spend: for
// every user, the price of each action type weighted by the user's
// probability of performing it. When the projection exceeds the budget
// it proposes a shorter duration, informational only.
func (s *PricingStrategy) PredictConsumption(budget int64, targets []domain.TargetUser, duration int, contentQuality float64, at time.Time) domain.ConsumptionForecast {
	if duration < 1 {
		duration = 1
	}
	forecast := domain.ConsumptionForecast{DailySpend: make([]int64, duration)}

	cohorts := partition(targets, duration)
	for day, cohort := range cohorts {
		var spend float64
		for _, target := range cohort {
			for action, share := range actionShares {
				price := s.Price(action, target, contentQuality, at)
				spend += float64(price) * share * target.EngagementProbability
			}
		}
		forecast.DailySpend[day] = int64(math.Round(spend))
		forecast.Total += forecast.DailySpend[day]
	}

	if forecast.Total < budget {
		forecast.Remaining = budget - forecast.Total
	}
	if forecast.Total > budget && forecast.Total > 0 {
		suggested := int(float64(duration) * float64(budget) / float64(forecast.Total))
		if suggested < 1 {
			suggested = 1
		}
		forecast.SuggestedDuration = suggested
	}
	return forecast
}

// partition splits targets into n equal cohorts by ceiling division.
// The last cohort may be short.
func partition(targets []domain.TargetUser, n int) [][]domain.TargetUser {
	cohorts := make([][]domain.TargetUser, n)
	if len(targets) == 0 {
		return cohorts
	}
	size := (len(targets) + n - 1) / n
	for i := range cohorts {
		lo := i * size
		if lo >= len(targets) {
			break
		}
		hi := lo + size
		if hi > len(targets) {
			hi = len(targets)
		}
		cohorts[i] = targets[lo:hi]
	}
	return cohorts
}

// LegacyPriority is the older feed-ranking formula, kept for callers
// that still order promotions by it. It predates the composite ranking
// value and intentionally remains a distinct formula: budget weight, a
// decay over the first 48 hours, and an engagement bonus.
func LegacyPriority(budgetTotal int64, ageHours, engagement float64) float64 {
	freshness := 48 - ageHours
	if freshness < 0 {
		freshness = 0
	}
	return float64(budgetTotal)/100 + freshness/2 + engagement*1.5
}
