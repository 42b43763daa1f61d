package domain

import "time"

// PromotionPlan is the full allocation produced by one optimization
// pass. It is consumed immediately to materialize queue entries and is
// not itself persisted.
type PromotionPlan struct {
	PostID     string
	AuthorID   string
	Budget     int64
	TotalReach int

	Allocation map[WealthTier]int64
	Split      TargetingSplit
	Schedule   DeliverySchedule
	Outcome    PredictedOutcome
	Safety     SafetyConstraints
	Forecast   ConsumptionForecast
}

// TargetingSplit partitions the ranked targets into a primary segment
// (first 70%) and a secondary segment (the rest).
type TargetingSplit struct {
	Primary   []TargetUser
	Secondary []TargetUser
}

// DeliverySchedule spreads the allocation over hours of day and splits
// targets into equal daily cohorts.
type DeliverySchedule struct {
	HourlyBudget [24]int64
	DailyCohorts [][]TargetUser
	StartAt      time.Time
}

// PredictedOutcome is the deterministic forecast attached to a plan.
type PredictedOutcome struct {
	EstimatedViews      int64
	EstimatedClicks     int64
	EstimatedEngagement int64
	EstimatedFollows    int64
	ExpectedROI         float64
	GoalProbability     float64
}

// SafetyConstraints echoes the experience-protection caps a committed
// plan must observe.
type SafetyConstraints struct {
	MaxDailyFrequency int
	MinOrganicGap     int
	QualityThreshold  float64
	SafetyScore       float64
}

// ConsumptionForecast is the advisory spend projection returned by the
// pricing strategy. SuggestedDuration is zero when the budget covers
// the full duration.
type ConsumptionForecast struct {
	DailySpend        []int64
	Total             int64
	Remaining         int64
	SuggestedDuration int
}
