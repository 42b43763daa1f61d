package domain

// TargetUser is a scored candidate recipient. It is computed fresh per
// optimization call and never persisted.
type TargetUser struct {
	UserID                string
	WealthLevel           WealthTier
	RelevanceScore        float64 // [0,100]
	EngagementProbability float64 // [0,0.9]
	InfluenceMultiplier   float64 // [1,5]
	Location              string  // empty when unknown
}

// RankValue is the composite ordering key used to rank candidates.
// Higher is better.
func (t TargetUser) RankValue() float64 {
	return t.RelevanceScore * t.EngagementProbability * t.InfluenceMultiplier * t.WealthLevel.Value()
}
