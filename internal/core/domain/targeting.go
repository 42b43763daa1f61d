package domain

// Targeting describes which users a promotion may reach.
type Targeting struct {
	WealthLevels     []WealthTier `json:"wealthLevels"`
	PreferredRegions []string     `json:"preferredRegions,omitempty"`
	ExcludeFollowers bool         `json:"excludeFollowers"`
}
