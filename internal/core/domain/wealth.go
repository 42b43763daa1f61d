package domain

// WealthTier is an ordinal user segment. It drives both targeting
// eligibility and monetary-value multipliers.
type WealthTier string

const (
	TierStarter  WealthTier = "starter"
	TierBronze   WealthTier = "bronze"
	TierSilver   WealthTier = "silver"
	TierGold     WealthTier = "gold"
	TierPlatinum WealthTier = "platinum"
	TierDiamond  WealthTier = "diamond"
	TierElite    WealthTier = "elite"
	TierTycoon   WealthTier = "tycoon"
	TierWhale    WealthTier = "whale"
)

// Tiers lists all wealth tiers in ascending order.
var Tiers = []WealthTier{
	TierStarter, TierBronze, TierSilver, TierGold, TierPlatinum,
	TierDiamond, TierElite, TierTycoon, TierWhale,
}

// tierValues maps each tier to its monetary multiplier. Values are
// strictly increasing across the nine tiers.
var tierValues = map[WealthTier]float64{
	TierStarter:  0.5,
	TierBronze:   0.8,
	TierSilver:   1.0,
	TierGold:     1.5,
	TierPlatinum: 2.0,
	TierDiamond:  3.0,
	TierElite:    5.0,
	TierTycoon:   10.0,
	TierWhale:    20.0,
}

// Value returns the tier's monetary multiplier. Unknown tiers map to the
// silver baseline of 1.0.
func (t WealthTier) Value() float64 {
	if v, ok := tierValues[t]; ok {
		return v
	}
	return 1.0
}

// Valid reports whether t names one of the nine known tiers.
func (t WealthTier) Valid() bool {
	_, ok := tierValues[t]
	return ok
}

// Ordinal returns the tier's position in the ladder, starting at 0.
// Unknown tiers return the silver position.
func (t WealthTier) Ordinal() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return 2
}
