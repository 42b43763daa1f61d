package usecase

import (
	"context"
	"sort"
	"strings"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// Candidate selection bounds. The store returns at most sourceCap rows;
// the ranked result is truncated to targetCap.
const (
	sourceCap = 2000
	targetCap = 1000
)

// TargetingEngine selects and scores candidate recipients within a
// caller-declared targeting framework. It is a pure function of its
// inputs plus the store snapshot; the candidate read is its only side
// effect.
type TargetingEngine struct {
	store port.CandidateStore
}

// NewTargetingEngine returns an engine backed by the given store.
func NewTargetingEngine(store port.CandidateStore) *TargetingEngine {
	return &TargetingEngine{store: store}
}

// FindTargets returns up to 1000 scored candidates ordered by their
// composite ranking value descending, ties broken by userId ascending
// for determinism.
func (e *TargetingEngine) FindTargets(ctx context.Context, content *domain.Content, targeting domain.Targeting) ([]domain.TargetUser, error) {
	rows, err := e.store.SelectCandidates(ctx, targeting, content.AuthorID)
	if err != nil {
		return nil, err
	}
	if len(rows) > sourceCap {
		rows = rows[:sourceCap]
	}

	targets := make([]domain.TargetUser, 0, len(rows))
	for _, row := range rows {
		targets = append(targets, scoreCandidate(row, content))
	}

	sort.Slice(targets, func(i, j int) bool {
		vi, vj := targets[i].RankValue(), targets[j].RankValue()
		if vi != vj {
			return vi > vj
		}
		return targets[i].UserID < targets[j].UserID
	})
	if len(targets) > targetCap {
		targets = targets[:targetCap]
	}
	return targets, nil
}

// scoreCandidate derives the three per-user scores from a candidate row
// and the promoted content.
func scoreCandidate(row port.CandidateRow, content *domain.Content) domain.TargetUser {
	relevance := clamp(0, 100,
		50+25*wealthMatch(row.WealthLevel, content)+
			15*geoRelevance(row.Location, content.Location)+
			10*activityMatch(row.RecentActivity, content.Engagement()))

	activityFactor := minf(1, row.RecentActivity/100)
	engagementFactor := minf(1, row.AvgEngagement/100)
	qualityFactor := minf(1, float64(content.Engagement())/500)
	engagement := minf(0.9, 0.3*(1+activityFactor+engagementFactor+qualityFactor))

	influence := 1 + minf(4, float64(row.Followers)*minf(1, row.AvgEngagement/100)/1000)

	return domain.TargetUser{
		UserID:                row.UserID,
		WealthLevel:           row.WealthLevel,
		RelevanceScore:        relevance,
		EngagementProbability: engagement,
		InfluenceMultiplier:   influence,
		Location:              row.Location,
	}
}

// wealthMatch is 1.0 when the content declares the user's tier as a
// target. Otherwise it degrades to the value ratio between the user's
// tier and the mean declared tier, so a diamond user still scores well
// against platinum-targeted content. Content declaring no tiers yields
// a neutral 0.5.
func wealthMatch(tier domain.WealthTier, content *domain.Content) float64 {
	if len(content.TargetWealthLevels) == 0 {
		return 0.5
	}
	mean := 0.0
	for _, t := range content.TargetWealthLevels {
		if t == tier {
			return 1.0
		}
		mean += t.Value()
	}
	mean /= float64(len(content.TargetWealthLevels))
	uv := tier.Value()
	if uv > mean {
		return mean / uv
	}
	return uv / mean
}

// geoRelevance compares locations of the form "country/region".
func geoRelevance(userLoc, contentLoc string) float64 {
	if userLoc == "" || contentLoc == "" {
		return 0.5
	}
	if userLoc == contentLoc {
		return 1.0
	}
	if country(userLoc) == country(contentLoc) {
		return 0.8
	}
	return 0.2
}

func country(loc string) string {
	if i := strings.IndexByte(loc, '/'); i >= 0 {
		return loc[:i]
	}
	return loc
}

// activityMatch steps on whether the user is recently active and the
// content already draws engagement.
func activityMatch(recentActivity float64, contentEngagement int64) float64 {
	userHigh := recentActivity >= 50
	contentHigh := contentEngagement >= 100
	switch {
	case userHigh && contentHigh:
		return 1.0
	case userHigh:
		return 0.8
	case contentHigh:
		return 0.6
	default:
		return 0.4
	}
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
