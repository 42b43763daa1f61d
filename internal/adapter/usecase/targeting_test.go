package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
	"promo-engine/internal/core/port/mocks"
)

func testContent() *domain.Content {
	return &domain.Content{
		PostID:             "post-1",
		AuthorID:           "author-1",
		Likes:              80,
		Replies:            30,
		Shares:             10,
		Body:               "A long enough body describing a premium offer for the fall collection with plenty of detail to qualify as substantial content rather than a throwaway line.",
		TargetWealthLevels: []domain.WealthTier{domain.TierGold, domain.TierPlatinum},
		Location:           "us/ca",
		ContentType:        "post",
		CreatedAt:          time.Now().Add(-24 * time.Hour),
	}
}

// TestFindTargetsScoreBounds verifies every derived score stays inside
// its documented range even for extreme candidate rows.
func TestFindTargetsScoreBounds(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	rows := []port.CandidateRow{
		{UserID: "u1", WealthLevel: domain.TierWhale, Followers: 10_000_000, RecentActivity: 100_000, AvgEngagement: 100_000, Location: "us/ca"},
		{UserID: "u2", WealthLevel: domain.TierStarter, Followers: 0, RecentActivity: 0, AvgEngagement: 0},
		{UserID: "u3", WealthLevel: domain.TierGold, Followers: 500, RecentActivity: 60, AvgEngagement: 40, Location: "eu/de"},
	}
	repo.EXPECT().SelectCandidates(mock.Anything, mock.Anything, "author-1").Return(rows, nil)

	engine := NewTargetingEngine(repo)
	targets, err := engine.FindTargets(context.Background(), testContent(), domain.Targeting{})
	if err != nil {
		t.Fatalf("FindTargets error: %v", err)
	}
	if len(targets) != 3 {
		t.Fatalf("expected 3 targets, got %d", len(targets))
	}
	for _, target := range targets {
		if target.RelevanceScore < 0 || target.RelevanceScore > 100 {
			t.Fatalf("%s relevance %v out of [0,100]", target.UserID, target.RelevanceScore)
		}
		if target.EngagementProbability < 0 || target.EngagementProbability > 0.9 {
			t.Fatalf("%s engagement %v out of [0,0.9]", target.UserID, target.EngagementProbability)
		}
		if target.InfluenceMultiplier < 1 || target.InfluenceMultiplier > 5 {
			t.Fatalf("%s influence %v out of [1,5]", target.UserID, target.InfluenceMultiplier)
		}
	}
}

// TestFindTargetsDeterministicOrder verifies descending rank order with
// the userId tiebreak, so identical inputs always produce identical
// plans.
func TestFindTargetsDeterministicOrder(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	twin := port.CandidateRow{WealthLevel: domain.TierGold, Followers: 500, RecentActivity: 60, AvgEngagement: 40, Location: "us/ca"}
	a, b := twin, twin
	a.UserID = "user-b"
	b.UserID = "user-a"
	rows := []port.CandidateRow{
		a, b,
		{UserID: "user-c", WealthLevel: domain.TierStarter, RecentActivity: 1, AvgEngagement: 1},
	}
	repo.EXPECT().SelectCandidates(mock.Anything, mock.Anything, "author-1").Return(rows, nil)

	engine := NewTargetingEngine(repo)
	targets, err := engine.FindTargets(context.Background(), testContent(), domain.Targeting{})
	if err != nil {
		t.Fatalf("FindTargets error: %v", err)
	}
	if targets[0].UserID != "user-a" || targets[1].UserID != "user-b" {
		t.Fatalf("tiebreak broken: got %s, %s", targets[0].UserID, targets[1].UserID)
	}
	if targets[2].UserID != "user-c" {
		t.Fatalf("rank order broken: got %s last", targets[2].UserID)
	}
}

// TestFindTargetsTruncates verifies the ranked result is capped at 1000
// recipients.
func TestFindTargetsTruncates(t *testing.T) {
	repo := mocks.NewMockCandidateStore(t)
	rows := make([]port.CandidateRow, 1500)
	for i := range rows {
		rows[i] = port.CandidateRow{
			UserID:         fmt.Sprintf("user-%04d", i),
			WealthLevel:    domain.TierSilver,
			RecentActivity: float64(i % 100),
			AvgEngagement:  20,
		}
	}
	repo.EXPECT().SelectCandidates(mock.Anything, mock.Anything, "author-1").Return(rows, nil)

	engine := NewTargetingEngine(repo)
	targets, err := engine.FindTargets(context.Background(), testContent(), domain.Targeting{})
	if err != nil {
		t.Fatalf("FindTargets error: %v", err)
	}
	if len(targets) != 1000 {
		t.Fatalf("expected 1000 targets, got %d", len(targets))
	}
}
