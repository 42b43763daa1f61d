package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"promo-engine/internal/core/domain"
)

// Seed inserts demo data into the promo-engine database: a population
// of users across all wealth tiers and a handful of promotable posts.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	locations := []string{"us/ca", "us/ny", "eu/de", "eu/fr", "asia/jp"}

	// create users, ~50 per tier
	for ti, tier := range domain.Tiers {
		for i := 1; i <= 50; i++ {
			id := fmt.Sprintf("user-%s-%d", tier, i)
			followers := int64(r.Intn(5000) * (ti + 1))
			recentActivity := float64(r.Intn(100))
			avgEngagement := float64(r.Intn(120))
			reputation := 0.3 + r.Float64()*0.7
			location := locations[r.Intn(len(locations))]
			createdAt := time.Now().AddDate(0, 0, -(2 + r.Intn(300)))
			_, err := db.Exec(ctx, `INSERT INTO users
    (id, wealth_level, followers, recent_activity, avg_engagement, reputation, location, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
				id, string(tier), followers, recentActivity, avgEngagement, reputation, location, createdAt)
			if err != nil {
				return err
			}
		}
	}

	// create promotable posts owned by a few gold users
	bodies := []string{
		"Limited offer on the new premium collection, exclusive to early followers.",
		"A long-form write-up on what we learned scaling our studio this year.",
		"Weekend sale announcement.",
	}
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("post-%d", i)
		authorID := fmt.Sprintf("user-%s-%d", domain.TierGold, 1+r.Intn(10))
		body := bodies[r.Intn(len(bodies))]
		_, err := db.Exec(ctx, `INSERT INTO posts
    (id, author_id, likes, replies, shares, body, images, target_wealth_levels, location, content_type, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			id, authorID, r.Intn(500), r.Intn(100), r.Intn(50), body, r.Intn(4),
			[]string{string(domain.TierGold), string(domain.TierPlatinum)},
			locations[r.Intn(len(locations))], "post", time.Now().AddDate(0, 0, -r.Intn(10)))
		if err != nil {
			return err
		}
	}
	return nil
}
