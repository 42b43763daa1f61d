package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// Store implements port.CandidateStore using pgxpool for PostgreSQL.
// Every status transition is a conditional UPDATE keyed on the expected
// previous status, so racing sweeps resolve at the row level without
// distributed locking.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a new store instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// SelectCandidates returns candidate rows matching the targeting
// framework, ordered by recent activity and engagement descending and
// capped at 2000 rows. Accounts younger than 24 hours are excluded.
func (s *Store) SelectCandidates(ctx context.Context, targeting domain.Targeting, authorID string) ([]port.CandidateRow, error) {
	tiers := make([]string, len(targeting.WealthLevels))
	for i, t := range targeting.WealthLevels {
		tiers[i] = string(t)
	}

	query := `
        SELECT id, wealth_level, followers, recent_activity, avg_engagement, COALESCE(location, '')
        FROM users
        WHERE wealth_level = ANY($1)
          AND created_at <= now() - interval '24 hours'`
	args := []interface{}{tiers}
	if len(targeting.PreferredRegions) > 0 {
		args = append(args, targeting.PreferredRegions)
		query += fmt.Sprintf(" AND split_part(COALESCE(location, ''), '/', 1) = ANY($%d)", len(args))
	}
	if targeting.ExcludeFollowers {
		args = append(args, authorID)
		query += fmt.Sprintf(` AND NOT EXISTS (
            SELECT 1 FROM followers f WHERE f.followee_id = $%d AND f.follower_id = users.id)`, len(args))
	}
	query += `
        ORDER BY recent_activity DESC, avg_engagement DESC
        LIMIT 2000`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CandidateRow, error) {
		var c port.CandidateRow
		var tier string
		err := row.Scan(&c.UserID, &tier, &c.Followers, &c.RecentActivity, &c.AvgEngagement, &c.Location)
		c.WealthLevel = domain.WealthTier(tier)
		return c, err
	})
}

// GetContent returns the post under promotion, or nil when absent.
func (s *Store) GetContent(ctx context.Context, postID string) (*domain.Content, error) {
	var c domain.Content
	var tiers []string
	err := s.pool.QueryRow(ctx, `
        SELECT id, author_id, likes, replies, shares, body, images,
               target_wealth_levels, COALESCE(location, ''), content_type, created_at
        FROM posts WHERE id = $1`, postID).
		Scan(&c.PostID, &c.AuthorID, &c.Likes, &c.Replies, &c.Shares, &c.Body, &c.Images,
			&tiers, &c.Location, &c.ContentType, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.TargetWealthLevels = toTiers(tiers)
	return &c, nil
}

// GetPromotion returns a promotion by id, or nil when absent.
func (s *Store) GetPromotion(ctx context.Context, id string) (*domain.Promotion, error) {
	row := s.pool.QueryRow(ctx, promotionColumns+` FROM promotions p WHERE p.id = $1`, id)
	p, err := scanPromotion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// RecentDeliveryCount counts deliveries to one user within the window.
func (s *Store) RecentDeliveryCount(ctx context.Context, userID string, window time.Duration) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
        SELECT count(*) FROM promotion_queue
        WHERE user_id = $1 AND status = 'delivered' AND actual_delivery >= $2`,
		userID, time.Now().Add(-window)).Scan(&n)
	return n, err
}

// AuthorDeliveryCount counts deliveries of one author's promotions
// within the window.
func (s *Store) AuthorDeliveryCount(ctx context.Context, authorID string, window time.Duration) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
        SELECT count(*) FROM promotion_queue q
        JOIN promotions p ON p.id = q.promotion_id
        WHERE p.author_id = $1 AND q.status = 'delivered' AND q.actual_delivery >= $2`,
		authorID, time.Now().Add(-window)).Scan(&n)
	return n, err
}

// ContentTypeShares returns each content type's fraction of deliveries
// within the window.
func (s *Store) ContentTypeShares(ctx context.Context, window time.Duration) (map[string]float64, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT po.content_type, count(*) FROM promotion_queue q
        JOIN promotions p ON p.id = q.promotion_id
        JOIN posts po ON po.id = p.post_id
        WHERE q.status = 'delivered' AND q.actual_delivery >= $1
        GROUP BY po.content_type`, time.Now().Add(-window))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := map[string]int64{}
	var total int64
	for rows.Next() {
		var contentType string
		var n int64
		if err := rows.Scan(&contentType, &n); err != nil {
			return nil, err
		}
		counts[contentType] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	shares := make(map[string]float64, len(counts))
	for contentType, n := range counts {
		shares[contentType] = float64(n) / float64(total)
	}
	return shares, nil
}

// AuthorReputation returns the author's reputation in [0,1]. Unknown
// authors rate a neutral 0.5.
func (s *Store) AuthorReputation(ctx context.Context, authorID string) (float64, error) {
	var rep float64
	err := s.pool.QueryRow(ctx, `SELECT reputation FROM users WHERE id = $1`, authorID).Scan(&rep)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0.5, nil
	}
	return rep, err
}

// SumExpenses returns the summed spend of a promotion over its
// append-only expense ledger.
func (s *Store) SumExpenses(ctx context.Context, promotionID string) (int64, error) {
	var total int64
	err := s.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(cost), 0) FROM promotion_expenses WHERE promotion_id = $1`,
		promotionID).Scan(&total)
	return total, err
}

// CreatePromotion persists a new promotion row.
func (s *Store) CreatePromotion(ctx context.Context, p *domain.Promotion) error {
	tiers := make([]string, len(p.WealthLevels))
	for i, t := range p.WealthLevels {
		tiers[i] = string(t)
	}
	_, err := s.pool.Exec(ctx, `
        INSERT INTO promotions
            (id, post_id, author_id, budget_total, duration_days, wealth_levels,
             preferred_regions, exclude_followers, status, created_at, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.PostID, p.AuthorID, p.BudgetTotal, p.DurationDays, tiers,
		p.PreferredRegions, p.ExcludeFollowers, p.Status, p.CreatedAt, p.ExpiresAt)
	return err
}

// EnqueueDeliveries inserts the queue entries in one batch.
func (s *Store) EnqueueDeliveries(ctx context.Context, entries []domain.QueueEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
            INSERT INTO promotion_queue (promotion_id, user_id, scheduled_delivery, status)
            VALUES ($1,$2,$3,$4)`,
			e.PromotionID, e.UserID, e.ScheduledDelivery, e.Status)
	}
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// ScheduleRefund persists the promotion's refund task and fills in its
// generated id.
func (s *Store) ScheduleRefund(ctx context.Context, task *domain.RefundTask) error {
	return s.pool.QueryRow(ctx, `
        INSERT INTO refund_tasks (promotion_id, original_budget, refund_date, status)
        VALUES ($1,$2,$3,$4) RETURNING id`,
		task.PromotionID, task.OriginalBudget, task.RefundDate, task.Status).Scan(&task.ID)
}

// CancelScheduledDeliveries cancels all still-scheduled entries of a
// promotion, returning how many were cancelled.
func (s *Store) CancelScheduledDeliveries(ctx context.Context, promotionID, reason string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE promotion_queue SET status = 'cancelled', cancellation_reason = $2
        WHERE promotion_id = $1 AND status = 'scheduled'`, promotionID, reason)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// TransitionPromotionStatus performs the compare-and-set status update.
// It reports false when the promotion was not in the expected status.
func (s *Store) TransitionPromotionStatus(ctx context.Context, promotionID, from, to string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE promotions SET status = $3, completed_at = now()
        WHERE id = $1 AND status = $2`, promotionID, from, to)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AppendLedgerCredit appends a credit for the user. References are
// unique, so a retried refund inserts nothing the second time.
func (s *Store) AppendLedgerCredit(ctx context.Context, userID string, amount int64, reference string) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO ledger_credits (user_id, amount, reference, created_at)
        VALUES ($1,$2,$3,now()) ON CONFLICT (reference) DO NOTHING`,
		userID, amount, reference)
	return err
}

// DueRefundTasks returns scheduled refund tasks past their refund date,
// joined with the promotion's author and spend to date.
func (s *Store) DueRefundTasks(ctx context.Context, now time.Time) ([]port.DueRefund, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT t.id, t.promotion_id, t.original_budget, t.refund_date, t.status, p.author_id,
               COALESCE((SELECT sum(cost) FROM promotion_expenses e
                         WHERE e.promotion_id = t.promotion_id), 0)
        FROM refund_tasks t
        JOIN promotions p ON p.id = t.promotion_id
        WHERE t.status = 'scheduled' AND t.refund_date <= $1`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DueRefund, error) {
		var d port.DueRefund
		err := row.Scan(&d.Task.ID, &d.Task.PromotionID, &d.Task.OriginalBudget,
			&d.Task.RefundDate, &d.Task.Status, &d.AuthorID, &d.TotalSpent)
		return d, err
	})
}

// ExhaustedPromotions returns active, unexpired promotions whose spend
// has reached the threshold share of budget.
func (s *Store) ExhaustedPromotions(ctx context.Context, threshold float64, now time.Time) ([]port.ExhaustedPromotion, error) {
	rows, err := s.pool.Query(ctx, promotionColumns+`, spend.total
        FROM promotions p
        JOIN LATERAL (
            SELECT COALESCE(sum(cost), 0) AS total
            FROM promotion_expenses e WHERE e.promotion_id = p.id
        ) spend ON true
        WHERE p.status = 'active' AND p.expires_at > $2
          AND spend.total >= $1 * p.budget_total`, threshold, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ExhaustedPromotion, error) {
		var e port.ExhaustedPromotion
		var tiers, regions []string
		err := row.Scan(&e.Promotion.ID, &e.Promotion.PostID, &e.Promotion.AuthorID,
			&e.Promotion.BudgetTotal, &e.Promotion.DurationDays, &tiers, &regions,
			&e.Promotion.ExcludeFollowers, &e.Promotion.Status, &e.Promotion.CreatedAt,
			&e.Promotion.ExpiresAt, &e.Promotion.CompletedAt, &e.TotalSpent)
		e.Promotion.WealthLevels = toTiers(tiers)
		e.Promotion.PreferredRegions = regions
		return e, err
	})
}

// RefundTaskForPromotion returns the promotion's refund task, or nil
// when absent.
func (s *Store) RefundTaskForPromotion(ctx context.Context, promotionID string) (*domain.RefundTask, error) {
	var t domain.RefundTask
	err := s.pool.QueryRow(ctx, `
        SELECT id, promotion_id, original_budget, refund_date, refund_amount, status
        FROM refund_tasks WHERE promotion_id = $1`, promotionID).
		Scan(&t.ID, &t.PromotionID, &t.OriginalBudget, &t.RefundDate, &t.RefundAmount, &t.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CompleteRefundTask marks a scheduled refund task completed. It
// reports false when the task was already terminal.
func (s *Store) CompleteRefundTask(ctx context.Context, taskID int64, amount int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE refund_tasks SET status = 'completed', refund_amount = $2
        WHERE id = $1 AND status = 'scheduled'`, taskID, amount)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FailRefundTask marks a scheduled refund task failed.
func (s *Store) FailRefundTask(ctx context.Context, taskID int64) error {
	_, err := s.pool.Exec(ctx, `
        UPDATE refund_tasks SET status = 'failed'
        WHERE id = $1 AND status = 'scheduled'`, taskID)
	return err
}

// ResetDailyCounters zeroes per-user daily counters last reset before
// today, returning how many rows changed.
func (s *Store) ResetDailyCounters(ctx context.Context, today time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
        UPDATE daily_delivery_counters SET delivered = 0, last_reset = $1
        WHERE last_reset < $1`, today)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const promotionColumns = `
        SELECT p.id, p.post_id, p.author_id, p.budget_total, p.duration_days,
               p.wealth_levels, p.preferred_regions, p.exclude_followers,
               p.status, p.created_at, p.expires_at, p.completed_at`

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	var tiers, regions []string
	err := row.Scan(&p.ID, &p.PostID, &p.AuthorID, &p.BudgetTotal, &p.DurationDays,
		&tiers, &regions, &p.ExcludeFollowers, &p.Status, &p.CreatedAt, &p.ExpiresAt, &p.CompletedAt)
	if err != nil {
		return nil, err
	}
	p.WealthLevels = toTiers(tiers)
	p.PreferredRegions = regions
	return &p, nil
}

func toTiers(names []string) []domain.WealthTier {
	tiers := make([]domain.WealthTier, len(names))
	for i, n := range names {
		tiers[i] = domain.WealthTier(n)
	}
	return tiers
}
