package reconciler

import (
	"context"
	"log/slog"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// ExhaustionSweep stops every active promotion whose spend has reached
// the configured share of its budget, cancels its remaining scheduled
// deliveries and refunds whatever budget is left. A failure on one
// promotion does not abort the rest of the batch.
func (r *Reconciler) ExhaustionSweep(ctx context.Context) error {
	exhausted, err := r.store.ExhaustedPromotions(ctx, r.cfg.ExhaustionThreshold, r.now())
	if err != nil {
		return err
	}
	for _, item := range exhausted {
		if err := r.stopExhausted(ctx, item); err != nil {
			r.logger.Error("early stop failed",
				slog.String("promotion_id", item.Promotion.ID),
				slog.Any("error", err))
		}
	}
	return nil
}

// stopExhausted performs the early stop for one promotion. Losing the
// status transition means a racing refund sweep or author stop already
// terminated it, in which case this is a no-op.
func (r *Reconciler) stopExhausted(ctx context.Context, item port.ExhaustedPromotion) error {
	won, err := r.store.TransitionPromotionStatus(ctx,
		item.Promotion.ID, domain.StatusActive, domain.StatusStoppedEarly)
	if err != nil {
		return err
	}
	if !won {
		return nil
	}

	cancelled, err := r.store.CancelScheduledDeliveries(ctx, item.Promotion.ID, domain.ReasonBudgetExhausted)
	if err != nil {
		return err
	}

	task, err := r.store.RefundTaskForPromotion(ctx, item.Promotion.ID)
	if err != nil {
		return err
	}
	refund := item.Promotion.BudgetTotal - item.TotalSpent
	if refund < 0 {
		refund = 0
	}
	if task != nil && task.Status == domain.RefundScheduled {
		if refund > 0 {
			reference := "promotion_refund:" + item.Promotion.ID
			if err := r.store.AppendLedgerCredit(ctx, item.Promotion.AuthorID, refund, reference); err != nil {
				return err
			}
		}
		if _, err := r.store.CompleteRefundTask(ctx, task.ID, refund); err != nil {
			return err
		}
	}
	r.logger.Info("promotion stopped early",
		slog.String("promotion_id", item.Promotion.ID),
		slog.Int64("cancelled_deliveries", cancelled),
		slog.Int64("refund", refund))
	return nil
}
