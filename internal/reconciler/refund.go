package reconciler

import (
	"context"
	"log/slog"

	"promo-engine/internal/core/domain"
	"promo-engine/internal/core/port"
)

// RefundSweep settles every due refund task. A failure on one task is
// logged and the sweep continues; the task stays scheduled and is
// retried on the next cycle.
func (r *Reconciler) RefundSweep(ctx context.Context) error {
	due, err := r.store.DueRefundTasks(ctx, r.now())
	if err != nil {
		return err
	}
	for _, item := range due {
		if err := r.settleRefund(ctx, item); err != nil {
			r.logger.Error("refund settlement failed",
				slog.String("promotion_id", item.Task.PromotionID),
				slog.Int64("task_id", item.Task.ID),
				slog.Any("error", err))
		}
	}
	return nil
}

// settleRefund completes one refund task. The promotion transition is
// compare-and-set: the winner credits the unspent budget exactly once;
// a loser (the promotion was already stopped early) completes the task
// with a zero amount and no second credit.
func (r *Reconciler) settleRefund(ctx context.Context, item port.DueRefund) error {
	won, err := r.store.TransitionPromotionStatus(ctx,
		item.Task.PromotionID, domain.StatusActive, domain.StatusCompleted)
	if err != nil {
		return err
	}
	if !won {
		_, err = r.store.CompleteRefundTask(ctx, item.Task.ID, 0)
		return err
	}

	refund := item.Task.OriginalBudget - item.TotalSpent
	if refund < 0 {
		refund = 0
	}
	if refund > 0 {
		reference := "promotion_refund:" + item.Task.PromotionID
		if err := r.store.AppendLedgerCredit(ctx, item.AuthorID, refund, reference); err != nil {
			if failErr := r.store.FailRefundTask(ctx, item.Task.ID); failErr != nil {
				r.logger.Error("marking refund task failed",
					slog.Int64("task_id", item.Task.ID), slog.Any("error", failErr))
			}
			return err
		}
	}
	if _, err := r.store.CompleteRefundTask(ctx, item.Task.ID, refund); err != nil {
		return err
	}
	r.logger.Info("promotion refunded",
		slog.String("promotion_id", item.Task.PromotionID),
		slog.Int64("refund", refund))
	return nil
}
