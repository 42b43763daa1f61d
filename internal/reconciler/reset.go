package reconciler

import (
	"context"
	"log/slog"
	"time"
)

// StatsResetSweep zeroes per-user daily delivery counters whose last
// reset precedes today.
func (r *Reconciler) StatsResetSweep(ctx context.Context) error {
	today := r.now().UTC().Truncate(24 * time.Hour)
	n, err := r.store.ResetDailyCounters(ctx, today)
	if err != nil {
		return err
	}
	if n > 0 {
		r.logger.Info("daily counters reset", slog.Int64("count", n))
	}
	return nil
}
