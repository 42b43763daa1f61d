// Package reconciler runs the periodic sweeps that reconcile persisted
// promotion spend against budget: scheduled refunds, budget-exhaustion
// stops and daily counter resets. Each sweep is idempotent; every state
// transition is compare-and-set at the store, so concurrent sweeps and
// request-driven stops cannot double-apply.
package reconciler

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"promo-engine/internal/core/port"
)

// Config holds the sweep cadences and the budget-exhaustion threshold.
type Config struct {
	RefundInterval      time.Duration
	ExhaustionInterval  time.Duration
	ResetInterval       time.Duration
	ExhaustionThreshold float64
}

// Reconciler supervises the three sweep loops. It holds no state of its
// own; the backing store is the sole shared mutable resource.
type Reconciler struct {
	store  port.CandidateStore
	logger *slog.Logger
	cfg    Config
	now    func() time.Time
}

// New returns a reconciler over the given store.
func New(store port.CandidateStore, logger *slog.Logger, cfg Config) *Reconciler {
	return &Reconciler{store: store, logger: logger, cfg: cfg, now: time.Now}
}

// Run starts the three sweep loops and blocks until ctx is cancelled.
// Sweep failures are logged and retried on the next tick, never fatal.
// Each sweep iteration commits per item, so cancellation mid-batch
// leaves only already-committed items changed.
func (r *Reconciler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.loop(ctx, "refund", r.cfg.RefundInterval, r.RefundSweep) })
	g.Go(func() error { return r.loop(ctx, "exhaustion", r.cfg.ExhaustionInterval, r.ExhaustionSweep) })
	g.Go(func() error { return r.loop(ctx, "stats_reset", r.cfg.ResetInterval, r.StatsResetSweep) })
	return g.Wait()
}

func (r *Reconciler) loop(ctx context.Context, name string, interval time.Duration, sweep func(context.Context) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := sweep(ctx); err != nil {
				r.logger.Error("sweep failed", slog.String("sweep", name), slog.Any("error", err))
			}
		}
	}
}
