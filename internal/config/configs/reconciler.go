package configs

import "time"

// Reconciler configures the lifecycle sweeps. The defaults match
// production cadence: hourly refunds, ten-minute budget checks, daily
// counter resets. Tests override them with short intervals.
type Reconciler struct {
	// RefundInterval is the cadence of the scheduled-refund sweep.
	RefundInterval time.Duration `env:"REFUND_INTERVAL" envDefault:"1h"`
	// ExhaustionInterval is the cadence of the budget-exhaustion sweep.
	ExhaustionInterval time.Duration `env:"EXHAUSTION_INTERVAL" envDefault:"10m"`
	// ResetInterval is the cadence of the daily stats-reset sweep.
	ResetInterval time.Duration `env:"RESET_INTERVAL" envDefault:"24h"`
	// ExhaustionThreshold is the spend/budget ratio at which a promotion
	// is stopped early.
	ExhaustionThreshold float64 `env:"EXHAUSTION_THRESHOLD" envDefault:"0.98"`
}
