package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/haskel/parafox/internal/strategy"
)

// Options configures one benchmark run.
type Options struct {
	// MaxItems truncates the dataset before measurement. 0 means no cap.
	MaxItems int

	// Timeout is the per-strategy wall-clock limit. Must be positive.
	Timeout time.Duration
}

// Result holds raw per-strategy timings, aligned by index with Configs.
type Result struct {
	Configs []strategy.Config
	Times   []float64 // seconds
}

// Runner measures each strategy once, strictly one after another, against
// an identical dataset. Overlapping measurements would contend for the same
// CPU and corrupt the comparison.
type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run validates the input, then executes every config in the order given.
// Any failure aborts the whole run; no partial result is returned.
func (r *Runner) Run(ctx context.Context, w Workload, dataset []float64, configs []strategy.Config, opts Options) (*Result, error) {
	if len(configs) < 1 {
		return nil, &ValidationError{Reason: "at least one strategy config is required"}
	}
	if opts.Timeout <= 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("timeout must be positive, got %s", opts.Timeout)}
	}
	if w.Fn == nil {
		return nil, &ValidationError{Reason: "workload function is nil"}
	}

	items := dataset
	if opts.MaxItems > 0 && len(items) > opts.MaxItems {
		items = items[:opts.MaxItems]
	}
	if len(items) == 0 {
		return nil, &ValidationError{Reason: "dataset is empty after truncation"}
	}

	result := &Result{
		Configs: configs,
		Times:   make([]float64, 0, len(configs)),
	}

	for _, cfg := range configs {
		elapsed, err := r.measure(ctx, w, items, cfg, opts.Timeout)
		if err != nil {
			return nil, err
		}

		r.logger.Debug("strategy measured",
			"strategy", cfg.Name,
			"backend", cfg.Backend,
			"workers", cfg.Workers,
			"elapsed", elapsed,
		)
		result.Times = append(result.Times, elapsed.Seconds())
	}

	return result, nil
}

// measure times one strategy. The bracket spans executor construction, the
// full pass, and pool teardown: real-world cost, not warm-pool cost.
func (r *Runner) measure(ctx context.Context, w Workload, items []float64, cfg strategy.Config, timeout time.Duration) (time.Duration, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	ex, err := newExecutor(cfg.Backend)
	if err != nil {
		return 0, &MeasurementError{Strategy: cfg.Name, Err: err}
	}
	runErr := ex.run(runCtx, w, items, cfg)

	elapsed := time.Since(start)

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if runCtx.Err() == context.DeadlineExceeded || elapsed > timeout {
		return 0, &TimeoutError{Strategy: cfg.Name, Elapsed: elapsed, Limit: timeout}
	}
	if runErr != nil {
		return 0, &MeasurementError{Strategy: cfg.Name, Err: runErr}
	}
	return elapsed, nil
}
