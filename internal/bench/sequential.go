package bench

import (
	"context"
	"fmt"

	"github.com/haskel/parafox/internal/strategy"
)

// sequentialExecutor applies the workload to every item in order on the
// calling goroutine. No concurrency, no pool.
type sequentialExecutor struct{}

func (e *sequentialExecutor) run(ctx context.Context, w Workload, items []float64, _ strategy.Config) error {
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.Fn(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
