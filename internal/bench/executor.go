package bench

import (
	"context"
	"fmt"

	"github.com/haskel/parafox/internal/strategy"
)

// executor runs a workload over a dataset with one backend's semantics.
// One executor is selected per strategy config; the pool it needs is built
// and torn down inside run so the measured time includes both.
type executor interface {
	run(ctx context.Context, w Workload, items []float64, cfg strategy.Config) error
}

func newExecutor(backend strategy.Backend) (executor, error) {
	switch backend {
	case strategy.BackendSequential:
		return &sequentialExecutor{}, nil
	case strategy.BackendThread:
		return &threadPoolExecutor{}, nil
	case strategy.BackendProcess:
		return &processPoolExecutor{}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}
