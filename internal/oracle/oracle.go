package oracle

import (
	"context"
	"time"

	"github.com/haskel/parafox/internal/bench"
)

// Result is a recommended execution configuration for one workload.
type Result struct {
	Workers          int      `json:"workers"`
	ChunkSize        int      `json:"chunk_size"`
	EstimatedSpeedup float64  `json:"estimated_speedup"`
	Warnings         []string `json:"warnings,omitempty"`
}

// Request describes one recommendation query.
type Request struct {
	Workload bench.Workload
	Dataset  []float64

	// SampleSize bounds how many items are timed to estimate per-item cost.
	SampleSize int

	// TargetChunk is the wall-clock duration one dispatched chunk should
	// take; chunk size is derived from it.
	TargetChunk time.Duration

	// Profile enables debug timing output for the sampling phase.
	Profile bool

	// UseCache allows a cached recommendation for the same workload and
	// dataset shape to be returned. Off by default: the drift monitor
	// exists to observe fresh recommendations, and a silently cached one
	// would defeat change detection.
	UseCache bool
}

// Oracle proposes a configuration for a workload over a dataset. The drift
// monitor treats it as a black box and survives its failures.
type Oracle interface {
	Recommend(ctx context.Context, req Request) (Result, error)
}
