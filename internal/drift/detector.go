package drift

import (
	"fmt"
	"math"

	"github.com/haskel/parafox/internal/oracle"
)

// SpeedupEpsilon floors the previous estimated speedup when computing its
// relative change, so a previous value of exactly zero cannot divide by
// zero.
const SpeedupEpsilon = 1e-9

// Thresholds configures what counts as drift between two recommendations.
// All comparisons are inclusive (>=).
type Thresholds struct {
	// WorkerDelta is the absolute worker-count change that triggers an
	// alert.
	WorkerDelta int `yaml:"worker_delta"`

	// SpeedupRatio is the relative change in estimated speedup that
	// triggers an alert.
	SpeedupRatio float64 `yaml:"speedup_ratio"`

	// ChunkSizeRatio is the relative change in chunk size that triggers an
	// alert.
	ChunkSizeRatio float64 `yaml:"chunk_size_ratio"`
}

// DetectChanges compares two consecutive oracle results against the
// thresholds. Pure; message order is fixed: workers, speedup, chunk size.
// An unchanged value never alerts, regardless of threshold.
func DetectChanges(prev, cur oracle.Result, t Thresholds) []string {
	var changes []string

	workerDelta := cur.Workers - prev.Workers
	if workerDelta != 0 && abs(workerDelta) >= t.WorkerDelta {
		changes = append(changes,
			fmt.Sprintf("worker count changed: %d -> %d", prev.Workers, cur.Workers))
	}

	speedupDelta := math.Abs(cur.EstimatedSpeedup - prev.EstimatedSpeedup)
	if speedupDelta != 0 {
		base := math.Max(prev.EstimatedSpeedup, SpeedupEpsilon)
		if speedupDelta/base >= t.SpeedupRatio {
			changes = append(changes,
				fmt.Sprintf("estimated speedup changed: %.2f -> %.2f", prev.EstimatedSpeedup, cur.EstimatedSpeedup))
		}
	}

	// No relative baseline exists when the previous chunk size is zero, so
	// the check is skipped entirely.
	if prev.ChunkSize > 0 {
		chunkDelta := float64(abs(cur.ChunkSize - prev.ChunkSize))
		if chunkDelta != 0 && chunkDelta/float64(prev.ChunkSize) >= t.ChunkSizeRatio {
			changes = append(changes,
				fmt.Sprintf("chunk size changed: %d -> %d", prev.ChunkSize, cur.ChunkSize))
		}
	}

	return changes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
