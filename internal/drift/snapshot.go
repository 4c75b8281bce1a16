package drift

import (
	"time"

	"github.com/haskel/parafox/internal/oracle"
)

// Snapshot is one recommendation captured during a monitoring iteration.
// Snapshots are strictly append-ordered by iteration with non-decreasing
// timestamps and never mutated.
type Snapshot struct {
	Timestamp time.Time     `json:"timestamp"`
	Result    oracle.Result `json:"result"`
	Iteration int           `json:"iteration"`
}

// Summary is emitted once on every monitor exit path.
type Summary struct {
	Iterations int           `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed"`

	// First and Last are the first and last successful recommendations.
	// Nil when no iteration succeeded.
	First *oracle.Result `json:"first,omitempty"`
	Last  *oracle.Result `json:"last,omitempty"`

	// Stable is true iff the worker count was identical across all
	// captured snapshots.
	Stable bool `json:"stable"`

	// SpeedupSpread is max minus min estimated speedup across snapshots.
	SpeedupSpread float64 `json:"speedup_spread"`
}

// Sink receives monitor output: one block per snapshot plus one summary
// block at exit.
type Sink interface {
	Snapshot(snap Snapshot, changes []string)
	Summary(sum Summary)
}
