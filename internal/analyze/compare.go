package analyze

import (
	"fmt"

	"github.com/haskel/parafox/internal/strategy"
)

// Efficiency labels for the best parallel strategy: speedup divided by its
// worker count.
const (
	excellentEfficiency = 0.85
	lowEfficiency       = 0.5

	// A non-best strategy slower than 80% of baseline is called out.
	slowdownFloor = 0.8

	// Mean-time gap between thread and process strategies that justifies a
	// workload-character inference.
	backendGapRatio = 1.1
)

// Comparison is the immutable outcome of one benchmark run. The three
// parallel slices share one length and are aligned by index.
type Comparison struct {
	Configs         []strategy.Config
	Times           []float64 // seconds
	Speedups        []float64
	BestIndex       int
	Recommendations []string
}

// Best returns the fastest strategy's config.
func (c *Comparison) Best() strategy.Config {
	return c.Configs[c.BestIndex]
}

// Compare turns raw timings into speedups, a best-strategy index, and
// heuristic recommendations. Pure: no I/O, no randomness, identical input
// gives identical output.
func Compare(configs []strategy.Config, times []float64) (*Comparison, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no strategies to compare")
	}
	if len(configs) != len(times) {
		return nil, fmt.Errorf("config/time length mismatch: %d vs %d", len(configs), len(times))
	}

	cmp := &Comparison{
		Configs:  configs,
		Times:    times,
		Speedups: make([]float64, len(times)),
	}

	baseline := times[0]
	for i, t := range times {
		if baseline <= 0 || t <= 0 {
			cmp.Speedups[i] = 1.0
			continue
		}
		cmp.Speedups[i] = baseline / t
	}

	cmp.BestIndex = argmin(times)
	cmp.Recommendations = recommend(cmp)
	return cmp, nil
}

// argmin returns the index of the smallest value, first occurrence winning
// ties.
func argmin(values []float64) int {
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}

func recommend(cmp *Comparison) []string {
	var recs []string

	if cmp.BestIndex == 0 {
		recs = append(recs,
			fmt.Sprintf("Baseline %q is fastest: added concurrency was not beneficial here", cmp.Configs[0].Name),
			"Consider a larger or more complex workload before parallelizing",
		)
	} else {
		best := cmp.Best()
		recs = append(recs, fmt.Sprintf("Best strategy: %q with %d workers, chunk size %d",
			best.Name, best.Workers, best.ChunkSize))

		efficiency := cmp.Speedups[cmp.BestIndex] / float64(best.Workers)
		switch {
		case efficiency > excellentEfficiency:
			recs = append(recs, fmt.Sprintf("Excellent efficiency: %.0f%% of ideal speedup", efficiency*100))
		case efficiency < lowEfficiency:
			recs = append(recs, fmt.Sprintf("Low efficiency: %.0f%% of ideal speedup, overhead dominates", efficiency*100))
		}
	}

	for i, s := range cmp.Speedups {
		if i == cmp.BestIndex {
			continue
		}
		if s < slowdownFloor {
			recs = append(recs, fmt.Sprintf("Avoid %q: significantly slower than baseline (%.2fx)",
				cmp.Configs[i].Name, s))
		}
	}

	if inference := inferWorkloadCharacter(cmp); inference != "" {
		recs = append(recs, inference)
	}

	return recs
}

// inferWorkloadCharacter compares mean times of thread-backed and
// process-backed strategies. A clear advantage for one backend family hints
// at the workload being I/O-bound (threads win) or CPU-bound (processes
// win).
func inferWorkloadCharacter(cmp *Comparison) string {
	var threadSum, procSum float64
	var threadN, procN int

	for i, cfg := range cmp.Configs {
		switch cfg.Backend {
		case strategy.BackendThread:
			threadSum += cmp.Times[i]
			threadN++
		case strategy.BackendProcess:
			procSum += cmp.Times[i]
			procN++
		}
	}
	if threadN == 0 || procN == 0 {
		return ""
	}

	threadMean := threadSum / float64(threadN)
	procMean := procSum / float64(procN)

	switch {
	case procMean > threadMean*backendGapRatio:
		return "Thread strategies are notably faster on average: workload is likely I/O-bound"
	case threadMean > procMean*backendGapRatio:
		return "Process strategies are notably faster on average: workload is likely CPU-bound"
	}
	return ""
}
