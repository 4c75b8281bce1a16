package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	defaultSampleSize  = 10
	defaultTargetChunk = 100 * time.Millisecond

	// Rough fixed cost of shipping one chunk to a worker process and
	// reading the reply back.
	chunkTransportCost = 200 * time.Microsecond

	// Assumed parallelizable fraction of the workload (Amdahl).
	parallelFraction = 0.95

	tinyItemFloor   = 50 * time.Microsecond
	busyCPUPercent  = 75.0
	highMemoryUsage = 90.0

	cacheTTL = time.Minute
)

// systemProbe abstracts the host probes so tests can inject fixed values.
type systemProbe interface {
	LogicalCores() (int, error)
	CPUBusyPercent() (float64, error)
	MemoryUsedPercent() (float64, error)
}

type gopsutilProbe struct{}

func (gopsutilProbe) LogicalCores() (int, error) {
	return cpu.Counts(true)
}

func (gopsutilProbe) CPUBusyPercent() (float64, error) {
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(percentages) == 0 {
		return 0, nil
	}
	return percentages[0], nil
}

func (gopsutilProbe) MemoryUsedPercent() (float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return v.UsedPercent, nil
}

type cacheEntry struct {
	result  Result
	savedAt time.Time
}

// HeuristicOracle proposes a configuration by timing a small sequential
// sample of the dataset and sizing workers to what the host can actually
// give right now.
type HeuristicOracle struct {
	logger *slog.Logger
	probe  systemProbe

	mu    sync.Mutex
	cache map[string]cacheEntry
}

func NewHeuristicOracle(logger *slog.Logger) *HeuristicOracle {
	return &HeuristicOracle{
		logger: logger,
		probe:  gopsutilProbe{},
		cache:  make(map[string]cacheEntry),
	}
}

func (o *HeuristicOracle) Recommend(ctx context.Context, req Request) (Result, error) {
	if len(req.Dataset) == 0 {
		return Result{}, fmt.Errorf("dataset is empty")
	}
	if req.Workload.Fn == nil {
		return Result{}, fmt.Errorf("workload function is nil")
	}
	if req.SampleSize <= 0 {
		req.SampleSize = defaultSampleSize
	}
	if req.TargetChunk <= 0 {
		req.TargetChunk = defaultTargetChunk
	}

	key := fmt.Sprintf("%s/%d", req.Workload.Name, len(req.Dataset))
	if req.UseCache {
		if cached, ok := o.cached(key); ok {
			o.logger.Debug("oracle cache hit", "key", key)
			return cached, nil
		}
	}

	perItem, err := o.sampleItemCost(ctx, req)
	if err != nil {
		return Result{}, err
	}

	result, err := o.derive(req, perItem)
	if err != nil {
		return Result{}, err
	}

	o.mu.Lock()
	o.cache[key] = cacheEntry{result: result, savedAt: time.Now()}
	o.mu.Unlock()

	return result, nil
}

func (o *HeuristicOracle) cached(key string) (Result, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry, ok := o.cache[key]
	if !ok || time.Since(entry.savedAt) > cacheTTL {
		return Result{}, false
	}
	return entry.result, true
}

// sampleItemCost times a sequential pass over the first SampleSize items.
func (o *HeuristicOracle) sampleItemCost(ctx context.Context, req Request) (time.Duration, error) {
	n := req.SampleSize
	if n > len(req.Dataset) {
		n = len(req.Dataset)
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := req.Workload.Fn(req.Dataset[i]); err != nil {
			return 0, fmt.Errorf("sampling item %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	if req.Profile {
		o.logger.Debug("oracle sampling done",
			"workload", req.Workload.Name,
			"sampled", n,
			"elapsed", elapsed,
		)
	}

	perItem := elapsed / time.Duration(n)
	if perItem <= 0 {
		perItem = time.Nanosecond
	}
	return perItem, nil
}

func (o *HeuristicOracle) derive(req Request, perItem time.Duration) (Result, error) {
	var result Result

	cores, err := o.probe.LogicalCores()
	if err != nil {
		return Result{}, fmt.Errorf("probing cpu count: %w", err)
	}
	if cores < 1 {
		cores = 1
	}

	workers := cores
	busy, err := o.probe.CPUBusyPercent()
	if err == nil && busy > busyCPUPercent {
		available := (100 - busy) / 100
		workers = int(float64(cores) * available)
		if workers < 1 {
			workers = 1
		}
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("system CPU is %.0f%% busy; recommendation scaled down", busy))
	}

	chunk := int(req.TargetChunk / perItem)
	if chunk < 1 {
		chunk = 1
	}
	if chunk > len(req.Dataset) {
		chunk = len(req.Dataset)
	}

	if perItem < tinyItemFloor {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("per-item work is tiny (%s); process transport overhead may dominate", perItem))
	}

	if used, err := o.probe.MemoryUsedPercent(); err == nil && used > highMemoryUsage {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("memory usage is high (%.0f%%); worker processes may thrash", used))
	}

	result.Workers = workers
	result.ChunkSize = chunk
	result.EstimatedSpeedup = estimateSpeedup(workers, perItem, chunk)
	return result, nil
}

// estimateSpeedup applies Amdahl's bound discounted by per-chunk transport
// cost.
func estimateSpeedup(workers int, perItem time.Duration, chunk int) float64 {
	ideal := 1 / ((1 - parallelFraction) + parallelFraction/float64(workers))

	work := perItem * time.Duration(chunk)
	overheadShare := float64(chunkTransportCost) / float64(work+chunkTransportCost)

	speedup := ideal * (1 - overheadShare)
	if speedup < 1 {
		speedup = 1
	}
	return speedup
}
