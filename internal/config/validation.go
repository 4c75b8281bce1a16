package config

import (
	"errors"
	"fmt"

	"github.com/haskel/parafox/internal/strategy"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Bench.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bench: %w", err))
	}

	if err := c.Monitor.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("monitor: %w", err))
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", l.Level)
	}
	switch l.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", l.Format)
	}
	return nil
}

func (b *BenchConfig) Validate() error {
	var errs []error

	if b.Workload == "" {
		errs = append(errs, fmt.Errorf("workload must be set"))
	}
	if b.DatasetSize < 1 {
		errs = append(errs, fmt.Errorf("dataset_size must be >= 1, got %d", b.DatasetSize))
	}
	if b.MaxItems < 0 {
		errs = append(errs, fmt.Errorf("max_items must be >= 0, got %d", b.MaxItems))
	}
	if b.TimeoutSec < 1 {
		errs = append(errs, fmt.Errorf("timeout_sec must be >= 1, got %d", b.TimeoutSec))
	}
	if len(b.Strategies) == 0 {
		errs = append(errs, fmt.Errorf("at least one strategy is required"))
	}
	if _, err := strategy.ParseList(b.Strategies); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (m *MonitorConfig) Validate() error {
	var errs []error

	if m.IntervalMS < 1 {
		errs = append(errs, fmt.Errorf("interval_ms must be >= 1, got %d", m.IntervalMS))
	}
	if m.SampleSize < 1 {
		errs = append(errs, fmt.Errorf("sample_size must be >= 1, got %d", m.SampleSize))
	}
	if m.TargetChunkMS < 1 {
		errs = append(errs, fmt.Errorf("target_chunk_ms must be >= 1, got %d", m.TargetChunkMS))
	}
	if m.MaxSnapshots < 0 {
		errs = append(errs, fmt.Errorf("max_snapshots must be >= 0, got %d", m.MaxSnapshots))
	}
	if m.Thresholds.WorkerDelta < 0 {
		errs = append(errs, fmt.Errorf("thresholds.worker_delta must be >= 0, got %d", m.Thresholds.WorkerDelta))
	}
	if m.Thresholds.SpeedupRatio < 0 {
		errs = append(errs, fmt.Errorf("thresholds.speedup_ratio must be >= 0, got %f", m.Thresholds.SpeedupRatio))
	}
	if m.Thresholds.ChunkSizeRatio < 0 {
		errs = append(errs, fmt.Errorf("thresholds.chunk_size_ratio must be >= 0, got %f", m.Thresholds.ChunkSizeRatio))
	}

	return errors.Join(errs...)
}
