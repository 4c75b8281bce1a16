package config

import "github.com/haskel/parafox/internal/drift"

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Bench: BenchConfig{
			Workload:    "sum-squares",
			DatasetSize: 1000,
			MaxItems:    0,
			TimeoutSec:  60,
			Strategies: []string{
				"1,1,serial",
				"4,25,thread",
				"4,25,process",
			},
		},
		Monitor: MonitorConfig{
			IntervalMS:    60000,
			SampleSize:    10,
			TargetChunkMS: 100,
			MaxSnapshots:  0,
			UseCache:      false,
			Thresholds: drift.Thresholds{
				WorkerDelta:    2,
				SpeedupRatio:   0.25,
				ChunkSizeRatio: 0.5,
			},
		},
		Persistence: PersistenceConfig{
			DataDir: "/var/lib/parafox",
		},
	}
}
