package config

import (
	"time"

	"github.com/haskel/parafox/internal/drift"
)

type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Bench       BenchConfig       `yaml:"bench"`
	Monitor     MonitorConfig     `yaml:"monitor"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type BenchConfig struct {
	// Workload is the registered workload name to measure.
	Workload string `yaml:"workload"`

	// DatasetSize is how many synthetic items the CLI generates.
	DatasetSize int `yaml:"dataset_size"`

	// MaxItems truncates the dataset before measurement. 0 = no cap.
	MaxItems int `yaml:"max_items"`

	// TimeoutSec is the per-strategy wall-clock limit.
	TimeoutSec int `yaml:"timeout_sec"`

	// Strategies are compact specs: "name:workers,chunk,backend".
	Strategies []string `yaml:"strategies"`
}

type MonitorConfig struct {
	IntervalMS    int  `yaml:"interval_ms"`
	SampleSize    int  `yaml:"sample_size"`
	TargetChunkMS int  `yaml:"target_chunk_ms"`
	MaxSnapshots  int  `yaml:"max_snapshots"`
	UseCache      bool `yaml:"use_cache"`

	Thresholds drift.Thresholds `yaml:"thresholds"`
}

type PersistenceConfig struct {
	DataDir string `yaml:"data_dir"`
}

func (c *Config) BenchTimeout() time.Duration {
	return time.Duration(c.Bench.TimeoutSec) * time.Second
}

func (c *Config) MonitorInterval() time.Duration {
	return time.Duration(c.Monitor.IntervalMS) * time.Millisecond
}

func (c *Config) TargetChunk() time.Duration {
	return time.Duration(c.Monitor.TargetChunkMS) * time.Millisecond
}
