package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parafox.yaml")
	content := `
logging:
  level: debug
bench:
  workload: prime-count
  timeout_sec: 5
monitor:
  interval_ms: 500
  thresholds:
    worker_delta: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Bench.Workload != "prime-count" {
		t.Errorf("expected workload prime-count, got %s", cfg.Bench.Workload)
	}
	if cfg.BenchTimeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.BenchTimeout())
	}
	if cfg.MonitorInterval() != 500*time.Millisecond {
		t.Errorf("expected 500ms interval, got %s", cfg.MonitorInterval())
	}
	if cfg.Monitor.Thresholds.WorkerDelta != 3 {
		t.Errorf("expected worker_delta 3, got %d", cfg.Monitor.Thresholds.WorkerDelta)
	}
	// Untouched sections keep defaults.
	if cfg.Logging.Format != "text" {
		t.Errorf("expected default format, got %s", cfg.Logging.Format)
	}
	if len(cfg.Bench.Strategies) == 0 {
		t.Error("expected default strategies to survive partial config")
	}
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("PARAFOX_TEST_DATA_DIR", "/tmp/parafox-test")

	path := filepath.Join(t.TempDir(), "parafox.yaml")
	content := `
persistence:
  data_dir: ${PARAFOX_TEST_DATA_DIR}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Persistence.DataDir != "/tmp/parafox-test" {
		t.Errorf("expected env substitution, got %s", cfg.Persistence.DataDir)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "logging:\n  level: chatty\n"},
		{"bad strategy", "bench:\n  strategies: [\"x,y\"]\n"},
		{"zero interval", "monitor:\n  interval_ms: 0\n"},
		{"negative threshold", "monitor:\n  thresholds:\n    speedup_ratio: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "parafox.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	if cfg := LoadOrDefault(""); cfg.Bench.Workload != "sum-squares" {
		t.Errorf("expected defaults for empty path, got %s", cfg.Bench.Workload)
	}
	if cfg := LoadOrDefault("/no/such/file.yaml"); cfg.Bench.Workload != "sum-squares" {
		t.Errorf("expected defaults for missing file, got %s", cfg.Bench.Workload)
	}
}
