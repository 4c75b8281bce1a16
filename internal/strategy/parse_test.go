package strategy

import (
	"strings"
	"testing"
)

func TestParse_FullForm(t *testing.T) {
	cfg, err := Parse("Big pool:8,50,thread")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "Big pool" {
		t.Errorf("expected name 'Big pool', got %q", cfg.Name)
	}
	if cfg.Workers != 8 || cfg.ChunkSize != 50 {
		t.Errorf("expected 8 workers / chunk 50, got %d/%d", cfg.Workers, cfg.ChunkSize)
	}
	if cfg.Backend != BackendThread {
		t.Errorf("expected thread backend, got %s", cfg.Backend)
	}
}

func TestParse_ShortFormDefaults(t *testing.T) {
	cfg, err := Parse("4,25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != BackendProcess {
		t.Errorf("expected default process backend, got %s", cfg.Backend)
	}
	if cfg.Name != "4 processes" {
		t.Errorf("expected generated name '4 processes', got %q", cfg.Name)
	}
}

func TestParse_SerialLabel(t *testing.T) {
	cfg, err := Parse("1,1,serial")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != BackendSequential {
		t.Errorf("expected sequential backend, got %s", cfg.Backend)
	}
	if cfg.Name != "Serial" {
		t.Errorf("expected generated name 'Serial', got %q", cfg.Name)
	}
	if !cfg.Serial() {
		t.Error("expected Serial() to be true")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		spec string
	}{
		{"x,25"},
		{"4,y"},
		{"4,25,fiber"},
		{"4"},
		{""},
		{"0,25"},
		{"4,0"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if err == nil {
			t.Errorf("expected error for spec %q", tt.spec)
			continue
		}
		if tt.spec != "" && !strings.Contains(err.Error(), tt.spec) {
			t.Errorf("error for %q does not echo the input: %v", tt.spec, err)
		}
	}
}

func TestParseList_StopsAtFirstError(t *testing.T) {
	_, err := ParseList([]string{"1,1,serial", "bad,spec"})
	if err == nil {
		t.Fatal("expected error")
	}

	configs, err := ParseList([]string{"1,1,serial", "4,25"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(configs))
	}
}

func TestBackend_IsValid(t *testing.T) {
	for _, b := range []Backend{BackendSequential, BackendThread, BackendProcess} {
		if !b.IsValid() {
			t.Errorf("expected %s to be valid", b)
		}
	}
	if Backend("fiber").IsValid() {
		t.Error("expected 'fiber' to be invalid")
	}
}
