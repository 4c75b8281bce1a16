package strategy

import "fmt"

// Backend represents the concurrency mechanism a strategy is executed with.
type Backend string

const (
	BackendSequential Backend = "sequential"
	BackendThread     Backend = "thread"
	BackendProcess    Backend = "process"
)

// IsValid checks if the backend is valid.
func (b Backend) IsValid() bool {
	switch b {
	case BackendSequential, BackendThread, BackendProcess:
		return true
	}
	return false
}

// String returns string representation.
func (b Backend) String() string {
	return string(b)
}

// Config describes one candidate execution strategy. Immutable once built.
type Config struct {
	Name      string
	Workers   int
	ChunkSize int
	Backend   Backend
}

// New builds a Config, generating a display name when none is given.
func New(name string, workers, chunkSize int, backend Backend) (Config, error) {
	if workers < 1 {
		return Config{}, fmt.Errorf("worker count must be >= 1, got %d", workers)
	}
	if chunkSize < 1 {
		return Config{}, fmt.Errorf("chunk size must be >= 1, got %d", chunkSize)
	}
	if !backend.IsValid() {
		return Config{}, fmt.Errorf("unknown backend: %s", backend)
	}
	if name == "" {
		name = defaultName(workers, backend)
	}
	return Config{
		Name:      name,
		Workers:   workers,
		ChunkSize: chunkSize,
		Backend:   backend,
	}, nil
}

// Serial reports whether the strategy runs effectively serially.
func (c Config) Serial() bool {
	return c.Workers == 1 || c.Backend == BackendSequential
}

func defaultName(workers int, backend Backend) string {
	if workers == 1 {
		return "Serial"
	}
	switch backend {
	case BackendThread:
		return fmt.Sprintf("%d threads", workers)
	default:
		return fmt.Sprintf("%d processes", workers)
	}
}
