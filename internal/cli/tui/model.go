package tui

import (
	"time"

	"github.com/haskel/parafox/internal/drift"
)

// Event is one unit of monitor output pushed into the TUI.
type Event struct {
	Snap    drift.Snapshot
	Changes []string
}

// Config holds TUI configuration
type Config struct {
	Workload string
	Interval time.Duration

	// Events is fed by the running drift monitor; closing it ends the TUI.
	Events <-chan Event
}

const maxLogLines = 200

// Model represents the TUI state
type Model struct {
	config Config

	latest    *drift.Snapshot
	snapshots int

	// driftLog holds rendered change lines, newest last.
	driftLog []string

	// UI state
	width     int
	height    int
	logOffset int
	done      bool
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config: cfg,
	}
}
