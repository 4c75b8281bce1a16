package drift

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/haskel/parafox/internal/bench"
	"github.com/haskel/parafox/internal/oracle"
)

// State is the monitor lifecycle. A monitor runs once; a new instance is
// required to monitor again.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Options configures a monitor run.
type Options struct {
	// Interval between iterations; the sole suspension point.
	Interval time.Duration

	// SampleSize and TargetChunk are passed through to the oracle.
	SampleSize  int
	TargetChunk time.Duration

	Thresholds Thresholds

	// MaxSnapshots caps retained history; 0 keeps everything. Summary
	// accounting is tracked incrementally, so capping loses no summary
	// fidelity over a long session.
	MaxSnapshots int

	// UseCache re-enables the oracle's result cache. Off by default:
	// a cached recommendation cannot drift, which would silently defeat
	// the monitor's purpose.
	UseCache bool

	// Profile is passed through to the oracle.
	Profile bool

	// InstallSignals controls whether Run scopes SIGINT/SIGTERM handling
	// to itself. On by default from the CLI; off in tests and when the
	// caller owns signal handling.
	InstallSignals bool
}

// Monitor re-runs the oracle at a fixed interval, retains snapshots, and
// reports drift between consecutive recommendations. Not reentrant: one
// instance drives one loop.
type Monitor struct {
	oracle   oracle.Oracle
	workload bench.Workload
	dataset  []float64
	opts     Options
	sink     Sink
	logger   *slog.Logger

	mu    sync.Mutex
	state State
	stop  chan struct{}

	snapshots []Snapshot

	// Incremental summary accounting, kept outside the (possibly capped)
	// snapshot slice.
	iterations   int
	first        *oracle.Result
	last         *oracle.Result
	firstWorkers int
	stable       bool
	minSpeedup   float64
	maxSpeedup   float64
}

func NewMonitor(o oracle.Oracle, workload bench.Workload, dataset []float64, opts Options, sink Sink, logger *slog.Logger) *Monitor {
	return &Monitor{
		oracle:   o,
		workload: workload,
		dataset:  dataset,
		opts:     opts,
		sink:     sink,
		logger:   logger,
		state:    StateIdle,
		stop:     make(chan struct{}),
		stable:   true,
	}
}

// State returns the current lifecycle state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshots returns a copy of the retained snapshot history.
func (m *Monitor) Snapshots() []Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Snapshot, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}

// Stop requests a graceful stop. The current iteration is allowed to
// finish: aborting mid-measurement could leave a backend pool in an
// inconsistent state.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateRunning {
		return
	}
	m.state = StateStopping
	close(m.stop)
}

// Run drives the monitoring loop until stopped, interrupted, or the
// context ends. A summary is emitted on every exit path, and signal
// handling is always restored.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateIdle {
		state := m.state
		m.mu.Unlock()
		return fmt.Errorf("monitor is %s: a new instance is required", state)
	}
	m.state = StateRunning
	m.mu.Unlock()

	if m.opts.Interval <= 0 {
		m.finish()
		return fmt.Errorf("monitor interval must be positive, got %s", m.opts.Interval)
	}

	if m.opts.InstallSignals {
		guard := NewSignalGuard(func(os.Signal) { m.Stop() }, m.logger)
		guard.Acquire()
		defer guard.Release()
	}

	start := time.Now()
	defer func() {
		m.finish()
		m.sink.Summary(m.summary(time.Since(start)))
	}()

	m.logger.Info("drift monitor started",
		"workload", m.workload.Name,
		"interval", m.opts.Interval,
		"use_cache", m.opts.UseCache,
	)

	var prev *oracle.Result
	for m.running() {
		m.mu.Lock()
		m.iterations++
		iteration := m.iterations
		m.mu.Unlock()

		result, err := m.oracle.Recommend(ctx, oracle.Request{
			Workload:    m.workload,
			Dataset:     m.dataset,
			SampleSize:  m.opts.SampleSize,
			TargetChunk: m.opts.TargetChunk,
			Profile:     m.opts.Profile,
			UseCache:    m.opts.UseCache,
		})
		if err != nil {
			// Oracle failures are transient by assumption; the monitor's
			// job is to keep looping.
			m.logger.Warn("oracle failed, will retry",
				"iteration", iteration,
				"error", err,
			)
			if !m.sleep(ctx) {
				break
			}
			continue
		}

		snap := Snapshot{
			Timestamp: time.Now(),
			Result:    result,
			Iteration: iteration,
		}
		m.record(snap)

		var changes []string
		if prev != nil {
			changes = DetectChanges(*prev, result, m.opts.Thresholds)
		}
		m.sink.Snapshot(snap, changes)

		prev = &result

		if !m.running() {
			break
		}
		if !m.sleep(ctx) {
			break
		}
	}

	return nil
}

func (m *Monitor) running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateRunning
}

// sleep waits one interval; false means the monitor should exit.
func (m *Monitor) sleep(ctx context.Context) bool {
	timer := time.NewTimer(m.opts.Interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return m.running()
	case <-m.stop:
		return false
	case <-ctx.Done():
		m.Stop()
		return false
	}
}

func (m *Monitor) record(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.first == nil {
		r := snap.Result
		m.first = &r
		m.firstWorkers = r.Workers
		m.minSpeedup = r.EstimatedSpeedup
		m.maxSpeedup = r.EstimatedSpeedup
	}
	r := snap.Result
	m.last = &r

	if r.Workers != m.firstWorkers {
		m.stable = false
	}
	if r.EstimatedSpeedup < m.minSpeedup {
		m.minSpeedup = r.EstimatedSpeedup
	}
	if r.EstimatedSpeedup > m.maxSpeedup {
		m.maxSpeedup = r.EstimatedSpeedup
	}

	m.snapshots = append(m.snapshots, snap)
	if m.opts.MaxSnapshots > 0 && len(m.snapshots) > m.opts.MaxSnapshots {
		m.snapshots = m.snapshots[len(m.snapshots)-m.opts.MaxSnapshots:]
	}
}

func (m *Monitor) finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateStopped
}

func (m *Monitor) summary(elapsed time.Duration) Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Summary{
		Iterations:    m.iterations,
		Elapsed:       elapsed,
		First:         m.first,
		Last:          m.last,
		Stable:        m.stable,
		SpeedupSpread: m.maxSpeedup - m.minSpeedup,
	}
}
