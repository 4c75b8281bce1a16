package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/haskel/parafox/internal/bench"
	"github.com/haskel/parafox/internal/cli/tui"
	"github.com/haskel/parafox/internal/drift"
	"github.com/haskel/parafox/internal/logger"
	"github.com/haskel/parafox/internal/oracle"
	"github.com/haskel/parafox/internal/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor with a live terminal UI",
	Long: `Like monitor, but renders snapshots and drift in a live TUI.
The summary is printed to stdout after the TUI exits.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&monWorkload, "workload", "w", "", "registered workload name")
	watchCmd.Flags().IntVar(&monItems, "items", 0, "dataset size")
	watchCmd.Flags().DurationVar(&monInterval, "interval", 0, "time between iterations")
	watchCmd.Flags().IntVar(&monSampleSize, "sample", 0, "items sampled per oracle call")
	rootCmd.AddCommand(watchCmd)
}

// tuiSink forwards snapshots to the TUI and keeps the summary for after it
// exits.
type tuiSink struct {
	events chan tui.Event

	mu      sync.Mutex
	summary *drift.Summary
}

func (s *tuiSink) Snapshot(snap drift.Snapshot, changes []string) {
	s.events <- tui.Event{Snap: snap, Changes: changes}
}

func (s *tuiSink) Summary(sum drift.Summary) {
	s.mu.Lock()
	s.summary = &sum
	s.mu.Unlock()
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log := setup()

	workloadName := cfg.Bench.Workload
	if monWorkload != "" {
		workloadName = monWorkload
	}
	workload, err := bench.LookupWorkload(workloadName)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, bench.WorkloadNames())
	}

	items := cfg.Bench.DatasetSize
	if monItems > 0 {
		items = monItems
	}

	opts := drift.Options{
		Interval:     cfg.MonitorInterval(),
		SampleSize:   cfg.Monitor.SampleSize,
		TargetChunk:  cfg.TargetChunk(),
		Thresholds:   cfg.Monitor.Thresholds,
		MaxSnapshots: cfg.Monitor.MaxSnapshots,
		UseCache:     cfg.Monitor.UseCache,
		// bubbletea owns the terminal and ctrl+c while the TUI runs.
		InstallSignals: false,
	}
	if monInterval > 0 {
		opts.Interval = monInterval
	}
	if monSampleSize > 0 {
		opts.SampleSize = monSampleSize
	}

	sink := &tuiSink{events: make(chan tui.Event, 8)}

	m := drift.NewMonitor(
		oracle.NewHeuristicOracle(logger.Silent()),
		workload,
		makeDataset(items),
		opts,
		sink,
		log,
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	monitorDone := make(chan error, 1)
	go func() {
		monitorDone <- m.Run(ctx)
		close(sink.events)
	}()

	tuiErr := tui.Run(tui.Config{
		Workload: workloadName,
		Interval: opts.Interval,
		Events:   sink.events,
	})

	m.Stop()
	cancel()
	drainEvents(sink.events)
	runErr := <-monitorDone

	sink.mu.Lock()
	sum := sink.summary
	sink.mu.Unlock()
	if sum != nil {
		render.New(os.Stdout, jsonOut).Summary(*sum)
	}

	if tuiErr != nil {
		return tuiErr
	}
	return runErr
}

// drainEvents unblocks a monitor iteration that is mid-send when the TUI
// quits first.
func drainEvents(events <-chan tui.Event) {
	for range events {
	}
}
