package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/parafox/internal/bench"
	"github.com/haskel/parafox/internal/drift"
	"github.com/haskel/parafox/internal/logger"
	"github.com/haskel/parafox/internal/oracle"
	"github.com/haskel/parafox/internal/render"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Continuously re-check the recommended configuration",
	Long: `Run the oracle at a fixed interval and report drift between
consecutive recommendations. Stops on SIGINT/SIGTERM, finishing the current
iteration first, and always prints a summary.`,
	Example: `  parafox monitor
  parafox monitor --workload prime-count --interval 30s
  parafox monitor --use-cache=false --max-snapshots 1000`,
	RunE: runMonitor,
}

var (
	monWorkload     string
	monItems        int
	monInterval     time.Duration
	monSampleSize   int
	monTargetChunk  time.Duration
	monUseCache     bool
	monMaxSnapshots int
)

func init() {
	monitorCmd.Flags().StringVarP(&monWorkload, "workload", "w", "", "registered workload name")
	monitorCmd.Flags().IntVar(&monItems, "items", 0, "dataset size")
	monitorCmd.Flags().DurationVar(&monInterval, "interval", 0, "time between iterations")
	monitorCmd.Flags().IntVar(&monSampleSize, "sample", 0, "items sampled per oracle call")
	monitorCmd.Flags().DurationVar(&monTargetChunk, "target-chunk", 0, "target duration of one dispatched chunk")
	monitorCmd.Flags().BoolVar(&monUseCache, "use-cache", false, "let the oracle serve cached recommendations (defeats drift detection; off by default)")
	monitorCmd.Flags().IntVar(&monMaxSnapshots, "max-snapshots", 0, "cap retained snapshots (0 = unbounded)")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
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
		Interval:       cfg.MonitorInterval(),
		SampleSize:     cfg.Monitor.SampleSize,
		TargetChunk:    cfg.TargetChunk(),
		Thresholds:     cfg.Monitor.Thresholds,
		MaxSnapshots:   cfg.Monitor.MaxSnapshots,
		UseCache:       cfg.Monitor.UseCache,
		Profile:        verbose,
		InstallSignals: true,
	}
	if monInterval > 0 {
		opts.Interval = monInterval
	}
	if monSampleSize > 0 {
		opts.SampleSize = monSampleSize
	}
	if monTargetChunk > 0 {
		opts.TargetChunk = monTargetChunk
	}
	if cmd.Flags().Changed("use-cache") {
		opts.UseCache = monUseCache
	}
	if cmd.Flags().Changed("max-snapshots") {
		opts.MaxSnapshots = monMaxSnapshots
	}

	// The oracle's own output is suppressed so only snapshot blocks reach
	// the sink; --verbose lifts that for debugging.
	oracleLog := logger.Silent()
	if verbose {
		oracleLog = log
	}

	m := drift.NewMonitor(
		oracle.NewHeuristicOracle(oracleLog),
		workload,
		makeDataset(items),
		opts,
		render.New(os.Stdout, jsonOut),
		log,
	)
	return m.Run(cmd.Context())
}
