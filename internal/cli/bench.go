package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/parafox/internal/analyze"
	"github.com/haskel/parafox/internal/bench"
	"github.com/haskel/parafox/internal/history"
	"github.com/haskel/parafox/internal/render"
	"github.com/haskel/parafox/internal/strategy"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark execution strategies against each other",
	Long: `Measure every strategy once, in order, over an identical dataset and
compare the timings. Strategies use the compact form "name:workers,chunk,backend"
or "workers,chunk" (backend defaults to process).`,
	Example: `  parafox bench
  parafox bench --workload prime-count --items 500
  parafox bench -s 1,1,serial -s 8,50,thread -s 8,50,process
  parafox bench --save`,
	RunE: runBench,
}

var (
	benchWorkload   string
	benchStrategies []string
	benchItems      int
	benchMaxItems   int
	benchTimeout    time.Duration
	benchSave       bool
)

func init() {
	benchCmd.Flags().StringVarP(&benchWorkload, "workload", "w", "", "registered workload name")
	benchCmd.Flags().StringArrayVarP(&benchStrategies, "strategy", "s", nil, "strategy spec, repeatable")
	benchCmd.Flags().IntVar(&benchItems, "items", 0, "dataset size")
	benchCmd.Flags().IntVar(&benchMaxItems, "max-items", 0, "cap dataset before measuring (0 = no cap)")
	benchCmd.Flags().DurationVar(&benchTimeout, "timeout", 0, "per-strategy timeout")
	benchCmd.Flags().BoolVar(&benchSave, "save", false, "persist the comparison and print its id")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, log := setup()

	workloadName := cfg.Bench.Workload
	if benchWorkload != "" {
		workloadName = benchWorkload
	}
	workload, err := bench.LookupWorkload(workloadName)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, bench.WorkloadNames())
	}

	specs := cfg.Bench.Strategies
	if len(benchStrategies) > 0 {
		specs = benchStrategies
	}
	configs, err := strategy.ParseList(specs)
	if err != nil {
		return err
	}

	items := cfg.Bench.DatasetSize
	if benchItems > 0 {
		items = benchItems
	}
	maxItems := cfg.Bench.MaxItems
	if cmd.Flags().Changed("max-items") {
		maxItems = benchMaxItems
	}
	timeout := cfg.BenchTimeout()
	if benchTimeout > 0 {
		timeout = benchTimeout
	}

	runner := bench.NewRunner(log)
	result, err := runner.Run(cmd.Context(), workload, makeDataset(items), configs, bench.Options{
		MaxItems: maxItems,
		Timeout:  timeout,
	})
	if err != nil {
		return err
	}

	cmp, err := analyze.Compare(result.Configs, result.Times)
	if err != nil {
		return err
	}

	render.New(os.Stdout, jsonOut).Comparison(workloadName, cmp)

	if benchSave {
		store := history.New(cfg.Persistence.DataDir, log)
		id, err := store.Save(workloadName, cmp)
		if err != nil {
			return fmt.Errorf("save comparison: %w", err)
		}
		fmt.Printf("saved: %s\n", id)
	}

	return nil
}
