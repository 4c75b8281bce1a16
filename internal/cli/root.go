package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/parafox/internal/config"
	"github.com/haskel/parafox/internal/logger"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	verbose bool

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "parafox",
	Short: "Execution strategy benchmarking and drift monitoring",
	Long: `Parafox measures real wall-clock behavior of candidate execution
strategies (sequential, goroutine pool, worker processes) for a workload,
compares them, and can keep re-checking the recommended configuration to
detect drift over time.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// setup loads configuration and builds the logger shared by all commands.
func setup() (*config.Config, *slog.Logger) {
	cfg := config.LoadOrDefault(cfgFile)

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return cfg, logger.New(level, cfg.Logging.Format)
}

// makeDataset generates the synthetic dataset the built-in workloads chew
// on. Values vary mildly so chunks are not perfectly uniform.
func makeDataset(size int) []float64 {
	items := make([]float64, size)
	for i := range items {
		items[i] = 1000 + float64(i%500)
	}
	return items
}
