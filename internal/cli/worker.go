package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/parafox/internal/bench"
)

// workerCmd is the child-process end of the process backend. It is spawned
// by the benchmark runner, never by a user, so it stays hidden.
var workerCmd = &cobra.Command{
	Use:    bench.WorkerCommand,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bench.RunWorker(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
