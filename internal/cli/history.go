package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/parafox/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List or show saved comparisons",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, log := setup()
	store := history.New(cfg.Persistence.DataDir, log)

	if len(args) == 1 {
		rec, err := store.Load(args[0])
		if err != nil {
			return err
		}
		return printRecord(rec)
	}

	records, err := store.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no saved comparisons")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %s  %-14s best=%s\n",
			rec.ID,
			rec.SavedAt.Format("2006-01-02 15:04:05"),
			rec.Workload,
			rec.Names[rec.BestIndex],
		)
	}
	return nil
}

func printRecord(rec *history.Record) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("id:       %s\n", rec.ID)
	fmt.Printf("saved:    %s\n", rec.SavedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("workload: %s\n", rec.Workload)
	for i := range rec.Names {
		marker := "  "
		if i == rec.BestIndex {
			marker = "->"
		}
		fmt.Printf("%s %-20s %8.3fs  %.2fx  (%d workers, chunk %d, %s)\n",
			marker, rec.Names[i], rec.Times[i], rec.Speedups[i],
			rec.Workers[i], rec.Chunks[i], rec.Backends[i])
	}
	return nil
}
