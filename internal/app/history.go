package app

import (
	"fmt"
	"time"

	"github.com/drillbur/drillbur-setup/internal/config"
	"github.com/drillbur/drillbur-setup/internal/output"
	"github.com/drillbur/drillbur-setup/internal/store"
	"github.com/spf13/cobra"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show past install runs",
		Long: `Lists recorded installer runs, newest first, with each step's outcome.
History is recorded automatically by 'drillbur-setup install'.`,
		RunE: runHistory,
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of runs to show (0 = all)")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, err := config.HistoryDBPath()
	if err != nil {
		return err
	}
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No install runs recorded yet.")
		fmt.Println("Run 'drillbur-setup install' first.")
		return nil
	}

	for i, run := range runs {
		if i > 0 {
			fmt.Println()
		}
		duration := run.FinishedAt.Sub(run.StartedAt).Round(100 * time.Millisecond)
		fmt.Printf("%s  %s  (%s)\n",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.Outcome, duration)
		for _, step := range run.Steps {
			fmt.Println("  " + output.StepLine(step.Status, step.Step, step.Message))
		}
	}
	return nil
}
