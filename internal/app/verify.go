package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/drillbur/drillbur-setup/internal/output"
	"github.com/drillbur/drillbur-setup/internal/verify"
	"github.com/spf13/cobra"
)

var (
	verifyWatch bool

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Check that all DRILLBUR application files are present",
		Long: `Checks each required application file against the install directory and
reports the complete missing set in one pass. Content is not inspected,
only existence.

With --watch, the check re-runs whenever the install directory changes,
until interrupted.`,
		Example: `  # One-shot check
  drillbur-setup verify

  # Keep checking while copying files into place
  drillbur-setup verify --watch`,
		RunE: runVerify,
	}
)

func init() {
	verifyCmd.Flags().BoolVar(&verifyWatch, "watch", false,
		"re-run the check when the install directory changes")
	RootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if verifyWatch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Printf("Watching %s (interrupt to stop)\n\n", cfg.InstallDir)
		err := verify.Watch(ctx, cfg.InstallDir, cfg.RequiredFiles, printReport)
		if ctx.Err() != nil {
			return nil // interrupted, not an error
		}
		return err
	}

	rep := verify.Files(cfg.InstallDir, cfg.RequiredFiles)
	printReport(rep)
	return rep.Err()
}

func printReport(rep verify.Report) {
	for _, name := range rep.Present {
		fmt.Println(output.StepLine("ok", name, ""))
	}
	for _, name := range rep.Missing {
		fmt.Println(output.StepLine("fail", name, "missing"))
	}
	if rep.OK() {
		fmt.Println("\nAll application files present.")
	} else {
		fmt.Printf("\n%d file(s) missing.\n", len(rep.Missing))
	}
}
