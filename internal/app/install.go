package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/drillbur/drillbur-setup/internal/bundle"
	"github.com/drillbur/drillbur-setup/internal/config"
	"github.com/drillbur/drillbur-setup/internal/installer"
	"github.com/drillbur/drillbur-setup/internal/output"
	"github.com/drillbur/drillbur-setup/internal/store"
	"github.com/spf13/cobra"
)

var (
	installBuildExe  bool
	installShortcuts bool
	installLaunch    bool
	installOneFile   bool

	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Provision this machine to run DRILLBUR",
		Long: `Runs the full provisioning sequence:

  1. Locate a Python 3.8+ runtime (remediating via the package manager once)
  2. Ensure the stats module is importable (pip install if needed)
  3. Verify all application files are present
  4. Generate the icon asset (no-op if it already exists)
  5. Package a standalone executable (only with --build-exe)
  6. Create desktop and start-menu shortcuts plus wrapper launch scripts

Only a missing runtime or missing application files abort the install;
anything else is reported as a warning and the sequence continues.`,
		Example: `  # Standard install
  drillbur-setup install

  # Install and start DRILLBUR immediately
  drillbur-setup install --launch

  # Also build a one-file executable
  drillbur-setup install --build-exe --onefile`,
		RunE: runInstall,
	}
)

func init() {
	installCmd.Flags().BoolVar(&installBuildExe, "build-exe", false,
		"also package a standalone executable")
	installCmd.Flags().BoolVar(&installShortcuts, "create-shortcut", true,
		"create desktop and start-menu shortcuts")
	installCmd.Flags().BoolVar(&installLaunch, "launch", false,
		"launch DRILLBUR after a successful install")
	installCmd.Flags().BoolVar(&installOneFile, "onefile", false,
		"package as a single self-extracting executable (with --build-exe)")

	RootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode := bundle.MultiFile
	if installOneFile {
		mode = bundle.SingleFile
	}

	ins := installer.New(cfg, installer.Options{
		BuildExe:        installBuildExe,
		BundleMode:      mode,
		CreateShortcuts: installShortcuts,
		Launch:          installLaunch,
	})

	fmt.Printf("Installing %s into %s\n\n", cfg.AppName, cfg.InstallDir)

	started := time.Now()
	ins.OnStep(func(r installer.StepResult) {
		fmt.Println(output.StepLine(r.Status.String(), r.Step, r.Message))
	})

	results, runErr := ins.Run()
	finished := time.Now()

	recordHistory(results, runErr, started, finished)

	fmt.Println()
	fmt.Println(output.Summary(summaryTitle(results, runErr), summaryLines(results)))

	// Fatal conditions exit non-zero; warnings do not.
	return installExitErr(runErr)
}

// installExitErr maps a fatal run error to the terse message main prints.
// The step lines and summary box already carry the detail.
func installExitErr(runErr error) error {
	if runErr == nil {
		return nil
	}
	return errors.New("install aborted")
}

// recordHistory persists the run, best-effort: history is a convenience,
// never a reason to fail an install.
func recordHistory(results []installer.StepResult, runErr error, started, finished time.Time) {
	dbPath, err := config.HistoryDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		return
	}
	db, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		return
	}
	defer db.Close()

	run := store.InstallRun{
		StartedAt:  started,
		FinishedAt: finished,
		Outcome:    store.OutcomeCompleted,
	}
	if runErr != nil {
		run.Outcome = store.OutcomeFatal
	}
	for _, r := range results {
		run.Steps = append(run.Steps, store.StepRecord{
			Step:    r.Step,
			Status:  r.Status.String(),
			Message: r.Message,
		})
	}
	if _, err := db.SaveRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
	}
}

func summaryTitle(results []installer.StepResult, runErr error) string {
	if runErr != nil {
		return "Install aborted"
	}
	for _, r := range results {
		if r.Status == installer.StatusWarn {
			return "Install complete (with warnings)"
		}
	}
	return "Install complete"
}

func summaryLines(results []installer.StepResult) []string {
	var ok, warn, fail int
	for _, r := range results {
		switch r.Status {
		case installer.StatusOK:
			ok++
		case installer.StatusWarn:
			warn++
		case installer.StatusFail:
			fail++
		}
	}
	lines := []string{fmt.Sprintf("%d ok, %d warnings, %d failures", ok, warn, fail)}
	for _, r := range results {
		if r.Status != installer.StatusOK {
			lines = append(lines, output.StepLine(r.Status.String(), r.Step, r.Message))
		}
	}
	return lines
}
