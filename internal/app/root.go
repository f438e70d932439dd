package app

import (
	"fmt"

	"github.com/drillbur/drillbur-setup/internal/config"
	"github.com/spf13/cobra"
)

var (
	installDir string

	// RootCmd is the root command for drillbur-setup
	RootCmd = &cobra.Command{
		Use:   "drillbur-setup",
		Short: "Install, package, and launch the DRILLBUR desktop application",
		Long: `drillbur-setup provisions a machine to run DRILLBUR: it finds a usable
Python runtime (installing one if needed), ensures the stats module, checks
the application files, generates the icon asset, optionally packages a
standalone executable, and creates launch shortcuts.

Quick Start:
  1. drillbur-setup verify       # check the application files first
  2. drillbur-setup install      # provision everything
  3. drillbur-setup install --launch   # ...and start DRILLBUR right away

Features:
  • First-fit Python runtime detection with one-shot remediation
  • Dependency check-and-install for the stats module
  • Deterministic procedural icon generation (.ico)
  • Optional PyInstaller bundling (--build-exe, --onefile)
  • Desktop and start-menu shortcuts with wrapper launch scripts
  • Install run history (drillbur-setup history)

Examples:
  # Full install into the current directory
  drillbur-setup install

  # Install plus a single-file executable bundle
  drillbur-setup install --build-exe --onefile

  # Diagnose the environment without changing anything
  drillbur-setup doctor

  # Re-check application files whenever they change
  drillbur-setup verify --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("drillbur-setup: provisioning tooling for DRILLBUR")
			fmt.Println()
			fmt.Println("Run 'drillbur-setup install' to provision this machine.")
			fmt.Println("Run 'drillbur-setup --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&installDir, "install-dir", "",
		"application directory (default: current directory)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig builds the effective configuration for the selected install
// directory.
func loadConfig() (*config.Config, error) {
	return config.Load(installDir)
}
