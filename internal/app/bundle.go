package app

import (
	"fmt"

	"github.com/drillbur/drillbur-setup/internal/bundle"
	"github.com/drillbur/drillbur-setup/internal/output"
	"github.com/drillbur/drillbur-setup/internal/python"
	"github.com/spf13/cobra"
)

var (
	bundleOneFile bool

	bundleCmd = &cobra.Command{
		Use:   "bundle",
		Short: "Package DRILLBUR into a standalone executable",
		Long: `Invokes PyInstaller on the entry script with the data files, the
force-included modules, and the exclude list. The default layout is a
directory next to an executable stub; --onefile produces one
self-extracting executable at the cost of slower cold start.`,
		Example: `  # Directory bundle (fast cold start)
  drillbur-setup bundle

  # Single-file executable
  drillbur-setup bundle --onefile`,
		RunE: runBundle,
	}
)

func init() {
	bundleCmd.Flags().BoolVar(&bundleOneFile, "onefile", false,
		"package as a single self-extracting executable")
	RootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt, err := python.NewLocator().Locate()
	if err != nil {
		return err
	}

	mode := bundle.MultiFile
	if bundleOneFile {
		mode = bundle.SingleFile
	}

	spinner := output.NewSpinner(fmt.Sprintf("Packaging %s (%s)", cfg.AppName, mode))
	spinner.Start()

	out, err := bundle.Assemble(rt, bundle.Options{
		AppName:       cfg.AppName,
		EntryScript:   cfg.EntryScript,
		WorkDir:       cfg.InstallDir,
		IconPath:      cfg.IconPath,
		HiddenImports: cfg.HiddenImports,
		Excludes:      cfg.Excludes,
		DataFiles:     cfg.DataFiles,
		Mode:          mode,
	}, nil)
	if err != nil {
		spinner.StopWithMessage(output.StepLine("fail", "Package bundle", ""))
		return err
	}

	spinner.StopWithMessage(output.StepLine("ok", "Package bundle", out))
	return nil
}
