package app

import (
	"fmt"

	"github.com/drillbur/drillbur-setup/internal/launcher"
	"github.com/drillbur/drillbur-setup/internal/python"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start DRILLBUR detached from this process",
	Long: `Spawns the DRILLBUR application and returns immediately; the application
keeps running after drillbur-setup exits. If something is already
listening on the application port, no second instance is started.`,
	RunE: runLaunch,
}

func init() {
	RootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !launcher.PortFree(cfg.Port) {
		fmt.Printf("%s already running — http://127.0.0.1:%d\n", cfg.AppName, cfg.Port)
		return nil
	}

	rt, err := python.NewLocator().Locate()
	if err != nil {
		return err
	}

	if err := launcher.Detach(rt.Path, cfg.EntryScriptPath(), cfg.InstallDir); err != nil {
		return err
	}
	fmt.Printf("%s started — http://127.0.0.1:%d\n", cfg.AppName, cfg.Port)
	return nil
}
