package app

import (
	"fmt"
	"os"

	"github.com/drillbur/drillbur-setup/internal/icon"
	"github.com/spf13/cobra"
)

var (
	iconForce bool

	iconCmd = &cobra.Command{
		Use:   "icon",
		Short: "Generate the DRILLBUR icon asset",
		Long: `Procedurally generates the 32×32 application icon and writes it as a
single-image .ico container under the install directory. An existing icon
file is left untouched unless --force is given.`,
		RunE: runIcon,
	}
)

func init() {
	iconCmd.Flags().BoolVar(&iconForce, "force", false,
		"regenerate even if the icon file already exists")
	RootCmd.AddCommand(iconCmd)
}

func runIcon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.IconFile()
	if iconForce {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove existing icon: %w", err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Println("Icon already exists:", path)
		return nil
	}

	if err := icon.Generate(path); err != nil {
		return err
	}
	fmt.Println("Icon written:", path)
	return nil
}
