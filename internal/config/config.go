// Package config provides the installer configuration for drillbur-setup.
//
// All tunables live in a single Config struct constructed once at process
// start and passed explicitly into each component. Defaults match the stock
// DRILLBUR layout; a drillbur-setup.yaml in the install directory and
// DRILLBUR_* environment variables override them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DataFile maps a source file to its destination inside a packaged bundle.
type DataFile struct {
	Src  string `yaml:"src"`
	Dest string `yaml:"dest"`
}

// Config holds every path, name, and knob the installer needs.
type Config struct {
	// InstallDir is the directory holding the application files. Defaults
	// to the current working directory.
	InstallDir string `yaml:"install_dir"`

	// AppName is the display name used for shortcuts and bundles.
	AppName string `yaml:"app_name"`

	// Description is attached to the shortcuts the installer creates.
	Description string `yaml:"description"`

	// EntryScript is the script all shortcuts and bundles point at.
	EntryScript string `yaml:"entry_script"`

	// RequiredFiles are checked (relative to InstallDir) before any
	// mutation happens. All three application files by default.
	RequiredFiles []string `yaml:"required_files"`

	// IconPath is where the generated icon lands, relative to InstallDir.
	IconPath string `yaml:"icon_path"`

	// Port is the local port the installed application binds.
	Port int `yaml:"port"`

	// StatsModule is the runtime dependency probed and installed on demand.
	StatsModule string `yaml:"stats_module"`

	// HiddenImports are modules the packager must force-include.
	HiddenImports []string `yaml:"hidden_imports"`

	// Excludes are large unrelated libraries the packager must leave out.
	Excludes []string `yaml:"excludes"`

	// DataFiles are bundled alongside the entry script.
	DataFiles []DataFile `yaml:"data_files"`
}

// ConfigFileName is looked up inside the install directory.
const ConfigFileName = "drillbur-setup.yaml"

// Default returns the stock DRILLBUR configuration rooted at installDir.
// An empty installDir means the current working directory.
func Default(installDir string) *Config {
	if installDir == "" {
		installDir = "."
	}
	return &Config{
		InstallDir:  installDir,
		AppName:     "DRILLBUR",
		Description: "DRILLBUR — Windows PC Optimizer",
		EntryScript: "drillbur_app.py",
		RequiredFiles: []string{
			"drillbur_app.py",
			"drillbur_backend.py",
			"Drillbur.html",
		},
		IconPath:      filepath.Join("assets", "drillbur.ico"),
		Port:          7474,
		StatsModule:   "psutil",
		HiddenImports: []string{"psutil"},
		Excludes:      []string{"numpy", "pandas", "matplotlib", "scipy", "PIL"},
		DataFiles: []DataFile{
			{Src: "Drillbur.html", Dest: "."},
			{Src: filepath.Join("assets", "drillbur.ico"), Dest: "assets"},
		},
	}
}

// Load builds the effective configuration: defaults, then the optional YAML
// file in the install directory, then environment overrides. A missing
// config file is not an error.
func Load(installDir string) (*Config, error) {
	cfg := Default(installDir)

	path := filepath.Join(cfg.InstallDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// applyEnv layers DRILLBUR_* environment variables over cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DRILLBUR_INSTALL_DIR"); v != "" {
		cfg.InstallDir = v
	}
	if v := os.Getenv("DRILLBUR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("DRILLBUR_STATS_MODULE"); v != "" {
		cfg.StatsModule = v
	}
}

// IconFile returns the absolute icon path.
func (c *Config) IconFile() string {
	return filepath.Join(c.InstallDir, c.IconPath)
}

// EntryScriptPath returns the absolute entry script path.
func (c *Config) EntryScriptPath() string {
	return filepath.Join(c.InstallDir, c.EntryScript)
}

// StateDir returns the drillbur-setup state directory (~/.drillbur-setup),
// creating it if needed.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".drillbur-setup")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return dir, nil
}

// HistoryDBPath returns the path of the install run history database.
func HistoryDBPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
