//go:build windows

package shortcut

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// comProvisioner creates .lnk shortcuts through the WScript.Shell COM
// object, driven via PowerShell.
type comProvisioner struct {
	desktopDir   string
	startMenuDir string
}

func newPlatformProvisioner() (Provisioner, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}
	appData := os.Getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(home, "AppData", "Roaming")
	}
	return &comProvisioner{
		desktopDir:   filepath.Join(home, "Desktop"),
		startMenuDir: filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"),
	}, nil
}

func (p *comProvisioner) Create(kind Kind, d Descriptor) error {
	dir := p.desktopDir
	if kind == StartMenu {
		dir = p.startMenuDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	linkPath := filepath.Join(dir, d.Name+".lnk")
	script := buildScript(linkPath, d)

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %v (output: %s)", ErrCreationFailed, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// buildScript emits the WScript.Shell shortcut-creation script.
func buildScript(linkPath string, d Descriptor) string {
	var sb strings.Builder
	sb.WriteString("$ws = New-Object -ComObject WScript.Shell; ")
	fmt.Fprintf(&sb, "$s = $ws.CreateShortcut(%s); ", psQuote(linkPath))
	fmt.Fprintf(&sb, "$s.TargetPath = %s; ", psQuote(d.Target))
	if d.Arguments != "" {
		fmt.Fprintf(&sb, "$s.Arguments = %s; ", psQuote(d.Arguments))
	}
	if d.WorkingDir != "" {
		fmt.Fprintf(&sb, "$s.WorkingDirectory = %s; ", psQuote(d.WorkingDir))
	}
	if d.Description != "" {
		fmt.Fprintf(&sb, "$s.Description = %s; ", psQuote(d.Description))
	}
	if d.IconPath != "" {
		if _, err := os.Stat(d.IconPath); err == nil {
			fmt.Fprintf(&sb, "$s.IconLocation = %s; ", psQuote(d.IconPath))
		}
	}
	sb.WriteString("$s.Save()")
	return sb.String()
}

// psQuote single-quotes a string for PowerShell, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
