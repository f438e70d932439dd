//go:build !windows

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// desktopProvisioner writes freedesktop .desktop entries.
type desktopProvisioner struct {
	desktopDir string // user-facing launch point
	appsDir    string // applications menu
}

func newPlatformProvisioner() (Provisioner, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}
	return &desktopProvisioner{
		desktopDir: filepath.Join(home, "Desktop"),
		appsDir:    filepath.Join(home, ".local", "share", "applications"),
	}, nil
}

func (p *desktopProvisioner) Create(kind Kind, d Descriptor) error {
	dir := p.desktopDir
	if kind == StartMenu {
		dir = p.appsDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	path := filepath.Join(dir, entryFileName(d.Name))
	if err := os.WriteFile(path, []byte(desktopEntry(d)), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}
	return nil
}

// entryFileName derives a .desktop file name from the display name.
func entryFileName(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return slug + ".desktop"
}

func desktopEntry(d Descriptor) string {
	var sb strings.Builder
	sb.WriteString("[Desktop Entry]\n")
	sb.WriteString("Type=Application\n")
	fmt.Fprintf(&sb, "Name=%s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(&sb, "Comment=%s\n", d.Description)
	}
	exec := d.Target
	if d.Arguments != "" {
		exec += " " + d.Arguments
	}
	fmt.Fprintf(&sb, "Exec=%s\n", exec)
	if d.WorkingDir != "" {
		fmt.Fprintf(&sb, "Path=%s\n", d.WorkingDir)
	}
	if d.IconPath != "" {
		if _, err := os.Stat(d.IconPath); err == nil {
			fmt.Fprintf(&sb, "Icon=%s\n", d.IconPath)
		}
	}
	sb.WriteString("Terminal=false\n")
	return sb.String()
}
