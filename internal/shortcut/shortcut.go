// Package shortcut creates OS launch points for the installed application.
//
// The Provisioner interface keeps the orchestrator platform-agnostic: on
// Windows shortcuts are real .lnk objects created through WScript.Shell,
// elsewhere they are freedesktop .desktop entries. Desktop and start-menu
// shortcuts are provisioned independently; one failing never blocks the
// other.
package shortcut

import (
	"errors"
	"fmt"
)

// Kind selects where the launch point lives.
type Kind int

const (
	// Desktop is the user-facing launch point.
	Desktop Kind = iota
	// StartMenu is the system-wide launch point (applications menu on
	// non-Windows hosts).
	StartMenu
)

func (k Kind) String() string {
	switch k {
	case Desktop:
		return "desktop"
	case StartMenu:
		return "start menu"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrCreationFailed wraps any failure to materialize a shortcut.
var ErrCreationFailed = errors.New("shortcut creation failed")

// Descriptor holds everything a shortcut records. IconPath may be empty,
// in which case the host's default glyph is used.
type Descriptor struct {
	Name        string
	Target      string
	Arguments   string
	WorkingDir  string
	Description string
	IconPath    string
}

// Provisioner creates a shortcut of the given kind.
type Provisioner interface {
	Create(kind Kind, d Descriptor) error
}

// New returns the host platform's provisioner.
func New() (Provisioner, error) {
	return newPlatformProvisioner()
}
