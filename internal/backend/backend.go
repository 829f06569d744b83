// Package backend detects which native package manager is available on the
// host and maps package identifiers onto backend-specific install commands.
package backend

import (
	"fmt"

	"github.com/conn-castle/appdeck/internal/messages"
)

// Backend identifies the native package manager selected for a run. It is
// resolved once at startup and treated as a snapshot; a manager installed
// mid-run is not re-detected.
type Backend int

const (
	// Unknown means no supported package manager was detected.
	Unknown Backend = iota
	// Apt is the Debian/Ubuntu package manager.
	Apt
	// Dnf is the Fedora/RHEL package manager.
	Dnf
	// Pacman is the Arch package manager.
	Pacman
)

// String returns the backend's executable name, or "unknown".
func (b Backend) String() string {
	switch b {
	case Apt:
		return "apt"
	case Dnf:
		return "dnf"
	case Pacman:
		return "pacman"
	default:
		return "unknown"
	}
}

// Command returns the argument vector for a non-interactive install of
// packageID through b. The vector is executed argv-style, never through a
// shell, so packageID cannot be interpreted by one. Unknown has no command.
func Command(b Backend, packageID string) ([]string, error) {
	switch b {
	case Apt:
		return []string{"sudo", "apt", "install", "-y", packageID}, nil
	case Dnf:
		return []string{"sudo", "dnf", "install", "-y", packageID}, nil
	case Pacman:
		return []string{"sudo", "pacman", "-S", "--noconfirm", packageID}, nil
	default:
		return nil, fmt.Errorf(messages.BackendNoCommandFmt, b)
	}
}
