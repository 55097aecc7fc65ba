//go:build !windows

package elevate

import (
	"os"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
)

// Required is false off Windows; the menu runs with the caller's rights.
func (System) Required() bool { return false }

// IsElevated reports whether the effective user is root.
func (System) IsElevated() bool { return os.Geteuid() == 0 }

// Relaunch is not available without UAC.
func (System) Relaunch() error { return core.ErrUnsupported }
