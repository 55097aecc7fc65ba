//go:build windows

package elevate

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Required is true on Windows: cleanup, SFC and powercfg need admin rights.
func (System) Required() bool { return true }

// IsElevated checks the process token for TokenElevation.
func (System) IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch asks the shell to start the current executable with the "runas"
// verb, which shows the UAC prompt.
func (System) Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	args, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(os.Args[1:]))
	if err != nil {
		return err
	}
	dir, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return err
	}

	if err := windows.ShellExecute(0, verb, file, args, dir, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("ShellExecute runas: %w", err)
	}
	return nil
}
