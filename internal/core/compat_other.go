//go:build !windows

package core

// CurrentWindowsVersion reports false on non-Windows hosts.
func CurrentWindowsVersion() (WindowsVersion, bool) {
	return WindowsVersion{}, false
}
