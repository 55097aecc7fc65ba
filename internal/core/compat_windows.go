//go:build windows

package core

import "golang.org/x/sys/windows"

// CurrentWindowsVersion returns the running Windows version.
// Uses RtlGetNtVersionNumbers which works on all Windows versions without
// manifest requirements.
func CurrentWindowsVersion() (WindowsVersion, bool) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	// RtlGetNtVersionNumbers returns build with high bits set; mask them off
	return WindowsVersion{Major: major, Minor: minor, Build: build & 0xFFFF}, true
}
