package core

import "fmt"

// WindowsVersion holds the NT version triple reported by the kernel.
type WindowsVersion struct {
	Major uint32
	Minor uint32
	Build uint32
}

// Build numbers for feature gates.
const (
	// BuildWindows10April2018 is Windows 10 1803, the first release that
	// ships the Ultimate Performance power scheme.
	BuildWindows10April2018 = 17134

	// BuildWindows11 is the first Windows 11 build.
	BuildWindows11 = 22000
)

// IsWindows10OrAbove checks if the version is Windows 10 or later.
// Windows 10 is major version 10.
func (v WindowsVersion) IsWindows10OrAbove() bool {
	return v.Major >= 10
}

// IsWindows11OrAbove checks if the version is Windows 11 or later.
// Windows 11 is identified by build >= 22000.
func (v WindowsVersion) IsWindows11OrAbove() bool {
	return v.Major >= 10 && v.Build >= BuildWindows11
}

// AtLeastBuild reports whether this is Windows 10+ with at least the given build.
func (v WindowsVersion) AtLeastBuild(build uint32) bool {
	return v.Major > 10 || (v.Major == 10 && v.Build >= build)
}

// Name returns the marketing name for the version.
func (v WindowsVersion) Name() string {
	switch {
	case v.Major == 10 && v.Build >= BuildWindows11:
		return "Windows 11"
	case v.Major == 10:
		return "Windows 10"
	case v.Major == 6 && v.Minor == 3:
		return "Windows 8.1"
	case v.Major == 6 && v.Minor == 2:
		return "Windows 8"
	case v.Major == 6 && v.Minor == 1:
		return "Windows 7"
	case v.Major == 6 && v.Minor == 0:
		return "Windows Vista"
	default:
		return fmt.Sprintf("Windows %d.%d", v.Major, v.Minor)
	}
}

// String returns a human-readable version string.
// Examples: "Windows 10 (Build 19045)", "Windows 11 (Build 22621)"
func (v WindowsVersion) String() string {
	return fmt.Sprintf("%s (Build %d)", v.Name(), v.Build)
}
