//go:build !windows

package clean

import "github.com/lakshaymaurya-felt/pccare/internal/core"

// QueryRecycleBin is only implemented on Windows.
func QueryRecycleBin() (RecycleBinInfo, error) {
	return RecycleBinInfo{}, core.ErrUnsupported
}

// EmptyRecycleBin is only implemented on Windows.
func EmptyRecycleBin() error {
	return core.ErrUnsupported
}
