//go:build windows

package clean

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ─── Shell32 Syscalls ────────────────────────────────────────────────────────

var (
	modShell32          = windows.NewLazySystemDLL("shell32.dll")
	procEmptyRecycleBin = modShell32.NewProc("SHEmptyRecycleBinW")
	procQueryRecycleBin = modShell32.NewProc("SHQueryRecycleBinW")
)

const (
	sherbNoConfirmation = 0x00000001
	sherbNoProgressUI   = 0x00000002
	sherbNoSound        = 0x00000004

	// E_UNEXPECTED is what SHEmptyRecycleBinW returns for an empty bin.
	hresultUnexpected = 0x8000FFFF
)

// shQueryRBInfo mirrors the Windows SHQUERYRBINFO struct.
// Go's natural alignment adds padding after cbSize on AMD64,
// matching the C struct layout on both 32-bit and 64-bit.
type shQueryRBInfo struct {
	cbSize      uint32
	i64Size     int64
	i64NumItems int64
}

// QueryRecycleBin returns the total size and item count of the Recycle Bin
// across all drives using the SHQueryRecycleBinW Shell API.
func QueryRecycleBin() (RecycleBinInfo, error) {
	var info shQueryRBInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, _ := procQueryRecycleBin.Call(
		0, // NULL = query all drives
		uintptr(unsafe.Pointer(&info)),
	)
	if ret != 0 {
		return RecycleBinInfo{}, fmt.Errorf("SHQueryRecycleBinW failed: HRESULT 0x%08x", uint32(ret))
	}
	return RecycleBinInfo{Size: info.i64Size, Items: info.i64NumItems}, nil
}

// EmptyRecycleBin empties the Recycle Bin on all drives without UI or sound.
func EmptyRecycleBin() error {
	flags := uintptr(sherbNoConfirmation | sherbNoProgressUI | sherbNoSound)
	ret, _, _ := procEmptyRecycleBin.Call(0, 0, flags)

	hr := uint32(ret)
	if hr != 0 && hr != hresultUnexpected {
		return fmt.Errorf("SHEmptyRecycleBinW failed: HRESULT 0x%08x", hr)
	}
	return nil
}
