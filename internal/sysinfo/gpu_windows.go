//go:build windows

package sysinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32VideoController struct {
	Name string
}

// listGPUs reads video controller names from WMI.
func listGPUs(_ context.Context) ([]string, error) {
	var dst []win32VideoController
	if err := wmi.Query("SELECT Name FROM Win32_VideoController", &dst); err != nil {
		return nil, fmt.Errorf("query Win32_VideoController: %w", err)
	}
	names := make([]string, 0, len(dst))
	for _, c := range dst {
		if n := strings.TrimSpace(c.Name); n != "" {
			names = append(names, n)
		}
	}
	return names, nil
}
