//go:build !windows

package sysinfo

import (
	"context"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
)

func listGPUs(_ context.Context) ([]string, error) {
	return nil, core.ErrUnsupported
}
