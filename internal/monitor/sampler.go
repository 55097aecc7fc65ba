// Package monitor implements the Live System Monitor: a full-screen
// bubbletea dashboard of CPU and memory load.
package monitor

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Sample is one reading of system load.
type Sample struct {
	CPUPercent float64
	MemUsed    uint64
	MemTotal   uint64
	MemPercent float64
}

// Sampler takes one reading.
type Sampler func(ctx context.Context) (Sample, error)

// SystemSampler reads CPU and memory usage from the host. CPU usage is
// measured since the previous call, so the first reading may be zero.
func SystemSampler(ctx context.Context) (Sample, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return Sample{}, fmt.Errorf("cpu percent: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("virtual memory: %w", err)
	}

	s := Sample{MemUsed: vm.Used, MemTotal: vm.Total, MemPercent: vm.UsedPercent}
	if len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	return s, nil
}
