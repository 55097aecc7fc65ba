// Package sysinfo gathers the hardware summary printed by the
// System Information Report.
package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
)

// OSInfo describes the operating system.
type OSInfo struct {
	Hostname string
	System   string // "Windows 11 (Build 22621)" or platform name
	Release  string
	Version  string
	Arch     string
}

// CPUInfo describes the processor.
type CPUInfo struct {
	Model    string
	Physical int
	Logical  int
}

// MemoryInfo describes physical memory.
type MemoryInfo struct {
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// Report is a point-in-time hardware summary. A section whose Err is set
// could not be collected; the others are still valid.
type Report struct {
	OS    OSInfo
	OSErr error

	CPU    CPUInfo
	CPUErr error

	Memory    MemoryInfo
	MemoryErr error

	// GPUs lists video controller names. GPUErr is core.ErrUnsupported on
	// platforms without WMI, in which case the section is omitted.
	GPUs   []string
	GPUErr error
}

// Collect queries the host. It never fails as a whole; per-section errors
// are recorded in the Report.
func Collect(ctx context.Context) Report {
	var r Report
	r.OS, r.OSErr = collectOS(ctx)
	r.CPU, r.CPUErr = collectCPU(ctx)
	r.Memory, r.MemoryErr = collectMemory(ctx)
	r.GPUs, r.GPUErr = listGPUs(ctx)
	return r
}

func collectOS(ctx context.Context) (OSInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return OSInfo{}, fmt.Errorf("host info: %w", err)
	}
	o := OSInfo{
		Hostname: info.Hostname,
		System:   platformName(info.OS),
		Release:  info.PlatformVersion,
		Version:  info.KernelVersion,
		Arch:     info.KernelArch,
	}
	if o.Arch == "" {
		o.Arch = runtime.GOARCH
	}
	if v, ok := core.CurrentWindowsVersion(); ok {
		o.System = v.String()
	} else if info.Platform != "" {
		o.System = info.Platform
	}
	return o, nil
}

func collectCPU(ctx context.Context) (CPUInfo, error) {
	var c CPUInfo

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return c, fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) > 0 {
		c.Model = strings.TrimSpace(infos[0].ModelName)
	}

	if c.Physical, err = cpu.CountsWithContext(ctx, false); err != nil {
		return c, fmt.Errorf("physical cores: %w", err)
	}
	if c.Logical, err = cpu.CountsWithContext(ctx, true); err != nil {
		return c, fmt.Errorf("logical cores: %w", err)
	}
	return c, nil
}

func collectMemory(ctx context.Context) (MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("virtual memory: %w", err)
	}
	return MemoryInfo{Total: vm.Total, Used: vm.Used, UsedPercent: vm.UsedPercent}, nil
}

func platformName(goos string) string {
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "" {
		return "unknown"
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
