package sysinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect_LocalHost(t *testing.T) {
	r := Collect(context.Background())

	if r.CPUErr == nil {
		assert.GreaterOrEqual(t, r.CPU.Logical, 1)
	}
	if r.MemoryErr == nil {
		assert.Positive(t, r.Memory.Total)
		assert.LessOrEqual(t, r.Memory.Used, r.Memory.Total)
	}
	if r.OSErr == nil {
		assert.NotEmpty(t, r.OS.System)
	}
}

func TestPlatformName(t *testing.T) {
	assert.Equal(t, "Linux", platformName("linux"))
	assert.Equal(t, "Windows", platformName("windows"))
}
