package utils

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite())
	assert.True(t, IsFinite(0, -1e300, 1e-300))
	assert.False(t, IsFinite(1, math.NaN()))
	assert.False(t, IsFinite(math.Inf(1), 2))
}

func TestMemUsage(t *testing.T) {
	mu := MemUsage{AllocMiB: 1, TotalAllocMiB: 2, SysMiB: 3, NumGC: 4}
	assert.Equal(t, "Alloc = 1 MiB TotalAlloc = 2 MiB Sys = 3 MiB NumGC = 4", mu.String())

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("memory", "usage", mu)
	assert.Contains(t, buf.String(), "usage.alloc_mib=1 usage.total_alloc_mib=2 usage.sys_mib=3 usage.num_gc=4")

	u := GetMemUsage()
	assert.GreaterOrEqual(t, u.TotalAllocMiB, u.AllocMiB)
}
