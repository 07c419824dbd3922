package utils

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
)

// MemUsage is a snapshot of the Go runtime memory statistics
type MemUsage struct {
	AllocMiB      uint64
	TotalAllocMiB uint64
	SysMiB        uint64
	NumGC         uint32
}

func GetMemUsage() MemUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return MemUsage{
		AllocMiB:      bToMb(m.Alloc),
		TotalAllocMiB: bToMb(m.TotalAlloc),
		SysMiB:        bToMb(m.Sys),
		NumGC:         m.NumGC,
	}
}

func (mu MemUsage) String() string {
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		mu.AllocMiB, mu.TotalAllocMiB, mu.SysMiB, mu.NumGC)
}

// LogValue lets a MemUsage be passed straight to a slog.Logger as a group
func (mu MemUsage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("alloc_mib", mu.AllocMiB),
		slog.Uint64("total_alloc_mib", mu.TotalAllocMiB),
		slog.Uint64("sys_mib", mu.SysMiB),
		slog.Uint64("num_gc", uint64(mu.NumGC)),
	)
}

// IsFinite reports whether none of the values is NaN or infinite
func IsFinite(values ...float64) bool {
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
