package health

import (
	"context"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStats is informational host data; it never affects the health status
type SystemStats struct {
	Load1         float64 `json:"load_1m"`
	Load5         float64 `json:"load_5m"`
	MemoryUsedPct float64 `json:"memory_used_pct"`
}

// systemProbe reads host statistics; the functions are replaced in tests
type systemProbe struct {
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
}

func newSystemProbe() systemProbe {
	return systemProbe{
		getLoadAvg:  load.AvgWithContext,
		getMemStats: mem.VirtualMemoryWithContext,
	}
}

// Collect returns nil when no statistic could be read
func (p systemProbe) Collect(ctx context.Context) *SystemStats {
	var (
		stats SystemStats
		found bool
	)

	if avg, err := p.getLoadAvg(ctx); err == nil && avg != nil {
		stats.Load1, stats.Load5 = avg.Load1, avg.Load5
		found = true
	}
	if vm, err := p.getMemStats(ctx); err == nil && vm != nil {
		stats.MemoryUsedPct = vm.UsedPercent
		found = true
	}

	if !found {
		return nil
	}
	return &stats
}
