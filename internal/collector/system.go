package collector

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemUsage represents current host-wide resource usage
type SystemUsage struct {
	CPUPercent float64 // Host CPU usage percentage
	MemPercent float64 // Host memory used percentage
	MemUsedMB  uint64  // Host memory used (MB)
	MemTotalMB uint64  // Total host memory (MB)
}

// ReadSystemUsage returns a best-effort host usage reading. Fields that
// cannot be read are left at zero.
func ReadSystemUsage() SystemUsage {
	usage := SystemUsage{}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.MemPercent = vmStat.UsedPercent
		usage.MemUsedMB = vmStat.Used / 1024 / 1024
		usage.MemTotalMB = vmStat.Total / 1024 / 1024
	}

	if cpuPercents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		usage.CPUPercent = cpuPercents[0]
	}

	return usage
}
