// Package collector reads point-in-time process and host resource usage
// through gopsutil.
//
// CPU percentages follow gopsutil's native convention: a process's value is
// uncapped and may exceed 100 on multi-core hosts (a fully parallel process
// on four cores can report close to 400). Memory percentages are the share
// of total system memory, 0-100.
package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessSample represents one OS process at sampling time. Samples are
// transient: every snapshot produces a fresh set and none are retained
// across cycles.
type ProcessSample struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float64
}

// Result pairs a sample with the error that prevented reading it. A Result
// with a non-nil Err records a process whose details could not be read
// (exited between enumeration and access, permission denied, zombie entry).
type Result struct {
	Sample ProcessSample
	Err    error
}

// Collector enumerates live OS processes. The snapshot is best-effort: the
// returned error is reserved for enumeration itself failing; individual
// unreadable processes are reported as error Results.
type Collector interface {
	Snapshot(nameFilter string) ([]Result, error)
}

// GopsutilCollector implements Collector on top of gopsutil.
type GopsutilCollector struct{}

// NewGopsutilCollector creates a new GopsutilCollector
func NewGopsutilCollector() *GopsutilCollector {
	return &GopsutilCollector{}
}

// Snapshot enumerates all currently live processes and reads PID, name,
// CPU% and memory% for each. When nameFilter is non-empty only processes
// whose name exactly matches it are included; a process whose name cannot
// be read is skipped silently in that case, since it cannot be confirmed as
// the filtered target.
func (c *GopsutilCollector) Snapshot(nameFilter string) ([]Result, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	results := make([]Result, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			if nameFilter == "" {
				results = append(results, Result{
					Sample: ProcessSample{PID: proc.Pid},
					Err:    fmt.Errorf("failed to read name of process %d: %w", proc.Pid, err),
				})
			}
			continue
		}
		if nameFilter != "" && name != nameFilter {
			continue
		}

		cpuPercent, err := proc.CPUPercent()
		if err != nil {
			results = append(results, Result{
				Sample: ProcessSample{PID: proc.Pid, Name: name},
				Err:    fmt.Errorf("failed to read CPU usage of process %s (PID %d): %w", name, proc.Pid, err),
			})
			continue
		}

		memPercent, err := proc.MemoryPercent()
		if err != nil {
			results = append(results, Result{
				Sample: ProcessSample{PID: proc.Pid, Name: name},
				Err:    fmt.Errorf("failed to read memory usage of process %s (PID %d): %w", name, proc.Pid, err),
			})
			continue
		}

		results = append(results, Result{
			Sample: ProcessSample{
				PID:        proc.Pid,
				Name:       name,
				CPUPercent: cpuPercent,
				MemPercent: float64(memPercent),
			},
		})
	}

	return results, nil
}
