// Package monitor implements the polling loop that samples OS processes and
// warns when a process exceeds the configured CPU or memory thresholds.
package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"procwatch/internal/collector"
	"procwatch/internal/config"
)

// Monitor runs monitoring cycles until interrupted. Its lifecycle has two
// states: running from the moment Run is entered, and stopped once Run
// returns (terminal). All configuration is fixed at construction time.
type Monitor struct {
	config    *config.Config
	collector collector.Collector
	logger    zerolog.Logger
}

// New creates a Monitor reading snapshots from the given collector.
func New(cfg *config.Config, col collector.Collector, logger zerolog.Logger) *Monitor {
	return &Monitor{
		config:    cfg,
		collector: col,
		logger:    logger,
	}
}

// Run executes monitoring cycles until ctx is cancelled. Cancellation wakes
// the inter-cycle wait immediately; it never waits out the remaining
// interval. A cycle-level failure (process enumeration itself failing) is
// logged and ends the run; it is the only abnormal exit path. Per-process
// read failures are logged and never end the run.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info().Msg("Starting process monitoring...")

	interval := time.Duration(m.config.IntervalSeconds) * time.Second
	for {
		if ctx.Err() != nil {
			m.logger.Info().Msg("Process monitoring stopped by user.")
			return nil
		}

		if err := m.runCycle(); err != nil {
			m.logger.Error().Msgf("An error occurred: %v", err)
			return err
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
}

// runCycle performs one enumeration-filter-compare-log pass.
func (m *Monitor) runCycle() error {
	results, err := m.collector.Snapshot(m.config.ProcessName)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			m.logger.Error().Msgf("Error accessing process info. %v", res.Err)
			continue
		}
		m.checkSample(res.Sample)
	}

	m.logSystemUsage()
	return nil
}

// checkSample compares one sample against both thresholds. The checks are
// independent: a single process can produce a CPU warning and a memory
// warning in the same cycle. Comparison is strictly greater than; a reading
// exactly at the threshold does not warn.
func (m *Monitor) checkSample(sample collector.ProcessSample) {
	if sample.CPUPercent > m.config.CPUThreshold {
		m.logger.Warn().Msgf("Process %s (PID: %d) CPU usage: %.2f%% exceeds threshold: %.2f%%",
			sample.Name, sample.PID, sample.CPUPercent, m.config.CPUThreshold)
	}

	if sample.MemPercent > m.config.MemThreshold {
		m.logger.Warn().Msgf("Process %s (PID: %d) Memory usage: %.2f%% exceeds threshold: %.2f%%",
			sample.Name, sample.PID, sample.MemPercent, m.config.MemThreshold)
	}
}

// logSystemUsage emits one host-wide usage line per cycle at debug level.
// The reading is skipped entirely when debug logging is off, since it costs
// a 100ms CPU sampling window.
func (m *Monitor) logSystemUsage() {
	if m.logger.GetLevel() > zerolog.DebugLevel {
		return
	}

	usage := collector.ReadSystemUsage()
	m.logger.Debug().Msgf("System usage: CPU %.2f%%, memory %.2f%% (%d/%d MB)",
		usage.CPUPercent, usage.MemPercent, usage.MemUsedMB, usage.MemTotalMB)
}
