package main

import (
	"flag"

	"procwatch/internal/config"
)

// AppFlags holds the parsed command-line arguments. Only flags the user
// explicitly set are applied over the configuration, so a config file value
// survives unless a flag overrides it.
type AppFlags struct {
	Interval     int
	CPUThreshold float64
	MemThreshold float64
	ProcessName  string
	LogFile      string
	LogLevel     string
	ConfigFile   string

	set map[string]bool
}

// ParseFlags parses the command line. Every flag has a single-letter alias;
// when both forms are given the long form wins.
func ParseFlags() *AppFlags {
	interval := flag.Int("interval", config.DefaultIntervalSeconds, "Interval in seconds to check processes.")
	intervalAlias := flag.Int("i", config.DefaultIntervalSeconds, "Alias for -interval")

	cpuThreshold := flag.Float64("cpu_threshold", config.DefaultCPUThreshold, "CPU usage threshold percentage.")
	cpuThresholdAlias := flag.Float64("c", config.DefaultCPUThreshold, "Alias for -cpu_threshold")

	memThreshold := flag.Float64("mem_threshold", config.DefaultMemThreshold, "Memory usage threshold percentage.")
	memThresholdAlias := flag.Float64("m", config.DefaultMemThreshold, "Alias for -mem_threshold")

	processName := flag.String("process_name", "", "Monitor only specified process by name.")
	processNameAlias := flag.String("p", "", "Alias for -process_name")

	logFile := flag.String("log_file", config.DefaultLogFile, "Path to the log file.")
	logFileAlias := flag.String("l", config.DefaultLogFile, "Alias for -log_file")

	logLevel := flag.String("log_level", "", "Log level: trace, debug, info, warn, error.")

	configFile := flag.String("config", "", "Path to an optional YAML/JSON configuration file.")
	configFileAlias := flag.String("f", "", "Alias for -config")

	flag.Parse()

	visited := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	flags := &AppFlags{set: make(map[string]bool)}

	flags.Interval = *interval
	if !visited["interval"] && visited["i"] {
		flags.Interval = *intervalAlias
	}
	flags.CPUThreshold = *cpuThreshold
	if !visited["cpu_threshold"] && visited["c"] {
		flags.CPUThreshold = *cpuThresholdAlias
	}
	flags.MemThreshold = *memThreshold
	if !visited["mem_threshold"] && visited["m"] {
		flags.MemThreshold = *memThresholdAlias
	}
	flags.ProcessName = *processName
	if !visited["process_name"] && visited["p"] {
		flags.ProcessName = *processNameAlias
	}
	flags.LogFile = *logFile
	if !visited["log_file"] && visited["l"] {
		flags.LogFile = *logFileAlias
	}
	flags.LogLevel = *logLevel
	flags.ConfigFile = *configFile
	if !visited["config"] && visited["f"] {
		flags.ConfigFile = *configFileAlias
	}

	flags.set["interval"] = visited["interval"] || visited["i"]
	flags.set["cpu_threshold"] = visited["cpu_threshold"] || visited["c"]
	flags.set["mem_threshold"] = visited["mem_threshold"] || visited["m"]
	flags.set["process_name"] = visited["process_name"] || visited["p"]
	flags.set["log_file"] = visited["log_file"] || visited["l"]
	flags.set["log_level"] = visited["log_level"]

	return flags
}

// Apply overlays the explicitly set flags onto cfg.
func (af *AppFlags) Apply(cfg *config.Config) {
	if af.set["interval"] {
		cfg.IntervalSeconds = af.Interval
	}
	if af.set["cpu_threshold"] {
		cfg.CPUThreshold = af.CPUThreshold
	}
	if af.set["mem_threshold"] {
		cfg.MemThreshold = af.MemThreshold
	}
	if af.set["process_name"] {
		cfg.ProcessName = af.ProcessName
	}
	if af.set["log_file"] {
		cfg.LogConfig.LogFile = af.LogFile
	}
	if af.set["log_level"] {
		cfg.LogConfig.LogLevel = af.LogLevel
	}
}
