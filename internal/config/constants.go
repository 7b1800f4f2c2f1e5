package config

// Default monitoring parameters.
const (
	DefaultIntervalSeconds = 60
	DefaultCPUThreshold    = 90.0
	DefaultMemThreshold    = 90.0
)

// Default logging parameters.
const (
	DefaultLogFile       = "process_monitor.log"
	DefaultLogLevel      = "info"
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
