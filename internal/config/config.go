package config

// Config holds the full monitor configuration. It is assembled once at
// startup (defaults, then optional config file, then CLI flags) and is
// immutable afterwards.
type Config struct {
	IntervalSeconds int     `json:"interval_seconds,omitempty" yaml:"interval_seconds,omitempty" validate:"gt=0"`
	CPUThreshold    float64 `json:"cpu_threshold,omitempty" yaml:"cpu_threshold,omitempty" validate:"gte=0,lte=100"`
	MemThreshold    float64 `json:"mem_threshold,omitempty" yaml:"mem_threshold,omitempty" validate:"gte=0,lte=100"`
	ProcessName     string  `json:"process_name,omitempty" yaml:"process_name,omitempty"`

	LogConfig LogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// LogConfig defines configuration for logging
type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
}

// NewDefaultConfig creates a configuration with the default monitoring
// parameters: poll every 60 seconds, warn above 90% CPU or memory, monitor
// all processes.
func NewDefaultConfig() *Config {
	return &Config{
		IntervalSeconds: DefaultIntervalSeconds,
		CPUThreshold:    DefaultCPUThreshold,
		MemThreshold:    DefaultMemThreshold,
		LogConfig:       NewDefaultLogConfig(),
	}
}

// NewDefaultLogConfig creates default log configuration
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile,
		LogLevel:      DefaultLogLevel,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
		MaxLogBackups: DefaultMaxLogBackups,
	}
}
