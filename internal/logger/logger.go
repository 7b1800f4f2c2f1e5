package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"procwatch/internal/config"
)

// New creates an explicitly constructed logger instance writing identical
// timestamped, leveled lines to two sinks: the console and the configured
// log file. No global logger state is mutated; the instance is passed to
// whoever needs it.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	writers := []io.Writer{newConsoleWriter()}
	if cfg.LogFile != "" {
		writers = append(writers, newFileWriter(cfg))
	}

	multi := zerolog.MultiLevelWriter(writers...)
	log := zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Logger()

	return log, nil
}

// parseLevel parses a string log level, defaulting to info when empty.
func parseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level '%s': %w", levelStr, err)
	}
	return level, nil
}
