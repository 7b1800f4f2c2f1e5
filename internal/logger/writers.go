package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"procwatch/internal/config"
)

// TimestampFormat is the timestamp layout used on every log line.
const TimestampFormat = "2006-01-02 15:04:05"

// newLineWriter wraps an output in a console writer producing the
// `<timestamp> - <LEVEL> - <message>` line format. The same writer is used
// for the console and the log file so both sinks emit identical lines.
func newLineWriter(output io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		NoColor:    true,
		TimeFormat: TimestampFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatTimestamp: func(i interface{}) string {
			ts, ok := i.(string)
			if !ok {
				return fmt.Sprintf("%s -", i)
			}
			parsed, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				return fmt.Sprintf("%s -", ts)
			}
			return fmt.Sprintf("%s -", parsed.Format(TimestampFormat))
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("%s -", strings.ToUpper(fmt.Sprintf("%s", i)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}
}

// newConsoleWriter creates the console sink on stdout.
func newConsoleWriter() io.Writer {
	return newLineWriter(os.Stdout)
}

// newFileWriter creates the file sink: an append-mode, size-capped log file
// managed by lumberjack, formatted with the shared line writer.
func newFileWriter(cfg config.LogConfig) io.Writer {
	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		// Best effort; lumberjack surfaces the error on first write if the
		// directory is genuinely unusable.
		_ = os.MkdirAll(dir, 0755)
	}

	return newLineWriter(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
		LocalTime:  true,
	})
}
