package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procwatch/internal/config"
)

func TestNew_DefaultConfig(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "test.log")

	log, err := New(cfg)

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "shouting"

	_, err := New(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLineWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(newLineWriter(&buf)).With().Timestamp().Logger()

	log.Warn().Msg("something exceeded something")

	// `<timestamp> - <LEVEL> - <message>`
	lineFormat := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - WARN - something exceeded something\n$`)
	assert.Regexp(t, lineFormat, buf.String())
}

func TestLineWriter_LevelNames(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(newLineWriter(&buf)).With().Timestamp().Logger()

	log.Info().Msg("up")
	log.Error().Msg("down")

	assert.Contains(t, buf.String(), " - INFO - up")
	assert.Contains(t, buf.String(), " - ERROR - down")
}

func TestNew_WritesToLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "monitor.log")
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = logPath

	log, err := New(cfg)
	require.NoError(t, err)

	log.Info().Msg("file sink check")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), " - INFO - file sink check")
}

func TestNew_CreatesLogDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "nested", "monitor.log")
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = logPath

	log, err := New(cfg)
	require.NoError(t, err)

	log.Info().Msg("nested dir check")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nested dir check")
}
