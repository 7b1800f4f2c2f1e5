package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()

	require.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_ZeroInterval(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.IntervalSeconds = 0

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be a positive value")
}

func TestValidateConfig_NegativeInterval(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.IntervalSeconds = -5

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be a positive value")
}

func TestValidateConfig_NegativeCPUThreshold(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.CPUThreshold = -1

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu threshold must be between 0 and 100")
}

func TestValidateConfig_CPUThresholdAbove100(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.CPUThreshold = 101

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu threshold must be between 0 and 100")
}

func TestValidateConfig_MemThresholdAbove100(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MemThreshold = 150

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory threshold must be between 0 and 100")
}

func TestValidateConfig_ThresholdBoundariesAreValid(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.CPUThreshold = 0
	cfg.MemThreshold = 100

	require.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_InvalidLogLevel(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.LogConfig.LogLevel = "verbose"

	err := ValidateConfig(cfg)

	assert.Error(t, err)
}
