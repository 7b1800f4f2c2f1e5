package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the Config structure. The interval
// and threshold checks are performed explicitly so the user sees the same
// message regardless of which surface (flag or config file) supplied the
// bad value; the remaining struct tags are enforced with the validator.
func ValidateConfig(cfg *Config) error {
	if cfg.IntervalSeconds <= 0 {
		return errors.New("interval must be a positive value")
	}
	if cfg.CPUThreshold < 0 || cfg.CPUThreshold > 100 {
		return errors.New("cpu threshold must be between 0 and 100")
	}
	if cfg.MemThreshold < 0 || cfg.MemThreshold > 100 {
		return errors.New("memory threshold must be between 0 and 100")
	}

	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		return err
	}

	return nil
}
