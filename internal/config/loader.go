package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from an optional file path. An empty
// path returns the defaults unchanged. Both JSON and YAML formats are
// supported; YAML is assumed for .yaml/.yml extensions, JSON otherwise.
// Values present in the file override the defaults.
func LoadConfig(providedPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if providedPath == "" {
		return cfg, nil
	}

	if _, err := os.Stat(providedPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", providedPath)
	}

	data, err := os.ReadFile(providedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", providedPath, err)
	}

	if err := parseConfigContent(data, providedPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", providedPath, err)
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func isYAMLFile(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".yaml" || ext == ".yml"
}
