package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in load results.
const SourceEmbedded = "embedded"

// LoadFlight loads the flight configuration and reports where it came from.
// Search order: customPath -> ~/.ringflight/configs/flight.yaml -> ./configs/flight.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadFlight(customPath string) (FlightConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlightConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlightConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files there are skipped rather than fatal.
	for _, path := range []string{userConfigPath("flight.yaml"), filepath.Join("configs", "flight.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlightYAML)
	if err != nil {
		return DefaultFlightConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (FlightConfig, error) {
	cfg := DefaultFlightConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlightConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlightConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg FlightConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ringflight", "configs", filename)
}
