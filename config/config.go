package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the main configuration structure
type Config struct {
	// DevicePattern is the case-insensitive substring matched against MIDI
	// port names to find the Launchpad.
	DevicePattern string `json:"devicePattern,omitempty"`
	// FrameIntervalMs is the demo's LED refresh interval.
	FrameIntervalMs int `json:"frameIntervalMs,omitempty"`
	// FieldSpeed scales how fast the ambient color field drifts.
	FieldSpeed float64 `json:"fieldSpeed,omitempty"`
	// Debug enables the debug log file.
	Debug bool `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DevicePattern:   "launchpad",
		FrameIntervalMs: 125,
		FieldSpeed:      0.35,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-launchpad"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
