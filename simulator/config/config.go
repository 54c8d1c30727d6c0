// Package config holds configuration for cmd/simulator only — which device
// profile and port to simulate. It is modeled directly on the teacher's
// config/config.go; the core runtime has no file-based configuration
// (spec.md §6: "No persisted state. No file formats. No CLI" is a domain
// invariant of the embedded-in-a-DAW runtime, not relaxed here — this
// package configures the outer dev harness, not the core).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ProfileType names which built-in device profile the simulator pretends to
// drive.
type ProfileType string

const (
	ProfileLaunchpadX   ProfileType = "launchpad-x"
	ProfileLaunchkeyMk3 ProfileType = "launchkey-mk3"
	ProfileGenericGrid  ProfileType = "generic-grid"
)

// Config is the simulator's configuration.
type Config struct {
	Profile     ProfileType `json:"profile,omitempty"`
	PortName    string      `json:"portName,omitempty"`
	LongPressMs int64       `json:"longPressMs,omitempty"`
	BlinkMs     int64       `json:"blinkMs,omitempty"`
}

// Default returns sensible defaults.
func Default() *Config {
	return &Config{
		Profile:     ProfileLaunchpadX,
		LongPressMs: 450,
		BlinkMs:     300,
	}
}

// Dir returns the simulator's config directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rum-simulator"), nil
}

// Path returns the full path to config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns Default if not found.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
