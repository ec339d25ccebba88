package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// driverConfig holds the handful of ambient settings worth persisting
// across invocations, rather than always typing --color/--verbose.
type driverConfig struct {
	DefaultColor string `yaml:"default_color"`
	Verbose      bool   `yaml:"verbose"`
}

var cfg driverConfig

// loadConfig reads ./.scythe.yaml, falling back to $HOME/.scythe.yaml,
// and leaves cfg at its zero value (auto color, not verbose) if neither
// exists or fails to parse — a missing or malformed config file is never
// fatal for a front end this small.
func loadConfig() {
	paths := []string{".scythe.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".scythe.yaml"))
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var parsed driverConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			logger.Warningf("ignoring malformed config at %s: %v", path, err)
			continue
		}
		cfg = parsed
		return
	}
}
