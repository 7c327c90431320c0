package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigEnvVar names a config file that takes precedence over discovery
	ConfigEnvVar = "LPROJFIND_CONFIG"

	configDirName  = ".lprojfind"
	configFileName = "config.yaml"
)

// FindConfigFile returns the config file to use for a search rooted at start.
// Priority order:
//  1. LPROJFIND_CONFIG environment variable (if set)
//  2. The nearest .lprojfind/config.yaml in start or one of its parents
//
// Returns "" without error when no config file exists.
func FindConfigFile(start string) (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve search root: %w", err)
	}

	for {
		candidate := filepath.Join(current, configDirName, configFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		// Move up one directory
		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", nil
		}
		current = parent
	}
}

// Resolve loads the configuration for a search rooted at start.
// An explicit path must exist; otherwise the discovered file is used,
// falling back to defaults. The returned path is "" when defaults are used.
func Resolve(explicit, start string) (*Config, string, error) {
	path := explicit
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, "", fmt.Errorf("config file %s: %w", path, err)
		}
	} else {
		found, err := FindConfigFile(start)
		if err != nil {
			return nil, "", err
		}
		if found == "" {
			return DefaultConfig(), "", nil
		}
		path = found
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
