package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	userConfigFile  = "quortextt/config.yaml"
	localConfigFile = "configs/quortextt.yaml"
)

// Load reads the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/quortextt/config.yaml ->
// ./configs/quortextt.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// The first file found is used; if it is broken Load fails instead of
// falling back.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFound(customPath)
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(userConfigFile); err == nil {
		return loadFound(userCfgPath)
	}

	// Try local configs directory
	if _, err := os.Stat(localConfigFile); err == nil {
		return loadFound(localConfigFile)
	}

	return embedded(), nil
}

// loadFound reads and validates the config file at path.
func loadFound(path string) (Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func readFile(path string) (Config, error) {
	cfg := embedded()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes the embedded defaults to the user config location,
// or to path when given, and returns where it wrote. Existing files are
// left alone.
func WriteDefault(path string) (string, error) {
	if path == "" {
		p, err := xdg.ConfigFile(userConfigFile)
		if err != nil {
			return "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultYAML, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}
