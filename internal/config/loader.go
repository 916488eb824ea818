package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkydive loads the session configuration.
// Search order: customPath -> ~/.skydive/configs/skydive.yaml -> ./configs/skydive.yaml -> embedded default
//
// Every source is decoded over DefaultSkydiveConfig, so a file only needs the
// keys it changes.
func LoadSkydive(customPath string) (SkydiveConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkydiveConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSkydive(data)
		if err != nil {
			return SkydiveConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skydive.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSkydive(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/skydive.yaml"); err == nil {
		if cfg, err := parseSkydive(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSkydive(defaultSkydiveYAML)
	if err != nil {
		return DefaultSkydiveConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseSkydive(data []byte) (SkydiveConfig, error) {
	cfg := DefaultSkydiveConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkydiveConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skydive", "configs", filename)
}
