package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.randwalk/config.yaml -> ./configs/randwalk.yaml -> embedded default.
// Files ending in .json are parsed as the legacy JSON config shape.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/randwalk.yaml"); err == nil {
		if cfg, err := Parse(data, "configs/randwalk.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultConfigYAML, "embedded default"); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// Parse decodes config bytes. The path only selects the format
// (.json vs YAML) and labels error messages.
func Parse(data []byte, path string) (Config, error) {
	cfg := Default()
	// Mark the batch fields so we can tell "absent" from "default";
	// -1 is otherwise invalid for both.
	cfg.NumSimulations = -1
	cfg.NumSteps = -1

	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".randwalk", filename)
}
