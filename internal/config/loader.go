package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a scenario.
// Search order: customPath -> ~/.garden/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
// Fields missing from a file keep their hard-coded defaults.
func Load(scenarioID, customPath string) (ScenarioConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ScenarioConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ScenarioConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := scenarioID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(scenarioID); data != nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}
	return DefaultScenarioConfig(), nil
}

// Parse decodes YAML over the hard-coded defaults and validates the result.
func Parse(data []byte) (ScenarioConfig, error) {
	cfg := DefaultScenarioConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScenarioConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return ScenarioConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".garden", "configs", filename)
}
