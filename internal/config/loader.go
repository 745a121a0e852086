package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBricks loads the game configuration.
// Search order: customPath -> ~/.bricks/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default
func LoadBricks(customPath string) (BricksConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BricksConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BricksConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bricks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bricks.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBricksYAML)
	if err != nil {
		return DefaultBricksConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the built-in defaults, so partial files only
// override what they mention. A difficulty preset named in the file sets
// the ball and paddle values it defines.
func parse(data []byte) (BricksConfig, error) {
	cfg := DefaultBricksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BricksConfig{}, err
	}

	var named struct {
		Difficulty struct {
			Preset *Preset `yaml:"preset"`
		} `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(data, &named); err != nil {
		return BricksConfig{}, err
	}
	if p := named.Difficulty.Preset; p != nil {
		_ = ApplyPreset(&cfg, *p) // leaves cfg untouched for unknown names
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", "configs", filename)
}
