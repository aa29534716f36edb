package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "quickmaths.yaml"

// LoadQuickMaths loads the game configuration.
// Search order: customPath -> ~/.quickmaths/configs/quickmaths.yaml -> ./configs/quickmaths.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error.
// Files found on the search path are skipped when they are broken.
func LoadQuickMaths(customPath string) (QuickMathsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuickMathsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return QuickMathsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultQuickMathsYAML)
	if err != nil {
		return DefaultQuickMathsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the
// result, so partial files only need to name the values they change.
func Parse(data []byte) (QuickMathsConfig, error) {
	cfg := DefaultQuickMathsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuickMathsConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return QuickMathsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg QuickMathsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quickmaths", "configs", filename)
}

// ApplyQuickMathsPreset modifies the config based on a difficulty preset.
func ApplyQuickMathsPreset(cfg *QuickMathsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "kills"
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Speed = 15
		cfg.Enemies.HazardChance = 0.35
	case DifficultyHard:
		cfg.Enemies.Speed = 26
		cfg.Enemies.HazardChance = 0.65
	}
}
