package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDirName is the per-user directory holding configs and logs.
const HomeDirName = ".brickgame"

// LoadBrick loads BrickGame configuration.
// Search order: customPath -> ~/.brickgame/configs/brickgame.yaml -> ./configs/brickgame.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadBrick(customPath string) (BrickConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBrick(data)
		if err != nil {
			return BrickConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("brickgame.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBrick(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "brickgame.yaml")); err == nil {
		if cfg, err := ParseBrick(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBrick(defaultBrickYAML)
	if err != nil {
		return DefaultBrickConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBrick decodes YAML over the hardcoded defaults and validates the
// result.
func ParseBrick(data []byte) (BrickConfig, error) {
	cfg := DefaultBrickConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrickConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BrickConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// UserDir returns ~/.brickgame, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDirName)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
