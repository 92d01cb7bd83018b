package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameConfigFile is the file name looked up in the config directories.
const GameConfigFile = "t2048.yaml"

// LoadGame loads the game configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Keys missing from a file keep their default values. Only a custom path
// that cannot be read, parsed or validated is an error; other candidates
// are skipped.
func LoadGame(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseGame(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGame(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", GameConfigFile)); err == nil {
		if cfg, err := parseGame(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parseGame(defaultGameYAML); err == nil {
		return cfg, nil
	}
	return DefaultGameConfig(), nil
}

// parseGame decodes YAML over the defaults and validates the result.
func parseGame(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a file in ~/.t2048, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

// DataDir returns ~/.t2048, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".t2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create %s: %w", dir, err)
	}
	return dir, nil
}
