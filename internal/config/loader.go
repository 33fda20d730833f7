package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in each search directory.
const FileName = "townsfolk.yaml"

// LoadTownsfolk loads the game configuration.
// Search order: customPath -> ~/.townsfolk/configs/townsfolk.yaml ->
// ./configs/townsfolk.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadTownsfolk(customPath string) (TownsfolkConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTownsfolkConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultTownsfolkConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultTownsfolkConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTownsfolkYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultTownsfolkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultTownsfolkConfig.
func Parse(data []byte) (TownsfolkConfig, error) {
	cfg := DefaultTownsfolkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (TownsfolkConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TownsfolkConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil || cfg.Validate() != nil {
		return TownsfolkConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".townsfolk", "configs", filename)
}

// Marshal renders a config as YAML.
func Marshal(cfg TownsfolkConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
