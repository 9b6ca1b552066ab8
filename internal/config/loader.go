package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDoom loads the raycaster configuration.
// Search order: customPath -> ~/.arcade/configs/doom.yaml -> ./configs/doom.yaml -> embedded default
func LoadDoom(customPath string) (DoomConfig, error) {
	var cfg DoomConfig
	if err := load("doom.yaml", customPath, defaultDoomYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadMuncher loads the pellet maze configuration.
// Search order: customPath -> ~/.arcade/configs/muncher.yaml -> ./configs/muncher.yaml -> embedded default
func LoadMuncher(customPath string) (MuncherConfig, error) {
	var cfg MuncherConfig
	if err := load("muncher.yaml", customPath, defaultMuncherYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves a config in the standard search order and unmarshals it.
func load(filename, customPath string, embedded []byte, out any) error {
	// A custom path is authoritative: failures there are reported, not skipped.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded default %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
