package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

// DefaultFileName is the system-level configuration file inside the config
// directory. UserDirName holds per-user override files named <user_id>.json.
const (
	DefaultFileName = "default.json"
	UserDirName     = "users"
)

// Load reads, merges, and validates the system configuration.
//
// Steps performed:
//  1. Start from the built-in defaults
//  2. Overlay configDir/default.json when present (missing file is fine)
//  3. Expand environment variables in file content
//  4. Validate the merged configuration
func Load(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)

	merged, err := asMap(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to encode built-in defaults: %w", err)
	}

	path := filepath.Join(configDir, DefaultFileName)
	overlay, err := readJSONFile(path)
	switch {
	case err == nil:
		if err := mergeMaps(merged, overlay); err != nil {
			return nil, NewLoadError(DefaultFileName, err)
		}
		log.Info("Loaded system configuration", "file", path)
	case os.IsNotExist(err):
		log.Info("No system configuration file, using built-in defaults", "file", path)
	default:
		return nil, NewLoadError(DefaultFileName, err)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, NewLoadError(DefaultFileName, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return cfg, nil
}

// readJSONFile reads a JSON config file, expands environment variables, and
// decodes it into a generic map.
func readJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data = ExpandEnv(data)

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return m, nil
}

// asMap round-trips a Config through JSON into a generic map so overlays can
// be deep-merged at the key level.
func asMap(cfg *Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap decodes a generic config map back into the typed Config.
func fromMap(m map[string]any) (*Config, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return &cfg, nil
}

// mergeMaps deep-merges src into dst; src values win.
func mergeMaps(dst, src map[string]any) error {
	return mergo.Merge(&dst, src, mergo.WithOverride)
}
