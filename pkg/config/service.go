package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/openconvo/gateway/pkg/bus"
)

// Service manages three layers of configuration: built-in defaults, the
// system file (default.json), and per-user override files. It serves merged
// views, persists user updates, and emits config.changed / config.reloaded
// events so other services can react.
type Service struct {
	configDir string
	bus       *bus.Bus

	mu        sync.RWMutex
	system    *Config
	userCache map[string]*Config
}

// NewService loads the system configuration and returns a ready service.
func NewService(configDir string, b *bus.Bus) (*Service, error) {
	cfg, err := Load(configDir)
	if err != nil {
		return nil, err
	}
	return &Service{
		configDir: configDir,
		bus:       b,
		system:    cfg,
		userCache: make(map[string]*Config),
	}, nil
}

// System returns the current system-level configuration (no user overlay).
func (s *Service) System() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.system
}

// Merged returns the configuration for a user: system config deep-merged
// with the user's override file. An empty userID or any load failure falls
// back to the system configuration.
func (s *Service) Merged(userID string) *Config {
	if userID == "" {
		return s.System()
	}

	s.mu.RLock()
	if cached, ok := s.userCache[userID]; ok {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	merged, err := s.buildMerged(userID)
	if err != nil {
		slog.Warn("Failed to merge user configuration, using system config",
			"user_id", userID, "error", err)
		return s.System()
	}

	s.mu.Lock()
	s.userCache[userID] = merged
	s.mu.Unlock()
	return merged
}

func (s *Service) buildMerged(userID string) (*Config, error) {
	base, err := asMap(s.System())
	if err != nil {
		return nil, err
	}
	overrides, err := s.UserOverrides(userID)
	if err != nil {
		return nil, err
	}
	if err := mergeMaps(base, overrides); err != nil {
		return nil, err
	}
	return fromMap(base)
}

// UserOverrides reads a user's raw override map. A missing file yields an
// empty map.
func (s *Service) UserOverrides(userID string) (map[string]any, error) {
	path := s.userFilePath(userID)
	m, err := readJSONFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, NewLoadError(filepath.Base(path), err)
	}
	return m, nil
}

// UpdateUser deep-merges updates into the user's override file, validates
// the resulting merged configuration, persists, and emits config.changed.
// Updates carrying secrets (api keys, passwords, tokens) are rejected.
func (s *Service) UpdateUser(userID string, updates map[string]any) (*Config, error) {
	if userID == "" {
		return nil, NewValidationError("user", "user_id",
			fmt.Errorf("%w: user_id is required", ErrInvalidValue))
	}
	if err := rejectSecrets(updates, ""); err != nil {
		return nil, err
	}

	current, err := s.UserOverrides(userID)
	if err != nil {
		return nil, err
	}
	if err := mergeMaps(current, updates); err != nil {
		return nil, err
	}

	// Validate the full merged view before persisting anything.
	base, err := asMap(s.System())
	if err != nil {
		return nil, err
	}
	if err := mergeMaps(base, current); err != nil {
		return nil, err
	}
	merged, err := fromMap(base)
	if err != nil {
		return nil, err
	}
	if err := Validate(merged); err != nil {
		return nil, err
	}

	if err := s.writeUserFile(userID, current); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.userCache, userID)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Emit(bus.EventConfigChanged, map[string]any{
			"user_id": userID,
			"changes": updates,
		})
	}
	slog.Info("User configuration updated", "user_id", userID)
	return merged, nil
}

// ResetUser discards all overrides for a user, keeping only identity fields
// (agent name), and emits config.changed.
func (s *Service) ResetUser(userID string) error {
	if userID == "" {
		return NewValidationError("user", "user_id",
			fmt.Errorf("%w: user_id is required", ErrInvalidValue))
	}

	current, err := s.UserOverrides(userID)
	if err != nil {
		return err
	}
	preserved := map[string]any{}
	if name, ok := current["agent_name"]; ok {
		preserved["agent_name"] = name
	}
	if err := s.writeUserFile(userID, preserved); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.userCache, userID)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Emit(bus.EventConfigChanged, map[string]any{
			"user_id": userID,
			"changes": map[string]any{"reset": true},
		})
	}
	slog.Info("User configuration reset", "user_id", userID)
	return nil
}

// Reload re-reads the system configuration from disk (hot reload), clears
// all cached user merges, and emits config.reloaded.
func (s *Service) Reload() (*Config, error) {
	cfg, err := Load(s.configDir)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.system = cfg
	s.userCache = make(map[string]*Config)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Emit(bus.EventConfigReloaded, map[string]any{
			"scope": "default",
		})
	}
	slog.Info("System configuration reloaded", "config_dir", s.configDir)
	return cfg, nil
}

// SwitchModel updates a user's active model and, optionally, the API base
// URL. API keys are never accepted here; they are managed through the
// environment variable named by api.api_key_env.
func (s *Service) SwitchModel(userID, model, baseURL string) (*Config, error) {
	if model == "" {
		return nil, NewValidationError("api", "model",
			fmt.Errorf("%w: model is required", ErrInvalidValue))
	}
	api := map[string]any{"model": model}
	if baseURL != "" {
		api["base_url"] = baseURL
	}
	return s.UpdateUser(userID, map[string]any{"api": api})
}

// Diagnosis is the result of a configuration health check.
type Diagnosis struct {
	UserID   string   `json:"user_id"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// Diagnose inspects the merged configuration for a user (or the system
// config when userID is empty) and reports missing or inconsistent settings.
func (s *Service) Diagnose(userID string) Diagnosis {
	cfg := s.Merged(userID)
	d := Diagnosis{UserID: userID, Issues: []string{}, Warnings: []string{}}

	if os.Getenv(cfg.API.APIKeyEnv) == "" {
		d.Issues = append(d.Issues, "API key is not configured")
	}
	if cfg.API.Model == "" {
		d.Issues = append(d.Issues, "Model is not configured")
	}
	if cfg.Memory.Enabled && !cfg.Memory.Graph.Enabled {
		d.Warnings = append(d.Warnings, "Memory system is enabled but the graph database is not enabled")
	}
	if cfg.Memory.Graph.Enabled && cfg.Memory.Graph.DatabaseURL == "" &&
		os.Getenv(cfg.Memory.Graph.DatabaseURLEnv) == "" {
		d.Issues = append(d.Issues, "Graph database is enabled but no database URL is configured")
	}
	if cfg.Channels.Slack.Enabled && os.Getenv(cfg.Channels.Slack.TokenEnv) == "" {
		d.Warnings = append(d.Warnings, "Slack channel is enabled but the bot token is not set")
	}
	return d
}

// Sanitized returns the merged configuration for a user as a generic map
// suitable for the config.get response. Secrets never live in the config
// itself (only env variable names do), so the whole view is exportable.
func (s *Service) Sanitized(userID string) (map[string]any, error) {
	return asMap(s.Merged(userID))
}

// Watch starts a filesystem watcher on the system configuration file and
// reloads on change. It returns after starting the background goroutine;
// the watcher stops when ctx is canceled.
func (s *Service) Watch(ctx context.Context) {
	reloadCh := WatchFiles(ctx, filepath.Join(s.configDir, DefaultFileName))
	go func() {
		for range reloadCh {
			if _, err := s.Reload(); err != nil {
				slog.Error("Hot reload failed, keeping previous configuration", "error", err)
			}
		}
	}()
}

func (s *Service) userFilePath(userID string) string {
	// User IDs come from clients; keep them inside the users directory.
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '.':
			return '_'
		}
		return r
	}, userID)
	return filepath.Join(s.configDir, UserDirName, safe+".json")
}

func (s *Service) writeUserFile(userID string, overrides map[string]any) error {
	path := s.userFilePath(userID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// secretKeys are field names that must never appear in a user override.
var secretKeys = map[string]bool{
	"api_key":      true,
	"password":     true,
	"secret":       true,
	"token":        true,
	"access_token": true,
}

// rejectSecrets walks an override map and fails on any secret-bearing key.
// Env-name fields (api_key_env, token_env) are fine: they name variables,
// not values.
func rejectSecrets(m map[string]any, prefix string) error {
	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if secretKeys[strings.ToLower(key)] {
			return fmt.Errorf("%w: %s", ErrSecretInConfig, path)
		}
		if nested, ok := value.(map[string]any); ok {
			if err := rejectSecrets(nested, path); err != nil {
				return err
			}
		}
	}
	return nil
}
