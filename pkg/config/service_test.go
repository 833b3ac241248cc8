package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
)

func newTestService(t *testing.T) (*Service, *bus.Bus) {
	t.Helper()
	b := bus.New()
	svc, err := NewService(t.TempDir(), b)
	require.NoError(t, err)
	return svc, b
}

func TestService_MergedFallsBackToSystem(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Same(t, svc.System(), svc.Merged(""))
	// No override file on disk: merged equals system values.
	merged := svc.Merged("u1")
	assert.Equal(t, svc.System().API.Model, merged.API.Model)
}

func TestService_UpdateUser(t *testing.T) {
	svc, b := newTestService(t)

	var events []bus.Event
	b.On(bus.EventConfigChanged, func(ev bus.Event) { events = append(events, ev) })

	merged, err := svc.UpdateUser("u1", map[string]any{
		"agent_name": "Nova",
		"api":        map[string]any{"temperature": 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nova", merged.AgentName)
	assert.Equal(t, 0.3, merged.API.Temperature)

	// Persisted to the user file and visible through Merged.
	again := svc.Merged("u1")
	assert.Equal(t, "Nova", again.AgentName)

	// System config is untouched.
	assert.NotEqual(t, 0.3, svc.System().API.Temperature)

	require.Len(t, events, 1)
	assert.Equal(t, "u1", events[0].Payload["user_id"])
}

func TestService_UpdateUserRejectsSecrets(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateUser("u1", map[string]any{
		"api": map[string]any{"api_key": "sk-leaked"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSecretInConfig)

	// Nothing was written.
	_, err = os.Stat(filepath.Join(svc.configDir, UserDirName, "u1.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestService_UpdateUserRejectsInvalidMerge(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateUser("u1", map[string]any{
		"api": map[string]any{"max_tokens": 0},
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "api", verr.Section)
}

func TestService_ResetUserPreservesAgentName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateUser("u1", map[string]any{
		"agent_name": "Nova",
		"api":        map[string]any{"temperature": 0.1},
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetUser("u1"))

	overrides, err := svc.UserOverrides("u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"agent_name": "Nova"}, overrides)

	merged := svc.Merged("u1")
	assert.Equal(t, svc.System().API.Temperature, merged.API.Temperature)
}

func TestService_SwitchModel(t *testing.T) {
	svc, _ := newTestService(t)

	merged, err := svc.SwitchModel("u1", "gpt-4o-mini", "")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", merged.API.Model)
	// Base URL untouched when not supplied.
	assert.Equal(t, svc.System().API.BaseURL, merged.API.BaseURL)

	_, err = svc.SwitchModel("u1", "", "")
	require.Error(t, err)
}

func TestService_Reload(t *testing.T) {
	b := bus.New()
	dir := t.TempDir()
	svc, err := NewService(dir, b)
	require.NoError(t, err)

	// User cache is invalidated by reload.
	_, err = svc.UpdateUser("u1", map[string]any{"agent_name": "Nova"})
	require.NoError(t, err)
	_ = svc.Merged("u1")

	writeConfigFile(t, dir, DefaultFileName, `{"api": {"model": "reloaded-model"}}`)

	var reloaded []bus.Event
	b.On(bus.EventConfigReloaded, func(ev bus.Event) { reloaded = append(reloaded, ev) })

	cfg, err := svc.Reload()
	require.NoError(t, err)
	assert.Equal(t, "reloaded-model", cfg.API.Model)
	assert.Equal(t, "reloaded-model", svc.Merged("u1").API.Model)
	require.Len(t, reloaded, 1)
}

func TestService_Diagnose(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("missing api key reported", func(t *testing.T) {
		t.Setenv("GATEWAY_API_KEY", "")
		d := svc.Diagnose("")
		assert.Contains(t, d.Issues, "API key is not configured")
	})

	t.Run("configured key passes", func(t *testing.T) {
		t.Setenv("GATEWAY_API_KEY", "sk-test")
		d := svc.Diagnose("")
		assert.NotContains(t, d.Issues, "API key is not configured")
	})
}

func TestService_UserFilePathSanitized(t *testing.T) {
	svc, _ := newTestService(t)

	path := svc.userFilePath("../../etc/passwd")
	assert.Equal(t, filepath.Join(svc.configDir, UserDirName, "______etc_passwd.json"), path)
}
