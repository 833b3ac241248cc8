package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.System.LogLevel)
	assert.Equal(t, 32, cfg.Conversation.Processing.MaxQueueSize)
	assert.Equal(t, 6, cfg.Memory.Gating.RecallFilter.MinQueryChars)
	assert.False(t, cfg.Memory.Enabled)
}

func TestLoad_OverlayMergesDeeply(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, DefaultFileName, `{
		"api": {"model": "gpt-4o", "temperature": 0.2},
		"memory": {"enabled": true, "warm_layer": {"min_cluster_size": 5}}
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.API.Model)
	assert.Equal(t, 0.2, cfg.API.Temperature)
	// Untouched siblings keep their defaults.
	assert.Equal(t, 2000, cfg.API.MaxTokens)
	assert.True(t, cfg.Memory.Enabled)
	assert.Equal(t, 5, cfg.Memory.WarmLayer.MinClusterSize)
	assert.Equal(t, 0.7, cfg.Memory.WarmLayer.ClusteringThreshold)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, DefaultFileName, `{not json`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoad_ValidationCatchesBadValues(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, DefaultFileName, `{"api": {"temperature": 5.0}}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_GATEWAY_MODEL", "claude-3-5-haiku")
	dir := t.TempDir()
	writeConfigFile(t, dir, DefaultFileName, `{"api": {"model": "{{.TEST_GATEWAY_MODEL}}"}}`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku", cfg.API.Model)
}

func TestExpandEnv_LiteralDollarPreserved(t *testing.T) {
	out := ExpandEnv([]byte(`{"pattern": "^secret.*$", "price": "\\$10"}`))
	assert.Contains(t, string(out), "^secret.*$")
	assert.Contains(t, string(out), "\\$10")
}

func TestExpandEnv_MissingVariableExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte(`{"v": "{{.DEFINITELY_NOT_SET_ANYWHERE_XYZ}}"}`))
	assert.Equal(t, `{"v": ""}`, string(out))
}
