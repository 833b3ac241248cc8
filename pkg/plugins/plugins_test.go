package plugins

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/mcp"
	"github.com/openconvo/gateway/pkg/tools"
)

type fakeCaller struct {
	service string
	tool    string
	args    map[string]any
	result  string
	err     error
}

func (f *fakeCaller) CallTool(_ context.Context, serverID, toolName string, args map[string]any) (string, error) {
	f.service = serverID
	f.tool = toolName
	f.args = args
	return f.result, f.err
}

func writeManifest(t *testing.T, dir, ext string, manifest any) {
	t.Helper()
	extDir := filepath.Join(dir, ext)
	require.NoError(t, os.MkdirAll(extDir, 0o755))
	data, err := json.Marshal(manifest)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(extDir, manifestFile), data, 0o644))
}

func newLoaderFixture(t *testing.T) (*Loader, *mcp.Registry, *tools.Service, *fakeCaller) {
	t.Helper()
	registry := mcp.NewRegistry(nil)
	toolSvc := tools.NewService(nil, nil, bus.New(), slog.Default())
	caller := &fakeCaller{result: "remote result"}
	return NewLoader(registry, toolSvc, caller, slog.Default()), registry, toolSvc, caller
}

func TestLoadDir_MissingDirectoryIsEmpty(t *testing.T) {
	loader, _, _, _ := newLoaderFixture(t)
	report, err := loader.LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, report.Loaded)
	assert.Empty(t, report.Rejected)
}

func TestLoadDir_RegistersServersAndTools(t *testing.T) {
	loader, registry, toolSvc, caller := newLoaderFixture(t)
	dir := t.TempDir()
	writeManifest(t, dir, "weather", Manifest{
		Name:    "weather",
		Version: "1.0.0",
		MCPServers: []MCPServer{{
			ID:        "weather-api",
			Transport: "http",
			URL:       "http://localhost:9090/mcp",
		}},
		Tools: []Tool{{
			Name:        "get_weather",
			Description: "current weather",
			Service:     "weather-api",
			ToolName:    "query",
		}},
	})

	report, err := loader.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"weather"}, report.Loaded)
	assert.Equal(t, 1, report.Servers)
	assert.Equal(t, 1, report.Tools)
	assert.Empty(t, report.Rejected)

	assert.True(t, registry.Has("weather-api"))

	// The alias routes through the MCP caller with the declared
	// service and remote tool name.
	result, err := toolSvc.Call(context.Background(), tools.CallContext{RequestID: "r1"},
		"get_weather", map[string]any{"city": "berlin"})
	require.NoError(t, err)
	assert.Equal(t, "remote result", result)
	assert.Equal(t, "weather-api", caller.service)
	assert.Equal(t, "query", caller.tool)
	assert.Equal(t, "berlin", caller.args["city"])
}

func TestLoadDir_ToolNameDefaultsToAlias(t *testing.T) {
	loader, _, toolSvc, caller := newLoaderFixture(t)
	dir := t.TempDir()
	writeManifest(t, dir, "search", Manifest{
		Name: "search",
		MCPServers: []MCPServer{{
			ID: "search-api", Transport: "sse", URL: "http://localhost:9091/sse",
		}},
		Tools: []Tool{{Name: "web_search", Service: "search-api"}},
	})

	_, err := loader.LoadDir(dir)
	require.NoError(t, err)

	_, err = toolSvc.Call(context.Background(), tools.CallContext{}, "web_search", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "web_search", caller.tool)
}

func TestLoadDir_RejectsMalformedManifest(t *testing.T) {
	loader, registry, _, _ := newLoaderFixture(t)
	dir := t.TempDir()
	extDir := filepath.Join(dir, "broken")
	require.NoError(t, os.MkdirAll(extDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(extDir, manifestFile), []byte("{not json"), 0o644))

	report, err := loader.LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, report.Loaded)
	require.Len(t, report.Rejected, 1)
	assert.Contains(t, report.Rejected[0].Reason, "invalid manifest")
	assert.Empty(t, registry.IDs())
}

func TestLoadDir_RejectsInvalidEntriesAtomically(t *testing.T) {
	loader, registry, toolSvc, _ := newLoaderFixture(t)
	dir := t.TempDir()

	// A valid server followed by a tool referencing an unknown service:
	// nothing from the manifest may be registered.
	writeManifest(t, dir, "partial", Manifest{
		Name: "partial",
		MCPServers: []MCPServer{{
			ID: "good-api", Transport: "http", URL: "http://localhost:9092/mcp",
		}},
		Tools: []Tool{{Name: "bad_tool", Service: "missing-api"}},
	})

	report, err := loader.LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, report.Loaded)
	require.Len(t, report.Rejected, 1)
	assert.Contains(t, report.Rejected[0].Reason, "unknown service")
	assert.False(t, registry.Has("good-api"))
	assert.Empty(t, toolSvc.List(context.Background()))
}

func TestLoadDir_RejectsBadTransport(t *testing.T) {
	loader, _, _, _ := newLoaderFixture(t)
	dir := t.TempDir()
	writeManifest(t, dir, "badtransport", Manifest{
		Name:       "badtransport",
		MCPServers: []MCPServer{{ID: "x", Transport: "stdio"}},
	})

	report, err := loader.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, report.Rejected, 1)
	assert.Contains(t, report.Rejected[0].Reason, "stdio transport requires command")
}

func TestLoadDir_RequiresManifestName(t *testing.T) {
	loader, _, _, _ := newLoaderFixture(t)
	dir := t.TempDir()
	writeManifest(t, dir, "anon", Manifest{
		MCPServers: []MCPServer{{ID: "y", Transport: "http", URL: "http://localhost:1/mcp"}},
	})

	report, err := loader.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, report.Rejected, 1)
	assert.Contains(t, report.Rejected[0].Reason, "requires a name")
}

func TestServerConfig_BearerTokenFromEnv(t *testing.T) {
	t.Setenv("EXT_API_TOKEN", "secret-token")
	cfg, err := serverConfig(MCPServer{
		ID:             "secured",
		Transport:      "http",
		URL:            "http://localhost:9093/mcp",
		BearerTokenEnv: "EXT_API_TOKEN",
	})
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.Transport.BearerToken)
}
