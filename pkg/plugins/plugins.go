// Package plugins loads extension manifests: each subdirectory of the
// extensions directory may carry a manifest.json declaring MCP servers
// and tool aliases, which get registered with the MCP registry and the
// tool service at startup. Only the typed manifest form is accepted;
// malformed entries are rejected and reported, never loaded partially.
package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openconvo/gateway/pkg/mcp"
	"github.com/openconvo/gateway/pkg/tools"
)

// manifestFile is the file name looked up in each extension directory.
const manifestFile = "manifest.json"

// Manifest is the typed extension descriptor.
type Manifest struct {
	Name        string      `json:"name"`
	Version     string      `json:"version"`
	Description string      `json:"description"`
	MCPServers  []MCPServer `json:"mcp_servers"`
	Tools       []Tool      `json:"tools"`
}

// MCPServer declares one MCP backend provided by the extension.
type MCPServer struct {
	ID        string `json:"id"`
	Transport string `json:"transport"`

	// stdio
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`

	// http / sse. The bearer token is named by env variable, never
	// stored in the manifest itself.
	URL            string `json:"url,omitempty"`
	BearerTokenEnv string `json:"bearer_token_env,omitempty"`
	TimeoutS       int    `json:"timeout_s,omitempty"`
}

// Tool declares a named tool routed to one of the extension's MCP
// servers. ToolName defaults to Name when empty.
type Tool struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ParametersSchema json.RawMessage `json:"parameters_schema,omitempty"`
	Service          string          `json:"service"`
	ToolName         string          `json:"tool_name,omitempty"`
}

// Rejection records one entry that failed validation.
type Rejection struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report summarizes one load pass.
type Report struct {
	Loaded   []string    `json:"loaded"`
	Servers  int         `json:"servers"`
	Tools    int         `json:"tools"`
	Rejected []Rejection `json:"rejected"`
}

// MCPCaller is the call surface tool aliases route through.
// Implemented by mcp.Client.
type MCPCaller interface {
	CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (string, error)
}

// Loader scans extension directories and registers their contents.
type Loader struct {
	registry *mcp.Registry
	tools    *tools.Service
	caller   MCPCaller
	logger   *slog.Logger
}

// NewLoader creates a loader. caller may be nil; alias tools then fail
// at call time with a clear error.
func NewLoader(registry *mcp.Registry, toolSvc *tools.Service, caller MCPCaller, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{registry: registry, tools: toolSvc, caller: caller, logger: logger}
}

// LoadDir scans dir for extension subdirectories and loads each
// manifest. A missing directory is not an error: extensions are
// optional.
func (l *Loader) LoadDir(dir string) (*Report, error) {
	report := &Report{Loaded: []string{}, Rejected: []Rejection{}}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return report, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading extensions directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), manifestFile)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		l.loadManifest(path, report)
	}
	return report, nil
}

func (l *Loader) loadManifest(path string, report *Report) {
	data, err := os.ReadFile(path)
	if err != nil {
		report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: err.Error()})
		return
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		l.logger.Warn("Rejecting malformed extension manifest", "path", path, "error", err)
		report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: "invalid manifest: " + err.Error()})
		return
	}
	if manifest.Name == "" {
		report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: "manifest requires a name"})
		return
	}

	// Validate everything before registering anything, so an extension
	// is loaded completely or not at all.
	serverCfgs := make([]mcp.ServerConfig, 0, len(manifest.MCPServers))
	declaredServers := make(map[string]bool, len(manifest.MCPServers))
	for _, server := range manifest.MCPServers {
		cfg, err := serverConfig(server)
		if err != nil {
			report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: err.Error()})
			return
		}
		serverCfgs = append(serverCfgs, cfg)
		declaredServers[cfg.ID] = true
	}
	for _, tool := range manifest.Tools {
		if tool.Name == "" {
			report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: "tool entry requires a name"})
			return
		}
		if tool.Service == "" {
			report.Rejected = append(report.Rejected, Rejection{
				Path: path, Reason: fmt.Sprintf("tool %q requires a service", tool.Name)})
			return
		}
		if !declaredServers[tool.Service] && !l.registry.Has(tool.Service) {
			report.Rejected = append(report.Rejected, Rejection{
				Path: path, Reason: fmt.Sprintf("tool %q references unknown service %q", tool.Name, tool.Service)})
			return
		}
	}

	for _, cfg := range serverCfgs {
		if err := l.registry.Register(cfg); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: err.Error()})
			return
		}
		report.Servers++
	}
	for _, tool := range manifest.Tools {
		if err := l.tools.Register(l.aliasTool(tool)); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Path: path, Reason: err.Error()})
			return
		}
		report.Tools++
	}

	l.logger.Info("Loaded extension",
		"name", manifest.Name, "version", manifest.Version,
		"servers", len(serverCfgs), "tools", len(manifest.Tools))
	report.Loaded = append(report.Loaded, manifest.Name)
}

// serverConfig converts a manifest server entry into a registry config,
// resolving the bearer token from the environment.
func serverConfig(server MCPServer) (mcp.ServerConfig, error) {
	if server.ID == "" {
		return mcp.ServerConfig{}, fmt.Errorf("mcp server entry requires an id")
	}
	transport := mcp.TransportConfig{
		Type:     server.Transport,
		Command:  server.Command,
		Args:     server.Args,
		Env:      server.Env,
		URL:      server.URL,
		TimeoutS: server.TimeoutS,
	}
	if server.BearerTokenEnv != "" {
		transport.BearerToken = os.Getenv(server.BearerTokenEnv)
	}
	cfg := mcp.ServerConfig{ID: server.ID, Transport: transport}
	if err := mcp.ValidateServerConfig(cfg); err != nil {
		return mcp.ServerConfig{}, err
	}
	return cfg, nil
}

// aliasTool builds the local tool that forwards to the declared MCP
// service.
func (l *Loader) aliasTool(tool Tool) tools.LocalTool {
	remoteTool := tool.ToolName
	if remoteTool == "" {
		remoteTool = tool.Name
	}
	service := tool.Service
	return tools.LocalTool{
		Name:             tool.Name,
		Description:      tool.Description,
		ParametersSchema: tool.ParametersSchema,
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			if l.caller == nil {
				return "", fmt.Errorf("no MCP backend available for tool %q", remoteTool)
			}
			return l.caller.CallTool(ctx, service, remoteTool, args)
		},
	}
}
