// Package tools is the unified tool dispatcher: local tools, agent
// handoffs, and MCP servers behind one call surface, with risk gating
// for destructive operations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/mcp"
)

// LocalHandler executes a locally registered tool.
type LocalHandler func(ctx context.Context, args map[string]any) (string, error)

// LocalTool is a tool served in-process.
type LocalTool struct {
	Name             string
	Description      string
	ParametersSchema json.RawMessage
	Handler          LocalHandler
}

// AgentRunner hands a prompt off to a named agent.
type AgentRunner interface {
	RunAgent(ctx context.Context, agentName, prompt, sessionID string) (string, error)
}

// ToolInfo describes one callable tool for listings and model
// tool definitions.
type ToolInfo struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Source           string          `json:"source"` // "local" or "mcp"
	ParametersSchema json.RawMessage `json:"parameters_schema,omitempty"`
}

// CallContext carries the correlation ids attached to tool events.
type CallContext struct {
	RequestID    string
	ConnectionID string
	SessionID    string
	UserID       string
}

// Service resolves and executes tool calls. Resolution order: local
// registry, agent handoff, MCP.
type Service struct {
	mu     sync.RWMutex
	local  map[string]LocalTool
	agents AgentRunner
	mcp    *mcp.Client
	bus    *bus.Bus
	logger *slog.Logger
}

// NewService creates a tool service. agents and mcpClient may be nil;
// the corresponding backends then report errors on use.
func NewService(agents AgentRunner, mcpClient *mcp.Client, b *bus.Bus, logger *slog.Logger) *Service {
	return &Service{
		local:  make(map[string]LocalTool),
		agents: agents,
		mcp:    mcpClient,
		bus:    b,
		logger: logger,
	}
}

// Register adds a local tool, replacing any existing one with the
// same name.
func (s *Service) Register(tool LocalTool) error {
	if tool.Name == "" {
		return fmt.Errorf("local tool requires a name")
	}
	if tool.Handler == nil {
		return fmt.Errorf("local tool %q requires a handler", tool.Name)
	}
	s.mu.Lock()
	s.local[tool.Name] = tool
	s.mu.Unlock()
	return nil
}

// List returns all known tools: local first, then everything the MCP
// servers expose.
func (s *Service) List(ctx context.Context) []ToolInfo {
	s.mu.RLock()
	infos := make([]ToolInfo, 0, len(s.local))
	for _, t := range s.local {
		infos = append(infos, ToolInfo{
			Name:             t.Name,
			Description:      t.Description,
			Source:           "local",
			ParametersSchema: t.ParametersSchema,
		})
	}
	s.mu.RUnlock()
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	if s.mcp != nil {
		byServer, err := s.mcp.ListAllTools(ctx)
		if err != nil {
			s.logger.Warn("failed to list MCP tools", "error", err)
		}
		serverIDs := make([]string, 0, len(byServer))
		for id := range byServer {
			serverIDs = append(serverIDs, id)
		}
		sort.Strings(serverIDs)
		for _, id := range serverIDs {
			for _, t := range byServer[id] {
				schema, err := json.Marshal(t.InputSchema)
				if err != nil {
					s.logger.Warn("failed to marshal MCP tool schema", "tool", t.Name, "error", err)
				}
				infos = append(infos, ToolInfo{
					Name:             t.Name,
					Description:      t.Description,
					Source:           "mcp",
					ParametersSchema: schema,
				})
			}
		}
	}
	return infos
}

// Call resolves and executes one tool call, emitting tool.call.start
// and then tool.call.result or tool.call.error.
func (s *Service) Call(ctx context.Context, cc CallContext, toolName string, params map[string]any) (string, error) {
	toolType := s.resolveType(toolName, params)

	s.bus.Emit(bus.EventToolCallStart, map[string]any{
		"request_id":    cc.RequestID,
		"connection_id": cc.ConnectionID,
		"session_id":    cc.SessionID,
		"user_id":       cc.UserID,
		"tool":          toolName,
		"tool_type":     toolType,
	})

	result, err := s.dispatch(ctx, toolType, toolName, params, cc)
	if err != nil {
		s.bus.Emit(bus.EventToolCallError, map[string]any{
			"request_id":    cc.RequestID,
			"connection_id": cc.ConnectionID,
			"session_id":    cc.SessionID,
			"user_id":       cc.UserID,
			"tool":          toolName,
			"tool_type":     toolType,
			"error":         err.Error(),
		})
		return "", err
	}

	s.bus.Emit(bus.EventToolCallResult, map[string]any{
		"request_id":    cc.RequestID,
		"connection_id": cc.ConnectionID,
		"session_id":    cc.SessionID,
		"user_id":       cc.UserID,
		"tool":          toolName,
		"tool_type":     toolType,
		"result":        result,
	})
	return result, nil
}

func (s *Service) resolveType(toolName string, params map[string]any) string {
	s.mu.RLock()
	_, isLocal := s.local[toolName]
	s.mu.RUnlock()
	if isLocal {
		return "local"
	}
	if agentType, _ := params["agentType"].(string); agentType == "agent" {
		return "agent"
	}
	return "mcp"
}

func (s *Service) dispatch(ctx context.Context, toolType, toolName string, params map[string]any, cc CallContext) (string, error) {
	switch toolType {
	case "local":
		s.mu.RLock()
		tool := s.local[toolName]
		s.mu.RUnlock()
		return tool.Handler(ctx, params)

	case "agent":
		if s.agents == nil {
			return "", fmt.Errorf("agent handoff requested but no agent manager is wired")
		}
		agentName, _ := params["agent_name"].(string)
		prompt, _ := params["prompt"].(string)
		if agentName == "" || prompt == "" {
			return "", fmt.Errorf("agent handoff requires agent_name and prompt")
		}
		return s.agents.RunAgent(ctx, agentName, prompt, cc.SessionID)

	default:
		if s.mcp == nil {
			return "", fmt.Errorf("unknown tool %q: no MCP backend configured", toolName)
		}
		serviceName, mcpToolName, forwarded := resolveMCPCall(toolName, params)
		return s.mcp.CallTool(ctx, serviceName, mcpToolName, forwarded)
	}
}

// resolveMCPCall maps a generic tool call onto (server, tool, args).
// The service name defaults to the tool name; the MCP tool name comes
// from tool_name, then command, then the tool name itself. Routing keys
// are stripped from the forwarded args.
func resolveMCPCall(toolName string, params map[string]any) (serviceName, mcpToolName string, forwarded map[string]any) {
	serviceName = toolName
	if v, ok := params["service_name"].(string); ok && v != "" {
		serviceName = v
	}

	mcpToolName = toolName
	if v, ok := params["tool_name"].(string); ok && v != "" {
		mcpToolName = v
	} else if v, ok := params["command"].(string); ok && v != "" {
		mcpToolName = v
	}

	forwarded = make(map[string]any, len(params))
	for k, v := range params {
		switch k {
		case "service_name", "tool_name", "agentType":
			continue
		}
		forwarded[k] = v
	}
	return serviceName, mcpToolName, forwarded
}
