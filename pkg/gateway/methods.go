package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/channels"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
	"github.com/openconvo/gateway/pkg/memory"
	"github.com/openconvo/gateway/pkg/metrics"
	"github.com/openconvo/gateway/pkg/sessions"
	"github.com/openconvo/gateway/pkg/tools"
	"github.com/openconvo/gateway/pkg/version"
)

// ConfigAPI is the configuration surface the method table needs.
// Implemented by config.Service.
type ConfigAPI interface {
	System() *config.Config
	Merged(userID string) *config.Config
	Sanitized(userID string) (map[string]any, error)
	Reload() (*config.Config, error)
	UpdateUser(userID string, updates map[string]any) (*config.Config, error)
	ResetUser(userID string) error
	SwitchModel(userID, model, baseURL string) (*config.Config, error)
	Diagnose(userID string) config.Diagnosis
}

// MemoryAPI is the memory surface the method table needs. Implemented
// by memory.Service. Nil means the memory subsystem is degraded and
// memory methods report that instead of failing hard.
type MemoryAPI interface {
	GetContext(ctx context.Context, query, sessionID, userID string) string
	ExportGraph(ctx context.Context, sessionID, userID string) (*memory.GraphExport, error)
	Stats(ctx context.Context) (*graph.Stats, error)
	Cluster(ctx context.Context, sessionID, userID string) (int, error)
	Summarize(ctx context.Context, sessionID, userID string, incremental bool) (string, error)
	Decay(ctx context.Context, sessionID, userID string) (int, error)
	Cleanup(ctx context.Context, sessionID, userID string) (int, error)
}

// Confirmer resolves pending tool confirmations. Implemented by
// orchestrator.Orchestrator.
type Confirmer interface {
	ResolveConfirmation(ctx context.Context, sessionID, userID, toolCallID string, approve bool) (map[string]any, error)
}

// Deps bundles the collaborators the gateway dispatches into.
type Deps struct {
	Config     ConfigAPI
	Bus        *bus.Bus
	Sessions   *sessions.Manager
	Memory     MemoryAPI
	Tools      *tools.Service
	Agents     tools.AgentRunner
	AgentNames []string
	Channels   *channels.Registry
	Confirmer  Confirmer
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// handlerFunc handles one dispatched method call. conn is nil when the
// call arrives over the HTTP batch surface.
type handlerFunc func(ctx context.Context, conn *Connection, params map[string]any) (map[string]any, error)

// Gateway owns the method table and dispatches requests into the
// underlying services.
type Gateway struct {
	deps    Deps
	methods map[string]handlerFunc
	logger  *slog.Logger

	// conns is set after construction; the connection manager needs the
	// gateway for dispatch and the gateway needs it for health counts.
	conns *ConnectionManager
}

// New builds the gateway and registers the method table.
func New(deps Deps) *Gateway {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	g := &Gateway{deps: deps, logger: deps.Logger}
	g.methods = map[string]handlerFunc{
		"connect":             g.handleConnect,
		"health":              g.handleHealth,
		"status":              g.handleStatus,
		"system.info":         g.handleSystemInfo,
		"send":                g.handleSend,
		"agent":               g.handleAgent,
		"channels.status":     g.handleChannelsStatus,
		"memory.query":        g.handleMemoryQuery,
		"memory.cluster":      g.handleMemoryCluster,
		"memory.summarize":    g.handleMemorySummarize,
		"memory.graph":        g.handleMemoryGraph,
		"memory.decay":        g.handleMemoryDecay,
		"memory.cleanup":      g.handleMemoryCleanup,
		"sessions.list":       g.handleSessionsList,
		"session.detail":      g.handleSessionDetail,
		"session.delete":      g.handleSessionDelete,
		"tools.list":          g.handleToolsList,
		"tool.call":           g.handleToolCall,
		"config.get":          g.handleConfigGet,
		"config.reload":       g.handleConfigReload,
		"config.update":       g.handleConfigUpdate,
		"config.reset":        g.handleConfigReset,
		"config.switch_model": g.handleConfigSwitchModel,
		"config.diagnose":     g.handleConfigDiagnose,
	}
	return g
}

// SetConnections wires the connection manager in after construction.
func (g *Gateway) SetConnections(m *ConnectionManager) {
	g.conns = m
}

// Methods returns the sorted method names, advertised as server
// capabilities in the connect handshake.
func (g *Gateway) Methods() []string {
	names := make([]string, 0, len(g.methods))
	for name := range g.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes one request through the method table. It never
// returns nil: protocol and handler failures become error responses.
func (g *Gateway) Dispatch(ctx context.Context, conn *Connection, req *Request) *Response {
	connID := ""
	if conn != nil {
		connID = conn.ID
	}
	g.deps.Bus.Emit(bus.EventRequestReceived, map[string]any{
		"request_id":    req.ID,
		"method":        req.Method,
		"connection_id": connID,
	})

	handler, ok := g.methods[req.Method]
	if !ok {
		return g.finish(req, connID, nil, fmt.Errorf("Unknown request method: %s", req.Method))
	}

	payload, err := g.invoke(ctx, handler, conn, req)
	return g.finish(req, connID, payload, err)
}

// invoke runs a handler, converting panics into internal errors.
func (g *Gateway) invoke(ctx context.Context, handler handlerFunc, conn *Connection, req *Request) (payload map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("Method handler panicked", "method", req.Method, "panic", r)
			payload = nil
			err = fmt.Errorf("Internal error: %v", r)
		}
	}()
	return handler(ctx, conn, req.Params)
}

func (g *Gateway) finish(req *Request, connID string, payload map[string]any, err error) *Response {
	if err != nil {
		g.deps.Bus.Emit(bus.EventRequestFailed, map[string]any{
			"request_id":    req.ID,
			"method":        req.Method,
			"connection_id": connID,
			"error":         err.Error(),
		})
		return errResponse(req.ID, err.Error())
	}
	g.deps.Bus.Emit(bus.EventRequestCompleted, map[string]any{
		"request_id":    req.ID,
		"method":        req.Method,
		"connection_id": connID,
	})
	return okResponse(req.ID, payload)
}

// --- Param helpers ---

func paramString(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}

func paramBool(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}

func paramMap(params map[string]any, key string) map[string]any {
	v, _ := params[key].(map[string]any)
	return v
}

func userFrom(params map[string]any) string {
	return sessions.NormalizeUserID(paramString(params, "user_id"))
}

// --- Handlers ---

func (g *Gateway) handleConnect(ctx context.Context, conn *Connection, params map[string]any) (map[string]any, error) {
	identity := deviceIdentityFrom(paramMap(params, "identity"))
	if identity != nil {
		if err := identity.validate(); err != nil {
			return nil, err
		}
	}

	connID := ""
	if conn != nil {
		conn.BindIdentity(identity)
		connID = conn.ID
		if g.conns != nil && identity != nil && identity.DeviceID != "" {
			g.conns.bindDevice(identity.DeviceID, conn.ID)
		}
	}

	health, err := g.handleHealth(ctx, conn, params)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"connection_id":    connID,
		"protocol_version": "1",
		"capabilities":     g.Methods(),
		"health":           health,
	}, nil
}

func deviceIdentityFrom(raw map[string]any) *DeviceIdentity {
	if raw == nil {
		return nil
	}
	identity := &DeviceIdentity{
		DeviceID:   paramString(raw, "device_id"),
		DeviceName: paramString(raw, "device_name"),
		Role:       paramString(raw, "role"),
	}
	if caps, ok := raw["capabilities"].([]any); ok {
		for _, c := range caps {
			if s, ok := c.(string); ok {
				identity.Capabilities = append(identity.Capabilities, s)
			}
		}
	}
	return identity
}

func (g *Gateway) handleHealth(_ context.Context, _ *Connection, _ map[string]any) (map[string]any, error) {
	active := 0
	if g.conns != nil {
		active = g.conns.ActiveConnections()
	}
	uptime := int64(0)
	if g.deps.Metrics != nil {
		uptime = int64(g.deps.Metrics.Uptime().Seconds())
	}
	return map[string]any{
		"status":             "healthy",
		"uptime_s":           uptime,
		"active_connections": active,
		"channels":           g.channelNames(),
	}, nil
}

func (g *Gateway) handleStatus(ctx context.Context, _ *Connection, _ map[string]any) (map[string]any, error) {
	nodes := 0
	if g.deps.Memory != nil {
		if stats, err := g.deps.Memory.Stats(ctx); err == nil && stats != nil {
			nodes = stats.TotalNodes
		}
	}
	agents := g.deps.AgentNames
	if agents == nil {
		agents = []string{}
	}
	payload := map[string]any{
		"gateway_status": "running",
		"channels":       g.channelNames(),
		"agents":         agents,
		"nodes":          nodes,
	}
	if g.deps.Metrics != nil {
		payload["metrics"] = g.deps.Metrics.Snapshot()
	}
	return payload, nil
}

func (g *Gateway) handleSystemInfo(_ context.Context, _ *Connection, _ map[string]any) (map[string]any, error) {
	uptime := int64(0)
	if g.deps.Metrics != nil {
		uptime = int64(g.deps.Metrics.Uptime().Seconds())
	}
	features := []string{"sessions", "tools", "channels", "events"}
	if g.deps.Memory != nil {
		features = append(features, "memory")
	}
	if g.deps.Agents != nil {
		features = append(features, "agents")
	}
	return map[string]any{
		"version":  version.Full(),
		"uptime_s": uptime,
		"channels": g.channelNames(),
		"features": features,
	}, nil
}

func (g *Gateway) channelNames() []string {
	if g.deps.Channels == nil {
		return []string{}
	}
	return g.deps.Channels.Names()
}

func (g *Gateway) handleChannelsStatus(_ context.Context, _ *Connection, _ map[string]any) (map[string]any, error) {
	statuses := map[string]any{}
	if g.deps.Channels != nil {
		for _, name := range g.deps.Channels.Names() {
			status := map[string]any{"available": true}
			if name == "web" && g.conns != nil {
				status["active_connections"] = g.conns.ActiveConnections()
			}
			statuses[name] = status
		}
	}
	return map[string]any{
		"channels": statuses,
		"total":    len(statuses),
	}, nil
}

func (g *Gateway) handleSend(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	channel := paramString(params, "channel")
	target := paramString(params, "target")
	content := paramString(params, "content")
	if channel == "" || target == "" || content == "" {
		return nil, fmt.Errorf("channel, target and content are required")
	}
	messageType := paramString(params, "message_type")
	if messageType == "" {
		messageType = "text"
	}
	if g.deps.Channels == nil {
		return nil, fmt.Errorf("no channels configured")
	}
	ch, err := g.deps.Channels.Get(channel)
	if err != nil {
		return nil, err
	}
	messageID, err := ch.Send(ctx, target, content, messageType)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"status":     "sent",
		"channel":    channel,
		"target":     target,
		"message_id": messageID,
	}, nil
}

func (g *Gateway) handleAgent(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	agentName := paramString(params, "agent_name")
	prompt := paramString(params, "prompt")
	if agentName == "" || prompt == "" {
		return nil, fmt.Errorf("agent_name and prompt are required")
	}
	if g.deps.Agents == nil {
		return nil, fmt.Errorf("no agent manager configured")
	}

	sessionID := paramString(params, "session_id")
	runID := uuid.New().String()
	g.deps.Bus.Emit(bus.EventAgentStart, map[string]any{
		"run_id":     runID,
		"agent":      agentName,
		"session_id": sessionID,
	})

	// The run is asynchronous; completion is reported via agent events.
	go func() {
		content, err := g.deps.Agents.RunAgent(context.Background(), agentName, prompt, sessionID)
		if err != nil {
			g.deps.Bus.Emit(bus.EventAgentError, map[string]any{
				"run_id": runID,
				"agent":  agentName,
				"error":  err.Error(),
			})
			return
		}
		g.deps.Bus.Emit(bus.EventAgentComplete, map[string]any{
			"run_id":  runID,
			"agent":   agentName,
			"content": content,
		})
	}()

	return map[string]any{"run_id": runID, "status": "accepted"}, nil
}

func (g *Gateway) handleMemoryQuery(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	query := paramString(params, "query")
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	payload := map[string]any{"query": query, "context": "", "total": 0}
	if g.deps.Memory == nil {
		return payload, nil
	}
	recalled := g.deps.Memory.GetContext(ctx, query, paramString(params, "session_id"), userFrom(params))
	payload["context"] = recalled
	payload["total"] = countMemoryItems(recalled)
	return payload, nil
}

// countMemoryItems counts recalled item lines in a formatted context
// block, skipping layer headers.
func countMemoryItems(context string) int {
	total := 0
	for _, line := range strings.Split(context, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			total++
		}
	}
	return total
}

func (g *Gateway) requireMemorySession(params map[string]any) (sessionID, userID string, err error) {
	if g.deps.Memory == nil {
		return "", "", fmt.Errorf("memory subsystem is not available")
	}
	sessionID = paramString(params, "session_id")
	if sessionID == "" {
		return "", "", fmt.Errorf("session_id is required")
	}
	return sessionID, userFrom(params), nil
}

func (g *Gateway) handleMemoryCluster(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID, userID, err := g.requireMemorySession(params)
	if err != nil {
		return nil, err
	}
	created, err := g.deps.Memory.Cluster(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"session_id": sessionID, "concepts": created}, nil
}

func (g *Gateway) handleMemorySummarize(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID, userID, err := g.requireMemorySession(params)
	if err != nil {
		return nil, err
	}
	summaryID, err := g.deps.Memory.Summarize(ctx, sessionID, userID, paramBool(params, "incremental"))
	if err != nil {
		return nil, err
	}
	return map[string]any{"session_id": sessionID, "summary_id": summaryID}, nil
}

func (g *Gateway) handleMemoryGraph(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID, userID, err := g.requireMemorySession(params)
	if err != nil {
		return nil, err
	}
	export, err := g.deps.Memory.ExportGraph(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"session_id": sessionID,
		"nodes":      export.Nodes,
		"edges":      export.Edges,
		"stats":      export.Stats,
	}, nil
}

func (g *Gateway) handleMemoryDecay(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID, userID, err := g.requireMemorySession(params)
	if err != nil {
		return nil, err
	}
	updated, err := g.deps.Memory.Decay(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"session_id": sessionID, "updated": updated}, nil
}

func (g *Gateway) handleMemoryCleanup(ctx context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID, userID, err := g.requireMemorySession(params)
	if err != nil {
		return nil, err
	}
	deleted, err := g.deps.Memory.Cleanup(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"session_id": sessionID, "deleted": deleted}, nil
}

func (g *Gateway) handleSessionsList(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	list := g.deps.Sessions.ListSessions(userFrom(params))
	return map[string]any{"sessions": list, "total": len(list)}, nil
}

func (g *Gateway) handleSessionDetail(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID := paramString(params, "session_id")
	if sessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	userID := userFrom(params)
	info := g.deps.Sessions.SessionInfo(sessionID, userID)
	if info == nil {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return map[string]any{
		"info":     info,
		"messages": g.deps.Sessions.GetMessages(sessionID, userID),
	}, nil
}

func (g *Gateway) handleSessionDelete(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	sessionID := paramString(params, "session_id")
	if sessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	if !g.deps.Sessions.DeleteSession(sessionID, userFrom(params)) {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return map[string]any{"status": "deleted", "session_id": sessionID}, nil
}

func (g *Gateway) handleToolsList(ctx context.Context, _ *Connection, _ map[string]any) (map[string]any, error) {
	infos := g.deps.Tools.List(ctx)
	return map[string]any{"tools": infos, "total": len(infos)}, nil
}

func (g *Gateway) handleToolCall(ctx context.Context, conn *Connection, params map[string]any) (map[string]any, error) {
	toolName := paramString(params, "tool_name")
	if toolName == "" {
		return nil, fmt.Errorf("tool_name is required")
	}
	args := paramMap(params, "params")
	if args == nil {
		args = map[string]any{}
	}
	cc := tools.CallContext{
		RequestID: uuid.New().String(),
		SessionID: paramString(params, "session_id"),
		UserID:    userFrom(params),
	}
	if conn != nil {
		cc.ConnectionID = conn.ID
	}
	result, err := g.deps.Tools.Call(ctx, cc, toolName, args)
	if err != nil {
		return nil, err
	}
	return map[string]any{"tool": toolName, "result": result}, nil
}

func (g *Gateway) handleConfigGet(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	cfg, err := g.deps.Config.Sanitized(userFrom(params))
	if err != nil {
		return nil, err
	}
	return map[string]any{"config": cfg}, nil
}

func (g *Gateway) handleConfigReload(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	if _, err := g.deps.Config.Reload(); err != nil {
		return nil, err
	}
	cfg, err := g.deps.Config.Sanitized(userFrom(params))
	if err != nil {
		return nil, err
	}
	return map[string]any{"status": "reloaded", "config": cfg}, nil
}

func (g *Gateway) handleConfigUpdate(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	updates := paramMap(params, "updates")
	if updates == nil {
		updates = paramMap(params, "config")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("updates are required")
	}
	if _, err := g.deps.Config.UpdateUser(userFrom(params), updates); err != nil {
		return nil, err
	}
	cfg, err := g.deps.Config.Sanitized(userFrom(params))
	if err != nil {
		return nil, err
	}
	return map[string]any{"status": "updated", "config": cfg}, nil
}

func (g *Gateway) handleConfigReset(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	if err := g.deps.Config.ResetUser(userFrom(params)); err != nil {
		return nil, err
	}
	return map[string]any{"status": "reset"}, nil
}

func (g *Gateway) handleConfigSwitchModel(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	model := paramString(params, "model")
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if _, err := g.deps.Config.SwitchModel(userFrom(params), model, paramString(params, "base_url")); err != nil {
		return nil, err
	}
	return map[string]any{"status": "switched", "model": model}, nil
}

func (g *Gateway) handleConfigDiagnose(_ context.Context, _ *Connection, params map[string]any) (map[string]any, error) {
	d := g.deps.Config.Diagnose(userFrom(params))
	return map[string]any{
		"user_id":  d.UserID,
		"issues":   d.Issues,
		"warnings": d.Warnings,
	}, nil
}
