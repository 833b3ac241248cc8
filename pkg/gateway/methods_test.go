package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/channels"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
	"github.com/openconvo/gateway/pkg/memory"
	"github.com/openconvo/gateway/pkg/metrics"
	"github.com/openconvo/gateway/pkg/sessions"
	"github.com/openconvo/gateway/pkg/tools"
)

// --- Fakes ---

type fakeConfig struct {
	reloads  int
	updates  map[string]any
	resets   int
	switched string
}

func (f *fakeConfig) System() *config.Config       { return &config.Config{} }
func (f *fakeConfig) Merged(string) *config.Config { return &config.Config{} }

func (f *fakeConfig) Sanitized(string) (map[string]any, error) {
	return map[string]any{"agent_name": "assistant"}, nil
}

func (f *fakeConfig) Reload() (*config.Config, error) {
	f.reloads++
	return &config.Config{}, nil
}

func (f *fakeConfig) UpdateUser(_ string, updates map[string]any) (*config.Config, error) {
	f.updates = updates
	return &config.Config{}, nil
}

func (f *fakeConfig) ResetUser(string) error {
	f.resets++
	return nil
}

func (f *fakeConfig) SwitchModel(_, model, _ string) (*config.Config, error) {
	f.switched = model
	return &config.Config{}, nil
}

func (f *fakeConfig) Diagnose(userID string) config.Diagnosis {
	return config.Diagnosis{UserID: userID, Issues: []string{"API key is not configured"}, Warnings: []string{}}
}

type fakeMemoryAPI struct {
	mu       sync.Mutex
	queries  []string
	context  string
	clusters int
}

func (f *fakeMemoryAPI) GetContext(_ context.Context, query, _, _ string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.context
}

func (f *fakeMemoryAPI) ExportGraph(context.Context, string, string) (*memory.GraphExport, error) {
	return &memory.GraphExport{Stats: &graph.Stats{TotalNodes: 3}}, nil
}

func (f *fakeMemoryAPI) Stats(context.Context) (*graph.Stats, error) {
	return &graph.Stats{TotalNodes: 7}, nil
}

func (f *fakeMemoryAPI) Cluster(context.Context, string, string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clusters++
	return 2, nil
}

func (f *fakeMemoryAPI) Summarize(context.Context, string, string, bool) (string, error) {
	return "summary_abc", nil
}

func (f *fakeMemoryAPI) Decay(context.Context, string, string) (int, error)   { return 5, nil }
func (f *fakeMemoryAPI) Cleanup(context.Context, string, string) (int, error) { return 1, nil }

type fakeAgentRunner struct {
	mu   sync.Mutex
	runs []string
	out  string
	err  error
}

func (f *fakeAgentRunner) RunAgent(_ context.Context, agentName, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, agentName)
	return f.out, f.err
}

// eventRecorder captures bus events with mutex protection; bus handlers
// run on their own goroutines.
type eventRecorder struct {
	mu     sync.Mutex
	events []bus.Event
}

func (r *eventRecorder) record(ev bus.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(typ bus.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func (r *eventRecorder) get(typ bus.EventType, i int) *bus.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			if seen == i {
				copied := ev
				return &copied
			}
			seen++
		}
	}
	return nil
}

// waitFor polls until cond holds or a deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

// --- Fixture ---

type gwFixture struct {
	gw       *Gateway
	bus      *bus.Bus
	sessions *sessions.Manager
	tools    *tools.Service
	memory   *fakeMemoryAPI
	config   *fakeConfig
	agents   *fakeAgentRunner
	web      *channels.Web
	registry *channels.Registry
}

func newGatewayFixture(t *testing.T) *gwFixture {
	t.Helper()
	logger := slog.Default()
	b := bus.New()

	mgr := sessions.NewManager(filepath.Join(t.TempDir(), "sessions.json"), 10, nil)
	t.Cleanup(mgr.Close)

	toolSvc := tools.NewService(nil, nil, b, logger)
	require.NoError(t, toolSvc.Register(tools.LocalTool{
		Name:        "echo_tool",
		Description: "echoes its input",
		Handler: func(_ context.Context, args map[string]any) (string, error) {
			text, _ := args["text"].(string)
			return "echo: " + text, nil
		},
	}))

	registry := channels.NewRegistry(b, logger)
	web := channels.NewWeb(b)
	web.SetDeliverFunc(func(target, content, messageType string) error { return nil })
	registry.Register(web)

	mem := &fakeMemoryAPI{}
	cfg := &fakeConfig{}
	agents := &fakeAgentRunner{out: "agent done"}

	gw := New(Deps{
		Config:     cfg,
		Bus:        b,
		Sessions:   mgr,
		Memory:     mem,
		Tools:      toolSvc,
		Agents:     agents,
		AgentNames: []string{"researcher"},
		Channels:   registry,
		Metrics:    metrics.New(b),
		Logger:     logger,
	})

	return &gwFixture{
		gw:       gw,
		bus:      b,
		sessions: mgr,
		tools:    toolSvc,
		memory:   mem,
		config:   cfg,
		agents:   agents,
		web:      web,
		registry: registry,
	}
}

func (f *gwFixture) call(t *testing.T, method string, params map[string]any) *Response {
	t.Helper()
	req := &Request{Type: msgTypeRequest, ID: "r1", Method: method, Params: params}
	return f.gw.Dispatch(context.Background(), nil, req)
}

// --- Tests ---

func TestDispatch_UnknownMethod(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "no.such.method", nil)
	assert.False(t, resp.OK)
	assert.Equal(t, "Unknown request method: no.such.method", resp.Error)
	assert.Equal(t, "r1", resp.ID)
}

func TestDispatch_EmitsRequestEvents(t *testing.T) {
	f := newGatewayFixture(t)
	rec := &eventRecorder{}
	f.bus.On(bus.EventRequestReceived, rec.record)
	f.bus.On(bus.EventRequestCompleted, rec.record)
	f.bus.On(bus.EventRequestFailed, rec.record)

	f.call(t, "health", nil)
	f.call(t, "no.such.method", nil)

	assert.Equal(t, 2, rec.count(bus.EventRequestReceived))
	assert.Equal(t, 1, rec.count(bus.EventRequestCompleted))
	assert.Equal(t, 1, rec.count(bus.EventRequestFailed))
	failed := rec.get(bus.EventRequestFailed, 0)
	require.NotNil(t, failed)
	assert.Equal(t, "Unknown request method: no.such.method", failed.Payload["error"])
}

func TestHealthMethod(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "health", nil)
	require.True(t, resp.OK)
	assert.Equal(t, "healthy", resp.Payload["status"])
	assert.Equal(t, 0, resp.Payload["active_connections"])
	assert.Equal(t, []string{"web"}, resp.Payload["channels"])
}

func TestStatusMethod(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "status", nil)
	require.True(t, resp.OK)
	assert.Equal(t, "running", resp.Payload["gateway_status"])
	assert.Equal(t, 7, resp.Payload["nodes"])
	assert.Equal(t, []string{"researcher"}, resp.Payload["agents"])
}

func TestSystemInfoMethod(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "system.info", nil)
	require.True(t, resp.OK)
	assert.NotEmpty(t, resp.Payload["version"])
	assert.Contains(t, resp.Payload["features"], "memory")
	assert.Contains(t, resp.Payload["features"], "agents")
}

func TestChannelsStatusMethod(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "channels.status", nil)
	require.True(t, resp.OK)
	assert.Equal(t, 1, resp.Payload["total"])
	statuses, ok := resp.Payload["channels"].(map[string]any)
	require.True(t, ok)
	web, ok := statuses["web"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, web["available"])
}

func TestConnectMethod_RejectsUnknownRole(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "connect", map[string]any{
		"identity": map[string]any{"device_name": "probe", "role": "superuser"},
	})
	require.False(t, resp.OK)
	assert.Contains(t, resp.Error, "unknown device role")
}

func TestConnectMethod_NoConnection(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "connect", map[string]any{
		"identity": map[string]any{"device_id": "d1", "device_name": "laptop"},
	})
	require.True(t, resp.OK)
	assert.Equal(t, "", resp.Payload["connection_id"])
	caps, ok := resp.Payload["capabilities"].([]string)
	require.True(t, ok)
	assert.Contains(t, caps, "tool.call")
	assert.Contains(t, caps, "memory.query")
}

func TestSendMethod(t *testing.T) {
	f := newGatewayFixture(t)

	resp := f.call(t, "send", map[string]any{
		"channel": "web", "target": "u1", "content": "hello",
	})
	require.True(t, resp.OK, resp.Error)
	assert.Equal(t, "sent", resp.Payload["status"])
	assert.Equal(t, "web", resp.Payload["channel"])
	assert.NotEmpty(t, resp.Payload["message_id"])
}

func TestSendMethod_Validation(t *testing.T) {
	f := newGatewayFixture(t)

	resp := f.call(t, "send", map[string]any{"channel": "web"})
	assert.False(t, resp.OK)

	resp = f.call(t, "send", map[string]any{
		"channel": "nope", "target": "u1", "content": "x",
	})
	assert.False(t, resp.OK)
}

func TestAgentMethod(t *testing.T) {
	f := newGatewayFixture(t)
	rec := &eventRecorder{}
	f.bus.On(bus.EventAgentStart, rec.record)
	f.bus.On(bus.EventAgentComplete, rec.record)

	resp := f.call(t, "agent", map[string]any{
		"agent_name": "researcher", "prompt": "look this up",
	})
	require.True(t, resp.OK)
	assert.Equal(t, "accepted", resp.Payload["status"])
	runID, _ := resp.Payload["run_id"].(string)
	assert.NotEmpty(t, runID)

	waitFor(t, func() bool { return rec.count(bus.EventAgentComplete) == 1 })
	complete := rec.get(bus.EventAgentComplete, 0)
	assert.Equal(t, runID, complete.Payload["run_id"])
	assert.Equal(t, "agent done", complete.Payload["content"])
}

func TestAgentMethod_Errors(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "agent", map[string]any{"agent_name": "researcher"})
	assert.False(t, resp.OK)

	f.agents.err = fmt.Errorf("agent exploded")
	f.agents.out = ""
	rec := &eventRecorder{}
	f.bus.On(bus.EventAgentError, rec.record)

	resp = f.call(t, "agent", map[string]any{"agent_name": "researcher", "prompt": "x"})
	require.True(t, resp.OK)
	waitFor(t, func() bool { return rec.count(bus.EventAgentError) == 1 })
	assert.Equal(t, "agent exploded", rec.get(bus.EventAgentError, 0).Payload["error"])
}

func TestMemoryQueryMethod(t *testing.T) {
	f := newGatewayFixture(t)
	f.memory.context = "[Direct memories]\n- [08-01] likes coffee\n- [08-02] lives in Berlin"

	resp := f.call(t, "memory.query", map[string]any{"query": "what do I like"})
	require.True(t, resp.OK)
	assert.Equal(t, "what do I like", resp.Payload["query"])
	assert.Equal(t, 2, resp.Payload["total"])
	assert.Contains(t, resp.Payload["context"], "likes coffee")
}

func TestMemoryQueryMethod_RequiresQuery(t *testing.T) {
	f := newGatewayFixture(t)
	resp := f.call(t, "memory.query", map[string]any{})
	assert.False(t, resp.OK)
}

func TestMemoryMaintenanceMethods(t *testing.T) {
	f := newGatewayFixture(t)

	resp := f.call(t, "memory.cluster", map[string]any{"session_id": "s1"})
	require.True(t, resp.OK)
	assert.Equal(t, 2, resp.Payload["concepts"])

	resp = f.call(t, "memory.summarize", map[string]any{"session_id": "s1", "incremental": true})
	require.True(t, resp.OK)
	assert.Equal(t, "summary_abc", resp.Payload["summary_id"])

	resp = f.call(t, "memory.decay", map[string]any{"session_id": "s1"})
	require.True(t, resp.OK)
	assert.Equal(t, 5, resp.Payload["updated"])

	resp = f.call(t, "memory.cleanup", map[string]any{"session_id": "s1"})
	require.True(t, resp.OK)
	assert.Equal(t, 1, resp.Payload["deleted"])

	resp = f.call(t, "memory.graph", map[string]any{"session_id": "s1"})
	require.True(t, resp.OK)

	// session_id is mandatory for all maintenance methods.
	resp = f.call(t, "memory.cluster", map[string]any{})
	assert.False(t, resp.OK)
}

func TestSessionMethods(t *testing.T) {
	f := newGatewayFixture(t)
	f.sessions.CreateSession("web_u1", "alice")
	f.sessions.AddMessage("web_u1", "user", "hi", "alice", false)
	f.sessions.AddMessage("web_u1", "assistant", "hello", "alice", false)

	resp := f.call(t, "sessions.list", map[string]any{"user_id": "alice"})
	require.True(t, resp.OK)
	assert.Equal(t, 1, resp.Payload["total"])

	resp = f.call(t, "session.detail", map[string]any{"session_id": "web_u1", "user_id": "alice"})
	require.True(t, resp.OK)
	msgs, ok := resp.Payload["messages"].([]sessions.Message)
	require.True(t, ok)
	assert.Len(t, msgs, 2)

	resp = f.call(t, "session.delete", map[string]any{"session_id": "web_u1", "user_id": "alice"})
	require.True(t, resp.OK)
	assert.Equal(t, "deleted", resp.Payload["status"])

	resp = f.call(t, "session.detail", map[string]any{"session_id": "web_u1", "user_id": "alice"})
	assert.False(t, resp.OK)
}

func TestToolMethods(t *testing.T) {
	f := newGatewayFixture(t)

	resp := f.call(t, "tools.list", nil)
	require.True(t, resp.OK)
	assert.Equal(t, 1, resp.Payload["total"])

	resp = f.call(t, "tool.call", map[string]any{
		"tool_name": "echo_tool",
		"params":    map[string]any{"text": "ping"},
	})
	require.True(t, resp.OK)
	assert.Equal(t, "echo_tool", resp.Payload["tool"])
	assert.Equal(t, "echo: ping", resp.Payload["result"])

	resp = f.call(t, "tool.call", map[string]any{})
	assert.False(t, resp.OK)
}

func TestConfigMethods(t *testing.T) {
	f := newGatewayFixture(t)

	resp := f.call(t, "config.get", nil)
	require.True(t, resp.OK)
	cfg, ok := resp.Payload["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "assistant", cfg["agent_name"])

	resp = f.call(t, "config.reload", nil)
	require.True(t, resp.OK)
	assert.Equal(t, 1, f.config.reloads)

	resp = f.call(t, "config.update", map[string]any{
		"updates": map[string]any{"agent_name": "helper"},
	})
	require.True(t, resp.OK)
	assert.Equal(t, map[string]any{"agent_name": "helper"}, f.config.updates)

	resp = f.call(t, "config.update", map[string]any{})
	assert.False(t, resp.OK)

	resp = f.call(t, "config.reset", nil)
	require.True(t, resp.OK)
	assert.Equal(t, 1, f.config.resets)

	resp = f.call(t, "config.switch_model", map[string]any{"model": "gpt-x"})
	require.True(t, resp.OK)
	assert.Equal(t, "gpt-x", f.config.switched)

	resp = f.call(t, "config.switch_model", map[string]any{})
	assert.False(t, resp.OK)

	resp = f.call(t, "config.diagnose", nil)
	require.True(t, resp.OK)
	assert.Contains(t, resp.Payload["issues"], "API key is not configured")
}

func TestCountMemoryItems(t *testing.T) {
	assert.Equal(t, 0, countMemoryItems(""))
	assert.Equal(t, 2, countMemoryItems("[Direct memories]\n- one\n- two"))
	assert.Equal(t, 1, countMemoryItems("header\n  - indented item\nplain line"))
}
