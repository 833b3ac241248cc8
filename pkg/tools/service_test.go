package tools

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAgents struct {
	agentName string
	prompt    string
	sessionID string
	reply     string
	err       error
}

func (f *fakeAgents) RunAgent(_ context.Context, agentName, prompt, sessionID string) (string, error) {
	f.agentName, f.prompt, f.sessionID = agentName, prompt, sessionID
	return f.reply, f.err
}

func testCallContext() CallContext {
	return CallContext{
		RequestID:    "req-1",
		ConnectionID: "conn-1",
		SessionID:    "s1",
		UserID:       "alice",
	}
}

func collectEvents(b *bus.Bus, types ...bus.EventType) *[]bus.Event {
	var events []bus.Event
	for _, t := range types {
		b.On(t, func(ev bus.Event) { events = append(events, ev) })
	}
	return &events
}

func TestCall_LocalTool(t *testing.T) {
	b := bus.New()
	events := collectEvents(b, bus.EventToolCallStart, bus.EventToolCallResult, bus.EventToolCallError)

	svc := NewService(nil, nil, b, testLogger())
	require.NoError(t, svc.Register(LocalTool{
		Name:        "get_time",
		Description: "current time",
		Handler: func(_ context.Context, _ map[string]any) (string, error) {
			return "12:00", nil
		},
	}))

	out, err := svc.Call(context.Background(), testCallContext(), "get_time", nil)
	require.NoError(t, err)
	assert.Equal(t, "12:00", out)

	require.Len(t, *events, 2)
	start, result := (*events)[0], (*events)[1]
	assert.Equal(t, bus.EventToolCallStart, start.Type)
	assert.Equal(t, "local", start.Payload["tool_type"])
	assert.Equal(t, "req-1", start.Payload["request_id"])
	assert.Equal(t, bus.EventToolCallResult, result.Type)
	assert.Equal(t, "12:00", result.Payload["result"])
}

func TestCall_LocalToolErrorEmitsErrorEvent(t *testing.T) {
	b := bus.New()
	events := collectEvents(b, bus.EventToolCallError)

	svc := NewService(nil, nil, b, testLogger())
	require.NoError(t, svc.Register(LocalTool{
		Name: "flaky",
		Handler: func(_ context.Context, _ map[string]any) (string, error) {
			return "", errors.New("backend down")
		},
	}))

	_, err := svc.Call(context.Background(), testCallContext(), "flaky", nil)
	require.Error(t, err)

	require.Len(t, *events, 1)
	assert.Equal(t, "backend down", (*events)[0].Payload["error"])
}

func TestCall_AgentHandoff(t *testing.T) {
	agents := &fakeAgents{reply: "agent says hi"}
	svc := NewService(agents, nil, bus.New(), testLogger())

	out, err := svc.Call(context.Background(), testCallContext(), "research", map[string]any{
		"agentType":  "agent",
		"agent_name": "researcher",
		"prompt":     "find the docs",
	})
	require.NoError(t, err)
	assert.Equal(t, "agent says hi", out)
	assert.Equal(t, "researcher", agents.agentName)
	assert.Equal(t, "find the docs", agents.prompt)
	assert.Equal(t, "s1", agents.sessionID)
}

func TestCall_AgentHandoffValidation(t *testing.T) {
	svc := NewService(&fakeAgents{}, nil, bus.New(), testLogger())

	_, err := svc.Call(context.Background(), testCallContext(), "research", map[string]any{
		"agentType": "agent",
	})
	assert.ErrorContains(t, err, "agent_name and prompt")

	svc = NewService(nil, nil, bus.New(), testLogger())
	_, err = svc.Call(context.Background(), testCallContext(), "research", map[string]any{
		"agentType":  "agent",
		"agent_name": "r",
		"prompt":     "p",
	})
	assert.ErrorContains(t, err, "no agent manager")
}

func TestCall_UnknownToolWithoutMCP(t *testing.T) {
	svc := NewService(nil, nil, bus.New(), testLogger())

	_, err := svc.Call(context.Background(), testCallContext(), "mystery", nil)
	assert.ErrorContains(t, err, "no MCP backend")
}

func TestResolveMCPCall(t *testing.T) {
	// Defaults: service = tool name, tool = tool name.
	service, tool, args := resolveMCPCall("browser", map[string]any{"url": "https://example.com"})
	assert.Equal(t, "browser", service)
	assert.Equal(t, "browser", tool)
	assert.Equal(t, map[string]any{"url": "https://example.com"}, args)

	// Explicit routing keys are honored and stripped.
	service, tool, args = resolveMCPCall("browser", map[string]any{
		"service_name": "playwright",
		"tool_name":    "navigate",
		"agentType":    "mcp",
		"url":          "https://example.com",
	})
	assert.Equal(t, "playwright", service)
	assert.Equal(t, "navigate", tool)
	assert.Equal(t, map[string]any{"url": "https://example.com"}, args)

	// command is the fallback tool name and stays in the args.
	_, tool, args = resolveMCPCall("shell", map[string]any{"command": "ls"})
	assert.Equal(t, "ls", tool)
	assert.Equal(t, map[string]any{"command": "ls"}, args)
}

func TestList_LocalToolsSorted(t *testing.T) {
	svc := NewService(nil, nil, bus.New(), testLogger())
	require.NoError(t, svc.Register(LocalTool{Name: "zeta", Handler: noopHandler}))
	require.NoError(t, svc.Register(LocalTool{Name: "alpha", Handler: noopHandler}))

	infos := svc.List(context.Background())
	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, "local", infos[0].Source)
	assert.Equal(t, "zeta", infos[1].Name)
}

func noopHandler(_ context.Context, _ map[string]any) (string, error) { return "", nil }

func TestRegister_Validation(t *testing.T) {
	svc := NewService(nil, nil, bus.New(), testLogger())
	assert.Error(t, svc.Register(LocalTool{Handler: noopHandler}))
	assert.Error(t, svc.Register(LocalTool{Name: "x"}))
}
