package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = &jsonschema.Schema{Type: "object"}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startTestServer creates an in-memory MCP server with the given tools
// and returns the client-side transport.
func startTestServer(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *mcpsdk.InMemoryTransport {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return clientTransport
}

// connectClientDirect wires a Client to a pre-connected in-memory
// transport, bypassing the registry/createTransport path.
func connectClientDirect(t *testing.T, serverID string, transport *mcpsdk.InMemoryTransport) *Client {
	t.Helper()
	ctx := context.Background()

	client := NewClient(NewRegistry([]ServerConfig{
		{ID: serverID, Transport: TransportConfig{Type: TransportTypeStdio, Command: "unused"}},
	}), testLogger())

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "gateway-test", Version: "test",
	}, nil)

	session, err := sdkClient.Connect(ctx, transport, nil)
	require.NoError(t, err)

	client.mu.Lock()
	client.sessions[serverID] = session
	client.clients[serverID] = sdkClient
	client.mu.Unlock()

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}}}
}

func TestClient_ListTools(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
		"fetch": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "web", transport)
	ctx := context.Background()

	tools, err := client.ListTools(ctx, "web")
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.ElementsMatch(t, []string{"search", "fetch"}, names)

	// Second call hits the cache.
	again, err := client.ListTools(ctx, "web")
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestClient_CallTool(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"echo": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			var args map[string]any
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, err
			}
			return textResult("echo: " + args["text"].(string)), nil
		},
	})

	client := connectClientDirect(t, "utils", transport)

	out, err := client.CallTool(context.Background(), "utils", "echo", map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
}

func TestClient_CallTool_IsErrorResult(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"broken": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "backend unavailable"}},
			}, nil
		},
	})

	client := connectClientDirect(t, "utils", transport)

	_, err := client.CallTool(context.Background(), "utils", "broken", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unavailable")
}

func TestClient_UnknownServer(t *testing.T) {
	client := NewClient(NewRegistry(nil), testLogger())
	t.Cleanup(func() { _ = client.Close() })

	_, err := client.CallTool(context.Background(), "nope", "tool", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mcp server "nope"`)
}

func TestClient_HasSessionAndInvalidate(t *testing.T) {
	transport := startTestServer(t, "test-server", map[string]mcpsdk.ToolHandler{
		"noop": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "svc", transport)
	assert.True(t, client.HasSession("svc"))
	assert.False(t, client.HasSession("other"))

	_, err := client.ListTools(context.Background(), "svc")
	require.NoError(t, err)

	client.InvalidateToolCache("svc")
	client.toolCacheMu.RLock()
	_, cached := client.toolCache["svc"]
	client.toolCacheMu.RUnlock()
	assert.False(t, cached)
}

func TestRenderResult_MultipleBlocks(t *testing.T) {
	out, err := renderResult(&mcpsdk.CallToolResult{Content: []mcpsdk.Content{
		&mcpsdk.TextContent{Text: "first"},
		&mcpsdk.TextContent{Text: "second"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", out)
}
