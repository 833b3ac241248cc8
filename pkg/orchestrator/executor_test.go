package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/llm"
	"github.com/openconvo/gateway/pkg/tools"
)

func newExecutorFixture(t *testing.T) (*tools.Service, *toolExecutor) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := tools.NewService(nil, nil, bus.New(), logger)
	require.NoError(t, svc.Register(tools.LocalTool{
		Name:        "echo",
		Description: "echoes text",
		Handler: func(_ context.Context, args map[string]any) (string, error) {
			text, _ := args["text"].(string)
			return "echo: " + text, nil
		},
	}))
	exec := newToolExecutor(context.Background(), svc, tools.CallContext{SessionID: "s1", UserID: "alice"})
	return svc, exec
}

func TestToolExecutor_Definitions(t *testing.T) {
	_, exec := newExecutorFixture(t)
	defs := exec.Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "echo", defs[0].Name)
	assert.Equal(t, "echoes text", defs[0].Description)
}

func TestToolExecutor_ExecuteBatch(t *testing.T) {
	_, exec := newExecutorFixture(t)

	res, err := exec.ExecuteBatch(context.Background(), []llm.ToolCall{
		{ID: "c1", Name: "echo", Arguments: `{"text":"hi"}`},
	}, nil)
	require.NoError(t, err)

	assert.Nil(t, res.Confirmation)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "echo: hi", res.Results[0].Content)
	assert.False(t, res.Results[0].IsError)
}

func TestToolExecutor_ConfirmationRoundTrips(t *testing.T) {
	svc, exec := newExecutorFixture(t)
	require.NoError(t, svc.Register(tools.LocalTool{
		Name:    "execute_command",
		Handler: func(context.Context, map[string]any) (string, error) { return "ran", nil },
	}))

	calls := []llm.ToolCall{
		{ID: "c1", Name: "echo", Arguments: `{"text":"hi"}`},
		{ID: "c2", Name: "execute_command", Arguments: `{"command":"ls"}`},
	}
	res, err := exec.ExecuteBatch(context.Background(), calls, nil)
	require.NoError(t, err)

	require.NotNil(t, res.Confirmation)
	assert.Empty(t, res.Results)
	assert.Equal(t, "c2", res.Confirmation.ToolCallID)
	assert.Equal(t, map[string]any{"command": "ls"}, res.Confirmation.Arguments)
	// Calls survive the map round trip for later replay.
	require.Len(t, res.Confirmation.AllCalls, 2)
	assert.JSONEq(t, `{"text":"hi"}`, res.Confirmation.AllCalls[0].Arguments)

	// Replay with approval executes everything.
	res, err = exec.ExecuteBatch(context.Background(), res.Confirmation.AllCalls, []string{"c2"})
	require.NoError(t, err)
	assert.Nil(t, res.Confirmation)
	assert.Len(t, res.Results, 2)
}

func TestParseArgs(t *testing.T) {
	assert.Equal(t, map[string]any{}, parseArgs(""))
	assert.Equal(t, map[string]any{"a": float64(1)}, parseArgs(`{"a":1}`))
	assert.Equal(t, map[string]any{"_raw": "not json"}, parseArgs("not json"))
}
