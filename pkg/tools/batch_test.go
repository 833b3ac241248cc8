package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
		want RiskLevel
	}{
		{"destructive command", "execute_command", nil, RiskHigh},
		{"file write", "write_file", nil, RiskHigh},
		{"browser default", "browser_action", nil, RiskModerate},
		{"browser click", "browser_action", map[string]any{"action": "click"}, RiskModerate},
		{"browser screenshot downgraded", "browser_action", map[string]any{"action": "screenshot"}, RiskSafe},
		{"click tool", "click", nil, RiskModerate},
		{"unknown default", "get_weather", nil, RiskSafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.tool, tt.args))
		})
	}
}

func batchService(t *testing.T, executed *[]string) *Service {
	t.Helper()
	svc := NewService(nil, nil, bus.New(), testLogger())
	record := func(name string) LocalHandler {
		return func(_ context.Context, _ map[string]any) (string, error) {
			*executed = append(*executed, name)
			return name + " done", nil
		}
	}
	for _, name := range []string{"get_weather", "execute_command", "delete_file", "browser_action"} {
		require.NoError(t, svc.Register(LocalTool{Name: name, Handler: record(name)}))
	}
	return svc
}

func TestExecuteBatch_AllSafe(t *testing.T) {
	var executed []string
	svc := batchService(t, &executed)

	outcome, err := svc.ExecuteBatch(context.Background(), testCallContext(), []BatchCall{
		{ID: "c1", Name: "get_weather"},
		{ID: "c2", Name: "browser_action", Args: map[string]any{"action": "screenshot"}},
	}, nil)
	require.NoError(t, err)

	assert.Nil(t, outcome.Confirmation)
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, "get_weather done", outcome.Results[0].Content)
	assert.Equal(t, []string{"get_weather", "browser_action"}, executed)
}

func TestExecuteBatch_HighRiskHaltsBeforeAnyExecution(t *testing.T) {
	var executed []string
	svc := batchService(t, &executed)

	calls := []BatchCall{
		{ID: "c1", Name: "get_weather"},
		{ID: "c2", Name: "execute_command", Args: map[string]any{"command": "rm x"}},
	}
	outcome, err := svc.ExecuteBatch(context.Background(), testCallContext(), calls, nil)
	require.NoError(t, err)

	require.NotNil(t, outcome.Confirmation)
	assert.Equal(t, "c2", outcome.Confirmation.ToolCallID)
	assert.Equal(t, "execute_command", outcome.Confirmation.ToolName)
	assert.Equal(t, map[string]any{"command": "rm x"}, outcome.Confirmation.Args)
	assert.Equal(t, calls, outcome.Confirmation.AllCalls)
	// Atomic batch: the safe call ahead of it did not run either.
	assert.Empty(t, executed)
	assert.Empty(t, outcome.Results)
}

func TestExecuteBatch_ApprovedCallRuns(t *testing.T) {
	var executed []string
	svc := batchService(t, &executed)

	outcome, err := svc.ExecuteBatch(context.Background(), testCallContext(), []BatchCall{
		{ID: "c1", Name: "get_weather"},
		{ID: "c2", Name: "execute_command"},
	}, []string{"c2"})
	require.NoError(t, err)

	assert.Nil(t, outcome.Confirmation)
	assert.Equal(t, []string{"get_weather", "execute_command"}, executed)
}

func TestExecuteBatch_ChainedConfirmations(t *testing.T) {
	var executed []string
	svc := batchService(t, &executed)

	calls := []BatchCall{
		{ID: "c1", Name: "execute_command"},
		{ID: "c2", Name: "delete_file"},
	}
	// First high-risk call approved, second still pending.
	outcome, err := svc.ExecuteBatch(context.Background(), testCallContext(), calls, []string{"c1"})
	require.NoError(t, err)

	require.NotNil(t, outcome.Confirmation)
	assert.Equal(t, "c2", outcome.Confirmation.ToolCallID)
	assert.Empty(t, executed)
}

func TestExecuteBatch_CallFailureBecomesErrorResult(t *testing.T) {
	svc := NewService(nil, nil, bus.New(), testLogger())
	require.NoError(t, svc.Register(LocalTool{
		Name: "flaky",
		Handler: func(_ context.Context, _ map[string]any) (string, error) {
			return "", errors.New("boom")
		},
	}))
	require.NoError(t, svc.Register(LocalTool{Name: "steady", Handler: noopHandler}))

	outcome, err := svc.ExecuteBatch(context.Background(), testCallContext(), []BatchCall{
		{ID: "c1", Name: "flaky"},
		{ID: "c2", Name: "steady"},
	}, nil)
	require.NoError(t, err)

	require.Len(t, outcome.Results, 2)
	assert.True(t, outcome.Results[0].IsError)
	assert.Equal(t, "boom", outcome.Results[0].Content)
	assert.False(t, outcome.Results[1].IsError)
}
