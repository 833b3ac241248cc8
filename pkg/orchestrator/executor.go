package orchestrator

import (
	"context"
	"encoding/json"

	"github.com/openconvo/gateway/pkg/llm"
	"github.com/openconvo/gateway/pkg/tools"
)

// toolExecutor adapts the tool service to the chat loop's executor
// interface, translating between JSON-string and map argument forms.
type toolExecutor struct {
	svc  *tools.Service
	cc   tools.CallContext
	defs []llm.ToolDefinition
}

func newToolExecutor(ctx context.Context, svc *tools.Service, cc tools.CallContext) *toolExecutor {
	infos := svc.List(ctx)
	defs := make([]llm.ToolDefinition, 0, len(infos))
	for _, info := range infos {
		defs = append(defs, llm.ToolDefinition{
			Name:             info.Name,
			Description:      info.Description,
			ParametersSchema: string(info.ParametersSchema),
		})
	}
	return &toolExecutor{svc: svc, cc: cc, defs: defs}
}

func (e *toolExecutor) Definitions() []llm.ToolDefinition { return e.defs }

func (e *toolExecutor) ExecuteBatch(ctx context.Context, calls []llm.ToolCall, approvedCallIDs []string) (*llm.ToolBatchResult, error) {
	batch := make([]tools.BatchCall, 0, len(calls))
	for _, call := range calls {
		batch = append(batch, tools.BatchCall{
			ID:   call.ID,
			Name: call.Name,
			Args: parseArgs(call.Arguments),
		})
	}

	outcome, err := e.svc.ExecuteBatch(ctx, e.cc, batch, approvedCallIDs)
	if err != nil {
		return nil, err
	}

	if conf := outcome.Confirmation; conf != nil {
		return &llm.ToolBatchResult{Confirmation: &llm.ConfirmationRequest{
			ToolCallID: conf.ToolCallID,
			ToolName:   conf.ToolName,
			Arguments:  conf.Args,
			AllCalls:   toLLMCalls(conf.AllCalls),
		}}, nil
	}

	results := make([]llm.ToolResult, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		results = append(results, llm.ToolResult{
			CallID:  r.CallID,
			Name:    r.Name,
			Content: r.Content,
			IsError: r.IsError,
		})
	}
	return &llm.ToolBatchResult{Results: results}, nil
}

// parseArgs tolerates empty or malformed argument payloads; the tool
// backend surfaces missing-parameter errors itself.
func parseArgs(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"_raw": raw}
	}
	return args
}

func toLLMCalls(calls []tools.BatchCall) []llm.ToolCall {
	out := make([]llm.ToolCall, 0, len(calls))
	for _, c := range calls {
		raw, _ := json.Marshal(c.Args)
		out = append(out, llm.ToolCall{ID: c.ID, Name: c.Name, Arguments: string(raw)})
	}
	return out
}
