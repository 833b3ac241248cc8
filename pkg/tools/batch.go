package tools

import "context"

// BatchCall is one tool call within a model-emitted batch.
type BatchCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// BatchResult is the outcome of one executed call.
type BatchResult struct {
	CallID  string `json:"call_id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	IsError bool   `json:"is_error"`
}

// Confirmation identifies the first unapproved high-risk call in a
// batch. While one is outstanding, nothing in the batch has executed.
type Confirmation struct {
	ToolCallID string         `json:"tool_call_id"`
	ToolName   string         `json:"tool_name"`
	Args       map[string]any `json:"args"`
	AllCalls   []BatchCall    `json:"all_tool_calls"`
}

// BatchOutcome is the sum of the two ways a batch can end: every call
// executed (Confirmation nil), or the batch stopped before executing
// anything because a high-risk call needs user approval.
type BatchOutcome struct {
	Results      []BatchResult
	Confirmation *Confirmation
}

// ExecuteBatch runs a batch of tool calls with risk gating. The whole
// batch is pre-scanned first: any HIGH-risk call whose id is not in
// approvedCallIDs halts the batch with a Confirmation and zero
// executions, preserving atomic batch semantics. Individual call
// failures do not abort the batch; they become error results.
func (s *Service) ExecuteBatch(ctx context.Context, cc CallContext, calls []BatchCall, approvedCallIDs []string) (*BatchOutcome, error) {
	approved := make(map[string]bool, len(approvedCallIDs))
	for _, id := range approvedCallIDs {
		approved[id] = true
	}

	for _, call := range calls {
		if ClassifyRisk(call.Name, call.Args) == RiskHigh && !approved[call.ID] {
			s.logger.Info("tool batch needs confirmation",
				"tool", call.Name, "call_id", call.ID, "session_id", cc.SessionID)
			return &BatchOutcome{Confirmation: &Confirmation{
				ToolCallID: call.ID,
				ToolName:   call.Name,
				Args:       call.Args,
				AllCalls:   calls,
			}}, nil
		}
	}

	results := make([]BatchResult, 0, len(calls))
	for _, call := range calls {
		content, err := s.Call(ctx, cc, call.Name, call.Args)
		if err != nil {
			results = append(results, BatchResult{
				CallID:  call.ID,
				Name:    call.Name,
				Content: err.Error(),
				IsError: true,
			})
			continue
		}
		results = append(results, BatchResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: content,
		})
	}
	return &BatchOutcome{Results: results}, nil
}
