package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// maxToolRounds bounds the tool-call loop within a single turn.
const maxToolRounds = 10

// confirmResumeMarker is appended to the injected tool results when a
// confirmed batch resumes the conversation.
const confirmResumeMarker = "(user has confirmed and executed) please continue."

// Status is the outcome of one chat-loop run.
type Status string

const (
	StatusSuccess           Status = "success"
	StatusNeedsConfirmation Status = "needs_confirmation"
)

// ToolResult is the outcome of one executed tool call.
type ToolResult struct {
	CallID  string
	Name    string
	Content string
	IsError bool
}

// ConfirmationRequest is raised when a batch contains an unapproved
// high-risk call. No tool in the batch has executed.
type ConfirmationRequest struct {
	ToolCallID string
	ToolName   string
	Arguments  map[string]any
	AllCalls   []ToolCall
}

// ToolBatchResult is the outcome of executing one batch of tool calls:
// either every call ran, or the batch stopped on a confirmation.
type ToolBatchResult struct {
	Results      []ToolResult
	Confirmation *ConfirmationRequest
}

// ToolExecutor runs tool-call batches on behalf of the chat loop.
// approvedCallIDs carries the calls the user has already confirmed.
type ToolExecutor interface {
	Definitions() []ToolDefinition
	ExecuteBatch(ctx context.Context, calls []ToolCall, approvedCallIDs []string) (*ToolBatchResult, error)
}

// PendingState is everything needed to resume an interrupted turn after
// the user decides on the confirmation.
type PendingState struct {
	ToolCallID   string                `json:"tool_call_id"`
	ToolName     string                `json:"tool_name"`
	Arguments    map[string]any        `json:"args"`
	PendingCalls []ToolCall            `json:"pending_tool_calls"`
	Messages     []ConversationMessage `json:"current_messages"`
	Content      string                `json:"content"`
}

// Result is what one chat-loop run produced.
type Result struct {
	Content      string
	Status       Status
	Confirmation *PendingState
}

// ChatLoop drives the model through tool-call rounds until it produces a
// final text answer or stops on a confirmation.
type ChatLoop struct {
	client Client
	model  *ModelConfig
	logger *slog.Logger
}

// NewChatLoop returns a chat loop over the given client and model.
func NewChatLoop(client Client, model *ModelConfig, logger *slog.Logger) *ChatLoop {
	return &ChatLoop{client: client, model: model, logger: logger}
}

// Run executes the turn. executor may be nil, in which case tool calls
// from the model are ignored and the text response is returned as-is.
func (l *ChatLoop) Run(ctx context.Context, messages []ConversationMessage, sessionID, turnID string, executor ToolExecutor) (*Result, error) {
	return l.run(ctx, messages, sessionID, turnID, executor)
}

// Resume re-executes a preserved batch with the approved call id, then
// continues the conversation with the results injected as a synthetic
// user message. Other unapproved high-risk calls in the batch surface a
// new confirmation (chained).
func (l *ChatLoop) Resume(ctx context.Context, pending *PendingState, approvedCallID, sessionID, turnID string, executor ToolExecutor) (*Result, error) {
	batch, err := executor.ExecuteBatch(ctx, pending.PendingCalls, []string{approvedCallID})
	if err != nil {
		return nil, fmt.Errorf("tool batch replay failed: %w", err)
	}
	if batch.Confirmation != nil {
		return confirmationResult(batch.Confirmation, pending.Messages, pending.Content), nil
	}

	messages := append([]ConversationMessage(nil), pending.Messages...)
	messages = append(messages, ConversationMessage{
		Role:    "user",
		Content: formatResumeResults(batch.Results),
	})
	return l.run(ctx, messages, sessionID, turnID, executor)
}

func (l *ChatLoop) run(ctx context.Context, messages []ConversationMessage, sessionID, turnID string, executor ToolExecutor) (*Result, error) {
	var tools []ToolDefinition
	if executor != nil {
		tools = executor.Definitions()
	}

	for round := 0; round < maxToolRounds; round++ {
		text, toolCalls, err := l.generate(ctx, messages, sessionID, turnID, tools)
		if err != nil {
			return nil, err
		}
		if len(toolCalls) == 0 || executor == nil {
			return &Result{Content: text, Status: StatusSuccess}, nil
		}

		assistant := ConversationMessage{Role: "assistant", Content: text, ToolCalls: toolCalls}
		messages = append(messages, assistant)

		batch, err := executor.ExecuteBatch(ctx, toolCalls, nil)
		if err != nil {
			return nil, fmt.Errorf("tool batch execution failed: %w", err)
		}
		if batch.Confirmation != nil {
			return confirmationResult(batch.Confirmation, messages, text), nil
		}

		for _, r := range batch.Results {
			messages = append(messages, ConversationMessage{
				Role:       "tool",
				Content:    r.Content,
				ToolCallID: r.CallID,
				ToolName:   r.Name,
			})
		}
	}
	return nil, fmt.Errorf("tool loop exceeded %d rounds for session %s", maxToolRounds, sessionID)
}

// generate runs one model call and collects its text and tool calls.
func (l *ChatLoop) generate(ctx context.Context, messages []ConversationMessage, sessionID, turnID string, tools []ToolDefinition) (string, []ToolCall, error) {
	ch, err := l.client.Generate(ctx, &GenerateInput{
		SessionID: sessionID,
		TurnID:    turnID,
		Messages:  messages,
		Config:    l.model,
		Tools:     tools,
	})
	if err != nil {
		return "", nil, err
	}

	var text strings.Builder
	var toolCalls []ToolCall
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
		case *ToolCallChunk:
			toolCalls = append(toolCalls, ToolCall{ID: c.CallID, Name: c.Name, Arguments: c.Arguments})
		case *ErrorChunk:
			return "", nil, fmt.Errorf("llm error (%s): %s", c.Code, c.Message)
		case *UsageChunk:
			l.logger.Debug("llm usage",
				"session_id", sessionID,
				"input_tokens", c.InputTokens,
				"output_tokens", c.OutputTokens)
		}
	}
	return text.String(), toolCalls, nil
}

func confirmationResult(req *ConfirmationRequest, messages []ConversationMessage, content string) *Result {
	return &Result{
		Content: content,
		Status:  StatusNeedsConfirmation,
		Confirmation: &PendingState{
			ToolCallID:   req.ToolCallID,
			ToolName:     req.ToolName,
			Arguments:    req.Arguments,
			PendingCalls: req.AllCalls,
			Messages:     messages,
			Content:      content,
		},
	}
}

// formatResumeResults renders executed tool results as text blocks with
// the continue marker appended.
func formatResumeResults(results []ToolResult) string {
	var b strings.Builder
	for _, r := range results {
		if r.IsError {
			fmt.Fprintf(&b, "[%s error] %s\n", r.Name, r.Content)
			continue
		}
		fmt.Fprintf(&b, "[%s] %s\n", r.Name, r.Content)
	}
	b.WriteString(confirmResumeMarker)
	return b.String()
}
