// Package orchestrator turns inbound channel messages into LLM turns
// with per-session ordering, bounded queues, and retry with backoff.
package orchestrator

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/llm"
	"github.com/openconvo/gateway/pkg/memory"
	"github.com/openconvo/gateway/pkg/sessions"
	"github.com/openconvo/gateway/pkg/tools"
)

// MemoryProvider supplies recalled context for a query.
type MemoryProvider interface {
	GetContext(ctx context.Context, query, sessionID, userID string) string
}

// RecallDecider answers whether a query benefits from memory recall.
type RecallDecider interface {
	NeedsRecall(ctx context.Context, message string) bool
}

// ChatRunner drives one LLM turn, including tool-call rounds.
type ChatRunner interface {
	Run(ctx context.Context, messages []llm.ConversationMessage, sessionID, turnID string, executor llm.ToolExecutor) (*llm.Result, error)
	Resume(ctx context.Context, pending *llm.PendingState, approvedCallID, sessionID, turnID string, executor llm.ToolExecutor) (*llm.Result, error)
}

// ConfigProvider exposes the system config and per-user merged views.
type ConfigProvider interface {
	System() *config.Config
	Merged(userID string) *config.Config
}

// inbound is one queued channel message.
type inbound struct {
	channel   string
	sender    string
	content   string
	userID    string
	sessionID string
}

type worker struct {
	key   string
	queue chan inbound
}

// Orchestrator owns the per-session worker pool.
type Orchestrator struct {
	cfg      ConfigProvider
	bus      *bus.Bus
	sessions *sessions.Manager
	memory   MemoryProvider
	recall   RecallDecider
	chat     ChatRunner
	tools    *tools.Service
	logger   *slog.Logger

	mu      sync.Mutex
	workers map[string]*worker
	wg      sync.WaitGroup
	closed  chan struct{}
}

// Deps carries the orchestrator's collaborators. Memory and Recall may
// be nil; turns then run without recalled context.
type Deps struct {
	Config   ConfigProvider
	Bus      *bus.Bus
	Sessions *sessions.Manager
	Memory   MemoryProvider
	Recall   RecallDecider
	Chat     ChatRunner
	Tools    *tools.Service
	Logger   *slog.Logger
}

// New creates an orchestrator. Call Start to begin consuming
// channel.message events.
func New(d Deps) *Orchestrator {
	return &Orchestrator{
		cfg:      d.Config,
		bus:      d.Bus,
		sessions: d.Sessions,
		memory:   d.Memory,
		recall:   d.Recall,
		chat:     d.Chat,
		tools:    d.Tools,
		logger:   d.Logger,
		workers:  make(map[string]*worker),
		closed:   make(chan struct{}),
	}
}

// Start subscribes to channel.message events.
func (o *Orchestrator) Start() {
	o.bus.On(bus.EventChannelMessage, o.onChannelMessage)
}

// Close stops accepting messages and waits for in-flight turns.
func (o *Orchestrator) Close() {
	o.bus.Off(bus.EventChannelMessage, o.onChannelMessage)
	close(o.closed)
	o.wg.Wait()
}

func (o *Orchestrator) onChannelMessage(ev bus.Event) {
	channel, _ := ev.Payload["channel"].(string)
	sender, _ := ev.Payload["sender"].(string)
	content, _ := ev.Payload["content"].(string)
	userID, _ := ev.Payload["user_id"].(string)
	if channel == "" || sender == "" || content == "" {
		return
	}

	key := channel + "_" + sender
	msg := inbound{
		channel:   channel,
		sender:    sender,
		content:   content,
		userID:    sessions.NormalizeUserID(userID),
		sessionID: key,
	}

	o.mu.Lock()
	select {
	case <-o.closed:
		o.mu.Unlock()
		return
	default:
	}
	w, ok := o.workers[key]
	if !ok {
		w = &worker{key: key, queue: make(chan inbound, o.queueSize())}
		o.workers[key] = w
		o.wg.Add(1)
		go o.runWorker(w)
	}
	var overflow bool
	select {
	case w.queue <- msg:
	default:
		overflow = true
	}
	o.mu.Unlock()

	if overflow {
		o.logger.Warn("session queue full, dropping message",
			"session_id", key, "user_id", msg.userID)
		o.bus.Emit(bus.EventConversationError, map[string]any{
			"session_id": key,
			"user_id":    msg.userID,
			"channel":    channel,
			"error":      "session queue is full",
		})
	}
}

func (o *Orchestrator) queueSize() int {
	if n := o.cfg.System().Conversation.Processing.MaxQueueSize; n > 0 {
		return n
	}
	return 32
}

// runWorker serializes turns for one session and exits after sitting
// idle with an empty queue for the worker TTL.
func (o *Orchestrator) runWorker(w *worker) {
	defer o.wg.Done()
	idleTTL := o.cfg.System().Conversation.Processing.WorkerIdleTTL()
	if idleTTL <= 0 {
		idleTTL = 300 * time.Second
	}

	for {
		select {
		case msg := <-w.queue:
			o.processTurn(msg)
		case <-time.After(idleTTL):
			o.mu.Lock()
			if len(w.queue) == 0 {
				delete(o.workers, w.key)
				o.mu.Unlock()
				o.logger.Debug("session worker expired", "session_id", w.key)
				return
			}
			o.mu.Unlock()
		case <-o.closed:
			return
		}
	}
}

func (o *Orchestrator) processTurn(msg inbound) {
	ctx := context.Background()
	turnID := uuid.NewString()

	if o.sessions.GetSession(msg.sessionID, msg.userID) == nil {
		o.sessions.CreateSession(msg.sessionID, msg.userID)
	}
	if !o.sessions.BeginTurn(msg.sessionID, turnID, "user", msg.content, msg.userID) {
		o.emitTurnError(msg, "another turn is already in flight", 0, 0, false, 0)
		return
	}

	o.bus.Emit(bus.EventConversationStart, map[string]any{
		"session_id": msg.sessionID,
		"user_id":    msg.userID,
		"channel":    msg.channel,
		"turn_id":    turnID,
	})

	proc := o.cfg.System().Conversation.Processing
	var result *llm.Result
	for attempt := 0; ; attempt++ {
		var err error
		result, err = o.runTurn(ctx, msg, turnID)
		if err == nil {
			break
		}

		willRetry := attempt < proc.MaxRetries
		delay := backoffDelay(proc, attempt)
		o.logger.Error("turn failed",
			"session_id", msg.sessionID, "attempt", attempt,
			"will_retry", willRetry, "error", err)
		o.emitTurnError(msg, err.Error(), attempt, proc.MaxRetries, willRetry, delay)

		if !willRetry {
			o.sessions.AbortTurn(msg.sessionID, turnID, msg.userID)
			return
		}
		select {
		case <-time.After(delay):
		case <-o.closed:
			o.sessions.AbortTurn(msg.sessionID, turnID, msg.userID)
			return
		}
	}

	if result.Status == llm.StatusNeedsConfirmation {
		o.storePending(msg, turnID, result.Confirmation)
		o.bus.Emit(bus.EventConversationComplete, map[string]any{
			"session_id":   msg.sessionID,
			"user_id":      msg.userID,
			"channel":      msg.channel,
			"status":       "needs_confirmation",
			"tool_call_id": result.Confirmation.ToolCallID,
			"tool_name":    result.Confirmation.ToolName,
			"args":         result.Confirmation.Arguments,
		})
		return
	}

	if !o.sessions.CommitTurn(msg.sessionID, turnID, result.Content, msg.userID) {
		o.emitTurnError(msg, "turn commit failed", 0, 0, false, 0)
		o.sessions.AbortTurn(msg.sessionID, turnID, msg.userID)
		return
	}

	o.emitCompleted(msg.sessionID, msg.userID, msg.channel, msg.content, result.Content)
}

func (o *Orchestrator) runTurn(ctx context.Context, msg inbound, turnID string) (*llm.Result, error) {
	userCfg := o.cfg.Merged(msg.userID)
	systemPrompt := o.buildSystemPrompt(ctx, userCfg, msg.content, msg.sessionID, msg.userID)

	history := o.sessions.BuildConversation(msg.sessionID, systemPrompt, msg.content, true, msg.userID)
	messages := toLLMMessages(history)

	exec := newToolExecutor(ctx, o.tools, tools.CallContext{
		SessionID: msg.sessionID,
		UserID:    msg.userID,
	})
	return o.chat.Run(ctx, messages, msg.sessionID, turnID, exec)
}

// buildSystemPrompt prepends recalled memory context to the base prompt
// when the cheap gate and the recall classifier both let the query
// through. Explicit memory markers bypass the short-query rejection.
func (o *Orchestrator) buildSystemPrompt(ctx context.Context, userCfg *config.Config, query, sessionID, userID string) string {
	base := userCfg.Prompts.System
	if userCfg.SystemPrompt != "" {
		base = userCfg.SystemPrompt
	}
	if o.memory == nil {
		return base
	}

	gate := userCfg.Memory.Gating.RecallFilter
	if gate.Enabled {
		n := utf8.RuneCountInString(query)
		if n > gate.MaxQueryChars {
			return base
		}
		if n < gate.MinQueryChars && !memory.HasExplicitMemoryMarker(query) {
			return base
		}
	}
	if o.recall != nil && !o.recall.NeedsRecall(ctx, query) {
		return base
	}

	recalled := o.memory.GetContext(ctx, query, sessionID, userID)
	if recalled == "" {
		return base
	}
	return recalled + "\n\n" + base
}

// ResolveConfirmation applies the user's approve/reject decision for a
// pending tool confirmation and, on approval, resumes the interrupted
// turn. The returned payload is what the HTTP surface sends back.
func (o *Orchestrator) ResolveConfirmation(ctx context.Context, sessionID, userID, toolCallID string, approve bool) (map[string]any, error) {
	userID = sessions.NormalizeUserID(userID)
	stored := o.sessions.GetPendingConfirmation(sessionID, userID)
	if stored == nil {
		return nil, errNoPendingConfirmation
	}
	if id, _ := stored["tool_call_id"].(string); id != toolCallID {
		return nil, errConfirmationMismatch
	}

	if !approve {
		o.sessions.ClearPendingConfirmation(sessionID, userID)
		turnID, _ := stored["turn_id"].(string)
		o.sessions.AbortTurn(sessionID, turnID, userID)
		return map[string]any{"status": "rejected"}, nil
	}

	pending, err := decodePending(stored)
	if err != nil {
		return nil, err
	}
	turnID, _ := stored["turn_id"].(string)
	channel, _ := stored["channel"].(string)
	userInput, _ := stored["user_input"].(string)
	o.sessions.ClearPendingConfirmation(sessionID, userID)

	exec := newToolExecutor(ctx, o.tools, tools.CallContext{
		SessionID: sessionID,
		UserID:    userID,
	})
	result, err := o.chat.Resume(ctx, pending, toolCallID, sessionID, turnID, exec)
	if err != nil {
		o.sessions.AbortTurn(sessionID, turnID, userID)
		o.bus.Emit(bus.EventConversationError, map[string]any{
			"session_id": sessionID,
			"user_id":    userID,
			"channel":    channel,
			"error":      err.Error(),
			"will_retry": false,
		})
		return nil, err
	}

	if result.Status == llm.StatusNeedsConfirmation {
		msg := inbound{channel: channel, sessionID: sessionID, userID: userID, content: userInput}
		o.storePending(msg, turnID, result.Confirmation)
		return map[string]any{
			"status":       "needs_confirmation",
			"tool_call_id": result.Confirmation.ToolCallID,
			"tool_name":    result.Confirmation.ToolName,
			"args":         result.Confirmation.Arguments,
		}, nil
	}

	if !o.sessions.CommitTurn(sessionID, turnID, result.Content, userID) {
		o.sessions.AbortTurn(sessionID, turnID, userID)
		return nil, errCommitFailed
	}
	o.emitCompleted(sessionID, userID, channel, userInput, result.Content)
	return map[string]any{"status": "success", "content": result.Content}, nil
}

func (o *Orchestrator) storePending(msg inbound, turnID string, conf *llm.PendingState) {
	data := encodePending(conf)
	data["turn_id"] = turnID
	data["channel"] = msg.channel
	data["user_input"] = msg.content
	o.sessions.SetPendingConfirmation(msg.sessionID, data, msg.userID)
}

func (o *Orchestrator) emitCompleted(sessionID, userID, channel, userInput, assistantOutput string) {
	o.bus.Emit(bus.EventConversationComplete, map[string]any{
		"session_id": sessionID,
		"user_id":    userID,
		"channel":    channel,
		"status":     "success",
		"content":    assistantOutput,
	})
	o.bus.Emit(bus.EventInteractionCompleted, map[string]any{
		"session_id":       sessionID,
		"user_id":          userID,
		"channel":          channel,
		"user_input":       userInput,
		"assistant_output": assistantOutput,
	})
}

func (o *Orchestrator) emitTurnError(msg inbound, errText string, attempt, maxRetries int, willRetry bool, delay time.Duration) {
	payload := map[string]any{
		"session_id":  msg.sessionID,
		"user_id":     msg.userID,
		"channel":     msg.channel,
		"error":       errText,
		"attempt":     attempt,
		"max_retries": maxRetries,
		"will_retry":  willRetry,
	}
	if willRetry {
		payload["retry_delay_s"] = delay.Seconds()
	}
	o.bus.Emit(bus.EventConversationError, payload)
}

// backoffDelay computes min(max, base * 2^attempt).
func backoffDelay(proc config.ProcessingConfig, attempt int) time.Duration {
	base := proc.RetryBaseDelay()
	if base <= 0 {
		base = time.Second
	}
	maxDelay := proc.RetryMaxDelay()
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}
	delay := time.Duration(float64(base) * math.Pow(2, float64(attempt)))
	if delay > maxDelay {
		return maxDelay
	}
	return delay
}

func toLLMMessages(history []sessions.Message) []llm.ConversationMessage {
	out := make([]llm.ConversationMessage, 0, len(history))
	for _, m := range history {
		out = append(out, llm.ConversationMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

// encodePending flattens a pending state to the map the session store
// persists; decodePending reverses it after a JSON round trip.
func encodePending(p *llm.PendingState) map[string]any {
	raw, _ := json.Marshal(p)
	var data map[string]any
	_ = json.Unmarshal(raw, &data)
	return data
}

func decodePending(data map[string]any) (*llm.PendingState, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var p llm.PendingState
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
