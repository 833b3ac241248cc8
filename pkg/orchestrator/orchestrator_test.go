package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/llm"
	"github.com/openconvo/gateway/pkg/sessions"
	"github.com/openconvo/gateway/pkg/tools"
)

type staticConfig struct {
	cfg *config.Config
}

func (s *staticConfig) System() *config.Config       { return s.cfg }
func (s *staticConfig) Merged(string) *config.Config { return s.cfg }

func testConfig() *staticConfig {
	return &staticConfig{cfg: &config.Config{
		Prompts: config.PromptsConfig{System: "You are a helpful assistant."},
		Memory: config.MemoryConfig{
			Gating: config.MemoryGatingConfig{
				RecallFilter: config.RecallFilterConfig{
					Enabled:       true,
					MinQueryChars: 6,
					MaxQueryChars: 4000,
				},
			},
		},
		Conversation: config.ConversationConfig{
			Processing: config.ProcessingConfig{
				MaxQueueSize:    4,
				MaxRetries:      2,
				RetryBaseDelayS: 0.01,
				RetryMaxDelayS:  0.02,
				WorkerIdleTTLS:  60,
			},
		},
	}}
}

// scriptedChat replays results or errors per Run call.
type scriptedChat struct {
	mu       sync.Mutex
	results  []*llm.Result
	errs     []error
	runs     int
	resumes  int
	messages [][]llm.ConversationMessage
	pendings []*llm.PendingState
}

func (s *scriptedChat) next() (*llm.Result, error) {
	i := s.runs + s.resumes - 1
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	return s.results[i], nil
}

func (s *scriptedChat) Run(_ context.Context, messages []llm.ConversationMessage, _, _ string, _ llm.ToolExecutor) (*llm.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	s.messages = append(s.messages, messages)
	return s.next()
}

func (s *scriptedChat) Resume(_ context.Context, pending *llm.PendingState, _, _, _ string, _ llm.ToolExecutor) (*llm.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes++
	s.pendings = append(s.pendings, pending)
	return s.next()
}

type fakeMemory struct {
	context string
	queries []string
}

func (f *fakeMemory) GetContext(_ context.Context, query, _, _ string) string {
	f.queries = append(f.queries, query)
	return f.context
}

type fakeRecall struct{ recall bool }

func (f *fakeRecall) NeedsRecall(context.Context, string) bool { return f.recall }

// eventRecorder captures bus events safely across goroutines.
type eventRecorder struct {
	mu     sync.Mutex
	events map[bus.EventType][]bus.Event
}

func newEventRecorder(b *bus.Bus, types ...bus.EventType) *eventRecorder {
	r := &eventRecorder{events: make(map[bus.EventType][]bus.Event)}
	for _, typ := range types {
		b.On(typ, func(ev bus.Event) {
			r.mu.Lock()
			r.events[ev.Type] = append(r.events[ev.Type], ev)
			r.mu.Unlock()
		})
	}
	return r
}

func (r *eventRecorder) count(typ bus.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events[typ])
}

func (r *eventRecorder) get(typ bus.EventType, i int) bus.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[typ][i]
}

type orchFixture struct {
	orch     *Orchestrator
	bus      *bus.Bus
	sessions *sessions.Manager
	chat     *scriptedChat
	events   *eventRecorder
}

func newFixture(t *testing.T, chat *scriptedChat, mem MemoryProvider, recall RecallDecider) *orchFixture {
	t.Helper()
	b := bus.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr := sessions.NewManager(filepath.Join(t.TempDir(), "sessions.json"), 10, nil)
	t.Cleanup(mgr.Close)

	orch := New(Deps{
		Config:   testConfig(),
		Bus:      b,
		Sessions: mgr,
		Memory:   mem,
		Recall:   recall,
		Chat:     chat,
		Tools:    tools.NewService(nil, nil, b, logger),
		Logger:   logger,
	})
	orch.Start()
	t.Cleanup(orch.Close)

	events := newEventRecorder(b,
		bus.EventConversationStart, bus.EventConversationComplete,
		bus.EventConversationError, bus.EventInteractionCompleted)
	return &orchFixture{orch: orch, bus: b, sessions: mgr, chat: chat, events: events}
}

func (f *orchFixture) send(content string) {
	f.bus.Emit(bus.EventChannelMessage, map[string]any{
		"channel": "web",
		"sender":  "alice",
		"content": content,
		"user_id": "alice",
	})
}

// waitFor polls until the condition holds; turns run on worker goroutines.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestTurn_SuccessCommitsAndEmits(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{{Content: "hi alice", Status: llm.StatusSuccess}}}
	f := newFixture(t, chat, nil, nil)

	f.send("hello there")
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 1 })

	complete := f.events.get(bus.EventConversationComplete, 0)
	assert.Equal(t, "success", complete.Payload["status"])
	assert.Equal(t, "hi alice", complete.Payload["content"])
	assert.Equal(t, "web_alice", complete.Payload["session_id"])

	interaction := f.events.get(bus.EventInteractionCompleted, 0)
	assert.Equal(t, "hello there", interaction.Payload["user_input"])
	assert.Equal(t, "hi alice", interaction.Payload["assistant_output"])
	assert.Equal(t, "web", interaction.Payload["channel"])

	// Both sides of the turn landed in the session atomically.
	view := f.sessions.GetSession("web_alice", "alice")
	require.NotNil(t, view)
	require.Len(t, view.Messages, 2)
	assert.Equal(t, "user", view.Messages[0].Role)
	assert.Equal(t, "assistant", view.Messages[1].Role)

	// The model saw the system prompt first and the user text last.
	msgs := chat.messages[0]
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "You are a helpful assistant.", msgs[0].Content)
	assert.Equal(t, "hello there", msgs[len(msgs)-1].Content)
}

func TestTurn_RetriesWithBackoffThenAborts(t *testing.T) {
	boom := errors.New("llm unavailable")
	chat := &scriptedChat{errs: []error{boom, boom, boom}}
	f := newFixture(t, chat, nil, nil)

	f.send("hello there")
	waitFor(t, func() bool { return f.events.count(bus.EventConversationError) == 3 })

	first, last := f.events.get(bus.EventConversationError, 0), f.events.get(bus.EventConversationError, 2)
	assert.Equal(t, 0, first.Payload["attempt"])
	assert.Equal(t, 2, first.Payload["max_retries"])
	assert.Equal(t, true, first.Payload["will_retry"])
	assert.Contains(t, first.Payload, "retry_delay_s")
	assert.Equal(t, false, last.Payload["will_retry"])
	assert.NotContains(t, last.Payload, "retry_delay_s")

	// Aborted turn leaves no messages behind.
	waitFor(t, func() bool {
		view := f.sessions.GetSession("web_alice", "alice")
		return view != nil && len(view.Messages) == 0
	})
	assert.Zero(t, f.events.count(bus.EventInteractionCompleted))
}

func TestTurn_RetrySucceedsOnSecondAttempt(t *testing.T) {
	chat := &scriptedChat{
		errs:    []error{errors.New("transient"), nil},
		results: []*llm.Result{nil, {Content: "recovered", Status: llm.StatusSuccess}},
	}
	f := newFixture(t, chat, nil, nil)

	f.send("hello there")
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 1 })

	assert.Equal(t, 1, f.events.count(bus.EventConversationError))
	assert.Equal(t, "recovered", f.events.get(bus.EventConversationComplete, 0).Payload["content"])
}

func TestQueueOverflowDropsMessage(t *testing.T) {
	block := make(chan struct{})
	chat := &scriptedChat{results: []*llm.Result{{Content: "ok", Status: llm.StatusSuccess}}}
	f := newFixture(t, chat, nil, nil)

	// Stall the worker with a slow first turn.
	f.orch.chat = &blockingChat{block: block, inner: chat}
	f.send("message zero")
	waitFor(t, func() bool { return f.events.count(bus.EventConversationStart) == 1 })

	// Fill the queue (capacity 4) and then overflow it.
	for i := 0; i < 5; i++ {
		f.send("queued message")
	}
	waitFor(t, func() bool { return f.events.count(bus.EventConversationError) >= 1 })
	assert.Equal(t, "session queue is full", f.events.get(bus.EventConversationError, 0).Payload["error"])
	close(block)
}

func TestQueuedMessagesProcessInOrder(t *testing.T) {
	block := make(chan struct{})
	chat := &scriptedChat{results: []*llm.Result{{Content: "ok", Status: llm.StatusSuccess}}}
	f := newFixture(t, chat, nil, nil)

	// Stall the worker so the next two messages pile up in the queue.
	f.orch.chat = &blockingChat{block: block, inner: chat}
	f.send("first message")
	waitFor(t, func() bool { return f.events.count(bus.EventConversationStart) == 1 })
	f.send("second message")
	f.send("third message")

	close(block)
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 3 })

	// The worker drains the session queue in arrival order.
	chat.mu.Lock()
	defer chat.mu.Unlock()
	require.Len(t, chat.messages, 3)
	for i, want := range []string{"first message", "second message", "third message"} {
		msgs := chat.messages[i]
		assert.Equal(t, want, msgs[len(msgs)-1].Content)
	}
}

type blockingChat struct {
	block chan struct{}
	inner ChatRunner
}

func (b *blockingChat) Run(ctx context.Context, messages []llm.ConversationMessage, sessionID, turnID string, exec llm.ToolExecutor) (*llm.Result, error) {
	<-b.block
	return b.inner.Run(ctx, messages, sessionID, turnID, exec)
}

func (b *blockingChat) Resume(ctx context.Context, pending *llm.PendingState, approvedCallID, sessionID, turnID string, exec llm.ToolExecutor) (*llm.Result, error) {
	return b.inner.Resume(ctx, pending, approvedCallID, sessionID, turnID, exec)
}

func TestBuildSystemPrompt_MemoryGateAndClassifier(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{{Content: "ok", Status: llm.StatusSuccess}}}
	mem := &fakeMemory{context: "[Direct memories]\n- [08-01] user prefers dark mode..."}
	f := newFixture(t, chat, mem, &fakeRecall{recall: true})

	// Short query is gated, no recall.
	f.send("hi")
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 1 })
	assert.Empty(t, mem.queries)
	assert.Equal(t, "You are a helpful assistant.", chat.messages[0][0].Content)

	// Long enough query recalls and prepends context.
	f.send("what theme do I like?")
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 2 })
	require.Len(t, mem.queries, 1)
	system := chat.messages[1][0].Content
	assert.Contains(t, system, "[Direct memories]")
	assert.Contains(t, system, "\n\nYou are a helpful assistant.")
}

func TestBuildSystemPrompt_ClassifierDeclines(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{{Content: "ok", Status: llm.StatusSuccess}}}
	mem := &fakeMemory{context: "memories"}
	f := newFixture(t, chat, mem, &fakeRecall{recall: false})

	f.send("tell me a long joke about compilers")
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 1 })
	assert.Empty(t, mem.queries)
}

func TestBuildSystemPrompt_ExplicitMarkerBypassesShortGate(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{{Content: "ok", Status: llm.StatusSuccess}}}
	mem := &fakeMemory{context: "memories"}
	f := newFixture(t, chat, mem, &fakeRecall{recall: true})

	f.send("我是谁")
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 1 })
	assert.Len(t, mem.queries, 1)
}

func needsConfirmationResult() *llm.Result {
	return &llm.Result{
		Status: llm.StatusNeedsConfirmation,
		Confirmation: &llm.PendingState{
			ToolCallID:   "c1",
			ToolName:     "execute_command",
			Arguments:    map[string]any{"command": "ls"},
			PendingCalls: []llm.ToolCall{{ID: "c1", Name: "execute_command", Arguments: `{"command":"ls"}`}},
			Messages: []llm.ConversationMessage{
				{Role: "user", Content: "run ls"},
			},
		},
	}
}

func TestTurn_NeedsConfirmationStoresPendingWithoutCommit(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{needsConfirmationResult()}}
	f := newFixture(t, chat, nil, nil)

	f.send("run ls for me")
	waitFor(t, func() bool { return f.events.count(bus.EventConversationComplete) == 1 })

	complete := f.events.get(bus.EventConversationComplete, 0)
	assert.Equal(t, "needs_confirmation", complete.Payload["status"])
	assert.Equal(t, "c1", complete.Payload["tool_call_id"])
	assert.Equal(t, "execute_command", complete.Payload["tool_name"])

	// No commit: the session has no messages, but pending state exists.
	view := f.sessions.GetSession("web_alice", "alice")
	assert.Empty(t, view.Messages)
	pending := f.sessions.GetPendingConfirmation("web_alice", "alice")
	require.NotNil(t, pending)
	assert.Equal(t, "c1", pending["tool_call_id"])
	assert.Equal(t, "run ls for me", pending["user_input"])
	assert.Zero(t, f.events.count(bus.EventInteractionCompleted))
}

func TestResolveConfirmation_ApproveResumesAndCommits(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{
		needsConfirmationResult(),
		{Content: "files: a.txt", Status: llm.StatusSuccess},
	}}
	f := newFixture(t, chat, nil, nil)

	f.send("run ls for me")
	waitFor(t, func() bool { return f.sessions.GetPendingConfirmation("web_alice", "alice") != nil })

	payload, err := f.orch.ResolveConfirmation(context.Background(), "web_alice", "alice", "c1", true)
	require.NoError(t, err)
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "files: a.txt", payload["content"])

	// The preserved transcript round-tripped through the session store.
	require.Len(t, chat.pendings, 1)
	assert.Equal(t, "c1", chat.pendings[0].ToolCallID)
	require.Len(t, chat.pendings[0].PendingCalls, 1)
	assert.Equal(t, "execute_command", chat.pendings[0].PendingCalls[0].Name)

	assert.Nil(t, f.sessions.GetPendingConfirmation("web_alice", "alice"))
	view := f.sessions.GetSession("web_alice", "alice")
	require.Len(t, view.Messages, 2)
	assert.Equal(t, "files: a.txt", view.Messages[1].Content)
	waitFor(t, func() bool { return f.events.count(bus.EventInteractionCompleted) == 1 })
}

func TestResolveConfirmation_Reject(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{needsConfirmationResult()}}
	f := newFixture(t, chat, nil, nil)

	f.send("run ls for me")
	waitFor(t, func() bool { return f.sessions.GetPendingConfirmation("web_alice", "alice") != nil })

	payload, err := f.orch.ResolveConfirmation(context.Background(), "web_alice", "alice", "c1", false)
	require.NoError(t, err)
	assert.Equal(t, "rejected", payload["status"])
	assert.Nil(t, f.sessions.GetPendingConfirmation("web_alice", "alice"))
	assert.Equal(t, 0, chat.resumes)
}

func TestResolveConfirmation_Errors(t *testing.T) {
	chat := &scriptedChat{results: []*llm.Result{needsConfirmationResult()}}
	f := newFixture(t, chat, nil, nil)

	_, err := f.orch.ResolveConfirmation(context.Background(), "web_alice", "alice", "c1", true)
	assert.ErrorIs(t, err, errNoPendingConfirmation)

	f.send("run ls for me")
	waitFor(t, func() bool { return f.sessions.GetPendingConfirmation("web_alice", "alice") != nil })

	_, err = f.orch.ResolveConfirmation(context.Background(), "web_alice", "alice", "wrong-id", true)
	assert.ErrorIs(t, err, errConfirmationMismatch)
}

func TestBackoffDelay(t *testing.T) {
	proc := config.ProcessingConfig{RetryBaseDelayS: 1, RetryMaxDelayS: 3}
	assert.Equal(t, 1*time.Second, backoffDelay(proc, 0))
	assert.Equal(t, 2*time.Second, backoffDelay(proc, 1))
	assert.Equal(t, 3*time.Second, backoffDelay(proc, 2), "capped at max")
}
