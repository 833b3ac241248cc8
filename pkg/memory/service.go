// Package memory implements the layered long-term memory system: a
// gated write path fed by completed turns, three-layer recall, and
// background maintenance (clustering, summarization, decay).
package memory

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

// Service is the memory facade the rest of the gateway talks to. All
// entry points are fail-soft: memory problems degrade to "no memory",
// never into a failed conversation turn.
type Service struct {
	cfg    config.MemoryConfig
	store  graph.Store
	hot    *HotLayer
	warm   *WarmLayer
	cold   *ColdLayer
	forget *Forgetting
	writer *Writer
	recall *RecallEngine
	bus    *bus.Bus
	logger *slog.Logger

	mu          sync.Mutex
	maintenance map[string]*sessionMaintenance
	wg          sync.WaitGroup
	closed      chan struct{}
}

// sessionMaintenance tracks the per-session trigger state.
type sessionMaintenance struct {
	messages             int
	messagesSinceCluster int
	lastClusterAt        time.Time
	lastDecayAt          time.Time
	idleTimer            *time.Timer
	clusterRunning       bool
	summaryRunning       bool
	decayRunning         bool
}

// Deps bundles the collaborators a Service needs.
type Deps struct {
	Store      graph.Store
	Extractor  Extractor
	Classifier Completer
	Summarizer Completer
	Embedder   Embedder
	Bus        *bus.Bus
	Logger     *slog.Logger
}

// NewService wires the memory stack. The classifier and summarizer may
// be the same Completer; either may be nil for degraded operation.
func NewService(cfg config.MemoryConfig, deps Deps) *Service {
	hot := NewHotLayer(deps.Store, deps.Extractor, deps.Logger)
	s := &Service{
		cfg:         cfg,
		store:       deps.Store,
		hot:         hot,
		warm:        NewWarmLayer(deps.Store, deps.Embedder, cfg.WarmLayer, deps.Logger),
		cold:        NewColdLayer(deps.Store, deps.Summarizer, cfg.ColdLayer, deps.Logger),
		forget:      NewForgetting(deps.Store, cfg.Maintenance, deps.Logger),
		writer:      NewWriter(cfg, deps.Classifier, hot, deps.Store, deps.Bus, deps.Logger),
		recall:      NewRecallEngine(deps.Store, deps.Extractor, deps.Logger),
		bus:         deps.Bus,
		logger:      deps.Logger,
		maintenance: make(map[string]*sessionMaintenance),
		closed:      make(chan struct{}),
	}
	return s
}

// Start subscribes the write path to interaction.completed events.
func (s *Service) Start() {
	s.bus.On(bus.EventInteractionCompleted, s.onInteractionCompleted)
}

// Close detaches from the bus and waits for in-flight maintenance.
func (s *Service) Close() {
	s.bus.Off(bus.EventInteractionCompleted, s.onInteractionCompleted)
	close(s.closed)

	s.mu.Lock()
	for _, state := range s.maintenance {
		if state.idleTimer != nil {
			state.idleTimer.Stop()
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Service) onInteractionCompleted(ev bus.Event) {
	sessionID, _ := ev.Payload["session_id"].(string)
	userID, _ := ev.Payload["user_id"].(string)
	userText, _ := ev.Payload["user_input"].(string)
	assistantText, _ := ev.Payload["assistant_output"].(string)
	if sessionID == "" || userID == "" {
		return
	}

	ctx := context.Background()
	if _, err := s.writer.HandleInteraction(ctx, sessionID, userID, userText, assistantText); err != nil {
		s.logger.Warn("memory write path failed",
			"session_id", sessionID, "user_id", userID, "error", err)
	}
}

// AddMessage stores one message into the graph, without write gating.
// This is the sync hook the session manager calls for every committed
// message.
func (s *Service) AddMessage(ctx context.Context, sessionID, role, content, userID string) error {
	_, err := s.hot.AddMessage(ctx, sessionID, role, content, userID, nil)
	return err
}

// GetContext recalls relevant memory for a query, formatted for prompt
// injection. Empty string means no relevant memory.
func (s *Service) GetContext(ctx context.Context, query, sessionID, userID string) string {
	if gate := s.cfg.Gating.RecallFilter; gate.Enabled {
		n := len([]rune(query))
		if n > gate.MaxQueryChars {
			return ""
		}
		if n < gate.MinQueryChars && !HasExplicitMemoryMarker(query) {
			return ""
		}
	}

	recalled := s.recall.Recall(ctx, query, sessionID, userID)
	if recalled != "" {
		s.bus.Emit(bus.EventMemoryRecalled, map[string]any{
			"session_id": sessionID,
			"user_id":    userID,
			"chars":      len(recalled),
		})
	}
	return recalled
}

// explicitMemoryMarkers bypass the short-query rejection: the user is
// directly asking about stored memory. Over-long queries are still
// rejected.
var explicitMemoryMarkers = []string{
	"what is my name", "who am i", "do you remember me", "remember my name",
	"my preference", "my profile",
	"我叫什么", "我叫啥", "我的名字", "你记得我", "你还记得", "我是谁", "我的偏好", "我的设定",
}

// HasExplicitMemoryMarker reports whether the query directly asks about
// stored memory, which bypasses the short-query rejection.
func HasExplicitMemoryMarker(query string) bool {
	lowered := graph.NormalizeContent(query)
	if lowered == "" {
		return false
	}
	for _, marker := range explicitMemoryMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// GraphExport is the memory.graph payload.
type GraphExport struct {
	Nodes []*graph.Node `json:"nodes"`
	Edges []*graph.Edge `json:"edges"`
	Stats *graph.Stats  `json:"stats"`
}

// ExportGraph returns a session's nodes, edges and graph-wide stats,
// enforcing session ownership.
func (s *Service) ExportGraph(ctx context.Context, sessionID, userID string) (*GraphExport, error) {
	resolved, owned, err := graph.ResolveOwnedSession(ctx, s.store, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return &GraphExport{}, nil
	}
	nodes, edges, err := s.store.Export(ctx, resolved)
	if err != nil {
		return nil, err
	}
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &GraphExport{Nodes: nodes, Edges: edges, Stats: stats}, nil
}

// Stats returns graph-wide node/edge counts.
func (s *Service) Stats(ctx context.Context) (*graph.Stats, error) {
	return s.store.Stats(ctx)
}

// Cluster runs a warm-layer clustering pass for one session on demand
// and returns the number of concepts created.
func (s *Service) Cluster(ctx context.Context, sessionID, userID string) (int, error) {
	scoped := graph.ScopedSessionID(userID, sessionID)
	created, err := s.warm.ClusterSession(ctx, scoped)
	if err != nil {
		return 0, err
	}
	if created > 0 {
		s.bus.Emit(bus.EventMemoryClustered, map[string]any{
			"session_id": scoped,
			"concepts":   created,
		})
	}
	return created, nil
}

// Summarize creates a cold-layer summary for one session on demand,
// bypassing the should-create gate. Returns the summary node id.
func (s *Service) Summarize(ctx context.Context, sessionID, userID string, incremental bool) (string, error) {
	scoped := graph.ScopedSessionID(userID, sessionID)
	var summaryID string
	var err error
	if incremental {
		summaryID, err = s.cold.CreateIncrementalSummary(ctx, scoped)
	} else {
		summaryID, err = s.cold.SummarizeSession(ctx, scoped)
	}
	if err != nil {
		return "", err
	}
	if summaryID != "" {
		s.bus.Emit(bus.EventMemorySummarized, map[string]any{
			"session_id": scoped,
			"summary_id": summaryID,
		})
	}
	return summaryID, nil
}

// Decay applies the time-decay sweep to one session on demand and
// returns the number of nodes updated.
func (s *Service) Decay(ctx context.Context, sessionID, userID string) (int, error) {
	scoped := graph.ScopedSessionID(userID, sessionID)
	return s.forget.ApplyDecay(ctx, scoped)
}

// Cleanup deletes low-importance nodes for one session on demand and
// returns the number of nodes removed.
func (s *Service) Cleanup(ctx context.Context, sessionID, userID string) (int, error) {
	scoped := graph.ScopedSessionID(userID, sessionID)
	return s.forget.Cleanup(ctx, scoped)
}

// OnMessageSaved advances the per-session maintenance state and kicks
// off clustering, summarization, decay or cleanup when thresholds hit.
func (s *Service) OnMessageSaved(sessionID, role, userID string) {
	scoped := graph.ScopedSessionID(userID, sessionID)

	s.mu.Lock()
	state, ok := s.maintenance[scoped]
	if !ok {
		state = &sessionMaintenance{lastDecayAt: time.Now()}
		s.maintenance[scoped] = state
	}
	state.messages++
	state.messagesSinceCluster++
	s.resetIdleTimerLocked(scoped, state)

	runCluster := s.shouldClusterLocked(state)
	if runCluster {
		state.clusterRunning = true
	}
	runSummary := !state.summaryRunning
	if runSummary {
		state.summaryRunning = true
	}
	runDecay := !state.decayRunning &&
		time.Since(state.lastDecayAt) >= time.Duration(s.cfg.Maintenance.DecayIntervalS)*time.Second
	if runDecay {
		state.decayRunning = true
	}
	runCleanup := s.cfg.Maintenance.CleanupEveryMessages > 0 &&
		state.messages%s.cfg.Maintenance.CleanupEveryMessages == 0
	s.mu.Unlock()

	if runCluster {
		s.spawn(func() { s.runCluster(scoped, state) })
	}
	if runSummary {
		s.spawn(func() { s.runSummary(scoped, state) })
	}
	if runDecay {
		s.spawn(func() { s.runDecay(scoped, state) })
	}
	if runCleanup {
		s.spawn(func() {
			if _, err := s.forget.Cleanup(context.Background(), scoped); err != nil {
				s.logger.Warn("cleanup failed", "session_id", scoped, "error", err)
			}
		})
	}
}

func (s *Service) spawn(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

func (s *Service) shouldClusterLocked(state *sessionMaintenance) bool {
	if !s.cfg.WarmLayer.Enabled || state.clusterRunning {
		return false
	}
	if state.messagesSinceCluster < s.cfg.WarmLayer.ClusterEveryMessages {
		return false
	}
	minInterval := time.Duration(s.cfg.WarmLayer.ClusterMinIntervalS) * time.Second
	return time.Since(state.lastClusterAt) >= minInterval
}

// resetIdleTimerLocked arms the idle-clustering timer: a quiet session
// with enough pending messages still gets clustered.
func (s *Service) resetIdleTimerLocked(scoped string, state *sessionMaintenance) {
	if !s.cfg.WarmLayer.Enabled || s.cfg.WarmLayer.IdleClusterDelayS <= 0 {
		return
	}
	if state.idleTimer != nil {
		state.idleTimer.Stop()
	}
	delay := time.Duration(s.cfg.WarmLayer.IdleClusterDelayS) * time.Second
	state.idleTimer = time.AfterFunc(delay, func() {
		select {
		case <-s.closed:
			return
		default:
		}
		s.mu.Lock()
		run := !state.clusterRunning && state.messagesSinceCluster >= s.cfg.WarmLayer.IdleClusterMinMessages
		if run {
			state.clusterRunning = true
		}
		s.mu.Unlock()
		if run {
			s.spawn(func() { s.runCluster(scoped, state) })
		}
	})
}

func (s *Service) runCluster(scoped string, state *sessionMaintenance) {
	created, err := s.warm.ClusterSession(context.Background(), scoped)
	if err != nil {
		s.logger.Warn("warm-layer clustering failed", "session_id", scoped, "error", err)
	}
	s.mu.Lock()
	state.clusterRunning = false
	state.messagesSinceCluster = 0
	state.lastClusterAt = time.Now()
	s.mu.Unlock()

	if created > 0 {
		s.bus.Emit(bus.EventMemoryClustered, map[string]any{
			"session_id": scoped,
			"concepts":   created,
		})
	}
}

func (s *Service) runSummary(scoped string, state *sessionMaintenance) {
	defer func() {
		s.mu.Lock()
		state.summaryRunning = false
		s.mu.Unlock()
	}()

	ctx := context.Background()
	should, err := s.cold.ShouldCreateSummary(ctx, scoped)
	if err != nil {
		s.logger.Warn("summary gate failed", "session_id", scoped, "error", err)
		return
	}
	if !should {
		return
	}
	summaryID, err := s.cold.CreateIncrementalSummary(ctx, scoped)
	if err != nil {
		s.logger.Warn("cold-layer summarization failed", "session_id", scoped, "error", err)
		return
	}
	if summaryID != "" {
		s.bus.Emit(bus.EventMemorySummarized, map[string]any{
			"session_id": scoped,
			"summary_id": summaryID,
		})
	}
}

func (s *Service) runDecay(scoped string, state *sessionMaintenance) {
	defer func() {
		s.mu.Lock()
		state.decayRunning = false
		state.lastDecayAt = time.Now()
		s.mu.Unlock()
	}()

	ctx := context.Background()
	if _, err := s.forget.ApplyDecay(ctx, scoped); err != nil {
		s.logger.Warn("decay sweep failed", "session_id", scoped, "error", err)
		return
	}
	if _, err := s.forget.Cleanup(ctx, scoped); err != nil {
		s.logger.Warn("post-decay cleanup failed", "session_id", scoped, "error", err)
	}
}
