package memory

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

// CandidateType classifies what kind of long-term state a candidate is.
type CandidateType string

const (
	CandidateGoal         CandidateType = "goal"
	CandidatePreference   CandidateType = "preference"
	CandidateConstraint   CandidateType = "constraint"
	CandidateIdentity     CandidateType = "identity"
	CandidateProjectState CandidateType = "project_state"
)

var allowedCandidateTypes = map[CandidateType]bool{
	CandidateGoal:         true,
	CandidatePreference:   true,
	CandidateConstraint:   true,
	CandidateIdentity:     true,
	CandidateProjectState: true,
}

// Candidate is one piece of long-term state the classifier pulled out of
// a completed turn.
type Candidate struct {
	Type         CandidateType `json:"type"`
	Content      string        `json:"content"`
	SemanticKeys []string      `json:"semantic_keys"`
}

const classifierSystemPrompt = "You decide whether a conversation turn contains durable, " +
	"long-term user state worth remembering. Output must be strict JSON."

const classifierPrompt = `Does this exchange contain long-term state about the user
(goals, preferences, constraints, identity, project state)?

Return JSON of exactly this shape:
{"has_long_term_state": bool, "candidates": [{"type": "goal|preference|constraint|identity|project_state", "content": "...", "semantic_keys": ["..."]}]}

user: %s
assistant: %s

Return only the JSON.`

// heuristicMarkers backs the conservative fallback used when the
// classifier model is unavailable.
var heuristicMarkers = []struct {
	marker string
	typ    CandidateType
}{
	{"prefer", CandidatePreference},
	{"favorite", CandidatePreference},
	{"must", CandidateConstraint},
	{"cannot", CandidateConstraint},
	{"can't", CandidateConstraint},
	{"goal", CandidateGoal},
	{"want to", CandidateGoal},
	{"plan to", CandidateGoal},
	{"i am", CandidateIdentity},
	{"my name", CandidateIdentity},
	{"project", CandidateProjectState},
}

// Writer drives the interaction.completed write path: code gates, the
// classifier, the recent-write cache and graph-level dedupe, then the
// hot-layer write.
type Writer struct {
	cfg       config.MemoryConfig
	classifer Completer
	hot       *HotLayer
	store     graph.Store
	bus       *bus.Bus
	logger    *slog.Logger

	recent *writeCache
}

// NewWriter wires up the write path. classifier may be nil, in which
// case the heuristic fallback always runs.
func NewWriter(cfg config.MemoryConfig, classifier Completer, hot *HotLayer, store graph.Store, eventBus *bus.Bus, logger *slog.Logger) *Writer {
	size := cfg.Gating.Dedupe.RecentWriteCacheSize
	if size <= 0 {
		size = 2000
	}
	return &Writer{
		cfg:       cfg,
		classifer: classifier,
		hot:       hot,
		store:     store,
		bus:       eventBus,
		logger:    logger,
		recent:    newWriteCache(size),
	}
}

// HandleInteraction processes one completed turn. Returns the number of
// candidates written.
func (w *Writer) HandleInteraction(ctx context.Context, sessionID, userID, userText, assistantText string) (int, error) {
	if !w.passesCodeGate(userText, assistantText) {
		return 0, nil
	}

	candidates := w.classify(ctx, userText, assistantText)
	if len(candidates) == 0 {
		return 0, nil
	}

	written := 0
	for _, c := range candidates {
		ok, err := w.writeCandidate(ctx, sessionID, userID, c)
		if err != nil {
			return written, err
		}
		if ok {
			written++
		}
	}
	return written, nil
}

// passesCodeGate applies the cheap pre-LLM filters.
func (w *Writer) passesCodeGate(userText, assistantText string) bool {
	gate := w.cfg.Gating.WriteFilter
	if gate.Enabled {
		userLen := len([]rune(strings.TrimSpace(userText)))
		assistantLen := len([]rune(strings.TrimSpace(assistantText)))
		if userLen == 0 && assistantLen == 0 {
			return false
		}
		if userLen < gate.MinUserChars && assistantLen < gate.MinAssistantCharsForShortUser {
			return false
		}
		if userLen+assistantLen > gate.MaxCombinedChars {
			return false
		}
	}
	return true
}

type classifierResponse struct {
	HasLongTermState bool        `json:"has_long_term_state"`
	Candidates       []Candidate `json:"candidates"`
}

func (w *Writer) classify(ctx context.Context, userText, assistantText string) []Candidate {
	var candidates []Candidate
	if w.classifer != nil {
		text, err := w.classifer.Complete(ctx, CompleteRequest{
			System:      classifierSystemPrompt,
			User:        fmt.Sprintf(classifierPrompt, userText, assistantText),
			Temperature: 0,
			MaxTokens:   600,
		})
		if err == nil {
			var resp classifierResponse
			if jsonErr := json.Unmarshal([]byte(carveJSON(text)), &resp); jsonErr == nil {
				if !resp.HasLongTermState {
					return nil
				}
				candidates = resp.Candidates
			}
		} else {
			w.logger.Warn("memory classifier unavailable, using heuristic fallback", "error", err)
			candidates = heuristicCandidates(userText)
		}
	} else {
		candidates = heuristicCandidates(userText)
	}

	return normalizeCandidates(candidates)
}

// heuristicCandidates emits at most one candidate, typed by the first
// matching marker phrase in the user text.
func heuristicCandidates(userText string) []Candidate {
	lowered := strings.ToLower(userText)
	for _, m := range heuristicMarkers {
		if strings.Contains(lowered, m.marker) {
			return []Candidate{{Type: m.typ, Content: userText}}
		}
	}
	return nil
}

func normalizeCandidates(in []Candidate) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		if !allowedCandidateTypes[c.Type] {
			continue
		}
		content := graph.NormalizeContent(c.Content)
		if content == "" {
			continue
		}
		keys := SemanticKeys(content)
		for _, k := range c.SemanticKeys {
			k = graph.NormalizeContent(k)
			if k != "" && !containsString(keys, k) {
				keys = append(keys, k)
			}
		}
		out = append(out, Candidate{Type: c.Type, Content: content, SemanticKeys: keys})
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// writeCandidate runs the per-candidate dedupe pipeline and, when it
// survives, stores the candidate through the hot layer.
func (w *Writer) writeCandidate(ctx context.Context, sessionID, userID string, c Candidate) (bool, error) {
	minChars := w.cfg.Gating.Dedupe.MinCandidateChars
	if minChars <= 0 {
		minChars = 8
	}
	if len([]rune(c.Content)) < minChars {
		return false, nil
	}

	key := WriteKey(userID, string(c.Type), c.Content)
	if w.recent.Contains(key) {
		return false, nil
	}

	dup, err := w.isGraphDuplicate(ctx, userID, c)
	if err != nil {
		return false, err
	}
	if dup {
		return false, nil
	}

	metadata := map[string]any{
		"memory_type":   string(c.Type),
		"memory_source": "interaction.completed",
		"semantic_keys": c.SemanticKeys,
	}
	if _, err := w.hot.AddMessage(ctx, sessionID, "user", c.Content, userID, metadata); err != nil {
		return false, fmt.Errorf("failed to write memory candidate: %w", err)
	}

	w.recent.Add(key)
	w.bus.Emit(bus.EventMemorySaved, map[string]any{
		"session_id":  sessionID,
		"user_id":     userID,
		"memory_type": string(c.Type),
		"content":     c.Content,
	})
	return true, nil
}

// isGraphDuplicate applies the three-step graph dedupe: exact content
// match skips; semantic-key matches whose message contents all differ
// mean a state change (write); no match at all also writes.
func (w *Writer) isGraphDuplicate(ctx context.Context, userID string, c Candidate) (bool, error) {
	for _, t := range []graph.NodeType{graph.NodeEntity, graph.NodeMessage} {
		existing, err := w.store.FindNodeByContent(ctx, t, c.Content, graph.NodeQuery{UserID: userID})
		if err != nil {
			return false, fmt.Errorf("failed to check graph duplicate: %w", err)
		}
		if existing != nil {
			return true, nil
		}
	}

	if len(c.SemanticKeys) == 0 {
		return false, nil
	}
	entities, err := w.store.ListNodes(ctx, graph.NodeQuery{
		UserID: userID,
		Types:  []graph.NodeType{graph.NodeEntity},
		Terms:  c.SemanticKeys,
	})
	if err != nil {
		return false, fmt.Errorf("failed to query semantic matches: %w", err)
	}
	for _, entity := range entities {
		messages, err := w.store.Neighbors(ctx, entity.ID, graph.RelFromMessage, graph.DirOut)
		if err != nil {
			return false, fmt.Errorf("failed to load entity messages: %w", err)
		}
		for _, m := range messages {
			if m.Type == graph.NodeMessage && graph.NormalizeContent(m.Content) == c.Content {
				return true, nil
			}
		}
	}
	// Semantic matches with all-different contents are a state change;
	// no matches at all is brand-new state. Both write.
	return false, nil
}

// WriteKey is the dedupe key for a memory candidate.
func WriteKey(userID, candidateType, normalizedContent string) string {
	sum := sha256.Sum256([]byte(userID + "|" + candidateType + "|" + normalizedContent))
	return hex.EncodeToString(sum[:])
}

// SemanticKeys tokenizes normalized content into CJK runs and
// latin/digit tokens of length >= 2.
func SemanticKeys(content string) []string {
	var keys []string
	var cjk, latin []rune
	flushCJK := func() {
		if len(cjk) >= 2 {
			keys = append(keys, string(cjk))
		}
		cjk = cjk[:0]
	}
	flushLatin := func() {
		if len(latin) >= 2 {
			keys = append(keys, string(latin))
		}
		latin = latin[:0]
	}
	for _, r := range content {
		switch {
		case unicode.Is(unicode.Han, r):
			flushLatin()
			cjk = append(cjk, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushCJK()
			latin = append(latin, unicode.ToLower(r))
		default:
			flushCJK()
			flushLatin()
		}
	}
	flushCJK()
	flushLatin()

	seen := make(map[string]bool, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// writeCache is a bounded LRU of recent write keys.
type writeCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	index    map[string]*list.Element
}

func newWriteCache(capacity int) *writeCache {
	return &writeCache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *writeCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.index[key]
	if ok {
		c.order.MoveToFront(elem)
	}
	return ok
}

func (c *writeCache) Add(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.index[key]; ok {
		c.order.MoveToFront(elem)
		return
	}
	c.index[key] = c.order.PushFront(key)
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(string))
	}
}

func (c *writeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
