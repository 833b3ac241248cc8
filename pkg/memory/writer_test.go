package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

// fakeExtractor returns a canned extraction for every message.
type fakeExtractor struct {
	entities []string
	tuples   []FactTuple
	err      error
}

func (f *fakeExtractor) Extract(_ context.Context, _, _ string) (*ExtractionResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ExtractionResult{
		Tuples:         f.tuples,
		Entities:       f.entities,
		Intent:         "statement",
		EmotionPrimary: "neutral",
	}, nil
}

// fakeCompleter replays a scripted response and records every request.
type fakeCompleter struct {
	response string
	err      error
	requests []CompleteRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req CompleteRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeEmbedder maps each text to a fixed vector.
type fakeEmbedder struct {
	vectors map[string][]float64
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	f.calls++
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = f.vectors[t]
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMemoryConfig() config.MemoryConfig {
	return config.MemoryConfig{
		Enabled: true,
		WarmLayer: config.WarmLayerConfig{
			Enabled:             true,
			ClusteringThreshold: 0.7,
			MinClusterSize:      3,
			MaxConcepts:         5,
		},
		ColdLayer: config.ColdLayerConfig{
			MaxSummaryLength:     500,
			CompressionThreshold: 50,
		},
		Gating: config.MemoryGatingConfig{
			RecallFilter: config.RecallFilterConfig{
				Enabled:       true,
				MinQueryChars: 6,
				MaxQueryChars: 4000,
			},
			WriteFilter: config.WriteFilterConfig{
				Enabled:                       true,
				MinUserChars:                  4,
				MinAssistantCharsForShortUser: 20,
				MaxCombinedChars:              8000,
			},
			Dedupe: config.DedupeConfig{
				RecentWriteCacheSize: 2000,
				MinCandidateChars:    8,
			},
		},
		Maintenance: config.MemoryMaintenanceConfig{
			DecayIntervalS:       86400,
			MinImportance:        0.15,
			CleanupBatchSize:     100,
			CleanupEveryMessages: 100,
		},
	}
}

func newTestWriter(classifier Completer, store graph.Store) *Writer {
	hot := NewHotLayer(store, &fakeExtractor{}, testLogger())
	return NewWriter(testMemoryConfig(), classifier, hot, store, bus.New(), testLogger())
}

func TestPassesWriteGate(t *testing.T) {
	w := newTestWriter(nil, graph.NewMemStore())

	tests := []struct {
		name      string
		user      string
		assistant string
		want      bool
	}{
		{"both empty dropped", "", "   ", false},
		{"short user short assistant dropped", "hey", "ok, noted please.", false},
		{"short user long assistant passes", "ok?", "here is a detailed explanation", true},
		{"user at minimum passes", "四字回答", "", true},
		{"combined over budget dropped", "hi there", strings.Repeat("x", 8000), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.passesCodeGate(tt.user, tt.assistant))
		})
	}

	t.Run("disabled gate passes everything", func(t *testing.T) {
		open := newTestWriter(nil, graph.NewMemStore())
		open.cfg.Gating.WriteFilter.Enabled = false
		assert.True(t, open.passesCodeGate("", ""))
	})
}

func TestHeuristicCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want CandidateType
	}{
		{"preference marker", "I prefer dark mode in my editor", CandidatePreference},
		{"constraint marker", "the report must never leave the VPN", CandidateConstraint},
		{"goal marker", "I want to learn Go this quarter", CandidateGoal},
		{"identity marker", "my name is Riley and I work in ops", CandidateIdentity},
		{"project marker", "the crm migration project moved to phase two", CandidateProjectState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heuristicCandidates(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Type)
			assert.Equal(t, tt.text, got[0].Content)
		})
	}

	t.Run("no marker yields nothing", func(t *testing.T) {
		assert.Empty(t, heuristicCandidates("what time is it"))
	})
}

func TestSemanticKeys(t *testing.T) {
	assert.Equal(t, []string{"prefer", "dark", "mode"}, SemanticKeys("i prefer dark mode"))
	assert.Equal(t, []string{"我喜欢", "golang"}, SemanticKeys("我喜欢golang"))
	assert.Equal(t, []string{"go"}, SemanticKeys("go go go"))
	assert.Equal(t, []string{"python3"}, SemanticKeys("python3!"))
	assert.Empty(t, SemanticKeys("a b c"))
}

func TestWriteKey(t *testing.T) {
	key := WriteKey("alice", "preference", "i prefer dark mode")
	assert.Len(t, key, 64)
	assert.Equal(t, key, WriteKey("alice", "preference", "i prefer dark mode"))
	assert.NotEqual(t, key, WriteKey("bob", "preference", "i prefer dark mode"))
	assert.NotEqual(t, key, WriteKey("alice", "goal", "i prefer dark mode"))
}

func TestWriteCacheEviction(t *testing.T) {
	cache := newWriteCache(3)
	for i := 0; i < 3; i++ {
		cache.Add(fmt.Sprintf("k%d", i))
	}
	// Touch k0 so k1 becomes the eviction victim.
	require.True(t, cache.Contains("k0"))
	cache.Add("k3")

	assert.Equal(t, 3, cache.Len())
	assert.True(t, cache.Contains("k0"))
	assert.False(t, cache.Contains("k1"))
	assert.True(t, cache.Contains("k3"))
}

func TestHandleInteraction_WritesOnceAcrossCaches(t *testing.T) {
	store := graph.NewMemStore()
	w := newTestWriter(nil, store)
	ctx := context.Background()

	written, err := w.HandleInteraction(ctx, "s1", "alice",
		"I prefer dark mode in my editor", "Noted, I will keep answers dark-themed.")
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	// Same turn again hits the recent-write cache.
	written, err = w.HandleInteraction(ctx, "s1", "alice",
		"I prefer dark mode in my editor", "Noted, I will keep answers dark-themed.")
	require.NoError(t, err)
	assert.Equal(t, 0, written)

	// A fresh writer with a cold cache still dedupes against the graph.
	fresh := newTestWriter(nil, store)
	written, err = fresh.HandleInteraction(ctx, "s1", "alice",
		"I prefer dark mode in my editor", "Noted, I will keep answers dark-themed.")
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}

func TestHandleInteraction_SemanticStateChangeWrites(t *testing.T) {
	store := graph.NewMemStore()
	ctx := context.Background()

	// Seed an earlier preference: an entity linked to the message that
	// introduced it.
	w := newTestWriter(nil, store)
	written, err := w.HandleInteraction(ctx, "s1", "alice",
		"I prefer dark mode in my editor", "Got it.")
	require.NoError(t, err)
	require.Equal(t, 1, written)

	entityID, err := store.MergeNode(ctx, &graph.Node{
		ID:      graph.NewNodeID(graph.NodeEntity),
		Type:    graph.NodeEntity,
		Content: "dark mode",
		UserID:  "alice",
	})
	require.NoError(t, err)
	old, err := store.FindNodeByContent(ctx, graph.NodeMessage,
		"i prefer dark mode in my editor", graph.NodeQuery{UserID: "alice"})
	require.NoError(t, err)
	require.NotNil(t, old)
	require.NoError(t, store.MergeEdge(ctx, &graph.Edge{
		Relation: graph.RelFromMessage, SourceID: entityID, TargetID: old.ID, Weight: 1.0,
	}))

	// Shared semantic key ("mode") but different content: a state change,
	// so it writes instead of deduping.
	written, err = w.HandleInteraction(ctx, "s1", "alice",
		"actually I prefer light mode in my editor now", "Updated.")
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

func TestHandleInteraction_ClassifierDecides(t *testing.T) {
	ctx := context.Background()

	t.Run("no long-term state writes nothing", func(t *testing.T) {
		classifier := &fakeCompleter{response: `{"has_long_term_state": false, "candidates": []}`}
		w := newTestWriter(classifier, graph.NewMemStore())
		written, err := w.HandleInteraction(ctx, "s1", "alice", "what is the weather", "Sunny today.")
		require.NoError(t, err)
		assert.Equal(t, 0, written)
		require.Len(t, classifier.requests, 1)
		assert.Zero(t, classifier.requests[0].Temperature)
	})

	t.Run("unknown candidate types are filtered", func(t *testing.T) {
		classifier := &fakeCompleter{response: "```json\n" + `{"has_long_term_state": true, "candidates": [
			{"type": "preference", "content": "Prefers dark mode everywhere", "semantic_keys": ["theme"]},
			{"type": "gossip", "content": "something about a coworker and more"}
		]}` + "\n```"}
		store := graph.NewMemStore()
		w := newTestWriter(classifier, store)
		written, err := w.HandleInteraction(ctx, "s1", "alice", "I like dark themes", "Noted.")
		require.NoError(t, err)
		assert.Equal(t, 1, written)
	})

	t.Run("classifier failure falls back to heuristics", func(t *testing.T) {
		classifier := &fakeCompleter{err: fmt.Errorf("model unavailable")}
		w := newTestWriter(classifier, graph.NewMemStore())
		written, err := w.HandleInteraction(ctx, "s1", "alice",
			"I prefer dark mode in my editor", "Noted.")
		require.NoError(t, err)
		assert.Equal(t, 1, written)
	})
}

func TestHandleInteraction_ShortCandidateDropped(t *testing.T) {
	classifier := &fakeCompleter{response: `{"has_long_term_state": true, "candidates": [
		{"type": "goal", "content": "ship it"}
	]}`}
	w := newTestWriter(classifier, graph.NewMemStore())
	written, err := w.HandleInteraction(context.Background(), "s1", "alice",
		"we should ship it", "Agreed, lets ship it this week.")
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}

func TestHandleInteraction_EmitsMemorySaved(t *testing.T) {
	store := graph.NewMemStore()
	hot := NewHotLayer(store, &fakeExtractor{}, testLogger())
	eventBus := bus.New()
	w := NewWriter(testMemoryConfig(), nil, hot, store, eventBus, testLogger())

	events := make(chan bus.Event, 1)
	eventBus.On(bus.EventMemorySaved, func(ev bus.Event) { events <- ev })

	written, err := w.HandleInteraction(context.Background(), "s1", "alice",
		"I prefer dark mode in my editor", "Noted.")
	require.NoError(t, err)
	require.Equal(t, 1, written)

	ev := <-events
	assert.Equal(t, "alice", ev.Payload["user_id"])
	assert.Equal(t, "preference", ev.Payload["memory_type"])
}
