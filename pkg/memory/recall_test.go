package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/graph"
)

func TestCalculateRecallParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		entities []string
		want     recallParams
	}{
		{"short query no entities", "hi there", nil,
			recallParams{MaxTokens: 800, ItemsPerLayer: 2, RecentDays: 3}},
		{"boundary 20 chars stays simple", strings.Repeat("a", 20), nil,
			recallParams{MaxTokens: 800, ItemsPerLayer: 2, RecentDays: 3}},
		{"21 chars is normal", strings.Repeat("a", 21), nil,
			recallParams{MaxTokens: 1500, ItemsPerLayer: 3, RecentDays: 7}},
		{"one entity is normal", "go", []string{"go"},
			recallParams{MaxTokens: 1500, ItemsPerLayer: 3, RecentDays: 7}},
		{"three entities is complex", "x", []string{"a", "b", "c"},
			recallParams{MaxTokens: 2500, ItemsPerLayer: 5, RecentDays: 14}},
		{"81 chars is complex", strings.Repeat("a", 81), nil,
			recallParams{MaxTokens: 2500, ItemsPerLayer: 5, RecentDays: 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateRecallParams(tt.query, tt.entities))
		})
	}

	t.Run("reminiscence markers widen the window", func(t *testing.T) {
		got := calculateRecallParams("do you remember xyz", nil)
		assert.Equal(t, 3, got.ItemsPerLayer)
		assert.Equal(t, 6, got.RecentDays)
	})

	t.Run("cjk reminiscence marker", func(t *testing.T) {
		got := calculateRecallParams("我们之前聊过什么", nil)
		assert.Equal(t, 3, got.ItemsPerLayer)
		assert.Equal(t, 6, got.RecentDays)
	})
}

func seedRecallGraph(t *testing.T, store graph.Store) {
	t.Helper()
	ctx := context.Background()

	// An older session holds an entity and its source message.
	_, err := graph.EnsureSession(ctx, store, "old", "alice")
	require.NoError(t, err)
	oldScoped := graph.ScopedSessionID("alice", "old")

	msgID, err := store.MergeNode(ctx, &graph.Node{
		ID:         graph.NewNodeID(graph.NodeMessage),
		Type:       graph.NodeMessage,
		Content:    "I deploy the billing service with terraform",
		Importance: 0.7,
		SessionID:  oldScoped,
		UserID:     "alice",
		CreatedAt:  time.Now().Add(-48 * time.Hour),
	})
	require.NoError(t, err)
	entityID, err := store.MergeNode(ctx, &graph.Node{
		ID:         graph.NewNodeID(graph.NodeEntity),
		Type:       graph.NodeEntity,
		Content:    "terraform",
		Importance: 0.6,
		SessionID:  oldScoped,
		UserID:     "alice",
	})
	require.NoError(t, err)
	require.NoError(t, store.MergeEdge(ctx, &graph.Edge{
		Relation: graph.RelFromMessage, SourceID: entityID, TargetID: msgID, Weight: 0.8,
	}))

	// The current session holds a recent message.
	_, err = graph.EnsureSession(ctx, store, "current", "alice")
	require.NoError(t, err)
	_, err = store.MergeNode(ctx, &graph.Node{
		ID:         graph.NewNodeID(graph.NodeMessage),
		Type:       graph.NodeMessage,
		Content:    "let's continue the terraform work",
		Importance: 0.7,
		SessionID:  graph.ScopedSessionID("alice", "current"),
		UserID:     "alice",
		CreatedAt:  time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
}

func TestRecall_LayersAndScoping(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)

	engine := NewRecallEngine(store, &fakeExtractor{entities: []string{"terraform"}}, testLogger())
	out := engine.Recall(context.Background(), "how do I deploy with terraform", "current", "alice")

	require.NotEmpty(t, out)
	assert.Contains(t, out, "[Direct memories]")
	assert.Contains(t, out, "I deploy the billing service with terraform")
	assert.Contains(t, out, "[Recent dialog]")
	assert.Contains(t, out, "let's continue the terraform work")
	// Layers with no hits render no header.
	assert.NotContains(t, out, "[Long-term summaries]")
	assert.NotContains(t, out, "[Topic concepts]")
}

func TestRecall_DirectExcludesCurrentSession(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)

	// Recalling from within the old session must not replay its own
	// messages as cross-session memories.
	engine := NewRecallEngine(store, &fakeExtractor{entities: []string{"terraform"}}, testLogger())
	out := engine.Recall(context.Background(), "tell me about terraform yes", "old", "alice")
	assert.NotContains(t, out, "[Direct memories]")
}

func TestRecall_BumpsEntityAccess(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)
	ctx := context.Background()

	before, err := store.FindNodeByContent(ctx, graph.NodeEntity, "terraform", graph.NodeQuery{UserID: "alice"})
	require.NoError(t, err)
	require.NotNil(t, before)

	engine := NewRecallEngine(store, &fakeExtractor{entities: []string{"terraform"}}, testLogger())
	engine.Recall(ctx, "how do I deploy with terraform", "current", "alice")

	after, err := store.GetNode(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, before.AccessCount+1, after.AccessCount)
}

func TestRecall_ExtractionFailureStillRecallsRecent(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)

	engine := NewRecallEngine(store, &fakeExtractor{err: assert.AnError}, testLogger())
	out := engine.Recall(context.Background(), "what were we doing here again", "current", "alice")
	assert.Contains(t, out, "[Recent dialog]")
	assert.NotContains(t, out, "[Direct memories]")
}

func TestFormatRecall_OrderTruncationAndBudget(t *testing.T) {
	now := time.Now()
	long := strings.Repeat("x", 150)
	layers := []struct {
		header string
		items  []recallItem
	}{
		{"[Direct memories]", []recallItem{
			{Content: "low importance new", Importance: 0.3, Time: now},
			{Content: "high importance old", Importance: 0.9, Time: now.Add(-time.Hour)},
			{Content: long, Importance: 0.9, Time: now},
		}},
	}

	out := formatRecall(layers, recallParams{MaxTokens: 1500, ItemsPerLayer: 3, RecentDays: 7})
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "[Direct memories]", lines[0])

	// Importance wins over recency; ties break to newer.
	assert.Contains(t, lines[1], long[:100])
	assert.NotContains(t, lines[1], long[:101])
	assert.Contains(t, lines[2], "high importance old")
	assert.Contains(t, lines[3], "low importance new")

	t.Run("ellipsis only on truncated items", func(t *testing.T) {
		exact := strings.Repeat("y", 100)
		out := formatRecall([]struct {
			header string
			items  []recallItem
		}{
			{"[Direct memories]", []recallItem{
				{Content: exact + "z", Importance: 0.9, Time: now},
				{Content: exact, Importance: 0.5, Time: now},
			}},
		}, recallParams{MaxTokens: 1500, ItemsPerLayer: 3})
		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.True(t, strings.HasSuffix(lines[1], "..."))
		assert.True(t, strings.HasSuffix(lines[2], exact))
	})

	t.Run("via annotation", func(t *testing.T) {
		out := formatRecall([]struct {
			header string
			items  []recallItem
		}{
			{"[Related knowledge]", []recallItem{
				{Content: "bought a standing desk", Importance: 0.5, Time: now, Via: "desk"},
			}},
		}, recallParams{MaxTokens: 800, ItemsPerLayer: 2})
		assert.Contains(t, out, "(via: desk)")
	})

	t.Run("token budget stops output", func(t *testing.T) {
		// First item estimates at 150*2/3 = 100 tokens; the second would
		// push past the budget.
		out := formatRecall(layers, recallParams{MaxTokens: 105, ItemsPerLayer: 3})
		assert.Equal(t, 1, strings.Count(out, "- ["))
	})
}
