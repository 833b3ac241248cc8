package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

func newTestService(t *testing.T, cfg config.MemoryConfig, store graph.Store, extractor Extractor) (*Service, *bus.Bus) {
	t.Helper()
	eventBus := bus.New()
	svc := NewService(cfg, Deps{
		Store:     store,
		Extractor: extractor,
		Bus:       eventBus,
		Logger:    testLogger(),
	})
	svc.Start()
	t.Cleanup(svc.Close)
	return svc, eventBus
}

func TestHasExplicitMemoryMarker(t *testing.T) {
	assert.True(t, HasExplicitMemoryMarker("What is my name?"))
	assert.True(t, HasExplicitMemoryMarker("hey, do you remember me at all"))
	assert.True(t, HasExplicitMemoryMarker("我是谁"))
	assert.True(t, HasExplicitMemoryMarker("你还记得上次的事吗"))
	assert.False(t, HasExplicitMemoryMarker("what is the weather"))
	assert.False(t, HasExplicitMemoryMarker(""))
}

func TestGetContext_RecallGate(t *testing.T) {
	cfg := testMemoryConfig()
	store := graph.NewMemStore()
	seedRecallGraph(t, store)
	svc, _ := newTestService(t, cfg, store, &fakeExtractor{entities: []string{"terraform"}})
	ctx := context.Background()

	t.Run("short query blocked", func(t *testing.T) {
		assert.Empty(t, svc.GetContext(ctx, "hi", "current", "alice"))
	})

	t.Run("normal query recalls", func(t *testing.T) {
		out := svc.GetContext(ctx, "how do I deploy with terraform", "current", "alice")
		assert.Contains(t, out, "[Direct memories]")
	})

	t.Run("short query with memory marker bypasses the gate", func(t *testing.T) {
		out := svc.GetContext(ctx, "我是谁", "current", "alice")
		assert.NotEmpty(t, out)
	})

	t.Run("over-long query blocked even with memory marker", func(t *testing.T) {
		long := "do you remember me? " + strings.Repeat("a", cfg.Gating.RecallFilter.MaxQueryChars)
		assert.Empty(t, svc.GetContext(ctx, long, "current", "alice"))
	})
}

func TestGetContext_EmitsRecalledEvent(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)
	svc, eventBus := newTestService(t, testMemoryConfig(), store, &fakeExtractor{entities: []string{"terraform"}})

	events := make(chan bus.Event, 1)
	eventBus.On(bus.EventMemoryRecalled, func(ev bus.Event) { events <- ev })

	svc.GetContext(context.Background(), "how do I deploy with terraform", "current", "alice")
	ev := <-events
	assert.Equal(t, "alice", ev.Payload["user_id"])
}

func TestInteractionCompletedDrivesWrites(t *testing.T) {
	store := graph.NewMemStore()
	_, eventBus := newTestService(t, testMemoryConfig(), store, &fakeExtractor{})
	ctx := context.Background()

	// Emit blocks until handlers return, so the write is visible after.
	eventBus.Emit(bus.EventInteractionCompleted, map[string]any{
		"session_id":       "s1",
		"user_id":          "alice",
		"channel":          "web",
		"user_input":       "I prefer dark mode in my editor",
		"assistant_output": "Noted, dark mode it is.",
	})

	node, err := store.FindNodeByContent(ctx, graph.NodeMessage,
		"i prefer dark mode in my editor", graph.NodeQuery{UserID: "alice"})
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "preference", node.Properties["memory_type"])
}

func TestAddMessage_SyncsWithoutGating(t *testing.T) {
	store := graph.NewMemStore()
	svc, _ := newTestService(t, testMemoryConfig(), store, &fakeExtractor{})
	ctx := context.Background()

	// Far below the write gate, but the sync path stores unconditionally.
	require.NoError(t, svc.AddMessage(ctx, "s1", "user", "ok", "alice"))

	count, err := store.CountNodes(ctx, graph.NodeQuery{
		UserID: "alice",
		Types:  []graph.NodeType{graph.NodeMessage},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOnMessageSaved_CleanupTrigger(t *testing.T) {
	cfg := testMemoryConfig()
	cfg.WarmLayer.Enabled = false
	cfg.Maintenance.CleanupEveryMessages = 1
	store := graph.NewMemStore()
	ctx := context.Background()

	_, err := store.MergeNode(ctx, &graph.Node{
		ID: "faded", Type: graph.NodeEntity, Content: "faded", Layer: graph.LayerHot,
		Importance: 0.05, SessionID: "alice::s1", UserID: "alice",
	})
	require.NoError(t, err)

	svc, _ := newTestService(t, cfg, store, &fakeExtractor{})
	svc.OnMessageSaved("s1", "user", "alice")
	svc.wg.Wait()

	_, err = store.GetNode(ctx, "faded")
	assert.ErrorIs(t, err, graph.ErrNotFound)
}

func TestExportGraph_OwnershipEnforced(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)
	svc, _ := newTestService(t, testMemoryConfig(), store, &fakeExtractor{})
	ctx := context.Background()

	export, err := svc.ExportGraph(ctx, "old", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, export.Nodes)
	assert.NotNil(t, export.Stats)

	// Another user resolves to their own scoped namespace and sees
	// nothing of alice's session.
	stolen, err := svc.ExportGraph(ctx, "old", "mallory")
	require.NoError(t, err)
	assert.Empty(t, stolen.Nodes)
	assert.Empty(t, stolen.Edges)
}

func TestServiceStats(t *testing.T) {
	store := graph.NewMemStore()
	seedRecallGraph(t, store)
	svc, _ := newTestService(t, testMemoryConfig(), store, &fakeExtractor{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Greater(t, stats.TotalNodes, 0)
	assert.Greater(t, stats.TotalEdges, 0)
}
