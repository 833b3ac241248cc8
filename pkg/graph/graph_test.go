package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNode_ExistingBumpsAccessCount(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	id := NewNodeID(NodeEntity)
	_, err := store.MergeNode(ctx, &Node{ID: id, Type: NodeEntity, Content: "Osaka", Importance: 0.6})
	require.NoError(t, err)

	// Merging the same id again must not duplicate, only bump access.
	_, err = store.MergeNode(ctx, &Node{ID: id, Type: NodeEntity, Content: "something else"})
	require.NoError(t, err)

	n, err := store.GetNode(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Osaka", n.Content)
	assert.Equal(t, 1, n.AccessCount)

	count, err := store.CountNodes(ctx, NodeQuery{Types: []NodeType{NodeEntity}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFindNodeByContent_NormalizesBothSides(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	id := NewNodeID(NodeEntity)
	_, err := store.MergeNode(ctx, &Node{ID: id, Type: NodeEntity, Content: "weather"})
	require.NoError(t, err)

	for _, variant := range []string{"weather", "  Weather ", "WEATHER"} {
		found, err := store.FindNodeByContent(ctx, NodeEntity, variant, NodeQuery{})
		require.NoError(t, err)
		require.NotNil(t, found, "variant %q should resolve", variant)
		assert.Equal(t, id, found.ID)
	}

	found, err := store.FindNodeByContent(ctx, NodeAction, "weather", NodeQuery{})
	require.NoError(t, err)
	assert.Nil(t, found, "type mismatch should not match")
}

func TestMergeEdge_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	a := NewNodeID(NodeEntity)
	b := NewNodeID(NodeMessage)
	_, err := store.MergeNode(ctx, &Node{ID: a, Type: NodeEntity, Content: "cat"})
	require.NoError(t, err)
	_, err = store.MergeNode(ctx, &Node{ID: b, Type: NodeMessage, Content: "I saw a cat"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.MergeEdge(ctx, &Edge{Relation: RelFromMessage, SourceID: a, TargetID: b}))
	}

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEdges)

	neighbors, err := store.Neighbors(ctx, a, RelFromMessage, DirOut)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, b, neighbors[0].ID)

	// Reverse direction resolves the entity from the message.
	neighbors, err = store.Neighbors(ctx, b, RelFromMessage, DirIn)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, a, neighbors[0].ID)
}

func TestDeleteNode_DetachesEdges(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	a := NewNodeID(NodeEntity)
	b := NewNodeID(NodeMessage)
	_, err := store.MergeNode(ctx, &Node{ID: a, Type: NodeEntity, Content: "x"})
	require.NoError(t, err)
	_, err = store.MergeNode(ctx, &Node{ID: b, Type: NodeMessage, Content: "y"})
	require.NoError(t, err)
	require.NoError(t, store.MergeEdge(ctx, &Edge{Relation: RelFromMessage, SourceID: a, TargetID: b}))

	require.NoError(t, store.DeleteNode(ctx, a))

	_, err = store.GetNode(ctx, a)
	assert.ErrorIs(t, err, ErrNotFound)
	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEdges)
	assert.Equal(t, 1, stats.TotalNodes)
}

func TestListNodes_FiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	scoped := ScopedSessionID("alice", "s1")

	for _, n := range []*Node{
		{ID: "entity_a", Type: NodeEntity, Content: "coffee preference", Layer: LayerHot, Importance: 0.4, SessionID: scoped, UserID: "alice"},
		{ID: "entity_b", Type: NodeEntity, Content: "tea preference", Layer: LayerHot, Importance: 0.9, SessionID: scoped, UserID: "alice"},
		{ID: "concept_a", Type: NodeConcept, Content: "Topic: drinks", Layer: LayerWarm, Importance: 0.7, SessionID: scoped, UserID: "alice"},
		{ID: "entity_c", Type: NodeEntity, Content: "coffee", Layer: LayerHot, Importance: 0.5, SessionID: ScopedSessionID("bob", "s1"), UserID: "bob"},
	} {
		_, err := store.MergeNode(ctx, n)
		require.NoError(t, err)
	}

	hot := LayerHot
	nodes, err := store.ListNodes(ctx, NodeQuery{
		SessionID: scoped,
		Types:     []NodeType{NodeEntity},
		Layer:     &hot,
		Order:     OrderImportanceDesc,
	})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "entity_b", nodes[0].ID)

	// Term match is case-insensitive substring, OR across terms.
	nodes, err = store.ListNodes(ctx, NodeQuery{UserID: "alice", Terms: []string{"COFFEE", "nothing"}})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "entity_a", nodes[0].ID)

	nodes, err = store.ListNodes(ctx, NodeQuery{SessionID: scoped, Limit: 2, Order: OrderImportanceDesc})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "entity_b", nodes[0].ID)
	assert.Equal(t, "concept_a", nodes[1].ID)
}

func TestDeleteBelow_RespectsTypeAndLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	scoped := ScopedSessionID("alice", "s1")

	for _, n := range []*Node{
		{ID: "entity_low1", Type: NodeEntity, Importance: 0.05, SessionID: scoped},
		{ID: "entity_low2", Type: NodeEntity, Importance: 0.10, SessionID: scoped},
		{ID: "message_low", Type: NodeMessage, Importance: 0.01, SessionID: scoped},
		{ID: "entity_high", Type: NodeEntity, Importance: 0.8, SessionID: scoped},
	} {
		_, err := store.MergeNode(ctx, n)
		require.NoError(t, err)
	}

	// Messages are never swept, even below the threshold.
	removed, err := store.DeleteBelow(ctx, scoped, 0.15, []NodeType{NodeEntity, NodeAction, NodeTime, NodeLocation}, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = store.GetNode(ctx, "message_low")
	assert.NoError(t, err)
	_, err = store.GetNode(ctx, "entity_high")
	assert.NoError(t, err)
}

func TestUpdateImportanceAndEmbedding(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	_, err := store.MergeNode(ctx, &Node{ID: "entity_a", Type: NodeEntity, Importance: 0.5})
	require.NoError(t, err)

	require.NoError(t, store.UpdateImportance(ctx, map[string]float64{"entity_a": 0.35, "missing": 0.1}))
	require.NoError(t, store.SetEmbedding(ctx, "entity_a", []float64{0.6, 0.8}))
	assert.ErrorIs(t, store.SetEmbedding(ctx, "missing", []float64{1}), ErrNotFound)

	n, err := store.GetNode(ctx, "entity_a")
	require.NoError(t, err)
	assert.InDelta(t, 0.35, n.Importance, 1e-9)
	assert.Equal(t, []float64{0.6, 0.8}, n.Embedding)
}

func TestExport_ScopedToSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	scoped := ScopedSessionID("alice", "s1")

	_, err := store.MergeNode(ctx, &Node{ID: "message_a", Type: NodeMessage, SessionID: scoped})
	require.NoError(t, err)
	_, err = store.MergeNode(ctx, &Node{ID: "entity_a", Type: NodeEntity, SessionID: scoped})
	require.NoError(t, err)
	_, err = store.MergeNode(ctx, &Node{ID: "entity_other", Type: NodeEntity, SessionID: "bob::s9"})
	require.NoError(t, err)
	require.NoError(t, store.MergeEdge(ctx, &Edge{Relation: RelFromMessage, SourceID: "entity_a", TargetID: "message_a"}))

	nodes, edges, err := store.Export(ctx, scoped)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
	assert.Len(t, edges, 1)
}
