package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/graph"
)

func TestDecayFactor(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		age  time.Duration
		want float64
	}{
		{12 * time.Hour, 1.0},
		{day, 1.0},
		{day + time.Second, 0.9},
		{7 * day, 0.9},
		{8 * day, 0.7},
		{30 * day, 0.7},
		{31 * day, 0.5},
		{90 * day, 0.5},
		{91 * day, 0.3},
		{365 * day, 0.3},
		{400 * day, 0.2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecayFactor(tt.age), "age %s", tt.age)
	}
}

func TestAccessBoost(t *testing.T) {
	assert.Equal(t, 0.0, accessBoost(0))
	assert.Equal(t, 0.0, accessBoost(9))
	assert.Equal(t, 0.05, accessBoost(10))
	assert.Equal(t, 0.1, accessBoost(25))
	assert.Equal(t, 0.2, accessBoost(40))
	assert.Equal(t, 0.2, accessBoost(1000))
}

func TestApplyDecay(t *testing.T) {
	store := graph.NewMemStore()
	ctx := context.Background()
	now := time.Now()
	scoped := "alice::s1"

	seed := func(id string, typ graph.NodeType, layer int, importance float64, age time.Duration, accesses int) {
		_, err := store.MergeNode(ctx, &graph.Node{
			ID:          id,
			Type:        typ,
			Content:     id,
			Layer:       layer,
			Importance:  importance,
			AccessCount: accesses,
			SessionID:   scoped,
			UserID:      "alice",
			CreatedAt:   now.Add(-age),
		})
		require.NoError(t, err)
	}
	seed("e1", graph.NodeEntity, graph.LayerHot, 0.8, 10*24*time.Hour, 0)
	seed("c1", graph.NodeConcept, graph.LayerWarm, 0.7, 2*24*time.Hour, 20)
	seed("s1", graph.NodeSummary, graph.LayerCold, 0.9, 400*24*time.Hour, 0)
	seed("fresh", graph.NodeMessage, graph.LayerHot, 0.98, time.Hour, 50)

	f := NewForgetting(store, testMemoryConfig().Maintenance, testLogger())
	f.now = func() time.Time { return now }

	updated, err := f.ApplyDecay(ctx, scoped)
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	get := func(id string) float64 {
		n, err := store.GetNode(ctx, id)
		require.NoError(t, err)
		return n.Importance
	}
	assert.InDelta(t, 0.8*0.7, get("e1"), 1e-9)
	assert.InDelta(t, 0.7*0.9+0.1, get("c1"), 1e-9)
	// Cold-layer nodes are out of decay scope.
	assert.InDelta(t, 0.9, get("s1"), 1e-9)
	// Reinforcement never pushes importance past 1.0.
	assert.InDelta(t, 1.0, get("fresh"), 1e-9)
}

func TestCleanup_KeepsMessages(t *testing.T) {
	store := graph.NewMemStore()
	ctx := context.Background()
	scoped := "alice::s1"

	seed := func(id string, typ graph.NodeType, importance float64) {
		_, err := store.MergeNode(ctx, &graph.Node{
			ID: id, Type: typ, Content: id, Layer: graph.LayerHot,
			Importance: importance, SessionID: scoped, UserID: "alice",
		})
		require.NoError(t, err)
	}
	seed("faded-entity", graph.NodeEntity, 0.05)
	seed("faded-action", graph.NodeAction, 0.1)
	seed("kept-entity", graph.NodeEntity, 0.5)
	seed("faded-message", graph.NodeMessage, 0.05)

	f := NewForgetting(store, testMemoryConfig().Maintenance, testLogger())
	deleted, err := f.Cleanup(ctx, scoped)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = store.GetNode(ctx, "faded-entity")
	assert.ErrorIs(t, err, graph.ErrNotFound)
	_, err = store.GetNode(ctx, "kept-entity")
	assert.NoError(t, err)
	_, err = store.GetNode(ctx, "faded-message")
	assert.NoError(t, err)
}
