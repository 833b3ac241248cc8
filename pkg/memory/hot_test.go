package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/graph"
)

func TestAddMessage_StoresFactGraph(t *testing.T) {
	store := graph.NewMemStore()
	ctx := context.Background()
	extractor := &fakeExtractor{
		tuples: []FactTuple{{
			Subject: "Alice", Predicate: "works at", Object: "Acme",
			Time: "today", Location: "Berlin", Confidence: 0.9,
		}},
		entities: []string{"Acme"},
	}
	hot := NewHotLayer(store, extractor, testLogger())

	stats, err := hot.AddMessage(ctx, "s1", "user", "I work at Acme in Berlin", "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FactCount)
	assert.Equal(t, 1, stats.EntityCount)

	msg, err := store.GetNode(ctx, stats.MessageID)
	require.NoError(t, err)
	assert.Equal(t, graph.NodeMessage, msg.Type)
	assert.Equal(t, 0.7, msg.Importance)
	assert.Equal(t, "alice::s1", msg.SessionID)
	assert.Equal(t, "user", msg.Properties["role"])

	sessions, err := store.Neighbors(ctx, stats.MessageID, graph.RelPartOfSession, graph.DirOut)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	subject, err := store.FindNodeByContent(ctx, graph.NodeEntity, "alice", graph.NodeQuery{UserID: "alice"})
	require.NoError(t, err)
	require.NotNil(t, subject)
	actions, err := store.Neighbors(ctx, subject.ID, graph.RelSubjectOf, graph.DirOut)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, graph.NodeAction, actions[0].Type)
	assert.Equal(t, "works at", actions[0].Content)

	objects, err := store.Neighbors(ctx, actions[0].ID, graph.RelObjectOf, graph.DirOut)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "acme", objects[0].Content)

	times, err := store.Neighbors(ctx, actions[0].ID, graph.RelAtTime, graph.DirOut)
	require.NoError(t, err)
	assert.Len(t, times, 1)
	locations, err := store.Neighbors(ctx, actions[0].ID, graph.RelAtLocation, graph.DirOut)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestAddMessage_AssistantImportance(t *testing.T) {
	store := graph.NewMemStore()
	hot := NewHotLayer(store, &fakeExtractor{}, testLogger())

	stats, err := hot.AddMessage(context.Background(), "s1", "assistant", "Here is the plan.", "alice", nil)
	require.NoError(t, err)

	msg, err := store.GetNode(context.Background(), stats.MessageID)
	require.NoError(t, err)
	assert.Equal(t, 0.6, msg.Importance)
}

func TestAddMessage_ReusesEntitiesAcrossMessages(t *testing.T) {
	store := graph.NewMemStore()
	ctx := context.Background()
	hot := NewHotLayer(store, &fakeExtractor{entities: []string{"Acme"}}, testLogger())

	_, err := hot.AddMessage(ctx, "s1", "user", "Acme shipped on Friday", "alice", nil)
	require.NoError(t, err)
	_, err = hot.AddMessage(ctx, "s2", "user", "Acme is hiring again", "alice", nil)
	require.NoError(t, err)

	count, err := store.CountNodes(ctx, graph.NodeQuery{
		UserID: "alice",
		Types:  []graph.NodeType{graph.NodeEntity},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The shared entity links back to both messages.
	entity, err := store.FindNodeByContent(ctx, graph.NodeEntity, "acme", graph.NodeQuery{UserID: "alice"})
	require.NoError(t, err)
	messages, err := store.Neighbors(ctx, entity.ID, graph.RelFromMessage, graph.DirOut)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestAddMessage_ExtractionFailureStoresBareMessage(t *testing.T) {
	store := graph.NewMemStore()
	hot := NewHotLayer(store, &fakeExtractor{err: assert.AnError}, testLogger())

	stats, err := hot.AddMessage(context.Background(), "s1", "user", "hello out there", "alice", nil)
	require.NoError(t, err)
	assert.Zero(t, stats.FactCount)

	msg, err := store.GetNode(context.Background(), stats.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "hello out there", msg.Content)
	assert.Equal(t, "unknown", msg.Properties["intent"])
}

func TestAddMessage_MetadataMergedIntoProperties(t *testing.T) {
	store := graph.NewMemStore()
	hot := NewHotLayer(store, &fakeExtractor{}, testLogger())

	stats, err := hot.AddMessage(context.Background(), "s1", "user", "I prefer tabs over spaces", "alice",
		map[string]any{"memory_type": "preference", "memory_source": "interaction.completed"})
	require.NoError(t, err)

	msg, err := store.GetNode(context.Background(), stats.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "preference", msg.Properties["memory_type"])
	assert.Equal(t, "interaction.completed", msg.Properties["memory_source"])
	assert.Equal(t, "user", msg.Properties["role"])
}
