package sessions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := NewStore(path)

	sess := newSession()
	sess.Messages = append(sess.Messages, Message{Role: "user", Content: "hi"})
	sess.CompletedTurnIDs = []string{"t1"}
	require.NoError(t, store.SaveAll(map[string]*Session{"u1::s1": sess}))

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Contains(t, loaded, "u1::s1")
	assert.Equal(t, sess.Messages, loaded["u1::s1"].Messages)
	assert.Equal(t, []string{"t1"}, loaded["u1::s1"].CompletedTurnIDs)
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	loaded, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := NewStore(path).LoadAll()
	assert.Error(t, err)
}

func TestStore_LegacyMonotonicTimestampsRewritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	// Timestamps from a monotonic clock are far below epoch 10^9.
	raw := `{"s1": {"created_at": 12345.6, "last_activity": 777.0, "messages": []}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := NewStore(path).LoadAll()
	require.NoError(t, err)
	sess := loaded["s1"]
	require.NotNil(t, sess)
	assert.GreaterOrEqual(t, sess.CreatedAt, float64(legacyEpochThreshold))
	assert.GreaterOrEqual(t, sess.LastActivity, float64(legacyEpochThreshold))
	// Nil collections repaired on load.
	assert.NotNil(t, sess.PendingTurns)
	assert.Equal(t, defaultTitle, sess.Title)
}

func TestStore_AtomicReplaceLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "sessions.json"))

	require.NoError(t, store.SaveAll(map[string]*Session{"k": newSession()}))
	require.NoError(t, store.SaveAll(map[string]*Session{"k": newSession()}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sessions.json", entries[0].Name())
}
