package bus

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitInvokesHandlers(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var got []Event
	b.On(EventChannelMessage, func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev)
	})

	b.Emit(EventChannelMessage, map[string]any{"content": "hello"})
	b.Emit(EventConversationComplete, map[string]any{}) // different type, not delivered

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, EventChannelMessage, got[0].Type)
	assert.Equal(t, "hello", got[0].Payload["content"])
	assert.Equal(t, uint64(1), got[0].Seq)
}

func TestBus_DuplicateRegistrationIsNoOp(t *testing.T) {
	b := New()

	var calls atomic.Int32
	handler := func(Event) { calls.Add(1) }

	b.On(EventHeartbeat, handler)
	b.On(EventHeartbeat, handler)

	b.Emit(EventHeartbeat, nil)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBus_Once(t *testing.T) {
	b := New()

	var calls atomic.Int32
	b.Once(EventConnected, func(Event) { calls.Add(1) })

	b.Emit(EventConnected, nil)
	b.Emit(EventConnected, nil)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBus_Off(t *testing.T) {
	b := New()

	var calls atomic.Int32
	handler := func(Event) { calls.Add(1) }
	b.On(EventConnected, handler)
	b.Off(EventConnected, handler)

	b.Emit(EventConnected, nil)
	assert.Equal(t, int32(0), calls.Load())
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	b := New()

	var survived atomic.Bool
	b.On(EventToolCallError, func(Event) { panic("boom") })
	b.On(EventToolCallError, func(Event) { survived.Store(true) })

	require.NotPanics(t, func() {
		b.Emit(EventToolCallError, nil)
	})
	assert.True(t, survived.Load())
}

func TestBus_SeqIsMonotonic(t *testing.T) {
	b := New()
	for i := 1; i <= 5; i++ {
		ev := b.Emit(EventHeartbeat, nil)
		assert.Equal(t, uint64(i), ev.Seq)
	}
	assert.Equal(t, uint64(5), b.Seq())
}

func TestBus_History(t *testing.T) {
	b := New()

	b.Emit(EventConnected, map[string]any{"n": 1})
	b.Emit(EventHeartbeat, map[string]any{"n": 2})
	b.Emit(EventConnected, map[string]any{"n": 3})

	t.Run("unfiltered returns all, oldest first", func(t *testing.T) {
		events := b.History("", 100)
		require.Len(t, events, 3)
		assert.Equal(t, EventConnected, events[0].Type)
		assert.Equal(t, EventHeartbeat, events[1].Type)
	})

	t.Run("filtered by type", func(t *testing.T) {
		events := b.History(EventConnected, 100)
		require.Len(t, events, 2)
		assert.Equal(t, 1, events[0].Payload["n"])
		assert.Equal(t, 3, events[1].Payload["n"])
	})

	t.Run("limit keeps most recent", func(t *testing.T) {
		events := b.History("", 2)
		require.Len(t, events, 2)
		assert.Equal(t, uint64(2), events[0].Seq)
		assert.Equal(t, uint64(3), events[1].Seq)
	})

	t.Run("last event of type matches emit payload", func(t *testing.T) {
		emitted := b.Emit(EventMemorySaved, map[string]any{"session_id": "s1"})
		events := b.History(EventMemorySaved, 1)
		require.Len(t, events, 1)
		assert.Equal(t, emitted.Payload, events[0].Payload)
	})
}

func TestBus_HistoryRingEviction(t *testing.T) {
	b := New()
	for i := 0; i < historyCapacity+10; i++ {
		b.Emit(EventHeartbeat, map[string]any{"i": i})
	}

	events := b.History("", historyCapacity*2)
	require.Len(t, events, historyCapacity)
	// Oldest surviving event is seq 11 (first 10 evicted).
	assert.Equal(t, uint64(11), events[0].Seq)
	assert.Equal(t, uint64(historyCapacity+10), events[len(events)-1].Seq)
}
