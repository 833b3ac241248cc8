package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openconvo/gateway/pkg/bus"
)

func TestMetrics_CountsBusEvents(t *testing.T) {
	b := bus.New()
	m := New(b)

	b.Emit(bus.EventRequestReceived, nil)
	b.Emit(bus.EventRequestReceived, nil)
	b.Emit(bus.EventRequestCompleted, nil)
	b.Emit(bus.EventRequestFailed, nil)
	b.Emit(bus.EventConversationComplete, nil)
	b.Emit(bus.EventConversationError, nil)
	b.Emit(bus.EventToolCallStart, nil)
	b.Emit(bus.EventToolCallStart, nil)
	b.Emit(bus.EventToolCallError, nil)
	b.Emit(bus.EventMemorySaved, nil)
	b.Emit(bus.EventMemoryRecalled, nil)

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap["requests_received"])
	assert.Equal(t, int64(1), snap["requests_completed"])
	assert.Equal(t, int64(1), snap["requests_failed"])
	assert.Equal(t, int64(1), snap["conversations"])
	assert.Equal(t, int64(1), snap["conversation_errors"])
	assert.Equal(t, int64(2), snap["tool_calls"])
	assert.Equal(t, int64(1), snap["tool_errors"])
	assert.Equal(t, int64(1), snap["memory_writes"])
	assert.Equal(t, int64(1), snap["memory_recalls"])
}

func TestMetrics_UptimeAdvances(t *testing.T) {
	m := New(bus.New())
	assert.GreaterOrEqual(t, m.Uptime().Nanoseconds(), int64(0))
	snap := m.Snapshot()
	assert.Contains(t, snap, "uptime_s")
}
