// Package metrics keeps lightweight process counters fed by bus events
// for the health, status, and diagnose surfaces.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/openconvo/gateway/pkg/bus"
)

// Metrics accumulates counters over the process lifetime. All fields
// are updated from bus handlers and read from request handlers, so
// everything is atomic.
type Metrics struct {
	start time.Time

	requestsReceived  atomic.Int64
	requestsCompleted atomic.Int64
	requestsFailed    atomic.Int64

	conversations      atomic.Int64
	conversationErrors atomic.Int64

	toolCalls  atomic.Int64
	toolErrors atomic.Int64

	memoryWrites  atomic.Int64
	memoryRecalls atomic.Int64
}

// New creates the metrics collector and subscribes it to the bus.
func New(b *bus.Bus) *Metrics {
	m := &Metrics{start: time.Now()}

	b.On(bus.EventRequestReceived, func(bus.Event) { m.requestsReceived.Add(1) })
	b.On(bus.EventRequestCompleted, func(bus.Event) { m.requestsCompleted.Add(1) })
	b.On(bus.EventRequestFailed, func(bus.Event) { m.requestsFailed.Add(1) })
	b.On(bus.EventConversationComplete, func(bus.Event) { m.conversations.Add(1) })
	b.On(bus.EventConversationError, func(bus.Event) { m.conversationErrors.Add(1) })
	b.On(bus.EventToolCallStart, func(bus.Event) { m.toolCalls.Add(1) })
	b.On(bus.EventToolCallError, func(bus.Event) { m.toolErrors.Add(1) })
	b.On(bus.EventMemorySaved, func(bus.Event) { m.memoryWrites.Add(1) })
	b.On(bus.EventMemoryRecalled, func(bus.Event) { m.memoryRecalls.Add(1) })

	return m
}

// Uptime returns how long the process has been running.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.start)
}

// Snapshot returns all counters plus uptime for status payloads.
func (m *Metrics) Snapshot() map[string]any {
	return map[string]any{
		"uptime_s":            int64(m.Uptime().Seconds()),
		"requests_received":   m.requestsReceived.Load(),
		"requests_completed":  m.requestsCompleted.Load(),
		"requests_failed":     m.requestsFailed.Load(),
		"conversations":       m.conversations.Load(),
		"conversation_errors": m.conversationErrors.Load(),
		"tool_calls":          m.toolCalls.Load(),
		"tool_errors":         m.toolErrors.Load(),
		"memory_writes":       m.memoryWrites.Load(),
		"memory_recalls":      m.memoryRecalls.Load(),
	}
}
