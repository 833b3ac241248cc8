// Package bus provides the in-process typed publish/subscribe event bus that
// connects the gateway services. Events carry a monotonic sequence number and
// are retained in a bounded history ring for catch-up style queries.
package bus

// EventType identifies an event on the bus. The set is closed: services only
// emit the types declared here.
type EventType string

// Connection lifecycle.
const (
	EventConnected    EventType = "connected"
	EventDisconnected EventType = "disconnected"
	EventHeartbeat    EventType = "heartbeat"
	EventHealthUpdate EventType = "health.update"
)

// Channel and conversation lifecycle.
const (
	EventChannelMessage       EventType = "channel.message"
	EventConversationStart    EventType = "conversation.start"
	EventConversationComplete EventType = "conversation.complete"
	EventConversationError    EventType = "conversation.error"
	EventInteractionCompleted EventType = "interaction.completed"
)

// Memory lifecycle.
const (
	EventMemorySaved      EventType = "memory.saved"
	EventMemoryRecalled   EventType = "memory.recalled"
	EventMemoryClustered  EventType = "memory.clustered"
	EventMemorySummarized EventType = "memory.summarized"
)

// Tool invocation lifecycle.
const (
	EventToolCallStart  EventType = "tool.call.start"
	EventToolCallResult EventType = "tool.call.result"
	EventToolCallError  EventType = "tool.call.error"
)

// Configuration lifecycle.
const (
	EventConfigChanged  EventType = "config.changed"
	EventConfigReloaded EventType = "config.reloaded"
)

// Agent lifecycle.
const (
	EventAgentStart    EventType = "agent.start"
	EventAgentStream   EventType = "agent.stream"
	EventAgentComplete EventType = "agent.complete"
	EventAgentError    EventType = "agent.error"
)

// Request lifecycle (gateway-internal bookkeeping).
const (
	EventRequestReceived  EventType = "request.received"
	EventRequestCompleted EventType = "request.completed"
	EventRequestFailed    EventType = "request.failed"
)
