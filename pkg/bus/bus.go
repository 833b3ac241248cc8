package bus

import (
	"log/slog"
	"reflect"
	"sync"
	"time"
)

// historyCapacity bounds the event history ring. Oldest events are evicted.
const historyCapacity = 1000

// Event is a published event as seen by handlers and history queries.
type Event struct {
	Type      EventType
	Payload   map[string]any
	Seq       uint64
	Timestamp time.Time
}

// Handler processes one event. Handlers for a single Emit run concurrently
// and must not assume ordering among themselves.
type Handler func(Event)

// registration pairs a handler with the identity key used for de-duplication
// and removal. The key is the function pointer of the handler as registered
// (for Once wrappers, the pointer of the original handler).
type registration struct {
	key     uintptr
	handler Handler
	once    bool
}

// Bus is the in-process event bus. The zero value is not usable; call New.
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]registration

	histMu  sync.Mutex
	seq     uint64
	history []Event // ring, capacity historyCapacity
	histPos int
	histLen int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{
		listeners: make(map[EventType][]registration),
		history:   make([]Event, historyCapacity),
	}
}

func handlerKey(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// On registers a handler for an event type. Registering the same handler
// twice for the same type is a no-op.
func (b *Bus) On(event EventType, handler Handler) {
	b.register(event, registration{key: handlerKey(handler), handler: handler})
}

// Once registers a handler that is removed after its first invocation.
func (b *Bus) Once(event EventType, handler Handler) {
	b.register(event, registration{key: handlerKey(handler), handler: handler, once: true})
}

func (b *Bus) register(event EventType, reg registration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.listeners[event] {
		if existing.key == reg.key {
			return
		}
	}
	b.listeners[event] = append(b.listeners[event], reg)
}

// Off removes a previously registered handler. Unknown handlers are ignored.
func (b *Bus) Off(event EventType, handler Handler) {
	key := handlerKey(handler)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(event, key)
}

func (b *Bus) removeLocked(event EventType, key uintptr) {
	regs := b.listeners[event]
	for i, reg := range regs {
		if reg.key == key {
			b.listeners[event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// ClearListeners removes all handlers for one event type, or for every type
// when event is empty.
func (b *Bus) ClearListeners(event EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if event == "" {
		b.listeners = make(map[EventType][]registration)
		return
	}
	delete(b.listeners, event)
}

// Emit assigns the next sequence number, records the event in history, and
// invokes all registered handlers concurrently, waiting for them to finish.
// A panicking handler is recovered and logged; it never prevents the other
// handlers from running and never propagates to the emitter.
func (b *Bus) Emit(event EventType, payload map[string]any) Event {
	b.histMu.Lock()
	b.seq++
	ev := Event{Type: event, Payload: payload, Seq: b.seq, Timestamp: time.Now()}
	b.history[b.histPos] = ev
	b.histPos = (b.histPos + 1) % historyCapacity
	if b.histLen < historyCapacity {
		b.histLen++
	}
	b.histMu.Unlock()

	b.mu.Lock()
	regs := b.listeners[event]
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	// Once-handlers are unregistered before dispatch so re-entrant emits
	// cannot fire them twice.
	for _, reg := range snapshot {
		if reg.once {
			b.removeLocked(event, reg.key)
		}
	}
	b.mu.Unlock()

	if len(snapshot) == 0 {
		return ev
	}

	var wg sync.WaitGroup
	for _, reg := range snapshot {
		wg.Add(1)
		go func(reg registration) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Event handler panicked",
						"event", string(event), "panic", r)
				}
			}()
			reg.handler(ev)
		}(reg)
	}
	wg.Wait()
	return ev
}

// History returns up to limit most recent events, oldest first, optionally
// filtered by type (empty type means all).
func (b *Bus) History(event EventType, limit int) []Event {
	if limit <= 0 {
		limit = 100
	}
	b.histMu.Lock()
	defer b.histMu.Unlock()

	out := make([]Event, 0, limit)
	// Walk the ring oldest → newest.
	start := b.histPos - b.histLen
	if start < 0 {
		start += historyCapacity
	}
	for i := 0; i < b.histLen; i++ {
		ev := b.history[(start+i)%historyCapacity]
		if event != "" && ev.Type != event {
			continue
		}
		out = append(out, ev)
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Seq returns the sequence number of the most recently emitted event.
func (b *Bus) Seq() uint64 {
	b.histMu.Lock()
	defer b.histMu.Unlock()
	return b.seq
}
