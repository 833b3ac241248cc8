// Package channels adapts external messaging surfaces (web, Slack) to
// the gateway's event bus: inbound messages become channel.message
// events, completed conversations are routed back out as replies.
package channels

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/openconvo/gateway/pkg/bus"
)

// Channel is one messaging surface the gateway can receive from and
// send to.
type Channel interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	// Send delivers content to a target on this channel and returns a
	// channel-specific message id. messageType defaults to "text".
	Send(ctx context.Context, target, content, messageType string) (string, error)
}

// Registry holds the active channels and routes conversation replies
// back to the channel that originated the turn.
type Registry struct {
	bus    *bus.Bus
	logger *slog.Logger

	mu       sync.RWMutex
	channels map[string]Channel
}

func NewRegistry(b *bus.Bus, logger *slog.Logger) *Registry {
	return &Registry{
		bus:      b,
		logger:   logger,
		channels: make(map[string]Channel),
	}
}

// Register adds a channel. Registering twice under one name replaces
// the earlier channel.
func (r *Registry) Register(ch Channel) {
	r.mu.Lock()
	r.channels[ch.Name()] = ch
	r.mu.Unlock()
}

// Get returns a channel by name.
func (r *Registry) Get(name string) (Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[name]
	if !ok {
		return nil, fmt.Errorf("unknown channel %q", name)
	}
	return ch, nil
}

// Names returns the registered channel names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start starts every channel and subscribes the reply router.
func (r *Registry) Start(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, ch := range r.channels {
		if err := ch.Start(ctx); err != nil {
			return fmt.Errorf("start channel %q: %w", name, err)
		}
	}
	r.bus.On(bus.EventConversationComplete, r.onConversationComplete)
	return nil
}

// Stop unsubscribes the router and stops every channel.
func (r *Registry) Stop(ctx context.Context) {
	r.bus.Off(bus.EventConversationComplete, r.onConversationComplete)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, ch := range r.channels {
		if err := ch.Stop(ctx); err != nil {
			r.logger.Warn("failed to stop channel", "channel", name, "error", err)
		}
	}
}

// onConversationComplete sends the assistant reply back out on the
// originating channel. The sender is recovered from the session key
// ("{channel}_{sender}").
func (r *Registry) onConversationComplete(ev bus.Event) {
	status, _ := ev.Payload["status"].(string)
	if status != "success" {
		return
	}
	name, _ := ev.Payload["channel"].(string)
	sessionID, _ := ev.Payload["session_id"].(string)
	content, _ := ev.Payload["content"].(string)
	if name == "" || content == "" {
		return
	}

	ch, err := r.Get(name)
	if err != nil {
		return
	}
	target := strings.TrimPrefix(sessionID, name+"_")

	if _, err := ch.Send(context.Background(), target, content, "text"); err != nil {
		r.logger.Error("failed to deliver reply",
			"channel", name, "target", target, "error", err)
	}
}

// EmitInbound publishes an inbound message as a channel.message event.
// Channels call this from their receive loops.
func EmitInbound(b *bus.Bus, channel, sender, content, userID string) {
	b.Emit(bus.EventChannelMessage, map[string]any{
		"channel": channel,
		"sender":  sender,
		"content": content,
		"user_id": userID,
	})
}
