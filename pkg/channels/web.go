package channels

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/openconvo/gateway/pkg/bus"
)

// DeliverFunc pushes a message to a connected web client. The gateway
// wires this to its connection manager.
type DeliverFunc func(target, content, messageType string) error

// Web is the built-in channel for WebSocket clients. Inbound messages
// arrive through the gateway's chat surface; outbound delivery goes
// through the injected DeliverFunc.
type Web struct {
	bus *bus.Bus

	mu      sync.RWMutex
	deliver DeliverFunc
}

func NewWeb(b *bus.Bus) *Web {
	return &Web{bus: b}
}

func (w *Web) Name() string { return "web" }

func (w *Web) Start(context.Context) error { return nil }

func (w *Web) Stop(context.Context) error { return nil }

// SetDeliverFunc installs the outbound delivery hook.
func (w *Web) SetDeliverFunc(f DeliverFunc) {
	w.mu.Lock()
	w.deliver = f
	w.mu.Unlock()
}

// Receive publishes an inbound client message onto the bus.
func (w *Web) Receive(sender, content, userID string) {
	EmitInbound(w.bus, w.Name(), sender, content, userID)
}

func (w *Web) Send(_ context.Context, target, content, messageType string) (string, error) {
	if messageType == "" {
		messageType = "text"
	}
	w.mu.RLock()
	deliver := w.deliver
	w.mu.RUnlock()
	if deliver == nil {
		return "", fmt.Errorf("web channel has no delivery hook")
	}
	if err := deliver(target, content, messageType); err != nil {
		return "", err
	}
	return uuid.NewString(), nil
}
