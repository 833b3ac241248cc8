package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/openconvo/gateway/pkg/bus"
)

const (
	// heartbeatInterval is how often the server broadcasts a heartbeat
	// event to all connections.
	heartbeatInterval = 30 * time.Second

	// idleTimeout force-closes connections with no inbound traffic.
	idleTimeout = 300 * time.Second

	// defaultWriteTimeout bounds a single WebSocket send.
	defaultWriteTimeout = 10 * time.Second
)

// forwardedEvents is the closed set of bus events pushed to connected
// clients as event frames. Request bookkeeping events stay internal.
var forwardedEvents = []bus.EventType{
	bus.EventConnected, bus.EventDisconnected,
	bus.EventHeartbeat, bus.EventHealthUpdate,
	bus.EventChannelMessage,
	bus.EventConversationStart, bus.EventConversationComplete, bus.EventConversationError,
	bus.EventInteractionCompleted,
	bus.EventMemorySaved, bus.EventMemoryRecalled, bus.EventMemoryClustered, bus.EventMemorySummarized,
	bus.EventToolCallStart, bus.EventToolCallResult, bus.EventToolCallError,
	bus.EventConfigChanged, bus.EventConfigReloaded,
	bus.EventAgentStart, bus.EventAgentStream, bus.EventAgentComplete, bus.EventAgentError,
}

// Connection is a single WebSocket client.
type Connection struct {
	ID          string
	ConnectedAt time.Time

	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	// writeMu serializes frame writes; broadcasts and request responses
	// come from different goroutines.
	writeMu sync.Mutex

	mu            sync.Mutex
	identity      *DeviceIdentity
	authenticated bool
	lastHeartbeat time.Time
}

// BindIdentity attaches the device identity from the connect handshake
// and marks the connection authenticated.
func (c *Connection) BindIdentity(identity *DeviceIdentity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = identity
	c.authenticated = true
}

// Identity returns the bound device identity, if any.
func (c *Connection) Identity() *DeviceIdentity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// Authenticated reports whether the connect handshake has completed.
func (c *Connection) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

func (c *Connection) touch(now time.Time) {
	c.mu.Lock()
	c.lastHeartbeat = now
	c.mu.Unlock()
}

func (c *Connection) idleSince(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastHeartbeat)
}

// ConnectionManager owns the connection table, the idempotency cache,
// the heartbeat broadcast, and the idle sweep. One instance per process.
type ConnectionManager struct {
	gw     *Gateway
	bus    *bus.Bus
	logger *slog.Logger

	mu          sync.RWMutex
	connections map[string]*Connection
	devices     map[string]string // device_id → connection_id

	idem         *idempotencyCache
	writeTimeout time.Duration

	// Intervals are fields so tests can shorten them.
	heartbeatEvery time.Duration
	idleAfter      time.Duration
	sweepEvery     time.Duration

	done chan struct{}
	once sync.Once
}

// NewConnectionManager creates the manager and wires it to the gateway
// for dispatch.
func NewConnectionManager(gw *Gateway, b *bus.Bus, logger *slog.Logger) *ConnectionManager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &ConnectionManager{
		gw:             gw,
		bus:            b,
		logger:         logger,
		connections:    make(map[string]*Connection),
		devices:        make(map[string]string),
		idem:           newIdempotencyCache(idempotencyTTL),
		writeTimeout:   defaultWriteTimeout,
		heartbeatEvery: heartbeatInterval,
		idleAfter:      idleTimeout,
		sweepEvery:     idempotencySweepInterval,
		done:           make(chan struct{}),
	}
	gw.SetConnections(m)
	return m
}

// Start subscribes the event fan-out and launches the heartbeat and
// sweep loops. Runs until ctx is cancelled or Stop is called.
func (m *ConnectionManager) Start(ctx context.Context) {
	for _, eventType := range forwardedEvents {
		m.bus.On(eventType, m.forwardEvent)
	}
	go m.heartbeatLoop(ctx)
	go m.sweepLoop(ctx)
}

// Stop terminates the background loops. Open connections close on
// their own when their contexts are cancelled by the HTTP server.
func (m *ConnectionManager) Stop() {
	m.once.Do(func() { close(m.done) })
	for _, eventType := range forwardedEvents {
		m.bus.Off(eventType, m.forwardEvent)
	}
}

// HandleConnection runs the read loop for one accepted WebSocket.
// Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	now := time.Now()
	c := &Connection{
		ID:            uuid.New().String(),
		ConnectedAt:   now,
		lastHeartbeat: now,
		conn:          conn,
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.bus.Emit(bus.EventConnected, map[string]any{"connection_id": c.ID})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		c.touch(time.Now())
		m.handleFrame(ctx, c, data)
	}
}

// handleFrame parses and dispatches one inbound frame, writing the
// response back on the same connection.
func (m *ConnectionManager) handleFrame(ctx context.Context, c *Connection, data []byte) {
	req, err := parseRequest(data)
	if err != nil {
		m.sendJSON(c, errResponse("unknown", "Invalid message format: "+err.Error()))
		return
	}

	if req.IdempotencyKey != "" {
		if cached, ok := m.idem.Get(req.IdempotencyKey); ok {
			m.sendRaw(c, cached)
			return
		}
	}

	resp := m.gw.Dispatch(ctx, c, req)
	payload, err := json.Marshal(resp)
	if err != nil {
		m.logger.Warn("Failed to marshal response",
			"connection_id", c.ID, "request_id", req.ID, "error", err)
		return
	}
	if resp.OK && req.IdempotencyKey != "" {
		m.idem.Put(req.IdempotencyKey, payload)
	}
	m.sendRaw(c, payload)
}

// forwardEvent pushes one bus event to every connection.
func (m *ConnectionManager) forwardEvent(ev bus.Event) {
	frame, err := json.Marshal(eventFrame(ev))
	if err != nil {
		return
	}
	for _, c := range m.snapshot() {
		m.sendRaw(c, frame)
	}
}

func (m *ConnectionManager) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(m.heartbeatEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.bus.Emit(bus.EventHeartbeat, map[string]any{
				"server_time":        time.Now().Format(time.RFC3339),
				"active_connections": m.ActiveConnections(),
			})
		}
	}
}

func (m *ConnectionManager) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(m.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.idem.Sweep()
			m.closeIdle()
		}
	}
}

// closeIdle force-closes connections with no inbound traffic for longer
// than the idle timeout. The read loop then exits and unregisters them.
func (m *ConnectionManager) closeIdle() {
	now := time.Now()
	for _, c := range m.snapshot() {
		if c.idleSince(now) > m.idleAfter {
			m.logger.Info("Closing idle connection",
				"connection_id", c.ID, "idle", c.idleSince(now).String())
			_ = c.conn.Close(websocket.StatusGoingAway, "idle timeout")
			c.cancel()
		}
	}
}

// ActiveConnections returns the count of open connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// DeliverToDevice pushes an outbound channel message to the connection
// bound to the given device. The web channel's delivery hook lands here.
func (m *ConnectionManager) DeliverToDevice(deviceID, content, messageType string) error {
	c := m.ConnectionByDevice(deviceID)
	if c == nil {
		return fmt.Errorf("no active connection for device %s", deviceID)
	}
	frame := &EventFrame{
		Type:  msgTypeEvent,
		Event: string(bus.EventChannelMessage),
		Payload: map[string]any{
			"channel":      "web",
			"target":       deviceID,
			"content":      content,
			"message_type": messageType,
			"direction":    "outbound",
		},
		Seq:       m.bus.Seq(),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	m.sendRaw(c, data)
	return nil
}

// ConnectionByDevice resolves a connection by bound device id.
func (m *ConnectionManager) ConnectionByDevice(deviceID string) *Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	connID, ok := m.devices[deviceID]
	if !ok {
		return nil
	}
	return m.connections[connID]
}

func (m *ConnectionManager) bindDevice(deviceID, connID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.devices[deviceID] = connID
}

func (m *ConnectionManager) snapshot() []*Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		conns = append(conns, c)
	}
	return conns
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregister(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	if identity := c.Identity(); identity != nil && identity.DeviceID != "" {
		if m.devices[identity.DeviceID] == c.ID {
			delete(m.devices, identity.DeviceID)
		}
	}
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
	m.bus.Emit(bus.EventDisconnected, map[string]any{"connection_id": c.ID})
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	m.sendRaw(c, data)
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	if err := c.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		m.logger.Warn("Failed to send to WebSocket client",
			"connection_id", c.ID, "error", err)
	}
}
