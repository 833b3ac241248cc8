package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/tools"
)

func setupWSServer(t *testing.T, f *gwFixture, tune func(m *ConnectionManager)) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	m := NewConnectionManager(f.gw, f.bus, slog.Default())
	if tune != nil {
		tune(m)
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	t.Cleanup(func() {
		m.Stop()
		cancel()
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		m.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return m, server
}

func dialWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// readResponse reads frames until a res arrives, skipping forwarded
// event frames.
func readResponse(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	for i := 0; i < 50; i++ {
		msg := readFrame(t, conn)
		if msg["type"] == "res" {
			return msg
		}
	}
	t.Fatal("no response frame received")
	return nil
}

func writeRequest(t *testing.T, conn *websocket.Conn, req *Request) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestWS_ConnectHandshake(t *testing.T) {
	f := newGatewayFixture(t)
	m, server := setupWSServer(t, f, nil)
	conn := dialWS(t, server)

	// The connected event is the first frame every client sees.
	msg := readFrame(t, conn)
	assert.Equal(t, "event", msg["type"])
	assert.Equal(t, "connected", msg["event"])
	payload := msg["payload"].(map[string]any)
	connID := payload["connection_id"].(string)
	assert.NotEmpty(t, connID)

	writeRequest(t, conn, &Request{
		Type: "req", ID: "c1", Method: "connect",
		Params: map[string]any{
			"identity": map[string]any{
				"device_id":    "dev-42",
				"device_name":  "laptop",
				"role":         "client",
				"capabilities": []any{"chat"},
			},
		},
	})

	resp := readResponse(t, conn)
	assert.Equal(t, "c1", resp["id"])
	assert.Equal(t, true, resp["ok"])
	respPayload := resp["payload"].(map[string]any)
	assert.Equal(t, connID, respPayload["connection_id"])
	assert.Contains(t, respPayload["capabilities"], "health")
	require.NotNil(t, respPayload["health"])

	assert.Equal(t, 1, m.ActiveConnections())
	bound := m.ConnectionByDevice("dev-42")
	require.NotNil(t, bound)
	assert.Equal(t, connID, bound.ID)
	assert.True(t, bound.Authenticated())
	assert.Equal(t, "laptop", bound.Identity().DeviceName)
}

func TestWS_InvalidFrame(t *testing.T) {
	f := newGatewayFixture(t)
	_, server := setupWSServer(t, f, nil)
	conn := dialWS(t, server)
	readFrame(t, conn) // connected event

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("not json at all")))

	resp := readResponse(t, conn)
	assert.Equal(t, "unknown", resp["id"])
	assert.Equal(t, false, resp["ok"])
	assert.Contains(t, resp["error"], "Invalid message format: ")

	// Structurally valid JSON that is not a valid request.
	writeRequest(t, conn, &Request{Type: "req", ID: "x1"})
	resp = readResponse(t, conn)
	assert.Equal(t, "unknown", resp["id"])
	assert.Contains(t, resp["error"], "missing method")
}

func TestWS_UnknownMethod(t *testing.T) {
	f := newGatewayFixture(t)
	_, server := setupWSServer(t, f, nil)
	conn := dialWS(t, server)
	readFrame(t, conn)

	writeRequest(t, conn, &Request{Type: "req", ID: "u1", Method: "bogus"})
	resp := readResponse(t, conn)
	assert.Equal(t, "u1", resp["id"])
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "Unknown request method: bogus", resp["error"])
}

func TestWS_IdempotencyReplay(t *testing.T) {
	f := newGatewayFixture(t)
	var calls atomic.Int64
	require.NoError(t, f.tools.Register(tools.LocalTool{
		Name: "count_tool",
		Handler: func(context.Context, map[string]any) (string, error) {
			calls.Add(1)
			return "ok", nil
		},
	}))
	_, server := setupWSServer(t, f, nil)
	conn := dialWS(t, server)
	readFrame(t, conn)

	req := &Request{
		Type: "req", ID: "t1", Method: "tool.call",
		Params:         map[string]any{"tool_name": "count_tool"},
		IdempotencyKey: "key-1",
	}
	writeRequest(t, conn, req)
	first := readResponse(t, conn)
	assert.Equal(t, true, first["ok"])

	writeRequest(t, conn, req)
	second := readResponse(t, conn)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), calls.Load())
}

func TestWS_EventForwarding(t *testing.T) {
	f := newGatewayFixture(t)
	_, server := setupWSServer(t, f, nil)
	conn := dialWS(t, server)
	readFrame(t, conn)

	f.bus.Emit(bus.EventConversationComplete, map[string]any{
		"session_id": "web_u1",
		"content":    "done",
	})

	msg := readFrame(t, conn)
	assert.Equal(t, "event", msg["type"])
	assert.Equal(t, "conversation.complete", msg["event"])
	payload := msg["payload"].(map[string]any)
	assert.Equal(t, "done", payload["content"])
	assert.Greater(t, msg["seq"].(float64), float64(0))
	assert.NotEmpty(t, msg["timestamp"])
}

func TestWS_IdleConnectionClosed(t *testing.T) {
	f := newGatewayFixture(t)
	rec := &eventRecorder{}
	f.bus.On(bus.EventDisconnected, rec.record)

	m, server := setupWSServer(t, f, func(m *ConnectionManager) {
		m.idleAfter = 50 * time.Millisecond
		m.sweepEvery = 20 * time.Millisecond
	})
	conn := dialWS(t, server)
	readFrame(t, conn)
	require.Equal(t, 1, m.ActiveConnections())

	waitFor(t, func() bool { return m.ActiveConnections() == 0 })
	waitFor(t, func() bool { return rec.count(bus.EventDisconnected) >= 1 })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			break
		}
	}
}

func TestIdempotencyCache(t *testing.T) {
	cache := newIdempotencyCache(idempotencyTTL)
	now := time.Now()
	cache.now = func() time.Time { return now }

	_, ok := cache.Get("k")
	assert.False(t, ok)

	cache.Put("k", []byte("response"))
	data, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("response"), data)

	// Within TTL the entry survives a sweep.
	now = now.Add(idempotencyTTL - time.Second)
	assert.Equal(t, 0, cache.Sweep())
	_, ok = cache.Get("k")
	assert.True(t, ok)

	// Past TTL it is gone, whether swept or read.
	now = now.Add(2 * time.Second)
	_, ok = cache.Get("k")
	assert.False(t, ok)

	cache.Put("other", []byte("x"))
	now = now.Add(idempotencyTTL + time.Second)
	assert.Equal(t, 1, cache.Sweep())
	assert.Equal(t, 0, cache.Len())
}

func TestWS_DeliverToDevice(t *testing.T) {
	f := newGatewayFixture(t)
	m, server := setupWSServer(t, f, nil)
	conn := dialWS(t, server)

	readFrame(t, conn) // connected event
	writeRequest(t, conn, &Request{Type: msgTypeRequest, ID: "c1", Method: "connect", Params: map[string]any{
		"identity": map[string]any{"device_id": "dev-7", "device_name": "phone"},
	}})
	readResponse(t, conn)

	require.NoError(t, m.DeliverToDevice("dev-7", "your reply", "text"))

	for i := 0; i < 50; i++ {
		msg := readFrame(t, conn)
		if msg["type"] != "event" || msg["event"] != "channel.message" {
			continue
		}
		payload, ok := msg["payload"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "your reply", payload["content"])
		assert.Equal(t, "outbound", payload["direction"])
		assert.Equal(t, "web", payload["channel"])
		return
	}
	t.Fatal("delivery frame not received")
}

func TestWS_DeliverToUnknownDevice(t *testing.T) {
	f := newGatewayFixture(t)
	m, _ := setupWSServer(t, f, nil)
	err := m.DeliverToDevice("ghost", "hi", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active connection")
}
