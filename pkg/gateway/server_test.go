package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfirmer struct {
	sessionID  string
	toolCallID string
	approved   bool
	result     map[string]any
	err        error
}

func (f *fakeConfirmer) ResolveConfirmation(_ context.Context, sessionID, _, toolCallID string, approve bool) (map[string]any, error) {
	f.sessionID = sessionID
	f.toolCallID = toolCallID
	f.approved = approve
	return f.result, f.err
}

func setupHTTPServer(t *testing.T, f *gwFixture) *httptest.Server {
	t.Helper()
	conns := NewConnectionManager(f.gw, f.bus, slog.Default())
	srv := NewServer(f.gw, conns, nil, slog.Default())
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHTTP_Health(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestHTTP_BatchDispatch(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	resp, body := postJSON(t, server.URL+"/api/batch", []map[string]any{
		{"method": "health"},
		{"method": "tools.list"},
		{"method": "no.such.method"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), body["total"])

	results := body["results"].([]any)
	require.Len(t, results, 3)

	first := results[0].(map[string]any)
	assert.Equal(t, "health", first["method"])
	assert.Equal(t, true, first["ok"])

	last := results[2].(map[string]any)
	assert.Equal(t, false, last["ok"])
	assert.Equal(t, "Unknown request method: no.such.method", last["error"])
}

func TestHTTP_BatchPriorityOrder(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	// Higher priority runs first regardless of list order; ties keep
	// their relative order.
	_, body := postJSON(t, server.URL+"/api/batch", []map[string]any{
		{"method": "health", "priority": 0},
		{"method": "status", "priority": 5},
		{"method": "system.info", "priority": 5},
	})

	results := body["results"].([]any)
	require.Len(t, results, 3)
	assert.Equal(t, "status", results[0].(map[string]any)["method"])
	assert.Equal(t, "system.info", results[1].(map[string]any)["method"])
	assert.Equal(t, "health", results[2].(map[string]any)["method"])
}

func TestHTTP_BatchWrappedItems(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	_, body := postJSON(t, server.URL+"/api/batch", map[string]any{
		"items": []map[string]any{{"method": "health"}},
	})
	assert.Equal(t, float64(1), body["total"])
}

func TestHTTP_BatchRejectsEmpty(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	resp, _ := postJSON(t, server.URL+"/api/batch", []map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_ConfirmApprove(t *testing.T) {
	f := newGatewayFixture(t)
	confirmer := &fakeConfirmer{result: map[string]any{"status": "success", "content": "done"}}
	f.gw.deps.Confirmer = confirmer
	server := setupHTTPServer(t, f)

	resp, body := postJSON(t, server.URL+"/api/chat/confirm", ConfirmRequest{
		SessionID:  "web_u1",
		UserID:     "alice",
		ToolCallID: "call-9",
		Decision:   "approve",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "web_u1", confirmer.sessionID)
	assert.Equal(t, "call-9", confirmer.toolCallID)
	assert.True(t, confirmer.approved)
}

func TestHTTP_ConfirmReject(t *testing.T) {
	f := newGatewayFixture(t)
	confirmer := &fakeConfirmer{result: map[string]any{"status": "rejected"}}
	f.gw.deps.Confirmer = confirmer
	server := setupHTTPServer(t, f)

	resp, body := postJSON(t, server.URL+"/api/chat/confirm", ConfirmRequest{
		SessionID:  "web_u1",
		ToolCallID: "call-9",
		Decision:   "reject",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "rejected", body["status"])
	assert.False(t, confirmer.approved)
}

func TestHTTP_ConfirmValidation(t *testing.T) {
	f := newGatewayFixture(t)
	f.gw.deps.Confirmer = &fakeConfirmer{}
	server := setupHTTPServer(t, f)

	cases := []ConfirmRequest{
		{ToolCallID: "c", Decision: "approve"},
		{SessionID: "s", Decision: "approve"},
		{SessionID: "s", ToolCallID: "c", Decision: "maybe"},
	}
	for _, tc := range cases {
		resp, _ := postJSON(t, server.URL+"/api/chat/confirm", tc)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestHTTP_ConfirmError(t *testing.T) {
	f := newGatewayFixture(t)
	f.gw.deps.Confirmer = &fakeConfirmer{err: fmt.Errorf("no pending confirmation")}
	server := setupHTTPServer(t, f)

	resp, _ := postJSON(t, server.URL+"/api/chat/confirm", ConfirmRequest{
		SessionID:  "web_u1",
		ToolCallID: "call-9",
		Decision:   "approve",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTP_ConfirmUnavailable(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	resp, _ := postJSON(t, server.URL+"/api/chat/confirm", ConfirmRequest{
		SessionID:  "web_u1",
		ToolCallID: "call-9",
		Decision:   "approve",
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

type fakeChatReceiver struct {
	sender  string
	content string
	userID  string
}

func (r *fakeChatReceiver) Receive(sender, content, userID string) {
	r.sender, r.content, r.userID = sender, content, userID
}

func setupChatServer(t *testing.T, f *gwFixture) (*httptest.Server, *fakeChatReceiver) {
	t.Helper()
	conns := NewConnectionManager(f.gw, f.bus, slog.Default())
	srv := NewServer(f.gw, conns, nil, slog.Default())
	receiver := &fakeChatReceiver{}
	srv.SetChatReceiver(receiver)
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)
	return server, receiver
}

func TestHTTP_ChatAccepted(t *testing.T) {
	f := newGatewayFixture(t)
	server, receiver := setupChatServer(t, f)

	resp, body := postJSON(t, server.URL+"/api/chat", ChatRequest{
		Sender:  "dev-1",
		Content: "hello there",
		UserID:  "alice",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, "web_dev-1", body["session_id"])
	assert.Equal(t, "dev-1", receiver.sender)
	assert.Equal(t, "hello there", receiver.content)
	assert.Equal(t, "alice", receiver.userID)
}

func TestHTTP_ChatValidation(t *testing.T) {
	f := newGatewayFixture(t)
	server, _ := setupChatServer(t, f)

	cases := []ChatRequest{
		{Content: "no sender"},
		{Sender: "dev-1"},
	}
	for _, tc := range cases {
		resp, _ := postJSON(t, server.URL+"/api/chat", tc)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestHTTP_ChatUnavailable(t *testing.T) {
	f := newGatewayFixture(t)
	server := setupHTTPServer(t, f)

	resp, _ := postJSON(t, server.URL+"/api/chat", ChatRequest{Sender: "dev-1", Content: "hi"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
