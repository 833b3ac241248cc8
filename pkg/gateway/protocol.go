// Package gateway implements the WebSocket protocol layer and the HTTP
// surface: connection lifecycle, request dispatch over a fixed method
// table, idempotency caching, heartbeats, and event fan-out.
package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openconvo/gateway/pkg/bus"
)

// Device roles a connect handshake may declare.
const (
	roleClient = "client"
	roleNode   = "node"
	roleAdmin  = "admin"
)

// Wire message discriminants.
const (
	msgTypeRequest  = "req"
	msgTypeResponse = "res"
	msgTypeEvent    = "event"
)

// Request is an inbound client frame.
type Request struct {
	Type           string         `json:"type"`
	ID             string         `json:"id"`
	Method         string         `json:"method"`
	Params         map[string]any `json:"params"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
}

// Response answers one Request, echoing its id.
type Response struct {
	Type    string         `json:"type"`
	ID      string         `json:"id"`
	OK      bool           `json:"ok"`
	Payload map[string]any `json:"payload,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// EventFrame is a server-initiated event pushed to connected clients.
type EventFrame struct {
	Type      string         `json:"type"`
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Seq       uint64         `json:"seq"`
	Timestamp string         `json:"timestamp"`
}

// DeviceIdentity describes the client behind a connection, bound by the
// connect method.
type DeviceIdentity struct {
	DeviceID     string   `json:"device_id"`
	DeviceName   string   `json:"device_name"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

// validate fills handshake defaults and rejects unknown roles.
func (d *DeviceIdentity) validate() error {
	if d.DeviceName == "" {
		return fmt.Errorf("device_name is required")
	}
	if d.DeviceID == "" {
		d.DeviceID = uuid.NewString()
	}
	if d.Role == "" {
		d.Role = roleClient
	}
	switch d.Role {
	case roleClient, roleNode, roleAdmin:
	default:
		return fmt.Errorf("unknown device role %q", d.Role)
	}
	return nil
}

// parseRequest decodes and validates one inbound frame.
func parseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	if req.Type != msgTypeRequest {
		return nil, fmt.Errorf("unsupported message type %q", req.Type)
	}
	if req.Method == "" {
		return nil, fmt.Errorf("missing method")
	}
	if req.ID == "" {
		return nil, fmt.Errorf("missing request id")
	}
	return &req, nil
}

// okResponse builds a successful response for a request id.
func okResponse(id string, payload map[string]any) *Response {
	return &Response{Type: msgTypeResponse, ID: id, OK: true, Payload: payload}
}

// errResponse builds a failed response for a request id.
func errResponse(id, message string) *Response {
	return &Response{Type: msgTypeResponse, ID: id, OK: false, Error: message}
}

// eventFrame converts a bus event into its wire representation.
func eventFrame(ev bus.Event) *EventFrame {
	return &EventFrame{
		Type:      msgTypeEvent,
		Event:     string(ev.Type),
		Payload:   ev.Payload,
		Seq:       ev.Seq,
		Timestamp: ev.Timestamp.Format(time.RFC3339Nano),
	}
}
