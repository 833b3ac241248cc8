package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

// ChatReceiver accepts inbound chat messages for the web channel.
// Implemented by channels.Web.
type ChatReceiver interface {
	Receive(sender, content, userID string)
}

// Server is the HTTP surface: the WebSocket endpoint plus the chat,
// batch, and confirmation routes for non-WebSocket clients.
type Server struct {
	echo    *echo.Echo
	httpSrv *http.Server
	gw      *Gateway
	conns   *ConnectionManager
	chat    ChatReceiver
	logger  *slog.Logger

	// allowedOrigins restricts WebSocket upgrades. Empty means any
	// origin is accepted.
	allowedOrigins []string
}

// NewServer builds the HTTP server and registers routes.
func NewServer(gw *Gateway, conns *ConnectionManager, allowedOrigins []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		echo:           echo.New(),
		gw:             gw,
		conns:          conns,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}

	s.echo.Use(securityHeaders())
	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/ws", s.wsHandler)
	s.echo.POST("/api/batch", s.batchHandler)
	s.echo.POST("/api/chat", s.chatHandler)
	s.echo.POST("/api/chat/confirm", s.confirmHandler)
	return s
}

// SetChatReceiver wires the web channel's inbound side in after
// construction.
func (s *Server) SetChatReceiver(r ChatReceiver) {
	s.chat = r
}

// Handler exposes the underlying router, used by tests with httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// healthHandler handles GET /health with the same payload as the
// health method.
func (s *Server) healthHandler(c *echo.Context) error {
	payload, err := s.gw.handleHealth(c.Request().Context(), nil, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, payload)
}

// wsHandler upgrades to WebSocket and hands the connection to the
// ConnectionManager. Blocks until the socket closes.
func (s *Server) wsHandler(c *echo.Context) error {
	opts := &websocket.AcceptOptions{}
	if len(s.allowedOrigins) > 0 {
		opts.OriginPatterns = s.allowedOrigins
	} else {
		opts.InsecureSkipVerify = true
	}
	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}
	s.conns.HandleConnection(c.Request().Context(), conn)
	return nil
}

// BatchItem is one entry in a POST /api/batch request.
type BatchItem struct {
	Method    string         `json:"method"`
	Params    map[string]any `json:"params"`
	TimeoutMS int            `json:"timeout_ms,omitempty"`
	Retries   int            `json:"retries,omitempty"`
	Priority  int            `json:"priority,omitempty"`
}

// BatchItemResult is the per-item outcome in the batch response.
type BatchItemResult struct {
	Method  string         `json:"method"`
	OK      bool           `json:"ok"`
	Payload map[string]any `json:"payload,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// batchHandler handles POST /api/batch: items are sorted by descending
// priority and dispatched serially through the method table.
func (s *Server) batchHandler(c *echo.Context) error {
	items, err := decodeBatchItems(c.Request())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch requires at least one item")
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Priority > items[j].Priority })

	results := make([]BatchItemResult, 0, len(items))
	for _, item := range items {
		results = append(results, s.runBatchItem(c.Request().Context(), item))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"results": results,
		"total":   len(results),
	})
}

// decodeBatchItems accepts either a bare JSON array or an object with
// an items field.
func decodeBatchItems(r *http.Request) ([]BatchItem, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	var items []BatchItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var wrapper struct {
		Items []BatchItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Items, nil
}

func (s *Server) runBatchItem(parent context.Context, item BatchItem) BatchItemResult {
	ctx := parent
	if item.TimeoutMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, time.Duration(item.TimeoutMS)*time.Millisecond)
		defer cancel()
	}

	attempts := item.Retries + 1
	if attempts < 1 {
		attempts = 1
	}
	var resp *Response
	for attempt := 0; attempt < attempts; attempt++ {
		req := &Request{
			Type:   msgTypeRequest,
			ID:     uuid.New().String(),
			Method: item.Method,
			Params: item.Params,
		}
		resp = s.gw.Dispatch(ctx, nil, req)
		if resp.OK {
			break
		}
	}
	return BatchItemResult{
		Method:  item.Method,
		OK:      resp.OK,
		Payload: resp.Payload,
		Error:   resp.Error,
	}
}

// ConfirmRequest is the body of POST /api/chat/confirm: the client's
// approve/reject decision for a pending tool confirmation.
type ConfirmRequest struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	ToolCallID string `json:"tool_call_id"`
	Decision   string `json:"decision"`
}

// ChatRequest is the body of POST /api/chat. Sender identifies the
// web client; replies are delivered to its bound connection.
type ChatRequest struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

// chatHandler handles POST /api/chat: inbound messages for the web
// channel. Processing is asynchronous; the reply arrives as events on
// the sender's WebSocket connection.
func (s *Server) chatHandler(c *echo.Context) error {
	if s.chat == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "web channel is not available")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Sender == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sender is required")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	s.chat.Receive(req.Sender, req.Content, req.UserID)
	return c.JSON(http.StatusAccepted, map[string]any{
		"status":     "accepted",
		"session_id": "web_" + req.Sender,
	})
}

// confirmHandler handles POST /api/chat/confirm.
func (s *Server) confirmHandler(c *echo.Context) error {
	if s.gw.deps.Confirmer == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "confirmation handling is not available")
	}

	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if req.ToolCallID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tool_call_id is required")
	}
	if req.Decision != "approve" && req.Decision != "reject" {
		return echo.NewHTTPError(http.StatusBadRequest, "decision must be approve or reject")
	}

	payload, err := s.gw.deps.Confirmer.ResolveConfirmation(
		c.Request().Context(), req.SessionID, req.UserID, req.ToolCallID, req.Decision == "approve")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, payload)
}
