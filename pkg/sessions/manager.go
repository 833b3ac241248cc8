package sessions

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// MemorySync receives background copies of committed messages so the memory
// graph stays consistent with the session store. Implementations must be
// safe for concurrent use; failures are logged and never surface to callers.
type MemorySync interface {
	AddMessage(ctx context.Context, sessionID, role, content, userID string) error
	OnMessageSaved(sessionID, role, userID string)
}

// Manager owns the in-memory session map and its persistence. One lock
// guards the map; per-session turn ordering is the orchestrator's concern.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	store    *Store

	maxHistoryRounds int
	maxMessages      int

	memory MemorySync
	syncWG sync.WaitGroup
}

// NewManager loads persisted sessions and returns a ready manager. A corrupt
// or unreadable sessions file is logged and treated as empty rather than
// failing startup.
func NewManager(path string, maxHistoryRounds int, memory MemorySync) *Manager {
	if maxHistoryRounds < 1 {
		maxHistoryRounds = 10
	}
	m := &Manager{
		sessions:         map[string]*Session{},
		store:            NewStore(path),
		maxHistoryRounds: maxHistoryRounds,
		maxMessages:      maxHistoryRounds * 2,
		memory:           memory,
	}

	loaded, err := m.store.LoadAll()
	if err != nil {
		slog.Warn("Failed to load sessions from disk, starting empty", "error", err)
	} else {
		m.sessions = loaded
		if len(loaded) > 0 {
			slog.Info("Loaded sessions from disk", "count", len(loaded))
		}
	}
	return m
}

// Close waits for in-flight background memory syncs to finish.
func (m *Manager) Close() {
	m.syncWG.Wait()
}

// resolveKey maps (session_id, user_id) to the store key, honoring legacy
// unscoped sessions owned by default_user. Callers hold m.mu.
func (m *Manager) resolveKey(sessionID, userID string) (string, bool) {
	key := ScopedKey(sessionID, userID)
	if _, ok := m.sessions[key]; ok {
		return key, true
	}
	if NormalizeUserID(userID) == DefaultUserID {
		if _, ok := m.sessions[sessionID]; ok {
			return sessionID, true
		}
	}
	return "", false
}

func (m *Manager) persistLocked() {
	if err := m.store.SaveAll(m.sessions); err != nil {
		slog.Error("Failed to persist sessions", "error", err)
	}
}

// GenerateSessionID returns a fresh session id.
func (m *Manager) GenerateSessionID() string {
	return uuid.NewString()
}

// CreateSession creates a session for a user, generating an id when none is
// supplied, and returns the session id.
func (m *Manager) CreateSession(sessionID, userID string) string {
	if sessionID == "" {
		sessionID = m.GenerateSessionID()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[ScopedKey(sessionID, userID)] = newSession()
	m.persistLocked()
	slog.Info("Created new session", "session_id", sessionID, "user_id", NormalizeUserID(userID))
	return sessionID
}

// SessionView is the external snapshot of a session, excluding turn and
// confirmation bookkeeping.
type SessionView struct {
	CreatedAt    float64   `json:"created_at"`
	LastActivity float64   `json:"last_activity"`
	Title        string    `json:"title"`
	AgentType    string    `json:"agent_type"`
	Messages     []Message `json:"messages"`
}

// GetSession returns a snapshot of a session, or nil when it does not exist
// for this user.
func (m *Manager) GetSession(sessionID, userID string) *SessionView {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return nil
	}
	sess := m.sessions[key]
	msgs := make([]Message, len(sess.Messages))
	copy(msgs, sess.Messages)
	return &SessionView{
		CreatedAt:    sess.CreatedAt,
		LastActivity: sess.LastActivity,
		Title:        sess.Title,
		AgentType:    sess.AgentType,
		Messages:     msgs,
	}
}

// AddMessage appends a message outside of turn semantics and optionally
// schedules a background memory sync. Returns false when the session does
// not exist.
func (m *Manager) AddMessage(sessionID, role, content, userID string, syncMemory bool) bool {
	m.mu.Lock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		m.mu.Unlock()
		slog.Warn("Session not found", "session_id", sessionID)
		return false
	}
	sess := m.sessions[key]
	sess.Messages = append(sess.Messages, Message{Role: role, Content: content})
	sess.LastActivity = epochNow()
	m.trimLocked(sess)
	m.persistLocked()
	m.mu.Unlock()

	if syncMemory {
		m.scheduleMemorySync(sessionID, userID, Message{Role: role, Content: content})
	}
	return true
}

// BeginTurn records a pending turn. Idempotent for an identical payload on
// the same (session_id, turn_id); a conflicting payload returns false.
func (m *Manager) BeginTurn(sessionID, turnID, userRole, userContent, userID string) bool {
	if turnID == "" {
		slog.Warn("begin_turn missing turn_id", "session_id", sessionID)
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		slog.Warn("Session not found", "session_id", sessionID)
		return false
	}
	sess := m.sessions[key]
	if sess.hasCompletedTurn(turnID) {
		return true
	}
	if existing, ok := sess.PendingTurns[turnID]; ok {
		return existing.UserRole == userRole &&
			existing.UserContent == userContent &&
			existing.UserID == userID
	}

	sess.PendingTurns[turnID] = &PendingTurn{
		UserRole:    userRole,
		UserContent: userContent,
		UserID:      userID,
		StartedAt:   epochNow(),
	}
	if len(sess.Messages) == 0 && (sess.Title == "" || sess.Title == defaultTitle) {
		sess.Title = generateTitle(userContent)
	}
	sess.LastActivity = epochNow()
	m.persistLocked()
	return true
}

// CommitTurn atomically appends the pending user message and the assistant
// reply in one persistence write. Committing the same turn again is a no-op
// that still reports success.
func (m *Manager) CommitTurn(sessionID, turnID, assistantContent, userID string) bool {
	if turnID == "" {
		slog.Warn("commit_turn missing turn_id", "session_id", sessionID)
		return false
	}
	m.mu.Lock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		m.mu.Unlock()
		slog.Warn("Session not found", "session_id", sessionID)
		return false
	}
	sess := m.sessions[key]
	if sess.hasCompletedTurn(turnID) {
		m.mu.Unlock()
		return true
	}
	turn, ok := sess.PendingTurns[turnID]
	if !ok {
		m.mu.Unlock()
		slog.Warn("commit_turn pending turn not found",
			"session_id", sessionID, "turn_id", turnID)
		return false
	}
	delete(sess.PendingTurns, turnID)

	userMsg := Message{Role: turn.UserRole, Content: turn.UserContent}
	assistantMsg := Message{Role: "assistant", Content: assistantContent}
	sess.Messages = append(sess.Messages, userMsg, assistantMsg)
	sess.LastActivity = epochNow()
	m.trimLocked(sess)

	sess.CompletedTurnIDs = append(sess.CompletedTurnIDs, turnID)
	if len(sess.CompletedTurnIDs) > maxCompletedTurnIDs {
		sess.CompletedTurnIDs = sess.CompletedTurnIDs[len(sess.CompletedTurnIDs)-maxCompletedTurnIDs:]
	}
	m.persistLocked()
	m.mu.Unlock()

	m.scheduleMemorySync(sessionID, userID, userMsg, assistantMsg)
	return true
}

// AbortTurn discards a pending turn without committing anything.
func (m *Manager) AbortTurn(sessionID, turnID, userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return false
	}
	sess := m.sessions[key]
	if _, ok := sess.PendingTurns[turnID]; !ok {
		return false
	}
	delete(sess.PendingTurns, turnID)
	sess.LastActivity = epochNow()
	m.persistLocked()
	return true
}

func (m *Manager) trimLocked(sess *Session) {
	if len(sess.Messages) > m.maxMessages {
		sess.Messages = sess.Messages[len(sess.Messages)-m.maxMessages:]
	}
}

func (m *Manager) scheduleMemorySync(sessionID, userID string, msgs ...Message) {
	if m.memory == nil {
		return
	}
	m.syncWG.Add(1)
	go func() {
		defer m.syncWG.Done()
		for _, msg := range msgs {
			if err := m.memory.AddMessage(context.Background(), sessionID, msg.Role, msg.Content, userID); err != nil {
				slog.Warn("Memory sync add_message failed",
					"session_id", sessionID, "error", err)
				continue
			}
			m.memory.OnMessageSaved(sessionID, msg.Role, userID)
		}
	}()
}

// GetMessages returns all messages in a session.
func (m *Manager) GetMessages(sessionID, userID string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return []Message{}
	}
	sess := m.sessions[key]
	out := make([]Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out
}

// GetRecentMessages returns the last count messages; count <= 0 means the
// full bounded window.
func (m *Manager) GetRecentMessages(sessionID string, count int, userID string) []Message {
	msgs := m.GetMessages(sessionID, userID)
	if count <= 0 {
		count = m.maxMessages
	}
	if len(msgs) > count {
		return msgs[len(msgs)-count:]
	}
	return msgs
}

// BuildConversation assembles the message list for an LLM call: system
// prompt, bounded history, then the current user message.
func (m *Manager) BuildConversation(sessionID, systemPrompt, currentMessage string, includeHistory bool, userID string) []Message {
	messages := []Message{{Role: "system", Content: systemPrompt}}
	if includeHistory {
		messages = append(messages, m.GetRecentMessages(sessionID, 0, userID)...)
	}
	return append(messages, Message{Role: "user", Content: currentMessage})
}

// SessionInfo is the listing view of one session.
type SessionInfo struct {
	SessionID          string  `json:"session_id"`
	UserID             string  `json:"user_id"`
	CreatedAt          float64 `json:"created_at"`
	LastActivity       float64 `json:"last_activity"`
	Title              string  `json:"title"`
	MessageCount       int     `json:"message_count"`
	ConversationRounds int     `json:"conversation_rounds"`
	AgentType          string  `json:"agent_type"`
	MaxHistoryRounds   int     `json:"max_history_rounds"`
	LastMessage        string  `json:"last_message"`
}

func (m *Manager) infoLocked(key string) SessionInfo {
	sess := m.sessions[key]
	owner, rawID := SplitKey(key)
	if owner == "" {
		owner = DefaultUserID
	}
	preview := ""
	if n := len(sess.Messages); n > 0 {
		content := []rune(sess.Messages[n-1].Content)
		if len(content) > 100 {
			preview = string(content[:100]) + "..."
		} else {
			preview = string(content)
		}
	}
	return SessionInfo{
		SessionID:          rawID,
		UserID:             owner,
		CreatedAt:          sess.CreatedAt,
		LastActivity:       sess.LastActivity,
		Title:              sess.Title,
		MessageCount:       len(sess.Messages),
		ConversationRounds: len(sess.Messages) / 2,
		AgentType:          sess.AgentType,
		MaxHistoryRounds:   m.maxHistoryRounds,
		LastMessage:        preview,
	}
}

// SessionInfo returns the listing view for one session, or nil.
func (m *Manager) SessionInfo(sessionID, userID string) *SessionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return nil
	}
	info := m.infoLocked(key)
	return &info
}

// ListSessions returns info for all sessions owned by a user. An empty
// userID lists every session.
func (m *Manager) ListSessions(userID string) []SessionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []SessionInfo{}
	for key := range m.sessions {
		if userID != "" {
			owner, _ := SplitKey(key)
			if owner == "" {
				owner = DefaultUserID
			}
			if owner != NormalizeUserID(userID) {
				continue
			}
		}
		out = append(out, m.infoLocked(key))
	}
	return out
}

// DeleteSession removes a session for a user.
func (m *Manager) DeleteSession(sessionID, userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return false
	}
	delete(m.sessions, key)
	m.persistLocked()
	slog.Info("Deleted session", "session_id", sessionID)
	return true
}

// ClearAllSessions drops every session and returns how many were removed.
func (m *Manager) ClearAllSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := len(m.sessions)
	m.sessions = map[string]*Session{}
	m.persistLocked()
	slog.Info("Cleared all sessions", "count", count)
	return count
}

// CleanupOldSessions removes sessions idle longer than maxAgeHours.
// Non-positive maxAgeHours disables time-based cleanup.
func (m *Manager) CleanupOldSessions(maxAgeHours int) int {
	if maxAgeHours <= 0 {
		return 0
	}
	cutoff := epochNow() - float64(maxAgeHours)*3600
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key, sess := range m.sessions {
		if sess.LastActivity < cutoff {
			delete(m.sessions, key)
			removed++
		}
	}
	if removed > 0 {
		m.persistLocked()
		slog.Info("Removed expired sessions", "count", removed)
	}
	return removed
}

// SetPendingConfirmation stores tool HITL state on a session.
func (m *Manager) SetPendingConfirmation(sessionID string, data map[string]any, userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return false
	}
	m.sessions[key].PendingConfirmation = data
	m.persistLocked()
	return true
}

// GetPendingConfirmation returns the current tool HITL state, or nil.
func (m *Manager) GetPendingConfirmation(sessionID, userID string) map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return nil
	}
	return m.sessions[key].PendingConfirmation
}

// ClearPendingConfirmation drops the tool HITL state for a session.
func (m *Manager) ClearPendingConfirmation(sessionID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return
	}
	m.sessions[key].PendingConfirmation = nil
	m.persistLocked()
}

// SetAgentType binds an agent type to a session.
func (m *Manager) SetAgentType(sessionID, agentType, userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return false
	}
	m.sessions[key].AgentType = agentType
	return true
}

// GetAgentType returns the agent type bound to a session, or "".
func (m *Manager) GetAgentType(sessionID, userID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.resolveKey(sessionID, userID)
	if !ok {
		return ""
	}
	return m.sessions[key].AgentType
}
