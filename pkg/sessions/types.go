// Package sessions implements the per-user chat session store with atomic
// turn commit semantics, bounded history, and disk-backed JSON persistence.
package sessions

import (
	"strings"
	"time"
)

// DefaultUserID is the user every legacy (unscoped) session belongs to.
const DefaultUserID = "default_user"

// sessionKeySep joins user id and session id into the canonical store key.
const sessionKeySep = "::"

// defaultTitle is the placeholder title before the first user message.
const defaultTitle = "New Chat"

// maxCompletedTurnIDs bounds the per-session committed-turn ledger.
const maxCompletedTurnIDs = 1000

// legacyEpochThreshold separates wall-clock epoch seconds from legacy
// monotonic-clock values mistakenly persisted by older versions. Anything
// below it is rewritten to the current time on load.
const legacyEpochThreshold = 1_000_000_000

// Message is one entry in a session's ordered history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PendingTurn records a begun but not yet committed turn.
type PendingTurn struct {
	UserRole    string  `json:"user_role"`
	UserContent string  `json:"user_content"`
	UserID      string  `json:"user_id"`
	StartedAt   float64 `json:"started_at"`
}

// Session is the persisted state of one conversation. Timestamps are Unix
// epoch seconds so frontends can render them directly.
type Session struct {
	CreatedAt           float64                 `json:"created_at"`
	LastActivity        float64                 `json:"last_activity"`
	Title               string                  `json:"title"`
	AgentType           string                  `json:"agent_type"`
	Messages            []Message               `json:"messages"`
	PendingConfirmation map[string]any          `json:"pending_confirmation,omitempty"`
	PendingTurns        map[string]*PendingTurn `json:"pending_turns,omitempty"`
	CompletedTurnIDs    []string                `json:"completed_turn_ids,omitempty"`
}

func newSession() *Session {
	now := epochNow()
	return &Session{
		CreatedAt:    now,
		LastActivity: now,
		Title:        defaultTitle,
		AgentType:    "default",
		Messages:     []Message{},
		PendingTurns: map[string]*PendingTurn{},
	}
}

// normalize repairs a session loaded from disk: nil maps become empty and
// legacy monotonic timestamps are rewritten to the current wall clock.
func (s *Session) normalize() {
	now := epochNow()
	if s.CreatedAt < legacyEpochThreshold {
		s.CreatedAt = now
	}
	if s.LastActivity < legacyEpochThreshold {
		s.LastActivity = now
	}
	if s.Title == "" {
		s.Title = defaultTitle
	}
	if s.AgentType == "" {
		s.AgentType = "default"
	}
	if s.Messages == nil {
		s.Messages = []Message{}
	}
	if s.PendingTurns == nil {
		s.PendingTurns = map[string]*PendingTurn{}
	}
}

func (s *Session) hasCompletedTurn(turnID string) bool {
	for _, id := range s.CompletedTurnIDs {
		if id == turnID {
			return true
		}
	}
	return false
}

func epochNow() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// NormalizeUserID trims a user id, falling back to DefaultUserID.
func NormalizeUserID(userID string) string {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return DefaultUserID
	}
	return uid
}

// ScopedKey builds the canonical "{user_id}::{session_id}" store key.
func ScopedKey(sessionID, userID string) string {
	return NormalizeUserID(userID) + sessionKeySep + sessionID
}

// SplitKey splits a store key into its owner and raw session id. Legacy
// unscoped keys return an empty owner.
func SplitKey(key string) (userID, sessionID string) {
	if idx := strings.Index(key, sessionKeySep); idx >= 0 {
		return key[:idx], key[idx+len(sessionKeySep):]
	}
	return "", key
}

// generateTitle derives a session title from the first user message:
// whitespace collapsed, truncated to 40 runes.
func generateTitle(text string) string {
	oneLine := strings.Join(strings.Fields(text), " ")
	if oneLine == "" {
		return defaultTitle
	}
	runes := []rune(oneLine)
	if len(runes) > 40 {
		return string(runes[:40]) + "..."
	}
	return oneLine
}
