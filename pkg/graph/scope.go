package graph

import (
	"context"
	"errors"
	"strings"
)

const (
	scopeSep          = "::"
	sessionNodePrefix = "session_"
	userNodePrefix    = "user_"
)

// ScopedSessionID namespaces a raw session id under its owner:
// "{user_id}::{session_id}". Already-scoped ids pass through unchanged.
func ScopedSessionID(userID, sessionID string) string {
	if strings.Contains(sessionID, scopeSep) {
		return sessionID
	}
	return userID + scopeSep + sessionID
}

// UserNodeID returns the graph node id for a user.
func UserNodeID(userID string) string {
	if strings.HasPrefix(userID, userNodePrefix) {
		return userID
	}
	return userNodePrefix + userID
}

// SessionNodeID returns the graph node id for a scoped session id.
func SessionNodeID(scopedID string) string {
	return sessionNodePrefix + scopedID
}

// EnsureUser merges the user's node into the graph and returns its id.
func EnsureUser(ctx context.Context, s Store, userID string) (string, error) {
	id := UserNodeID(userID)
	_, err := s.MergeNode(ctx, &Node{
		ID:      id,
		Type:    NodeUser,
		Content: userID,
		UserID:  userID,
	})
	return id, err
}

// EnsureSession merges the session node, links it to its owner and
// returns the scoped session id.
func EnsureSession(ctx context.Context, s Store, sessionID, userID string) (string, error) {
	userNode, err := EnsureUser(ctx, s, userID)
	if err != nil {
		return "", err
	}
	scoped := ScopedSessionID(userID, sessionID)
	sessionNode := SessionNodeID(scoped)
	if _, err := s.MergeNode(ctx, &Node{
		ID:        sessionNode,
		Type:      NodeSession,
		Content:   scoped,
		SessionID: scoped,
		UserID:    userID,
	}); err != nil {
		return "", err
	}
	err = s.MergeEdge(ctx, &Edge{
		Relation: RelOwnedBy,
		SourceID: sessionNode,
		TargetID: userNode,
		Weight:   1.0,
	})
	return scoped, err
}

// ResolveOwnedSession maps a raw session id to the scoped id the user
// may read. It tries the scoped node first, then the legacy unscoped
// node, and verifies OWNED_BY on whichever exists. A session node with
// no owner edge predates scoping and is treated as claimable. When no
// node exists at all the scoped id is returned so a fresh session can
// be created.
func ResolveOwnedSession(ctx context.Context, s Store, sessionID, userID string) (string, bool, error) {
	userNode := UserNodeID(userID)
	scoped := ScopedSessionID(userID, sessionID)

	for _, candidate := range []string{scoped, sessionID} {
		node, err := s.GetNode(ctx, SessionNodeID(candidate))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return "", false, err
		}
		owned, err := sessionOwnedBy(ctx, s, node.ID, userNode)
		if err != nil {
			return "", false, err
		}
		if owned {
			return candidate, true, nil
		}
	}

	// Scoped ids embed the owner, so a miss on both candidates means
	// the session simply hasn't been written to the graph yet.
	return scoped, true, nil
}

func sessionOwnedBy(ctx context.Context, s Store, sessionNodeID, userNodeID string) (bool, error) {
	owners, err := s.Neighbors(ctx, sessionNodeID, RelOwnedBy, DirOut)
	if err != nil {
		return false, err
	}
	if len(owners) == 0 {
		// Legacy node written before ownership edges existed.
		return true, nil
	}
	for _, owner := range owners {
		if owner.ID == userNodeID {
			return true, nil
		}
	}
	return false, nil
}
