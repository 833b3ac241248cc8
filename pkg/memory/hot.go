package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openconvo/gateway/pkg/graph"
)

// HotLayer writes layer-0 memory: one Message node per stored message
// plus the Entity/Action/Time/Location nodes extracted from it.
type HotLayer struct {
	store     graph.Store
	extractor Extractor
	logger    *slog.Logger
}

// NewHotLayer returns a hot-layer writer over the given store.
func NewHotLayer(store graph.Store, extractor Extractor, logger *slog.Logger) *HotLayer {
	return &HotLayer{store: store, extractor: extractor, logger: logger}
}

// WriteStats counts what one message produced in the graph.
type WriteStats struct {
	MessageID     string `json:"message_id"`
	FactCount     int    `json:"fact_count"`
	EntityCount   int    `json:"entity_count"`
	TimeNodes     int    `json:"time_nodes"`
	LocationNodes int    `json:"location_nodes"`
}

// AddMessage extracts facts from a message and stores them, ensuring the
// user and session nodes exist first. Returns per-message write stats.
func (h *HotLayer) AddMessage(ctx context.Context, sessionID, role, content, userID string, metadata map[string]any) (*WriteStats, error) {
	scoped, err := graph.EnsureSession(ctx, h.store, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure session node: %w", err)
	}

	extraction, err := h.extractor.Extract(ctx, role, content)
	if err != nil {
		h.logger.Warn("fact extraction failed, storing bare message",
			"session_id", scoped, "error", err)
		extraction = &ExtractionResult{Intent: "unknown", EmotionPrimary: "neutral"}
	}

	messageID, err := h.createMessageNode(ctx, scoped, role, content, userID, extraction, metadata)
	if err != nil {
		return nil, err
	}

	stats := &WriteStats{MessageID: messageID}
	for _, fact := range extraction.Tuples {
		if err := h.storeFactTuple(ctx, scoped, userID, fact, messageID); err != nil {
			return nil, err
		}
		stats.FactCount++
	}
	for _, entity := range extraction.Entities {
		id, err := h.attachLeafNode(ctx, scoped, userID, graph.NodeEntity, entity, 0.6, 0.8, messageID)
		if err != nil {
			return nil, err
		}
		if id != "" {
			stats.EntityCount++
		}
	}
	for _, expr := range extraction.TimeExpressions {
		id, err := h.attachLeafNode(ctx, scoped, userID, graph.NodeTime, expr, 0.5, 0.7, messageID)
		if err != nil {
			return nil, err
		}
		if id != "" {
			stats.TimeNodes++
		}
	}
	for _, loc := range extraction.Locations {
		id, err := h.attachLeafNode(ctx, scoped, userID, graph.NodeLocation, loc, 0.6, 0.7, messageID)
		if err != nil {
			return nil, err
		}
		if id != "" {
			stats.LocationNodes++
		}
	}

	h.logger.Info("memory write completed",
		"session_id", scoped,
		"message_id", messageID,
		"facts", stats.FactCount,
		"entities", stats.EntityCount)
	return stats, nil
}

func (h *HotLayer) createMessageNode(ctx context.Context, scoped, role, content, userID string, extraction *ExtractionResult, metadata map[string]any) (string, error) {
	importance := 0.6
	if role == "user" {
		importance = 0.7
	}

	props := map[string]any{
		"role":     role,
		"intent":   extraction.Intent,
		"emotion":  extraction.EmotionPrimary,
		"keywords": extraction.Keywords,
	}
	for k, v := range metadata {
		props[k] = v
	}

	messageID := graph.NewNodeID(graph.NodeMessage)
	if _, err := h.store.MergeNode(ctx, &graph.Node{
		ID:         messageID,
		Type:       graph.NodeMessage,
		Content:    content,
		Layer:      graph.LayerHot,
		Importance: importance,
		SessionID:  scoped,
		UserID:     userID,
		Properties: props,
	}); err != nil {
		return "", fmt.Errorf("failed to create message node: %w", err)
	}

	err := h.store.MergeEdge(ctx, &graph.Edge{
		Relation: graph.RelPartOfSession,
		SourceID: messageID,
		TargetID: graph.SessionNodeID(scoped),
		Weight:   1.0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to link message to session: %w", err)
	}
	return messageID, nil
}

// storeFactTuple persists one subject-predicate-object fact: entity and
// action nodes are reused by normalized content within the user's scope.
func (h *HotLayer) storeFactTuple(ctx context.Context, scoped, userID string, fact FactTuple, messageID string) error {
	subjectID, err := h.findOrCreate(ctx, scoped, userID, graph.NodeEntity, fact.Subject, fact.Confidence)
	if err != nil || subjectID == "" {
		return err
	}
	actionID, err := h.findOrCreate(ctx, scoped, userID, graph.NodeAction, fact.Predicate, fact.Confidence)
	if err != nil || actionID == "" {
		return err
	}
	objectID, err := h.findOrCreate(ctx, scoped, userID, graph.NodeEntity, fact.Object, fact.Confidence)
	if err != nil || objectID == "" {
		return err
	}

	edges := []*graph.Edge{
		{Relation: graph.RelSubjectOf, SourceID: subjectID, TargetID: actionID, Weight: fact.Confidence},
		{Relation: graph.RelObjectOf, SourceID: actionID, TargetID: objectID, Weight: fact.Confidence},
		{Relation: graph.RelFromMessage, SourceID: actionID, TargetID: messageID, Weight: 1.0},
	}
	for _, e := range edges {
		if err := h.store.MergeEdge(ctx, e); err != nil {
			return fmt.Errorf("failed to store fact edge: %w", err)
		}
	}

	if fact.Time != "" {
		timeID, err := h.attachLeafNode(ctx, scoped, userID, graph.NodeTime, fact.Time, 0.5, 0.7, messageID)
		if err != nil {
			return err
		}
		if timeID != "" {
			if err := h.store.MergeEdge(ctx, &graph.Edge{
				Relation: graph.RelAtTime, SourceID: actionID, TargetID: timeID, Weight: fact.Confidence,
			}); err != nil {
				return err
			}
		}
	}
	if fact.Location != "" {
		locationID, err := h.attachLeafNode(ctx, scoped, userID, graph.NodeLocation, fact.Location, 0.6, 0.7, messageID)
		if err != nil {
			return err
		}
		if locationID != "" {
			if err := h.store.MergeEdge(ctx, &graph.Edge{
				Relation: graph.RelAtLocation, SourceID: actionID, TargetID: locationID, Weight: fact.Confidence,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// attachLeafNode reuses or creates a leaf node by normalized content and
// links it to its source message.
func (h *HotLayer) attachLeafNode(ctx context.Context, scoped, userID string, t graph.NodeType, content string, importance, edgeWeight float64, messageID string) (string, error) {
	id, err := h.findOrCreate(ctx, scoped, userID, t, content, importance)
	if err != nil || id == "" {
		return "", err
	}
	err = h.store.MergeEdge(ctx, &graph.Edge{
		Relation: graph.RelFromMessage,
		SourceID: id,
		TargetID: messageID,
		Weight:   edgeWeight,
	})
	if err != nil {
		return "", fmt.Errorf("failed to link %s node to message: %w", t, err)
	}
	return id, nil
}

func (h *HotLayer) findOrCreate(ctx context.Context, scoped, userID string, t graph.NodeType, content string, importance float64) (string, error) {
	normalized := graph.NormalizeContent(content)
	if normalized == "" {
		return "", nil
	}

	existing, err := h.store.FindNodeByContent(ctx, t, normalized, graph.NodeQuery{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("failed to look up %s node: %w", t, err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	id := graph.NewNodeID(t)
	if _, err := h.store.MergeNode(ctx, &graph.Node{
		ID:         id,
		Type:       t,
		Content:    normalized,
		Layer:      graph.LayerHot,
		Importance: importance,
		SessionID:  scoped,
		UserID:     userID,
	}); err != nil {
		return "", fmt.Errorf("failed to create %s node: %w", t, err)
	}
	return id, nil
}
