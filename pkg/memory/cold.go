package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

// ColdLayer compresses a session's message history into layer-2 Summary
// nodes through the summary model.
type ColdLayer struct {
	store     graph.Store
	completer Completer
	cfg       config.ColdLayerConfig
	logger    *slog.Logger
}

// NewColdLayer returns a cold-layer manager.
func NewColdLayer(store graph.Store, completer Completer, cfg config.ColdLayerConfig, logger *slog.Logger) *ColdLayer {
	return &ColdLayer{store: store, completer: completer, cfg: cfg, logger: logger}
}

// ShouldCreateSummary reports whether the session has accumulated enough
// new messages to warrant a (new) summary.
func (c *ColdLayer) ShouldCreateSummary(ctx context.Context, scoped string) (bool, error) {
	total, err := c.countMessages(ctx, scoped)
	if err != nil {
		return false, err
	}
	if total < c.cfg.CompressionThreshold {
		return false, nil
	}

	latest, err := c.latestSummary(ctx, scoped)
	if err != nil {
		return false, err
	}
	if latest == nil {
		return true, nil
	}
	newMessages := total - summarizedCount(latest)
	return newMessages >= c.cfg.CompressionThreshold/2, nil
}

// SummarizeSession creates a full summary of the session. Returns the
// summary node id, or "" when there was nothing to summarize.
func (c *ColdLayer) SummarizeSession(ctx context.Context, scoped string) (string, error) {
	return c.summarize(ctx, scoped, 0, "")
}

// CreateIncrementalSummary summarizes only the messages added since the
// latest summary, carrying the previous summary as context.
func (c *ColdLayer) CreateIncrementalSummary(ctx context.Context, scoped string) (string, error) {
	latest, err := c.latestSummary(ctx, scoped)
	if err != nil {
		return "", err
	}
	if latest == nil {
		return c.SummarizeSession(ctx, scoped)
	}
	return c.summarize(ctx, scoped, summarizedCount(latest), latest.Content)
}

func (c *ColdLayer) summarize(ctx context.Context, scoped string, skip int, previousSummary string) (string, error) {
	messages, err := c.sessionMessages(ctx, scoped, skip)
	if err != nil {
		return "", err
	}
	if len(messages) < 5 {
		c.logger.Debug("not enough new messages for summary",
			"session_id", scoped, "new_messages", len(messages))
		return "", nil
	}

	concepts, err := c.topConcepts(ctx, scoped)
	if err != nil {
		return "", err
	}

	text, err := c.generateSummary(ctx, messages, concepts, previousSummary)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	totalCount := skip + len(messages)
	summaryID := graph.NewNodeID(graph.NodeSummary)
	node := &graph.Node{
		ID:         summaryID,
		Type:       graph.NodeSummary,
		Content:    text,
		Layer:      graph.LayerCold,
		Importance: 0.9,
		SessionID:  scoped,
		UserID:     userFromScoped(scoped),
		Properties: map[string]any{
			"session_id":    scoped,
			"message_count": totalCount,
		},
	}
	if _, err := c.store.MergeNode(ctx, node); err != nil {
		return "", fmt.Errorf("failed to create summary node: %w", err)
	}
	err = c.store.MergeEdge(ctx, &graph.Edge{
		Relation: graph.RelSummarizes,
		SourceID: summaryID,
		TargetID: graph.SessionNodeID(scoped),
		Weight:   1.0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to link summary to session: %w", err)
	}

	c.logger.Info("cold-layer summary created",
		"session_id", scoped, "summary_id", summaryID, "message_count", totalCount)
	return summaryID, nil
}

func (c *ColdLayer) generateSummary(ctx context.Context, messages []*graph.Node, concepts []string, previousSummary string) (string, error) {
	var b strings.Builder
	if previousSummary != "" {
		b.WriteString("Here is the previous dialog summary:\n")
		b.WriteString(previousSummary)
		b.WriteString("\n\n")
	}
	if len(concepts) > 0 {
		b.WriteString("Topic concepts from this session:\n")
		b.WriteString(strings.Join(concepts, " | "))
		b.WriteString("\n\n")
	}
	b.WriteString("Conversation:\n")
	for _, m := range messages {
		role := "unknown"
		if r, ok := m.Properties["role"].(string); ok {
			role = r
		}
		fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&b,
		"\nCreate a compact long-term memory summary of this session. "+
			"Prioritize stable facts, user goals, preferences and identity, then "+
			"decisions and pending actions. Keep it under %d characters.",
		c.cfg.MaxSummaryLength)

	text, err := c.completer.Complete(ctx, CompleteRequest{
		System:      "You are a concise memory summarization assistant.",
		User:        b.String(),
		Temperature: 0.3,
		MaxTokens:   2 * c.cfg.MaxSummaryLength,
	})
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (c *ColdLayer) sessionMessages(ctx context.Context, scoped string, skip int) ([]*graph.Node, error) {
	hot := graph.LayerHot
	messages, err := c.store.ListNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeMessage},
		Layer:     &hot,
		Order:     graph.OrderCreatedAsc,
		Offset:    skip,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load session messages: %w", err)
	}
	return messages, nil
}

func (c *ColdLayer) countMessages(ctx context.Context, scoped string) (int, error) {
	hot := graph.LayerHot
	count, err := c.store.CountNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeMessage},
		Layer:     &hot,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count session messages: %w", err)
	}
	return count, nil
}

func (c *ColdLayer) topConcepts(ctx context.Context, scoped string) ([]string, error) {
	nodes, err := c.store.ListNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeConcept},
		Order:     graph.OrderImportanceDesc,
		Limit:     10,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load session concepts: %w", err)
	}
	contents := make([]string, 0, len(nodes))
	for _, n := range nodes {
		contents = append(contents, n.Content)
	}
	return contents, nil
}

func (c *ColdLayer) latestSummary(ctx context.Context, scoped string) (*graph.Node, error) {
	nodes, err := c.store.ListNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeSummary},
		Order:     graph.OrderCreatedDesc,
		Limit:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load latest summary: %w", err)
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// summarizedCount reads message_count off a summary node, tolerating the
// float64 shape JSON properties come back as.
func summarizedCount(summary *graph.Node) int {
	switch v := summary.Properties["message_count"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func userFromScoped(scoped string) string {
	if idx := strings.Index(scoped, "::"); idx >= 0 {
		return scoped[:idx]
	}
	return ""
}
