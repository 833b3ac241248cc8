package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/graph"
)

// WarmLayer clusters a session's layer-0 entities into Concept nodes by
// density over their embedding vectors.
type WarmLayer struct {
	store    graph.Store
	embedder Embedder
	cfg      config.WarmLayerConfig
	logger   *slog.Logger
}

// NewWarmLayer returns a warm-layer manager. embedder may be nil, in
// which case clustering only runs over entities that already carry
// cached embeddings.
func NewWarmLayer(store graph.Store, embedder Embedder, cfg config.WarmLayerConfig, logger *slog.Logger) *WarmLayer {
	return &WarmLayer{store: store, embedder: embedder, cfg: cfg, logger: logger}
}

// ClusterSession groups the session's entities into topic concepts.
// Returns the number of Concept nodes created or linked.
func (w *WarmLayer) ClusterSession(ctx context.Context, scoped string) (int, error) {
	hot := graph.LayerHot
	entities, err := w.store.ListNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeEntity},
		Layer:     &hot,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to load session entities: %w", err)
	}
	if len(entities) < w.cfg.MinClusterSize {
		w.logger.Debug("not enough entities for clustering",
			"session_id", scoped, "entities", len(entities), "min", w.cfg.MinClusterSize)
		return 0, nil
	}

	vectors, usable, err := w.resolveEmbeddings(ctx, entities)
	if err != nil {
		return 0, err
	}
	if len(usable) < w.cfg.MinClusterSize {
		return 0, nil
	}

	eps := 1 - w.cfg.ClusteringThreshold
	labels := dbscan(vectors, eps, w.cfg.MinClusterSize)

	clusters := make(map[int][]*graph.Node)
	for i, label := range labels {
		if label < 0 {
			continue
		}
		clusters[label] = append(clusters[label], usable[i])
	}

	created := 0
	for _, members := range clusters {
		if created >= w.cfg.MaxConcepts {
			break
		}
		ok, err := w.createConcept(ctx, scoped, members)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		w.logger.Info("warm-layer clustering complete", "session_id", scoped, "concepts", created)
	}
	return created, nil
}

// resolveEmbeddings reads cached embeddings off the nodes, computing and
// persisting the missing ones in one batch.
func (w *WarmLayer) resolveEmbeddings(ctx context.Context, entities []*graph.Node) ([][]float64, []*graph.Node, error) {
	var missing []*graph.Node
	for _, e := range entities {
		if len(e.Embedding) == 0 {
			missing = append(missing, e)
		}
	}

	if len(missing) > 0 && w.embedder != nil {
		texts := make([]string, len(missing))
		for i, e := range missing {
			texts[i] = e.Content
		}
		computed, err := w.embedder.Embed(ctx, texts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute embeddings: %w", err)
		}
		for i, e := range missing {
			if i >= len(computed) {
				break
			}
			e.Embedding = computed[i]
			if err := w.store.SetEmbedding(ctx, e.ID, computed[i]); err != nil {
				w.logger.Warn("failed to cache embedding", "node_id", e.ID, "error", err)
			}
		}
	}

	var vectors [][]float64
	var usable []*graph.Node
	for _, e := range entities {
		if len(e.Embedding) == 0 {
			continue
		}
		v := append([]float64(nil), e.Embedding...)
		l2Normalize(v)
		vectors = append(vectors, v)
		usable = append(usable, e)
	}
	return vectors, usable, nil
}

// createConcept builds the topic label from the cluster's top entities
// and links every member, reusing an existing concept when one matches
// by keyword.
func (w *WarmLayer) createConcept(ctx context.Context, scoped string, members []*graph.Node) (bool, error) {
	topic := topicLabel(members)
	if topic == "" {
		return false, nil
	}

	conceptID, err := w.findConceptByKeyword(ctx, scoped, members)
	if err != nil {
		return false, err
	}
	if conceptID == "" {
		node := members[0]
		conceptID = graph.NewNodeID(graph.NodeConcept)
		if _, err := w.store.MergeNode(ctx, &graph.Node{
			ID:         conceptID,
			Type:       graph.NodeConcept,
			Content:    topic,
			Layer:      graph.LayerWarm,
			Importance: 0.7,
			SessionID:  scoped,
			UserID:     node.UserID,
			Properties: map[string]any{"entity_count": len(members)},
		}); err != nil {
			return false, fmt.Errorf("failed to create concept node: %w", err)
		}
		if err := w.store.MergeEdge(ctx, &graph.Edge{
			Relation: graph.RelPartOfSession,
			SourceID: conceptID,
			TargetID: graph.SessionNodeID(scoped),
			Weight:   1.0,
		}); err != nil {
			return false, fmt.Errorf("failed to link concept to session: %w", err)
		}
	}

	for _, member := range members {
		if err := w.store.MergeEdge(ctx, &graph.Edge{
			Relation: graph.RelBelongsTo,
			SourceID: member.ID,
			TargetID: conceptID,
			Weight:   0.8,
		}); err != nil {
			return false, fmt.Errorf("failed to link entity to concept: %w", err)
		}
	}
	return true, nil
}

// topicLabel is "Topic: " plus the top three member contents by
// importance.
func topicLabel(members []*graph.Node) string {
	sorted := append([]*graph.Node(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Importance > sorted[j].Importance })

	var tops []string
	for i, m := range sorted {
		if i >= 3 {
			break
		}
		if m.Content != "" {
			tops = append(tops, m.Content)
		}
	}
	if len(tops) == 0 {
		return ""
	}
	return "Topic: " + strings.Join(tops, ", ")
}

// findConceptByKeyword reuses an existing session concept when any of
// the cluster's top entities appears in its content.
func (w *WarmLayer) findConceptByKeyword(ctx context.Context, scoped string, members []*graph.Node) (string, error) {
	var terms []string
	for i, m := range members {
		if i >= 3 {
			break
		}
		if m.Content != "" {
			terms = append(terms, m.Content)
		}
	}
	if len(terms) == 0 {
		return "", nil
	}
	concepts, err := w.store.ListNodes(ctx, graph.NodeQuery{
		SessionID: scoped,
		Types:     []graph.NodeType{graph.NodeConcept},
		Terms:     terms,
		Limit:     1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to search existing concepts: %w", err)
	}
	if len(concepts) == 0 {
		return "", nil
	}
	return concepts[0].ID, nil
}
