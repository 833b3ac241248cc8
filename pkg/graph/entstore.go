package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/openconvo/gateway/ent"
	"github.com/openconvo/gateway/ent/memoryedge"
	"github.com/openconvo/gateway/ent/memorynode"
	"github.com/openconvo/gateway/ent/predicate"
)

// EntStore persists the memory graph through Ent on PostgreSQL.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an Ent client as a graph Store. The caller owns the
// client's underlying connection; Close here closes the Ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func toNode(row *ent.MemoryNode) *Node {
	return &Node{
		ID:          row.ID,
		Type:        NodeType(row.NodeType),
		Content:     row.Content,
		Layer:       row.Layer,
		Importance:  row.Importance,
		AccessCount: row.AccessCount,
		SessionID:   row.SessionID,
		UserID:      row.UserID,
		Embedding:   row.Embedding,
		Properties:  row.Properties,
		CreatedAt:   row.CreatedAt,
	}
}

func toEdge(row *ent.MemoryEdge) *Edge {
	return &Edge{
		Relation:   Relation(row.Relation),
		SourceID:   row.SourceID,
		TargetID:   row.TargetID,
		Weight:     row.Weight,
		Properties: row.Properties,
		CreatedAt:  row.CreatedAt,
	}
}

func (s *EntStore) MergeNode(ctx context.Context, n *Node) (string, error) {
	err := s.client.MemoryNode.UpdateOneID(n.ID).AddAccessCount(1).Exec(ctx)
	if err == nil {
		return n.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to merge node %s: %w", n.ID, err)
	}

	create := s.client.MemoryNode.Create().
		SetID(n.ID).
		SetNodeType(string(n.Type)).
		SetContent(n.Content).
		SetLayer(n.Layer).
		SetImportance(n.Importance).
		SetAccessCount(n.AccessCount).
		SetSessionID(n.SessionID).
		SetUserID(n.UserID)
	if n.Embedding != nil {
		create.SetEmbedding(n.Embedding)
	}
	if n.Properties != nil {
		create.SetProperties(n.Properties)
	}
	if !n.CreatedAt.IsZero() {
		create.SetCreatedAt(n.CreatedAt)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the node exists now.
			return n.ID, s.client.MemoryNode.UpdateOneID(n.ID).AddAccessCount(1).Exec(ctx)
		}
		return "", fmt.Errorf("failed to create node %s: %w", n.ID, err)
	}
	return n.ID, nil
}

func (s *EntStore) GetNode(ctx context.Context, id string) (*Node, error) {
	row, err := s.client.MemoryNode.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get node %s: %w", id, err)
	}
	return toNode(row), nil
}

func (s *EntStore) FindNodeByContent(ctx context.Context, t NodeType, content string, q NodeQuery) (*Node, error) {
	query := s.client.MemoryNode.Query().
		Where(
			memorynode.NodeType(string(t)),
			memorynode.ContentEqualFold(strings.TrimSpace(content)),
		)
	if q.SessionID != "" {
		query.Where(memorynode.SessionID(q.SessionID))
	}
	if q.UserID != "" {
		query.Where(memorynode.UserID(q.UserID))
	}
	row, err := query.Order(ent.Asc(memorynode.FieldCreatedAt)).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find node by content: %w", err)
	}
	return toNode(row), nil
}

func (s *EntStore) DeleteNode(ctx context.Context, id string) error {
	_, err := s.client.MemoryEdge.Delete().
		Where(memoryedge.Or(memoryedge.SourceID(id), memoryedge.TargetID(id))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to detach node %s: %w", id, err)
	}
	err = s.client.MemoryNode.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete node %s: %w", id, err)
	}
	return nil
}

func (s *EntStore) MergeEdge(ctx context.Context, e *Edge) error {
	weight := e.Weight
	if weight == 0 {
		weight = 1.0
	}
	create := s.client.MemoryEdge.Create().
		SetID(NewEdgeID()).
		SetRelation(string(e.Relation)).
		SetSourceID(e.SourceID).
		SetTargetID(e.TargetID).
		SetWeight(weight)
	if e.Properties != nil {
		create.SetProperties(e.Properties)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// The (source, relation, target) edge already exists.
			return nil
		}
		return fmt.Errorf("failed to create edge %s-%s->%s: %w", e.SourceID, e.Relation, e.TargetID, err)
	}
	return nil
}

func (s *EntStore) Neighbors(ctx context.Context, id string, rel Relation, dir Direction) ([]*Node, error) {
	var ids []string
	seen := make(map[string]bool)
	collect := func(edges []*ent.MemoryEdge, pickTarget bool) {
		for _, e := range edges {
			neighbor := e.SourceID
			if pickTarget {
				neighbor = e.TargetID
			}
			if !seen[neighbor] {
				seen[neighbor] = true
				ids = append(ids, neighbor)
			}
		}
	}

	if dir == DirOut || dir == DirBoth {
		query := s.client.MemoryEdge.Query().Where(memoryedge.SourceID(id))
		if rel != "" {
			query.Where(memoryedge.Relation(string(rel)))
		}
		edges, err := query.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query outgoing edges of %s: %w", id, err)
		}
		collect(edges, true)
	}
	if dir == DirIn || dir == DirBoth {
		query := s.client.MemoryEdge.Query().Where(memoryedge.TargetID(id))
		if rel != "" {
			query.Where(memoryedge.Relation(string(rel)))
		}
		edges, err := query.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query incoming edges of %s: %w", id, err)
		}
		collect(edges, false)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.client.MemoryNode.Query().Where(memorynode.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load neighbors of %s: %w", id, err)
	}
	nodes := make([]*Node, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, toNode(row))
	}
	return nodes, nil
}

func applyNodeQuery(query *ent.MemoryNodeQuery, q NodeQuery) *ent.MemoryNodeQuery {
	if q.SessionID != "" {
		query.Where(memorynode.SessionID(q.SessionID))
	}
	if q.UserID != "" {
		query.Where(memorynode.UserID(q.UserID))
	}
	if len(q.Types) > 0 {
		types := make([]string, len(q.Types))
		for i, t := range q.Types {
			types[i] = string(t)
		}
		query.Where(memorynode.NodeTypeIn(types...))
	}
	if q.Layer != nil {
		query.Where(memorynode.Layer(*q.Layer))
	}
	if !q.Since.IsZero() {
		query.Where(memorynode.CreatedAtGTE(q.Since))
	}
	if len(q.Terms) > 0 {
		preds := make([]predicate.MemoryNode, 0, len(q.Terms))
		for _, term := range q.Terms {
			if term == "" {
				continue
			}
			preds = append(preds, memorynode.ContentContainsFold(term))
		}
		if len(preds) > 0 {
			query.Where(memorynode.Or(preds...))
		}
	}
	return query
}

func (s *EntStore) ListNodes(ctx context.Context, q NodeQuery) ([]*Node, error) {
	query := applyNodeQuery(s.client.MemoryNode.Query(), q)
	switch q.Order {
	case OrderCreatedAsc:
		query.Order(ent.Asc(memorynode.FieldCreatedAt))
	case OrderCreatedDesc:
		query.Order(ent.Desc(memorynode.FieldCreatedAt))
	case OrderImportanceDesc:
		query.Order(ent.Desc(memorynode.FieldImportance))
	}
	if q.Offset > 0 {
		query.Offset(q.Offset)
	}
	if q.Limit > 0 {
		query.Limit(q.Limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	nodes := make([]*Node, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, toNode(row))
	}
	return nodes, nil
}

func (s *EntStore) CountNodes(ctx context.Context, q NodeQuery) (int, error) {
	count, err := applyNodeQuery(s.client.MemoryNode.Query(), q).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count nodes: %w", err)
	}
	return count, nil
}

func (s *EntStore) UpdateImportance(ctx context.Context, updates map[string]float64) error {
	for id, imp := range updates {
		err := s.client.MemoryNode.UpdateOneID(id).SetImportance(imp).Exec(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to update importance of %s: %w", id, err)
		}
	}
	return nil
}

func (s *EntStore) SetEmbedding(ctx context.Context, id string, embedding []float64) error {
	err := s.client.MemoryNode.UpdateOneID(id).SetEmbedding(embedding).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set embedding on %s: %w", id, err)
	}
	return nil
}

func (s *EntStore) IncrementAccess(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.client.MemoryNode.Update().
		Where(memorynode.IDIn(ids...)).
		AddAccessCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment access counts: %w", err)
	}
	return nil
}

func (s *EntStore) DeleteBelow(ctx context.Context, sessionID string, min float64, types []NodeType, limit int) (int, error) {
	query := s.client.MemoryNode.Query().
		Where(
			memorynode.SessionID(sessionID),
			memorynode.ImportanceLT(min),
		)
	if len(types) > 0 {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		query.Where(memorynode.NodeTypeIn(names...))
	}
	if limit > 0 {
		query.Limit(limit)
	}
	ids, err := query.IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find low-importance nodes: %w", err)
	}
	for _, id := range ids {
		if err := s.DeleteNode(ctx, id); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

func (s *EntStore) Export(ctx context.Context, sessionID string) ([]*Node, []*Edge, error) {
	rows, err := s.client.MemoryNode.Query().
		Where(memorynode.SessionID(sessionID)).
		Order(ent.Asc(memorynode.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to export session nodes: %w", err)
	}
	ids := make([]string, 0, len(rows))
	nodes := make([]*Node, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
		nodes = append(nodes, toNode(row))
	}
	var edges []*Edge
	if len(ids) > 0 {
		edgeRows, err := s.client.MemoryEdge.Query().
			Where(memoryedge.Or(memoryedge.SourceIDIn(ids...), memoryedge.TargetIDIn(ids...))).
			All(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to export session edges: %w", err)
		}
		for _, row := range edgeRows {
			edges = append(edges, toEdge(row))
		}
	}
	return nodes, edges, nil
}

func (s *EntStore) Stats(ctx context.Context) (*Stats, error) {
	var rows []struct {
		NodeType string `json:"node_type"`
		Count    int    `json:"count"`
	}
	err := s.client.MemoryNode.Query().
		GroupBy(memorynode.FieldNodeType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count nodes: %w", err)
	}
	stats := &Stats{NodeCounts: make(map[string]int, len(rows))}
	for _, row := range rows {
		stats.NodeCounts[row.NodeType] = row.Count
		stats.TotalNodes += row.Count
	}
	stats.TotalEdges, err = s.client.MemoryEdge.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count edges: %w", err)
	}
	return stats, nil
}

func (s *EntStore) Close() error {
	return s.client.Close()
}
