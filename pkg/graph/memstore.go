package graph

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemStore is an in-memory Store. It backs the degraded mode used when
// no database is configured, and the package tests.
type MemStore struct {
	mu    sync.RWMutex
	nodes map[string]*Node
	order []string
	edges map[string]*Edge
}

// NewMemStore returns an empty in-memory graph store.
func NewMemStore() *MemStore {
	return &MemStore{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

func edgeKey(e *Edge) string {
	return e.SourceID + "|" + string(e.Relation) + "|" + e.TargetID
}

func cloneNode(n *Node) *Node {
	out := *n
	if n.Embedding != nil {
		out.Embedding = append([]float64(nil), n.Embedding...)
	}
	if n.Properties != nil {
		out.Properties = make(map[string]any, len(n.Properties))
		for k, v := range n.Properties {
			out.Properties[k] = v
		}
	}
	return &out
}

func cloneEdge(e *Edge) *Edge {
	out := *e
	if e.Properties != nil {
		out.Properties = make(map[string]any, len(e.Properties))
		for k, v := range e.Properties {
			out.Properties[k] = v
		}
	}
	return &out
}

func (m *MemStore) MergeNode(_ context.Context, n *Node) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.nodes[n.ID]; ok {
		existing.AccessCount++
		return existing.ID, nil
	}
	stored := cloneNode(n)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	m.nodes[stored.ID] = stored
	m.order = append(m.order, stored.ID)
	return stored.ID, nil
}

func (m *MemStore) GetNode(_ context.Context, id string) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneNode(n), nil
}

func (m *MemStore) FindNodeByContent(_ context.Context, t NodeType, content string, q NodeQuery) (*Node, error) {
	want := NormalizeContent(content)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		n := m.nodes[id]
		if n.Type != t {
			continue
		}
		if q.SessionID != "" && n.SessionID != q.SessionID {
			continue
		}
		if q.UserID != "" && n.UserID != q.UserID {
			continue
		}
		if NormalizeContent(n.Content) == want {
			return cloneNode(n), nil
		}
	}
	return nil, nil
}

func (m *MemStore) DeleteNode(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteNodeLocked(id)
	return nil
}

func (m *MemStore) deleteNodeLocked(id string) {
	if _, ok := m.nodes[id]; !ok {
		return
	}
	delete(m.nodes, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	for k, e := range m.edges {
		if e.SourceID == id || e.TargetID == id {
			delete(m.edges, k)
		}
	}
}

func (m *MemStore) MergeEdge(_ context.Context, e *Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := edgeKey(e)
	if _, ok := m.edges[key]; ok {
		return nil
	}
	stored := cloneEdge(e)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if stored.Weight == 0 {
		stored.Weight = 1.0
	}
	m.edges[key] = stored
	return nil
}

func (m *MemStore) Neighbors(_ context.Context, id string, rel Relation, dir Direction) ([]*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var out []*Node
	add := func(nodeID string) {
		if seen[nodeID] {
			return
		}
		if n, ok := m.nodes[nodeID]; ok {
			seen[nodeID] = true
			out = append(out, cloneNode(n))
		}
	}
	for _, e := range m.edges {
		if rel != "" && e.Relation != rel {
			continue
		}
		if (dir == DirOut || dir == DirBoth) && e.SourceID == id {
			add(e.TargetID)
		}
		if (dir == DirIn || dir == DirBoth) && e.TargetID == id {
			add(e.SourceID)
		}
	}
	return out, nil
}

func (m *MemStore) matchLocked(q NodeQuery) []*Node {
	var out []*Node
	for _, id := range m.order {
		n := m.nodes[id]
		if q.SessionID != "" && n.SessionID != q.SessionID {
			continue
		}
		if q.UserID != "" && n.UserID != q.UserID {
			continue
		}
		if len(q.Types) > 0 {
			found := false
			for _, t := range q.Types {
				if n.Type == t {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if q.Layer != nil && n.Layer != *q.Layer {
			continue
		}
		if !q.Since.IsZero() && n.CreatedAt.Before(q.Since) {
			continue
		}
		if len(q.Terms) > 0 {
			content := NormalizeContent(n.Content)
			found := false
			for _, term := range q.Terms {
				if term != "" && strings.Contains(content, NormalizeContent(term)) {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func (m *MemStore) ListNodes(_ context.Context, q NodeQuery) ([]*Node, error) {
	m.mu.RLock()
	matched := m.matchLocked(q)
	result := make([]*Node, 0, len(matched))
	for _, n := range matched {
		result = append(result, cloneNode(n))
	}
	m.mu.RUnlock()

	switch q.Order {
	case OrderCreatedAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	case OrderCreatedDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	case OrderImportanceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Importance > result[j].Importance })
	}
	if q.Offset > 0 {
		if q.Offset >= len(result) {
			return nil, nil
		}
		result = result[q.Offset:]
	}
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (m *MemStore) CountNodes(_ context.Context, q NodeQuery) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matchLocked(q)), nil
}

func (m *MemStore) UpdateImportance(_ context.Context, updates map[string]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, imp := range updates {
		if n, ok := m.nodes[id]; ok {
			n.Importance = imp
		}
	}
	return nil
}

func (m *MemStore) SetEmbedding(_ context.Context, id string, embedding []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[id]
	if !ok {
		return ErrNotFound
	}
	n.Embedding = append([]float64(nil), embedding...)
	return nil
}

func (m *MemStore) IncrementAccess(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if n, ok := m.nodes[id]; ok {
			n.AccessCount++
		}
	}
	return nil
}

func (m *MemStore) DeleteBelow(_ context.Context, sessionID string, min float64, types []NodeType, limit int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var victims []string
	for _, id := range m.order {
		n := m.nodes[id]
		if n.SessionID != sessionID || n.Importance >= min {
			continue
		}
		match := len(types) == 0
		for _, t := range types {
			if n.Type == t {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		victims = append(victims, id)
		if limit > 0 && len(victims) >= limit {
			break
		}
	}
	for _, id := range victims {
		m.deleteNodeLocked(id)
	}
	return len(victims), nil
}

func (m *MemStore) Export(_ context.Context, sessionID string) ([]*Node, []*Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inSession := make(map[string]bool)
	var nodes []*Node
	for _, id := range m.order {
		n := m.nodes[id]
		if n.SessionID == sessionID {
			inSession[n.ID] = true
			nodes = append(nodes, cloneNode(n))
		}
	}
	var edges []*Edge
	for _, e := range m.edges {
		if inSession[e.SourceID] || inSession[e.TargetID] {
			edges = append(edges, cloneEdge(e))
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edgeKey(edges[i]) < edgeKey(edges[j]) })
	return nodes, edges, nil
}

func (m *MemStore) Stats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := &Stats{NodeCounts: make(map[string]int)}
	for _, n := range m.nodes {
		s.NodeCounts[string(n.Type)]++
		s.TotalNodes++
	}
	s.TotalEdges = len(m.edges)
	return s, nil
}

func (m *MemStore) Close() error { return nil }
