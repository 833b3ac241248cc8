// Package graph provides the layered memory graph store: typed nodes,
// weighted relations and the scoping rules that keep one user's memory
// invisible to another.
package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NodeType identifies what a memory node represents.
type NodeType string

const (
	NodeUser     NodeType = "User"
	NodeSession  NodeType = "Session"
	NodeMessage  NodeType = "Message"
	NodeEntity   NodeType = "Entity"
	NodeAction   NodeType = "Action"
	NodeTime     NodeType = "Time"
	NodeLocation NodeType = "Location"
	NodeConcept  NodeType = "Concept"
	NodeSummary  NodeType = "Summary"
)

// Relation identifies the semantics of an edge between two nodes.
type Relation string

const (
	RelOwnedBy       Relation = "OWNED_BY"
	RelPartOfSession Relation = "PART_OF_SESSION"
	RelFromMessage   Relation = "FROM_MESSAGE"
	RelSubjectOf     Relation = "SUBJECT_OF"
	RelObjectOf      Relation = "OBJECT_OF"
	RelActionOf      Relation = "ACTION_OF"
	RelAtTime        Relation = "AT_TIME"
	RelAtLocation    Relation = "AT_LOCATION"
	RelBelongsTo     Relation = "BELONGS_TO"
	RelSimilarTo     Relation = "SIMILAR_TO"
	RelSummarizes    Relation = "SUMMARIZES"
)

// Direction selects which edges Neighbors follows relative to the anchor node.
type Direction string

const (
	DirOut  Direction = "out"
	DirIn   Direction = "in"
	DirBoth Direction = "both"
)

// Memory layers. Hot holds raw per-turn facts, warm holds clustered
// concepts, cold holds session summaries.
const (
	LayerHot  = 0
	LayerWarm = 1
	LayerCold = 2
)

// ErrNotFound is returned when a node id does not exist in the store.
var ErrNotFound = errors.New("graph: node not found")

// Node is one vertex of the memory graph.
type Node struct {
	ID          string         `json:"id"`
	Type        NodeType       `json:"type"`
	Content     string         `json:"content"`
	Layer       int            `json:"layer"`
	Importance  float64        `json:"importance"`
	AccessCount int            `json:"access_count"`
	SessionID   string         `json:"session_id,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	Embedding   []float64      `json:"-"`
	Properties  map[string]any `json:"properties,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Edge is one typed relation between two nodes.
type Edge struct {
	Relation   Relation       `json:"relation"`
	SourceID   string         `json:"source_id"`
	TargetID   string         `json:"target_id"`
	Weight     float64        `json:"weight"`
	Properties map[string]any `json:"properties,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NodeOrder selects the sort applied by ListNodes.
type NodeOrder int

const (
	OrderNone NodeOrder = iota
	OrderCreatedAsc
	OrderCreatedDesc
	OrderImportanceDesc
)

// NodeQuery narrows ListNodes and CountNodes. Zero-value fields are
// ignored; Terms match when any term is a substring of the normalized
// node content.
type NodeQuery struct {
	SessionID string
	UserID    string
	Types     []NodeType
	Layer     *int
	Terms     []string
	Since     time.Time
	Order     NodeOrder
	Offset    int
	Limit     int
}

// Stats summarizes the graph for diagnostics.
type Stats struct {
	NodeCounts map[string]int `json:"node_counts"`
	TotalNodes int            `json:"total_nodes"`
	TotalEdges int            `json:"total_edges"`
}

// Store is the persistence surface for the memory graph. All content
// matching is done on normalized content (trimmed, lowercased), and
// MergeNode bumps access_count instead of duplicating when the id
// already exists.
type Store interface {
	// MergeNode inserts n, or, if a node with n.ID already exists,
	// increments its access count and leaves the rest untouched.
	// Returns the node id.
	MergeNode(ctx context.Context, n *Node) (string, error)

	// GetNode returns the node with the given id, or ErrNotFound.
	GetNode(ctx context.Context, id string) (*Node, error)

	// FindNodeByContent returns one node of type t whose normalized
	// content equals NormalizeContent(content), restricted by q's
	// scope fields (SessionID/UserID). Returns nil when no node
	// matches.
	FindNodeByContent(ctx context.Context, t NodeType, content string, q NodeQuery) (*Node, error)

	// DeleteNode removes the node and every edge touching it.
	DeleteNode(ctx context.Context, id string) error

	// MergeEdge inserts e, keyed on (source, relation, target); an
	// existing edge keeps its original weight and properties.
	MergeEdge(ctx context.Context, e *Edge) error

	// Neighbors returns nodes connected to id by rel in the given
	// direction. rel == "" matches any relation.
	Neighbors(ctx context.Context, id string, rel Relation, dir Direction) ([]*Node, error)

	// ListNodes returns nodes matching q.
	ListNodes(ctx context.Context, q NodeQuery) ([]*Node, error)

	// CountNodes returns the number of nodes matching q.
	CountNodes(ctx context.Context, q NodeQuery) (int, error)

	// UpdateImportance applies new importance values by node id.
	UpdateImportance(ctx context.Context, updates map[string]float64) error

	// SetEmbedding stores a computed embedding on the node.
	SetEmbedding(ctx context.Context, id string, embedding []float64) error

	// IncrementAccess bumps access_count on each listed node.
	IncrementAccess(ctx context.Context, ids []string) error

	// DeleteBelow detach-deletes up to limit nodes in the session
	// whose importance is below min, restricted to the given types.
	// Returns the number of nodes removed.
	DeleteBelow(ctx context.Context, sessionID string, min float64, types []NodeType, limit int) (int, error)

	// Export returns every node and edge belonging to the session.
	Export(ctx context.Context, sessionID string) ([]*Node, []*Edge, error)

	// Stats reports node counts per type and the total edge count.
	Stats(ctx context.Context) (*Stats, error)

	Close() error
}

// NormalizeContent is the canonical form used for content matching:
// trimmed and lowercased.
func NormalizeContent(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewNodeID returns a fresh node id of the form "<type>_<12 hex chars>".
func NewNodeID(t NodeType) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s", strings.ToLower(string(t)), raw[:12])
}

// NewEdgeID returns a fresh edge id.
func NewEdgeID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
