package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"time"
)

// MemoryNode holds the schema definition for the MemoryNode entity.
// One node in the layered memory graph: entities, actions, messages,
// concepts and summaries all share this shape.
type MemoryNode struct {
	ent.Schema
}

// Fields of the MemoryNode.
func (MemoryNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("node_id").
			Unique().
			Immutable(),
		field.String("node_type").
			Immutable().
			Comment("User, Session, Message, Entity, Action, Time, Location, Concept or Summary"),
		field.Text("content"),
		field.Int("layer").
			Default(0).
			Comment("0=hot, 1=warm, 2=cold"),
		field.Float("importance").
			Default(0.5),
		field.Int("access_count").
			Default(0),
		field.String("session_id").
			Optional().
			Comment("Scoped session the node belongs to, empty for user/global nodes"),
		field.String("user_id").
			Optional(),
		field.JSON("embedding", []float64{}).
			Optional(),
		field.JSON("properties", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MemoryNode.
func (MemoryNode) Indexes() []ent.Index {
	return []ent.Index{
		// Content dedupe lookup
		index.Fields("node_type", "content"),
		// Session-scoped queries (recall, clustering, cleanup)
		index.Fields("session_id", "layer"),
		// Cross-session user queries
		index.Fields("user_id", "node_type"),
		// Forgetting sweeps
		index.Fields("importance"),
		index.Fields("created_at"),
	}
}
