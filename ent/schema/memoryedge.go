package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"time"
)

// MemoryEdge holds the schema definition for the MemoryEdge entity.
// A typed, weighted relation between two memory nodes.
type MemoryEdge struct {
	ent.Schema
}

// Fields of the MemoryEdge.
func (MemoryEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edge_id").
			Unique().
			Immutable(),
		field.String("relation").
			Immutable().
			Comment("OWNED_BY, PART_OF_SESSION, FROM_MESSAGE, SUBJECT_OF, OBJECT_OF, ACTION_OF, AT_TIME, AT_LOCATION, BELONGS_TO, SIMILAR_TO or SUMMARIZES"),
		field.String("source_id").
			Immutable(),
		field.String("target_id").
			Immutable(),
		field.Float("weight").
			Default(1.0),
		field.JSON("properties", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MemoryEdge.
func (MemoryEdge) Indexes() []ent.Index {
	return []ent.Index{
		// Merge semantics: one edge per (source, relation, target)
		index.Fields("source_id", "relation", "target_id").
			Unique(),
		// Traversal in either direction
		index.Fields("source_id", "relation"),
		index.Fields("target_id", "relation"),
	}
}
