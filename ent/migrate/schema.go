// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MemoryEdgesColumns holds the columns for the "memory_edges" table.
	MemoryEdgesColumns = []*schema.Column{
		{Name: "edge_id", Type: field.TypeString, Unique: true},
		{Name: "relation", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MemoryEdgesTable holds the schema information for the "memory_edges" table.
	MemoryEdgesTable = &schema.Table{
		Name:       "memory_edges",
		Columns:    MemoryEdgesColumns,
		PrimaryKey: []*schema.Column{MemoryEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryedge_source_id_relation_target_id",
				Unique:  true,
				Columns: []*schema.Column{MemoryEdgesColumns[2], MemoryEdgesColumns[1], MemoryEdgesColumns[3]},
			},
			{
				Name:    "memoryedge_source_id_relation",
				Unique:  false,
				Columns: []*schema.Column{MemoryEdgesColumns[2], MemoryEdgesColumns[1]},
			},
			{
				Name:    "memoryedge_target_id_relation",
				Unique:  false,
				Columns: []*schema.Column{MemoryEdgesColumns[3], MemoryEdgesColumns[1]},
			},
		},
	}
	// MemoryNodesColumns holds the columns for the "memory_nodes" table.
	MemoryNodesColumns = []*schema.Column{
		{Name: "node_id", Type: field.TypeString, Unique: true},
		{Name: "node_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "layer", Type: field.TypeInt, Default: 0},
		{Name: "importance", Type: field.TypeFloat64, Default: 0.5},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "properties", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MemoryNodesTable holds the schema information for the "memory_nodes" table.
	MemoryNodesTable = &schema.Table{
		Name:       "memory_nodes",
		Columns:    MemoryNodesColumns,
		PrimaryKey: []*schema.Column{MemoryNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memorynode_node_type_content",
				Unique:  false,
				Columns: []*schema.Column{MemoryNodesColumns[1], MemoryNodesColumns[2]},
			},
			{
				Name:    "memorynode_session_id_layer",
				Unique:  false,
				Columns: []*schema.Column{MemoryNodesColumns[6], MemoryNodesColumns[3]},
			},
			{
				Name:    "memorynode_user_id_node_type",
				Unique:  false,
				Columns: []*schema.Column{MemoryNodesColumns[7], MemoryNodesColumns[1]},
			},
			{
				Name:    "memorynode_importance",
				Unique:  false,
				Columns: []*schema.Column{MemoryNodesColumns[4]},
			},
			{
				Name:    "memorynode_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryNodesColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MemoryEdgesTable,
		MemoryNodesTable,
	}
)

func init() {
}
