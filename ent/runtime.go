// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openconvo/gateway/ent/memoryedge"
	"github.com/openconvo/gateway/ent/memorynode"
	"github.com/openconvo/gateway/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	memoryedgeFields := schema.MemoryEdge{}.Fields()
	_ = memoryedgeFields
	// memoryedgeDescWeight is the schema descriptor for weight field.
	memoryedgeDescWeight := memoryedgeFields[4].Descriptor()
	// memoryedge.DefaultWeight holds the default value on creation for the weight field.
	memoryedge.DefaultWeight = memoryedgeDescWeight.Default.(float64)
	// memoryedgeDescCreatedAt is the schema descriptor for created_at field.
	memoryedgeDescCreatedAt := memoryedgeFields[6].Descriptor()
	// memoryedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryedge.DefaultCreatedAt = memoryedgeDescCreatedAt.Default.(func() time.Time)
	memorynodeFields := schema.MemoryNode{}.Fields()
	_ = memorynodeFields
	// memorynodeDescLayer is the schema descriptor for layer field.
	memorynodeDescLayer := memorynodeFields[3].Descriptor()
	// memorynode.DefaultLayer holds the default value on creation for the layer field.
	memorynode.DefaultLayer = memorynodeDescLayer.Default.(int)
	// memorynodeDescImportance is the schema descriptor for importance field.
	memorynodeDescImportance := memorynodeFields[4].Descriptor()
	// memorynode.DefaultImportance holds the default value on creation for the importance field.
	memorynode.DefaultImportance = memorynodeDescImportance.Default.(float64)
	// memorynodeDescAccessCount is the schema descriptor for access_count field.
	memorynodeDescAccessCount := memorynodeFields[5].Descriptor()
	// memorynode.DefaultAccessCount holds the default value on creation for the access_count field.
	memorynode.DefaultAccessCount = memorynodeDescAccessCount.Default.(int)
	// memorynodeDescCreatedAt is the schema descriptor for created_at field.
	memorynodeDescCreatedAt := memorynodeFields[10].Descriptor()
	// memorynode.DefaultCreatedAt holds the default value on creation for the created_at field.
	memorynode.DefaultCreatedAt = memorynodeDescCreatedAt.Default.(func() time.Time)
}
