// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MemoryEdge is the predicate function for memoryedge builders.
type MemoryEdge func(*sql.Selector)

// MemoryNode is the predicate function for memorynode builders.
type MemoryNode func(*sql.Selector)
