// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openconvo/gateway/ent/memorynode"
)

// MemoryNodeCreate is the builder for creating a MemoryNode entity.
type MemoryNodeCreate struct {
	config
	mutation *MemoryNodeMutation
	hooks    []Hook
}

// SetNodeType sets the "node_type" field.
func (_c *MemoryNodeCreate) SetNodeType(v string) *MemoryNodeCreate {
	_c.mutation.SetNodeType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryNodeCreate) SetContent(v string) *MemoryNodeCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetLayer sets the "layer" field.
func (_c *MemoryNodeCreate) SetLayer(v int) *MemoryNodeCreate {
	_c.mutation.SetLayer(v)
	return _c
}

// SetNillableLayer sets the "layer" field if the given value is not nil.
func (_c *MemoryNodeCreate) SetNillableLayer(v *int) *MemoryNodeCreate {
	if v != nil {
		_c.SetLayer(*v)
	}
	return _c
}

// SetImportance sets the "importance" field.
func (_c *MemoryNodeCreate) SetImportance(v float64) *MemoryNodeCreate {
	_c.mutation.SetImportance(v)
	return _c
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_c *MemoryNodeCreate) SetNillableImportance(v *float64) *MemoryNodeCreate {
	if v != nil {
		_c.SetImportance(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *MemoryNodeCreate) SetAccessCount(v int) *MemoryNodeCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *MemoryNodeCreate) SetNillableAccessCount(v *int) *MemoryNodeCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MemoryNodeCreate) SetSessionID(v string) *MemoryNodeCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *MemoryNodeCreate) SetNillableSessionID(v *string) *MemoryNodeCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MemoryNodeCreate) SetUserID(v string) *MemoryNodeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *MemoryNodeCreate) SetNillableUserID(v *string) *MemoryNodeCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MemoryNodeCreate) SetEmbedding(v []float64) *MemoryNodeCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetProperties sets the "properties" field.
func (_c *MemoryNodeCreate) SetProperties(v map[string]interface{}) *MemoryNodeCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryNodeCreate) SetCreatedAt(v time.Time) *MemoryNodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryNodeCreate) SetNillableCreatedAt(v *time.Time) *MemoryNodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryNodeCreate) SetID(v string) *MemoryNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryNodeMutation object of the builder.
func (_c *MemoryNodeCreate) Mutation() *MemoryNodeMutation {
	return _c.mutation
}

// Save creates the MemoryNode in the database.
func (_c *MemoryNodeCreate) Save(ctx context.Context) (*MemoryNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryNodeCreate) SaveX(ctx context.Context) *MemoryNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryNodeCreate) defaults() {
	if _, ok := _c.mutation.Layer(); !ok {
		v := memorynode.DefaultLayer
		_c.mutation.SetLayer(v)
	}
	if _, ok := _c.mutation.Importance(); !ok {
		v := memorynode.DefaultImportance
		_c.mutation.SetImportance(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := memorynode.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memorynode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryNodeCreate) check() error {
	if _, ok := _c.mutation.NodeType(); !ok {
		return &ValidationError{Name: "node_type", err: errors.New(`ent: missing required field "MemoryNode.node_type"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryNode.content"`)}
	}
	if _, ok := _c.mutation.Layer(); !ok {
		return &ValidationError{Name: "layer", err: errors.New(`ent: missing required field "MemoryNode.layer"`)}
	}
	if _, ok := _c.mutation.Importance(); !ok {
		return &ValidationError{Name: "importance", err: errors.New(`ent: missing required field "MemoryNode.importance"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "MemoryNode.access_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryNode.created_at"`)}
	}
	return nil
}

func (_c *MemoryNodeCreate) sqlSave(ctx context.Context) (*MemoryNode, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MemoryNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryNodeCreate) createSpec() (*MemoryNode, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memorynode.Table, sqlgraph.NewFieldSpec(memorynode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeType(); ok {
		_spec.SetField(memorynode.FieldNodeType, field.TypeString, value)
		_node.NodeType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memorynode.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Layer(); ok {
		_spec.SetField(memorynode.FieldLayer, field.TypeInt, value)
		_node.Layer = value
	}
	if value, ok := _c.mutation.Importance(); ok {
		_spec.SetField(memorynode.FieldImportance, field.TypeFloat64, value)
		_node.Importance = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(memorynode.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(memorynode.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(memorynode.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(memorynode.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(memorynode.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memorynode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MemoryNodeCreateBulk is the builder for creating many MemoryNode entities in bulk.
type MemoryNodeCreateBulk struct {
	config
	err      error
	builders []*MemoryNodeCreate
}

// Save creates the MemoryNode entities in the database.
func (_c *MemoryNodeCreateBulk) Save(ctx context.Context) ([]*MemoryNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryNodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MemoryNodeCreateBulk) SaveX(ctx context.Context) []*MemoryNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
