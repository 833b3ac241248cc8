// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openconvo/gateway/ent/memoryedge"
)

// MemoryEdgeCreate is the builder for creating a MemoryEdge entity.
type MemoryEdgeCreate struct {
	config
	mutation *MemoryEdgeMutation
	hooks    []Hook
}

// SetRelation sets the "relation" field.
func (_c *MemoryEdgeCreate) SetRelation(v string) *MemoryEdgeCreate {
	_c.mutation.SetRelation(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *MemoryEdgeCreate) SetSourceID(v string) *MemoryEdgeCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *MemoryEdgeCreate) SetTargetID(v string) *MemoryEdgeCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *MemoryEdgeCreate) SetWeight(v float64) *MemoryEdgeCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *MemoryEdgeCreate) SetNillableWeight(v *float64) *MemoryEdgeCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetProperties sets the "properties" field.
func (_c *MemoryEdgeCreate) SetProperties(v map[string]interface{}) *MemoryEdgeCreate {
	_c.mutation.SetProperties(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryEdgeCreate) SetCreatedAt(v time.Time) *MemoryEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryEdgeCreate) SetNillableCreatedAt(v *time.Time) *MemoryEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryEdgeCreate) SetID(v string) *MemoryEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryEdgeMutation object of the builder.
func (_c *MemoryEdgeCreate) Mutation() *MemoryEdgeMutation {
	return _c.mutation
}

// Save creates the MemoryEdge in the database.
func (_c *MemoryEdgeCreate) Save(ctx context.Context) (*MemoryEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryEdgeCreate) SaveX(ctx context.Context) *MemoryEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryEdgeCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := memoryedge.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryEdgeCreate) check() error {
	if _, ok := _c.mutation.Relation(); !ok {
		return &ValidationError{Name: "relation", err: errors.New(`ent: missing required field "MemoryEdge.relation"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "MemoryEdge.source_id"`)}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "MemoryEdge.target_id"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "MemoryEdge.weight"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryEdge.created_at"`)}
	}
	return nil
}

func (_c *MemoryEdgeCreate) sqlSave(ctx context.Context) (*MemoryEdge, error) {
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
			return nil, fmt.Errorf("unexpected MemoryEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryEdgeCreate) createSpec() (*MemoryEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryedge.Table, sqlgraph.NewFieldSpec(memoryedge.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Relation(); ok {
		_spec.SetField(memoryedge.FieldRelation, field.TypeString, value)
		_node.Relation = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(memoryedge.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(memoryedge.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(memoryedge.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Properties(); ok {
		_spec.SetField(memoryedge.FieldProperties, field.TypeJSON, value)
		_node.Properties = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MemoryEdgeCreateBulk is the builder for creating many MemoryEdge entities in bulk.
type MemoryEdgeCreateBulk struct {
	config
	err      error
	builders []*MemoryEdgeCreate
}

// Save creates the MemoryEdge entities in the database.
func (_c *MemoryEdgeCreateBulk) Save(ctx context.Context) ([]*MemoryEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryEdgeMutation)
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
func (_c *MemoryEdgeCreateBulk) SaveX(ctx context.Context) []*MemoryEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
