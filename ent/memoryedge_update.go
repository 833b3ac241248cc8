// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openconvo/gateway/ent/memoryedge"
	"github.com/openconvo/gateway/ent/predicate"
)

// MemoryEdgeUpdate is the builder for updating MemoryEdge entities.
type MemoryEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryEdgeMutation
}

// Where appends a list predicates to the MemoryEdgeUpdate builder.
func (_u *MemoryEdgeUpdate) Where(ps ...predicate.MemoryEdge) *MemoryEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWeight sets the "weight" field.
func (_u *MemoryEdgeUpdate) SetWeight(v float64) *MemoryEdgeUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *MemoryEdgeUpdate) SetNillableWeight(v *float64) *MemoryEdgeUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *MemoryEdgeUpdate) AddWeight(v float64) *MemoryEdgeUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetProperties sets the "properties" field.
func (_u *MemoryEdgeUpdate) SetProperties(v map[string]interface{}) *MemoryEdgeUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *MemoryEdgeUpdate) ClearProperties() *MemoryEdgeUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the MemoryEdgeMutation object of the builder.
func (_u *MemoryEdgeUpdate) Mutation() *MemoryEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MemoryEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(memoryedge.Table, memoryedge.Columns, sqlgraph.NewFieldSpec(memoryedge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(memoryedge.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(memoryedge.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(memoryedge.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(memoryedge.FieldProperties, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryEdgeUpdateOne is the builder for updating a single MemoryEdge entity.
type MemoryEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryEdgeMutation
}

// SetWeight sets the "weight" field.
func (_u *MemoryEdgeUpdateOne) SetWeight(v float64) *MemoryEdgeUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *MemoryEdgeUpdateOne) SetNillableWeight(v *float64) *MemoryEdgeUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *MemoryEdgeUpdateOne) AddWeight(v float64) *MemoryEdgeUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetProperties sets the "properties" field.
func (_u *MemoryEdgeUpdateOne) SetProperties(v map[string]interface{}) *MemoryEdgeUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *MemoryEdgeUpdateOne) ClearProperties() *MemoryEdgeUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the MemoryEdgeMutation object of the builder.
func (_u *MemoryEdgeUpdateOne) Mutation() *MemoryEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryEdgeUpdate builder.
func (_u *MemoryEdgeUpdateOne) Where(ps ...predicate.MemoryEdge) *MemoryEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryEdgeUpdateOne) Select(field string, fields ...string) *MemoryEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryEdge entity.
func (_u *MemoryEdgeUpdateOne) Save(ctx context.Context) (*MemoryEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEdgeUpdateOne) SaveX(ctx context.Context) *MemoryEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MemoryEdgeUpdateOne) sqlSave(ctx context.Context) (_node *MemoryEdge, err error) {
	_spec := sqlgraph.NewUpdateSpec(memoryedge.Table, memoryedge.Columns, sqlgraph.NewFieldSpec(memoryedge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryedge.FieldID)
		for _, f := range fields {
			if !memoryedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(memoryedge.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(memoryedge.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(memoryedge.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(memoryedge.FieldProperties, field.TypeJSON)
	}
	_node = &MemoryEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
