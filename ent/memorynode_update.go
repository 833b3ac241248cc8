// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/openconvo/gateway/ent/memorynode"
	"github.com/openconvo/gateway/ent/predicate"
)

// MemoryNodeUpdate is the builder for updating MemoryNode entities.
type MemoryNodeUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryNodeMutation
}

// Where appends a list predicates to the MemoryNodeUpdate builder.
func (_u *MemoryNodeUpdate) Where(ps ...predicate.MemoryNode) *MemoryNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryNodeUpdate) SetContent(v string) *MemoryNodeUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryNodeUpdate) SetNillableContent(v *string) *MemoryNodeUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLayer sets the "layer" field.
func (_u *MemoryNodeUpdate) SetLayer(v int) *MemoryNodeUpdate {
	_u.mutation.ResetLayer()
	_u.mutation.SetLayer(v)
	return _u
}

// SetNillableLayer sets the "layer" field if the given value is not nil.
func (_u *MemoryNodeUpdate) SetNillableLayer(v *int) *MemoryNodeUpdate {
	if v != nil {
		_u.SetLayer(*v)
	}
	return _u
}

// AddLayer adds value to the "layer" field.
func (_u *MemoryNodeUpdate) AddLayer(v int) *MemoryNodeUpdate {
	_u.mutation.AddLayer(v)
	return _u
}

// SetImportance sets the "importance" field.
func (_u *MemoryNodeUpdate) SetImportance(v float64) *MemoryNodeUpdate {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *MemoryNodeUpdate) SetNillableImportance(v *float64) *MemoryNodeUpdate {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *MemoryNodeUpdate) AddImportance(v float64) *MemoryNodeUpdate {
	_u.mutation.AddImportance(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryNodeUpdate) SetAccessCount(v int) *MemoryNodeUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryNodeUpdate) SetNillableAccessCount(v *int) *MemoryNodeUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryNodeUpdate) AddAccessCount(v int) *MemoryNodeUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MemoryNodeUpdate) SetSessionID(v string) *MemoryNodeUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MemoryNodeUpdate) SetNillableSessionID(v *string) *MemoryNodeUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MemoryNodeUpdate) ClearSessionID() *MemoryNodeUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MemoryNodeUpdate) SetUserID(v string) *MemoryNodeUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MemoryNodeUpdate) SetNillableUserID(v *string) *MemoryNodeUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MemoryNodeUpdate) ClearUserID() *MemoryNodeUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryNodeUpdate) SetEmbedding(v []float64) *MemoryNodeUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryNodeUpdate) AppendEmbedding(v []float64) *MemoryNodeUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryNodeUpdate) ClearEmbedding() *MemoryNodeUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *MemoryNodeUpdate) SetProperties(v map[string]interface{}) *MemoryNodeUpdate {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *MemoryNodeUpdate) ClearProperties() *MemoryNodeUpdate {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the MemoryNodeMutation object of the builder.
func (_u *MemoryNodeUpdate) Mutation() *MemoryNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MemoryNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(memorynode.Table, memorynode.Columns, sqlgraph.NewFieldSpec(memorynode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memorynode.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Layer(); ok {
		_spec.SetField(memorynode.FieldLayer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLayer(); ok {
		_spec.AddField(memorynode.FieldLayer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(memorynode.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(memorynode.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memorynode.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memorynode.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(memorynode.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(memorynode.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(memorynode.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(memorynode.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memorynode.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memorynode.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memorynode.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(memorynode.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(memorynode.FieldProperties, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memorynode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryNodeUpdateOne is the builder for updating a single MemoryNode entity.
type MemoryNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryNodeMutation
}

// SetContent sets the "content" field.
func (_u *MemoryNodeUpdateOne) SetContent(v string) *MemoryNodeUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryNodeUpdateOne) SetNillableContent(v *string) *MemoryNodeUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLayer sets the "layer" field.
func (_u *MemoryNodeUpdateOne) SetLayer(v int) *MemoryNodeUpdateOne {
	_u.mutation.ResetLayer()
	_u.mutation.SetLayer(v)
	return _u
}

// SetNillableLayer sets the "layer" field if the given value is not nil.
func (_u *MemoryNodeUpdateOne) SetNillableLayer(v *int) *MemoryNodeUpdateOne {
	if v != nil {
		_u.SetLayer(*v)
	}
	return _u
}

// AddLayer adds value to the "layer" field.
func (_u *MemoryNodeUpdateOne) AddLayer(v int) *MemoryNodeUpdateOne {
	_u.mutation.AddLayer(v)
	return _u
}

// SetImportance sets the "importance" field.
func (_u *MemoryNodeUpdateOne) SetImportance(v float64) *MemoryNodeUpdateOne {
	_u.mutation.ResetImportance()
	_u.mutation.SetImportance(v)
	return _u
}

// SetNillableImportance sets the "importance" field if the given value is not nil.
func (_u *MemoryNodeUpdateOne) SetNillableImportance(v *float64) *MemoryNodeUpdateOne {
	if v != nil {
		_u.SetImportance(*v)
	}
	return _u
}

// AddImportance adds value to the "importance" field.
func (_u *MemoryNodeUpdateOne) AddImportance(v float64) *MemoryNodeUpdateOne {
	_u.mutation.AddImportance(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryNodeUpdateOne) SetAccessCount(v int) *MemoryNodeUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryNodeUpdateOne) SetNillableAccessCount(v *int) *MemoryNodeUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryNodeUpdateOne) AddAccessCount(v int) *MemoryNodeUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MemoryNodeUpdateOne) SetSessionID(v string) *MemoryNodeUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MemoryNodeUpdateOne) SetNillableSessionID(v *string) *MemoryNodeUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MemoryNodeUpdateOne) ClearSessionID() *MemoryNodeUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MemoryNodeUpdateOne) SetUserID(v string) *MemoryNodeUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MemoryNodeUpdateOne) SetNillableUserID(v *string) *MemoryNodeUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MemoryNodeUpdateOne) ClearUserID() *MemoryNodeUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryNodeUpdateOne) SetEmbedding(v []float64) *MemoryNodeUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryNodeUpdateOne) AppendEmbedding(v []float64) *MemoryNodeUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryNodeUpdateOne) ClearEmbedding() *MemoryNodeUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetProperties sets the "properties" field.
func (_u *MemoryNodeUpdateOne) SetProperties(v map[string]interface{}) *MemoryNodeUpdateOne {
	_u.mutation.SetProperties(v)
	return _u
}

// ClearProperties clears the value of the "properties" field.
func (_u *MemoryNodeUpdateOne) ClearProperties() *MemoryNodeUpdateOne {
	_u.mutation.ClearProperties()
	return _u
}

// Mutation returns the MemoryNodeMutation object of the builder.
func (_u *MemoryNodeUpdateOne) Mutation() *MemoryNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryNodeUpdate builder.
func (_u *MemoryNodeUpdateOne) Where(ps ...predicate.MemoryNode) *MemoryNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryNodeUpdateOne) Select(field string, fields ...string) *MemoryNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryNode entity.
func (_u *MemoryNodeUpdateOne) Save(ctx context.Context) (*MemoryNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryNodeUpdateOne) SaveX(ctx context.Context) *MemoryNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MemoryNodeUpdateOne) sqlSave(ctx context.Context) (_node *MemoryNode, err error) {
	_spec := sqlgraph.NewUpdateSpec(memorynode.Table, memorynode.Columns, sqlgraph.NewFieldSpec(memorynode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memorynode.FieldID)
		for _, f := range fields {
			if !memorynode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memorynode.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memorynode.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Layer(); ok {
		_spec.SetField(memorynode.FieldLayer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLayer(); ok {
		_spec.AddField(memorynode.FieldLayer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Importance(); ok {
		_spec.SetField(memorynode.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportance(); ok {
		_spec.AddField(memorynode.FieldImportance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memorynode.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memorynode.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(memorynode.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(memorynode.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(memorynode.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(memorynode.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memorynode.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memorynode.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memorynode.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Properties(); ok {
		_spec.SetField(memorynode.FieldProperties, field.TypeJSON, value)
	}
	if _u.mutation.PropertiesCleared() {
		_spec.ClearField(memorynode.FieldProperties, field.TypeJSON)
	}
	_node = &MemoryNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memorynode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
