// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openconvo/gateway/ent/memoryedge"
	"github.com/openconvo/gateway/ent/memorynode"
	"github.com/openconvo/gateway/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMemoryEdge = "MemoryEdge"
	TypeMemoryNode = "MemoryNode"
)

// MemoryEdgeMutation represents an operation that mutates the MemoryEdge nodes in the graph.
type MemoryEdgeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	relation      *string
	source_id     *string
	target_id     *string
	weight        *float64
	addweight     *float64
	properties    *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MemoryEdge, error)
	predicates    []predicate.MemoryEdge
}

var _ ent.Mutation = (*MemoryEdgeMutation)(nil)

// memoryedgeOption allows management of the mutation configuration using functional options.
type memoryedgeOption func(*MemoryEdgeMutation)

// newMemoryEdgeMutation creates new mutation for the MemoryEdge entity.
func newMemoryEdgeMutation(c config, op Op, opts ...memoryedgeOption) *MemoryEdgeMutation {
	m := &MemoryEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEdgeID sets the ID field of the mutation.
func withMemoryEdgeID(id string) memoryedgeOption {
	return func(m *MemoryEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEdge
		)
		m.oldValue = func(ctx context.Context) (*MemoryEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEdge sets the old MemoryEdge of the mutation.
func withMemoryEdge(node *MemoryEdge) memoryedgeOption {
	return func(m *MemoryEdgeMutation) {
		m.oldValue = func(context.Context) (*MemoryEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEdge entities.
func (m *MemoryEdgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEdgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEdgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRelation sets the "relation" field.
func (m *MemoryEdgeMutation) SetRelation(s string) {
	m.relation = &s
}

// Relation returns the value of the "relation" field in the mutation.
func (m *MemoryEdgeMutation) Relation() (r string, exists bool) {
	v := m.relation
	if v == nil {
		return
	}
	return *v, true
}

// OldRelation returns the old "relation" field's value of the MemoryEdge entity.
// If the MemoryEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEdgeMutation) OldRelation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelation: %w", err)
	}
	return oldValue.Relation, nil
}

// ResetRelation resets all changes to the "relation" field.
func (m *MemoryEdgeMutation) ResetRelation() {
	m.relation = nil
}

// SetSourceID sets the "source_id" field.
func (m *MemoryEdgeMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *MemoryEdgeMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the MemoryEdge entity.
// If the MemoryEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEdgeMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *MemoryEdgeMutation) ResetSourceID() {
	m.source_id = nil
}

// SetTargetID sets the "target_id" field.
func (m *MemoryEdgeMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *MemoryEdgeMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the MemoryEdge entity.
// If the MemoryEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEdgeMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *MemoryEdgeMutation) ResetTargetID() {
	m.target_id = nil
}

// SetWeight sets the "weight" field.
func (m *MemoryEdgeMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *MemoryEdgeMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the MemoryEdge entity.
// If the MemoryEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEdgeMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *MemoryEdgeMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *MemoryEdgeMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *MemoryEdgeMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetProperties sets the "properties" field.
func (m *MemoryEdgeMutation) SetProperties(value map[string]interface{}) {
	m.properties = &value
}

// Properties returns the value of the "properties" field in the mutation.
func (m *MemoryEdgeMutation) Properties() (r map[string]interface{}, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the MemoryEdge entity.
// If the MemoryEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEdgeMutation) OldProperties(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// ClearProperties clears the value of the "properties" field.
func (m *MemoryEdgeMutation) ClearProperties() {
	m.properties = nil
	m.clearedFields[memoryedge.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *MemoryEdgeMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[memoryedge.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *MemoryEdgeMutation) ResetProperties() {
	m.properties = nil
	delete(m.clearedFields, memoryedge.FieldProperties)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryEdgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryEdgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryEdge entity.
// If the MemoryEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEdgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryEdgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MemoryEdgeMutation builder.
func (m *MemoryEdgeMutation) Where(ps ...predicate.MemoryEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEdge).
func (m *MemoryEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEdgeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.relation != nil {
		fields = append(fields, memoryedge.FieldRelation)
	}
	if m.source_id != nil {
		fields = append(fields, memoryedge.FieldSourceID)
	}
	if m.target_id != nil {
		fields = append(fields, memoryedge.FieldTargetID)
	}
	if m.weight != nil {
		fields = append(fields, memoryedge.FieldWeight)
	}
	if m.properties != nil {
		fields = append(fields, memoryedge.FieldProperties)
	}
	if m.created_at != nil {
		fields = append(fields, memoryedge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryedge.FieldRelation:
		return m.Relation()
	case memoryedge.FieldSourceID:
		return m.SourceID()
	case memoryedge.FieldTargetID:
		return m.TargetID()
	case memoryedge.FieldWeight:
		return m.Weight()
	case memoryedge.FieldProperties:
		return m.Properties()
	case memoryedge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryedge.FieldRelation:
		return m.OldRelation(ctx)
	case memoryedge.FieldSourceID:
		return m.OldSourceID(ctx)
	case memoryedge.FieldTargetID:
		return m.OldTargetID(ctx)
	case memoryedge.FieldWeight:
		return m.OldWeight(ctx)
	case memoryedge.FieldProperties:
		return m.OldProperties(ctx)
	case memoryedge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryedge.FieldRelation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelation(v)
		return nil
	case memoryedge.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case memoryedge.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case memoryedge.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case memoryedge.FieldProperties:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	case memoryedge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEdgeMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, memoryedge.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEdgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryedge.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryedge.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEdgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryedge.FieldProperties) {
		fields = append(fields, memoryedge.FieldProperties)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEdgeMutation) ClearField(name string) error {
	switch name {
	case memoryedge.FieldProperties:
		m.ClearProperties()
		return nil
	}
	return fmt.Errorf("unknown MemoryEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEdgeMutation) ResetField(name string) error {
	switch name {
	case memoryedge.FieldRelation:
		m.ResetRelation()
		return nil
	case memoryedge.FieldSourceID:
		m.ResetSourceID()
		return nil
	case memoryedge.FieldTargetID:
		m.ResetTargetID()
		return nil
	case memoryedge.FieldWeight:
		m.ResetWeight()
		return nil
	case memoryedge.FieldProperties:
		m.ResetProperties()
		return nil
	case memoryedge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryEdge edge %s", name)
}

// MemoryNodeMutation represents an operation that mutates the MemoryNode nodes in the graph.
type MemoryNodeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	node_type       *string
	content         *string
	layer           *int
	addlayer        *int
	importance      *float64
	addimportance   *float64
	access_count    *int
	addaccess_count *int
	session_id      *string
	user_id         *string
	embedding       *[]float64
	appendembedding []float64
	properties      *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*MemoryNode, error)
	predicates      []predicate.MemoryNode
}

var _ ent.Mutation = (*MemoryNodeMutation)(nil)

// memorynodeOption allows management of the mutation configuration using functional options.
type memorynodeOption func(*MemoryNodeMutation)

// newMemoryNodeMutation creates new mutation for the MemoryNode entity.
func newMemoryNodeMutation(c config, op Op, opts ...memorynodeOption) *MemoryNodeMutation {
	m := &MemoryNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryNodeID sets the ID field of the mutation.
func withMemoryNodeID(id string) memorynodeOption {
	return func(m *MemoryNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryNode
		)
		m.oldValue = func(ctx context.Context) (*MemoryNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryNode sets the old MemoryNode of the mutation.
func withMemoryNode(node *MemoryNode) memorynodeOption {
	return func(m *MemoryNodeMutation) {
		m.oldValue = func(context.Context) (*MemoryNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryNode entities.
func (m *MemoryNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNodeType sets the "node_type" field.
func (m *MemoryNodeMutation) SetNodeType(s string) {
	m.node_type = &s
}

// NodeType returns the value of the "node_type" field in the mutation.
func (m *MemoryNodeMutation) NodeType() (r string, exists bool) {
	v := m.node_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeType returns the old "node_type" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldNodeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeType: %w", err)
	}
	return oldValue.NodeType, nil
}

// ResetNodeType resets all changes to the "node_type" field.
func (m *MemoryNodeMutation) ResetNodeType() {
	m.node_type = nil
}

// SetContent sets the "content" field.
func (m *MemoryNodeMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryNodeMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryNodeMutation) ResetContent() {
	m.content = nil
}

// SetLayer sets the "layer" field.
func (m *MemoryNodeMutation) SetLayer(i int) {
	m.layer = &i
	m.addlayer = nil
}

// Layer returns the value of the "layer" field in the mutation.
func (m *MemoryNodeMutation) Layer() (r int, exists bool) {
	v := m.layer
	if v == nil {
		return
	}
	return *v, true
}

// OldLayer returns the old "layer" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldLayer(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayer: %w", err)
	}
	return oldValue.Layer, nil
}

// AddLayer adds i to the "layer" field.
func (m *MemoryNodeMutation) AddLayer(i int) {
	if m.addlayer != nil {
		*m.addlayer += i
	} else {
		m.addlayer = &i
	}
}

// AddedLayer returns the value that was added to the "layer" field in this mutation.
func (m *MemoryNodeMutation) AddedLayer() (r int, exists bool) {
	v := m.addlayer
	if v == nil {
		return
	}
	return *v, true
}

// ResetLayer resets all changes to the "layer" field.
func (m *MemoryNodeMutation) ResetLayer() {
	m.layer = nil
	m.addlayer = nil
}

// SetImportance sets the "importance" field.
func (m *MemoryNodeMutation) SetImportance(f float64) {
	m.importance = &f
	m.addimportance = nil
}

// Importance returns the value of the "importance" field in the mutation.
func (m *MemoryNodeMutation) Importance() (r float64, exists bool) {
	v := m.importance
	if v == nil {
		return
	}
	return *v, true
}

// OldImportance returns the old "importance" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldImportance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportance: %w", err)
	}
	return oldValue.Importance, nil
}

// AddImportance adds f to the "importance" field.
func (m *MemoryNodeMutation) AddImportance(f float64) {
	if m.addimportance != nil {
		*m.addimportance += f
	} else {
		m.addimportance = &f
	}
}

// AddedImportance returns the value that was added to the "importance" field in this mutation.
func (m *MemoryNodeMutation) AddedImportance() (r float64, exists bool) {
	v := m.addimportance
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportance resets all changes to the "importance" field.
func (m *MemoryNodeMutation) ResetImportance() {
	m.importance = nil
	m.addimportance = nil
}

// SetAccessCount sets the "access_count" field.
func (m *MemoryNodeMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *MemoryNodeMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *MemoryNodeMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *MemoryNodeMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *MemoryNodeMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetSessionID sets the "session_id" field.
func (m *MemoryNodeMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MemoryNodeMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *MemoryNodeMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[memorynode.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *MemoryNodeMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[memorynode.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MemoryNodeMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, memorynode.FieldSessionID)
}

// SetUserID sets the "user_id" field.
func (m *MemoryNodeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MemoryNodeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *MemoryNodeMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[memorynode.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *MemoryNodeMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[memorynode.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MemoryNodeMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, memorynode.FieldUserID)
}

// SetEmbedding sets the "embedding" field.
func (m *MemoryNodeMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MemoryNodeMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *MemoryNodeMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *MemoryNodeMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MemoryNodeMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[memorynode.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MemoryNodeMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[memorynode.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MemoryNodeMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, memorynode.FieldEmbedding)
}

// SetProperties sets the "properties" field.
func (m *MemoryNodeMutation) SetProperties(value map[string]interface{}) {
	m.properties = &value
}

// Properties returns the value of the "properties" field in the mutation.
func (m *MemoryNodeMutation) Properties() (r map[string]interface{}, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldProperties(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// ClearProperties clears the value of the "properties" field.
func (m *MemoryNodeMutation) ClearProperties() {
	m.properties = nil
	m.clearedFields[memorynode.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *MemoryNodeMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[memorynode.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *MemoryNodeMutation) ResetProperties() {
	m.properties = nil
	delete(m.clearedFields, memorynode.FieldProperties)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryNodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryNodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryNode entity.
// If the MemoryNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryNodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryNodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MemoryNodeMutation builder.
func (m *MemoryNodeMutation) Where(ps ...predicate.MemoryNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryNode).
func (m *MemoryNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryNodeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.node_type != nil {
		fields = append(fields, memorynode.FieldNodeType)
	}
	if m.content != nil {
		fields = append(fields, memorynode.FieldContent)
	}
	if m.layer != nil {
		fields = append(fields, memorynode.FieldLayer)
	}
	if m.importance != nil {
		fields = append(fields, memorynode.FieldImportance)
	}
	if m.access_count != nil {
		fields = append(fields, memorynode.FieldAccessCount)
	}
	if m.session_id != nil {
		fields = append(fields, memorynode.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, memorynode.FieldUserID)
	}
	if m.embedding != nil {
		fields = append(fields, memorynode.FieldEmbedding)
	}
	if m.properties != nil {
		fields = append(fields, memorynode.FieldProperties)
	}
	if m.created_at != nil {
		fields = append(fields, memorynode.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memorynode.FieldNodeType:
		return m.NodeType()
	case memorynode.FieldContent:
		return m.Content()
	case memorynode.FieldLayer:
		return m.Layer()
	case memorynode.FieldImportance:
		return m.Importance()
	case memorynode.FieldAccessCount:
		return m.AccessCount()
	case memorynode.FieldSessionID:
		return m.SessionID()
	case memorynode.FieldUserID:
		return m.UserID()
	case memorynode.FieldEmbedding:
		return m.Embedding()
	case memorynode.FieldProperties:
		return m.Properties()
	case memorynode.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memorynode.FieldNodeType:
		return m.OldNodeType(ctx)
	case memorynode.FieldContent:
		return m.OldContent(ctx)
	case memorynode.FieldLayer:
		return m.OldLayer(ctx)
	case memorynode.FieldImportance:
		return m.OldImportance(ctx)
	case memorynode.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case memorynode.FieldSessionID:
		return m.OldSessionID(ctx)
	case memorynode.FieldUserID:
		return m.OldUserID(ctx)
	case memorynode.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case memorynode.FieldProperties:
		return m.OldProperties(ctx)
	case memorynode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memorynode.FieldNodeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeType(v)
		return nil
	case memorynode.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memorynode.FieldLayer:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayer(v)
		return nil
	case memorynode.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportance(v)
		return nil
	case memorynode.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case memorynode.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case memorynode.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case memorynode.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case memorynode.FieldProperties:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	case memorynode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryNodeMutation) AddedFields() []string {
	var fields []string
	if m.addlayer != nil {
		fields = append(fields, memorynode.FieldLayer)
	}
	if m.addimportance != nil {
		fields = append(fields, memorynode.FieldImportance)
	}
	if m.addaccess_count != nil {
		fields = append(fields, memorynode.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memorynode.FieldLayer:
		return m.AddedLayer()
	case memorynode.FieldImportance:
		return m.AddedImportance()
	case memorynode.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memorynode.FieldLayer:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLayer(v)
		return nil
	case memorynode.FieldImportance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportance(v)
		return nil
	case memorynode.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memorynode.FieldSessionID) {
		fields = append(fields, memorynode.FieldSessionID)
	}
	if m.FieldCleared(memorynode.FieldUserID) {
		fields = append(fields, memorynode.FieldUserID)
	}
	if m.FieldCleared(memorynode.FieldEmbedding) {
		fields = append(fields, memorynode.FieldEmbedding)
	}
	if m.FieldCleared(memorynode.FieldProperties) {
		fields = append(fields, memorynode.FieldProperties)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryNodeMutation) ClearField(name string) error {
	switch name {
	case memorynode.FieldSessionID:
		m.ClearSessionID()
		return nil
	case memorynode.FieldUserID:
		m.ClearUserID()
		return nil
	case memorynode.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case memorynode.FieldProperties:
		m.ClearProperties()
		return nil
	}
	return fmt.Errorf("unknown MemoryNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryNodeMutation) ResetField(name string) error {
	switch name {
	case memorynode.FieldNodeType:
		m.ResetNodeType()
		return nil
	case memorynode.FieldContent:
		m.ResetContent()
		return nil
	case memorynode.FieldLayer:
		m.ResetLayer()
		return nil
	case memorynode.FieldImportance:
		m.ResetImportance()
		return nil
	case memorynode.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case memorynode.FieldSessionID:
		m.ResetSessionID()
		return nil
	case memorynode.FieldUserID:
		m.ResetUserID()
		return nil
	case memorynode.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case memorynode.FieldProperties:
		m.ResetProperties()
		return nil
	case memorynode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryNodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryNodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryNodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryNodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryNode edge %s", name)
}
