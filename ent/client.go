// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/openconvo/gateway/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/openconvo/gateway/ent/memoryedge"
	"github.com/openconvo/gateway/ent/memorynode"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MemoryEdge is the client for interacting with the MemoryEdge builders.
	MemoryEdge *MemoryEdgeClient
	// MemoryNode is the client for interacting with the MemoryNode builders.
	MemoryNode *MemoryNodeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MemoryEdge = NewMemoryEdgeClient(c.config)
	c.MemoryNode = NewMemoryNodeClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		MemoryEdge: NewMemoryEdgeClient(cfg),
		MemoryNode: NewMemoryNodeClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		MemoryEdge: NewMemoryEdgeClient(cfg),
		MemoryNode: NewMemoryNodeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MemoryEdge.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.MemoryEdge.Use(hooks...)
	c.MemoryNode.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.MemoryEdge.Intercept(interceptors...)
	c.MemoryNode.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MemoryEdgeMutation:
		return c.MemoryEdge.mutate(ctx, m)
	case *MemoryNodeMutation:
		return c.MemoryNode.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MemoryEdgeClient is a client for the MemoryEdge schema.
type MemoryEdgeClient struct {
	config
}

// NewMemoryEdgeClient returns a client for the MemoryEdge from the given config.
func NewMemoryEdgeClient(c config) *MemoryEdgeClient {
	return &MemoryEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryedge.Hooks(f(g(h())))`.
func (c *MemoryEdgeClient) Use(hooks ...Hook) {
	c.hooks.MemoryEdge = append(c.hooks.MemoryEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryedge.Intercept(f(g(h())))`.
func (c *MemoryEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryEdge = append(c.inters.MemoryEdge, interceptors...)
}

// Create returns a builder for creating a MemoryEdge entity.
func (c *MemoryEdgeClient) Create() *MemoryEdgeCreate {
	mutation := newMemoryEdgeMutation(c.config, OpCreate)
	return &MemoryEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryEdge entities.
func (c *MemoryEdgeClient) CreateBulk(builders ...*MemoryEdgeCreate) *MemoryEdgeCreateBulk {
	return &MemoryEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryEdgeClient) MapCreateBulk(slice any, setFunc func(*MemoryEdgeCreate, int)) *MemoryEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryEdgeCreateBulk{err: fmt.Errorf("calling to MemoryEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryEdge.
func (c *MemoryEdgeClient) Update() *MemoryEdgeUpdate {
	mutation := newMemoryEdgeMutation(c.config, OpUpdate)
	return &MemoryEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryEdgeClient) UpdateOne(_m *MemoryEdge) *MemoryEdgeUpdateOne {
	mutation := newMemoryEdgeMutation(c.config, OpUpdateOne, withMemoryEdge(_m))
	return &MemoryEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryEdgeClient) UpdateOneID(id string) *MemoryEdgeUpdateOne {
	mutation := newMemoryEdgeMutation(c.config, OpUpdateOne, withMemoryEdgeID(id))
	return &MemoryEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryEdge.
func (c *MemoryEdgeClient) Delete() *MemoryEdgeDelete {
	mutation := newMemoryEdgeMutation(c.config, OpDelete)
	return &MemoryEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryEdgeClient) DeleteOne(_m *MemoryEdge) *MemoryEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryEdgeClient) DeleteOneID(id string) *MemoryEdgeDeleteOne {
	builder := c.Delete().Where(memoryedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryEdgeDeleteOne{builder}
}

// Query returns a query builder for MemoryEdge.
func (c *MemoryEdgeClient) Query() *MemoryEdgeQuery {
	return &MemoryEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryEdge entity by its id.
func (c *MemoryEdgeClient) Get(ctx context.Context, id string) (*MemoryEdge, error) {
	return c.Query().Where(memoryedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryEdgeClient) GetX(ctx context.Context, id string) *MemoryEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryEdgeClient) Hooks() []Hook {
	return c.hooks.MemoryEdge
}

// Interceptors returns the client interceptors.
func (c *MemoryEdgeClient) Interceptors() []Interceptor {
	return c.inters.MemoryEdge
}

func (c *MemoryEdgeClient) mutate(ctx context.Context, m *MemoryEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryEdge mutation op: %q", m.Op())
	}
}

// MemoryNodeClient is a client for the MemoryNode schema.
type MemoryNodeClient struct {
	config
}

// NewMemoryNodeClient returns a client for the MemoryNode from the given config.
func NewMemoryNodeClient(c config) *MemoryNodeClient {
	return &MemoryNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memorynode.Hooks(f(g(h())))`.
func (c *MemoryNodeClient) Use(hooks ...Hook) {
	c.hooks.MemoryNode = append(c.hooks.MemoryNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memorynode.Intercept(f(g(h())))`.
func (c *MemoryNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryNode = append(c.inters.MemoryNode, interceptors...)
}

// Create returns a builder for creating a MemoryNode entity.
func (c *MemoryNodeClient) Create() *MemoryNodeCreate {
	mutation := newMemoryNodeMutation(c.config, OpCreate)
	return &MemoryNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryNode entities.
func (c *MemoryNodeClient) CreateBulk(builders ...*MemoryNodeCreate) *MemoryNodeCreateBulk {
	return &MemoryNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryNodeClient) MapCreateBulk(slice any, setFunc func(*MemoryNodeCreate, int)) *MemoryNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryNodeCreateBulk{err: fmt.Errorf("calling to MemoryNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryNode.
func (c *MemoryNodeClient) Update() *MemoryNodeUpdate {
	mutation := newMemoryNodeMutation(c.config, OpUpdate)
	return &MemoryNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryNodeClient) UpdateOne(_m *MemoryNode) *MemoryNodeUpdateOne {
	mutation := newMemoryNodeMutation(c.config, OpUpdateOne, withMemoryNode(_m))
	return &MemoryNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryNodeClient) UpdateOneID(id string) *MemoryNodeUpdateOne {
	mutation := newMemoryNodeMutation(c.config, OpUpdateOne, withMemoryNodeID(id))
	return &MemoryNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryNode.
func (c *MemoryNodeClient) Delete() *MemoryNodeDelete {
	mutation := newMemoryNodeMutation(c.config, OpDelete)
	return &MemoryNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryNodeClient) DeleteOne(_m *MemoryNode) *MemoryNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryNodeClient) DeleteOneID(id string) *MemoryNodeDeleteOne {
	builder := c.Delete().Where(memorynode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryNodeDeleteOne{builder}
}

// Query returns a query builder for MemoryNode.
func (c *MemoryNodeClient) Query() *MemoryNodeQuery {
	return &MemoryNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryNode},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryNode entity by its id.
func (c *MemoryNodeClient) Get(ctx context.Context, id string) (*MemoryNode, error) {
	return c.Query().Where(memorynode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryNodeClient) GetX(ctx context.Context, id string) *MemoryNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryNodeClient) Hooks() []Hook {
	return c.hooks.MemoryNode
}

// Interceptors returns the client interceptors.
func (c *MemoryNodeClient) Interceptors() []Interceptor {
	return c.inters.MemoryNode
}

func (c *MemoryNodeClient) mutate(ctx context.Context, m *MemoryNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryNode mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MemoryEdge, MemoryNode []ent.Hook
	}
	inters struct {
		MemoryEdge, MemoryNode []ent.Interceptor
	}
)
