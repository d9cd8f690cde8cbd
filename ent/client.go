// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cylin/examdrill/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/cylin/examdrill/ent/answerevent"
	"github.com/cylin/examdrill/ent/attemptevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.AttemptEvent = NewAttemptEventClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		AnswerEvent:  NewAnswerEventClient(cfg),
		AttemptEvent: NewAttemptEventClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		AnswerEvent:  NewAnswerEventClient(cfg),
		AttemptEvent: NewAttemptEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	c.AnswerEvent.Use(hooks...)
	c.AttemptEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnswerEvent.Intercept(interceptors...)
	c.AttemptEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, AttemptEvent []ent.Hook
	}
	inters struct {
		AnswerEvent, AttemptEvent []ent.Interceptor
	}
)
