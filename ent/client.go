// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/versekeep/versekeep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/versekeep/versekeep/ent/reviewsession"
	"github.com/versekeep/versekeep/ent/verse"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ReviewSession is the client for interacting with the ReviewSession builders.
	ReviewSession *ReviewSessionClient
	// Verse is the client for interacting with the Verse builders.
	Verse *VerseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ReviewSession = NewReviewSessionClient(c.config)
	c.Verse = NewVerseClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ReviewSession: NewReviewSessionClient(cfg),
		Verse:         NewVerseClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ReviewSession: NewReviewSessionClient(cfg),
		Verse:         NewVerseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ReviewSession.
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
	c.ReviewSession.Use(hooks...)
	c.Verse.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ReviewSession.Intercept(interceptors...)
	c.Verse.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ReviewSessionMutation:
		return c.ReviewSession.mutate(ctx, m)
	case *VerseMutation:
		return c.Verse.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ReviewSessionClient is a client for the ReviewSession schema.
type ReviewSessionClient struct {
	config
}

// NewReviewSessionClient returns a client for the ReviewSession from the given config.
func NewReviewSessionClient(c config) *ReviewSessionClient {
	return &ReviewSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewsession.Hooks(f(g(h())))`.
func (c *ReviewSessionClient) Use(hooks ...Hook) {
	c.hooks.ReviewSession = append(c.hooks.ReviewSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewsession.Intercept(f(g(h())))`.
func (c *ReviewSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewSession = append(c.inters.ReviewSession, interceptors...)
}

// Create returns a builder for creating a ReviewSession entity.
func (c *ReviewSessionClient) Create() *ReviewSessionCreate {
	mutation := newReviewSessionMutation(c.config, OpCreate)
	return &ReviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewSession entities.
func (c *ReviewSessionClient) CreateBulk(builders ...*ReviewSessionCreate) *ReviewSessionCreateBulk {
	return &ReviewSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewSessionClient) MapCreateBulk(slice any, setFunc func(*ReviewSessionCreate, int)) *ReviewSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewSessionCreateBulk{err: fmt.Errorf("calling to ReviewSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewSession.
func (c *ReviewSessionClient) Update() *ReviewSessionUpdate {
	mutation := newReviewSessionMutation(c.config, OpUpdate)
	return &ReviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewSessionClient) UpdateOne(_m *ReviewSession) *ReviewSessionUpdateOne {
	mutation := newReviewSessionMutation(c.config, OpUpdateOne, withReviewSession(_m))
	return &ReviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewSessionClient) UpdateOneID(id int) *ReviewSessionUpdateOne {
	mutation := newReviewSessionMutation(c.config, OpUpdateOne, withReviewSessionID(id))
	return &ReviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewSession.
func (c *ReviewSessionClient) Delete() *ReviewSessionDelete {
	mutation := newReviewSessionMutation(c.config, OpDelete)
	return &ReviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewSessionClient) DeleteOne(_m *ReviewSession) *ReviewSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewSessionClient) DeleteOneID(id int) *ReviewSessionDeleteOne {
	builder := c.Delete().Where(reviewsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewSessionDeleteOne{builder}
}

// Query returns a query builder for ReviewSession.
func (c *ReviewSessionClient) Query() *ReviewSessionQuery {
	return &ReviewSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewSession entity by its id.
func (c *ReviewSessionClient) Get(ctx context.Context, id int) (*ReviewSession, error) {
	return c.Query().Where(reviewsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewSessionClient) GetX(ctx context.Context, id int) *ReviewSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewSessionClient) Hooks() []Hook {
	return c.hooks.ReviewSession
}

// Interceptors returns the client interceptors.
func (c *ReviewSessionClient) Interceptors() []Interceptor {
	return c.inters.ReviewSession
}

func (c *ReviewSessionClient) mutate(ctx context.Context, m *ReviewSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewSession mutation op: %q", m.Op())
	}
}

// VerseClient is a client for the Verse schema.
type VerseClient struct {
	config
}

// NewVerseClient returns a client for the Verse from the given config.
func NewVerseClient(c config) *VerseClient {
	return &VerseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verse.Hooks(f(g(h())))`.
func (c *VerseClient) Use(hooks ...Hook) {
	c.hooks.Verse = append(c.hooks.Verse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verse.Intercept(f(g(h())))`.
func (c *VerseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Verse = append(c.inters.Verse, interceptors...)
}

// Create returns a builder for creating a Verse entity.
func (c *VerseClient) Create() *VerseCreate {
	mutation := newVerseMutation(c.config, OpCreate)
	return &VerseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Verse entities.
func (c *VerseClient) CreateBulk(builders ...*VerseCreate) *VerseCreateBulk {
	return &VerseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerseClient) MapCreateBulk(slice any, setFunc func(*VerseCreate, int)) *VerseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerseCreateBulk{err: fmt.Errorf("calling to VerseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Verse.
func (c *VerseClient) Update() *VerseUpdate {
	mutation := newVerseMutation(c.config, OpUpdate)
	return &VerseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerseClient) UpdateOne(_m *Verse) *VerseUpdateOne {
	mutation := newVerseMutation(c.config, OpUpdateOne, withVerse(_m))
	return &VerseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerseClient) UpdateOneID(id int) *VerseUpdateOne {
	mutation := newVerseMutation(c.config, OpUpdateOne, withVerseID(id))
	return &VerseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Verse.
func (c *VerseClient) Delete() *VerseDelete {
	mutation := newVerseMutation(c.config, OpDelete)
	return &VerseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerseClient) DeleteOne(_m *Verse) *VerseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerseClient) DeleteOneID(id int) *VerseDeleteOne {
	builder := c.Delete().Where(verse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerseDeleteOne{builder}
}

// Query returns a query builder for Verse.
func (c *VerseClient) Query() *VerseQuery {
	return &VerseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerse},
		inters: c.Interceptors(),
	}
}

// Get returns a Verse entity by its id.
func (c *VerseClient) Get(ctx context.Context, id int) (*Verse, error) {
	return c.Query().Where(verse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerseClient) GetX(ctx context.Context, id int) *Verse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VerseClient) Hooks() []Hook {
	return c.hooks.Verse
}

// Interceptors returns the client interceptors.
func (c *VerseClient) Interceptors() []Interceptor {
	return c.inters.Verse
}

func (c *VerseClient) mutate(ctx context.Context, m *VerseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Verse mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ReviewSession, Verse []ent.Hook
	}
	inters struct {
		ReviewSession, Verse []ent.Interceptor
	}
)
