// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/crumble/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/ghostsetting"
	"github.com/abhisek/crumble/ent/pointevent"
	"github.com/abhisek/crumble/ent/progress"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/abhisek/crumble/ent/rewardclaim"
	"github.com/abhisek/crumble/ent/socialplatform"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GhostModeDay is the client for interacting with the GhostModeDay builders.
	GhostModeDay *GhostModeDayClient
	// GhostSetting is the client for interacting with the GhostSetting builders.
	GhostSetting *GhostSettingClient
	// PointEvent is the client for interacting with the PointEvent builders.
	PointEvent *PointEventClient
	// Progress is the client for interacting with the Progress builders.
	Progress *ProgressClient
	// QuizResponse is the client for interacting with the QuizResponse builders.
	QuizResponse *QuizResponseClient
	// QuizSubmission is the client for interacting with the QuizSubmission builders.
	QuizSubmission *QuizSubmissionClient
	// RewardClaim is the client for interacting with the RewardClaim builders.
	RewardClaim *RewardClaimClient
	// SocialPlatform is the client for interacting with the SocialPlatform builders.
	SocialPlatform *SocialPlatformClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GhostModeDay = NewGhostModeDayClient(c.config)
	c.GhostSetting = NewGhostSettingClient(c.config)
	c.PointEvent = NewPointEventClient(c.config)
	c.Progress = NewProgressClient(c.config)
	c.QuizResponse = NewQuizResponseClient(c.config)
	c.QuizSubmission = NewQuizSubmissionClient(c.config)
	c.RewardClaim = NewRewardClaimClient(c.config)
	c.SocialPlatform = NewSocialPlatformClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		GhostModeDay:   NewGhostModeDayClient(cfg),
		GhostSetting:   NewGhostSettingClient(cfg),
		PointEvent:     NewPointEventClient(cfg),
		Progress:       NewProgressClient(cfg),
		QuizResponse:   NewQuizResponseClient(cfg),
		QuizSubmission: NewQuizSubmissionClient(cfg),
		RewardClaim:    NewRewardClaimClient(cfg),
		SocialPlatform: NewSocialPlatformClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		GhostModeDay:   NewGhostModeDayClient(cfg),
		GhostSetting:   NewGhostSettingClient(cfg),
		PointEvent:     NewPointEventClient(cfg),
		Progress:       NewProgressClient(cfg),
		QuizResponse:   NewQuizResponseClient(cfg),
		QuizSubmission: NewQuizSubmissionClient(cfg),
		RewardClaim:    NewRewardClaimClient(cfg),
		SocialPlatform: NewSocialPlatformClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GhostModeDay.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.GhostModeDay, c.GhostSetting, c.PointEvent, c.Progress, c.QuizResponse,
		c.QuizSubmission, c.RewardClaim, c.SocialPlatform,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.GhostModeDay, c.GhostSetting, c.PointEvent, c.Progress, c.QuizResponse,
		c.QuizSubmission, c.RewardClaim, c.SocialPlatform,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GhostModeDayMutation:
		return c.GhostModeDay.mutate(ctx, m)
	case *GhostSettingMutation:
		return c.GhostSetting.mutate(ctx, m)
	case *PointEventMutation:
		return c.PointEvent.mutate(ctx, m)
	case *ProgressMutation:
		return c.Progress.mutate(ctx, m)
	case *QuizResponseMutation:
		return c.QuizResponse.mutate(ctx, m)
	case *QuizSubmissionMutation:
		return c.QuizSubmission.mutate(ctx, m)
	case *RewardClaimMutation:
		return c.RewardClaim.mutate(ctx, m)
	case *SocialPlatformMutation:
		return c.SocialPlatform.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GhostModeDayClient is a client for the GhostModeDay schema.
type GhostModeDayClient struct {
	config
}

// NewGhostModeDayClient returns a client for the GhostModeDay from the given config.
func NewGhostModeDayClient(c config) *GhostModeDayClient {
	return &GhostModeDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ghostmodeday.Hooks(f(g(h())))`.
func (c *GhostModeDayClient) Use(hooks ...Hook) {
	c.hooks.GhostModeDay = append(c.hooks.GhostModeDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ghostmodeday.Intercept(f(g(h())))`.
func (c *GhostModeDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.GhostModeDay = append(c.inters.GhostModeDay, interceptors...)
}

// Create returns a builder for creating a GhostModeDay entity.
func (c *GhostModeDayClient) Create() *GhostModeDayCreate {
	mutation := newGhostModeDayMutation(c.config, OpCreate)
	return &GhostModeDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GhostModeDay entities.
func (c *GhostModeDayClient) CreateBulk(builders ...*GhostModeDayCreate) *GhostModeDayCreateBulk {
	return &GhostModeDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GhostModeDayClient) MapCreateBulk(slice any, setFunc func(*GhostModeDayCreate, int)) *GhostModeDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GhostModeDayCreateBulk{err: fmt.Errorf("calling to GhostModeDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GhostModeDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GhostModeDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GhostModeDay.
func (c *GhostModeDayClient) Update() *GhostModeDayUpdate {
	mutation := newGhostModeDayMutation(c.config, OpUpdate)
	return &GhostModeDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GhostModeDayClient) UpdateOne(_m *GhostModeDay) *GhostModeDayUpdateOne {
	mutation := newGhostModeDayMutation(c.config, OpUpdateOne, withGhostModeDay(_m))
	return &GhostModeDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GhostModeDayClient) UpdateOneID(id int) *GhostModeDayUpdateOne {
	mutation := newGhostModeDayMutation(c.config, OpUpdateOne, withGhostModeDayID(id))
	return &GhostModeDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GhostModeDay.
func (c *GhostModeDayClient) Delete() *GhostModeDayDelete {
	mutation := newGhostModeDayMutation(c.config, OpDelete)
	return &GhostModeDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GhostModeDayClient) DeleteOne(_m *GhostModeDay) *GhostModeDayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GhostModeDayClient) DeleteOneID(id int) *GhostModeDayDeleteOne {
	builder := c.Delete().Where(ghostmodeday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GhostModeDayDeleteOne{builder}
}

// Query returns a query builder for GhostModeDay.
func (c *GhostModeDayClient) Query() *GhostModeDayQuery {
	return &GhostModeDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGhostModeDay},
		inters: c.Interceptors(),
	}
}

// Get returns a GhostModeDay entity by its id.
func (c *GhostModeDayClient) Get(ctx context.Context, id int) (*GhostModeDay, error) {
	return c.Query().Where(ghostmodeday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GhostModeDayClient) GetX(ctx context.Context, id int) *GhostModeDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GhostModeDayClient) Hooks() []Hook {
	return c.hooks.GhostModeDay
}

// Interceptors returns the client interceptors.
func (c *GhostModeDayClient) Interceptors() []Interceptor {
	return c.inters.GhostModeDay
}

func (c *GhostModeDayClient) mutate(ctx context.Context, m *GhostModeDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GhostModeDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GhostModeDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GhostModeDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GhostModeDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GhostModeDay mutation op: %q", m.Op())
	}
}

// GhostSettingClient is a client for the GhostSetting schema.
type GhostSettingClient struct {
	config
}

// NewGhostSettingClient returns a client for the GhostSetting from the given config.
func NewGhostSettingClient(c config) *GhostSettingClient {
	return &GhostSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ghostsetting.Hooks(f(g(h())))`.
func (c *GhostSettingClient) Use(hooks ...Hook) {
	c.hooks.GhostSetting = append(c.hooks.GhostSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ghostsetting.Intercept(f(g(h())))`.
func (c *GhostSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.GhostSetting = append(c.inters.GhostSetting, interceptors...)
}

// Create returns a builder for creating a GhostSetting entity.
func (c *GhostSettingClient) Create() *GhostSettingCreate {
	mutation := newGhostSettingMutation(c.config, OpCreate)
	return &GhostSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GhostSetting entities.
func (c *GhostSettingClient) CreateBulk(builders ...*GhostSettingCreate) *GhostSettingCreateBulk {
	return &GhostSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GhostSettingClient) MapCreateBulk(slice any, setFunc func(*GhostSettingCreate, int)) *GhostSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GhostSettingCreateBulk{err: fmt.Errorf("calling to GhostSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GhostSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GhostSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GhostSetting.
func (c *GhostSettingClient) Update() *GhostSettingUpdate {
	mutation := newGhostSettingMutation(c.config, OpUpdate)
	return &GhostSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GhostSettingClient) UpdateOne(_m *GhostSetting) *GhostSettingUpdateOne {
	mutation := newGhostSettingMutation(c.config, OpUpdateOne, withGhostSetting(_m))
	return &GhostSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GhostSettingClient) UpdateOneID(id int) *GhostSettingUpdateOne {
	mutation := newGhostSettingMutation(c.config, OpUpdateOne, withGhostSettingID(id))
	return &GhostSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GhostSetting.
func (c *GhostSettingClient) Delete() *GhostSettingDelete {
	mutation := newGhostSettingMutation(c.config, OpDelete)
	return &GhostSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GhostSettingClient) DeleteOne(_m *GhostSetting) *GhostSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GhostSettingClient) DeleteOneID(id int) *GhostSettingDeleteOne {
	builder := c.Delete().Where(ghostsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GhostSettingDeleteOne{builder}
}

// Query returns a query builder for GhostSetting.
func (c *GhostSettingClient) Query() *GhostSettingQuery {
	return &GhostSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGhostSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a GhostSetting entity by its id.
func (c *GhostSettingClient) Get(ctx context.Context, id int) (*GhostSetting, error) {
	return c.Query().Where(ghostsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GhostSettingClient) GetX(ctx context.Context, id int) *GhostSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GhostSettingClient) Hooks() []Hook {
	return c.hooks.GhostSetting
}

// Interceptors returns the client interceptors.
func (c *GhostSettingClient) Interceptors() []Interceptor {
	return c.inters.GhostSetting
}

func (c *GhostSettingClient) mutate(ctx context.Context, m *GhostSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GhostSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GhostSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GhostSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GhostSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GhostSetting mutation op: %q", m.Op())
	}
}

// PointEventClient is a client for the PointEvent schema.
type PointEventClient struct {
	config
}

// NewPointEventClient returns a client for the PointEvent from the given config.
func NewPointEventClient(c config) *PointEventClient {
	return &PointEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pointevent.Hooks(f(g(h())))`.
func (c *PointEventClient) Use(hooks ...Hook) {
	c.hooks.PointEvent = append(c.hooks.PointEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pointevent.Intercept(f(g(h())))`.
func (c *PointEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PointEvent = append(c.inters.PointEvent, interceptors...)
}

// Create returns a builder for creating a PointEvent entity.
func (c *PointEventClient) Create() *PointEventCreate {
	mutation := newPointEventMutation(c.config, OpCreate)
	return &PointEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PointEvent entities.
func (c *PointEventClient) CreateBulk(builders ...*PointEventCreate) *PointEventCreateBulk {
	return &PointEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PointEventClient) MapCreateBulk(slice any, setFunc func(*PointEventCreate, int)) *PointEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PointEventCreateBulk{err: fmt.Errorf("calling to PointEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PointEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PointEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PointEvent.
func (c *PointEventClient) Update() *PointEventUpdate {
	mutation := newPointEventMutation(c.config, OpUpdate)
	return &PointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PointEventClient) UpdateOne(_m *PointEvent) *PointEventUpdateOne {
	mutation := newPointEventMutation(c.config, OpUpdateOne, withPointEvent(_m))
	return &PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PointEventClient) UpdateOneID(id int) *PointEventUpdateOne {
	mutation := newPointEventMutation(c.config, OpUpdateOne, withPointEventID(id))
	return &PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PointEvent.
func (c *PointEventClient) Delete() *PointEventDelete {
	mutation := newPointEventMutation(c.config, OpDelete)
	return &PointEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PointEventClient) DeleteOne(_m *PointEvent) *PointEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PointEventClient) DeleteOneID(id int) *PointEventDeleteOne {
	builder := c.Delete().Where(pointevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PointEventDeleteOne{builder}
}

// Query returns a query builder for PointEvent.
func (c *PointEventClient) Query() *PointEventQuery {
	return &PointEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePointEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PointEvent entity by its id.
func (c *PointEventClient) Get(ctx context.Context, id int) (*PointEvent, error) {
	return c.Query().Where(pointevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PointEventClient) GetX(ctx context.Context, id int) *PointEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PointEventClient) Hooks() []Hook {
	return c.hooks.PointEvent
}

// Interceptors returns the client interceptors.
func (c *PointEventClient) Interceptors() []Interceptor {
	return c.inters.PointEvent
}

func (c *PointEventClient) mutate(ctx context.Context, m *PointEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PointEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PointEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PointEvent mutation op: %q", m.Op())
	}
}

// ProgressClient is a client for the Progress schema.
type ProgressClient struct {
	config
}

// NewProgressClient returns a client for the Progress from the given config.
func NewProgressClient(c config) *ProgressClient {
	return &ProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progress.Hooks(f(g(h())))`.
func (c *ProgressClient) Use(hooks ...Hook) {
	c.hooks.Progress = append(c.hooks.Progress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progress.Intercept(f(g(h())))`.
func (c *ProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.Progress = append(c.inters.Progress, interceptors...)
}

// Create returns a builder for creating a Progress entity.
func (c *ProgressClient) Create() *ProgressCreate {
	mutation := newProgressMutation(c.config, OpCreate)
	return &ProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Progress entities.
func (c *ProgressClient) CreateBulk(builders ...*ProgressCreate) *ProgressCreateBulk {
	return &ProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressClient) MapCreateBulk(slice any, setFunc func(*ProgressCreate, int)) *ProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressCreateBulk{err: fmt.Errorf("calling to ProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Progress.
func (c *ProgressClient) Update() *ProgressUpdate {
	mutation := newProgressMutation(c.config, OpUpdate)
	return &ProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressClient) UpdateOne(_m *Progress) *ProgressUpdateOne {
	mutation := newProgressMutation(c.config, OpUpdateOne, withProgress(_m))
	return &ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressClient) UpdateOneID(id int) *ProgressUpdateOne {
	mutation := newProgressMutation(c.config, OpUpdateOne, withProgressID(id))
	return &ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Progress.
func (c *ProgressClient) Delete() *ProgressDelete {
	mutation := newProgressMutation(c.config, OpDelete)
	return &ProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressClient) DeleteOne(_m *Progress) *ProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressClient) DeleteOneID(id int) *ProgressDeleteOne {
	builder := c.Delete().Where(progress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressDeleteOne{builder}
}

// Query returns a query builder for Progress.
func (c *ProgressClient) Query() *ProgressQuery {
	return &ProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a Progress entity by its id.
func (c *ProgressClient) Get(ctx context.Context, id int) (*Progress, error) {
	return c.Query().Where(progress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressClient) GetX(ctx context.Context, id int) *Progress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressClient) Hooks() []Hook {
	return c.hooks.Progress
}

// Interceptors returns the client interceptors.
func (c *ProgressClient) Interceptors() []Interceptor {
	return c.inters.Progress
}

func (c *ProgressClient) mutate(ctx context.Context, m *ProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Progress mutation op: %q", m.Op())
	}
}

// QuizResponseClient is a client for the QuizResponse schema.
type QuizResponseClient struct {
	config
}

// NewQuizResponseClient returns a client for the QuizResponse from the given config.
func NewQuizResponseClient(c config) *QuizResponseClient {
	return &QuizResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizresponse.Hooks(f(g(h())))`.
func (c *QuizResponseClient) Use(hooks ...Hook) {
	c.hooks.QuizResponse = append(c.hooks.QuizResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizresponse.Intercept(f(g(h())))`.
func (c *QuizResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizResponse = append(c.inters.QuizResponse, interceptors...)
}

// Create returns a builder for creating a QuizResponse entity.
func (c *QuizResponseClient) Create() *QuizResponseCreate {
	mutation := newQuizResponseMutation(c.config, OpCreate)
	return &QuizResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizResponse entities.
func (c *QuizResponseClient) CreateBulk(builders ...*QuizResponseCreate) *QuizResponseCreateBulk {
	return &QuizResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizResponseClient) MapCreateBulk(slice any, setFunc func(*QuizResponseCreate, int)) *QuizResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizResponseCreateBulk{err: fmt.Errorf("calling to QuizResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizResponse.
func (c *QuizResponseClient) Update() *QuizResponseUpdate {
	mutation := newQuizResponseMutation(c.config, OpUpdate)
	return &QuizResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizResponseClient) UpdateOne(_m *QuizResponse) *QuizResponseUpdateOne {
	mutation := newQuizResponseMutation(c.config, OpUpdateOne, withQuizResponse(_m))
	return &QuizResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizResponseClient) UpdateOneID(id int) *QuizResponseUpdateOne {
	mutation := newQuizResponseMutation(c.config, OpUpdateOne, withQuizResponseID(id))
	return &QuizResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizResponse.
func (c *QuizResponseClient) Delete() *QuizResponseDelete {
	mutation := newQuizResponseMutation(c.config, OpDelete)
	return &QuizResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizResponseClient) DeleteOne(_m *QuizResponse) *QuizResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizResponseClient) DeleteOneID(id int) *QuizResponseDeleteOne {
	builder := c.Delete().Where(quizresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizResponseDeleteOne{builder}
}

// Query returns a query builder for QuizResponse.
func (c *QuizResponseClient) Query() *QuizResponseQuery {
	return &QuizResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizResponse entity by its id.
func (c *QuizResponseClient) Get(ctx context.Context, id int) (*QuizResponse, error) {
	return c.Query().Where(quizresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizResponseClient) GetX(ctx context.Context, id int) *QuizResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a QuizResponse.
func (c *QuizResponseClient) QuerySubmission(_m *QuizResponse) *QuizSubmissionQuery {
	query := (&QuizSubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quizresponse.Table, quizresponse.FieldID, id),
			sqlgraph.To(quizsubmission.Table, quizsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quizresponse.SubmissionTable, quizresponse.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuizResponseClient) Hooks() []Hook {
	return c.hooks.QuizResponse
}

// Interceptors returns the client interceptors.
func (c *QuizResponseClient) Interceptors() []Interceptor {
	return c.inters.QuizResponse
}

func (c *QuizResponseClient) mutate(ctx context.Context, m *QuizResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizResponse mutation op: %q", m.Op())
	}
}

// QuizSubmissionClient is a client for the QuizSubmission schema.
type QuizSubmissionClient struct {
	config
}

// NewQuizSubmissionClient returns a client for the QuizSubmission from the given config.
func NewQuizSubmissionClient(c config) *QuizSubmissionClient {
	return &QuizSubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizsubmission.Hooks(f(g(h())))`.
func (c *QuizSubmissionClient) Use(hooks ...Hook) {
	c.hooks.QuizSubmission = append(c.hooks.QuizSubmission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizsubmission.Intercept(f(g(h())))`.
func (c *QuizSubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizSubmission = append(c.inters.QuizSubmission, interceptors...)
}

// Create returns a builder for creating a QuizSubmission entity.
func (c *QuizSubmissionClient) Create() *QuizSubmissionCreate {
	mutation := newQuizSubmissionMutation(c.config, OpCreate)
	return &QuizSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizSubmission entities.
func (c *QuizSubmissionClient) CreateBulk(builders ...*QuizSubmissionCreate) *QuizSubmissionCreateBulk {
	return &QuizSubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizSubmissionClient) MapCreateBulk(slice any, setFunc func(*QuizSubmissionCreate, int)) *QuizSubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizSubmissionCreateBulk{err: fmt.Errorf("calling to QuizSubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizSubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizSubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizSubmission.
func (c *QuizSubmissionClient) Update() *QuizSubmissionUpdate {
	mutation := newQuizSubmissionMutation(c.config, OpUpdate)
	return &QuizSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizSubmissionClient) UpdateOne(_m *QuizSubmission) *QuizSubmissionUpdateOne {
	mutation := newQuizSubmissionMutation(c.config, OpUpdateOne, withQuizSubmission(_m))
	return &QuizSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizSubmissionClient) UpdateOneID(id uuid.UUID) *QuizSubmissionUpdateOne {
	mutation := newQuizSubmissionMutation(c.config, OpUpdateOne, withQuizSubmissionID(id))
	return &QuizSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizSubmission.
func (c *QuizSubmissionClient) Delete() *QuizSubmissionDelete {
	mutation := newQuizSubmissionMutation(c.config, OpDelete)
	return &QuizSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizSubmissionClient) DeleteOne(_m *QuizSubmission) *QuizSubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizSubmissionClient) DeleteOneID(id uuid.UUID) *QuizSubmissionDeleteOne {
	builder := c.Delete().Where(quizsubmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizSubmissionDeleteOne{builder}
}

// Query returns a query builder for QuizSubmission.
func (c *QuizSubmissionClient) Query() *QuizSubmissionQuery {
	return &QuizSubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizSubmission entity by its id.
func (c *QuizSubmissionClient) Get(ctx context.Context, id uuid.UUID) (*QuizSubmission, error) {
	return c.Query().Where(quizsubmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizSubmissionClient) GetX(ctx context.Context, id uuid.UUID) *QuizSubmission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResponses queries the responses edge of a QuizSubmission.
func (c *QuizSubmissionClient) QueryResponses(_m *QuizSubmission) *QuizResponseQuery {
	query := (&QuizResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(quizsubmission.Table, quizsubmission.FieldID, id),
			sqlgraph.To(quizresponse.Table, quizresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quizsubmission.ResponsesTable, quizsubmission.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuizSubmissionClient) Hooks() []Hook {
	return c.hooks.QuizSubmission
}

// Interceptors returns the client interceptors.
func (c *QuizSubmissionClient) Interceptors() []Interceptor {
	return c.inters.QuizSubmission
}

func (c *QuizSubmissionClient) mutate(ctx context.Context, m *QuizSubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizSubmission mutation op: %q", m.Op())
	}
}

// RewardClaimClient is a client for the RewardClaim schema.
type RewardClaimClient struct {
	config
}

// NewRewardClaimClient returns a client for the RewardClaim from the given config.
func NewRewardClaimClient(c config) *RewardClaimClient {
	return &RewardClaimClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rewardclaim.Hooks(f(g(h())))`.
func (c *RewardClaimClient) Use(hooks ...Hook) {
	c.hooks.RewardClaim = append(c.hooks.RewardClaim, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rewardclaim.Intercept(f(g(h())))`.
func (c *RewardClaimClient) Intercept(interceptors ...Interceptor) {
	c.inters.RewardClaim = append(c.inters.RewardClaim, interceptors...)
}

// Create returns a builder for creating a RewardClaim entity.
func (c *RewardClaimClient) Create() *RewardClaimCreate {
	mutation := newRewardClaimMutation(c.config, OpCreate)
	return &RewardClaimCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RewardClaim entities.
func (c *RewardClaimClient) CreateBulk(builders ...*RewardClaimCreate) *RewardClaimCreateBulk {
	return &RewardClaimCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RewardClaimClient) MapCreateBulk(slice any, setFunc func(*RewardClaimCreate, int)) *RewardClaimCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RewardClaimCreateBulk{err: fmt.Errorf("calling to RewardClaimClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RewardClaimCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RewardClaimCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RewardClaim.
func (c *RewardClaimClient) Update() *RewardClaimUpdate {
	mutation := newRewardClaimMutation(c.config, OpUpdate)
	return &RewardClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RewardClaimClient) UpdateOne(_m *RewardClaim) *RewardClaimUpdateOne {
	mutation := newRewardClaimMutation(c.config, OpUpdateOne, withRewardClaim(_m))
	return &RewardClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RewardClaimClient) UpdateOneID(id int) *RewardClaimUpdateOne {
	mutation := newRewardClaimMutation(c.config, OpUpdateOne, withRewardClaimID(id))
	return &RewardClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RewardClaim.
func (c *RewardClaimClient) Delete() *RewardClaimDelete {
	mutation := newRewardClaimMutation(c.config, OpDelete)
	return &RewardClaimDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RewardClaimClient) DeleteOne(_m *RewardClaim) *RewardClaimDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RewardClaimClient) DeleteOneID(id int) *RewardClaimDeleteOne {
	builder := c.Delete().Where(rewardclaim.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RewardClaimDeleteOne{builder}
}

// Query returns a query builder for RewardClaim.
func (c *RewardClaimClient) Query() *RewardClaimQuery {
	return &RewardClaimQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRewardClaim},
		inters: c.Interceptors(),
	}
}

// Get returns a RewardClaim entity by its id.
func (c *RewardClaimClient) Get(ctx context.Context, id int) (*RewardClaim, error) {
	return c.Query().Where(rewardclaim.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RewardClaimClient) GetX(ctx context.Context, id int) *RewardClaim {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RewardClaimClient) Hooks() []Hook {
	return c.hooks.RewardClaim
}

// Interceptors returns the client interceptors.
func (c *RewardClaimClient) Interceptors() []Interceptor {
	return c.inters.RewardClaim
}

func (c *RewardClaimClient) mutate(ctx context.Context, m *RewardClaimMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RewardClaimCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RewardClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RewardClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RewardClaimDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RewardClaim mutation op: %q", m.Op())
	}
}

// SocialPlatformClient is a client for the SocialPlatform schema.
type SocialPlatformClient struct {
	config
}

// NewSocialPlatformClient returns a client for the SocialPlatform from the given config.
func NewSocialPlatformClient(c config) *SocialPlatformClient {
	return &SocialPlatformClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `socialplatform.Hooks(f(g(h())))`.
func (c *SocialPlatformClient) Use(hooks ...Hook) {
	c.hooks.SocialPlatform = append(c.hooks.SocialPlatform, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `socialplatform.Intercept(f(g(h())))`.
func (c *SocialPlatformClient) Intercept(interceptors ...Interceptor) {
	c.inters.SocialPlatform = append(c.inters.SocialPlatform, interceptors...)
}

// Create returns a builder for creating a SocialPlatform entity.
func (c *SocialPlatformClient) Create() *SocialPlatformCreate {
	mutation := newSocialPlatformMutation(c.config, OpCreate)
	return &SocialPlatformCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SocialPlatform entities.
func (c *SocialPlatformClient) CreateBulk(builders ...*SocialPlatformCreate) *SocialPlatformCreateBulk {
	return &SocialPlatformCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SocialPlatformClient) MapCreateBulk(slice any, setFunc func(*SocialPlatformCreate, int)) *SocialPlatformCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SocialPlatformCreateBulk{err: fmt.Errorf("calling to SocialPlatformClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SocialPlatformCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SocialPlatformCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SocialPlatform.
func (c *SocialPlatformClient) Update() *SocialPlatformUpdate {
	mutation := newSocialPlatformMutation(c.config, OpUpdate)
	return &SocialPlatformUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SocialPlatformClient) UpdateOne(_m *SocialPlatform) *SocialPlatformUpdateOne {
	mutation := newSocialPlatformMutation(c.config, OpUpdateOne, withSocialPlatform(_m))
	return &SocialPlatformUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SocialPlatformClient) UpdateOneID(id int) *SocialPlatformUpdateOne {
	mutation := newSocialPlatformMutation(c.config, OpUpdateOne, withSocialPlatformID(id))
	return &SocialPlatformUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SocialPlatform.
func (c *SocialPlatformClient) Delete() *SocialPlatformDelete {
	mutation := newSocialPlatformMutation(c.config, OpDelete)
	return &SocialPlatformDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SocialPlatformClient) DeleteOne(_m *SocialPlatform) *SocialPlatformDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SocialPlatformClient) DeleteOneID(id int) *SocialPlatformDeleteOne {
	builder := c.Delete().Where(socialplatform.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SocialPlatformDeleteOne{builder}
}

// Query returns a query builder for SocialPlatform.
func (c *SocialPlatformClient) Query() *SocialPlatformQuery {
	return &SocialPlatformQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSocialPlatform},
		inters: c.Interceptors(),
	}
}

// Get returns a SocialPlatform entity by its id.
func (c *SocialPlatformClient) Get(ctx context.Context, id int) (*SocialPlatform, error) {
	return c.Query().Where(socialplatform.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SocialPlatformClient) GetX(ctx context.Context, id int) *SocialPlatform {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SocialPlatformClient) Hooks() []Hook {
	return c.hooks.SocialPlatform
}

// Interceptors returns the client interceptors.
func (c *SocialPlatformClient) Interceptors() []Interceptor {
	return c.inters.SocialPlatform
}

func (c *SocialPlatformClient) mutate(ctx context.Context, m *SocialPlatformMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SocialPlatformCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SocialPlatformUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SocialPlatformUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SocialPlatformDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SocialPlatform mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GhostModeDay, GhostSetting, PointEvent, Progress, QuizResponse, QuizSubmission,
		RewardClaim, SocialPlatform []ent.Hook
	}
	inters struct {
		GhostModeDay, GhostSetting, PointEvent, Progress, QuizResponse, QuizSubmission,
		RewardClaim, SocialPlatform []ent.Interceptor
	}
)
