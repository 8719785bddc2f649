// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/forecourt-labs/shiftscan/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DepartmentSale is the client for interacting with the DepartmentSale builders.
	DepartmentSale *DepartmentSaleClient
	// ItemSale is the client for interacting with the ItemSale builders.
	ItemSale *ItemSaleClient
	// ReportException is the client for interacting with the ReportException builders.
	ReportException *ReportExceptionClient
	// ShiftReport is the client for interacting with the ShiftReport builders.
	ShiftReport *ShiftReportClient
	// Store is the client for interacting with the Store builders.
	Store *StoreClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DepartmentSale = NewDepartmentSaleClient(c.config)
	c.ItemSale = NewItemSaleClient(c.config)
	c.ReportException = NewReportExceptionClient(c.config)
	c.ShiftReport = NewShiftReportClient(c.config)
	c.Store = NewStoreClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		DepartmentSale:  NewDepartmentSaleClient(cfg),
		ItemSale:        NewItemSaleClient(cfg),
		ReportException: NewReportExceptionClient(cfg),
		ShiftReport:     NewShiftReportClient(cfg),
		Store:           NewStoreClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		DepartmentSale:  NewDepartmentSaleClient(cfg),
		ItemSale:        NewItemSaleClient(cfg),
		ReportException: NewReportExceptionClient(cfg),
		ShiftReport:     NewShiftReportClient(cfg),
		Store:           NewStoreClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DepartmentSale.
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
	c.DepartmentSale.Use(hooks...)
	c.ItemSale.Use(hooks...)
	c.ReportException.Use(hooks...)
	c.ShiftReport.Use(hooks...)
	c.Store.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DepartmentSale.Intercept(interceptors...)
	c.ItemSale.Intercept(interceptors...)
	c.ReportException.Intercept(interceptors...)
	c.ShiftReport.Intercept(interceptors...)
	c.Store.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DepartmentSaleMutation:
		return c.DepartmentSale.mutate(ctx, m)
	case *ItemSaleMutation:
		return c.ItemSale.mutate(ctx, m)
	case *ReportExceptionMutation:
		return c.ReportException.mutate(ctx, m)
	case *ShiftReportMutation:
		return c.ShiftReport.mutate(ctx, m)
	case *StoreMutation:
		return c.Store.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DepartmentSaleClient is a client for the DepartmentSale schema.
type DepartmentSaleClient struct {
	config
}

// NewDepartmentSaleClient returns a client for the DepartmentSale from the given config.
func NewDepartmentSaleClient(c config) *DepartmentSaleClient {
	return &DepartmentSaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `departmentsale.Hooks(f(g(h())))`.
func (c *DepartmentSaleClient) Use(hooks ...Hook) {
	c.hooks.DepartmentSale = append(c.hooks.DepartmentSale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `departmentsale.Intercept(f(g(h())))`.
func (c *DepartmentSaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.DepartmentSale = append(c.inters.DepartmentSale, interceptors...)
}

// Create returns a builder for creating a DepartmentSale entity.
func (c *DepartmentSaleClient) Create() *DepartmentSaleCreate {
	mutation := newDepartmentSaleMutation(c.config, OpCreate)
	return &DepartmentSaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DepartmentSale entities.
func (c *DepartmentSaleClient) CreateBulk(builders ...*DepartmentSaleCreate) *DepartmentSaleCreateBulk {
	return &DepartmentSaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DepartmentSaleClient) MapCreateBulk(slice any, setFunc func(*DepartmentSaleCreate, int)) *DepartmentSaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DepartmentSaleCreateBulk{err: fmt.Errorf("calling to DepartmentSaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DepartmentSaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DepartmentSaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DepartmentSale.
func (c *DepartmentSaleClient) Update() *DepartmentSaleUpdate {
	mutation := newDepartmentSaleMutation(c.config, OpUpdate)
	return &DepartmentSaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DepartmentSaleClient) UpdateOne(ds *DepartmentSale) *DepartmentSaleUpdateOne {
	mutation := newDepartmentSaleMutation(c.config, OpUpdateOne, withDepartmentSale(ds))
	return &DepartmentSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DepartmentSaleClient) UpdateOneID(id uuid.UUID) *DepartmentSaleUpdateOne {
	mutation := newDepartmentSaleMutation(c.config, OpUpdateOne, withDepartmentSaleID(id))
	return &DepartmentSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DepartmentSale.
func (c *DepartmentSaleClient) Delete() *DepartmentSaleDelete {
	mutation := newDepartmentSaleMutation(c.config, OpDelete)
	return &DepartmentSaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DepartmentSaleClient) DeleteOne(ds *DepartmentSale) *DepartmentSaleDeleteOne {
	return c.DeleteOneID(ds.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DepartmentSaleClient) DeleteOneID(id uuid.UUID) *DepartmentSaleDeleteOne {
	builder := c.Delete().Where(departmentsale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DepartmentSaleDeleteOne{builder}
}

// Query returns a query builder for DepartmentSale.
func (c *DepartmentSaleClient) Query() *DepartmentSaleQuery {
	return &DepartmentSaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDepartmentSale},
		inters: c.Interceptors(),
	}
}

// Get returns a DepartmentSale entity by its id.
func (c *DepartmentSaleClient) Get(ctx context.Context, id uuid.UUID) (*DepartmentSale, error) {
	return c.Query().Where(departmentsale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DepartmentSaleClient) GetX(ctx context.Context, id uuid.UUID) *DepartmentSale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a DepartmentSale.
func (c *DepartmentSaleClient) QueryReport(ds *DepartmentSale) *ShiftReportQuery {
	query := (&ShiftReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ds.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(departmentsale.Table, departmentsale.FieldID, id),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, departmentsale.ReportTable, departmentsale.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(ds.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DepartmentSaleClient) Hooks() []Hook {
	return c.hooks.DepartmentSale
}

// Interceptors returns the client interceptors.
func (c *DepartmentSaleClient) Interceptors() []Interceptor {
	return c.inters.DepartmentSale
}

func (c *DepartmentSaleClient) mutate(ctx context.Context, m *DepartmentSaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DepartmentSaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DepartmentSaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DepartmentSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DepartmentSaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DepartmentSale mutation op: %q", m.Op())
	}
}

// ItemSaleClient is a client for the ItemSale schema.
type ItemSaleClient struct {
	config
}

// NewItemSaleClient returns a client for the ItemSale from the given config.
func NewItemSaleClient(c config) *ItemSaleClient {
	return &ItemSaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemsale.Hooks(f(g(h())))`.
func (c *ItemSaleClient) Use(hooks ...Hook) {
	c.hooks.ItemSale = append(c.hooks.ItemSale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemsale.Intercept(f(g(h())))`.
func (c *ItemSaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemSale = append(c.inters.ItemSale, interceptors...)
}

// Create returns a builder for creating a ItemSale entity.
func (c *ItemSaleClient) Create() *ItemSaleCreate {
	mutation := newItemSaleMutation(c.config, OpCreate)
	return &ItemSaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemSale entities.
func (c *ItemSaleClient) CreateBulk(builders ...*ItemSaleCreate) *ItemSaleCreateBulk {
	return &ItemSaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemSaleClient) MapCreateBulk(slice any, setFunc func(*ItemSaleCreate, int)) *ItemSaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemSaleCreateBulk{err: fmt.Errorf("calling to ItemSaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemSaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemSaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemSale.
func (c *ItemSaleClient) Update() *ItemSaleUpdate {
	mutation := newItemSaleMutation(c.config, OpUpdate)
	return &ItemSaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemSaleClient) UpdateOne(is *ItemSale) *ItemSaleUpdateOne {
	mutation := newItemSaleMutation(c.config, OpUpdateOne, withItemSale(is))
	return &ItemSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemSaleClient) UpdateOneID(id uuid.UUID) *ItemSaleUpdateOne {
	mutation := newItemSaleMutation(c.config, OpUpdateOne, withItemSaleID(id))
	return &ItemSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemSale.
func (c *ItemSaleClient) Delete() *ItemSaleDelete {
	mutation := newItemSaleMutation(c.config, OpDelete)
	return &ItemSaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemSaleClient) DeleteOne(is *ItemSale) *ItemSaleDeleteOne {
	return c.DeleteOneID(is.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemSaleClient) DeleteOneID(id uuid.UUID) *ItemSaleDeleteOne {
	builder := c.Delete().Where(itemsale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemSaleDeleteOne{builder}
}

// Query returns a query builder for ItemSale.
func (c *ItemSaleClient) Query() *ItemSaleQuery {
	return &ItemSaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemSale},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemSale entity by its id.
func (c *ItemSaleClient) Get(ctx context.Context, id uuid.UUID) (*ItemSale, error) {
	return c.Query().Where(itemsale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemSaleClient) GetX(ctx context.Context, id uuid.UUID) *ItemSale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a ItemSale.
func (c *ItemSaleClient) QueryReport(is *ItemSale) *ShiftReportQuery {
	query := (&ShiftReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := is.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(itemsale.Table, itemsale.FieldID, id),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, itemsale.ReportTable, itemsale.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(is.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ItemSaleClient) Hooks() []Hook {
	return c.hooks.ItemSale
}

// Interceptors returns the client interceptors.
func (c *ItemSaleClient) Interceptors() []Interceptor {
	return c.inters.ItemSale
}

func (c *ItemSaleClient) mutate(ctx context.Context, m *ItemSaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemSaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemSaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemSaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemSaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemSale mutation op: %q", m.Op())
	}
}

// ReportExceptionClient is a client for the ReportException schema.
type ReportExceptionClient struct {
	config
}

// NewReportExceptionClient returns a client for the ReportException from the given config.
func NewReportExceptionClient(c config) *ReportExceptionClient {
	return &ReportExceptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportexception.Hooks(f(g(h())))`.
func (c *ReportExceptionClient) Use(hooks ...Hook) {
	c.hooks.ReportException = append(c.hooks.ReportException, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportexception.Intercept(f(g(h())))`.
func (c *ReportExceptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportException = append(c.inters.ReportException, interceptors...)
}

// Create returns a builder for creating a ReportException entity.
func (c *ReportExceptionClient) Create() *ReportExceptionCreate {
	mutation := newReportExceptionMutation(c.config, OpCreate)
	return &ReportExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportException entities.
func (c *ReportExceptionClient) CreateBulk(builders ...*ReportExceptionCreate) *ReportExceptionCreateBulk {
	return &ReportExceptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportExceptionClient) MapCreateBulk(slice any, setFunc func(*ReportExceptionCreate, int)) *ReportExceptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportExceptionCreateBulk{err: fmt.Errorf("calling to ReportExceptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportExceptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportExceptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportException.
func (c *ReportExceptionClient) Update() *ReportExceptionUpdate {
	mutation := newReportExceptionMutation(c.config, OpUpdate)
	return &ReportExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportExceptionClient) UpdateOne(re *ReportException) *ReportExceptionUpdateOne {
	mutation := newReportExceptionMutation(c.config, OpUpdateOne, withReportException(re))
	return &ReportExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportExceptionClient) UpdateOneID(id uuid.UUID) *ReportExceptionUpdateOne {
	mutation := newReportExceptionMutation(c.config, OpUpdateOne, withReportExceptionID(id))
	return &ReportExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportException.
func (c *ReportExceptionClient) Delete() *ReportExceptionDelete {
	mutation := newReportExceptionMutation(c.config, OpDelete)
	return &ReportExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportExceptionClient) DeleteOne(re *ReportException) *ReportExceptionDeleteOne {
	return c.DeleteOneID(re.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportExceptionClient) DeleteOneID(id uuid.UUID) *ReportExceptionDeleteOne {
	builder := c.Delete().Where(reportexception.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportExceptionDeleteOne{builder}
}

// Query returns a query builder for ReportException.
func (c *ReportExceptionClient) Query() *ReportExceptionQuery {
	return &ReportExceptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportException},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportException entity by its id.
func (c *ReportExceptionClient) Get(ctx context.Context, id uuid.UUID) (*ReportException, error) {
	return c.Query().Where(reportexception.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportExceptionClient) GetX(ctx context.Context, id uuid.UUID) *ReportException {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a ReportException.
func (c *ReportExceptionClient) QueryReport(re *ReportException) *ShiftReportQuery {
	query := (&ShiftReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := re.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportexception.Table, reportexception.FieldID, id),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportexception.ReportTable, reportexception.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(re.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportExceptionClient) Hooks() []Hook {
	return c.hooks.ReportException
}

// Interceptors returns the client interceptors.
func (c *ReportExceptionClient) Interceptors() []Interceptor {
	return c.inters.ReportException
}

func (c *ReportExceptionClient) mutate(ctx context.Context, m *ReportExceptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportException mutation op: %q", m.Op())
	}
}

// ShiftReportClient is a client for the ShiftReport schema.
type ShiftReportClient struct {
	config
}

// NewShiftReportClient returns a client for the ShiftReport from the given config.
func NewShiftReportClient(c config) *ShiftReportClient {
	return &ShiftReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `shiftreport.Hooks(f(g(h())))`.
func (c *ShiftReportClient) Use(hooks ...Hook) {
	c.hooks.ShiftReport = append(c.hooks.ShiftReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `shiftreport.Intercept(f(g(h())))`.
func (c *ShiftReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.ShiftReport = append(c.inters.ShiftReport, interceptors...)
}

// Create returns a builder for creating a ShiftReport entity.
func (c *ShiftReportClient) Create() *ShiftReportCreate {
	mutation := newShiftReportMutation(c.config, OpCreate)
	return &ShiftReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ShiftReport entities.
func (c *ShiftReportClient) CreateBulk(builders ...*ShiftReportCreate) *ShiftReportCreateBulk {
	return &ShiftReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ShiftReportClient) MapCreateBulk(slice any, setFunc func(*ShiftReportCreate, int)) *ShiftReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ShiftReportCreateBulk{err: fmt.Errorf("calling to ShiftReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ShiftReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ShiftReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ShiftReport.
func (c *ShiftReportClient) Update() *ShiftReportUpdate {
	mutation := newShiftReportMutation(c.config, OpUpdate)
	return &ShiftReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ShiftReportClient) UpdateOne(sr *ShiftReport) *ShiftReportUpdateOne {
	mutation := newShiftReportMutation(c.config, OpUpdateOne, withShiftReport(sr))
	return &ShiftReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ShiftReportClient) UpdateOneID(id uuid.UUID) *ShiftReportUpdateOne {
	mutation := newShiftReportMutation(c.config, OpUpdateOne, withShiftReportID(id))
	return &ShiftReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ShiftReport.
func (c *ShiftReportClient) Delete() *ShiftReportDelete {
	mutation := newShiftReportMutation(c.config, OpDelete)
	return &ShiftReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ShiftReportClient) DeleteOne(sr *ShiftReport) *ShiftReportDeleteOne {
	return c.DeleteOneID(sr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ShiftReportClient) DeleteOneID(id uuid.UUID) *ShiftReportDeleteOne {
	builder := c.Delete().Where(shiftreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ShiftReportDeleteOne{builder}
}

// Query returns a query builder for ShiftReport.
func (c *ShiftReportClient) Query() *ShiftReportQuery {
	return &ShiftReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeShiftReport},
		inters: c.Interceptors(),
	}
}

// Get returns a ShiftReport entity by its id.
func (c *ShiftReportClient) Get(ctx context.Context, id uuid.UUID) (*ShiftReport, error) {
	return c.Query().Where(shiftreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ShiftReportClient) GetX(ctx context.Context, id uuid.UUID) *ShiftReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStore queries the store edge of a ShiftReport.
func (c *ShiftReportClient) QueryStore(sr *ShiftReport) *StoreQuery {
	query := (&StoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, id),
			sqlgraph.To(store.Table, store.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shiftreport.StoreTable, shiftreport.StoreColumn),
		)
		fromV = sqlgraph.Neighbors(sr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDepartments queries the departments edge of a ShiftReport.
func (c *ShiftReportClient) QueryDepartments(sr *ShiftReport) *DepartmentSaleQuery {
	query := (&DepartmentSaleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, id),
			sqlgraph.To(departmentsale.Table, departmentsale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, shiftreport.DepartmentsTable, shiftreport.DepartmentsColumn),
		)
		fromV = sqlgraph.Neighbors(sr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a ShiftReport.
func (c *ShiftReportClient) QueryItems(sr *ShiftReport) *ItemSaleQuery {
	query := (&ItemSaleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, id),
			sqlgraph.To(itemsale.Table, itemsale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, shiftreport.ItemsTable, shiftreport.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(sr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExceptions queries the exceptions edge of a ShiftReport.
func (c *ShiftReportClient) QueryExceptions(sr *ShiftReport) *ReportExceptionQuery {
	query := (&ReportExceptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, id),
			sqlgraph.To(reportexception.Table, reportexception.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, shiftreport.ExceptionsTable, shiftreport.ExceptionsColumn),
		)
		fromV = sqlgraph.Neighbors(sr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ShiftReportClient) Hooks() []Hook {
	return c.hooks.ShiftReport
}

// Interceptors returns the client interceptors.
func (c *ShiftReportClient) Interceptors() []Interceptor {
	return c.inters.ShiftReport
}

func (c *ShiftReportClient) mutate(ctx context.Context, m *ShiftReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ShiftReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ShiftReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ShiftReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ShiftReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ShiftReport mutation op: %q", m.Op())
	}
}

// StoreClient is a client for the Store schema.
type StoreClient struct {
	config
}

// NewStoreClient returns a client for the Store from the given config.
func NewStoreClient(c config) *StoreClient {
	return &StoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `store.Hooks(f(g(h())))`.
func (c *StoreClient) Use(hooks ...Hook) {
	c.hooks.Store = append(c.hooks.Store, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `store.Intercept(f(g(h())))`.
func (c *StoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.Store = append(c.inters.Store, interceptors...)
}

// Create returns a builder for creating a Store entity.
func (c *StoreClient) Create() *StoreCreate {
	mutation := newStoreMutation(c.config, OpCreate)
	return &StoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Store entities.
func (c *StoreClient) CreateBulk(builders ...*StoreCreate) *StoreCreateBulk {
	return &StoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StoreClient) MapCreateBulk(slice any, setFunc func(*StoreCreate, int)) *StoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StoreCreateBulk{err: fmt.Errorf("calling to StoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Store.
func (c *StoreClient) Update() *StoreUpdate {
	mutation := newStoreMutation(c.config, OpUpdate)
	return &StoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StoreClient) UpdateOne(s *Store) *StoreUpdateOne {
	mutation := newStoreMutation(c.config, OpUpdateOne, withStore(s))
	return &StoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StoreClient) UpdateOneID(id uuid.UUID) *StoreUpdateOne {
	mutation := newStoreMutation(c.config, OpUpdateOne, withStoreID(id))
	return &StoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Store.
func (c *StoreClient) Delete() *StoreDelete {
	mutation := newStoreMutation(c.config, OpDelete)
	return &StoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StoreClient) DeleteOne(s *Store) *StoreDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StoreClient) DeleteOneID(id uuid.UUID) *StoreDeleteOne {
	builder := c.Delete().Where(store.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StoreDeleteOne{builder}
}

// Query returns a query builder for Store.
func (c *StoreClient) Query() *StoreQuery {
	return &StoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStore},
		inters: c.Interceptors(),
	}
}

// Get returns a Store entity by its id.
func (c *StoreClient) Get(ctx context.Context, id uuid.UUID) (*Store, error) {
	return c.Query().Where(store.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StoreClient) GetX(ctx context.Context, id uuid.UUID) *Store {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReports queries the reports edge of a Store.
func (c *StoreClient) QueryReports(s *Store) *ShiftReportQuery {
	query := (&ShiftReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := s.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(store.Table, store.FieldID, id),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, store.ReportsTable, store.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(s.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StoreClient) Hooks() []Hook {
	return c.hooks.Store
}

// Interceptors returns the client interceptors.
func (c *StoreClient) Interceptors() []Interceptor {
	return c.inters.Store
}

func (c *StoreClient) mutate(ctx context.Context, m *StoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Store mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DepartmentSale, ItemSale, ReportException, ShiftReport, Store []ent.Hook
	}
	inters struct {
		DepartmentSale, ItemSale, ReportException, ShiftReport, Store []ent.Interceptor
	}
)
