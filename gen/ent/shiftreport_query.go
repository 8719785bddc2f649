// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/google/uuid"
)

// ShiftReportQuery is the builder for querying ShiftReport entities.
type ShiftReportQuery struct {
	config
	ctx             *QueryContext
	order           []shiftreport.OrderOption
	inters          []Interceptor
	predicates      []predicate.ShiftReport
	withStore       *StoreQuery
	withDepartments *DepartmentSaleQuery
	withItems       *ItemSaleQuery
	withExceptions  *ReportExceptionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ShiftReportQuery builder.
func (srq *ShiftReportQuery) Where(ps ...predicate.ShiftReport) *ShiftReportQuery {
	srq.predicates = append(srq.predicates, ps...)
	return srq
}

// Limit the number of records to be returned by this query.
func (srq *ShiftReportQuery) Limit(limit int) *ShiftReportQuery {
	srq.ctx.Limit = &limit
	return srq
}

// Offset to start from.
func (srq *ShiftReportQuery) Offset(offset int) *ShiftReportQuery {
	srq.ctx.Offset = &offset
	return srq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (srq *ShiftReportQuery) Unique(unique bool) *ShiftReportQuery {
	srq.ctx.Unique = &unique
	return srq
}

// Order specifies how the records should be ordered.
func (srq *ShiftReportQuery) Order(o ...shiftreport.OrderOption) *ShiftReportQuery {
	srq.order = append(srq.order, o...)
	return srq
}

// QueryStore chains the current query on the "store" edge.
func (srq *ShiftReportQuery) QueryStore() *StoreQuery {
	query := (&StoreClient{config: srq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := srq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := srq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, selector),
			sqlgraph.To(store.Table, store.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shiftreport.StoreTable, shiftreport.StoreColumn),
		)
		fromU = sqlgraph.SetNeighbors(srq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDepartments chains the current query on the "departments" edge.
func (srq *ShiftReportQuery) QueryDepartments() *DepartmentSaleQuery {
	query := (&DepartmentSaleClient{config: srq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := srq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := srq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, selector),
			sqlgraph.To(departmentsale.Table, departmentsale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, shiftreport.DepartmentsTable, shiftreport.DepartmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(srq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItems chains the current query on the "items" edge.
func (srq *ShiftReportQuery) QueryItems() *ItemSaleQuery {
	query := (&ItemSaleClient{config: srq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := srq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := srq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, selector),
			sqlgraph.To(itemsale.Table, itemsale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, shiftreport.ItemsTable, shiftreport.ItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(srq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExceptions chains the current query on the "exceptions" edge.
func (srq *ShiftReportQuery) QueryExceptions() *ReportExceptionQuery {
	query := (&ReportExceptionClient{config: srq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := srq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := srq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftreport.Table, shiftreport.FieldID, selector),
			sqlgraph.To(reportexception.Table, reportexception.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, shiftreport.ExceptionsTable, shiftreport.ExceptionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(srq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ShiftReport entity from the query.
// Returns a *NotFoundError when no ShiftReport was found.
func (srq *ShiftReportQuery) First(ctx context.Context) (*ShiftReport, error) {
	nodes, err := srq.Limit(1).All(setContextOp(ctx, srq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{shiftreport.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (srq *ShiftReportQuery) FirstX(ctx context.Context) *ShiftReport {
	node, err := srq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ShiftReport ID from the query.
// Returns a *NotFoundError when no ShiftReport ID was found.
func (srq *ShiftReportQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = srq.Limit(1).IDs(setContextOp(ctx, srq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{shiftreport.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (srq *ShiftReportQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := srq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ShiftReport entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ShiftReport entity is found.
// Returns a *NotFoundError when no ShiftReport entities are found.
func (srq *ShiftReportQuery) Only(ctx context.Context) (*ShiftReport, error) {
	nodes, err := srq.Limit(2).All(setContextOp(ctx, srq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{shiftreport.Label}
	default:
		return nil, &NotSingularError{shiftreport.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (srq *ShiftReportQuery) OnlyX(ctx context.Context) *ShiftReport {
	node, err := srq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ShiftReport ID in the query.
// Returns a *NotSingularError when more than one ShiftReport ID is found.
// Returns a *NotFoundError when no entities are found.
func (srq *ShiftReportQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = srq.Limit(2).IDs(setContextOp(ctx, srq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{shiftreport.Label}
	default:
		err = &NotSingularError{shiftreport.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (srq *ShiftReportQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := srq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ShiftReports.
func (srq *ShiftReportQuery) All(ctx context.Context) ([]*ShiftReport, error) {
	ctx = setContextOp(ctx, srq.ctx, "All")
	if err := srq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ShiftReport, *ShiftReportQuery]()
	return withInterceptors[[]*ShiftReport](ctx, srq, qr, srq.inters)
}

// AllX is like All, but panics if an error occurs.
func (srq *ShiftReportQuery) AllX(ctx context.Context) []*ShiftReport {
	nodes, err := srq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ShiftReport IDs.
func (srq *ShiftReportQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if srq.ctx.Unique == nil && srq.path != nil {
		srq.Unique(true)
	}
	ctx = setContextOp(ctx, srq.ctx, "IDs")
	if err = srq.Select(shiftreport.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (srq *ShiftReportQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := srq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (srq *ShiftReportQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, srq.ctx, "Count")
	if err := srq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, srq, querierCount[*ShiftReportQuery](), srq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (srq *ShiftReportQuery) CountX(ctx context.Context) int {
	count, err := srq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (srq *ShiftReportQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, srq.ctx, "Exist")
	switch _, err := srq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (srq *ShiftReportQuery) ExistX(ctx context.Context) bool {
	exist, err := srq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ShiftReportQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (srq *ShiftReportQuery) Clone() *ShiftReportQuery {
	if srq == nil {
		return nil
	}
	return &ShiftReportQuery{
		config:          srq.config,
		ctx:             srq.ctx.Clone(),
		order:           append([]shiftreport.OrderOption{}, srq.order...),
		inters:          append([]Interceptor{}, srq.inters...),
		predicates:      append([]predicate.ShiftReport{}, srq.predicates...),
		withStore:       srq.withStore.Clone(),
		withDepartments: srq.withDepartments.Clone(),
		withItems:       srq.withItems.Clone(),
		withExceptions:  srq.withExceptions.Clone(),
		// clone intermediate query.
		sql:  srq.sql.Clone(),
		path: srq.path,
	}
}

// WithStore tells the query-builder to eager-load the nodes that are connected to
// the "store" edge. The optional arguments are used to configure the query builder of the edge.
func (srq *ShiftReportQuery) WithStore(opts ...func(*StoreQuery)) *ShiftReportQuery {
	query := (&StoreClient{config: srq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	srq.withStore = query
	return srq
}

// WithDepartments tells the query-builder to eager-load the nodes that are connected to
// the "departments" edge. The optional arguments are used to configure the query builder of the edge.
func (srq *ShiftReportQuery) WithDepartments(opts ...func(*DepartmentSaleQuery)) *ShiftReportQuery {
	query := (&DepartmentSaleClient{config: srq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	srq.withDepartments = query
	return srq
}

// WithItems tells the query-builder to eager-load the nodes that are connected to
// the "items" edge. The optional arguments are used to configure the query builder of the edge.
func (srq *ShiftReportQuery) WithItems(opts ...func(*ItemSaleQuery)) *ShiftReportQuery {
	query := (&ItemSaleClient{config: srq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	srq.withItems = query
	return srq
}

// WithExceptions tells the query-builder to eager-load the nodes that are connected to
// the "exceptions" edge. The optional arguments are used to configure the query builder of the edge.
func (srq *ShiftReportQuery) WithExceptions(opts ...func(*ReportExceptionQuery)) *ShiftReportQuery {
	query := (&ReportExceptionClient{config: srq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	srq.withExceptions = query
	return srq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StoreID uuid.UUID `json:"store_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ShiftReport.Query().
//		GroupBy(shiftreport.FieldStoreID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (srq *ShiftReportQuery) GroupBy(field string, fields ...string) *ShiftReportGroupBy {
	srq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ShiftReportGroupBy{build: srq}
	grbuild.flds = &srq.ctx.Fields
	grbuild.label = shiftreport.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StoreID uuid.UUID `json:"store_id,omitempty"`
//	}
//
//	client.ShiftReport.Query().
//		Select(shiftreport.FieldStoreID).
//		Scan(ctx, &v)
func (srq *ShiftReportQuery) Select(fields ...string) *ShiftReportSelect {
	srq.ctx.Fields = append(srq.ctx.Fields, fields...)
	sbuild := &ShiftReportSelect{ShiftReportQuery: srq}
	sbuild.label = shiftreport.Label
	sbuild.flds, sbuild.scan = &srq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ShiftReportSelect configured with the given aggregations.
func (srq *ShiftReportQuery) Aggregate(fns ...AggregateFunc) *ShiftReportSelect {
	return srq.Select().Aggregate(fns...)
}

func (srq *ShiftReportQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range srq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, srq); err != nil {
				return err
			}
		}
	}
	for _, f := range srq.ctx.Fields {
		if !shiftreport.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if srq.path != nil {
		prev, err := srq.path(ctx)
		if err != nil {
			return err
		}
		srq.sql = prev
	}
	return nil
}

func (srq *ShiftReportQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ShiftReport, error) {
	var (
		nodes       = []*ShiftReport{}
		_spec       = srq.querySpec()
		loadedTypes = [4]bool{
			srq.withStore != nil,
			srq.withDepartments != nil,
			srq.withItems != nil,
			srq.withExceptions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ShiftReport).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ShiftReport{config: srq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, srq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := srq.withStore; query != nil {
		if err := srq.loadStore(ctx, query, nodes, nil,
			func(n *ShiftReport, e *Store) { n.Edges.Store = e }); err != nil {
			return nil, err
		}
	}
	if query := srq.withDepartments; query != nil {
		if err := srq.loadDepartments(ctx, query, nodes,
			func(n *ShiftReport) { n.Edges.Departments = []*DepartmentSale{} },
			func(n *ShiftReport, e *DepartmentSale) { n.Edges.Departments = append(n.Edges.Departments, e) }); err != nil {
			return nil, err
		}
	}
	if query := srq.withItems; query != nil {
		if err := srq.loadItems(ctx, query, nodes,
			func(n *ShiftReport) { n.Edges.Items = []*ItemSale{} },
			func(n *ShiftReport, e *ItemSale) { n.Edges.Items = append(n.Edges.Items, e) }); err != nil {
			return nil, err
		}
	}
	if query := srq.withExceptions; query != nil {
		if err := srq.loadExceptions(ctx, query, nodes,
			func(n *ShiftReport) { n.Edges.Exceptions = []*ReportException{} },
			func(n *ShiftReport, e *ReportException) { n.Edges.Exceptions = append(n.Edges.Exceptions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (srq *ShiftReportQuery) loadStore(ctx context.Context, query *StoreQuery, nodes []*ShiftReport, init func(*ShiftReport), assign func(*ShiftReport, *Store)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ShiftReport)
	for i := range nodes {
		fk := nodes[i].StoreID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(store.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "store_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (srq *ShiftReportQuery) loadDepartments(ctx context.Context, query *DepartmentSaleQuery, nodes []*ShiftReport, init func(*ShiftReport), assign func(*ShiftReport, *DepartmentSale)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ShiftReport)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(departmentsale.FieldReportID)
	}
	query.Where(predicate.DepartmentSale(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(shiftreport.DepartmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReportID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "report_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (srq *ShiftReportQuery) loadItems(ctx context.Context, query *ItemSaleQuery, nodes []*ShiftReport, init func(*ShiftReport), assign func(*ShiftReport, *ItemSale)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ShiftReport)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(itemsale.FieldReportID)
	}
	query.Where(predicate.ItemSale(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(shiftreport.ItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReportID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "report_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (srq *ShiftReportQuery) loadExceptions(ctx context.Context, query *ReportExceptionQuery, nodes []*ShiftReport, init func(*ShiftReport), assign func(*ShiftReport, *ReportException)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ShiftReport)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reportexception.FieldReportID)
	}
	query.Where(predicate.ReportException(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(shiftreport.ExceptionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReportID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "report_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (srq *ShiftReportQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := srq.querySpec()
	_spec.Node.Columns = srq.ctx.Fields
	if len(srq.ctx.Fields) > 0 {
		_spec.Unique = srq.ctx.Unique != nil && *srq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, srq.driver, _spec)
}

func (srq *ShiftReportQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(shiftreport.Table, shiftreport.Columns, sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID))
	_spec.From = srq.sql
	if unique := srq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if srq.path != nil {
		_spec.Unique = true
	}
	if fields := srq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftreport.FieldID)
		for i := range fields {
			if fields[i] != shiftreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if srq.withStore != nil {
			_spec.Node.AddColumnOnce(shiftreport.FieldStoreID)
		}
	}
	if ps := srq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := srq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := srq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := srq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (srq *ShiftReportQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(srq.driver.Dialect())
	t1 := builder.Table(shiftreport.Table)
	columns := srq.ctx.Fields
	if len(columns) == 0 {
		columns = shiftreport.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if srq.sql != nil {
		selector = srq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if srq.ctx.Unique != nil && *srq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range srq.predicates {
		p(selector)
	}
	for _, p := range srq.order {
		p(selector)
	}
	if offset := srq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := srq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ShiftReportGroupBy is the group-by builder for ShiftReport entities.
type ShiftReportGroupBy struct {
	selector
	build *ShiftReportQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (srgb *ShiftReportGroupBy) Aggregate(fns ...AggregateFunc) *ShiftReportGroupBy {
	srgb.fns = append(srgb.fns, fns...)
	return srgb
}

// Scan applies the selector query and scans the result into the given value.
func (srgb *ShiftReportGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, srgb.build.ctx, "GroupBy")
	if err := srgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ShiftReportQuery, *ShiftReportGroupBy](ctx, srgb.build, srgb, srgb.build.inters, v)
}

func (srgb *ShiftReportGroupBy) sqlScan(ctx context.Context, root *ShiftReportQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(srgb.fns))
	for _, fn := range srgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*srgb.flds)+len(srgb.fns))
		for _, f := range *srgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*srgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := srgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ShiftReportSelect is the builder for selecting fields of ShiftReport entities.
type ShiftReportSelect struct {
	*ShiftReportQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (srs *ShiftReportSelect) Aggregate(fns ...AggregateFunc) *ShiftReportSelect {
	srs.fns = append(srs.fns, fns...)
	return srs
}

// Scan applies the selector query and scans the result into the given value.
func (srs *ShiftReportSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, srs.ctx, "Select")
	if err := srs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ShiftReportQuery, *ShiftReportSelect](ctx, srs.ShiftReportQuery, srs, srs.inters, v)
}

func (srs *ShiftReportSelect) sqlScan(ctx context.Context, root *ShiftReportQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(srs.fns))
	for _, fn := range srs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*srs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := srs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
