// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ReportExceptionQuery is the builder for querying ReportException entities.
type ReportExceptionQuery struct {
	config
	ctx        *QueryContext
	order      []reportexception.OrderOption
	inters     []Interceptor
	predicates []predicate.ReportException
	withReport *ShiftReportQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReportExceptionQuery builder.
func (req *ReportExceptionQuery) Where(ps ...predicate.ReportException) *ReportExceptionQuery {
	req.predicates = append(req.predicates, ps...)
	return req
}

// Limit the number of records to be returned by this query.
func (req *ReportExceptionQuery) Limit(limit int) *ReportExceptionQuery {
	req.ctx.Limit = &limit
	return req
}

// Offset to start from.
func (req *ReportExceptionQuery) Offset(offset int) *ReportExceptionQuery {
	req.ctx.Offset = &offset
	return req
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (req *ReportExceptionQuery) Unique(unique bool) *ReportExceptionQuery {
	req.ctx.Unique = &unique
	return req
}

// Order specifies how the records should be ordered.
func (req *ReportExceptionQuery) Order(o ...reportexception.OrderOption) *ReportExceptionQuery {
	req.order = append(req.order, o...)
	return req
}

// QueryReport chains the current query on the "report" edge.
func (req *ReportExceptionQuery) QueryReport() *ShiftReportQuery {
	query := (&ShiftReportClient{config: req.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := req.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := req.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(reportexception.Table, reportexception.FieldID, selector),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportexception.ReportTable, reportexception.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(req.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ReportException entity from the query.
// Returns a *NotFoundError when no ReportException was found.
func (req *ReportExceptionQuery) First(ctx context.Context) (*ReportException, error) {
	nodes, err := req.Limit(1).All(setContextOp(ctx, req.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reportexception.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (req *ReportExceptionQuery) FirstX(ctx context.Context) *ReportException {
	node, err := req.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReportException ID from the query.
// Returns a *NotFoundError when no ReportException ID was found.
func (req *ReportExceptionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = req.Limit(1).IDs(setContextOp(ctx, req.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reportexception.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (req *ReportExceptionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := req.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReportException entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReportException entity is found.
// Returns a *NotFoundError when no ReportException entities are found.
func (req *ReportExceptionQuery) Only(ctx context.Context) (*ReportException, error) {
	nodes, err := req.Limit(2).All(setContextOp(ctx, req.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reportexception.Label}
	default:
		return nil, &NotSingularError{reportexception.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (req *ReportExceptionQuery) OnlyX(ctx context.Context) *ReportException {
	node, err := req.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReportException ID in the query.
// Returns a *NotSingularError when more than one ReportException ID is found.
// Returns a *NotFoundError when no entities are found.
func (req *ReportExceptionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = req.Limit(2).IDs(setContextOp(ctx, req.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reportexception.Label}
	default:
		err = &NotSingularError{reportexception.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (req *ReportExceptionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := req.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReportExceptions.
func (req *ReportExceptionQuery) All(ctx context.Context) ([]*ReportException, error) {
	ctx = setContextOp(ctx, req.ctx, "All")
	if err := req.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReportException, *ReportExceptionQuery]()
	return withInterceptors[[]*ReportException](ctx, req, qr, req.inters)
}

// AllX is like All, but panics if an error occurs.
func (req *ReportExceptionQuery) AllX(ctx context.Context) []*ReportException {
	nodes, err := req.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReportException IDs.
func (req *ReportExceptionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if req.ctx.Unique == nil && req.path != nil {
		req.Unique(true)
	}
	ctx = setContextOp(ctx, req.ctx, "IDs")
	if err = req.Select(reportexception.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (req *ReportExceptionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := req.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (req *ReportExceptionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, req.ctx, "Count")
	if err := req.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, req, querierCount[*ReportExceptionQuery](), req.inters)
}

// CountX is like Count, but panics if an error occurs.
func (req *ReportExceptionQuery) CountX(ctx context.Context) int {
	count, err := req.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (req *ReportExceptionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, req.ctx, "Exist")
	switch _, err := req.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (req *ReportExceptionQuery) ExistX(ctx context.Context) bool {
	exist, err := req.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReportExceptionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (req *ReportExceptionQuery) Clone() *ReportExceptionQuery {
	if req == nil {
		return nil
	}
	return &ReportExceptionQuery{
		config:     req.config,
		ctx:        req.ctx.Clone(),
		order:      append([]reportexception.OrderOption{}, req.order...),
		inters:     append([]Interceptor{}, req.inters...),
		predicates: append([]predicate.ReportException{}, req.predicates...),
		withReport: req.withReport.Clone(),
		// clone intermediate query.
		sql:  req.sql.Clone(),
		path: req.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (req *ReportExceptionQuery) WithReport(opts ...func(*ShiftReportQuery)) *ReportExceptionQuery {
	query := (&ShiftReportClient{config: req.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	req.withReport = query
	return req
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ReportID uuid.UUID `json:"report_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReportException.Query().
//		GroupBy(reportexception.FieldReportID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (req *ReportExceptionQuery) GroupBy(field string, fields ...string) *ReportExceptionGroupBy {
	req.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReportExceptionGroupBy{build: req}
	grbuild.flds = &req.ctx.Fields
	grbuild.label = reportexception.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ReportID uuid.UUID `json:"report_id,omitempty"`
//	}
//
//	client.ReportException.Query().
//		Select(reportexception.FieldReportID).
//		Scan(ctx, &v)
func (req *ReportExceptionQuery) Select(fields ...string) *ReportExceptionSelect {
	req.ctx.Fields = append(req.ctx.Fields, fields...)
	sbuild := &ReportExceptionSelect{ReportExceptionQuery: req}
	sbuild.label = reportexception.Label
	sbuild.flds, sbuild.scan = &req.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReportExceptionSelect configured with the given aggregations.
func (req *ReportExceptionQuery) Aggregate(fns ...AggregateFunc) *ReportExceptionSelect {
	return req.Select().Aggregate(fns...)
}

func (req *ReportExceptionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range req.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, req); err != nil {
				return err
			}
		}
	}
	for _, f := range req.ctx.Fields {
		if !reportexception.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if req.path != nil {
		prev, err := req.path(ctx)
		if err != nil {
			return err
		}
		req.sql = prev
	}
	return nil
}

func (req *ReportExceptionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReportException, error) {
	var (
		nodes       = []*ReportException{}
		_spec       = req.querySpec()
		loadedTypes = [1]bool{
			req.withReport != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReportException).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReportException{config: req.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, req.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := req.withReport; query != nil {
		if err := req.loadReport(ctx, query, nodes, nil,
			func(n *ReportException, e *ShiftReport) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (req *ReportExceptionQuery) loadReport(ctx context.Context, query *ShiftReportQuery, nodes []*ReportException, init func(*ReportException), assign func(*ReportException, *ShiftReport)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ReportException)
	for i := range nodes {
		fk := nodes[i].ReportID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(shiftreport.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "report_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (req *ReportExceptionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := req.querySpec()
	_spec.Node.Columns = req.ctx.Fields
	if len(req.ctx.Fields) > 0 {
		_spec.Unique = req.ctx.Unique != nil && *req.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, req.driver, _spec)
}

func (req *ReportExceptionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reportexception.Table, reportexception.Columns, sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID))
	_spec.From = req.sql
	if unique := req.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if req.path != nil {
		_spec.Unique = true
	}
	if fields := req.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportexception.FieldID)
		for i := range fields {
			if fields[i] != reportexception.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if req.withReport != nil {
			_spec.Node.AddColumnOnce(reportexception.FieldReportID)
		}
	}
	if ps := req.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := req.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := req.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := req.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (req *ReportExceptionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(req.driver.Dialect())
	t1 := builder.Table(reportexception.Table)
	columns := req.ctx.Fields
	if len(columns) == 0 {
		columns = reportexception.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if req.sql != nil {
		selector = req.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if req.ctx.Unique != nil && *req.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range req.predicates {
		p(selector)
	}
	for _, p := range req.order {
		p(selector)
	}
	if offset := req.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := req.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReportExceptionGroupBy is the group-by builder for ReportException entities.
type ReportExceptionGroupBy struct {
	selector
	build *ReportExceptionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (regb *ReportExceptionGroupBy) Aggregate(fns ...AggregateFunc) *ReportExceptionGroupBy {
	regb.fns = append(regb.fns, fns...)
	return regb
}

// Scan applies the selector query and scans the result into the given value.
func (regb *ReportExceptionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, regb.build.ctx, "GroupBy")
	if err := regb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportExceptionQuery, *ReportExceptionGroupBy](ctx, regb.build, regb, regb.build.inters, v)
}

func (regb *ReportExceptionGroupBy) sqlScan(ctx context.Context, root *ReportExceptionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(regb.fns))
	for _, fn := range regb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*regb.flds)+len(regb.fns))
		for _, f := range *regb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*regb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := regb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReportExceptionSelect is the builder for selecting fields of ReportException entities.
type ReportExceptionSelect struct {
	*ReportExceptionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (res *ReportExceptionSelect) Aggregate(fns ...AggregateFunc) *ReportExceptionSelect {
	res.fns = append(res.fns, fns...)
	return res
}

// Scan applies the selector query and scans the result into the given value.
func (res *ReportExceptionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, res.ctx, "Select")
	if err := res.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportExceptionQuery, *ReportExceptionSelect](ctx, res.ReportExceptionQuery, res, res.inters, v)
}

func (res *ReportExceptionSelect) sqlScan(ctx context.Context, root *ReportExceptionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(res.fns))
	for _, fn := range res.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*res.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := res.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
