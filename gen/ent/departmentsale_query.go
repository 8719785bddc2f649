// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// DepartmentSaleQuery is the builder for querying DepartmentSale entities.
type DepartmentSaleQuery struct {
	config
	ctx        *QueryContext
	order      []departmentsale.OrderOption
	inters     []Interceptor
	predicates []predicate.DepartmentSale
	withReport *ShiftReportQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DepartmentSaleQuery builder.
func (dsq *DepartmentSaleQuery) Where(ps ...predicate.DepartmentSale) *DepartmentSaleQuery {
	dsq.predicates = append(dsq.predicates, ps...)
	return dsq
}

// Limit the number of records to be returned by this query.
func (dsq *DepartmentSaleQuery) Limit(limit int) *DepartmentSaleQuery {
	dsq.ctx.Limit = &limit
	return dsq
}

// Offset to start from.
func (dsq *DepartmentSaleQuery) Offset(offset int) *DepartmentSaleQuery {
	dsq.ctx.Offset = &offset
	return dsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dsq *DepartmentSaleQuery) Unique(unique bool) *DepartmentSaleQuery {
	dsq.ctx.Unique = &unique
	return dsq
}

// Order specifies how the records should be ordered.
func (dsq *DepartmentSaleQuery) Order(o ...departmentsale.OrderOption) *DepartmentSaleQuery {
	dsq.order = append(dsq.order, o...)
	return dsq
}

// QueryReport chains the current query on the "report" edge.
func (dsq *DepartmentSaleQuery) QueryReport() *ShiftReportQuery {
	query := (&ShiftReportClient{config: dsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(departmentsale.Table, departmentsale.FieldID, selector),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, departmentsale.ReportTable, departmentsale.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(dsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DepartmentSale entity from the query.
// Returns a *NotFoundError when no DepartmentSale was found.
func (dsq *DepartmentSaleQuery) First(ctx context.Context) (*DepartmentSale, error) {
	nodes, err := dsq.Limit(1).All(setContextOp(ctx, dsq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{departmentsale.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) FirstX(ctx context.Context) *DepartmentSale {
	node, err := dsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DepartmentSale ID from the query.
// Returns a *NotFoundError when no DepartmentSale ID was found.
func (dsq *DepartmentSaleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dsq.Limit(1).IDs(setContextOp(ctx, dsq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{departmentsale.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := dsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DepartmentSale entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DepartmentSale entity is found.
// Returns a *NotFoundError when no DepartmentSale entities are found.
func (dsq *DepartmentSaleQuery) Only(ctx context.Context) (*DepartmentSale, error) {
	nodes, err := dsq.Limit(2).All(setContextOp(ctx, dsq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{departmentsale.Label}
	default:
		return nil, &NotSingularError{departmentsale.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) OnlyX(ctx context.Context) *DepartmentSale {
	node, err := dsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DepartmentSale ID in the query.
// Returns a *NotSingularError when more than one DepartmentSale ID is found.
// Returns a *NotFoundError when no entities are found.
func (dsq *DepartmentSaleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dsq.Limit(2).IDs(setContextOp(ctx, dsq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{departmentsale.Label}
	default:
		err = &NotSingularError{departmentsale.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := dsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DepartmentSales.
func (dsq *DepartmentSaleQuery) All(ctx context.Context) ([]*DepartmentSale, error) {
	ctx = setContextOp(ctx, dsq.ctx, "All")
	if err := dsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DepartmentSale, *DepartmentSaleQuery]()
	return withInterceptors[[]*DepartmentSale](ctx, dsq, qr, dsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) AllX(ctx context.Context) []*DepartmentSale {
	nodes, err := dsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DepartmentSale IDs.
func (dsq *DepartmentSaleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if dsq.ctx.Unique == nil && dsq.path != nil {
		dsq.Unique(true)
	}
	ctx = setContextOp(ctx, dsq.ctx, "IDs")
	if err = dsq.Select(departmentsale.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := dsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dsq *DepartmentSaleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dsq.ctx, "Count")
	if err := dsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dsq, querierCount[*DepartmentSaleQuery](), dsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) CountX(ctx context.Context) int {
	count, err := dsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dsq *DepartmentSaleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dsq.ctx, "Exist")
	switch _, err := dsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dsq *DepartmentSaleQuery) ExistX(ctx context.Context) bool {
	exist, err := dsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DepartmentSaleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dsq *DepartmentSaleQuery) Clone() *DepartmentSaleQuery {
	if dsq == nil {
		return nil
	}
	return &DepartmentSaleQuery{
		config:     dsq.config,
		ctx:        dsq.ctx.Clone(),
		order:      append([]departmentsale.OrderOption{}, dsq.order...),
		inters:     append([]Interceptor{}, dsq.inters...),
		predicates: append([]predicate.DepartmentSale{}, dsq.predicates...),
		withReport: dsq.withReport.Clone(),
		// clone intermediate query.
		sql:  dsq.sql.Clone(),
		path: dsq.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (dsq *DepartmentSaleQuery) WithReport(opts ...func(*ShiftReportQuery)) *DepartmentSaleQuery {
	query := (&ShiftReportClient{config: dsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dsq.withReport = query
	return dsq
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
//	client.DepartmentSale.Query().
//		GroupBy(departmentsale.FieldReportID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dsq *DepartmentSaleQuery) GroupBy(field string, fields ...string) *DepartmentSaleGroupBy {
	dsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DepartmentSaleGroupBy{build: dsq}
	grbuild.flds = &dsq.ctx.Fields
	grbuild.label = departmentsale.Label
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
//	client.DepartmentSale.Query().
//		Select(departmentsale.FieldReportID).
//		Scan(ctx, &v)
func (dsq *DepartmentSaleQuery) Select(fields ...string) *DepartmentSaleSelect {
	dsq.ctx.Fields = append(dsq.ctx.Fields, fields...)
	sbuild := &DepartmentSaleSelect{DepartmentSaleQuery: dsq}
	sbuild.label = departmentsale.Label
	sbuild.flds, sbuild.scan = &dsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DepartmentSaleSelect configured with the given aggregations.
func (dsq *DepartmentSaleQuery) Aggregate(fns ...AggregateFunc) *DepartmentSaleSelect {
	return dsq.Select().Aggregate(fns...)
}

func (dsq *DepartmentSaleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dsq); err != nil {
				return err
			}
		}
	}
	for _, f := range dsq.ctx.Fields {
		if !departmentsale.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dsq.path != nil {
		prev, err := dsq.path(ctx)
		if err != nil {
			return err
		}
		dsq.sql = prev
	}
	return nil
}

func (dsq *DepartmentSaleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DepartmentSale, error) {
	var (
		nodes       = []*DepartmentSale{}
		_spec       = dsq.querySpec()
		loadedTypes = [1]bool{
			dsq.withReport != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DepartmentSale).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DepartmentSale{config: dsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dsq.withReport; query != nil {
		if err := dsq.loadReport(ctx, query, nodes, nil,
			func(n *DepartmentSale, e *ShiftReport) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dsq *DepartmentSaleQuery) loadReport(ctx context.Context, query *ShiftReportQuery, nodes []*DepartmentSale, init func(*DepartmentSale), assign func(*DepartmentSale, *ShiftReport)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DepartmentSale)
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

func (dsq *DepartmentSaleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dsq.querySpec()
	_spec.Node.Columns = dsq.ctx.Fields
	if len(dsq.ctx.Fields) > 0 {
		_spec.Unique = dsq.ctx.Unique != nil && *dsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dsq.driver, _spec)
}

func (dsq *DepartmentSaleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(departmentsale.Table, departmentsale.Columns, sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID))
	_spec.From = dsq.sql
	if unique := dsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dsq.path != nil {
		_spec.Unique = true
	}
	if fields := dsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, departmentsale.FieldID)
		for i := range fields {
			if fields[i] != departmentsale.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if dsq.withReport != nil {
			_spec.Node.AddColumnOnce(departmentsale.FieldReportID)
		}
	}
	if ps := dsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dsq *DepartmentSaleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dsq.driver.Dialect())
	t1 := builder.Table(departmentsale.Table)
	columns := dsq.ctx.Fields
	if len(columns) == 0 {
		columns = departmentsale.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dsq.sql != nil {
		selector = dsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dsq.ctx.Unique != nil && *dsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dsq.predicates {
		p(selector)
	}
	for _, p := range dsq.order {
		p(selector)
	}
	if offset := dsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DepartmentSaleGroupBy is the group-by builder for DepartmentSale entities.
type DepartmentSaleGroupBy struct {
	selector
	build *DepartmentSaleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dsgb *DepartmentSaleGroupBy) Aggregate(fns ...AggregateFunc) *DepartmentSaleGroupBy {
	dsgb.fns = append(dsgb.fns, fns...)
	return dsgb
}

// Scan applies the selector query and scans the result into the given value.
func (dsgb *DepartmentSaleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dsgb.build.ctx, "GroupBy")
	if err := dsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DepartmentSaleQuery, *DepartmentSaleGroupBy](ctx, dsgb.build, dsgb, dsgb.build.inters, v)
}

func (dsgb *DepartmentSaleGroupBy) sqlScan(ctx context.Context, root *DepartmentSaleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dsgb.fns))
	for _, fn := range dsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dsgb.flds)+len(dsgb.fns))
		for _, f := range *dsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DepartmentSaleSelect is the builder for selecting fields of DepartmentSale entities.
type DepartmentSaleSelect struct {
	*DepartmentSaleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dss *DepartmentSaleSelect) Aggregate(fns ...AggregateFunc) *DepartmentSaleSelect {
	dss.fns = append(dss.fns, fns...)
	return dss
}

// Scan applies the selector query and scans the result into the given value.
func (dss *DepartmentSaleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dss.ctx, "Select")
	if err := dss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DepartmentSaleQuery, *DepartmentSaleSelect](ctx, dss.DepartmentSaleQuery, dss, dss.inters, v)
}

func (dss *DepartmentSaleSelect) sqlScan(ctx context.Context, root *DepartmentSaleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dss.fns))
	for _, fn := range dss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
