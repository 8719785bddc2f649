// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ItemSaleQuery is the builder for querying ItemSale entities.
type ItemSaleQuery struct {
	config
	ctx        *QueryContext
	order      []itemsale.OrderOption
	inters     []Interceptor
	predicates []predicate.ItemSale
	withReport *ShiftReportQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ItemSaleQuery builder.
func (isq *ItemSaleQuery) Where(ps ...predicate.ItemSale) *ItemSaleQuery {
	isq.predicates = append(isq.predicates, ps...)
	return isq
}

// Limit the number of records to be returned by this query.
func (isq *ItemSaleQuery) Limit(limit int) *ItemSaleQuery {
	isq.ctx.Limit = &limit
	return isq
}

// Offset to start from.
func (isq *ItemSaleQuery) Offset(offset int) *ItemSaleQuery {
	isq.ctx.Offset = &offset
	return isq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (isq *ItemSaleQuery) Unique(unique bool) *ItemSaleQuery {
	isq.ctx.Unique = &unique
	return isq
}

// Order specifies how the records should be ordered.
func (isq *ItemSaleQuery) Order(o ...itemsale.OrderOption) *ItemSaleQuery {
	isq.order = append(isq.order, o...)
	return isq
}

// QueryReport chains the current query on the "report" edge.
func (isq *ItemSaleQuery) QueryReport() *ShiftReportQuery {
	query := (&ShiftReportClient{config: isq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := isq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := isq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itemsale.Table, itemsale.FieldID, selector),
			sqlgraph.To(shiftreport.Table, shiftreport.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, itemsale.ReportTable, itemsale.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(isq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ItemSale entity from the query.
// Returns a *NotFoundError when no ItemSale was found.
func (isq *ItemSaleQuery) First(ctx context.Context) (*ItemSale, error) {
	nodes, err := isq.Limit(1).All(setContextOp(ctx, isq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{itemsale.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (isq *ItemSaleQuery) FirstX(ctx context.Context) *ItemSale {
	node, err := isq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ItemSale ID from the query.
// Returns a *NotFoundError when no ItemSale ID was found.
func (isq *ItemSaleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = isq.Limit(1).IDs(setContextOp(ctx, isq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{itemsale.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (isq *ItemSaleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := isq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ItemSale entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ItemSale entity is found.
// Returns a *NotFoundError when no ItemSale entities are found.
func (isq *ItemSaleQuery) Only(ctx context.Context) (*ItemSale, error) {
	nodes, err := isq.Limit(2).All(setContextOp(ctx, isq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{itemsale.Label}
	default:
		return nil, &NotSingularError{itemsale.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (isq *ItemSaleQuery) OnlyX(ctx context.Context) *ItemSale {
	node, err := isq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ItemSale ID in the query.
// Returns a *NotSingularError when more than one ItemSale ID is found.
// Returns a *NotFoundError when no entities are found.
func (isq *ItemSaleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = isq.Limit(2).IDs(setContextOp(ctx, isq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{itemsale.Label}
	default:
		err = &NotSingularError{itemsale.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (isq *ItemSaleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := isq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ItemSales.
func (isq *ItemSaleQuery) All(ctx context.Context) ([]*ItemSale, error) {
	ctx = setContextOp(ctx, isq.ctx, "All")
	if err := isq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ItemSale, *ItemSaleQuery]()
	return withInterceptors[[]*ItemSale](ctx, isq, qr, isq.inters)
}

// AllX is like All, but panics if an error occurs.
func (isq *ItemSaleQuery) AllX(ctx context.Context) []*ItemSale {
	nodes, err := isq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ItemSale IDs.
func (isq *ItemSaleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if isq.ctx.Unique == nil && isq.path != nil {
		isq.Unique(true)
	}
	ctx = setContextOp(ctx, isq.ctx, "IDs")
	if err = isq.Select(itemsale.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (isq *ItemSaleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := isq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (isq *ItemSaleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, isq.ctx, "Count")
	if err := isq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, isq, querierCount[*ItemSaleQuery](), isq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (isq *ItemSaleQuery) CountX(ctx context.Context) int {
	count, err := isq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (isq *ItemSaleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, isq.ctx, "Exist")
	switch _, err := isq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (isq *ItemSaleQuery) ExistX(ctx context.Context) bool {
	exist, err := isq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ItemSaleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (isq *ItemSaleQuery) Clone() *ItemSaleQuery {
	if isq == nil {
		return nil
	}
	return &ItemSaleQuery{
		config:     isq.config,
		ctx:        isq.ctx.Clone(),
		order:      append([]itemsale.OrderOption{}, isq.order...),
		inters:     append([]Interceptor{}, isq.inters...),
		predicates: append([]predicate.ItemSale{}, isq.predicates...),
		withReport: isq.withReport.Clone(),
		// clone intermediate query.
		sql:  isq.sql.Clone(),
		path: isq.path,
	}
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (isq *ItemSaleQuery) WithReport(opts ...func(*ShiftReportQuery)) *ItemSaleQuery {
	query := (&ShiftReportClient{config: isq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	isq.withReport = query
	return isq
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
//	client.ItemSale.Query().
//		GroupBy(itemsale.FieldReportID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (isq *ItemSaleQuery) GroupBy(field string, fields ...string) *ItemSaleGroupBy {
	isq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ItemSaleGroupBy{build: isq}
	grbuild.flds = &isq.ctx.Fields
	grbuild.label = itemsale.Label
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
//	client.ItemSale.Query().
//		Select(itemsale.FieldReportID).
//		Scan(ctx, &v)
func (isq *ItemSaleQuery) Select(fields ...string) *ItemSaleSelect {
	isq.ctx.Fields = append(isq.ctx.Fields, fields...)
	sbuild := &ItemSaleSelect{ItemSaleQuery: isq}
	sbuild.label = itemsale.Label
	sbuild.flds, sbuild.scan = &isq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ItemSaleSelect configured with the given aggregations.
func (isq *ItemSaleQuery) Aggregate(fns ...AggregateFunc) *ItemSaleSelect {
	return isq.Select().Aggregate(fns...)
}

func (isq *ItemSaleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range isq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, isq); err != nil {
				return err
			}
		}
	}
	for _, f := range isq.ctx.Fields {
		if !itemsale.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if isq.path != nil {
		prev, err := isq.path(ctx)
		if err != nil {
			return err
		}
		isq.sql = prev
	}
	return nil
}

func (isq *ItemSaleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ItemSale, error) {
	var (
		nodes       = []*ItemSale{}
		_spec       = isq.querySpec()
		loadedTypes = [1]bool{
			isq.withReport != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ItemSale).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ItemSale{config: isq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, isq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := isq.withReport; query != nil {
		if err := isq.loadReport(ctx, query, nodes, nil,
			func(n *ItemSale, e *ShiftReport) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (isq *ItemSaleQuery) loadReport(ctx context.Context, query *ShiftReportQuery, nodes []*ItemSale, init func(*ItemSale), assign func(*ItemSale, *ShiftReport)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ItemSale)
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

func (isq *ItemSaleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := isq.querySpec()
	_spec.Node.Columns = isq.ctx.Fields
	if len(isq.ctx.Fields) > 0 {
		_spec.Unique = isq.ctx.Unique != nil && *isq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, isq.driver, _spec)
}

func (isq *ItemSaleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(itemsale.Table, itemsale.Columns, sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID))
	_spec.From = isq.sql
	if unique := isq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if isq.path != nil {
		_spec.Unique = true
	}
	if fields := isq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemsale.FieldID)
		for i := range fields {
			if fields[i] != itemsale.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if isq.withReport != nil {
			_spec.Node.AddColumnOnce(itemsale.FieldReportID)
		}
	}
	if ps := isq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := isq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := isq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := isq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (isq *ItemSaleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(isq.driver.Dialect())
	t1 := builder.Table(itemsale.Table)
	columns := isq.ctx.Fields
	if len(columns) == 0 {
		columns = itemsale.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if isq.sql != nil {
		selector = isq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if isq.ctx.Unique != nil && *isq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range isq.predicates {
		p(selector)
	}
	for _, p := range isq.order {
		p(selector)
	}
	if offset := isq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := isq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ItemSaleGroupBy is the group-by builder for ItemSale entities.
type ItemSaleGroupBy struct {
	selector
	build *ItemSaleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (isgb *ItemSaleGroupBy) Aggregate(fns ...AggregateFunc) *ItemSaleGroupBy {
	isgb.fns = append(isgb.fns, fns...)
	return isgb
}

// Scan applies the selector query and scans the result into the given value.
func (isgb *ItemSaleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, isgb.build.ctx, "GroupBy")
	if err := isgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItemSaleQuery, *ItemSaleGroupBy](ctx, isgb.build, isgb, isgb.build.inters, v)
}

func (isgb *ItemSaleGroupBy) sqlScan(ctx context.Context, root *ItemSaleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(isgb.fns))
	for _, fn := range isgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*isgb.flds)+len(isgb.fns))
		for _, f := range *isgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*isgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := isgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ItemSaleSelect is the builder for selecting fields of ItemSale entities.
type ItemSaleSelect struct {
	*ItemSaleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (iss *ItemSaleSelect) Aggregate(fns ...AggregateFunc) *ItemSaleSelect {
	iss.fns = append(iss.fns, fns...)
	return iss
}

// Scan applies the selector query and scans the result into the given value.
func (iss *ItemSaleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, iss.ctx, "Select")
	if err := iss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItemSaleQuery, *ItemSaleSelect](ctx, iss.ItemSaleQuery, iss, iss.inters, v)
}

func (iss *ItemSaleSelect) sqlScan(ctx context.Context, root *ItemSaleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(iss.fns))
	for _, fn := range iss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*iss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := iss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
