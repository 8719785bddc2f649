// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// DepartmentSaleUpdate is the builder for updating DepartmentSale entities.
type DepartmentSaleUpdate struct {
	config
	hooks    []Hook
	mutation *DepartmentSaleMutation
}

// Where appends a list predicates to the DepartmentSaleUpdate builder.
func (dsu *DepartmentSaleUpdate) Where(ps ...predicate.DepartmentSale) *DepartmentSaleUpdate {
	dsu.mutation.Where(ps...)
	return dsu
}

// SetReportID sets the "report_id" field.
func (dsu *DepartmentSaleUpdate) SetReportID(u uuid.UUID) *DepartmentSaleUpdate {
	dsu.mutation.SetReportID(u)
	return dsu
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (dsu *DepartmentSaleUpdate) SetNillableReportID(u *uuid.UUID) *DepartmentSaleUpdate {
	if u != nil {
		dsu.SetReportID(*u)
	}
	return dsu
}

// SetName sets the "name" field.
func (dsu *DepartmentSaleUpdate) SetName(s string) *DepartmentSaleUpdate {
	dsu.mutation.SetName(s)
	return dsu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (dsu *DepartmentSaleUpdate) SetNillableName(s *string) *DepartmentSaleUpdate {
	if s != nil {
		dsu.SetName(*s)
	}
	return dsu
}

// SetQuantity sets the "quantity" field.
func (dsu *DepartmentSaleUpdate) SetQuantity(f float64) *DepartmentSaleUpdate {
	dsu.mutation.ResetQuantity()
	dsu.mutation.SetQuantity(f)
	return dsu
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (dsu *DepartmentSaleUpdate) SetNillableQuantity(f *float64) *DepartmentSaleUpdate {
	if f != nil {
		dsu.SetQuantity(*f)
	}
	return dsu
}

// AddQuantity adds f to the "quantity" field.
func (dsu *DepartmentSaleUpdate) AddQuantity(f float64) *DepartmentSaleUpdate {
	dsu.mutation.AddQuantity(f)
	return dsu
}

// ClearQuantity clears the value of the "quantity" field.
func (dsu *DepartmentSaleUpdate) ClearQuantity() *DepartmentSaleUpdate {
	dsu.mutation.ClearQuantity()
	return dsu
}

// SetAmount sets the "amount" field.
func (dsu *DepartmentSaleUpdate) SetAmount(f float64) *DepartmentSaleUpdate {
	dsu.mutation.ResetAmount()
	dsu.mutation.SetAmount(f)
	return dsu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (dsu *DepartmentSaleUpdate) SetNillableAmount(f *float64) *DepartmentSaleUpdate {
	if f != nil {
		dsu.SetAmount(*f)
	}
	return dsu
}

// AddAmount adds f to the "amount" field.
func (dsu *DepartmentSaleUpdate) AddAmount(f float64) *DepartmentSaleUpdate {
	dsu.mutation.AddAmount(f)
	return dsu
}

// SetConfidence sets the "confidence" field.
func (dsu *DepartmentSaleUpdate) SetConfidence(f float32) *DepartmentSaleUpdate {
	dsu.mutation.ResetConfidence()
	dsu.mutation.SetConfidence(f)
	return dsu
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (dsu *DepartmentSaleUpdate) SetNillableConfidence(f *float32) *DepartmentSaleUpdate {
	if f != nil {
		dsu.SetConfidence(*f)
	}
	return dsu
}

// AddConfidence adds f to the "confidence" field.
func (dsu *DepartmentSaleUpdate) AddConfidence(f float32) *DepartmentSaleUpdate {
	dsu.mutation.AddConfidence(f)
	return dsu
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (dsu *DepartmentSaleUpdate) SetReport(s *ShiftReport) *DepartmentSaleUpdate {
	return dsu.SetReportID(s.ID)
}

// Mutation returns the DepartmentSaleMutation object of the builder.
func (dsu *DepartmentSaleUpdate) Mutation() *DepartmentSaleMutation {
	return dsu.mutation
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (dsu *DepartmentSaleUpdate) ClearReport() *DepartmentSaleUpdate {
	dsu.mutation.ClearReport()
	return dsu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dsu *DepartmentSaleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dsu.sqlSave, dsu.mutation, dsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dsu *DepartmentSaleUpdate) SaveX(ctx context.Context) int {
	affected, err := dsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dsu *DepartmentSaleUpdate) Exec(ctx context.Context) error {
	_, err := dsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsu *DepartmentSaleUpdate) ExecX(ctx context.Context) {
	if err := dsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsu *DepartmentSaleUpdate) check() error {
	if v, ok := dsu.mutation.Name(); ok {
		if err := departmentsale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DepartmentSale.name": %w`, err)}
		}
	}
	if v, ok := dsu.mutation.Confidence(); ok {
		if err := departmentsale.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "DepartmentSale.confidence": %w`, err)}
		}
	}
	if _, ok := dsu.mutation.ReportID(); dsu.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "DepartmentSale.report"`)
	}
	return nil
}

func (dsu *DepartmentSaleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(departmentsale.Table, departmentsale.Columns, sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID))
	if ps := dsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dsu.mutation.Name(); ok {
		_spec.SetField(departmentsale.FieldName, field.TypeString, value)
	}
	if value, ok := dsu.mutation.Quantity(); ok {
		_spec.SetField(departmentsale.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := dsu.mutation.AddedQuantity(); ok {
		_spec.AddField(departmentsale.FieldQuantity, field.TypeFloat64, value)
	}
	if dsu.mutation.QuantityCleared() {
		_spec.ClearField(departmentsale.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := dsu.mutation.Amount(); ok {
		_spec.SetField(departmentsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := dsu.mutation.AddedAmount(); ok {
		_spec.AddField(departmentsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := dsu.mutation.Confidence(); ok {
		_spec.SetField(departmentsale.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := dsu.mutation.AddedConfidence(); ok {
		_spec.AddField(departmentsale.FieldConfidence, field.TypeFloat32, value)
	}
	if dsu.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   departmentsale.ReportTable,
			Columns: []string{departmentsale.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dsu.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   departmentsale.ReportTable,
			Columns: []string{departmentsale.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{departmentsale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dsu.mutation.done = true
	return n, nil
}

// DepartmentSaleUpdateOne is the builder for updating a single DepartmentSale entity.
type DepartmentSaleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DepartmentSaleMutation
}

// SetReportID sets the "report_id" field.
func (dsuo *DepartmentSaleUpdateOne) SetReportID(u uuid.UUID) *DepartmentSaleUpdateOne {
	dsuo.mutation.SetReportID(u)
	return dsuo
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (dsuo *DepartmentSaleUpdateOne) SetNillableReportID(u *uuid.UUID) *DepartmentSaleUpdateOne {
	if u != nil {
		dsuo.SetReportID(*u)
	}
	return dsuo
}

// SetName sets the "name" field.
func (dsuo *DepartmentSaleUpdateOne) SetName(s string) *DepartmentSaleUpdateOne {
	dsuo.mutation.SetName(s)
	return dsuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (dsuo *DepartmentSaleUpdateOne) SetNillableName(s *string) *DepartmentSaleUpdateOne {
	if s != nil {
		dsuo.SetName(*s)
	}
	return dsuo
}

// SetQuantity sets the "quantity" field.
func (dsuo *DepartmentSaleUpdateOne) SetQuantity(f float64) *DepartmentSaleUpdateOne {
	dsuo.mutation.ResetQuantity()
	dsuo.mutation.SetQuantity(f)
	return dsuo
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (dsuo *DepartmentSaleUpdateOne) SetNillableQuantity(f *float64) *DepartmentSaleUpdateOne {
	if f != nil {
		dsuo.SetQuantity(*f)
	}
	return dsuo
}

// AddQuantity adds f to the "quantity" field.
func (dsuo *DepartmentSaleUpdateOne) AddQuantity(f float64) *DepartmentSaleUpdateOne {
	dsuo.mutation.AddQuantity(f)
	return dsuo
}

// ClearQuantity clears the value of the "quantity" field.
func (dsuo *DepartmentSaleUpdateOne) ClearQuantity() *DepartmentSaleUpdateOne {
	dsuo.mutation.ClearQuantity()
	return dsuo
}

// SetAmount sets the "amount" field.
func (dsuo *DepartmentSaleUpdateOne) SetAmount(f float64) *DepartmentSaleUpdateOne {
	dsuo.mutation.ResetAmount()
	dsuo.mutation.SetAmount(f)
	return dsuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (dsuo *DepartmentSaleUpdateOne) SetNillableAmount(f *float64) *DepartmentSaleUpdateOne {
	if f != nil {
		dsuo.SetAmount(*f)
	}
	return dsuo
}

// AddAmount adds f to the "amount" field.
func (dsuo *DepartmentSaleUpdateOne) AddAmount(f float64) *DepartmentSaleUpdateOne {
	dsuo.mutation.AddAmount(f)
	return dsuo
}

// SetConfidence sets the "confidence" field.
func (dsuo *DepartmentSaleUpdateOne) SetConfidence(f float32) *DepartmentSaleUpdateOne {
	dsuo.mutation.ResetConfidence()
	dsuo.mutation.SetConfidence(f)
	return dsuo
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (dsuo *DepartmentSaleUpdateOne) SetNillableConfidence(f *float32) *DepartmentSaleUpdateOne {
	if f != nil {
		dsuo.SetConfidence(*f)
	}
	return dsuo
}

// AddConfidence adds f to the "confidence" field.
func (dsuo *DepartmentSaleUpdateOne) AddConfidence(f float32) *DepartmentSaleUpdateOne {
	dsuo.mutation.AddConfidence(f)
	return dsuo
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (dsuo *DepartmentSaleUpdateOne) SetReport(s *ShiftReport) *DepartmentSaleUpdateOne {
	return dsuo.SetReportID(s.ID)
}

// Mutation returns the DepartmentSaleMutation object of the builder.
func (dsuo *DepartmentSaleUpdateOne) Mutation() *DepartmentSaleMutation {
	return dsuo.mutation
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (dsuo *DepartmentSaleUpdateOne) ClearReport() *DepartmentSaleUpdateOne {
	dsuo.mutation.ClearReport()
	return dsuo
}

// Where appends a list predicates to the DepartmentSaleUpdate builder.
func (dsuo *DepartmentSaleUpdateOne) Where(ps ...predicate.DepartmentSale) *DepartmentSaleUpdateOne {
	dsuo.mutation.Where(ps...)
	return dsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dsuo *DepartmentSaleUpdateOne) Select(field string, fields ...string) *DepartmentSaleUpdateOne {
	dsuo.fields = append([]string{field}, fields...)
	return dsuo
}

// Save executes the query and returns the updated DepartmentSale entity.
func (dsuo *DepartmentSaleUpdateOne) Save(ctx context.Context) (*DepartmentSale, error) {
	return withHooks(ctx, dsuo.sqlSave, dsuo.mutation, dsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dsuo *DepartmentSaleUpdateOne) SaveX(ctx context.Context) *DepartmentSale {
	node, err := dsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dsuo *DepartmentSaleUpdateOne) Exec(ctx context.Context) error {
	_, err := dsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsuo *DepartmentSaleUpdateOne) ExecX(ctx context.Context) {
	if err := dsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsuo *DepartmentSaleUpdateOne) check() error {
	if v, ok := dsuo.mutation.Name(); ok {
		if err := departmentsale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DepartmentSale.name": %w`, err)}
		}
	}
	if v, ok := dsuo.mutation.Confidence(); ok {
		if err := departmentsale.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "DepartmentSale.confidence": %w`, err)}
		}
	}
	if _, ok := dsuo.mutation.ReportID(); dsuo.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "DepartmentSale.report"`)
	}
	return nil
}

func (dsuo *DepartmentSaleUpdateOne) sqlSave(ctx context.Context) (_node *DepartmentSale, err error) {
	if err := dsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(departmentsale.Table, departmentsale.Columns, sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID))
	id, ok := dsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DepartmentSale.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, departmentsale.FieldID)
		for _, f := range fields {
			if !departmentsale.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != departmentsale.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dsuo.mutation.Name(); ok {
		_spec.SetField(departmentsale.FieldName, field.TypeString, value)
	}
	if value, ok := dsuo.mutation.Quantity(); ok {
		_spec.SetField(departmentsale.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := dsuo.mutation.AddedQuantity(); ok {
		_spec.AddField(departmentsale.FieldQuantity, field.TypeFloat64, value)
	}
	if dsuo.mutation.QuantityCleared() {
		_spec.ClearField(departmentsale.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := dsuo.mutation.Amount(); ok {
		_spec.SetField(departmentsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := dsuo.mutation.AddedAmount(); ok {
		_spec.AddField(departmentsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := dsuo.mutation.Confidence(); ok {
		_spec.SetField(departmentsale.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := dsuo.mutation.AddedConfidence(); ok {
		_spec.AddField(departmentsale.FieldConfidence, field.TypeFloat32, value)
	}
	if dsuo.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   departmentsale.ReportTable,
			Columns: []string{departmentsale.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dsuo.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   departmentsale.ReportTable,
			Columns: []string{departmentsale.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DepartmentSale{config: dsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{departmentsale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dsuo.mutation.done = true
	return _node, nil
}
