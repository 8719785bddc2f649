// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ReportExceptionUpdate is the builder for updating ReportException entities.
type ReportExceptionUpdate struct {
	config
	hooks    []Hook
	mutation *ReportExceptionMutation
}

// Where appends a list predicates to the ReportExceptionUpdate builder.
func (reu *ReportExceptionUpdate) Where(ps ...predicate.ReportException) *ReportExceptionUpdate {
	reu.mutation.Where(ps...)
	return reu
}

// SetReportID sets the "report_id" field.
func (reu *ReportExceptionUpdate) SetReportID(u uuid.UUID) *ReportExceptionUpdate {
	reu.mutation.SetReportID(u)
	return reu
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (reu *ReportExceptionUpdate) SetNillableReportID(u *uuid.UUID) *ReportExceptionUpdate {
	if u != nil {
		reu.SetReportID(*u)
	}
	return reu
}

// SetType sets the "type" field.
func (reu *ReportExceptionUpdate) SetType(s string) *ReportExceptionUpdate {
	reu.mutation.SetType(s)
	return reu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (reu *ReportExceptionUpdate) SetNillableType(s *string) *ReportExceptionUpdate {
	if s != nil {
		reu.SetType(*s)
	}
	return reu
}

// SetCount sets the "count" field.
func (reu *ReportExceptionUpdate) SetCount(i int) *ReportExceptionUpdate {
	reu.mutation.ResetCount()
	reu.mutation.SetCount(i)
	return reu
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (reu *ReportExceptionUpdate) SetNillableCount(i *int) *ReportExceptionUpdate {
	if i != nil {
		reu.SetCount(*i)
	}
	return reu
}

// AddCount adds i to the "count" field.
func (reu *ReportExceptionUpdate) AddCount(i int) *ReportExceptionUpdate {
	reu.mutation.AddCount(i)
	return reu
}

// SetAmount sets the "amount" field.
func (reu *ReportExceptionUpdate) SetAmount(f float64) *ReportExceptionUpdate {
	reu.mutation.ResetAmount()
	reu.mutation.SetAmount(f)
	return reu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (reu *ReportExceptionUpdate) SetNillableAmount(f *float64) *ReportExceptionUpdate {
	if f != nil {
		reu.SetAmount(*f)
	}
	return reu
}

// AddAmount adds f to the "amount" field.
func (reu *ReportExceptionUpdate) AddAmount(f float64) *ReportExceptionUpdate {
	reu.mutation.AddAmount(f)
	return reu
}

// ClearAmount clears the value of the "amount" field.
func (reu *ReportExceptionUpdate) ClearAmount() *ReportExceptionUpdate {
	reu.mutation.ClearAmount()
	return reu
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (reu *ReportExceptionUpdate) SetReport(s *ShiftReport) *ReportExceptionUpdate {
	return reu.SetReportID(s.ID)
}

// Mutation returns the ReportExceptionMutation object of the builder.
func (reu *ReportExceptionUpdate) Mutation() *ReportExceptionMutation {
	return reu.mutation
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (reu *ReportExceptionUpdate) ClearReport() *ReportExceptionUpdate {
	reu.mutation.ClearReport()
	return reu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (reu *ReportExceptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, reu.sqlSave, reu.mutation, reu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reu *ReportExceptionUpdate) SaveX(ctx context.Context) int {
	affected, err := reu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (reu *ReportExceptionUpdate) Exec(ctx context.Context) error {
	_, err := reu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reu *ReportExceptionUpdate) ExecX(ctx context.Context) {
	if err := reu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reu *ReportExceptionUpdate) check() error {
	if v, ok := reu.mutation.GetType(); ok {
		if err := reportexception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ReportException.type": %w`, err)}
		}
	}
	if v, ok := reu.mutation.Count(); ok {
		if err := reportexception.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "ReportException.count": %w`, err)}
		}
	}
	if _, ok := reu.mutation.ReportID(); reu.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportException.report"`)
	}
	return nil
}

func (reu *ReportExceptionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := reu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportexception.Table, reportexception.Columns, sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID))
	if ps := reu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reu.mutation.GetType(); ok {
		_spec.SetField(reportexception.FieldType, field.TypeString, value)
	}
	if value, ok := reu.mutation.Count(); ok {
		_spec.SetField(reportexception.FieldCount, field.TypeInt, value)
	}
	if value, ok := reu.mutation.AddedCount(); ok {
		_spec.AddField(reportexception.FieldCount, field.TypeInt, value)
	}
	if value, ok := reu.mutation.Amount(); ok {
		_spec.SetField(reportexception.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := reu.mutation.AddedAmount(); ok {
		_spec.AddField(reportexception.FieldAmount, field.TypeFloat64, value)
	}
	if reu.mutation.AmountCleared() {
		_spec.ClearField(reportexception.FieldAmount, field.TypeFloat64)
	}
	if reu.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportexception.ReportTable,
			Columns: []string{reportexception.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := reu.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportexception.ReportTable,
			Columns: []string{reportexception.ReportColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, reu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportexception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	reu.mutation.done = true
	return n, nil
}

// ReportExceptionUpdateOne is the builder for updating a single ReportException entity.
type ReportExceptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportExceptionMutation
}

// SetReportID sets the "report_id" field.
func (reuo *ReportExceptionUpdateOne) SetReportID(u uuid.UUID) *ReportExceptionUpdateOne {
	reuo.mutation.SetReportID(u)
	return reuo
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (reuo *ReportExceptionUpdateOne) SetNillableReportID(u *uuid.UUID) *ReportExceptionUpdateOne {
	if u != nil {
		reuo.SetReportID(*u)
	}
	return reuo
}

// SetType sets the "type" field.
func (reuo *ReportExceptionUpdateOne) SetType(s string) *ReportExceptionUpdateOne {
	reuo.mutation.SetType(s)
	return reuo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (reuo *ReportExceptionUpdateOne) SetNillableType(s *string) *ReportExceptionUpdateOne {
	if s != nil {
		reuo.SetType(*s)
	}
	return reuo
}

// SetCount sets the "count" field.
func (reuo *ReportExceptionUpdateOne) SetCount(i int) *ReportExceptionUpdateOne {
	reuo.mutation.ResetCount()
	reuo.mutation.SetCount(i)
	return reuo
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (reuo *ReportExceptionUpdateOne) SetNillableCount(i *int) *ReportExceptionUpdateOne {
	if i != nil {
		reuo.SetCount(*i)
	}
	return reuo
}

// AddCount adds i to the "count" field.
func (reuo *ReportExceptionUpdateOne) AddCount(i int) *ReportExceptionUpdateOne {
	reuo.mutation.AddCount(i)
	return reuo
}

// SetAmount sets the "amount" field.
func (reuo *ReportExceptionUpdateOne) SetAmount(f float64) *ReportExceptionUpdateOne {
	reuo.mutation.ResetAmount()
	reuo.mutation.SetAmount(f)
	return reuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (reuo *ReportExceptionUpdateOne) SetNillableAmount(f *float64) *ReportExceptionUpdateOne {
	if f != nil {
		reuo.SetAmount(*f)
	}
	return reuo
}

// AddAmount adds f to the "amount" field.
func (reuo *ReportExceptionUpdateOne) AddAmount(f float64) *ReportExceptionUpdateOne {
	reuo.mutation.AddAmount(f)
	return reuo
}

// ClearAmount clears the value of the "amount" field.
func (reuo *ReportExceptionUpdateOne) ClearAmount() *ReportExceptionUpdateOne {
	reuo.mutation.ClearAmount()
	return reuo
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (reuo *ReportExceptionUpdateOne) SetReport(s *ShiftReport) *ReportExceptionUpdateOne {
	return reuo.SetReportID(s.ID)
}

// Mutation returns the ReportExceptionMutation object of the builder.
func (reuo *ReportExceptionUpdateOne) Mutation() *ReportExceptionMutation {
	return reuo.mutation
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (reuo *ReportExceptionUpdateOne) ClearReport() *ReportExceptionUpdateOne {
	reuo.mutation.ClearReport()
	return reuo
}

// Where appends a list predicates to the ReportExceptionUpdate builder.
func (reuo *ReportExceptionUpdateOne) Where(ps ...predicate.ReportException) *ReportExceptionUpdateOne {
	reuo.mutation.Where(ps...)
	return reuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (reuo *ReportExceptionUpdateOne) Select(field string, fields ...string) *ReportExceptionUpdateOne {
	reuo.fields = append([]string{field}, fields...)
	return reuo
}

// Save executes the query and returns the updated ReportException entity.
func (reuo *ReportExceptionUpdateOne) Save(ctx context.Context) (*ReportException, error) {
	return withHooks(ctx, reuo.sqlSave, reuo.mutation, reuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (reuo *ReportExceptionUpdateOne) SaveX(ctx context.Context) *ReportException {
	node, err := reuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (reuo *ReportExceptionUpdateOne) Exec(ctx context.Context) error {
	_, err := reuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (reuo *ReportExceptionUpdateOne) ExecX(ctx context.Context) {
	if err := reuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (reuo *ReportExceptionUpdateOne) check() error {
	if v, ok := reuo.mutation.GetType(); ok {
		if err := reportexception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ReportException.type": %w`, err)}
		}
	}
	if v, ok := reuo.mutation.Count(); ok {
		if err := reportexception.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "ReportException.count": %w`, err)}
		}
	}
	if _, ok := reuo.mutation.ReportID(); reuo.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReportException.report"`)
	}
	return nil
}

func (reuo *ReportExceptionUpdateOne) sqlSave(ctx context.Context) (_node *ReportException, err error) {
	if err := reuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportexception.Table, reportexception.Columns, sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID))
	id, ok := reuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportException.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := reuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportexception.FieldID)
		for _, f := range fields {
			if !reportexception.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportexception.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := reuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := reuo.mutation.GetType(); ok {
		_spec.SetField(reportexception.FieldType, field.TypeString, value)
	}
	if value, ok := reuo.mutation.Count(); ok {
		_spec.SetField(reportexception.FieldCount, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.AddedCount(); ok {
		_spec.AddField(reportexception.FieldCount, field.TypeInt, value)
	}
	if value, ok := reuo.mutation.Amount(); ok {
		_spec.SetField(reportexception.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := reuo.mutation.AddedAmount(); ok {
		_spec.AddField(reportexception.FieldAmount, field.TypeFloat64, value)
	}
	if reuo.mutation.AmountCleared() {
		_spec.ClearField(reportexception.FieldAmount, field.TypeFloat64)
	}
	if reuo.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportexception.ReportTable,
			Columns: []string{reportexception.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := reuo.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportexception.ReportTable,
			Columns: []string{reportexception.ReportColumn},
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
	_node = &ReportException{config: reuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, reuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportexception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	reuo.mutation.done = true
	return _node, nil
}
