// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ItemSaleUpdate is the builder for updating ItemSale entities.
type ItemSaleUpdate struct {
	config
	hooks    []Hook
	mutation *ItemSaleMutation
}

// Where appends a list predicates to the ItemSaleUpdate builder.
func (isu *ItemSaleUpdate) Where(ps ...predicate.ItemSale) *ItemSaleUpdate {
	isu.mutation.Where(ps...)
	return isu
}

// SetReportID sets the "report_id" field.
func (isu *ItemSaleUpdate) SetReportID(u uuid.UUID) *ItemSaleUpdate {
	isu.mutation.SetReportID(u)
	return isu
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (isu *ItemSaleUpdate) SetNillableReportID(u *uuid.UUID) *ItemSaleUpdate {
	if u != nil {
		isu.SetReportID(*u)
	}
	return isu
}

// SetName sets the "name" field.
func (isu *ItemSaleUpdate) SetName(s string) *ItemSaleUpdate {
	isu.mutation.SetName(s)
	return isu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (isu *ItemSaleUpdate) SetNillableName(s *string) *ItemSaleUpdate {
	if s != nil {
		isu.SetName(*s)
	}
	return isu
}

// SetQuantity sets the "quantity" field.
func (isu *ItemSaleUpdate) SetQuantity(f float64) *ItemSaleUpdate {
	isu.mutation.ResetQuantity()
	isu.mutation.SetQuantity(f)
	return isu
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (isu *ItemSaleUpdate) SetNillableQuantity(f *float64) *ItemSaleUpdate {
	if f != nil {
		isu.SetQuantity(*f)
	}
	return isu
}

// AddQuantity adds f to the "quantity" field.
func (isu *ItemSaleUpdate) AddQuantity(f float64) *ItemSaleUpdate {
	isu.mutation.AddQuantity(f)
	return isu
}

// ClearQuantity clears the value of the "quantity" field.
func (isu *ItemSaleUpdate) ClearQuantity() *ItemSaleUpdate {
	isu.mutation.ClearQuantity()
	return isu
}

// SetAmount sets the "amount" field.
func (isu *ItemSaleUpdate) SetAmount(f float64) *ItemSaleUpdate {
	isu.mutation.ResetAmount()
	isu.mutation.SetAmount(f)
	return isu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (isu *ItemSaleUpdate) SetNillableAmount(f *float64) *ItemSaleUpdate {
	if f != nil {
		isu.SetAmount(*f)
	}
	return isu
}

// AddAmount adds f to the "amount" field.
func (isu *ItemSaleUpdate) AddAmount(f float64) *ItemSaleUpdate {
	isu.mutation.AddAmount(f)
	return isu
}

// SetConfidence sets the "confidence" field.
func (isu *ItemSaleUpdate) SetConfidence(f float32) *ItemSaleUpdate {
	isu.mutation.ResetConfidence()
	isu.mutation.SetConfidence(f)
	return isu
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (isu *ItemSaleUpdate) SetNillableConfidence(f *float32) *ItemSaleUpdate {
	if f != nil {
		isu.SetConfidence(*f)
	}
	return isu
}

// AddConfidence adds f to the "confidence" field.
func (isu *ItemSaleUpdate) AddConfidence(f float32) *ItemSaleUpdate {
	isu.mutation.AddConfidence(f)
	return isu
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (isu *ItemSaleUpdate) SetReport(s *ShiftReport) *ItemSaleUpdate {
	return isu.SetReportID(s.ID)
}

// Mutation returns the ItemSaleMutation object of the builder.
func (isu *ItemSaleUpdate) Mutation() *ItemSaleMutation {
	return isu.mutation
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (isu *ItemSaleUpdate) ClearReport() *ItemSaleUpdate {
	isu.mutation.ClearReport()
	return isu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (isu *ItemSaleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, isu.sqlSave, isu.mutation, isu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (isu *ItemSaleUpdate) SaveX(ctx context.Context) int {
	affected, err := isu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (isu *ItemSaleUpdate) Exec(ctx context.Context) error {
	_, err := isu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (isu *ItemSaleUpdate) ExecX(ctx context.Context) {
	if err := isu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (isu *ItemSaleUpdate) check() error {
	if v, ok := isu.mutation.Name(); ok {
		if err := itemsale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ItemSale.name": %w`, err)}
		}
	}
	if v, ok := isu.mutation.Confidence(); ok {
		if err := itemsale.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ItemSale.confidence": %w`, err)}
		}
	}
	if _, ok := isu.mutation.ReportID(); isu.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ItemSale.report"`)
	}
	return nil
}

func (isu *ItemSaleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := isu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemsale.Table, itemsale.Columns, sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID))
	if ps := isu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := isu.mutation.Name(); ok {
		_spec.SetField(itemsale.FieldName, field.TypeString, value)
	}
	if value, ok := isu.mutation.Quantity(); ok {
		_spec.SetField(itemsale.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := isu.mutation.AddedQuantity(); ok {
		_spec.AddField(itemsale.FieldQuantity, field.TypeFloat64, value)
	}
	if isu.mutation.QuantityCleared() {
		_spec.ClearField(itemsale.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := isu.mutation.Amount(); ok {
		_spec.SetField(itemsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := isu.mutation.AddedAmount(); ok {
		_spec.AddField(itemsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := isu.mutation.Confidence(); ok {
		_spec.SetField(itemsale.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := isu.mutation.AddedConfidence(); ok {
		_spec.AddField(itemsale.FieldConfidence, field.TypeFloat32, value)
	}
	if isu.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemsale.ReportTable,
			Columns: []string{itemsale.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := isu.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemsale.ReportTable,
			Columns: []string{itemsale.ReportColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, isu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemsale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	isu.mutation.done = true
	return n, nil
}

// ItemSaleUpdateOne is the builder for updating a single ItemSale entity.
type ItemSaleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemSaleMutation
}

// SetReportID sets the "report_id" field.
func (isuo *ItemSaleUpdateOne) SetReportID(u uuid.UUID) *ItemSaleUpdateOne {
	isuo.mutation.SetReportID(u)
	return isuo
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (isuo *ItemSaleUpdateOne) SetNillableReportID(u *uuid.UUID) *ItemSaleUpdateOne {
	if u != nil {
		isuo.SetReportID(*u)
	}
	return isuo
}

// SetName sets the "name" field.
func (isuo *ItemSaleUpdateOne) SetName(s string) *ItemSaleUpdateOne {
	isuo.mutation.SetName(s)
	return isuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (isuo *ItemSaleUpdateOne) SetNillableName(s *string) *ItemSaleUpdateOne {
	if s != nil {
		isuo.SetName(*s)
	}
	return isuo
}

// SetQuantity sets the "quantity" field.
func (isuo *ItemSaleUpdateOne) SetQuantity(f float64) *ItemSaleUpdateOne {
	isuo.mutation.ResetQuantity()
	isuo.mutation.SetQuantity(f)
	return isuo
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (isuo *ItemSaleUpdateOne) SetNillableQuantity(f *float64) *ItemSaleUpdateOne {
	if f != nil {
		isuo.SetQuantity(*f)
	}
	return isuo
}

// AddQuantity adds f to the "quantity" field.
func (isuo *ItemSaleUpdateOne) AddQuantity(f float64) *ItemSaleUpdateOne {
	isuo.mutation.AddQuantity(f)
	return isuo
}

// ClearQuantity clears the value of the "quantity" field.
func (isuo *ItemSaleUpdateOne) ClearQuantity() *ItemSaleUpdateOne {
	isuo.mutation.ClearQuantity()
	return isuo
}

// SetAmount sets the "amount" field.
func (isuo *ItemSaleUpdateOne) SetAmount(f float64) *ItemSaleUpdateOne {
	isuo.mutation.ResetAmount()
	isuo.mutation.SetAmount(f)
	return isuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (isuo *ItemSaleUpdateOne) SetNillableAmount(f *float64) *ItemSaleUpdateOne {
	if f != nil {
		isuo.SetAmount(*f)
	}
	return isuo
}

// AddAmount adds f to the "amount" field.
func (isuo *ItemSaleUpdateOne) AddAmount(f float64) *ItemSaleUpdateOne {
	isuo.mutation.AddAmount(f)
	return isuo
}

// SetConfidence sets the "confidence" field.
func (isuo *ItemSaleUpdateOne) SetConfidence(f float32) *ItemSaleUpdateOne {
	isuo.mutation.ResetConfidence()
	isuo.mutation.SetConfidence(f)
	return isuo
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (isuo *ItemSaleUpdateOne) SetNillableConfidence(f *float32) *ItemSaleUpdateOne {
	if f != nil {
		isuo.SetConfidence(*f)
	}
	return isuo
}

// AddConfidence adds f to the "confidence" field.
func (isuo *ItemSaleUpdateOne) AddConfidence(f float32) *ItemSaleUpdateOne {
	isuo.mutation.AddConfidence(f)
	return isuo
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (isuo *ItemSaleUpdateOne) SetReport(s *ShiftReport) *ItemSaleUpdateOne {
	return isuo.SetReportID(s.ID)
}

// Mutation returns the ItemSaleMutation object of the builder.
func (isuo *ItemSaleUpdateOne) Mutation() *ItemSaleMutation {
	return isuo.mutation
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (isuo *ItemSaleUpdateOne) ClearReport() *ItemSaleUpdateOne {
	isuo.mutation.ClearReport()
	return isuo
}

// Where appends a list predicates to the ItemSaleUpdate builder.
func (isuo *ItemSaleUpdateOne) Where(ps ...predicate.ItemSale) *ItemSaleUpdateOne {
	isuo.mutation.Where(ps...)
	return isuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (isuo *ItemSaleUpdateOne) Select(field string, fields ...string) *ItemSaleUpdateOne {
	isuo.fields = append([]string{field}, fields...)
	return isuo
}

// Save executes the query and returns the updated ItemSale entity.
func (isuo *ItemSaleUpdateOne) Save(ctx context.Context) (*ItemSale, error) {
	return withHooks(ctx, isuo.sqlSave, isuo.mutation, isuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (isuo *ItemSaleUpdateOne) SaveX(ctx context.Context) *ItemSale {
	node, err := isuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (isuo *ItemSaleUpdateOne) Exec(ctx context.Context) error {
	_, err := isuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (isuo *ItemSaleUpdateOne) ExecX(ctx context.Context) {
	if err := isuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (isuo *ItemSaleUpdateOne) check() error {
	if v, ok := isuo.mutation.Name(); ok {
		if err := itemsale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ItemSale.name": %w`, err)}
		}
	}
	if v, ok := isuo.mutation.Confidence(); ok {
		if err := itemsale.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ItemSale.confidence": %w`, err)}
		}
	}
	if _, ok := isuo.mutation.ReportID(); isuo.mutation.ReportCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ItemSale.report"`)
	}
	return nil
}

func (isuo *ItemSaleUpdateOne) sqlSave(ctx context.Context) (_node *ItemSale, err error) {
	if err := isuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemsale.Table, itemsale.Columns, sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID))
	id, ok := isuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemSale.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := isuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemsale.FieldID)
		for _, f := range fields {
			if !itemsale.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemsale.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := isuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := isuo.mutation.Name(); ok {
		_spec.SetField(itemsale.FieldName, field.TypeString, value)
	}
	if value, ok := isuo.mutation.Quantity(); ok {
		_spec.SetField(itemsale.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := isuo.mutation.AddedQuantity(); ok {
		_spec.AddField(itemsale.FieldQuantity, field.TypeFloat64, value)
	}
	if isuo.mutation.QuantityCleared() {
		_spec.ClearField(itemsale.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := isuo.mutation.Amount(); ok {
		_spec.SetField(itemsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := isuo.mutation.AddedAmount(); ok {
		_spec.AddField(itemsale.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := isuo.mutation.Confidence(); ok {
		_spec.SetField(itemsale.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := isuo.mutation.AddedConfidence(); ok {
		_spec.AddField(itemsale.FieldConfidence, field.TypeFloat32, value)
	}
	if isuo.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemsale.ReportTable,
			Columns: []string{itemsale.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := isuo.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   itemsale.ReportTable,
			Columns: []string{itemsale.ReportColumn},
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
	_node = &ItemSale{config: isuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, isuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemsale.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	isuo.mutation.done = true
	return _node, nil
}
