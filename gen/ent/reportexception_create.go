// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ReportExceptionCreate is the builder for creating a ReportException entity.
type ReportExceptionCreate struct {
	config
	mutation *ReportExceptionMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (rec *ReportExceptionCreate) SetReportID(u uuid.UUID) *ReportExceptionCreate {
	rec.mutation.SetReportID(u)
	return rec
}

// SetType sets the "type" field.
func (rec *ReportExceptionCreate) SetType(s string) *ReportExceptionCreate {
	rec.mutation.SetType(s)
	return rec
}

// SetCount sets the "count" field.
func (rec *ReportExceptionCreate) SetCount(i int) *ReportExceptionCreate {
	rec.mutation.SetCount(i)
	return rec
}

// SetAmount sets the "amount" field.
func (rec *ReportExceptionCreate) SetAmount(f float64) *ReportExceptionCreate {
	rec.mutation.SetAmount(f)
	return rec
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (rec *ReportExceptionCreate) SetNillableAmount(f *float64) *ReportExceptionCreate {
	if f != nil {
		rec.SetAmount(*f)
	}
	return rec
}

// SetID sets the "id" field.
func (rec *ReportExceptionCreate) SetID(u uuid.UUID) *ReportExceptionCreate {
	rec.mutation.SetID(u)
	return rec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rec *ReportExceptionCreate) SetNillableID(u *uuid.UUID) *ReportExceptionCreate {
	if u != nil {
		rec.SetID(*u)
	}
	return rec
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (rec *ReportExceptionCreate) SetReport(s *ShiftReport) *ReportExceptionCreate {
	return rec.SetReportID(s.ID)
}

// Mutation returns the ReportExceptionMutation object of the builder.
func (rec *ReportExceptionCreate) Mutation() *ReportExceptionMutation {
	return rec.mutation
}

// Save creates the ReportException in the database.
func (rec *ReportExceptionCreate) Save(ctx context.Context) (*ReportException, error) {
	rec.defaults()
	return withHooks(ctx, rec.sqlSave, rec.mutation, rec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rec *ReportExceptionCreate) SaveX(ctx context.Context) *ReportException {
	v, err := rec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rec *ReportExceptionCreate) Exec(ctx context.Context) error {
	_, err := rec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rec *ReportExceptionCreate) ExecX(ctx context.Context) {
	if err := rec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rec *ReportExceptionCreate) defaults() {
	if _, ok := rec.mutation.ID(); !ok {
		v := reportexception.DefaultID()
		rec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rec *ReportExceptionCreate) check() error {
	if _, ok := rec.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportException.report_id"`)}
	}
	if _, ok := rec.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ReportException.type"`)}
	}
	if v, ok := rec.mutation.GetType(); ok {
		if err := reportexception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ReportException.type": %w`, err)}
		}
	}
	if _, ok := rec.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "ReportException.count"`)}
	}
	if v, ok := rec.mutation.Count(); ok {
		if err := reportexception.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "ReportException.count": %w`, err)}
		}
	}
	if _, ok := rec.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ReportException.report"`)}
	}
	return nil
}

func (rec *ReportExceptionCreate) sqlSave(ctx context.Context) (*ReportException, error) {
	if err := rec.check(); err != nil {
		return nil, err
	}
	_node, _spec := rec.createSpec()
	if err := sqlgraph.CreateNode(ctx, rec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	rec.mutation.id = &_node.ID
	rec.mutation.done = true
	return _node, nil
}

func (rec *ReportExceptionCreate) createSpec() (*ReportException, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportException{config: rec.config}
		_spec = sqlgraph.NewCreateSpec(reportexception.Table, sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID))
	)
	if id, ok := rec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rec.mutation.GetType(); ok {
		_spec.SetField(reportexception.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := rec.mutation.Count(); ok {
		_spec.SetField(reportexception.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := rec.mutation.Amount(); ok {
		_spec.SetField(reportexception.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if nodes := rec.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReportExceptionCreateBulk is the builder for creating many ReportException entities in bulk.
type ReportExceptionCreateBulk struct {
	config
	err      error
	builders []*ReportExceptionCreate
}

// Save creates the ReportException entities in the database.
func (recb *ReportExceptionCreateBulk) Save(ctx context.Context) ([]*ReportException, error) {
	if recb.err != nil {
		return nil, recb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(recb.builders))
	nodes := make([]*ReportException, len(recb.builders))
	mutators := make([]Mutator, len(recb.builders))
	for i := range recb.builders {
		func(i int, root context.Context) {
			builder := recb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportExceptionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, recb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, recb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, recb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (recb *ReportExceptionCreateBulk) SaveX(ctx context.Context) []*ReportException {
	v, err := recb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (recb *ReportExceptionCreateBulk) Exec(ctx context.Context) error {
	_, err := recb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (recb *ReportExceptionCreateBulk) ExecX(ctx context.Context) {
	if err := recb.Exec(ctx); err != nil {
		panic(err)
	}
}
