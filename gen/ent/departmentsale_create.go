// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// DepartmentSaleCreate is the builder for creating a DepartmentSale entity.
type DepartmentSaleCreate struct {
	config
	mutation *DepartmentSaleMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (dsc *DepartmentSaleCreate) SetReportID(u uuid.UUID) *DepartmentSaleCreate {
	dsc.mutation.SetReportID(u)
	return dsc
}

// SetName sets the "name" field.
func (dsc *DepartmentSaleCreate) SetName(s string) *DepartmentSaleCreate {
	dsc.mutation.SetName(s)
	return dsc
}

// SetQuantity sets the "quantity" field.
func (dsc *DepartmentSaleCreate) SetQuantity(f float64) *DepartmentSaleCreate {
	dsc.mutation.SetQuantity(f)
	return dsc
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (dsc *DepartmentSaleCreate) SetNillableQuantity(f *float64) *DepartmentSaleCreate {
	if f != nil {
		dsc.SetQuantity(*f)
	}
	return dsc
}

// SetAmount sets the "amount" field.
func (dsc *DepartmentSaleCreate) SetAmount(f float64) *DepartmentSaleCreate {
	dsc.mutation.SetAmount(f)
	return dsc
}

// SetConfidence sets the "confidence" field.
func (dsc *DepartmentSaleCreate) SetConfidence(f float32) *DepartmentSaleCreate {
	dsc.mutation.SetConfidence(f)
	return dsc
}

// SetID sets the "id" field.
func (dsc *DepartmentSaleCreate) SetID(u uuid.UUID) *DepartmentSaleCreate {
	dsc.mutation.SetID(u)
	return dsc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (dsc *DepartmentSaleCreate) SetNillableID(u *uuid.UUID) *DepartmentSaleCreate {
	if u != nil {
		dsc.SetID(*u)
	}
	return dsc
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (dsc *DepartmentSaleCreate) SetReport(s *ShiftReport) *DepartmentSaleCreate {
	return dsc.SetReportID(s.ID)
}

// Mutation returns the DepartmentSaleMutation object of the builder.
func (dsc *DepartmentSaleCreate) Mutation() *DepartmentSaleMutation {
	return dsc.mutation
}

// Save creates the DepartmentSale in the database.
func (dsc *DepartmentSaleCreate) Save(ctx context.Context) (*DepartmentSale, error) {
	dsc.defaults()
	return withHooks(ctx, dsc.sqlSave, dsc.mutation, dsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dsc *DepartmentSaleCreate) SaveX(ctx context.Context) *DepartmentSale {
	v, err := dsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dsc *DepartmentSaleCreate) Exec(ctx context.Context) error {
	_, err := dsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dsc *DepartmentSaleCreate) ExecX(ctx context.Context) {
	if err := dsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dsc *DepartmentSaleCreate) defaults() {
	if _, ok := dsc.mutation.ID(); !ok {
		v := departmentsale.DefaultID()
		dsc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dsc *DepartmentSaleCreate) check() error {
	if _, ok := dsc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "DepartmentSale.report_id"`)}
	}
	if _, ok := dsc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DepartmentSale.name"`)}
	}
	if v, ok := dsc.mutation.Name(); ok {
		if err := departmentsale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DepartmentSale.name": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "DepartmentSale.amount"`)}
	}
	if _, ok := dsc.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DepartmentSale.confidence"`)}
	}
	if v, ok := dsc.mutation.Confidence(); ok {
		if err := departmentsale.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "DepartmentSale.confidence": %w`, err)}
		}
	}
	if _, ok := dsc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "DepartmentSale.report"`)}
	}
	return nil
}

func (dsc *DepartmentSaleCreate) sqlSave(ctx context.Context) (*DepartmentSale, error) {
	if err := dsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dsc.driver, _spec); err != nil {
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
	dsc.mutation.id = &_node.ID
	dsc.mutation.done = true
	return _node, nil
}

func (dsc *DepartmentSaleCreate) createSpec() (*DepartmentSale, *sqlgraph.CreateSpec) {
	var (
		_node = &DepartmentSale{config: dsc.config}
		_spec = sqlgraph.NewCreateSpec(departmentsale.Table, sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID))
	)
	if id, ok := dsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := dsc.mutation.Name(); ok {
		_spec.SetField(departmentsale.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := dsc.mutation.Quantity(); ok {
		_spec.SetField(departmentsale.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = &value
	}
	if value, ok := dsc.mutation.Amount(); ok {
		_spec.SetField(departmentsale.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := dsc.mutation.Confidence(); ok {
		_spec.SetField(departmentsale.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if nodes := dsc.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DepartmentSaleCreateBulk is the builder for creating many DepartmentSale entities in bulk.
type DepartmentSaleCreateBulk struct {
	config
	err      error
	builders []*DepartmentSaleCreate
}

// Save creates the DepartmentSale entities in the database.
func (dscb *DepartmentSaleCreateBulk) Save(ctx context.Context) ([]*DepartmentSale, error) {
	if dscb.err != nil {
		return nil, dscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dscb.builders))
	nodes := make([]*DepartmentSale, len(dscb.builders))
	mutators := make([]Mutator, len(dscb.builders))
	for i := range dscb.builders {
		func(i int, root context.Context) {
			builder := dscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DepartmentSaleMutation)
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
					_, err = mutators[i+1].Mutate(root, dscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dscb *DepartmentSaleCreateBulk) SaveX(ctx context.Context) []*DepartmentSale {
	v, err := dscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dscb *DepartmentSaleCreateBulk) Exec(ctx context.Context) error {
	_, err := dscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dscb *DepartmentSaleCreateBulk) ExecX(ctx context.Context) {
	if err := dscb.Exec(ctx); err != nil {
		panic(err)
	}
}
