// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/google/uuid"
)

// ItemSaleCreate is the builder for creating a ItemSale entity.
type ItemSaleCreate struct {
	config
	mutation *ItemSaleMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (isc *ItemSaleCreate) SetReportID(u uuid.UUID) *ItemSaleCreate {
	isc.mutation.SetReportID(u)
	return isc
}

// SetName sets the "name" field.
func (isc *ItemSaleCreate) SetName(s string) *ItemSaleCreate {
	isc.mutation.SetName(s)
	return isc
}

// SetQuantity sets the "quantity" field.
func (isc *ItemSaleCreate) SetQuantity(f float64) *ItemSaleCreate {
	isc.mutation.SetQuantity(f)
	return isc
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (isc *ItemSaleCreate) SetNillableQuantity(f *float64) *ItemSaleCreate {
	if f != nil {
		isc.SetQuantity(*f)
	}
	return isc
}

// SetAmount sets the "amount" field.
func (isc *ItemSaleCreate) SetAmount(f float64) *ItemSaleCreate {
	isc.mutation.SetAmount(f)
	return isc
}

// SetConfidence sets the "confidence" field.
func (isc *ItemSaleCreate) SetConfidence(f float32) *ItemSaleCreate {
	isc.mutation.SetConfidence(f)
	return isc
}

// SetID sets the "id" field.
func (isc *ItemSaleCreate) SetID(u uuid.UUID) *ItemSaleCreate {
	isc.mutation.SetID(u)
	return isc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (isc *ItemSaleCreate) SetNillableID(u *uuid.UUID) *ItemSaleCreate {
	if u != nil {
		isc.SetID(*u)
	}
	return isc
}

// SetReport sets the "report" edge to the ShiftReport entity.
func (isc *ItemSaleCreate) SetReport(s *ShiftReport) *ItemSaleCreate {
	return isc.SetReportID(s.ID)
}

// Mutation returns the ItemSaleMutation object of the builder.
func (isc *ItemSaleCreate) Mutation() *ItemSaleMutation {
	return isc.mutation
}

// Save creates the ItemSale in the database.
func (isc *ItemSaleCreate) Save(ctx context.Context) (*ItemSale, error) {
	isc.defaults()
	return withHooks(ctx, isc.sqlSave, isc.mutation, isc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (isc *ItemSaleCreate) SaveX(ctx context.Context) *ItemSale {
	v, err := isc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (isc *ItemSaleCreate) Exec(ctx context.Context) error {
	_, err := isc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (isc *ItemSaleCreate) ExecX(ctx context.Context) {
	if err := isc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (isc *ItemSaleCreate) defaults() {
	if _, ok := isc.mutation.ID(); !ok {
		v := itemsale.DefaultID()
		isc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (isc *ItemSaleCreate) check() error {
	if _, ok := isc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ItemSale.report_id"`)}
	}
	if _, ok := isc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ItemSale.name"`)}
	}
	if v, ok := isc.mutation.Name(); ok {
		if err := itemsale.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ItemSale.name": %w`, err)}
		}
	}
	if _, ok := isc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "ItemSale.amount"`)}
	}
	if _, ok := isc.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ItemSale.confidence"`)}
	}
	if v, ok := isc.mutation.Confidence(); ok {
		if err := itemsale.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ItemSale.confidence": %w`, err)}
		}
	}
	if _, ok := isc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "ItemSale.report"`)}
	}
	return nil
}

func (isc *ItemSaleCreate) sqlSave(ctx context.Context) (*ItemSale, error) {
	if err := isc.check(); err != nil {
		return nil, err
	}
	_node, _spec := isc.createSpec()
	if err := sqlgraph.CreateNode(ctx, isc.driver, _spec); err != nil {
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
	isc.mutation.id = &_node.ID
	isc.mutation.done = true
	return _node, nil
}

func (isc *ItemSaleCreate) createSpec() (*ItemSale, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemSale{config: isc.config}
		_spec = sqlgraph.NewCreateSpec(itemsale.Table, sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID))
	)
	if id, ok := isc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := isc.mutation.Name(); ok {
		_spec.SetField(itemsale.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := isc.mutation.Quantity(); ok {
		_spec.SetField(itemsale.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = &value
	}
	if value, ok := isc.mutation.Amount(); ok {
		_spec.SetField(itemsale.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := isc.mutation.Confidence(); ok {
		_spec.SetField(itemsale.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if nodes := isc.mutation.ReportIDs(); len(nodes) > 0 {
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
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ItemSaleCreateBulk is the builder for creating many ItemSale entities in bulk.
type ItemSaleCreateBulk struct {
	config
	err      error
	builders []*ItemSaleCreate
}

// Save creates the ItemSale entities in the database.
func (iscb *ItemSaleCreateBulk) Save(ctx context.Context) ([]*ItemSale, error) {
	if iscb.err != nil {
		return nil, iscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(iscb.builders))
	nodes := make([]*ItemSale, len(iscb.builders))
	mutators := make([]Mutator, len(iscb.builders))
	for i := range iscb.builders {
		func(i int, root context.Context) {
			builder := iscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemSaleMutation)
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
					_, err = mutators[i+1].Mutate(root, iscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, iscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, iscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (iscb *ItemSaleCreateBulk) SaveX(ctx context.Context) []*ItemSale {
	v, err := iscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (iscb *ItemSaleCreateBulk) Exec(ctx context.Context) error {
	_, err := iscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iscb *ItemSaleCreateBulk) ExecX(ctx context.Context) {
	if err := iscb.Exec(ctx); err != nil {
		panic(err)
	}
}
