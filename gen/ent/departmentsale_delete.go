// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
)

// DepartmentSaleDelete is the builder for deleting a DepartmentSale entity.
type DepartmentSaleDelete struct {
	config
	hooks    []Hook
	mutation *DepartmentSaleMutation
}

// Where appends a list predicates to the DepartmentSaleDelete builder.
func (dsd *DepartmentSaleDelete) Where(ps ...predicate.DepartmentSale) *DepartmentSaleDelete {
	dsd.mutation.Where(ps...)
	return dsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dsd *DepartmentSaleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dsd.sqlExec, dsd.mutation, dsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dsd *DepartmentSaleDelete) ExecX(ctx context.Context) int {
	n, err := dsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dsd *DepartmentSaleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(departmentsale.Table, sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID))
	if ps := dsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dsd.mutation.done = true
	return affected, err
}

// DepartmentSaleDeleteOne is the builder for deleting a single DepartmentSale entity.
type DepartmentSaleDeleteOne struct {
	dsd *DepartmentSaleDelete
}

// Where appends a list predicates to the DepartmentSaleDelete builder.
func (dsdo *DepartmentSaleDeleteOne) Where(ps ...predicate.DepartmentSale) *DepartmentSaleDeleteOne {
	dsdo.dsd.mutation.Where(ps...)
	return dsdo
}

// Exec executes the deletion query.
func (dsdo *DepartmentSaleDeleteOne) Exec(ctx context.Context) error {
	n, err := dsdo.dsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{departmentsale.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dsdo *DepartmentSaleDeleteOne) ExecX(ctx context.Context) {
	if err := dsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
