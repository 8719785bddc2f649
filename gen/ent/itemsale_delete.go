// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
)

// ItemSaleDelete is the builder for deleting a ItemSale entity.
type ItemSaleDelete struct {
	config
	hooks    []Hook
	mutation *ItemSaleMutation
}

// Where appends a list predicates to the ItemSaleDelete builder.
func (isd *ItemSaleDelete) Where(ps ...predicate.ItemSale) *ItemSaleDelete {
	isd.mutation.Where(ps...)
	return isd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (isd *ItemSaleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, isd.sqlExec, isd.mutation, isd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (isd *ItemSaleDelete) ExecX(ctx context.Context) int {
	n, err := isd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (isd *ItemSaleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itemsale.Table, sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID))
	if ps := isd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, isd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	isd.mutation.done = true
	return affected, err
}

// ItemSaleDeleteOne is the builder for deleting a single ItemSale entity.
type ItemSaleDeleteOne struct {
	isd *ItemSaleDelete
}

// Where appends a list predicates to the ItemSaleDelete builder.
func (isdo *ItemSaleDeleteOne) Where(ps ...predicate.ItemSale) *ItemSaleDeleteOne {
	isdo.isd.mutation.Where(ps...)
	return isdo
}

// Exec executes the deletion query.
func (isdo *ItemSaleDeleteOne) Exec(ctx context.Context) error {
	n, err := isdo.isd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itemsale.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (isdo *ItemSaleDeleteOne) ExecX(ctx context.Context) {
	if err := isdo.Exec(ctx); err != nil {
		panic(err)
	}
}
