// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
)

// ReportExceptionDelete is the builder for deleting a ReportException entity.
type ReportExceptionDelete struct {
	config
	hooks    []Hook
	mutation *ReportExceptionMutation
}

// Where appends a list predicates to the ReportExceptionDelete builder.
func (red *ReportExceptionDelete) Where(ps ...predicate.ReportException) *ReportExceptionDelete {
	red.mutation.Where(ps...)
	return red
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (red *ReportExceptionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, red.sqlExec, red.mutation, red.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (red *ReportExceptionDelete) ExecX(ctx context.Context) int {
	n, err := red.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (red *ReportExceptionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reportexception.Table, sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID))
	if ps := red.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, red.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	red.mutation.done = true
	return affected, err
}

// ReportExceptionDeleteOne is the builder for deleting a single ReportException entity.
type ReportExceptionDeleteOne struct {
	red *ReportExceptionDelete
}

// Where appends a list predicates to the ReportExceptionDelete builder.
func (redo *ReportExceptionDeleteOne) Where(ps ...predicate.ReportException) *ReportExceptionDeleteOne {
	redo.red.mutation.Where(ps...)
	return redo
}

// Exec executes the deletion query.
func (redo *ReportExceptionDeleteOne) Exec(ctx context.Context) error {
	n, err := redo.red.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reportexception.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (redo *ReportExceptionDeleteOne) ExecX(ctx context.Context) {
	if err := redo.Exec(ctx); err != nil {
		panic(err)
	}
}
