// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/predicate"
)

// GhostModeDayDelete is the builder for deleting a GhostModeDay entity.
type GhostModeDayDelete struct {
	config
	hooks    []Hook
	mutation *GhostModeDayMutation
}

// Where appends a list predicates to the GhostModeDayDelete builder.
func (_d *GhostModeDayDelete) Where(ps ...predicate.GhostModeDay) *GhostModeDayDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GhostModeDayDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GhostModeDayDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GhostModeDayDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ghostmodeday.Table, sqlgraph.NewFieldSpec(ghostmodeday.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GhostModeDayDeleteOne is the builder for deleting a single GhostModeDay entity.
type GhostModeDayDeleteOne struct {
	_d *GhostModeDayDelete
}

// Where appends a list predicates to the GhostModeDayDelete builder.
func (_d *GhostModeDayDeleteOne) Where(ps ...predicate.GhostModeDay) *GhostModeDayDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GhostModeDayDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ghostmodeday.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GhostModeDayDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
