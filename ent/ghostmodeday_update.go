// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/predicate"
)

// GhostModeDayUpdate is the builder for updating GhostModeDay entities.
type GhostModeDayUpdate struct {
	config
	hooks    []Hook
	mutation *GhostModeDayMutation
}

// Where appends a list predicates to the GhostModeDayUpdate builder.
func (_u *GhostModeDayUpdate) Where(ps ...predicate.GhostModeDay) *GhostModeDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *GhostModeDayUpdate) SetProfile(v string) *GhostModeDayUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *GhostModeDayUpdate) SetNillableProfile(v *string) *GhostModeDayUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *GhostModeDayUpdate) SetDay(v string) *GhostModeDayUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *GhostModeDayUpdate) SetNillableDay(v *string) *GhostModeDayUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// Mutation returns the GhostModeDayMutation object of the builder.
func (_u *GhostModeDayUpdate) Mutation() *GhostModeDayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GhostModeDayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostModeDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GhostModeDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostModeDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostModeDayUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := ghostmodeday.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "GhostModeDay.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := ghostmodeday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "GhostModeDay.day": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostModeDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostmodeday.Table, ghostmodeday.Columns, sqlgraph.NewFieldSpec(ghostmodeday.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(ghostmodeday.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(ghostmodeday.FieldDay, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostmodeday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GhostModeDayUpdateOne is the builder for updating a single GhostModeDay entity.
type GhostModeDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GhostModeDayMutation
}

// SetProfile sets the "profile" field.
func (_u *GhostModeDayUpdateOne) SetProfile(v string) *GhostModeDayUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *GhostModeDayUpdateOne) SetNillableProfile(v *string) *GhostModeDayUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *GhostModeDayUpdateOne) SetDay(v string) *GhostModeDayUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *GhostModeDayUpdateOne) SetNillableDay(v *string) *GhostModeDayUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// Mutation returns the GhostModeDayMutation object of the builder.
func (_u *GhostModeDayUpdateOne) Mutation() *GhostModeDayMutation {
	return _u.mutation
}

// Where appends a list predicates to the GhostModeDayUpdate builder.
func (_u *GhostModeDayUpdateOne) Where(ps ...predicate.GhostModeDay) *GhostModeDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GhostModeDayUpdateOne) Select(field string, fields ...string) *GhostModeDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GhostModeDay entity.
func (_u *GhostModeDayUpdateOne) Save(ctx context.Context) (*GhostModeDay, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostModeDayUpdateOne) SaveX(ctx context.Context) *GhostModeDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GhostModeDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostModeDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostModeDayUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := ghostmodeday.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "GhostModeDay.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := ghostmodeday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "GhostModeDay.day": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostModeDayUpdateOne) sqlSave(ctx context.Context) (_node *GhostModeDay, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostmodeday.Table, ghostmodeday.Columns, sqlgraph.NewFieldSpec(ghostmodeday.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GhostModeDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ghostmodeday.FieldID)
		for _, f := range fields {
			if !ghostmodeday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ghostmodeday.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(ghostmodeday.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(ghostmodeday.FieldDay, field.TypeString, value)
	}
	_node = &GhostModeDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostmodeday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
