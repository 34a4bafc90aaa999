// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/ghostsetting"
	"github.com/abhisek/crumble/ent/predicate"
)

// GhostSettingUpdate is the builder for updating GhostSetting entities.
type GhostSettingUpdate struct {
	config
	hooks    []Hook
	mutation *GhostSettingMutation
}

// Where appends a list predicates to the GhostSettingUpdate builder.
func (_u *GhostSettingUpdate) Where(ps ...predicate.GhostSetting) *GhostSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *GhostSettingUpdate) SetProfile(v string) *GhostSettingUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *GhostSettingUpdate) SetNillableProfile(v *string) *GhostSettingUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetToggle sets the "toggle" field.
func (_u *GhostSettingUpdate) SetToggle(v string) *GhostSettingUpdate {
	_u.mutation.SetToggle(v)
	return _u
}

// SetNillableToggle sets the "toggle" field if the given value is not nil.
func (_u *GhostSettingUpdate) SetNillableToggle(v *string) *GhostSettingUpdate {
	if v != nil {
		_u.SetToggle(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GhostSettingUpdate) SetEnabled(v bool) *GhostSettingUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GhostSettingUpdate) SetNillableEnabled(v *bool) *GhostSettingUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the GhostSettingMutation object of the builder.
func (_u *GhostSettingUpdate) Mutation() *GhostSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GhostSettingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GhostSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostSettingUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := ghostsetting.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "GhostSetting.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Toggle(); ok {
		if err := ghostsetting.ToggleValidator(v); err != nil {
			return &ValidationError{Name: "toggle", err: fmt.Errorf(`ent: validator failed for field "GhostSetting.toggle": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostsetting.Table, ghostsetting.Columns, sqlgraph.NewFieldSpec(ghostsetting.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(ghostsetting.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Toggle(); ok {
		_spec.SetField(ghostsetting.FieldToggle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(ghostsetting.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GhostSettingUpdateOne is the builder for updating a single GhostSetting entity.
type GhostSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GhostSettingMutation
}

// SetProfile sets the "profile" field.
func (_u *GhostSettingUpdateOne) SetProfile(v string) *GhostSettingUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *GhostSettingUpdateOne) SetNillableProfile(v *string) *GhostSettingUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetToggle sets the "toggle" field.
func (_u *GhostSettingUpdateOne) SetToggle(v string) *GhostSettingUpdateOne {
	_u.mutation.SetToggle(v)
	return _u
}

// SetNillableToggle sets the "toggle" field if the given value is not nil.
func (_u *GhostSettingUpdateOne) SetNillableToggle(v *string) *GhostSettingUpdateOne {
	if v != nil {
		_u.SetToggle(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GhostSettingUpdateOne) SetEnabled(v bool) *GhostSettingUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GhostSettingUpdateOne) SetNillableEnabled(v *bool) *GhostSettingUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the GhostSettingMutation object of the builder.
func (_u *GhostSettingUpdateOne) Mutation() *GhostSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the GhostSettingUpdate builder.
func (_u *GhostSettingUpdateOne) Where(ps ...predicate.GhostSetting) *GhostSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GhostSettingUpdateOne) Select(field string, fields ...string) *GhostSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GhostSetting entity.
func (_u *GhostSettingUpdateOne) Save(ctx context.Context) (*GhostSetting, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostSettingUpdateOne) SaveX(ctx context.Context) *GhostSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GhostSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostSettingUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := ghostsetting.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "GhostSetting.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Toggle(); ok {
		if err := ghostsetting.ToggleValidator(v); err != nil {
			return &ValidationError{Name: "toggle", err: fmt.Errorf(`ent: validator failed for field "GhostSetting.toggle": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostSettingUpdateOne) sqlSave(ctx context.Context) (_node *GhostSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostsetting.Table, ghostsetting.Columns, sqlgraph.NewFieldSpec(ghostsetting.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GhostSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ghostsetting.FieldID)
		for _, f := range fields {
			if !ghostsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ghostsetting.FieldID {
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
		_spec.SetField(ghostsetting.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Toggle(); ok {
		_spec.SetField(ghostsetting.FieldToggle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(ghostsetting.FieldEnabled, field.TypeBool, value)
	}
	_node = &GhostSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
