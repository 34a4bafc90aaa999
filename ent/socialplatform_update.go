// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/predicate"
	"github.com/abhisek/crumble/ent/socialplatform"
)

// SocialPlatformUpdate is the builder for updating SocialPlatform entities.
type SocialPlatformUpdate struct {
	config
	hooks    []Hook
	mutation *SocialPlatformMutation
}

// Where appends a list predicates to the SocialPlatformUpdate builder.
func (_u *SocialPlatformUpdate) Where(ps ...predicate.SocialPlatform) *SocialPlatformUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *SocialPlatformUpdate) SetProfile(v string) *SocialPlatformUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *SocialPlatformUpdate) SetNillableProfile(v *string) *SocialPlatformUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SocialPlatformUpdate) SetName(v string) *SocialPlatformUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SocialPlatformUpdate) SetNillableName(v *string) *SocialPlatformUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConnected sets the "connected" field.
func (_u *SocialPlatformUpdate) SetConnected(v bool) *SocialPlatformUpdate {
	_u.mutation.SetConnected(v)
	return _u
}

// SetNillableConnected sets the "connected" field if the given value is not nil.
func (_u *SocialPlatformUpdate) SetNillableConnected(v *bool) *SocialPlatformUpdate {
	if v != nil {
		_u.SetConnected(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *SocialPlatformUpdate) SetUsername(v string) *SocialPlatformUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SocialPlatformUpdate) SetNillableUsername(v *string) *SocialPlatformUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetConnectedAt sets the "connected_at" field.
func (_u *SocialPlatformUpdate) SetConnectedAt(v time.Time) *SocialPlatformUpdate {
	_u.mutation.SetConnectedAt(v)
	return _u
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_u *SocialPlatformUpdate) SetNillableConnectedAt(v *time.Time) *SocialPlatformUpdate {
	if v != nil {
		_u.SetConnectedAt(*v)
	}
	return _u
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (_u *SocialPlatformUpdate) ClearConnectedAt() *SocialPlatformUpdate {
	_u.mutation.ClearConnectedAt()
	return _u
}

// Mutation returns the SocialPlatformMutation object of the builder.
func (_u *SocialPlatformUpdate) Mutation() *SocialPlatformMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SocialPlatformUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SocialPlatformUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SocialPlatformUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SocialPlatformUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SocialPlatformUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := socialplatform.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "SocialPlatform.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := socialplatform.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SocialPlatform.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SocialPlatformUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(socialplatform.Table, socialplatform.Columns, sqlgraph.NewFieldSpec(socialplatform.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(socialplatform.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(socialplatform.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Connected(); ok {
		_spec.SetField(socialplatform.FieldConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(socialplatform.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectedAt(); ok {
		_spec.SetField(socialplatform.FieldConnectedAt, field.TypeTime, value)
	}
	if _u.mutation.ConnectedAtCleared() {
		_spec.ClearField(socialplatform.FieldConnectedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{socialplatform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SocialPlatformUpdateOne is the builder for updating a single SocialPlatform entity.
type SocialPlatformUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SocialPlatformMutation
}

// SetProfile sets the "profile" field.
func (_u *SocialPlatformUpdateOne) SetProfile(v string) *SocialPlatformUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *SocialPlatformUpdateOne) SetNillableProfile(v *string) *SocialPlatformUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SocialPlatformUpdateOne) SetName(v string) *SocialPlatformUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SocialPlatformUpdateOne) SetNillableName(v *string) *SocialPlatformUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConnected sets the "connected" field.
func (_u *SocialPlatformUpdateOne) SetConnected(v bool) *SocialPlatformUpdateOne {
	_u.mutation.SetConnected(v)
	return _u
}

// SetNillableConnected sets the "connected" field if the given value is not nil.
func (_u *SocialPlatformUpdateOne) SetNillableConnected(v *bool) *SocialPlatformUpdateOne {
	if v != nil {
		_u.SetConnected(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *SocialPlatformUpdateOne) SetUsername(v string) *SocialPlatformUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SocialPlatformUpdateOne) SetNillableUsername(v *string) *SocialPlatformUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetConnectedAt sets the "connected_at" field.
func (_u *SocialPlatformUpdateOne) SetConnectedAt(v time.Time) *SocialPlatformUpdateOne {
	_u.mutation.SetConnectedAt(v)
	return _u
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_u *SocialPlatformUpdateOne) SetNillableConnectedAt(v *time.Time) *SocialPlatformUpdateOne {
	if v != nil {
		_u.SetConnectedAt(*v)
	}
	return _u
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (_u *SocialPlatformUpdateOne) ClearConnectedAt() *SocialPlatformUpdateOne {
	_u.mutation.ClearConnectedAt()
	return _u
}

// Mutation returns the SocialPlatformMutation object of the builder.
func (_u *SocialPlatformUpdateOne) Mutation() *SocialPlatformMutation {
	return _u.mutation
}

// Where appends a list predicates to the SocialPlatformUpdate builder.
func (_u *SocialPlatformUpdateOne) Where(ps ...predicate.SocialPlatform) *SocialPlatformUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SocialPlatformUpdateOne) Select(field string, fields ...string) *SocialPlatformUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SocialPlatform entity.
func (_u *SocialPlatformUpdateOne) Save(ctx context.Context) (*SocialPlatform, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SocialPlatformUpdateOne) SaveX(ctx context.Context) *SocialPlatform {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SocialPlatformUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SocialPlatformUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SocialPlatformUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := socialplatform.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "SocialPlatform.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := socialplatform.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SocialPlatform.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SocialPlatformUpdateOne) sqlSave(ctx context.Context) (_node *SocialPlatform, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(socialplatform.Table, socialplatform.Columns, sqlgraph.NewFieldSpec(socialplatform.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SocialPlatform.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, socialplatform.FieldID)
		for _, f := range fields {
			if !socialplatform.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != socialplatform.FieldID {
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
		_spec.SetField(socialplatform.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(socialplatform.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Connected(); ok {
		_spec.SetField(socialplatform.FieldConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(socialplatform.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectedAt(); ok {
		_spec.SetField(socialplatform.FieldConnectedAt, field.TypeTime, value)
	}
	if _u.mutation.ConnectedAtCleared() {
		_spec.ClearField(socialplatform.FieldConnectedAt, field.TypeTime)
	}
	_node = &SocialPlatform{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{socialplatform.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
