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
	"github.com/abhisek/crumble/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *ProgressUpdate) SetProfile(v string) *ProgressUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableProfile(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ProgressUpdate) SetPoints(v int) *ProgressUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillablePoints(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ProgressUpdate) AddPoints(v int) *ProgressUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProgressUpdate) SetStreak(v int) *ProgressUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStreak(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProgressUpdate) AddStreak(v int) *ProgressUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetDaysStrong sets the "days_strong" field.
func (_u *ProgressUpdate) SetDaysStrong(v int) *ProgressUpdate {
	_u.mutation.ResetDaysStrong()
	_u.mutation.SetDaysStrong(v)
	return _u
}

// SetNillableDaysStrong sets the "days_strong" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableDaysStrong(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetDaysStrong(*v)
	}
	return _u
}

// AddDaysStrong adds value to the "days_strong" field.
func (_u *ProgressUpdate) AddDaysStrong(v int) *ProgressUpdate {
	_u.mutation.AddDaysStrong(v)
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *ProgressUpdate) SetIsPremium(v bool) *ProgressUpdate {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableIsPremium(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProgressUpdate) SetLastActive(v string) *ProgressUpdate {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastActive(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableUpdatedAt(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := progress.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "Progress.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := progress.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Progress.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DaysStrong(); ok {
		if err := progress.DaysStrongValidator(v); err != nil {
			return &ValidationError{Name: "days_strong", err: fmt.Errorf(`ent: validator failed for field "Progress.days_strong": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(progress.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(progress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(progress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysStrong(); ok {
		_spec.SetField(progress.FieldDaysStrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysStrong(); ok {
		_spec.AddField(progress.FieldDaysStrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(progress.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(progress.FieldLastActive, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetProfile sets the "profile" field.
func (_u *ProgressUpdateOne) SetProfile(v string) *ProgressUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableProfile(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ProgressUpdateOne) SetPoints(v int) *ProgressUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillablePoints(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ProgressUpdateOne) AddPoints(v int) *ProgressUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ProgressUpdateOne) SetStreak(v int) *ProgressUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStreak(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ProgressUpdateOne) AddStreak(v int) *ProgressUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetDaysStrong sets the "days_strong" field.
func (_u *ProgressUpdateOne) SetDaysStrong(v int) *ProgressUpdateOne {
	_u.mutation.ResetDaysStrong()
	_u.mutation.SetDaysStrong(v)
	return _u
}

// SetNillableDaysStrong sets the "days_strong" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableDaysStrong(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetDaysStrong(*v)
	}
	return _u
}

// AddDaysStrong adds value to the "days_strong" field.
func (_u *ProgressUpdateOne) AddDaysStrong(v int) *ProgressUpdateOne {
	_u.mutation.AddDaysStrong(v)
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *ProgressUpdateOne) SetIsPremium(v bool) *ProgressUpdateOne {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableIsPremium(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProgressUpdateOne) SetLastActive(v string) *ProgressUpdateOne {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastActive(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := progress.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "Progress.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := progress.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Progress.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DaysStrong(); ok {
		if err := progress.DaysStrongValidator(v); err != nil {
			return &ValidationError{Name: "days_strong", err: fmt.Errorf(`ent: validator failed for field "Progress.days_strong": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
		_spec.SetField(progress.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(progress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(progress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(progress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysStrong(); ok {
		_spec.SetField(progress.FieldDaysStrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysStrong(); ok {
		_spec.AddField(progress.FieldDaysStrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(progress.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(progress.FieldLastActive, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
