// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetProfile sets the "profile" field.
func (_c *ProgressCreate) SetProfile(v string) *ProgressCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *ProgressCreate) SetPoints(v int) *ProgressCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *ProgressCreate) SetNillablePoints(v *int) *ProgressCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ProgressCreate) SetStreak(v int) *ProgressCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableStreak(v *int) *ProgressCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetDaysStrong sets the "days_strong" field.
func (_c *ProgressCreate) SetDaysStrong(v int) *ProgressCreate {
	_c.mutation.SetDaysStrong(v)
	return _c
}

// SetNillableDaysStrong sets the "days_strong" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableDaysStrong(v *int) *ProgressCreate {
	if v != nil {
		_c.SetDaysStrong(*v)
	}
	return _c
}

// SetIsPremium sets the "is_premium" field.
func (_c *ProgressCreate) SetIsPremium(v bool) *ProgressCreate {
	_c.mutation.SetIsPremium(v)
	return _c
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableIsPremium(v *bool) *ProgressCreate {
	if v != nil {
		_c.SetIsPremium(*v)
	}
	return _c
}

// SetLastActive sets the "last_active" field.
func (_c *ProgressCreate) SetLastActive(v string) *ProgressCreate {
	_c.mutation.SetLastActive(v)
	return _c
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastActive(v *string) *ProgressCreate {
	if v != nil {
		_c.SetLastActive(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressCreate) SetUpdatedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableUpdatedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.Points(); !ok {
		v := progress.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := progress.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.DaysStrong(); !ok {
		v := progress.DefaultDaysStrong
		_c.mutation.SetDaysStrong(v)
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		v := progress.DefaultIsPremium
		_c.mutation.SetIsPremium(v)
	}
	if _, ok := _c.mutation.LastActive(); !ok {
		v := progress.DefaultLastActive
		_c.mutation.SetLastActive(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "Progress.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := progress.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "Progress.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "Progress.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := progress.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Progress.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Progress.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := progress.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Progress.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DaysStrong(); !ok {
		return &ValidationError{Name: "days_strong", err: errors.New(`ent: missing required field "Progress.days_strong"`)}
	}
	if v, ok := _c.mutation.DaysStrong(); ok {
		if err := progress.DaysStrongValidator(v); err != nil {
			return &ValidationError{Name: "days_strong", err: fmt.Errorf(`ent: validator failed for field "Progress.days_strong": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		return &ValidationError{Name: "is_premium", err: errors.New(`ent: missing required field "Progress.is_premium"`)}
	}
	if _, ok := _c.mutation.LastActive(); !ok {
		return &ValidationError{Name: "last_active", err: errors.New(`ent: missing required field "Progress.last_active"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Progress.updated_at"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(progress.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(progress.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(progress.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.DaysStrong(); ok {
		_spec.SetField(progress.FieldDaysStrong, field.TypeInt, value)
		_node.DaysStrong = value
	}
	if value, ok := _c.mutation.IsPremium(); ok {
		_spec.SetField(progress.FieldIsPremium, field.TypeBool, value)
		_node.IsPremium = value
	}
	if value, ok := _c.mutation.LastActive(); ok {
		_spec.SetField(progress.FieldLastActive, field.TypeString, value)
		_node.LastActive = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
