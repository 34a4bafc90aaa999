// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/ghostmodeday"
)

// GhostModeDayCreate is the builder for creating a GhostModeDay entity.
type GhostModeDayCreate struct {
	config
	mutation *GhostModeDayMutation
	hooks    []Hook
}

// SetProfile sets the "profile" field.
func (_c *GhostModeDayCreate) SetProfile(v string) *GhostModeDayCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *GhostModeDayCreate) SetDay(v string) *GhostModeDayCreate {
	_c.mutation.SetDay(v)
	return _c
}

// Mutation returns the GhostModeDayMutation object of the builder.
func (_c *GhostModeDayCreate) Mutation() *GhostModeDayMutation {
	return _c.mutation
}

// Save creates the GhostModeDay in the database.
func (_c *GhostModeDayCreate) Save(ctx context.Context) (*GhostModeDay, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GhostModeDayCreate) SaveX(ctx context.Context) *GhostModeDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostModeDayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostModeDayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GhostModeDayCreate) check() error {
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "GhostModeDay.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := ghostmodeday.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "GhostModeDay.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "GhostModeDay.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := ghostmodeday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "GhostModeDay.day": %w`, err)}
		}
	}
	return nil
}

func (_c *GhostModeDayCreate) sqlSave(ctx context.Context) (*GhostModeDay, error) {
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

func (_c *GhostModeDayCreate) createSpec() (*GhostModeDay, *sqlgraph.CreateSpec) {
	var (
		_node = &GhostModeDay{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ghostmodeday.Table, sqlgraph.NewFieldSpec(ghostmodeday.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(ghostmodeday.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(ghostmodeday.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	return _node, _spec
}

// GhostModeDayCreateBulk is the builder for creating many GhostModeDay entities in bulk.
type GhostModeDayCreateBulk struct {
	config
	err      error
	builders []*GhostModeDayCreate
}

// Save creates the GhostModeDay entities in the database.
func (_c *GhostModeDayCreateBulk) Save(ctx context.Context) ([]*GhostModeDay, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GhostModeDay, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GhostModeDayMutation)
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
func (_c *GhostModeDayCreateBulk) SaveX(ctx context.Context) []*GhostModeDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostModeDayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostModeDayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
