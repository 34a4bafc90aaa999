// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/ghostsetting"
)

// GhostSettingCreate is the builder for creating a GhostSetting entity.
type GhostSettingCreate struct {
	config
	mutation *GhostSettingMutation
	hooks    []Hook
}

// SetProfile sets the "profile" field.
func (_c *GhostSettingCreate) SetProfile(v string) *GhostSettingCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetToggle sets the "toggle" field.
func (_c *GhostSettingCreate) SetToggle(v string) *GhostSettingCreate {
	_c.mutation.SetToggle(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *GhostSettingCreate) SetEnabled(v bool) *GhostSettingCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *GhostSettingCreate) SetNillableEnabled(v *bool) *GhostSettingCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// Mutation returns the GhostSettingMutation object of the builder.
func (_c *GhostSettingCreate) Mutation() *GhostSettingMutation {
	return _c.mutation
}

// Save creates the GhostSetting in the database.
func (_c *GhostSettingCreate) Save(ctx context.Context) (*GhostSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GhostSettingCreate) SaveX(ctx context.Context) *GhostSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GhostSettingCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := ghostsetting.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GhostSettingCreate) check() error {
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "GhostSetting.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := ghostsetting.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "GhostSetting.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Toggle(); !ok {
		return &ValidationError{Name: "toggle", err: errors.New(`ent: missing required field "GhostSetting.toggle"`)}
	}
	if v, ok := _c.mutation.Toggle(); ok {
		if err := ghostsetting.ToggleValidator(v); err != nil {
			return &ValidationError{Name: "toggle", err: fmt.Errorf(`ent: validator failed for field "GhostSetting.toggle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "GhostSetting.enabled"`)}
	}
	return nil
}

func (_c *GhostSettingCreate) sqlSave(ctx context.Context) (*GhostSetting, error) {
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

func (_c *GhostSettingCreate) createSpec() (*GhostSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &GhostSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ghostsetting.Table, sqlgraph.NewFieldSpec(ghostsetting.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(ghostsetting.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Toggle(); ok {
		_spec.SetField(ghostsetting.FieldToggle, field.TypeString, value)
		_node.Toggle = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(ghostsetting.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	return _node, _spec
}

// GhostSettingCreateBulk is the builder for creating many GhostSetting entities in bulk.
type GhostSettingCreateBulk struct {
	config
	err      error
	builders []*GhostSettingCreate
}

// Save creates the GhostSetting entities in the database.
func (_c *GhostSettingCreateBulk) Save(ctx context.Context) ([]*GhostSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GhostSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GhostSettingMutation)
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
func (_c *GhostSettingCreateBulk) SaveX(ctx context.Context) []*GhostSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
