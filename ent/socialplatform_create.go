// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/socialplatform"
)

// SocialPlatformCreate is the builder for creating a SocialPlatform entity.
type SocialPlatformCreate struct {
	config
	mutation *SocialPlatformMutation
	hooks    []Hook
}

// SetProfile sets the "profile" field.
func (_c *SocialPlatformCreate) SetProfile(v string) *SocialPlatformCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SocialPlatformCreate) SetName(v string) *SocialPlatformCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConnected sets the "connected" field.
func (_c *SocialPlatformCreate) SetConnected(v bool) *SocialPlatformCreate {
	_c.mutation.SetConnected(v)
	return _c
}

// SetNillableConnected sets the "connected" field if the given value is not nil.
func (_c *SocialPlatformCreate) SetNillableConnected(v *bool) *SocialPlatformCreate {
	if v != nil {
		_c.SetConnected(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *SocialPlatformCreate) SetUsername(v string) *SocialPlatformCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *SocialPlatformCreate) SetNillableUsername(v *string) *SocialPlatformCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetConnectedAt sets the "connected_at" field.
func (_c *SocialPlatformCreate) SetConnectedAt(v time.Time) *SocialPlatformCreate {
	_c.mutation.SetConnectedAt(v)
	return _c
}

// SetNillableConnectedAt sets the "connected_at" field if the given value is not nil.
func (_c *SocialPlatformCreate) SetNillableConnectedAt(v *time.Time) *SocialPlatformCreate {
	if v != nil {
		_c.SetConnectedAt(*v)
	}
	return _c
}

// Mutation returns the SocialPlatformMutation object of the builder.
func (_c *SocialPlatformCreate) Mutation() *SocialPlatformMutation {
	return _c.mutation
}

// Save creates the SocialPlatform in the database.
func (_c *SocialPlatformCreate) Save(ctx context.Context) (*SocialPlatform, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SocialPlatformCreate) SaveX(ctx context.Context) *SocialPlatform {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SocialPlatformCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SocialPlatformCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SocialPlatformCreate) defaults() {
	if _, ok := _c.mutation.Connected(); !ok {
		v := socialplatform.DefaultConnected
		_c.mutation.SetConnected(v)
	}
	if _, ok := _c.mutation.Username(); !ok {
		v := socialplatform.DefaultUsername
		_c.mutation.SetUsername(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SocialPlatformCreate) check() error {
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "SocialPlatform.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := socialplatform.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "SocialPlatform.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SocialPlatform.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := socialplatform.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SocialPlatform.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Connected(); !ok {
		return &ValidationError{Name: "connected", err: errors.New(`ent: missing required field "SocialPlatform.connected"`)}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "SocialPlatform.username"`)}
	}
	return nil
}

func (_c *SocialPlatformCreate) sqlSave(ctx context.Context) (*SocialPlatform, error) {
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

func (_c *SocialPlatformCreate) createSpec() (*SocialPlatform, *sqlgraph.CreateSpec) {
	var (
		_node = &SocialPlatform{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(socialplatform.Table, sqlgraph.NewFieldSpec(socialplatform.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(socialplatform.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(socialplatform.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Connected(); ok {
		_spec.SetField(socialplatform.FieldConnected, field.TypeBool, value)
		_node.Connected = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(socialplatform.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.ConnectedAt(); ok {
		_spec.SetField(socialplatform.FieldConnectedAt, field.TypeTime, value)
		_node.ConnectedAt = value
	}
	return _node, _spec
}

// SocialPlatformCreateBulk is the builder for creating many SocialPlatform entities in bulk.
type SocialPlatformCreateBulk struct {
	config
	err      error
	builders []*SocialPlatformCreate
}

// Save creates the SocialPlatform entities in the database.
func (_c *SocialPlatformCreateBulk) Save(ctx context.Context) ([]*SocialPlatform, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SocialPlatform, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SocialPlatformMutation)
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
func (_c *SocialPlatformCreateBulk) SaveX(ctx context.Context) []*SocialPlatform {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SocialPlatformCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SocialPlatformCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
