// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/rewardclaim"
)

// RewardClaimCreate is the builder for creating a RewardClaim entity.
type RewardClaimCreate struct {
	config
	mutation *RewardClaimMutation
	hooks    []Hook
}

// SetProfile sets the "profile" field.
func (_c *RewardClaimCreate) SetProfile(v string) *RewardClaimCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetRewardID sets the "reward_id" field.
func (_c *RewardClaimCreate) SetRewardID(v int) *RewardClaimCreate {
	_c.mutation.SetRewardID(v)
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *RewardClaimCreate) SetClaimedAt(v time.Time) *RewardClaimCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *RewardClaimCreate) SetNillableClaimedAt(v *time.Time) *RewardClaimCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// Mutation returns the RewardClaimMutation object of the builder.
func (_c *RewardClaimCreate) Mutation() *RewardClaimMutation {
	return _c.mutation
}

// Save creates the RewardClaim in the database.
func (_c *RewardClaimCreate) Save(ctx context.Context) (*RewardClaim, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardClaimCreate) SaveX(ctx context.Context) *RewardClaim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardClaimCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardClaimCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardClaimCreate) defaults() {
	if _, ok := _c.mutation.ClaimedAt(); !ok {
		v := rewardclaim.DefaultClaimedAt()
		_c.mutation.SetClaimedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardClaimCreate) check() error {
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "RewardClaim.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := rewardclaim.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "RewardClaim.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RewardID(); !ok {
		return &ValidationError{Name: "reward_id", err: errors.New(`ent: missing required field "RewardClaim.reward_id"`)}
	}
	if v, ok := _c.mutation.RewardID(); ok {
		if err := rewardclaim.RewardIDValidator(v); err != nil {
			return &ValidationError{Name: "reward_id", err: fmt.Errorf(`ent: validator failed for field "RewardClaim.reward_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClaimedAt(); !ok {
		return &ValidationError{Name: "claimed_at", err: errors.New(`ent: missing required field "RewardClaim.claimed_at"`)}
	}
	return nil
}

func (_c *RewardClaimCreate) sqlSave(ctx context.Context) (*RewardClaim, error) {
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

func (_c *RewardClaimCreate) createSpec() (*RewardClaim, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardClaim{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardclaim.Table, sqlgraph.NewFieldSpec(rewardclaim.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(rewardclaim.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.RewardID(); ok {
		_spec.SetField(rewardclaim.FieldRewardID, field.TypeInt, value)
		_node.RewardID = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(rewardclaim.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = value
	}
	return _node, _spec
}

// RewardClaimCreateBulk is the builder for creating many RewardClaim entities in bulk.
type RewardClaimCreateBulk struct {
	config
	err      error
	builders []*RewardClaimCreate
}

// Save creates the RewardClaim entities in the database.
func (_c *RewardClaimCreateBulk) Save(ctx context.Context) ([]*RewardClaim, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardClaim, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardClaimMutation)
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
func (_c *RewardClaimCreateBulk) SaveX(ctx context.Context) []*RewardClaim {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardClaimCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardClaimCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
