// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/predicate"
	"github.com/abhisek/crumble/ent/rewardclaim"
)

// RewardClaimUpdate is the builder for updating RewardClaim entities.
type RewardClaimUpdate struct {
	config
	hooks    []Hook
	mutation *RewardClaimMutation
}

// Where appends a list predicates to the RewardClaimUpdate builder.
func (_u *RewardClaimUpdate) Where(ps ...predicate.RewardClaim) *RewardClaimUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *RewardClaimUpdate) SetProfile(v string) *RewardClaimUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *RewardClaimUpdate) SetNillableProfile(v *string) *RewardClaimUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetRewardID sets the "reward_id" field.
func (_u *RewardClaimUpdate) SetRewardID(v int) *RewardClaimUpdate {
	_u.mutation.ResetRewardID()
	_u.mutation.SetRewardID(v)
	return _u
}

// SetNillableRewardID sets the "reward_id" field if the given value is not nil.
func (_u *RewardClaimUpdate) SetNillableRewardID(v *int) *RewardClaimUpdate {
	if v != nil {
		_u.SetRewardID(*v)
	}
	return _u
}

// AddRewardID adds value to the "reward_id" field.
func (_u *RewardClaimUpdate) AddRewardID(v int) *RewardClaimUpdate {
	_u.mutation.AddRewardID(v)
	return _u
}

// Mutation returns the RewardClaimMutation object of the builder.
func (_u *RewardClaimUpdate) Mutation() *RewardClaimMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardClaimUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardClaimUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardClaimUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardClaimUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardClaimUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := rewardclaim.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "RewardClaim.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RewardID(); ok {
		if err := rewardclaim.RewardIDValidator(v); err != nil {
			return &ValidationError{Name: "reward_id", err: fmt.Errorf(`ent: validator failed for field "RewardClaim.reward_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardClaimUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardclaim.Table, rewardclaim.Columns, sqlgraph.NewFieldSpec(rewardclaim.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(rewardclaim.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.RewardID(); ok {
		_spec.SetField(rewardclaim.FieldRewardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRewardID(); ok {
		_spec.AddField(rewardclaim.FieldRewardID, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardclaim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardClaimUpdateOne is the builder for updating a single RewardClaim entity.
type RewardClaimUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardClaimMutation
}

// SetProfile sets the "profile" field.
func (_u *RewardClaimUpdateOne) SetProfile(v string) *RewardClaimUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *RewardClaimUpdateOne) SetNillableProfile(v *string) *RewardClaimUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetRewardID sets the "reward_id" field.
func (_u *RewardClaimUpdateOne) SetRewardID(v int) *RewardClaimUpdateOne {
	_u.mutation.ResetRewardID()
	_u.mutation.SetRewardID(v)
	return _u
}

// SetNillableRewardID sets the "reward_id" field if the given value is not nil.
func (_u *RewardClaimUpdateOne) SetNillableRewardID(v *int) *RewardClaimUpdateOne {
	if v != nil {
		_u.SetRewardID(*v)
	}
	return _u
}

// AddRewardID adds value to the "reward_id" field.
func (_u *RewardClaimUpdateOne) AddRewardID(v int) *RewardClaimUpdateOne {
	_u.mutation.AddRewardID(v)
	return _u
}

// Mutation returns the RewardClaimMutation object of the builder.
func (_u *RewardClaimUpdateOne) Mutation() *RewardClaimMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardClaimUpdate builder.
func (_u *RewardClaimUpdateOne) Where(ps ...predicate.RewardClaim) *RewardClaimUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardClaimUpdateOne) Select(field string, fields ...string) *RewardClaimUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardClaim entity.
func (_u *RewardClaimUpdateOne) Save(ctx context.Context) (*RewardClaim, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardClaimUpdateOne) SaveX(ctx context.Context) *RewardClaim {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardClaimUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardClaimUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardClaimUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := rewardclaim.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "RewardClaim.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RewardID(); ok {
		if err := rewardclaim.RewardIDValidator(v); err != nil {
			return &ValidationError{Name: "reward_id", err: fmt.Errorf(`ent: validator failed for field "RewardClaim.reward_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardClaimUpdateOne) sqlSave(ctx context.Context) (_node *RewardClaim, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardclaim.Table, rewardclaim.Columns, sqlgraph.NewFieldSpec(rewardclaim.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardClaim.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardclaim.FieldID)
		for _, f := range fields {
			if !rewardclaim.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardclaim.FieldID {
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
		_spec.SetField(rewardclaim.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.RewardID(); ok {
		_spec.SetField(rewardclaim.FieldRewardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRewardID(); ok {
		_spec.AddField(rewardclaim.FieldRewardID, field.TypeInt, value)
	}
	_node = &RewardClaim{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardclaim.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
