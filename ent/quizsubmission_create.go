// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/google/uuid"
)

// QuizSubmissionCreate is the builder for creating a QuizSubmission entity.
type QuizSubmissionCreate struct {
	config
	mutation *QuizSubmissionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizSubmissionCreate) SetSequence(v int64) *QuizSubmissionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizSubmissionCreate) SetTimestamp(v time.Time) *QuizSubmissionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizSubmissionCreate) SetNillableTimestamp(v *time.Time) *QuizSubmissionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProfile sets the "profile" field.
func (_c *QuizSubmissionCreate) SetProfile(v string) *QuizSubmissionCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *QuizSubmissionCreate) SetMethod(v string) *QuizSubmissionCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuizSubmissionCreate) SetID(v uuid.UUID) *QuizSubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuizSubmissionCreate) SetNillableID(v *uuid.UUID) *QuizSubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddResponseIDs adds the "responses" edge to the QuizResponse entity by IDs.
func (_c *QuizSubmissionCreate) AddResponseIDs(ids ...int) *QuizSubmissionCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the QuizResponse entity.
func (_c *QuizSubmissionCreate) AddResponses(v ...*QuizResponse) *QuizSubmissionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// Mutation returns the QuizSubmissionMutation object of the builder.
func (_c *QuizSubmissionCreate) Mutation() *QuizSubmissionMutation {
	return _c.mutation
}

// Save creates the QuizSubmission in the database.
func (_c *QuizSubmissionCreate) Save(ctx context.Context) (*QuizSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSubmissionCreate) SaveX(ctx context.Context) *QuizSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSubmissionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizsubmission.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quizsubmission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSubmissionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizSubmission.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizSubmission.timestamp"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "QuizSubmission.profile"`)}
	}
	if v, ok := _c.mutation.Profile(); ok {
		if err := quizsubmission.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "QuizSubmission.profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "QuizSubmission.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := quizsubmission.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "QuizSubmission.method": %w`, err)}
		}
	}
	return nil
}

func (_c *QuizSubmissionCreate) sqlSave(ctx context.Context) (*QuizSubmission, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizSubmissionCreate) createSpec() (*QuizSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsubmission.Table, sqlgraph.NewFieldSpec(quizsubmission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizsubmission.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizsubmission.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(quizsubmission.FieldProfile, field.TypeString, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(quizsubmission.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizsubmission.ResponsesTable,
			Columns: []string{quizsubmission.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizSubmissionCreateBulk is the builder for creating many QuizSubmission entities in bulk.
type QuizSubmissionCreateBulk struct {
	config
	err      error
	builders []*QuizSubmissionCreate
}

// Save creates the QuizSubmission entities in the database.
func (_c *QuizSubmissionCreateBulk) Save(ctx context.Context) ([]*QuizSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSubmissionMutation)
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
func (_c *QuizSubmissionCreateBulk) SaveX(ctx context.Context) []*QuizSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
