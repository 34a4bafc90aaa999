// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/google/uuid"
)

// QuizResponseCreate is the builder for creating a QuizResponse entity.
type QuizResponseCreate struct {
	config
	mutation *QuizResponseMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *QuizResponseCreate) SetQuestionID(v int) *QuizResponseCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *QuizResponseCreate) SetResponse(v string) *QuizResponseCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetSubmissionID sets the "submission" edge to the QuizSubmission entity by ID.
func (_c *QuizResponseCreate) SetSubmissionID(id uuid.UUID) *QuizResponseCreate {
	_c.mutation.SetSubmissionID(id)
	return _c
}

// SetSubmission sets the "submission" edge to the QuizSubmission entity.
func (_c *QuizResponseCreate) SetSubmission(v *QuizSubmission) *QuizResponseCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the QuizResponseMutation object of the builder.
func (_c *QuizResponseCreate) Mutation() *QuizResponseMutation {
	return _c.mutation
}

// Save creates the QuizResponse in the database.
func (_c *QuizResponseCreate) Save(ctx context.Context) (*QuizResponse, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResponseCreate) SaveX(ctx context.Context) *QuizResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResponseCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuizResponse.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := quizresponse.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "QuizResponse.response"`)}
	}
	if v, ok := _c.mutation.Response(); ok {
		if err := quizresponse.ResponseValidator(v); err != nil {
			return &ValidationError{Name: "response", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.response": %w`, err)}
		}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "QuizResponse.submission"`)}
	}
	return nil
}

func (_c *QuizResponseCreate) sqlSave(ctx context.Context) (*QuizResponse, error) {
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

func (_c *QuizResponseCreate) createSpec() (*QuizResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresponse.Table, sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(quizresponse.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(quizresponse.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizresponse.SubmissionTable,
			Columns: []string{quizresponse.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizsubmission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.quiz_submission_responses = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizResponseCreateBulk is the builder for creating many QuizResponse entities in bulk.
type QuizResponseCreateBulk struct {
	config
	err      error
	builders []*QuizResponseCreate
}

// Save creates the QuizResponse entities in the database.
func (_c *QuizResponseCreateBulk) Save(ctx context.Context) ([]*QuizResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResponseMutation)
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
func (_c *QuizResponseCreateBulk) SaveX(ctx context.Context) []*QuizResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
