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
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/google/uuid"
)

// QuizResponseUpdate is the builder for updating QuizResponse entities.
type QuizResponseUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResponseMutation
}

// Where appends a list predicates to the QuizResponseUpdate builder.
func (_u *QuizResponseUpdate) Where(ps ...predicate.QuizResponse) *QuizResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuizResponseUpdate) SetQuestionID(v int) *QuizResponseUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableQuestionID(v *int) *QuizResponseUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *QuizResponseUpdate) AddQuestionID(v int) *QuizResponseUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetResponse sets the "response" field.
func (_u *QuizResponseUpdate) SetResponse(v string) *QuizResponseUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableResponse(v *string) *QuizResponseUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission" edge to the QuizSubmission entity by ID.
func (_u *QuizResponseUpdate) SetSubmissionID(id uuid.UUID) *QuizResponseUpdate {
	_u.mutation.SetSubmissionID(id)
	return _u
}

// SetSubmission sets the "submission" edge to the QuizSubmission entity.
func (_u *QuizResponseUpdate) SetSubmission(v *QuizSubmission) *QuizResponseUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the QuizResponseMutation object of the builder.
func (_u *QuizResponseUpdate) Mutation() *QuizResponseMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the QuizSubmission entity.
func (_u *QuizResponseUpdate) ClearSubmission() *QuizResponseUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResponseUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := quizresponse.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Response(); ok {
		if err := quizresponse.ResponseValidator(v); err != nil {
			return &ValidationError{Name: "response", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.response": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizResponse.submission"`)
	}
	return nil
}

func (_u *QuizResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresponse.Table, quizresponse.Columns, sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(quizresponse.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(quizresponse.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(quizresponse.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.SubmissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResponseUpdateOne is the builder for updating a single QuizResponse entity.
type QuizResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResponseMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *QuizResponseUpdateOne) SetQuestionID(v int) *QuizResponseUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableQuestionID(v *int) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *QuizResponseUpdateOne) AddQuestionID(v int) *QuizResponseUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetResponse sets the "response" field.
func (_u *QuizResponseUpdateOne) SetResponse(v string) *QuizResponseUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableResponse(v *string) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission" edge to the QuizSubmission entity by ID.
func (_u *QuizResponseUpdateOne) SetSubmissionID(id uuid.UUID) *QuizResponseUpdateOne {
	_u.mutation.SetSubmissionID(id)
	return _u
}

// SetSubmission sets the "submission" edge to the QuizSubmission entity.
func (_u *QuizResponseUpdateOne) SetSubmission(v *QuizSubmission) *QuizResponseUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the QuizResponseMutation object of the builder.
func (_u *QuizResponseUpdateOne) Mutation() *QuizResponseMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the QuizSubmission entity.
func (_u *QuizResponseUpdateOne) ClearSubmission() *QuizResponseUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the QuizResponseUpdate builder.
func (_u *QuizResponseUpdateOne) Where(ps ...predicate.QuizResponse) *QuizResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResponseUpdateOne) Select(field string, fields ...string) *QuizResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResponse entity.
func (_u *QuizResponseUpdateOne) Save(ctx context.Context) (*QuizResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResponseUpdateOne) SaveX(ctx context.Context) *QuizResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResponseUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := quizresponse.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Response(); ok {
		if err := quizresponse.ResponseValidator(v); err != nil {
			return &ValidationError{Name: "response", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.response": %w`, err)}
		}
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizResponse.submission"`)
	}
	return nil
}

func (_u *QuizResponseUpdateOne) sqlSave(ctx context.Context) (_node *QuizResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresponse.Table, quizresponse.Columns, sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresponse.FieldID)
		for _, f := range fields {
			if !quizresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresponse.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(quizresponse.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(quizresponse.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(quizresponse.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.SubmissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
