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
)

// QuizSubmissionUpdate is the builder for updating QuizSubmission entities.
type QuizSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSubmissionMutation
}

// Where appends a list predicates to the QuizSubmissionUpdate builder.
func (_u *QuizSubmissionUpdate) Where(ps ...predicate.QuizSubmission) *QuizSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfile sets the "profile" field.
func (_u *QuizSubmissionUpdate) SetProfile(v string) *QuizSubmissionUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *QuizSubmissionUpdate) SetNillableProfile(v *string) *QuizSubmissionUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *QuizSubmissionUpdate) SetMethod(v string) *QuizSubmissionUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *QuizSubmissionUpdate) SetNillableMethod(v *string) *QuizSubmissionUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// AddResponseIDs adds the "responses" edge to the QuizResponse entity by IDs.
func (_u *QuizSubmissionUpdate) AddResponseIDs(ids ...int) *QuizSubmissionUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the QuizResponse entity.
func (_u *QuizSubmissionUpdate) AddResponses(v ...*QuizResponse) *QuizSubmissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the QuizSubmissionMutation object of the builder.
func (_u *QuizSubmissionUpdate) Mutation() *QuizSubmissionMutation {
	return _u.mutation
}

// ClearResponses clears all "responses" edges to the QuizResponse entity.
func (_u *QuizSubmissionUpdate) ClearResponses() *QuizSubmissionUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to QuizResponse entities by IDs.
func (_u *QuizSubmissionUpdate) RemoveResponseIDs(ids ...int) *QuizSubmissionUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to QuizResponse entities.
func (_u *QuizSubmissionUpdate) RemoveResponses(v ...*QuizResponse) *QuizSubmissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSubmissionUpdate) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := quizsubmission.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "QuizSubmission.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := quizsubmission.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "QuizSubmission.method": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsubmission.Table, quizsubmission.Columns, sqlgraph.NewFieldSpec(quizsubmission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(quizsubmission.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(quizsubmission.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSubmissionUpdateOne is the builder for updating a single QuizSubmission entity.
type QuizSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSubmissionMutation
}

// SetProfile sets the "profile" field.
func (_u *QuizSubmissionUpdateOne) SetProfile(v string) *QuizSubmissionUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *QuizSubmissionUpdateOne) SetNillableProfile(v *string) *QuizSubmissionUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *QuizSubmissionUpdateOne) SetMethod(v string) *QuizSubmissionUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *QuizSubmissionUpdateOne) SetNillableMethod(v *string) *QuizSubmissionUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// AddResponseIDs adds the "responses" edge to the QuizResponse entity by IDs.
func (_u *QuizSubmissionUpdateOne) AddResponseIDs(ids ...int) *QuizSubmissionUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the QuizResponse entity.
func (_u *QuizSubmissionUpdateOne) AddResponses(v ...*QuizResponse) *QuizSubmissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the QuizSubmissionMutation object of the builder.
func (_u *QuizSubmissionUpdateOne) Mutation() *QuizSubmissionMutation {
	return _u.mutation
}

// ClearResponses clears all "responses" edges to the QuizResponse entity.
func (_u *QuizSubmissionUpdateOne) ClearResponses() *QuizSubmissionUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to QuizResponse entities by IDs.
func (_u *QuizSubmissionUpdateOne) RemoveResponseIDs(ids ...int) *QuizSubmissionUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to QuizResponse entities.
func (_u *QuizSubmissionUpdateOne) RemoveResponses(v ...*QuizResponse) *QuizSubmissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Where appends a list predicates to the QuizSubmissionUpdate builder.
func (_u *QuizSubmissionUpdateOne) Where(ps ...predicate.QuizSubmission) *QuizSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSubmissionUpdateOne) Select(field string, fields ...string) *QuizSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSubmission entity.
func (_u *QuizSubmissionUpdateOne) Save(ctx context.Context) (*QuizSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSubmissionUpdateOne) SaveX(ctx context.Context) *QuizSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Profile(); ok {
		if err := quizsubmission.ProfileValidator(v); err != nil {
			return &ValidationError{Name: "profile", err: fmt.Errorf(`ent: validator failed for field "QuizSubmission.profile": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := quizsubmission.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "QuizSubmission.method": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *QuizSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsubmission.Table, quizsubmission.Columns, sqlgraph.NewFieldSpec(quizsubmission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsubmission.FieldID)
		for _, f := range fields {
			if !quizsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsubmission.FieldID {
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
		_spec.SetField(quizsubmission.FieldProfile, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(quizsubmission.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
