// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/google/uuid"
)

// QuizResponse is the model entity for the QuizResponse schema.
type QuizResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// Response holds the value of the "response" field.
	Response string `json:"response,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizResponseQuery when eager-loading is set.
	Edges                     QuizResponseEdges `json:"edges"`
	quiz_submission_responses *uuid.UUID
	selectValues              sql.SelectValues
}

// QuizResponseEdges holds the relations/edges for other nodes in the graph.
type QuizResponseEdges struct {
	// Submission holds the value of the submission edge.
	Submission *QuizSubmission `json:"submission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizResponseEdges) SubmissionOrErr() (*QuizSubmission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quizsubmission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresponse.FieldID, quizresponse.FieldQuestionID:
			values[i] = new(sql.NullInt64)
		case quizresponse.FieldResponse:
			values[i] = new(sql.NullString)
		case quizresponse.ForeignKeys[0]: // quiz_submission_responses
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResponse fields.
func (_m *QuizResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresponse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizresponse.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = int(value.Int64)
			}
		case quizresponse.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case quizresponse.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_submission_responses", values[i])
			} else if value.Valid {
				_m.quiz_submission_responses = new(uuid.UUID)
				*_m.quiz_submission_responses = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResponse.
// This includes values selected through modifiers, order, etc.
func (_m *QuizResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the QuizResponse entity.
func (_m *QuizResponse) QuerySubmission() *QuizSubmissionQuery {
	return NewQuizResponseClient(_m.config).QuerySubmission(_m)
}

// Update returns a builder for updating this QuizResponse.
// Note that you need to call QuizResponse.Unwrap() before calling this method if this QuizResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizResponse) Update() *QuizResponseUpdateOne {
	return NewQuizResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizResponse) Unwrap() *QuizResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizResponse) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteByte(')')
	return builder.String()
}

// QuizResponses is a parsable slice of QuizResponse.
type QuizResponses []*QuizResponse
