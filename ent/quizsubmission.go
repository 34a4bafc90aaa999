// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/google/uuid"
)

// QuizSubmission is the model entity for the QuizSubmission schema.
type QuizSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Profile holds the value of the "profile" field.
	Profile string `json:"profile,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizSubmissionQuery when eager-loading is set.
	Edges        QuizSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizSubmissionEdges holds the relations/edges for other nodes in the graph.
type QuizSubmissionEdges struct {
	// Responses holds the value of the responses edge.
	Responses []*QuizResponse `json:"responses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e QuizSubmissionEdges) ResponsesOrErr() ([]*QuizResponse, error) {
	if e.loadedTypes[0] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizsubmission.FieldSequence:
			values[i] = new(sql.NullInt64)
		case quizsubmission.FieldProfile, quizsubmission.FieldMethod:
			values[i] = new(sql.NullString)
		case quizsubmission.FieldTimestamp:
			values[i] = new(sql.NullTime)
		case quizsubmission.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizSubmission fields.
func (_m *QuizSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizsubmission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quizsubmission.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizsubmission.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizsubmission.FieldProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value.Valid {
				_m.Profile = value.String
			}
		case quizsubmission.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *QuizSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResponses queries the "responses" edge of the QuizSubmission entity.
func (_m *QuizSubmission) QueryResponses() *QuizResponseQuery {
	return NewQuizSubmissionClient(_m.config).QueryResponses(_m)
}

// Update returns a builder for updating this QuizSubmission.
// Note that you need to call QuizSubmission.Unwrap() before calling this method if this QuizSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizSubmission) Update() *QuizSubmissionUpdateOne {
	return NewQuizSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizSubmission) Unwrap() *QuizSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("QuizSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile=")
	builder.WriteString(_m.Profile)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteByte(')')
	return builder.String()
}

// QuizSubmissions is a parsable slice of QuizSubmission.
type QuizSubmissions []*QuizSubmission
