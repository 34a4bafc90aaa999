// Code generated by ent, DO NOT EDIT.

package quizresponse

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the quizresponse type in the database.
	Label = "quiz_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// EdgeSubmission holds the string denoting the submission edge name in mutations.
	EdgeSubmission = "submission"
	// Table holds the table name of the quizresponse in the database.
	Table = "quiz_responses"
	// SubmissionTable is the table that holds the submission relation/edge.
	SubmissionTable = "quiz_responses"
	// SubmissionInverseTable is the table name for the QuizSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "quizsubmission" package.
	SubmissionInverseTable = "quiz_submissions"
	// SubmissionColumn is the table column denoting the submission relation/edge.
	SubmissionColumn = "quiz_submission_responses"
)

// Columns holds all SQL columns for quizresponse fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldResponse,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "quiz_responses"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"quiz_submission_responses",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(int) error
	// ResponseValidator is a validator for the "response" field. It is called by the builders before save.
	ResponseValidator func(string) error
)

// OrderOption defines the ordering options for the QuizResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// BySubmissionField orders the results by submission field.
func BySubmissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubmissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
	)
}
