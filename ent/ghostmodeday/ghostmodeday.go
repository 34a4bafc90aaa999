// Code generated by ent, DO NOT EDIT.

package ghostmodeday

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ghostmodeday type in the database.
	Label = "ghost_mode_day"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// Table holds the table name of the ghostmodeday in the database.
	Table = "ghost_mode_days"
)

// Columns holds all SQL columns for ghostmodeday fields.
var Columns = []string{
	FieldID,
	FieldProfile,
	FieldDay,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ProfileValidator is a validator for the "profile" field. It is called by the builders before save.
	ProfileValidator func(string) error
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
)

// OrderOption defines the ordering options for the GhostModeDay queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfile orders the results by the profile field.
func ByProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfile, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}
