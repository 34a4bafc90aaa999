// Code generated by ent, DO NOT EDIT.

package ghostsetting

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ghostsetting type in the database.
	Label = "ghost_setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldToggle holds the string denoting the toggle field in the database.
	FieldToggle = "toggle"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// Table holds the table name of the ghostsetting in the database.
	Table = "ghost_settings"
)

// Columns holds all SQL columns for ghostsetting fields.
var Columns = []string{
	FieldID,
	FieldProfile,
	FieldToggle,
	FieldEnabled,
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
	// ToggleValidator is a validator for the "toggle" field. It is called by the builders before save.
	ToggleValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
)

// OrderOption defines the ordering options for the GhostSetting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfile orders the results by the profile field.
func ByProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfile, opts...).ToFunc()
}

// ByToggle orders the results by the toggle field.
func ByToggle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToggle, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}
