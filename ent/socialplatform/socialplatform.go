// Code generated by ent, DO NOT EDIT.

package socialplatform

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the socialplatform type in the database.
	Label = "social_platform"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldConnected holds the string denoting the connected field in the database.
	FieldConnected = "connected"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldConnectedAt holds the string denoting the connected_at field in the database.
	FieldConnectedAt = "connected_at"
	// Table holds the table name of the socialplatform in the database.
	Table = "social_platforms"
)

// Columns holds all SQL columns for socialplatform fields.
var Columns = []string{
	FieldID,
	FieldProfile,
	FieldName,
	FieldConnected,
	FieldUsername,
	FieldConnectedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultConnected holds the default value on creation for the "connected" field.
	DefaultConnected bool
	// DefaultUsername holds the default value on creation for the "username" field.
	DefaultUsername string
)

// OrderOption defines the ordering options for the SocialPlatform queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfile orders the results by the profile field.
func ByProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfile, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByConnected orders the results by the connected field.
func ByConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnected, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByConnectedAt orders the results by the connected_at field.
func ByConnectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectedAt, opts...).ToFunc()
}
