// Code generated by ent, DO NOT EDIT.

package rewardclaim

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rewardclaim type in the database.
	Label = "reward_claim"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldRewardID holds the string denoting the reward_id field in the database.
	FieldRewardID = "reward_id"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// Table holds the table name of the rewardclaim in the database.
	Table = "reward_claims"
)

// Columns holds all SQL columns for rewardclaim fields.
var Columns = []string{
	FieldID,
	FieldProfile,
	FieldRewardID,
	FieldClaimedAt,
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
	// RewardIDValidator is a validator for the "reward_id" field. It is called by the builders before save.
	RewardIDValidator func(int) error
	// DefaultClaimedAt holds the default value on creation for the "claimed_at" field.
	DefaultClaimedAt func() time.Time
)

// OrderOption defines the ordering options for the RewardClaim queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfile orders the results by the profile field.
func ByProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfile, opts...).ToFunc()
}

// ByRewardID orders the results by the reward_id field.
func ByRewardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewardID, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}
