// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/rewardclaim"
)

// RewardClaim is the model entity for the RewardClaim schema.
type RewardClaim struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Profile holds the value of the "profile" field.
	Profile string `json:"profile,omitempty"`
	// RewardID holds the value of the "reward_id" field.
	RewardID int `json:"reward_id,omitempty"`
	// ClaimedAt holds the value of the "claimed_at" field.
	ClaimedAt    time.Time `json:"claimed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RewardClaim) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rewardclaim.FieldID, rewardclaim.FieldRewardID:
			values[i] = new(sql.NullInt64)
		case rewardclaim.FieldProfile:
			values[i] = new(sql.NullString)
		case rewardclaim.FieldClaimedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RewardClaim fields.
func (_m *RewardClaim) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rewardclaim.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rewardclaim.FieldProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value.Valid {
				_m.Profile = value.String
			}
		case rewardclaim.FieldRewardID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reward_id", values[i])
			} else if value.Valid {
				_m.RewardID = int(value.Int64)
			}
		case rewardclaim.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RewardClaim.
// This includes values selected through modifiers, order, etc.
func (_m *RewardClaim) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RewardClaim.
// Note that you need to call RewardClaim.Unwrap() before calling this method if this RewardClaim
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RewardClaim) Update() *RewardClaimUpdateOne {
	return NewRewardClaimClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RewardClaim entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RewardClaim) Unwrap() *RewardClaim {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RewardClaim is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RewardClaim) String() string {
	var builder strings.Builder
	builder.WriteString("RewardClaim(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile=")
	builder.WriteString(_m.Profile)
	builder.WriteString(", ")
	builder.WriteString("reward_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RewardID))
	builder.WriteString(", ")
	builder.WriteString("claimed_at=")
	builder.WriteString(_m.ClaimedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RewardClaims is a parsable slice of RewardClaim.
type RewardClaims []*RewardClaim
