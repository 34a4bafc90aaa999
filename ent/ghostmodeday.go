// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/ghostmodeday"
)

// GhostModeDay is the model entity for the GhostModeDay schema.
type GhostModeDay struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Profile holds the value of the "profile" field.
	Profile string `json:"profile,omitempty"`
	// Calendar day as YYYY-MM-DD
	Day          string `json:"day,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GhostModeDay) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ghostmodeday.FieldID:
			values[i] = new(sql.NullInt64)
		case ghostmodeday.FieldProfile, ghostmodeday.FieldDay:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GhostModeDay fields.
func (_m *GhostModeDay) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ghostmodeday.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ghostmodeday.FieldProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value.Valid {
				_m.Profile = value.String
			}
		case ghostmodeday.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GhostModeDay.
// This includes values selected through modifiers, order, etc.
func (_m *GhostModeDay) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GhostModeDay.
// Note that you need to call GhostModeDay.Unwrap() before calling this method if this GhostModeDay
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GhostModeDay) Update() *GhostModeDayUpdateOne {
	return NewGhostModeDayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GhostModeDay entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GhostModeDay) Unwrap() *GhostModeDay {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GhostModeDay is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GhostModeDay) String() string {
	var builder strings.Builder
	builder.WriteString("GhostModeDay(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile=")
	builder.WriteString(_m.Profile)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteByte(')')
	return builder.String()
}

// GhostModeDays is a parsable slice of GhostModeDay.
type GhostModeDays []*GhostModeDay
