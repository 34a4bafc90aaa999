// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/ghostsetting"
)

// GhostSetting is the model entity for the GhostSetting schema.
type GhostSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Profile holds the value of the "profile" field.
	Profile string `json:"profile,omitempty"`
	// Toggle holds the value of the "toggle" field.
	Toggle string `json:"toggle,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled      bool `json:"enabled,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GhostSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ghostsetting.FieldEnabled:
			values[i] = new(sql.NullBool)
		case ghostsetting.FieldID:
			values[i] = new(sql.NullInt64)
		case ghostsetting.FieldProfile, ghostsetting.FieldToggle:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GhostSetting fields.
func (_m *GhostSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ghostsetting.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ghostsetting.FieldProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value.Valid {
				_m.Profile = value.String
			}
		case ghostsetting.FieldToggle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field toggle", values[i])
			} else if value.Valid {
				_m.Toggle = value.String
			}
		case ghostsetting.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GhostSetting.
// This includes values selected through modifiers, order, etc.
func (_m *GhostSetting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GhostSetting.
// Note that you need to call GhostSetting.Unwrap() before calling this method if this GhostSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GhostSetting) Update() *GhostSettingUpdateOne {
	return NewGhostSettingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GhostSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GhostSetting) Unwrap() *GhostSetting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GhostSetting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GhostSetting) String() string {
	var builder strings.Builder
	builder.WriteString("GhostSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile=")
	builder.WriteString(_m.Profile)
	builder.WriteString(", ")
	builder.WriteString("toggle=")
	builder.WriteString(_m.Toggle)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteByte(')')
	return builder.String()
}

// GhostSettings is a parsable slice of GhostSetting.
type GhostSettings []*GhostSetting
