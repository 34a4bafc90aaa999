// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/socialplatform"
)

// SocialPlatform is the model entity for the SocialPlatform schema.
type SocialPlatform struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Profile holds the value of the "profile" field.
	Profile string `json:"profile,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Connected holds the value of the "connected" field.
	Connected bool `json:"connected,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Unset until the first connect
	ConnectedAt  time.Time `json:"connected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SocialPlatform) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case socialplatform.FieldConnected:
			values[i] = new(sql.NullBool)
		case socialplatform.FieldID:
			values[i] = new(sql.NullInt64)
		case socialplatform.FieldProfile, socialplatform.FieldName, socialplatform.FieldUsername:
			values[i] = new(sql.NullString)
		case socialplatform.FieldConnectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SocialPlatform fields.
func (_m *SocialPlatform) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case socialplatform.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case socialplatform.FieldProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile", values[i])
			} else if value.Valid {
				_m.Profile = value.String
			}
		case socialplatform.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case socialplatform.FieldConnected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field connected", values[i])
			} else if value.Valid {
				_m.Connected = value.Bool
			}
		case socialplatform.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case socialplatform.FieldConnectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field connected_at", values[i])
			} else if value.Valid {
				_m.ConnectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SocialPlatform.
// This includes values selected through modifiers, order, etc.
func (_m *SocialPlatform) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SocialPlatform.
// Note that you need to call SocialPlatform.Unwrap() before calling this method if this SocialPlatform
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SocialPlatform) Update() *SocialPlatformUpdateOne {
	return NewSocialPlatformClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SocialPlatform entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SocialPlatform) Unwrap() *SocialPlatform {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SocialPlatform is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SocialPlatform) String() string {
	var builder strings.Builder
	builder.WriteString("SocialPlatform(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile=")
	builder.WriteString(_m.Profile)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("connected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Connected))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("connected_at=")
	builder.WriteString(_m.ConnectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SocialPlatforms is a parsable slice of SocialPlatform.
type SocialPlatforms []*SocialPlatform
