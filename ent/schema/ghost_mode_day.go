package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GhostModeDay marks a calendar day on which ghost mode was on.
type GhostModeDay struct {
	ent.Schema
}

func (GhostModeDay) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile").NotEmpty(),
		field.String("day").
			NotEmpty().
			Comment("Calendar day as YYYY-MM-DD"),
	}
}

func (GhostModeDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile", "day").Unique(),
	}
}
