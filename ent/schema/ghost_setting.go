package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GhostSetting is one ghost mode toggle of a profile.
type GhostSetting struct {
	ent.Schema
}

func (GhostSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile").NotEmpty(),
		field.String("toggle").NotEmpty(),
		field.Bool("enabled").Default(false),
	}
}

func (GhostSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile", "toggle").Unique(),
	}
}
