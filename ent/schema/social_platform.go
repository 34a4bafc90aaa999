package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SocialPlatform is the connection state of one social platform.
type SocialPlatform struct {
	ent.Schema
}

func (SocialPlatform) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile").NotEmpty(),
		field.String("name").NotEmpty(),
		field.Bool("connected").Default(false),
		field.String("username").Default(""),
		field.Time("connected_at").
			Optional().
			Comment("Unset until the first connect"),
	}
}

func (SocialPlatform) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile", "name").Unique(),
	}
}
