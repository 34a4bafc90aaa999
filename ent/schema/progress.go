package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Progress is the current progression state of one profile.
type Progress struct {
	ent.Schema
}

func (Progress) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "progress"},
	}
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile").
			NotEmpty().
			Unique(),
		field.Int("points").
			NonNegative().
			Default(0),
		field.Int("streak").
			NonNegative().
			Default(0),
		field.Int("days_strong").
			NonNegative().
			Default(0),
		field.Bool("is_premium").
			Default(false),
		field.String("last_active").
			Default("").
			Comment("Calendar day of the last activity, empty before the first"),
		field.Time("updated_at").
			Default(time.Now),
	}
}
