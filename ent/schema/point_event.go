package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointEvent records one points award.
type PointEvent struct {
	ent.Schema
}

func (PointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile").NotEmpty(),
		field.String("award").NotEmpty(),
		field.Int("points"),
	}
}

func (PointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile", "sequence"),
	}
}
