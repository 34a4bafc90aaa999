package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// QuizSubmission records one completed quiz and the method it recommended.
type QuizSubmission struct {
	ent.Schema
}

func (QuizSubmission) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("profile").NotEmpty(),
		field.String("method").NotEmpty(),
	}
}

func (QuizSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("responses", QuizResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (QuizSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile", "sequence"),
	}
}
