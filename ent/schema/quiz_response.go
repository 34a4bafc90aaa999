package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResponse is the option picked for one question of a submission.
type QuizResponse struct {
	ent.Schema
}

func (QuizResponse) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id").Positive(),
		field.String("response").NotEmpty(),
	}
}

func (QuizResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("submission", QuizSubmission.Type).
			Ref("responses").
			Unique().
			Required(),
	}
}

func (QuizResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id").
			Edges("submission").
			Unique(),
	}
}
