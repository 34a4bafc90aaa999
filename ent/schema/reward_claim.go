package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardClaim records a claimed reward. A reward can be claimed once
// per profile.
type RewardClaim struct {
	ent.Schema
}

func (RewardClaim) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile").NotEmpty(),
		field.Int("reward_id").Positive(),
		field.Time("claimed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (RewardClaim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile", "reward_id").Unique(),
	}
}
