// Code generated by ent, DO NOT EDIT.

package rewardclaim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLTE(FieldID, id))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldProfile, v))
}

// RewardID applies equality check predicate on the "reward_id" field. It's identical to RewardIDEQ.
func RewardID(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldRewardID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldClaimedAt, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldContainsFold(FieldProfile, v))
}

// RewardIDEQ applies the EQ predicate on the "reward_id" field.
func RewardIDEQ(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldRewardID, v))
}

// RewardIDNEQ applies the NEQ predicate on the "reward_id" field.
func RewardIDNEQ(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNEQ(FieldRewardID, v))
}

// RewardIDIn applies the In predicate on the "reward_id" field.
func RewardIDIn(vs ...int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldIn(FieldRewardID, vs...))
}

// RewardIDNotIn applies the NotIn predicate on the "reward_id" field.
func RewardIDNotIn(vs ...int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNotIn(FieldRewardID, vs...))
}

// RewardIDGT applies the GT predicate on the "reward_id" field.
func RewardIDGT(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGT(FieldRewardID, v))
}

// RewardIDGTE applies the GTE predicate on the "reward_id" field.
func RewardIDGTE(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGTE(FieldRewardID, v))
}

// RewardIDLT applies the LT predicate on the "reward_id" field.
func RewardIDLT(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLT(FieldRewardID, v))
}

// RewardIDLTE applies the LTE predicate on the "reward_id" field.
func RewardIDLTE(v int) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLTE(FieldRewardID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.RewardClaim {
	return predicate.RewardClaim(sql.FieldLTE(FieldClaimedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RewardClaim) predicate.RewardClaim {
	return predicate.RewardClaim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RewardClaim) predicate.RewardClaim {
	return predicate.RewardClaim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RewardClaim) predicate.RewardClaim {
	return predicate.RewardClaim(sql.NotPredicates(p))
}
