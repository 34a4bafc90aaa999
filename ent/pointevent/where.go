// Code generated by ent, DO NOT EDIT.

package pointevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldProfile, v))
}

// Award applies equality check predicate on the "award" field. It's identical to AwardEQ.
func Award(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldAward, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldPoints, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldContainsFold(FieldProfile, v))
}

// AwardEQ applies the EQ predicate on the "award" field.
func AwardEQ(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldAward, v))
}

// AwardNEQ applies the NEQ predicate on the "award" field.
func AwardNEQ(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNEQ(FieldAward, v))
}

// AwardIn applies the In predicate on the "award" field.
func AwardIn(vs ...string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldIn(FieldAward, vs...))
}

// AwardNotIn applies the NotIn predicate on the "award" field.
func AwardNotIn(vs ...string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNotIn(FieldAward, vs...))
}

// AwardGT applies the GT predicate on the "award" field.
func AwardGT(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGT(FieldAward, v))
}

// AwardGTE applies the GTE predicate on the "award" field.
func AwardGTE(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGTE(FieldAward, v))
}

// AwardLT applies the LT predicate on the "award" field.
func AwardLT(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLT(FieldAward, v))
}

// AwardLTE applies the LTE predicate on the "award" field.
func AwardLTE(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLTE(FieldAward, v))
}

// AwardContains applies the Contains predicate on the "award" field.
func AwardContains(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldContains(FieldAward, v))
}

// AwardHasPrefix applies the HasPrefix predicate on the "award" field.
func AwardHasPrefix(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldHasPrefix(FieldAward, v))
}

// AwardHasSuffix applies the HasSuffix predicate on the "award" field.
func AwardHasSuffix(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldHasSuffix(FieldAward, v))
}

// AwardEqualFold applies the EqualFold predicate on the "award" field.
func AwardEqualFold(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEqualFold(FieldAward, v))
}

// AwardContainsFold applies the ContainsFold predicate on the "award" field.
func AwardContainsFold(v string) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldContainsFold(FieldAward, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.PointEvent {
	return predicate.PointEvent(sql.FieldLTE(FieldPoints, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PointEvent) predicate.PointEvent {
	return predicate.PointEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PointEvent) predicate.PointEvent {
	return predicate.PointEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PointEvent) predicate.PointEvent {
	return predicate.PointEvent(sql.NotPredicates(p))
}
