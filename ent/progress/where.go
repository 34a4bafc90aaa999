// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldProfile, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPoints, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreak, v))
}

// DaysStrong applies equality check predicate on the "days_strong" field. It's identical to DaysStrongEQ.
func DaysStrong(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldDaysStrong, v))
}

// IsPremium applies equality check predicate on the "is_premium" field. It's identical to IsPremiumEQ.
func IsPremium(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldIsPremium, v))
}

// LastActive applies equality check predicate on the "last_active" field. It's identical to LastActiveEQ.
func LastActive(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastActive, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldProfile, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldPoints, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStreak, v))
}

// DaysStrongEQ applies the EQ predicate on the "days_strong" field.
func DaysStrongEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldDaysStrong, v))
}

// DaysStrongNEQ applies the NEQ predicate on the "days_strong" field.
func DaysStrongNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldDaysStrong, v))
}

// DaysStrongIn applies the In predicate on the "days_strong" field.
func DaysStrongIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldDaysStrong, vs...))
}

// DaysStrongNotIn applies the NotIn predicate on the "days_strong" field.
func DaysStrongNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldDaysStrong, vs...))
}

// DaysStrongGT applies the GT predicate on the "days_strong" field.
func DaysStrongGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldDaysStrong, v))
}

// DaysStrongGTE applies the GTE predicate on the "days_strong" field.
func DaysStrongGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldDaysStrong, v))
}

// DaysStrongLT applies the LT predicate on the "days_strong" field.
func DaysStrongLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldDaysStrong, v))
}

// DaysStrongLTE applies the LTE predicate on the "days_strong" field.
func DaysStrongLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldDaysStrong, v))
}

// IsPremiumEQ applies the EQ predicate on the "is_premium" field.
func IsPremiumEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldIsPremium, v))
}

// IsPremiumNEQ applies the NEQ predicate on the "is_premium" field.
func IsPremiumNEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldIsPremium, v))
}

// LastActiveEQ applies the EQ predicate on the "last_active" field.
func LastActiveEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastActive, v))
}

// LastActiveNEQ applies the NEQ predicate on the "last_active" field.
func LastActiveNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastActive, v))
}

// LastActiveIn applies the In predicate on the "last_active" field.
func LastActiveIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastActive, vs...))
}

// LastActiveNotIn applies the NotIn predicate on the "last_active" field.
func LastActiveNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastActive, vs...))
}

// LastActiveGT applies the GT predicate on the "last_active" field.
func LastActiveGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastActive, v))
}

// LastActiveGTE applies the GTE predicate on the "last_active" field.
func LastActiveGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastActive, v))
}

// LastActiveLT applies the LT predicate on the "last_active" field.
func LastActiveLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastActive, v))
}

// LastActiveLTE applies the LTE predicate on the "last_active" field.
func LastActiveLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastActive, v))
}

// LastActiveContains applies the Contains predicate on the "last_active" field.
func LastActiveContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldLastActive, v))
}

// LastActiveHasPrefix applies the HasPrefix predicate on the "last_active" field.
func LastActiveHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldLastActive, v))
}

// LastActiveHasSuffix applies the HasSuffix predicate on the "last_active" field.
func LastActiveHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldLastActive, v))
}

// LastActiveEqualFold applies the EqualFold predicate on the "last_active" field.
func LastActiveEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldLastActive, v))
}

// LastActiveContainsFold applies the ContainsFold predicate on the "last_active" field.
func LastActiveContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldLastActive, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
