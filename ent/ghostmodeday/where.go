// Code generated by ent, DO NOT EDIT.

package ghostmodeday

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldLTE(FieldID, id))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEQ(FieldProfile, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEQ(FieldDay, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldContainsFold(FieldProfile, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.FieldContainsFold(FieldDay, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GhostModeDay) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GhostModeDay) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GhostModeDay) predicate.GhostModeDay {
	return predicate.GhostModeDay(sql.NotPredicates(p))
}
