// Code generated by ent, DO NOT EDIT.

package ghostsetting

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldLTE(FieldID, id))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldProfile, v))
}

// Toggle applies equality check predicate on the "toggle" field. It's identical to ToggleEQ.
func Toggle(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldToggle, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldEnabled, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldContainsFold(FieldProfile, v))
}

// ToggleEQ applies the EQ predicate on the "toggle" field.
func ToggleEQ(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldToggle, v))
}

// ToggleNEQ applies the NEQ predicate on the "toggle" field.
func ToggleNEQ(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNEQ(FieldToggle, v))
}

// ToggleIn applies the In predicate on the "toggle" field.
func ToggleIn(vs ...string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldIn(FieldToggle, vs...))
}

// ToggleNotIn applies the NotIn predicate on the "toggle" field.
func ToggleNotIn(vs ...string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNotIn(FieldToggle, vs...))
}

// ToggleGT applies the GT predicate on the "toggle" field.
func ToggleGT(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldGT(FieldToggle, v))
}

// ToggleGTE applies the GTE predicate on the "toggle" field.
func ToggleGTE(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldGTE(FieldToggle, v))
}

// ToggleLT applies the LT predicate on the "toggle" field.
func ToggleLT(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldLT(FieldToggle, v))
}

// ToggleLTE applies the LTE predicate on the "toggle" field.
func ToggleLTE(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldLTE(FieldToggle, v))
}

// ToggleContains applies the Contains predicate on the "toggle" field.
func ToggleContains(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldContains(FieldToggle, v))
}

// ToggleHasPrefix applies the HasPrefix predicate on the "toggle" field.
func ToggleHasPrefix(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldHasPrefix(FieldToggle, v))
}

// ToggleHasSuffix applies the HasSuffix predicate on the "toggle" field.
func ToggleHasSuffix(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldHasSuffix(FieldToggle, v))
}

// ToggleEqualFold applies the EqualFold predicate on the "toggle" field.
func ToggleEqualFold(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEqualFold(FieldToggle, v))
}

// ToggleContainsFold applies the ContainsFold predicate on the "toggle" field.
func ToggleContainsFold(v string) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldContainsFold(FieldToggle, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.GhostSetting {
	return predicate.GhostSetting(sql.FieldNEQ(FieldEnabled, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GhostSetting) predicate.GhostSetting {
	return predicate.GhostSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GhostSetting) predicate.GhostSetting {
	return predicate.GhostSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GhostSetting) predicate.GhostSetting {
	return predicate.GhostSetting(sql.NotPredicates(p))
}
