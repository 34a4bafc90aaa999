// Code generated by ent, DO NOT EDIT.

package socialplatform

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLTE(FieldID, id))
}

// Profile applies equality check predicate on the "profile" field. It's identical to ProfileEQ.
func Profile(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldProfile, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldName, v))
}

// Connected applies equality check predicate on the "connected" field. It's identical to ConnectedEQ.
func Connected(v bool) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldConnected, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldUsername, v))
}

// ConnectedAt applies equality check predicate on the "connected_at" field. It's identical to ConnectedAtEQ.
func ConnectedAt(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldConnectedAt, v))
}

// ProfileEQ applies the EQ predicate on the "profile" field.
func ProfileEQ(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldProfile, v))
}

// ProfileNEQ applies the NEQ predicate on the "profile" field.
func ProfileNEQ(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNEQ(FieldProfile, v))
}

// ProfileIn applies the In predicate on the "profile" field.
func ProfileIn(vs ...string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldIn(FieldProfile, vs...))
}

// ProfileNotIn applies the NotIn predicate on the "profile" field.
func ProfileNotIn(vs ...string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNotIn(FieldProfile, vs...))
}

// ProfileGT applies the GT predicate on the "profile" field.
func ProfileGT(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGT(FieldProfile, v))
}

// ProfileGTE applies the GTE predicate on the "profile" field.
func ProfileGTE(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGTE(FieldProfile, v))
}

// ProfileLT applies the LT predicate on the "profile" field.
func ProfileLT(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLT(FieldProfile, v))
}

// ProfileLTE applies the LTE predicate on the "profile" field.
func ProfileLTE(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLTE(FieldProfile, v))
}

// ProfileContains applies the Contains predicate on the "profile" field.
func ProfileContains(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldContains(FieldProfile, v))
}

// ProfileHasPrefix applies the HasPrefix predicate on the "profile" field.
func ProfileHasPrefix(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldHasPrefix(FieldProfile, v))
}

// ProfileHasSuffix applies the HasSuffix predicate on the "profile" field.
func ProfileHasSuffix(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldHasSuffix(FieldProfile, v))
}

// ProfileEqualFold applies the EqualFold predicate on the "profile" field.
func ProfileEqualFold(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEqualFold(FieldProfile, v))
}

// ProfileContainsFold applies the ContainsFold predicate on the "profile" field.
func ProfileContainsFold(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldContainsFold(FieldProfile, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldContainsFold(FieldName, v))
}

// ConnectedEQ applies the EQ predicate on the "connected" field.
func ConnectedEQ(v bool) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldConnected, v))
}

// ConnectedNEQ applies the NEQ predicate on the "connected" field.
func ConnectedNEQ(v bool) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNEQ(FieldConnected, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldContainsFold(FieldUsername, v))
}

// ConnectedAtEQ applies the EQ predicate on the "connected_at" field.
func ConnectedAtEQ(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldEQ(FieldConnectedAt, v))
}

// ConnectedAtNEQ applies the NEQ predicate on the "connected_at" field.
func ConnectedAtNEQ(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNEQ(FieldConnectedAt, v))
}

// ConnectedAtIn applies the In predicate on the "connected_at" field.
func ConnectedAtIn(vs ...time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldIn(FieldConnectedAt, vs...))
}

// ConnectedAtNotIn applies the NotIn predicate on the "connected_at" field.
func ConnectedAtNotIn(vs ...time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNotIn(FieldConnectedAt, vs...))
}

// ConnectedAtGT applies the GT predicate on the "connected_at" field.
func ConnectedAtGT(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGT(FieldConnectedAt, v))
}

// ConnectedAtGTE applies the GTE predicate on the "connected_at" field.
func ConnectedAtGTE(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldGTE(FieldConnectedAt, v))
}

// ConnectedAtLT applies the LT predicate on the "connected_at" field.
func ConnectedAtLT(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLT(FieldConnectedAt, v))
}

// ConnectedAtLTE applies the LTE predicate on the "connected_at" field.
func ConnectedAtLTE(v time.Time) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldLTE(FieldConnectedAt, v))
}

// ConnectedAtIsNil applies the IsNil predicate on the "connected_at" field.
func ConnectedAtIsNil() predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldIsNull(FieldConnectedAt))
}

// ConnectedAtNotNil applies the NotNil predicate on the "connected_at" field.
func ConnectedAtNotNil() predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.FieldNotNull(FieldConnectedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SocialPlatform) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SocialPlatform) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SocialPlatform) predicate.SocialPlatform {
	return predicate.SocialPlatform(sql.NotPredicates(p))
}
