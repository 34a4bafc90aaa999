// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crumble/ent/ghostmodeday"
	"github.com/abhisek/crumble/ent/ghostsetting"
	"github.com/abhisek/crumble/ent/pointevent"
	"github.com/abhisek/crumble/ent/predicate"
	"github.com/abhisek/crumble/ent/progress"
	"github.com/abhisek/crumble/ent/quizresponse"
	"github.com/abhisek/crumble/ent/quizsubmission"
	"github.com/abhisek/crumble/ent/rewardclaim"
	"github.com/abhisek/crumble/ent/socialplatform"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGhostModeDay   = "GhostModeDay"
	TypeGhostSetting   = "GhostSetting"
	TypePointEvent     = "PointEvent"
	TypeProgress       = "Progress"
	TypeQuizResponse   = "QuizResponse"
	TypeQuizSubmission = "QuizSubmission"
	TypeRewardClaim    = "RewardClaim"
	TypeSocialPlatform = "SocialPlatform"
)

// GhostModeDayMutation represents an operation that mutates the GhostModeDay nodes in the graph.
type GhostModeDayMutation struct {
	config
	op            Op
	typ           string
	id            *int
	profile       *string
	day           *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GhostModeDay, error)
	predicates    []predicate.GhostModeDay
}

var _ ent.Mutation = (*GhostModeDayMutation)(nil)

// ghostmodedayOption allows management of the mutation configuration using functional options.
type ghostmodedayOption func(*GhostModeDayMutation)

// newGhostModeDayMutation creates new mutation for the GhostModeDay entity.
func newGhostModeDayMutation(c config, op Op, opts ...ghostmodedayOption) *GhostModeDayMutation {
	m := &GhostModeDayMutation{
		config:        c,
		op:            op,
		typ:           TypeGhostModeDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGhostModeDayID sets the ID field of the mutation.
func withGhostModeDayID(id int) ghostmodedayOption {
	return func(m *GhostModeDayMutation) {
		var (
			err   error
			once  sync.Once
			value *GhostModeDay
		)
		m.oldValue = func(ctx context.Context) (*GhostModeDay, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GhostModeDay.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGhostModeDay sets the old GhostModeDay of the mutation.
func withGhostModeDay(node *GhostModeDay) ghostmodedayOption {
	return func(m *GhostModeDayMutation) {
		m.oldValue = func(context.Context) (*GhostModeDay, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GhostModeDayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GhostModeDayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GhostModeDayMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GhostModeDayMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GhostModeDay.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfile sets the "profile" field.
func (m *GhostModeDayMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *GhostModeDayMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the GhostModeDay entity.
// If the GhostModeDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostModeDayMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *GhostModeDayMutation) ResetProfile() {
	m.profile = nil
}

// SetDay sets the "day" field.
func (m *GhostModeDayMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *GhostModeDayMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the GhostModeDay entity.
// If the GhostModeDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostModeDayMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *GhostModeDayMutation) ResetDay() {
	m.day = nil
}

// Where appends a list predicates to the GhostModeDayMutation builder.
func (m *GhostModeDayMutation) Where(ps ...predicate.GhostModeDay) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GhostModeDayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GhostModeDayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GhostModeDay, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GhostModeDayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GhostModeDayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GhostModeDay).
func (m *GhostModeDayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GhostModeDayMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.profile != nil {
		fields = append(fields, ghostmodeday.FieldProfile)
	}
	if m.day != nil {
		fields = append(fields, ghostmodeday.FieldDay)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GhostModeDayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ghostmodeday.FieldProfile:
		return m.Profile()
	case ghostmodeday.FieldDay:
		return m.Day()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GhostModeDayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ghostmodeday.FieldProfile:
		return m.OldProfile(ctx)
	case ghostmodeday.FieldDay:
		return m.OldDay(ctx)
	}
	return nil, fmt.Errorf("unknown GhostModeDay field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostModeDayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ghostmodeday.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case ghostmodeday.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	}
	return fmt.Errorf("unknown GhostModeDay field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GhostModeDayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GhostModeDayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostModeDayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GhostModeDay numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GhostModeDayMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GhostModeDayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GhostModeDayMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GhostModeDay nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GhostModeDayMutation) ResetField(name string) error {
	switch name {
	case ghostmodeday.FieldProfile:
		m.ResetProfile()
		return nil
	case ghostmodeday.FieldDay:
		m.ResetDay()
		return nil
	}
	return fmt.Errorf("unknown GhostModeDay field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GhostModeDayMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GhostModeDayMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GhostModeDayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GhostModeDayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GhostModeDayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GhostModeDayMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GhostModeDayMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GhostModeDay unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GhostModeDayMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GhostModeDay edge %s", name)
}

// GhostSettingMutation represents an operation that mutates the GhostSetting nodes in the graph.
type GhostSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	profile       *string
	toggle        *string
	enabled       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GhostSetting, error)
	predicates    []predicate.GhostSetting
}

var _ ent.Mutation = (*GhostSettingMutation)(nil)

// ghostsettingOption allows management of the mutation configuration using functional options.
type ghostsettingOption func(*GhostSettingMutation)

// newGhostSettingMutation creates new mutation for the GhostSetting entity.
func newGhostSettingMutation(c config, op Op, opts ...ghostsettingOption) *GhostSettingMutation {
	m := &GhostSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeGhostSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGhostSettingID sets the ID field of the mutation.
func withGhostSettingID(id int) ghostsettingOption {
	return func(m *GhostSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *GhostSetting
		)
		m.oldValue = func(ctx context.Context) (*GhostSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GhostSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGhostSetting sets the old GhostSetting of the mutation.
func withGhostSetting(node *GhostSetting) ghostsettingOption {
	return func(m *GhostSettingMutation) {
		m.oldValue = func(context.Context) (*GhostSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GhostSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GhostSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GhostSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GhostSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GhostSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfile sets the "profile" field.
func (m *GhostSettingMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *GhostSettingMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the GhostSetting entity.
// If the GhostSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostSettingMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *GhostSettingMutation) ResetProfile() {
	m.profile = nil
}

// SetToggle sets the "toggle" field.
func (m *GhostSettingMutation) SetToggle(s string) {
	m.toggle = &s
}

// Toggle returns the value of the "toggle" field in the mutation.
func (m *GhostSettingMutation) Toggle() (r string, exists bool) {
	v := m.toggle
	if v == nil {
		return
	}
	return *v, true
}

// OldToggle returns the old "toggle" field's value of the GhostSetting entity.
// If the GhostSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostSettingMutation) OldToggle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToggle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToggle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToggle: %w", err)
	}
	return oldValue.Toggle, nil
}

// ResetToggle resets all changes to the "toggle" field.
func (m *GhostSettingMutation) ResetToggle() {
	m.toggle = nil
}

// SetEnabled sets the "enabled" field.
func (m *GhostSettingMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *GhostSettingMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the GhostSetting entity.
// If the GhostSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostSettingMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *GhostSettingMutation) ResetEnabled() {
	m.enabled = nil
}

// Where appends a list predicates to the GhostSettingMutation builder.
func (m *GhostSettingMutation) Where(ps ...predicate.GhostSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GhostSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GhostSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GhostSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GhostSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GhostSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GhostSetting).
func (m *GhostSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GhostSettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.profile != nil {
		fields = append(fields, ghostsetting.FieldProfile)
	}
	if m.toggle != nil {
		fields = append(fields, ghostsetting.FieldToggle)
	}
	if m.enabled != nil {
		fields = append(fields, ghostsetting.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GhostSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ghostsetting.FieldProfile:
		return m.Profile()
	case ghostsetting.FieldToggle:
		return m.Toggle()
	case ghostsetting.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GhostSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ghostsetting.FieldProfile:
		return m.OldProfile(ctx)
	case ghostsetting.FieldToggle:
		return m.OldToggle(ctx)
	case ghostsetting.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown GhostSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ghostsetting.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case ghostsetting.FieldToggle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToggle(v)
		return nil
	case ghostsetting.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown GhostSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GhostSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GhostSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GhostSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GhostSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GhostSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GhostSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GhostSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GhostSettingMutation) ResetField(name string) error {
	switch name {
	case ghostsetting.FieldProfile:
		m.ResetProfile()
		return nil
	case ghostsetting.FieldToggle:
		m.ResetToggle()
		return nil
	case ghostsetting.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown GhostSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GhostSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GhostSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GhostSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GhostSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GhostSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GhostSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GhostSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GhostSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GhostSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GhostSetting edge %s", name)
}

// PointEventMutation represents an operation that mutates the PointEvent nodes in the graph.
type PointEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	profile       *string
	award         *string
	points        *int
	addpoints     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PointEvent, error)
	predicates    []predicate.PointEvent
}

var _ ent.Mutation = (*PointEventMutation)(nil)

// pointeventOption allows management of the mutation configuration using functional options.
type pointeventOption func(*PointEventMutation)

// newPointEventMutation creates new mutation for the PointEvent entity.
func newPointEventMutation(c config, op Op, opts ...pointeventOption) *PointEventMutation {
	m := &PointEventMutation{
		config:        c,
		op:            op,
		typ:           TypePointEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPointEventID sets the ID field of the mutation.
func withPointEventID(id int) pointeventOption {
	return func(m *PointEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PointEvent
		)
		m.oldValue = func(ctx context.Context) (*PointEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PointEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPointEvent sets the old PointEvent of the mutation.
func withPointEvent(node *PointEvent) pointeventOption {
	return func(m *PointEventMutation) {
		m.oldValue = func(context.Context) (*PointEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PointEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PointEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PointEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PointEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PointEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PointEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PointEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PointEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PointEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PointEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PointEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PointEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PointEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProfile sets the "profile" field.
func (m *PointEventMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *PointEventMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *PointEventMutation) ResetProfile() {
	m.profile = nil
}

// SetAward sets the "award" field.
func (m *PointEventMutation) SetAward(s string) {
	m.award = &s
}

// Award returns the value of the "award" field in the mutation.
func (m *PointEventMutation) Award() (r string, exists bool) {
	v := m.award
	if v == nil {
		return
	}
	return *v, true
}

// OldAward returns the old "award" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldAward(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAward: %w", err)
	}
	return oldValue.Award, nil
}

// ResetAward resets all changes to the "award" field.
func (m *PointEventMutation) ResetAward() {
	m.award = nil
}

// SetPoints sets the "points" field.
func (m *PointEventMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *PointEventMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the PointEvent entity.
// If the PointEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PointEventMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *PointEventMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *PointEventMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *PointEventMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// Where appends a list predicates to the PointEventMutation builder.
func (m *PointEventMutation) Where(ps ...predicate.PointEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PointEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PointEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PointEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PointEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PointEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PointEvent).
func (m *PointEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PointEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.sequence != nil {
		fields = append(fields, pointevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, pointevent.FieldTimestamp)
	}
	if m.profile != nil {
		fields = append(fields, pointevent.FieldProfile)
	}
	if m.award != nil {
		fields = append(fields, pointevent.FieldAward)
	}
	if m.points != nil {
		fields = append(fields, pointevent.FieldPoints)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PointEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pointevent.FieldSequence:
		return m.Sequence()
	case pointevent.FieldTimestamp:
		return m.Timestamp()
	case pointevent.FieldProfile:
		return m.Profile()
	case pointevent.FieldAward:
		return m.Award()
	case pointevent.FieldPoints:
		return m.Points()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PointEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pointevent.FieldSequence:
		return m.OldSequence(ctx)
	case pointevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case pointevent.FieldProfile:
		return m.OldProfile(ctx)
	case pointevent.FieldAward:
		return m.OldAward(ctx)
	case pointevent.FieldPoints:
		return m.OldPoints(ctx)
	}
	return nil, fmt.Errorf("unknown PointEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pointevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case pointevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case pointevent.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case pointevent.FieldAward:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAward(v)
		return nil
	case pointevent.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	}
	return fmt.Errorf("unknown PointEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PointEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, pointevent.FieldSequence)
	}
	if m.addpoints != nil {
		fields = append(fields, pointevent.FieldPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PointEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pointevent.FieldSequence:
		return m.AddedSequence()
	case pointevent.FieldPoints:
		return m.AddedPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PointEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pointevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case pointevent.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	}
	return fmt.Errorf("unknown PointEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PointEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PointEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PointEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PointEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PointEventMutation) ResetField(name string) error {
	switch name {
	case pointevent.FieldSequence:
		m.ResetSequence()
		return nil
	case pointevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case pointevent.FieldProfile:
		m.ResetProfile()
		return nil
	case pointevent.FieldAward:
		m.ResetAward()
		return nil
	case pointevent.FieldPoints:
		m.ResetPoints()
		return nil
	}
	return fmt.Errorf("unknown PointEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PointEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PointEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PointEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PointEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PointEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PointEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PointEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PointEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PointEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PointEvent edge %s", name)
}

// ProgressMutation represents an operation that mutates the Progress nodes in the graph.
type ProgressMutation struct {
	config
	op             Op
	typ            string
	id             *int
	profile        *string
	points         *int
	addpoints      *int
	streak         *int
	addstreak      *int
	days_strong    *int
	adddays_strong *int
	is_premium     *bool
	last_active    *string
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Progress, error)
	predicates     []predicate.Progress
}

var _ ent.Mutation = (*ProgressMutation)(nil)

// progressOption allows management of the mutation configuration using functional options.
type progressOption func(*ProgressMutation)

// newProgressMutation creates new mutation for the Progress entity.
func newProgressMutation(c config, op Op, opts ...progressOption) *ProgressMutation {
	m := &ProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressID sets the ID field of the mutation.
func withProgressID(id int) progressOption {
	return func(m *ProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *Progress
		)
		m.oldValue = func(ctx context.Context) (*Progress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Progress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgress sets the old Progress of the mutation.
func withProgress(node *Progress) progressOption {
	return func(m *ProgressMutation) {
		m.oldValue = func(context.Context) (*Progress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Progress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfile sets the "profile" field.
func (m *ProgressMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *ProgressMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *ProgressMutation) ResetProfile() {
	m.profile = nil
}

// SetPoints sets the "points" field.
func (m *ProgressMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *ProgressMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *ProgressMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *ProgressMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *ProgressMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetStreak sets the "streak" field.
func (m *ProgressMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *ProgressMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *ProgressMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *ProgressMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *ProgressMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetDaysStrong sets the "days_strong" field.
func (m *ProgressMutation) SetDaysStrong(i int) {
	m.days_strong = &i
	m.adddays_strong = nil
}

// DaysStrong returns the value of the "days_strong" field in the mutation.
func (m *ProgressMutation) DaysStrong() (r int, exists bool) {
	v := m.days_strong
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysStrong returns the old "days_strong" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldDaysStrong(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysStrong is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysStrong requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysStrong: %w", err)
	}
	return oldValue.DaysStrong, nil
}

// AddDaysStrong adds i to the "days_strong" field.
func (m *ProgressMutation) AddDaysStrong(i int) {
	if m.adddays_strong != nil {
		*m.adddays_strong += i
	} else {
		m.adddays_strong = &i
	}
}

// AddedDaysStrong returns the value that was added to the "days_strong" field in this mutation.
func (m *ProgressMutation) AddedDaysStrong() (r int, exists bool) {
	v := m.adddays_strong
	if v == nil {
		return
	}
	return *v, true
}

// ResetDaysStrong resets all changes to the "days_strong" field.
func (m *ProgressMutation) ResetDaysStrong() {
	m.days_strong = nil
	m.adddays_strong = nil
}

// SetIsPremium sets the "is_premium" field.
func (m *ProgressMutation) SetIsPremium(b bool) {
	m.is_premium = &b
}

// IsPremium returns the value of the "is_premium" field in the mutation.
func (m *ProgressMutation) IsPremium() (r bool, exists bool) {
	v := m.is_premium
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPremium returns the old "is_premium" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldIsPremium(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPremium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPremium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPremium: %w", err)
	}
	return oldValue.IsPremium, nil
}

// ResetIsPremium resets all changes to the "is_premium" field.
func (m *ProgressMutation) ResetIsPremium() {
	m.is_premium = nil
}

// SetLastActive sets the "last_active" field.
func (m *ProgressMutation) SetLastActive(s string) {
	m.last_active = &s
}

// LastActive returns the value of the "last_active" field in the mutation.
func (m *ProgressMutation) LastActive() (r string, exists bool) {
	v := m.last_active
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActive returns the old "last_active" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldLastActive(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActive: %w", err)
	}
	return oldValue.LastActive, nil
}

// ResetLastActive resets all changes to the "last_active" field.
func (m *ProgressMutation) ResetLastActive() {
	m.last_active = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Progress entity.
// If the Progress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProgressMutation builder.
func (m *ProgressMutation) Where(ps ...predicate.Progress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Progress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Progress).
func (m *ProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.profile != nil {
		fields = append(fields, progress.FieldProfile)
	}
	if m.points != nil {
		fields = append(fields, progress.FieldPoints)
	}
	if m.streak != nil {
		fields = append(fields, progress.FieldStreak)
	}
	if m.days_strong != nil {
		fields = append(fields, progress.FieldDaysStrong)
	}
	if m.is_premium != nil {
		fields = append(fields, progress.FieldIsPremium)
	}
	if m.last_active != nil {
		fields = append(fields, progress.FieldLastActive)
	}
	if m.updated_at != nil {
		fields = append(fields, progress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldProfile:
		return m.Profile()
	case progress.FieldPoints:
		return m.Points()
	case progress.FieldStreak:
		return m.Streak()
	case progress.FieldDaysStrong:
		return m.DaysStrong()
	case progress.FieldIsPremium:
		return m.IsPremium()
	case progress.FieldLastActive:
		return m.LastActive()
	case progress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progress.FieldProfile:
		return m.OldProfile(ctx)
	case progress.FieldPoints:
		return m.OldPoints(ctx)
	case progress.FieldStreak:
		return m.OldStreak(ctx)
	case progress.FieldDaysStrong:
		return m.OldDaysStrong(ctx)
	case progress.FieldIsPremium:
		return m.OldIsPremium(ctx)
	case progress.FieldLastActive:
		return m.OldLastActive(ctx)
	case progress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Progress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progress.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case progress.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case progress.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case progress.FieldDaysStrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysStrong(v)
		return nil
	case progress.FieldIsPremium:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPremium(v)
		return nil
	case progress.FieldLastActive:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActive(v)
		return nil
	case progress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, progress.FieldPoints)
	}
	if m.addstreak != nil {
		fields = append(fields, progress.FieldStreak)
	}
	if m.adddays_strong != nil {
		fields = append(fields, progress.FieldDaysStrong)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progress.FieldPoints:
		return m.AddedPoints()
	case progress.FieldStreak:
		return m.AddedStreak()
	case progress.FieldDaysStrong:
		return m.AddedDaysStrong()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progress.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case progress.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case progress.FieldDaysStrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysStrong(v)
		return nil
	}
	return fmt.Errorf("unknown Progress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Progress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressMutation) ResetField(name string) error {
	switch name {
	case progress.FieldProfile:
		m.ResetProfile()
		return nil
	case progress.FieldPoints:
		m.ResetPoints()
		return nil
	case progress.FieldStreak:
		m.ResetStreak()
		return nil
	case progress.FieldDaysStrong:
		m.ResetDaysStrong()
		return nil
	case progress.FieldIsPremium:
		m.ResetIsPremium()
		return nil
	case progress.FieldLastActive:
		m.ResetLastActive()
		return nil
	case progress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Progress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Progress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Progress edge %s", name)
}

// QuizResponseMutation represents an operation that mutates the QuizResponse nodes in the graph.
type QuizResponseMutation struct {
	config
	op                Op
	typ               string
	id                *int
	question_id       *int
	addquestion_id    *int
	response          *string
	clearedFields     map[string]struct{}
	submission        *uuid.UUID
	clearedsubmission bool
	done              bool
	oldValue          func(context.Context) (*QuizResponse, error)
	predicates        []predicate.QuizResponse
}

var _ ent.Mutation = (*QuizResponseMutation)(nil)

// quizresponseOption allows management of the mutation configuration using functional options.
type quizresponseOption func(*QuizResponseMutation)

// newQuizResponseMutation creates new mutation for the QuizResponse entity.
func newQuizResponseMutation(c config, op Op, opts ...quizresponseOption) *QuizResponseMutation {
	m := &QuizResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizResponseID sets the ID field of the mutation.
func withQuizResponseID(id int) quizresponseOption {
	return func(m *QuizResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizResponse
		)
		m.oldValue = func(ctx context.Context) (*QuizResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizResponse sets the old QuizResponse of the mutation.
func withQuizResponse(node *QuizResponse) quizresponseOption {
	return func(m *QuizResponseMutation) {
		m.oldValue = func(context.Context) (*QuizResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizResponseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizResponseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *QuizResponseMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuizResponseMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuizResponse entity.
// If the QuizResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResponseMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *QuizResponseMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *QuizResponseMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuizResponseMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetResponse sets the "response" field.
func (m *QuizResponseMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *QuizResponseMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the QuizResponse entity.
// If the QuizResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResponseMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *QuizResponseMutation) ResetResponse() {
	m.response = nil
}

// SetSubmissionID sets the "submission" edge to the QuizSubmission entity by id.
func (m *QuizResponseMutation) SetSubmissionID(id uuid.UUID) {
	m.submission = &id
}

// ClearSubmission clears the "submission" edge to the QuizSubmission entity.
func (m *QuizResponseMutation) ClearSubmission() {
	m.clearedsubmission = true
}

// SubmissionCleared reports if the "submission" edge to the QuizSubmission entity was cleared.
func (m *QuizResponseMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionID returns the "submission" edge ID in the mutation.
func (m *QuizResponseMutation) SubmissionID() (id uuid.UUID, exists bool) {
	if m.submission != nil {
		return *m.submission, true
	}
	return
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *QuizResponseMutation) SubmissionIDs() (ids []uuid.UUID) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *QuizResponseMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the QuizResponseMutation builder.
func (m *QuizResponseMutation) Where(ps ...predicate.QuizResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizResponse).
func (m *QuizResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizResponseMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.question_id != nil {
		fields = append(fields, quizresponse.FieldQuestionID)
	}
	if m.response != nil {
		fields = append(fields, quizresponse.FieldResponse)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizresponse.FieldQuestionID:
		return m.QuestionID()
	case quizresponse.FieldResponse:
		return m.Response()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizresponse.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case quizresponse.FieldResponse:
		return m.OldResponse(ctx)
	}
	return nil, fmt.Errorf("unknown QuizResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizresponse.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case quizresponse.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizResponseMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_id != nil {
		fields = append(fields, quizresponse.FieldQuestionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizresponse.FieldQuestionID:
		return m.AddedQuestionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizresponse.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizResponseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizResponseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizResponseMutation) ResetField(name string) error {
	switch name {
	case quizresponse.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case quizresponse.FieldResponse:
		m.ResetResponse()
		return nil
	}
	return fmt.Errorf("unknown QuizResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submission != nil {
		edges = append(edges, quizresponse.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quizresponse.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmission {
		edges = append(edges, quizresponse.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case quizresponse.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizResponseMutation) ClearEdge(name string) error {
	switch name {
	case quizresponse.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown QuizResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizResponseMutation) ResetEdge(name string) error {
	switch name {
	case quizresponse.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown QuizResponse edge %s", name)
}

// QuizSubmissionMutation represents an operation that mutates the QuizSubmission nodes in the graph.
type QuizSubmissionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	profile          *string
	method           *string
	clearedFields    map[string]struct{}
	responses        map[int]struct{}
	removedresponses map[int]struct{}
	clearedresponses bool
	done             bool
	oldValue         func(context.Context) (*QuizSubmission, error)
	predicates       []predicate.QuizSubmission
}

var _ ent.Mutation = (*QuizSubmissionMutation)(nil)

// quizsubmissionOption allows management of the mutation configuration using functional options.
type quizsubmissionOption func(*QuizSubmissionMutation)

// newQuizSubmissionMutation creates new mutation for the QuizSubmission entity.
func newQuizSubmissionMutation(c config, op Op, opts ...quizsubmissionOption) *QuizSubmissionMutation {
	m := &QuizSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizSubmissionID sets the ID field of the mutation.
func withQuizSubmissionID(id uuid.UUID) quizsubmissionOption {
	return func(m *QuizSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizSubmission
		)
		m.oldValue = func(ctx context.Context) (*QuizSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizSubmission sets the old QuizSubmission of the mutation.
func withQuizSubmission(node *QuizSubmission) quizsubmissionOption {
	return func(m *QuizSubmissionMutation) {
		m.oldValue = func(context.Context) (*QuizSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuizSubmission entities.
func (m *QuizSubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizSubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizSubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizSubmissionMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizSubmissionMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizSubmission entity.
// If the QuizSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizSubmissionMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizSubmissionMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizSubmissionMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizSubmissionMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizSubmissionMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizSubmission entity.
// If the QuizSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizSubmissionMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProfile sets the "profile" field.
func (m *QuizSubmissionMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *QuizSubmissionMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the QuizSubmission entity.
// If the QuizSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *QuizSubmissionMutation) ResetProfile() {
	m.profile = nil
}

// SetMethod sets the "method" field.
func (m *QuizSubmissionMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *QuizSubmissionMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the QuizSubmission entity.
// If the QuizSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizSubmissionMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *QuizSubmissionMutation) ResetMethod() {
	m.method = nil
}

// AddResponseIDs adds the "responses" edge to the QuizResponse entity by ids.
func (m *QuizSubmissionMutation) AddResponseIDs(ids ...int) {
	if m.responses == nil {
		m.responses = make(map[int]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the QuizResponse entity.
func (m *QuizSubmissionMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the QuizResponse entity was cleared.
func (m *QuizSubmissionMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the QuizResponse entity by IDs.
func (m *QuizSubmissionMutation) RemoveResponseIDs(ids ...int) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the QuizResponse entity.
func (m *QuizSubmissionMutation) RemovedResponsesIDs() (ids []int) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *QuizSubmissionMutation) ResponsesIDs() (ids []int) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *QuizSubmissionMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the QuizSubmissionMutation builder.
func (m *QuizSubmissionMutation) Where(ps ...predicate.QuizSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizSubmission).
func (m *QuizSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.sequence != nil {
		fields = append(fields, quizsubmission.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizsubmission.FieldTimestamp)
	}
	if m.profile != nil {
		fields = append(fields, quizsubmission.FieldProfile)
	}
	if m.method != nil {
		fields = append(fields, quizsubmission.FieldMethod)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizsubmission.FieldSequence:
		return m.Sequence()
	case quizsubmission.FieldTimestamp:
		return m.Timestamp()
	case quizsubmission.FieldProfile:
		return m.Profile()
	case quizsubmission.FieldMethod:
		return m.Method()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizsubmission.FieldSequence:
		return m.OldSequence(ctx)
	case quizsubmission.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizsubmission.FieldProfile:
		return m.OldProfile(ctx)
	case quizsubmission.FieldMethod:
		return m.OldMethod(ctx)
	}
	return nil, fmt.Errorf("unknown QuizSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizsubmission.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizsubmission.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizsubmission.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case quizsubmission.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	}
	return fmt.Errorf("unknown QuizSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizSubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizsubmission.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizsubmission.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizsubmission.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown QuizSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizSubmissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizSubmissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizSubmissionMutation) ResetField(name string) error {
	switch name {
	case quizsubmission.FieldSequence:
		m.ResetSequence()
		return nil
	case quizsubmission.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizsubmission.FieldProfile:
		m.ResetProfile()
		return nil
	case quizsubmission.FieldMethod:
		m.ResetMethod()
		return nil
	}
	return fmt.Errorf("unknown QuizSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.responses != nil {
		edges = append(edges, quizsubmission.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quizsubmission.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedresponses != nil {
		edges = append(edges, quizsubmission.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizSubmissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case quizsubmission.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresponses {
		edges = append(edges, quizsubmission.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case quizsubmission.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizSubmissionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown QuizSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case quizsubmission.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown QuizSubmission edge %s", name)
}

// RewardClaimMutation represents an operation that mutates the RewardClaim nodes in the graph.
type RewardClaimMutation struct {
	config
	op            Op
	typ           string
	id            *int
	profile       *string
	reward_id     *int
	addreward_id  *int
	claimed_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RewardClaim, error)
	predicates    []predicate.RewardClaim
}

var _ ent.Mutation = (*RewardClaimMutation)(nil)

// rewardclaimOption allows management of the mutation configuration using functional options.
type rewardclaimOption func(*RewardClaimMutation)

// newRewardClaimMutation creates new mutation for the RewardClaim entity.
func newRewardClaimMutation(c config, op Op, opts ...rewardclaimOption) *RewardClaimMutation {
	m := &RewardClaimMutation{
		config:        c,
		op:            op,
		typ:           TypeRewardClaim,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRewardClaimID sets the ID field of the mutation.
func withRewardClaimID(id int) rewardclaimOption {
	return func(m *RewardClaimMutation) {
		var (
			err   error
			once  sync.Once
			value *RewardClaim
		)
		m.oldValue = func(ctx context.Context) (*RewardClaim, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RewardClaim.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRewardClaim sets the old RewardClaim of the mutation.
func withRewardClaim(node *RewardClaim) rewardclaimOption {
	return func(m *RewardClaimMutation) {
		m.oldValue = func(context.Context) (*RewardClaim, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RewardClaimMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RewardClaimMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RewardClaimMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RewardClaimMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RewardClaim.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfile sets the "profile" field.
func (m *RewardClaimMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *RewardClaimMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the RewardClaim entity.
// If the RewardClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardClaimMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *RewardClaimMutation) ResetProfile() {
	m.profile = nil
}

// SetRewardID sets the "reward_id" field.
func (m *RewardClaimMutation) SetRewardID(i int) {
	m.reward_id = &i
	m.addreward_id = nil
}

// RewardID returns the value of the "reward_id" field in the mutation.
func (m *RewardClaimMutation) RewardID() (r int, exists bool) {
	v := m.reward_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRewardID returns the old "reward_id" field's value of the RewardClaim entity.
// If the RewardClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardClaimMutation) OldRewardID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRewardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRewardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRewardID: %w", err)
	}
	return oldValue.RewardID, nil
}

// AddRewardID adds i to the "reward_id" field.
func (m *RewardClaimMutation) AddRewardID(i int) {
	if m.addreward_id != nil {
		*m.addreward_id += i
	} else {
		m.addreward_id = &i
	}
}

// AddedRewardID returns the value that was added to the "reward_id" field in this mutation.
func (m *RewardClaimMutation) AddedRewardID() (r int, exists bool) {
	v := m.addreward_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRewardID resets all changes to the "reward_id" field.
func (m *RewardClaimMutation) ResetRewardID() {
	m.reward_id = nil
	m.addreward_id = nil
}

// SetClaimedAt sets the "claimed_at" field.
func (m *RewardClaimMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *RewardClaimMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the RewardClaim entity.
// If the RewardClaim object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardClaimMutation) OldClaimedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *RewardClaimMutation) ResetClaimedAt() {
	m.claimed_at = nil
}

// Where appends a list predicates to the RewardClaimMutation builder.
func (m *RewardClaimMutation) Where(ps ...predicate.RewardClaim) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RewardClaimMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RewardClaimMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RewardClaim, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RewardClaimMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RewardClaimMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RewardClaim).
func (m *RewardClaimMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RewardClaimMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.profile != nil {
		fields = append(fields, rewardclaim.FieldProfile)
	}
	if m.reward_id != nil {
		fields = append(fields, rewardclaim.FieldRewardID)
	}
	if m.claimed_at != nil {
		fields = append(fields, rewardclaim.FieldClaimedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RewardClaimMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rewardclaim.FieldProfile:
		return m.Profile()
	case rewardclaim.FieldRewardID:
		return m.RewardID()
	case rewardclaim.FieldClaimedAt:
		return m.ClaimedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RewardClaimMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rewardclaim.FieldProfile:
		return m.OldProfile(ctx)
	case rewardclaim.FieldRewardID:
		return m.OldRewardID(ctx)
	case rewardclaim.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RewardClaim field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RewardClaimMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rewardclaim.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case rewardclaim.FieldRewardID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRewardID(v)
		return nil
	case rewardclaim.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RewardClaim field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RewardClaimMutation) AddedFields() []string {
	var fields []string
	if m.addreward_id != nil {
		fields = append(fields, rewardclaim.FieldRewardID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RewardClaimMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rewardclaim.FieldRewardID:
		return m.AddedRewardID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RewardClaimMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rewardclaim.FieldRewardID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRewardID(v)
		return nil
	}
	return fmt.Errorf("unknown RewardClaim numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RewardClaimMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RewardClaimMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RewardClaimMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RewardClaim nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RewardClaimMutation) ResetField(name string) error {
	switch name {
	case rewardclaim.FieldProfile:
		m.ResetProfile()
		return nil
	case rewardclaim.FieldRewardID:
		m.ResetRewardID()
		return nil
	case rewardclaim.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	}
	return fmt.Errorf("unknown RewardClaim field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RewardClaimMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RewardClaimMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RewardClaimMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RewardClaimMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RewardClaimMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RewardClaimMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RewardClaimMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RewardClaim unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RewardClaimMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RewardClaim edge %s", name)
}

// SocialPlatformMutation represents an operation that mutates the SocialPlatform nodes in the graph.
type SocialPlatformMutation struct {
	config
	op            Op
	typ           string
	id            *int
	profile       *string
	name          *string
	connected     *bool
	username      *string
	connected_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SocialPlatform, error)
	predicates    []predicate.SocialPlatform
}

var _ ent.Mutation = (*SocialPlatformMutation)(nil)

// socialplatformOption allows management of the mutation configuration using functional options.
type socialplatformOption func(*SocialPlatformMutation)

// newSocialPlatformMutation creates new mutation for the SocialPlatform entity.
func newSocialPlatformMutation(c config, op Op, opts ...socialplatformOption) *SocialPlatformMutation {
	m := &SocialPlatformMutation{
		config:        c,
		op:            op,
		typ:           TypeSocialPlatform,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSocialPlatformID sets the ID field of the mutation.
func withSocialPlatformID(id int) socialplatformOption {
	return func(m *SocialPlatformMutation) {
		var (
			err   error
			once  sync.Once
			value *SocialPlatform
		)
		m.oldValue = func(ctx context.Context) (*SocialPlatform, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SocialPlatform.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSocialPlatform sets the old SocialPlatform of the mutation.
func withSocialPlatform(node *SocialPlatform) socialplatformOption {
	return func(m *SocialPlatformMutation) {
		m.oldValue = func(context.Context) (*SocialPlatform, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SocialPlatformMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SocialPlatformMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SocialPlatformMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SocialPlatformMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SocialPlatform.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfile sets the "profile" field.
func (m *SocialPlatformMutation) SetProfile(s string) {
	m.profile = &s
}

// Profile returns the value of the "profile" field in the mutation.
func (m *SocialPlatformMutation) Profile() (r string, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the SocialPlatform entity.
// If the SocialPlatform object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SocialPlatformMutation) OldProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *SocialPlatformMutation) ResetProfile() {
	m.profile = nil
}

// SetName sets the "name" field.
func (m *SocialPlatformMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SocialPlatformMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SocialPlatform entity.
// If the SocialPlatform object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SocialPlatformMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SocialPlatformMutation) ResetName() {
	m.name = nil
}

// SetConnected sets the "connected" field.
func (m *SocialPlatformMutation) SetConnected(b bool) {
	m.connected = &b
}

// Connected returns the value of the "connected" field in the mutation.
func (m *SocialPlatformMutation) Connected() (r bool, exists bool) {
	v := m.connected
	if v == nil {
		return
	}
	return *v, true
}

// OldConnected returns the old "connected" field's value of the SocialPlatform entity.
// If the SocialPlatform object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SocialPlatformMutation) OldConnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnected: %w", err)
	}
	return oldValue.Connected, nil
}

// ResetConnected resets all changes to the "connected" field.
func (m *SocialPlatformMutation) ResetConnected() {
	m.connected = nil
}

// SetUsername sets the "username" field.
func (m *SocialPlatformMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *SocialPlatformMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the SocialPlatform entity.
// If the SocialPlatform object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SocialPlatformMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *SocialPlatformMutation) ResetUsername() {
	m.username = nil
}

// SetConnectedAt sets the "connected_at" field.
func (m *SocialPlatformMutation) SetConnectedAt(t time.Time) {
	m.connected_at = &t
}

// ConnectedAt returns the value of the "connected_at" field in the mutation.
func (m *SocialPlatformMutation) ConnectedAt() (r time.Time, exists bool) {
	v := m.connected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectedAt returns the old "connected_at" field's value of the SocialPlatform entity.
// If the SocialPlatform object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SocialPlatformMutation) OldConnectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectedAt: %w", err)
	}
	return oldValue.ConnectedAt, nil
}

// ClearConnectedAt clears the value of the "connected_at" field.
func (m *SocialPlatformMutation) ClearConnectedAt() {
	m.connected_at = nil
	m.clearedFields[socialplatform.FieldConnectedAt] = struct{}{}
}

// ConnectedAtCleared returns if the "connected_at" field was cleared in this mutation.
func (m *SocialPlatformMutation) ConnectedAtCleared() bool {
	_, ok := m.clearedFields[socialplatform.FieldConnectedAt]
	return ok
}

// ResetConnectedAt resets all changes to the "connected_at" field.
func (m *SocialPlatformMutation) ResetConnectedAt() {
	m.connected_at = nil
	delete(m.clearedFields, socialplatform.FieldConnectedAt)
}

// Where appends a list predicates to the SocialPlatformMutation builder.
func (m *SocialPlatformMutation) Where(ps ...predicate.SocialPlatform) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SocialPlatformMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SocialPlatformMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SocialPlatform, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SocialPlatformMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SocialPlatformMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SocialPlatform).
func (m *SocialPlatformMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SocialPlatformMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.profile != nil {
		fields = append(fields, socialplatform.FieldProfile)
	}
	if m.name != nil {
		fields = append(fields, socialplatform.FieldName)
	}
	if m.connected != nil {
		fields = append(fields, socialplatform.FieldConnected)
	}
	if m.username != nil {
		fields = append(fields, socialplatform.FieldUsername)
	}
	if m.connected_at != nil {
		fields = append(fields, socialplatform.FieldConnectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SocialPlatformMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case socialplatform.FieldProfile:
		return m.Profile()
	case socialplatform.FieldName:
		return m.Name()
	case socialplatform.FieldConnected:
		return m.Connected()
	case socialplatform.FieldUsername:
		return m.Username()
	case socialplatform.FieldConnectedAt:
		return m.ConnectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SocialPlatformMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case socialplatform.FieldProfile:
		return m.OldProfile(ctx)
	case socialplatform.FieldName:
		return m.OldName(ctx)
	case socialplatform.FieldConnected:
		return m.OldConnected(ctx)
	case socialplatform.FieldUsername:
		return m.OldUsername(ctx)
	case socialplatform.FieldConnectedAt:
		return m.OldConnectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SocialPlatform field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SocialPlatformMutation) SetField(name string, value ent.Value) error {
	switch name {
	case socialplatform.FieldProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case socialplatform.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case socialplatform.FieldConnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnected(v)
		return nil
	case socialplatform.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case socialplatform.FieldConnectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SocialPlatform field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SocialPlatformMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SocialPlatformMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SocialPlatformMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SocialPlatform numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SocialPlatformMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(socialplatform.FieldConnectedAt) {
		fields = append(fields, socialplatform.FieldConnectedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SocialPlatformMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SocialPlatformMutation) ClearField(name string) error {
	switch name {
	case socialplatform.FieldConnectedAt:
		m.ClearConnectedAt()
		return nil
	}
	return fmt.Errorf("unknown SocialPlatform nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SocialPlatformMutation) ResetField(name string) error {
	switch name {
	case socialplatform.FieldProfile:
		m.ResetProfile()
		return nil
	case socialplatform.FieldName:
		m.ResetName()
		return nil
	case socialplatform.FieldConnected:
		m.ResetConnected()
		return nil
	case socialplatform.FieldUsername:
		m.ResetUsername()
		return nil
	case socialplatform.FieldConnectedAt:
		m.ResetConnectedAt()
		return nil
	}
	return fmt.Errorf("unknown SocialPlatform field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SocialPlatformMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SocialPlatformMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SocialPlatformMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SocialPlatformMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SocialPlatformMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SocialPlatformMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SocialPlatformMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SocialPlatform unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SocialPlatformMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SocialPlatform edge %s", name)
}
