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
	"github.com/c-varun14/Yugantar/ent/predicate"
	"github.com/c-varun14/Yugantar/ent/promptlog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePromptLog = "PromptLog"
)

// PromptLogMutation represents an operation that mutates the PromptLog nodes in the graph.
type PromptLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	prompt          *string
	instructions    *map[string]interface{}
	narrative_guide *map[string]interface{}
	html            *string
	status          *promptlog.Status
	error_message   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PromptLog, error)
	predicates      []predicate.PromptLog
}

var _ ent.Mutation = (*PromptLogMutation)(nil)

// promptlogOption allows management of the mutation configuration using functional options.
type promptlogOption func(*PromptLogMutation)

// newPromptLogMutation creates new mutation for the PromptLog entity.
func newPromptLogMutation(c config, op Op, opts ...promptlogOption) *PromptLogMutation {
	m := &PromptLogMutation{
		config:        c,
		op:            op,
		typ:           TypePromptLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptLogID sets the ID field of the mutation.
func withPromptLogID(id string) promptlogOption {
	return func(m *PromptLogMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptLog
		)
		m.oldValue = func(ctx context.Context) (*PromptLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptLog sets the old PromptLog of the mutation.
func withPromptLog(node *PromptLog) promptlogOption {
	return func(m *PromptLogMutation) {
		m.oldValue = func(context.Context) (*PromptLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptLog entities.
func (m *PromptLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PromptLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PromptLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PromptLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *PromptLogMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *PromptLogMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *PromptLogMutation) ResetPrompt() {
	m.prompt = nil
}

// SetInstructions sets the "instructions" field.
func (m *PromptLogMutation) SetInstructions(value map[string]interface{}) {
	m.instructions = &value
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *PromptLogMutation) Instructions() (r map[string]interface{}, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldInstructions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *PromptLogMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[promptlog.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *PromptLogMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[promptlog.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *PromptLogMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, promptlog.FieldInstructions)
}

// SetNarrativeGuide sets the "narrative_guide" field.
func (m *PromptLogMutation) SetNarrativeGuide(value map[string]interface{}) {
	m.narrative_guide = &value
}

// NarrativeGuide returns the value of the "narrative_guide" field in the mutation.
func (m *PromptLogMutation) NarrativeGuide() (r map[string]interface{}, exists bool) {
	v := m.narrative_guide
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeGuide returns the old "narrative_guide" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldNarrativeGuide(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeGuide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeGuide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeGuide: %w", err)
	}
	return oldValue.NarrativeGuide, nil
}

// ClearNarrativeGuide clears the value of the "narrative_guide" field.
func (m *PromptLogMutation) ClearNarrativeGuide() {
	m.narrative_guide = nil
	m.clearedFields[promptlog.FieldNarrativeGuide] = struct{}{}
}

// NarrativeGuideCleared returns if the "narrative_guide" field was cleared in this mutation.
func (m *PromptLogMutation) NarrativeGuideCleared() bool {
	_, ok := m.clearedFields[promptlog.FieldNarrativeGuide]
	return ok
}

// ResetNarrativeGuide resets all changes to the "narrative_guide" field.
func (m *PromptLogMutation) ResetNarrativeGuide() {
	m.narrative_guide = nil
	delete(m.clearedFields, promptlog.FieldNarrativeGuide)
}

// SetHTML sets the "html" field.
func (m *PromptLogMutation) SetHTML(s string) {
	m.html = &s
}

// HTML returns the value of the "html" field in the mutation.
func (m *PromptLogMutation) HTML() (r string, exists bool) {
	v := m.html
	if v == nil {
		return
	}
	return *v, true
}

// OldHTML returns the old "html" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldHTML(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTML: %w", err)
	}
	return oldValue.HTML, nil
}

// ClearHTML clears the value of the "html" field.
func (m *PromptLogMutation) ClearHTML() {
	m.html = nil
	m.clearedFields[promptlog.FieldHTML] = struct{}{}
}

// HTMLCleared returns if the "html" field was cleared in this mutation.
func (m *PromptLogMutation) HTMLCleared() bool {
	_, ok := m.clearedFields[promptlog.FieldHTML]
	return ok
}

// ResetHTML resets all changes to the "html" field.
func (m *PromptLogMutation) ResetHTML() {
	m.html = nil
	delete(m.clearedFields, promptlog.FieldHTML)
}

// SetStatus sets the "status" field.
func (m *PromptLogMutation) SetStatus(pr promptlog.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PromptLogMutation) Status() (r promptlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldStatus(ctx context.Context) (v promptlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PromptLogMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *PromptLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PromptLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PromptLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[promptlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PromptLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[promptlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PromptLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, promptlog.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptLog entity.
// If the PromptLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptLogMutation builder.
func (m *PromptLogMutation) Where(ps ...predicate.PromptLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptLog).
func (m *PromptLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, promptlog.FieldUserID)
	}
	if m.prompt != nil {
		fields = append(fields, promptlog.FieldPrompt)
	}
	if m.instructions != nil {
		fields = append(fields, promptlog.FieldInstructions)
	}
	if m.narrative_guide != nil {
		fields = append(fields, promptlog.FieldNarrativeGuide)
	}
	if m.html != nil {
		fields = append(fields, promptlog.FieldHTML)
	}
	if m.status != nil {
		fields = append(fields, promptlog.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, promptlog.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, promptlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptlog.FieldUserID:
		return m.UserID()
	case promptlog.FieldPrompt:
		return m.Prompt()
	case promptlog.FieldInstructions:
		return m.Instructions()
	case promptlog.FieldNarrativeGuide:
		return m.NarrativeGuide()
	case promptlog.FieldHTML:
		return m.HTML()
	case promptlog.FieldStatus:
		return m.Status()
	case promptlog.FieldErrorMessage:
		return m.ErrorMessage()
	case promptlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptlog.FieldUserID:
		return m.OldUserID(ctx)
	case promptlog.FieldPrompt:
		return m.OldPrompt(ctx)
	case promptlog.FieldInstructions:
		return m.OldInstructions(ctx)
	case promptlog.FieldNarrativeGuide:
		return m.OldNarrativeGuide(ctx)
	case promptlog.FieldHTML:
		return m.OldHTML(ctx)
	case promptlog.FieldStatus:
		return m.OldStatus(ctx)
	case promptlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case promptlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case promptlog.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case promptlog.FieldInstructions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case promptlog.FieldNarrativeGuide:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeGuide(v)
		return nil
	case promptlog.FieldHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTML(v)
		return nil
	case promptlog.FieldStatus:
		v, ok := value.(promptlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case promptlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case promptlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptlog.FieldInstructions) {
		fields = append(fields, promptlog.FieldInstructions)
	}
	if m.FieldCleared(promptlog.FieldNarrativeGuide) {
		fields = append(fields, promptlog.FieldNarrativeGuide)
	}
	if m.FieldCleared(promptlog.FieldHTML) {
		fields = append(fields, promptlog.FieldHTML)
	}
	if m.FieldCleared(promptlog.FieldErrorMessage) {
		fields = append(fields, promptlog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptLogMutation) ClearField(name string) error {
	switch name {
	case promptlog.FieldInstructions:
		m.ClearInstructions()
		return nil
	case promptlog.FieldNarrativeGuide:
		m.ClearNarrativeGuide()
		return nil
	case promptlog.FieldHTML:
		m.ClearHTML()
		return nil
	case promptlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PromptLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptLogMutation) ResetField(name string) error {
	switch name {
	case promptlog.FieldUserID:
		m.ResetUserID()
		return nil
	case promptlog.FieldPrompt:
		m.ResetPrompt()
		return nil
	case promptlog.FieldInstructions:
		m.ResetInstructions()
		return nil
	case promptlog.FieldNarrativeGuide:
		m.ResetNarrativeGuide()
		return nil
	case promptlog.FieldHTML:
		m.ResetHTML()
		return nil
	case promptlog.FieldStatus:
		m.ResetStatus()
		return nil
	case promptlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case promptlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptLog edge %s", name)
}
