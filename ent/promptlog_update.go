// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/c-varun14/Yugantar/ent/predicate"
	"github.com/c-varun14/Yugantar/ent/promptlog"
)

// PromptLogUpdate is the builder for updating PromptLog entities.
type PromptLogUpdate struct {
	config
	hooks    []Hook
	mutation *PromptLogMutation
}

// Where appends a list predicates to the PromptLogUpdate builder.
func (_u *PromptLogUpdate) Where(ps ...predicate.PromptLog) *PromptLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *PromptLogUpdate) SetInstructions(v map[string]interface{}) *PromptLogUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PromptLogUpdate) ClearInstructions() *PromptLogUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetNarrativeGuide sets the "narrative_guide" field.
func (_u *PromptLogUpdate) SetNarrativeGuide(v map[string]interface{}) *PromptLogUpdate {
	_u.mutation.SetNarrativeGuide(v)
	return _u
}

// ClearNarrativeGuide clears the value of the "narrative_guide" field.
func (_u *PromptLogUpdate) ClearNarrativeGuide() *PromptLogUpdate {
	_u.mutation.ClearNarrativeGuide()
	return _u
}

// SetHTML sets the "html" field.
func (_u *PromptLogUpdate) SetHTML(v string) *PromptLogUpdate {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *PromptLogUpdate) SetNillableHTML(v *string) *PromptLogUpdate {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// ClearHTML clears the value of the "html" field.
func (_u *PromptLogUpdate) ClearHTML() *PromptLogUpdate {
	_u.mutation.ClearHTML()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromptLogUpdate) SetStatus(v promptlog.Status) *PromptLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromptLogUpdate) SetNillableStatus(v *promptlog.Status) *PromptLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PromptLogUpdate) SetErrorMessage(v string) *PromptLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PromptLogUpdate) SetNillableErrorMessage(v *string) *PromptLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PromptLogUpdate) ClearErrorMessage() *PromptLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PromptLogMutation object of the builder.
func (_u *PromptLogUpdate) Mutation() *PromptLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := promptlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptlog.Table, promptlog.Columns, sqlgraph.NewFieldSpec(promptlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(promptlog.FieldInstructions, field.TypeJSON, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(promptlog.FieldInstructions, field.TypeJSON)
	}
	if value, ok := _u.mutation.NarrativeGuide(); ok {
		_spec.SetField(promptlog.FieldNarrativeGuide, field.TypeJSON, value)
	}
	if _u.mutation.NarrativeGuideCleared() {
		_spec.ClearField(promptlog.FieldNarrativeGuide, field.TypeJSON)
	}
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(promptlog.FieldHTML, field.TypeString, value)
	}
	if _u.mutation.HTMLCleared() {
		_spec.ClearField(promptlog.FieldHTML, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promptlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(promptlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(promptlog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptLogUpdateOne is the builder for updating a single PromptLog entity.
type PromptLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptLogMutation
}

// SetInstructions sets the "instructions" field.
func (_u *PromptLogUpdateOne) SetInstructions(v map[string]interface{}) *PromptLogUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *PromptLogUpdateOne) ClearInstructions() *PromptLogUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetNarrativeGuide sets the "narrative_guide" field.
func (_u *PromptLogUpdateOne) SetNarrativeGuide(v map[string]interface{}) *PromptLogUpdateOne {
	_u.mutation.SetNarrativeGuide(v)
	return _u
}

// ClearNarrativeGuide clears the value of the "narrative_guide" field.
func (_u *PromptLogUpdateOne) ClearNarrativeGuide() *PromptLogUpdateOne {
	_u.mutation.ClearNarrativeGuide()
	return _u
}

// SetHTML sets the "html" field.
func (_u *PromptLogUpdateOne) SetHTML(v string) *PromptLogUpdateOne {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *PromptLogUpdateOne) SetNillableHTML(v *string) *PromptLogUpdateOne {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// ClearHTML clears the value of the "html" field.
func (_u *PromptLogUpdateOne) ClearHTML() *PromptLogUpdateOne {
	_u.mutation.ClearHTML()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromptLogUpdateOne) SetStatus(v promptlog.Status) *PromptLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromptLogUpdateOne) SetNillableStatus(v *promptlog.Status) *PromptLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PromptLogUpdateOne) SetErrorMessage(v string) *PromptLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PromptLogUpdateOne) SetNillableErrorMessage(v *string) *PromptLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PromptLogUpdateOne) ClearErrorMessage() *PromptLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the PromptLogMutation object of the builder.
func (_u *PromptLogUpdateOne) Mutation() *PromptLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptLogUpdate builder.
func (_u *PromptLogUpdateOne) Where(ps ...predicate.PromptLog) *PromptLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptLogUpdateOne) Select(field string, fields ...string) *PromptLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptLog entity.
func (_u *PromptLogUpdateOne) Save(ctx context.Context) (*PromptLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptLogUpdateOne) SaveX(ctx context.Context) *PromptLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := promptlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptLogUpdateOne) sqlSave(ctx context.Context) (_node *PromptLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptlog.Table, promptlog.Columns, sqlgraph.NewFieldSpec(promptlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptlog.FieldID)
		for _, f := range fields {
			if !promptlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(promptlog.FieldInstructions, field.TypeJSON, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(promptlog.FieldInstructions, field.TypeJSON)
	}
	if value, ok := _u.mutation.NarrativeGuide(); ok {
		_spec.SetField(promptlog.FieldNarrativeGuide, field.TypeJSON, value)
	}
	if _u.mutation.NarrativeGuideCleared() {
		_spec.ClearField(promptlog.FieldNarrativeGuide, field.TypeJSON)
	}
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(promptlog.FieldHTML, field.TypeString, value)
	}
	if _u.mutation.HTMLCleared() {
		_spec.ClearField(promptlog.FieldHTML, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promptlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(promptlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(promptlog.FieldErrorMessage, field.TypeString)
	}
	_node = &PromptLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
