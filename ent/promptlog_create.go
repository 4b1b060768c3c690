// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/c-varun14/Yugantar/ent/promptlog"
)

// PromptLogCreate is the builder for creating a PromptLog entity.
type PromptLogCreate struct {
	config
	mutation *PromptLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PromptLogCreate) SetUserID(v string) *PromptLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *PromptLogCreate) SetPrompt(v string) *PromptLogCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *PromptLogCreate) SetInstructions(v map[string]interface{}) *PromptLogCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNarrativeGuide sets the "narrative_guide" field.
func (_c *PromptLogCreate) SetNarrativeGuide(v map[string]interface{}) *PromptLogCreate {
	_c.mutation.SetNarrativeGuide(v)
	return _c
}

// SetHTML sets the "html" field.
func (_c *PromptLogCreate) SetHTML(v string) *PromptLogCreate {
	_c.mutation.SetHTML(v)
	return _c
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_c *PromptLogCreate) SetNillableHTML(v *string) *PromptLogCreate {
	if v != nil {
		_c.SetHTML(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PromptLogCreate) SetStatus(v promptlog.Status) *PromptLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PromptLogCreate) SetErrorMessage(v string) *PromptLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PromptLogCreate) SetNillableErrorMessage(v *string) *PromptLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptLogCreate) SetCreatedAt(v time.Time) *PromptLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptLogCreate) SetNillableCreatedAt(v *time.Time) *PromptLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptLogCreate) SetID(v string) *PromptLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptLogMutation object of the builder.
func (_c *PromptLogCreate) Mutation() *PromptLogMutation {
	return _c.mutation
}

// Save creates the PromptLog in the database.
func (_c *PromptLogCreate) Save(ctx context.Context) (*PromptLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptLogCreate) SaveX(ctx context.Context) *PromptLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PromptLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := promptlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PromptLog.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "PromptLog.prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PromptLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := promptlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PromptLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptLog.created_at"`)}
	}
	return nil
}

func (_c *PromptLogCreate) sqlSave(ctx context.Context) (*PromptLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PromptLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptLogCreate) createSpec() (*PromptLog, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptlog.Table, sqlgraph.NewFieldSpec(promptlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(promptlog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(promptlog.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(promptlog.FieldInstructions, field.TypeJSON, value)
		_node.Instructions = value
	}
	if value, ok := _c.mutation.NarrativeGuide(); ok {
		_spec.SetField(promptlog.FieldNarrativeGuide, field.TypeJSON, value)
		_node.NarrativeGuide = value
	}
	if value, ok := _c.mutation.HTML(); ok {
		_spec.SetField(promptlog.FieldHTML, field.TypeString, value)
		_node.HTML = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(promptlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(promptlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PromptLogCreateBulk is the builder for creating many PromptLog entities in bulk.
type PromptLogCreateBulk struct {
	config
	err      error
	builders []*PromptLogCreate
}

// Save creates the PromptLog entities in the database.
func (_c *PromptLogCreateBulk) Save(ctx context.Context) ([]*PromptLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PromptLogCreateBulk) SaveX(ctx context.Context) []*PromptLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
