// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/c-varun14/Yugantar/ent/promptlog"
)

// PromptLog is the model entity for the PromptLog schema.
type PromptLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Parsed instruction document; null when the stream never parsed
	Instructions map[string]interface{} `json:"instructions,omitempty"`
	// Surfaced narration guide
	NarrativeGuide map[string]interface{} `json:"narrative_guide,omitempty"`
	// Compiled document; null on failure
	HTML *string `json:"html,omitempty"`
	// Status holds the value of the "status" field.
	Status promptlog.Status `json:"status,omitempty"`
	// null = success, not-null = failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptlog.FieldInstructions, promptlog.FieldNarrativeGuide:
			values[i] = new([]byte)
		case promptlog.FieldID, promptlog.FieldUserID, promptlog.FieldPrompt, promptlog.FieldHTML, promptlog.FieldStatus, promptlog.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case promptlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptLog fields.
func (_m *PromptLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptlog.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case promptlog.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case promptlog.FieldInstructions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Instructions); err != nil {
					return fmt.Errorf("unmarshal field instructions: %w", err)
				}
			}
		case promptlog.FieldNarrativeGuide:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field narrative_guide", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NarrativeGuide); err != nil {
					return fmt.Errorf("unmarshal field narrative_guide: %w", err)
				}
			}
		case promptlog.FieldHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field html", values[i])
			} else if value.Valid {
				_m.HTML = new(string)
				*_m.HTML = value.String
			}
		case promptlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = promptlog.Status(value.String)
			}
		case promptlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case promptlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PromptLog.
// This includes values selected through modifiers, order, etc.
func (_m *PromptLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PromptLog.
// Note that you need to call PromptLog.Unwrap() before calling this method if this PromptLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptLog) Update() *PromptLogUpdateOne {
	return NewPromptLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptLog) Unwrap() *PromptLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptLog) String() string {
	var builder strings.Builder
	builder.WriteString("PromptLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("instructions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Instructions))
	builder.WriteString(", ")
	builder.WriteString("narrative_guide=")
	builder.WriteString(fmt.Sprintf("%v", _m.NarrativeGuide))
	builder.WriteString(", ")
	if v := _m.HTML; v != nil {
		builder.WriteString("html=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptLogs is a parsable slice of PromptLog.
type PromptLogs []*PromptLog
