// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/c-varun14/Yugantar/ent/promptlog"
	"github.com/c-varun14/Yugantar/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	promptlogFields := schema.PromptLog{}.Fields()
	_ = promptlogFields
	// promptlogDescUserID is the schema descriptor for user_id field.
	promptlogDescUserID := promptlogFields[1].Descriptor()
	// promptlog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	promptlog.UserIDValidator = promptlogDescUserID.Validators[0].(func(string) error)
	// promptlogDescCreatedAt is the schema descriptor for created_at field.
	promptlogDescCreatedAt := promptlogFields[8].Descriptor()
	// promptlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptlog.DefaultCreatedAt = promptlogDescCreatedAt.Default.(func() time.Time)
}
