// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PromptLog is the predicate function for promptlog builders.
type PromptLog func(*sql.Selector)
