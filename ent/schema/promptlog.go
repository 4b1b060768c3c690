package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptLog holds the schema definition for the PromptLog entity — the
// durable record of one generation request: prompt in, instructions and
// document out, with terminal status. Owned by the persistence layer; the
// core only creates rows and lists them, never reads one back mid-flight.
type PromptLog struct {
	ent.Schema
}

// Fields of the PromptLog.
func (PromptLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_log_id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Text("prompt").
			Immutable(),

		// Generation artifacts — all nullable: a failed generation may have
		// produced none of them, a malformed stream may yield raw text that
		// never parsed into instructions.
		field.JSON("instructions", map[string]interface{}{}).
			Optional().
			Comment("Parsed instruction document; null when the stream never parsed"),
		field.JSON("narrative_guide", map[string]interface{}{}).
			Optional().
			Comment("Surfaced narration guide"),
		field.Text("html").
			Optional().
			Nillable().
			Comment("Compiled document; null on failure"),

		// Outcome
		field.Enum("status").
			Values("visualization_complete", "failed"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("null = success, not-null = failed"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PromptLog.
func (PromptLog) Indexes() []ent.Index {
	return []ent.Index{
		// A user's generations chronologically — backs the paginated listing.
		index.Fields("user_id", "created_at"),
	}
}
