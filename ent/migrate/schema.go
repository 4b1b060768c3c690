// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PromptLogsColumns holds the columns for the "prompt_logs" table.
	PromptLogsColumns = []*schema.Column{
		{Name: "prompt_log_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "instructions", Type: field.TypeJSON, Nullable: true},
		{Name: "narrative_guide", Type: field.TypeJSON, Nullable: true},
		{Name: "html", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"visualization_complete", "failed"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptLogsTable holds the schema information for the "prompt_logs" table.
	PromptLogsTable = &schema.Table{
		Name:       "prompt_logs",
		Columns:    PromptLogsColumns,
		PrimaryKey: []*schema.Column{PromptLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptLogsColumns[1], PromptLogsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PromptLogsTable,
	}
)

func init() {
}
