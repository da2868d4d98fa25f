// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReviewSessionsColumns holds the columns for the "review_sessions" table.
	ReviewSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "verses_reviewed", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "average_quality", Type: field.TypeFloat64, Default: 0},
		{Name: "time_spent_minutes", Type: field.TypeFloat64, Default: 0},
	}
	// ReviewSessionsTable holds the schema information for the "review_sessions" table.
	ReviewSessionsTable = &schema.Table{
		Name:       "review_sessions",
		Columns:    ReviewSessionsColumns,
		PrimaryKey: []*schema.Column{ReviewSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewsession_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewSessionsColumns[2]},
			},
		},
	}
	// VersesColumns holds the columns for the "verses" table.
	VersesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "verse_id", Type: field.TypeString, Unique: true},
		{Name: "book", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeInt},
		{Name: "verse_num", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "total_reviews", Type: field.TypeInt, Default: 0},
		{Name: "correct_reviews", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VersesTable holds the schema information for the "verses" table.
	VersesTable = &schema.Table{
		Name:       "verses",
		Columns:    VersesColumns,
		PrimaryKey: []*schema.Column{VersesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verse_verse_id",
				Unique:  false,
				Columns: []*schema.Column{VersesColumns[1]},
			},
			{
				Name:    "verse_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{VersesColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReviewSessionsTable,
		VersesTable,
	}
)

func init() {
}
