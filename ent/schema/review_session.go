package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSession records the summary of one completed quiz session.
// Rows are append-only and never updated after creation.
type ReviewSession struct {
	ent.Schema
}

func (ReviewSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID assigned when the session starts"),
		field.Time("date").
			Default(time.Now).
			Immutable().
			Comment("Completion time of the session"),
		field.Int("verses_reviewed").
			Default(0).
			Min(0),
		field.Int("correct_answers").
			Default(0).
			Min(0),
		field.Float("average_quality").
			Default(0).
			Comment("Mean quality rating across the session, 0..5"),
		field.Float("time_spent_minutes").
			Default(0),
	}
}

func (ReviewSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
