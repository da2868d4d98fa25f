package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Verse is a memorized verse together with its spaced repetition
// scheduling state. The scheduling columns are written only through
// the scheduler's transition; nothing else updates them.
type Verse struct {
	ent.Schema
}

func (Verse) Fields() []ent.Field {
	return []ent.Field{
		field.String("verse_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Opaque UUID assigned at creation"),
		field.String("book").
			NotEmpty().
			Comment("Book name, e.g. Psalms"),
		field.Int("chapter").
			Min(1),
		field.Int("verse_num").
			Min(1),
		field.Text("text").
			NotEmpty().
			Immutable().
			Comment("Canonical verse text"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("User-assigned tags"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease factor, floor 1.3"),
		field.Int("interval_days").
			Default(0).
			Min(0),
		field.Int("repetitions").
			Default(0).
			Min(0).
			Comment("Consecutive successful reviews since the last lapse"),
		field.Time("next_review_date").
			Comment("Verse is due when today >= this date"),
		field.Int("streak").
			Default(0).
			Min(0),
		field.Int("total_reviews").
			Default(0).
			Min(0),
		field.Int("correct_reviews").
			Default(0).
			Min(0),
		field.Time("last_reviewed_at").
			Optional().
			Nillable().
			Comment("Unset until the first review"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Verse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("verse_id"),
		index.Fields("next_review_date"),
	}
}
