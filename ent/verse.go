// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/versekeep/versekeep/ent/verse"
)

// Verse is the model entity for the Verse schema.
type Verse struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque UUID assigned at creation
	VerseID string `json:"verse_id,omitempty"`
	// Book name, e.g. Psalms
	Book string `json:"book,omitempty"`
	// Chapter holds the value of the "chapter" field.
	Chapter int `json:"chapter,omitempty"`
	// VerseNum holds the value of the "verse_num" field.
	VerseNum int `json:"verse_num,omitempty"`
	// Canonical verse text
	Text string `json:"text,omitempty"`
	// User-assigned tags
	Tags []string `json:"tags,omitempty"`
	// SM-2 ease factor, floor 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// Consecutive successful reviews since the last lapse
	Repetitions int `json:"repetitions,omitempty"`
	// Verse is due when today >= this date
	NextReviewDate time.Time `json:"next_review_date,omitempty"`
	// Streak holds the value of the "streak" field.
	Streak int `json:"streak,omitempty"`
	// TotalReviews holds the value of the "total_reviews" field.
	TotalReviews int `json:"total_reviews,omitempty"`
	// CorrectReviews holds the value of the "correct_reviews" field.
	CorrectReviews int `json:"correct_reviews,omitempty"`
	// Unset until the first review
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verse.FieldTags:
			values[i] = new([]byte)
		case verse.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case verse.FieldID, verse.FieldChapter, verse.FieldVerseNum, verse.FieldIntervalDays, verse.FieldRepetitions, verse.FieldStreak, verse.FieldTotalReviews, verse.FieldCorrectReviews:
			values[i] = new(sql.NullInt64)
		case verse.FieldVerseID, verse.FieldBook, verse.FieldText:
			values[i] = new(sql.NullString)
		case verse.FieldNextReviewDate, verse.FieldLastReviewedAt, verse.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verse fields.
func (_m *Verse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verse.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case verse.FieldVerseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verse_id", values[i])
			} else if value.Valid {
				_m.VerseID = value.String
			}
		case verse.FieldBook:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field book", values[i])
			} else if value.Valid {
				_m.Book = value.String
			}
		case verse.FieldChapter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter", values[i])
			} else if value.Valid {
				_m.Chapter = int(value.Int64)
			}
		case verse.FieldVerseNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verse_num", values[i])
			} else if value.Valid {
				_m.VerseNum = int(value.Int64)
			}
		case verse.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case verse.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case verse.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case verse.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case verse.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case verse.FieldNextReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_date", values[i])
			} else if value.Valid {
				_m.NextReviewDate = value.Time
			}
		case verse.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case verse.FieldTotalReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_reviews", values[i])
			} else if value.Valid {
				_m.TotalReviews = int(value.Int64)
			}
		case verse.FieldCorrectReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_reviews", values[i])
			} else if value.Valid {
				_m.CorrectReviews = int(value.Int64)
			}
		case verse.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case verse.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Verse.
// This includes values selected through modifiers, order, etc.
func (_m *Verse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Verse.
// Note that you need to call Verse.Unwrap() before calling this method if this Verse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verse) Update() *VerseUpdateOne {
	return NewVerseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verse) Unwrap() *Verse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verse) String() string {
	var builder strings.Builder
	builder.WriteString("Verse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("verse_id=")
	builder.WriteString(_m.VerseID)
	builder.WriteString(", ")
	builder.WriteString("book=")
	builder.WriteString(_m.Book)
	builder.WriteString(", ")
	builder.WriteString("chapter=")
	builder.WriteString(fmt.Sprintf("%v", _m.Chapter))
	builder.WriteString(", ")
	builder.WriteString("verse_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerseNum))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("next_review_date=")
	builder.WriteString(_m.NextReviewDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("total_reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalReviews))
	builder.WriteString(", ")
	builder.WriteString("correct_reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectReviews))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Verses is a parsable slice of Verse.
type Verses []*Verse
