// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/versekeep/versekeep/ent/reviewsession"
)

// ReviewSession is the model entity for the ReviewSession schema.
type ReviewSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned when the session starts
	SessionID string `json:"session_id,omitempty"`
	// Completion time of the session
	Date time.Time `json:"date,omitempty"`
	// VersesReviewed holds the value of the "verses_reviewed" field.
	VersesReviewed int `json:"verses_reviewed,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Mean quality rating across the session, 0..5
	AverageQuality float64 `json:"average_quality,omitempty"`
	// TimeSpentMinutes holds the value of the "time_spent_minutes" field.
	TimeSpentMinutes float64 `json:"time_spent_minutes,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewsession.FieldAverageQuality, reviewsession.FieldTimeSpentMinutes:
			values[i] = new(sql.NullFloat64)
		case reviewsession.FieldID, reviewsession.FieldVersesReviewed, reviewsession.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case reviewsession.FieldSessionID:
			values[i] = new(sql.NullString)
		case reviewsession.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewSession fields.
func (_m *ReviewSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case reviewsession.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case reviewsession.FieldVersesReviewed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verses_reviewed", values[i])
			} else if value.Valid {
				_m.VersesReviewed = int(value.Int64)
			}
		case reviewsession.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case reviewsession.FieldAverageQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_quality", values[i])
			} else if value.Valid {
				_m.AverageQuality = value.Float64
			}
		case reviewsession.FieldTimeSpentMinutes:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_minutes", values[i])
			} else if value.Valid {
				_m.TimeSpentMinutes = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewSession.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewSession.
// Note that you need to call ReviewSession.Unwrap() before calling this method if this ReviewSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewSession) Update() *ReviewSessionUpdateOne {
	return NewReviewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewSession) Unwrap() *ReviewSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewSession) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("verses_reviewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersesReviewed))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("average_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageQuality))
	builder.WriteString(", ")
	builder.WriteString("time_spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMinutes))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewSessions is a parsable slice of ReviewSession.
type ReviewSessions []*ReviewSession
