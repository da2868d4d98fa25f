// Code generated by ent, DO NOT EDIT.

package reviewsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewsession type in the database.
	Label = "review_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldVersesReviewed holds the string denoting the verses_reviewed field in the database.
	FieldVersesReviewed = "verses_reviewed"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldAverageQuality holds the string denoting the average_quality field in the database.
	FieldAverageQuality = "average_quality"
	// FieldTimeSpentMinutes holds the string denoting the time_spent_minutes field in the database.
	FieldTimeSpentMinutes = "time_spent_minutes"
	// Table holds the table name of the reviewsession in the database.
	Table = "review_sessions"
)

// Columns holds all SQL columns for reviewsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldDate,
	FieldVersesReviewed,
	FieldCorrectAnswers,
	FieldAverageQuality,
	FieldTimeSpentMinutes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultDate holds the default value on creation for the "date" field.
	DefaultDate func() time.Time
	// DefaultVersesReviewed holds the default value on creation for the "verses_reviewed" field.
	DefaultVersesReviewed int
	// VersesReviewedValidator is a validator for the "verses_reviewed" field. It is called by the builders before save.
	VersesReviewedValidator func(int) error
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	CorrectAnswersValidator func(int) error
	// DefaultAverageQuality holds the default value on creation for the "average_quality" field.
	DefaultAverageQuality float64
	// DefaultTimeSpentMinutes holds the default value on creation for the "time_spent_minutes" field.
	DefaultTimeSpentMinutes float64
)

// OrderOption defines the ordering options for the ReviewSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByVersesReviewed orders the results by the verses_reviewed field.
func ByVersesReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersesReviewed, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByAverageQuality orders the results by the average_quality field.
func ByAverageQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageQuality, opts...).ToFunc()
}

// ByTimeSpentMinutes orders the results by the time_spent_minutes field.
func ByTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMinutes, opts...).ToFunc()
}
