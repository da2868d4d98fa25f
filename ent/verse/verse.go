// Code generated by ent, DO NOT EDIT.

package verse

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the verse type in the database.
	Label = "verse"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVerseID holds the string denoting the verse_id field in the database.
	FieldVerseID = "verse_id"
	// FieldBook holds the string denoting the book field in the database.
	FieldBook = "book"
	// FieldChapter holds the string denoting the chapter field in the database.
	FieldChapter = "chapter"
	// FieldVerseNum holds the string denoting the verse_num field in the database.
	FieldVerseNum = "verse_num"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldNextReviewDate holds the string denoting the next_review_date field in the database.
	FieldNextReviewDate = "next_review_date"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldTotalReviews holds the string denoting the total_reviews field in the database.
	FieldTotalReviews = "total_reviews"
	// FieldCorrectReviews holds the string denoting the correct_reviews field in the database.
	FieldCorrectReviews = "correct_reviews"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the verse in the database.
	Table = "verses"
)

// Columns holds all SQL columns for verse fields.
var Columns = []string{
	FieldID,
	FieldVerseID,
	FieldBook,
	FieldChapter,
	FieldVerseNum,
	FieldText,
	FieldTags,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldRepetitions,
	FieldNextReviewDate,
	FieldStreak,
	FieldTotalReviews,
	FieldCorrectReviews,
	FieldLastReviewedAt,
	FieldCreatedAt,
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
	// VerseIDValidator is a validator for the "verse_id" field. It is called by the builders before save.
	VerseIDValidator func(string) error
	// BookValidator is a validator for the "book" field. It is called by the builders before save.
	BookValidator func(string) error
	// ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	ChapterValidator func(int) error
	// VerseNumValidator is a validator for the "verse_num" field. It is called by the builders before save.
	VerseNumValidator func(int) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// DefaultTotalReviews holds the default value on creation for the "total_reviews" field.
	DefaultTotalReviews int
	// TotalReviewsValidator is a validator for the "total_reviews" field. It is called by the builders before save.
	TotalReviewsValidator func(int) error
	// DefaultCorrectReviews holds the default value on creation for the "correct_reviews" field.
	DefaultCorrectReviews int
	// CorrectReviewsValidator is a validator for the "correct_reviews" field. It is called by the builders before save.
	CorrectReviewsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Verse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVerseID orders the results by the verse_id field.
func ByVerseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerseID, opts...).ToFunc()
}

// ByBook orders the results by the book field.
func ByBook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBook, opts...).ToFunc()
}

// ByChapter orders the results by the chapter field.
func ByChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapter, opts...).ToFunc()
}

// ByVerseNum orders the results by the verse_num field.
func ByVerseNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerseNum, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByNextReviewDate orders the results by the next_review_date field.
func ByNextReviewDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewDate, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByTotalReviews orders the results by the total_reviews field.
func ByTotalReviews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalReviews, opts...).ToFunc()
}

// ByCorrectReviews orders the results by the correct_reviews field.
func ByCorrectReviews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectReviews, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
