// Code generated by ent, DO NOT EDIT.

package verse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/versekeep/versekeep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldID, id))
}

// VerseID applies equality check predicate on the "verse_id" field. It's identical to VerseIDEQ.
func VerseID(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldVerseID, v))
}

// Book applies equality check predicate on the "book" field. It's identical to BookEQ.
func Book(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldBook, v))
}

// Chapter applies equality check predicate on the "chapter" field. It's identical to ChapterEQ.
func Chapter(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldChapter, v))
}

// VerseNum applies equality check predicate on the "verse_num" field. It's identical to VerseNumEQ.
func VerseNum(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldVerseNum, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldText, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldRepetitions, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldNextReviewDate, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldStreak, v))
}

// TotalReviews applies equality check predicate on the "total_reviews" field. It's identical to TotalReviewsEQ.
func TotalReviews(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldTotalReviews, v))
}

// CorrectReviews applies equality check predicate on the "correct_reviews" field. It's identical to CorrectReviewsEQ.
func CorrectReviews(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldCorrectReviews, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldLastReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldCreatedAt, v))
}

// VerseIDEQ applies the EQ predicate on the "verse_id" field.
func VerseIDEQ(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldVerseID, v))
}

// VerseIDNEQ applies the NEQ predicate on the "verse_id" field.
func VerseIDNEQ(v string) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldVerseID, v))
}

// VerseIDIn applies the In predicate on the "verse_id" field.
func VerseIDIn(vs ...string) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldVerseID, vs...))
}

// VerseIDNotIn applies the NotIn predicate on the "verse_id" field.
func VerseIDNotIn(vs ...string) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldVerseID, vs...))
}

// VerseIDGT applies the GT predicate on the "verse_id" field.
func VerseIDGT(v string) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldVerseID, v))
}

// VerseIDGTE applies the GTE predicate on the "verse_id" field.
func VerseIDGTE(v string) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldVerseID, v))
}

// VerseIDLT applies the LT predicate on the "verse_id" field.
func VerseIDLT(v string) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldVerseID, v))
}

// VerseIDLTE applies the LTE predicate on the "verse_id" field.
func VerseIDLTE(v string) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldVerseID, v))
}

// VerseIDContains applies the Contains predicate on the "verse_id" field.
func VerseIDContains(v string) predicate.Verse {
	return predicate.Verse(sql.FieldContains(FieldVerseID, v))
}

// VerseIDHasPrefix applies the HasPrefix predicate on the "verse_id" field.
func VerseIDHasPrefix(v string) predicate.Verse {
	return predicate.Verse(sql.FieldHasPrefix(FieldVerseID, v))
}

// VerseIDHasSuffix applies the HasSuffix predicate on the "verse_id" field.
func VerseIDHasSuffix(v string) predicate.Verse {
	return predicate.Verse(sql.FieldHasSuffix(FieldVerseID, v))
}

// VerseIDEqualFold applies the EqualFold predicate on the "verse_id" field.
func VerseIDEqualFold(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEqualFold(FieldVerseID, v))
}

// VerseIDContainsFold applies the ContainsFold predicate on the "verse_id" field.
func VerseIDContainsFold(v string) predicate.Verse {
	return predicate.Verse(sql.FieldContainsFold(FieldVerseID, v))
}

// BookEQ applies the EQ predicate on the "book" field.
func BookEQ(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldBook, v))
}

// BookNEQ applies the NEQ predicate on the "book" field.
func BookNEQ(v string) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldBook, v))
}

// BookIn applies the In predicate on the "book" field.
func BookIn(vs ...string) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldBook, vs...))
}

// BookNotIn applies the NotIn predicate on the "book" field.
func BookNotIn(vs ...string) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldBook, vs...))
}

// BookGT applies the GT predicate on the "book" field.
func BookGT(v string) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldBook, v))
}

// BookGTE applies the GTE predicate on the "book" field.
func BookGTE(v string) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldBook, v))
}

// BookLT applies the LT predicate on the "book" field.
func BookLT(v string) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldBook, v))
}

// BookLTE applies the LTE predicate on the "book" field.
func BookLTE(v string) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldBook, v))
}

// BookContains applies the Contains predicate on the "book" field.
func BookContains(v string) predicate.Verse {
	return predicate.Verse(sql.FieldContains(FieldBook, v))
}

// BookHasPrefix applies the HasPrefix predicate on the "book" field.
func BookHasPrefix(v string) predicate.Verse {
	return predicate.Verse(sql.FieldHasPrefix(FieldBook, v))
}

// BookHasSuffix applies the HasSuffix predicate on the "book" field.
func BookHasSuffix(v string) predicate.Verse {
	return predicate.Verse(sql.FieldHasSuffix(FieldBook, v))
}

// BookEqualFold applies the EqualFold predicate on the "book" field.
func BookEqualFold(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEqualFold(FieldBook, v))
}

// BookContainsFold applies the ContainsFold predicate on the "book" field.
func BookContainsFold(v string) predicate.Verse {
	return predicate.Verse(sql.FieldContainsFold(FieldBook, v))
}

// ChapterEQ applies the EQ predicate on the "chapter" field.
func ChapterEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldChapter, v))
}

// ChapterNEQ applies the NEQ predicate on the "chapter" field.
func ChapterNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldChapter, v))
}

// ChapterIn applies the In predicate on the "chapter" field.
func ChapterIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldChapter, vs...))
}

// ChapterNotIn applies the NotIn predicate on the "chapter" field.
func ChapterNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldChapter, vs...))
}

// ChapterGT applies the GT predicate on the "chapter" field.
func ChapterGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldChapter, v))
}

// ChapterGTE applies the GTE predicate on the "chapter" field.
func ChapterGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldChapter, v))
}

// ChapterLT applies the LT predicate on the "chapter" field.
func ChapterLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldChapter, v))
}

// ChapterLTE applies the LTE predicate on the "chapter" field.
func ChapterLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldChapter, v))
}

// VerseNumEQ applies the EQ predicate on the "verse_num" field.
func VerseNumEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldVerseNum, v))
}

// VerseNumNEQ applies the NEQ predicate on the "verse_num" field.
func VerseNumNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldVerseNum, v))
}

// VerseNumIn applies the In predicate on the "verse_num" field.
func VerseNumIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldVerseNum, vs...))
}

// VerseNumNotIn applies the NotIn predicate on the "verse_num" field.
func VerseNumNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldVerseNum, vs...))
}

// VerseNumGT applies the GT predicate on the "verse_num" field.
func VerseNumGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldVerseNum, v))
}

// VerseNumGTE applies the GTE predicate on the "verse_num" field.
func VerseNumGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldVerseNum, v))
}

// VerseNumLT applies the LT predicate on the "verse_num" field.
func VerseNumLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldVerseNum, v))
}

// VerseNumLTE applies the LTE predicate on the "verse_num" field.
func VerseNumLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldVerseNum, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Verse {
	return predicate.Verse(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Verse {
	return predicate.Verse(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Verse {
	return predicate.Verse(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Verse {
	return predicate.Verse(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Verse {
	return predicate.Verse(sql.FieldContainsFold(FieldText, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Verse {
	return predicate.Verse(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Verse {
	return predicate.Verse(sql.FieldNotNull(FieldTags))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldRepetitions, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldNextReviewDate, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldStreak, v))
}

// TotalReviewsEQ applies the EQ predicate on the "total_reviews" field.
func TotalReviewsEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldTotalReviews, v))
}

// TotalReviewsNEQ applies the NEQ predicate on the "total_reviews" field.
func TotalReviewsNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldTotalReviews, v))
}

// TotalReviewsIn applies the In predicate on the "total_reviews" field.
func TotalReviewsIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldTotalReviews, vs...))
}

// TotalReviewsNotIn applies the NotIn predicate on the "total_reviews" field.
func TotalReviewsNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldTotalReviews, vs...))
}

// TotalReviewsGT applies the GT predicate on the "total_reviews" field.
func TotalReviewsGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldTotalReviews, v))
}

// TotalReviewsGTE applies the GTE predicate on the "total_reviews" field.
func TotalReviewsGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldTotalReviews, v))
}

// TotalReviewsLT applies the LT predicate on the "total_reviews" field.
func TotalReviewsLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldTotalReviews, v))
}

// TotalReviewsLTE applies the LTE predicate on the "total_reviews" field.
func TotalReviewsLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldTotalReviews, v))
}

// CorrectReviewsEQ applies the EQ predicate on the "correct_reviews" field.
func CorrectReviewsEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldCorrectReviews, v))
}

// CorrectReviewsNEQ applies the NEQ predicate on the "correct_reviews" field.
func CorrectReviewsNEQ(v int) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldCorrectReviews, v))
}

// CorrectReviewsIn applies the In predicate on the "correct_reviews" field.
func CorrectReviewsIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldCorrectReviews, vs...))
}

// CorrectReviewsNotIn applies the NotIn predicate on the "correct_reviews" field.
func CorrectReviewsNotIn(vs ...int) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldCorrectReviews, vs...))
}

// CorrectReviewsGT applies the GT predicate on the "correct_reviews" field.
func CorrectReviewsGT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldCorrectReviews, v))
}

// CorrectReviewsGTE applies the GTE predicate on the "correct_reviews" field.
func CorrectReviewsGTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldCorrectReviews, v))
}

// CorrectReviewsLT applies the LT predicate on the "correct_reviews" field.
func CorrectReviewsLT(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldCorrectReviews, v))
}

// CorrectReviewsLTE applies the LTE predicate on the "correct_reviews" field.
func CorrectReviewsLTE(v int) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldCorrectReviews, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.Verse {
	return predicate.Verse(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.Verse {
	return predicate.Verse(sql.FieldNotNull(FieldLastReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Verse {
	return predicate.Verse(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verse) predicate.Verse {
	return predicate.Verse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verse) predicate.Verse {
	return predicate.Verse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verse) predicate.Verse {
	return predicate.Verse(sql.NotPredicates(p))
}
