// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/versekeep/versekeep/ent/reviewsession"
	"github.com/versekeep/versekeep/ent/schema"
	"github.com/versekeep/versekeep/ent/verse"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	reviewsessionFields := schema.ReviewSession{}.Fields()
	_ = reviewsessionFields
	// reviewsessionDescSessionID is the schema descriptor for session_id field.
	reviewsessionDescSessionID := reviewsessionFields[0].Descriptor()
	// reviewsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewsession.SessionIDValidator = reviewsessionDescSessionID.Validators[0].(func(string) error)
	// reviewsessionDescDate is the schema descriptor for date field.
	reviewsessionDescDate := reviewsessionFields[1].Descriptor()
	// reviewsession.DefaultDate holds the default value on creation for the date field.
	reviewsession.DefaultDate = reviewsessionDescDate.Default.(func() time.Time)
	// reviewsessionDescVersesReviewed is the schema descriptor for verses_reviewed field.
	reviewsessionDescVersesReviewed := reviewsessionFields[2].Descriptor()
	// reviewsession.DefaultVersesReviewed holds the default value on creation for the verses_reviewed field.
	reviewsession.DefaultVersesReviewed = reviewsessionDescVersesReviewed.Default.(int)
	// reviewsession.VersesReviewedValidator is a validator for the "verses_reviewed" field. It is called by the builders before save.
	reviewsession.VersesReviewedValidator = reviewsessionDescVersesReviewed.Validators[0].(func(int) error)
	// reviewsessionDescCorrectAnswers is the schema descriptor for correct_answers field.
	reviewsessionDescCorrectAnswers := reviewsessionFields[3].Descriptor()
	// reviewsession.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	reviewsession.DefaultCorrectAnswers = reviewsessionDescCorrectAnswers.Default.(int)
	// reviewsession.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	reviewsession.CorrectAnswersValidator = reviewsessionDescCorrectAnswers.Validators[0].(func(int) error)
	// reviewsessionDescAverageQuality is the schema descriptor for average_quality field.
	reviewsessionDescAverageQuality := reviewsessionFields[4].Descriptor()
	// reviewsession.DefaultAverageQuality holds the default value on creation for the average_quality field.
	reviewsession.DefaultAverageQuality = reviewsessionDescAverageQuality.Default.(float64)
	// reviewsessionDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	reviewsessionDescTimeSpentMinutes := reviewsessionFields[5].Descriptor()
	// reviewsession.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	reviewsession.DefaultTimeSpentMinutes = reviewsessionDescTimeSpentMinutes.Default.(float64)
	verseFields := schema.Verse{}.Fields()
	_ = verseFields
	// verseDescVerseID is the schema descriptor for verse_id field.
	verseDescVerseID := verseFields[0].Descriptor()
	// verse.VerseIDValidator is a validator for the "verse_id" field. It is called by the builders before save.
	verse.VerseIDValidator = verseDescVerseID.Validators[0].(func(string) error)
	// verseDescBook is the schema descriptor for book field.
	verseDescBook := verseFields[1].Descriptor()
	// verse.BookValidator is a validator for the "book" field. It is called by the builders before save.
	verse.BookValidator = verseDescBook.Validators[0].(func(string) error)
	// verseDescChapter is the schema descriptor for chapter field.
	verseDescChapter := verseFields[2].Descriptor()
	// verse.ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	verse.ChapterValidator = verseDescChapter.Validators[0].(func(int) error)
	// verseDescVerseNum is the schema descriptor for verse_num field.
	verseDescVerseNum := verseFields[3].Descriptor()
	// verse.VerseNumValidator is a validator for the "verse_num" field. It is called by the builders before save.
	verse.VerseNumValidator = verseDescVerseNum.Validators[0].(func(int) error)
	// verseDescText is the schema descriptor for text field.
	verseDescText := verseFields[4].Descriptor()
	// verse.TextValidator is a validator for the "text" field. It is called by the builders before save.
	verse.TextValidator = verseDescText.Validators[0].(func(string) error)
	// verseDescEaseFactor is the schema descriptor for ease_factor field.
	verseDescEaseFactor := verseFields[6].Descriptor()
	// verse.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	verse.DefaultEaseFactor = verseDescEaseFactor.Default.(float64)
	// verseDescIntervalDays is the schema descriptor for interval_days field.
	verseDescIntervalDays := verseFields[7].Descriptor()
	// verse.DefaultIntervalDays holds the default value on creation for the interval_days field.
	verse.DefaultIntervalDays = verseDescIntervalDays.Default.(int)
	// verse.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	verse.IntervalDaysValidator = verseDescIntervalDays.Validators[0].(func(int) error)
	// verseDescRepetitions is the schema descriptor for repetitions field.
	verseDescRepetitions := verseFields[8].Descriptor()
	// verse.DefaultRepetitions holds the default value on creation for the repetitions field.
	verse.DefaultRepetitions = verseDescRepetitions.Default.(int)
	// verse.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	verse.RepetitionsValidator = verseDescRepetitions.Validators[0].(func(int) error)
	// verseDescStreak is the schema descriptor for streak field.
	verseDescStreak := verseFields[10].Descriptor()
	// verse.DefaultStreak holds the default value on creation for the streak field.
	verse.DefaultStreak = verseDescStreak.Default.(int)
	// verse.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	verse.StreakValidator = verseDescStreak.Validators[0].(func(int) error)
	// verseDescTotalReviews is the schema descriptor for total_reviews field.
	verseDescTotalReviews := verseFields[11].Descriptor()
	// verse.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	verse.DefaultTotalReviews = verseDescTotalReviews.Default.(int)
	// verse.TotalReviewsValidator is a validator for the "total_reviews" field. It is called by the builders before save.
	verse.TotalReviewsValidator = verseDescTotalReviews.Validators[0].(func(int) error)
	// verseDescCorrectReviews is the schema descriptor for correct_reviews field.
	verseDescCorrectReviews := verseFields[12].Descriptor()
	// verse.DefaultCorrectReviews holds the default value on creation for the correct_reviews field.
	verse.DefaultCorrectReviews = verseDescCorrectReviews.Default.(int)
	// verse.CorrectReviewsValidator is a validator for the "correct_reviews" field. It is called by the builders before save.
	verse.CorrectReviewsValidator = verseDescCorrectReviews.Validators[0].(func(int) error)
	// verseDescCreatedAt is the schema descriptor for created_at field.
	verseDescCreatedAt := verseFields[14].Descriptor()
	// verse.DefaultCreatedAt holds the default value on creation for the created_at field.
	verse.DefaultCreatedAt = verseDescCreatedAt.Default.(func() time.Time)
}
