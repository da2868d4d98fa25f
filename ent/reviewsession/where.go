// Code generated by ent, DO NOT EDIT.

package reviewsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/versekeep/versekeep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldSessionID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldDate, v))
}

// VersesReviewed applies equality check predicate on the "verses_reviewed" field. It's identical to VersesReviewedEQ.
func VersesReviewed(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldVersesReviewed, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// AverageQuality applies equality check predicate on the "average_quality" field. It's identical to AverageQualityEQ.
func AverageQuality(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldAverageQuality, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldContainsFold(FieldSessionID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldDate, v))
}

// VersesReviewedEQ applies the EQ predicate on the "verses_reviewed" field.
func VersesReviewedEQ(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldVersesReviewed, v))
}

// VersesReviewedNEQ applies the NEQ predicate on the "verses_reviewed" field.
func VersesReviewedNEQ(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldVersesReviewed, v))
}

// VersesReviewedIn applies the In predicate on the "verses_reviewed" field.
func VersesReviewedIn(vs ...int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldVersesReviewed, vs...))
}

// VersesReviewedNotIn applies the NotIn predicate on the "verses_reviewed" field.
func VersesReviewedNotIn(vs ...int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldVersesReviewed, vs...))
}

// VersesReviewedGT applies the GT predicate on the "verses_reviewed" field.
func VersesReviewedGT(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldVersesReviewed, v))
}

// VersesReviewedGTE applies the GTE predicate on the "verses_reviewed" field.
func VersesReviewedGTE(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldVersesReviewed, v))
}

// VersesReviewedLT applies the LT predicate on the "verses_reviewed" field.
func VersesReviewedLT(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldVersesReviewed, v))
}

// VersesReviewedLTE applies the LTE predicate on the "verses_reviewed" field.
func VersesReviewedLTE(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldVersesReviewed, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldCorrectAnswers, v))
}

// AverageQualityEQ applies the EQ predicate on the "average_quality" field.
func AverageQualityEQ(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldAverageQuality, v))
}

// AverageQualityNEQ applies the NEQ predicate on the "average_quality" field.
func AverageQualityNEQ(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldAverageQuality, v))
}

// AverageQualityIn applies the In predicate on the "average_quality" field.
func AverageQualityIn(vs ...float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldAverageQuality, vs...))
}

// AverageQualityNotIn applies the NotIn predicate on the "average_quality" field.
func AverageQualityNotIn(vs ...float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldAverageQuality, vs...))
}

// AverageQualityGT applies the GT predicate on the "average_quality" field.
func AverageQualityGT(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldAverageQuality, v))
}

// AverageQualityGTE applies the GTE predicate on the "average_quality" field.
func AverageQualityGTE(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldAverageQuality, v))
}

// AverageQualityLT applies the LT predicate on the "average_quality" field.
func AverageQualityLT(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldAverageQuality, v))
}

// AverageQualityLTE applies the LTE predicate on the "average_quality" field.
func AverageQualityLTE(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldAverageQuality, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v float64) predicate.ReviewSession {
	return predicate.ReviewSession(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewSession) predicate.ReviewSession {
	return predicate.ReviewSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewSession) predicate.ReviewSession {
	return predicate.ReviewSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewSession) predicate.ReviewSession {
	return predicate.ReviewSession(sql.NotPredicates(p))
}
