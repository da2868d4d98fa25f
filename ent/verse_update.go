// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/versekeep/versekeep/ent/predicate"
	"github.com/versekeep/versekeep/ent/verse"
)

// VerseUpdate is the builder for updating Verse entities.
type VerseUpdate struct {
	config
	hooks    []Hook
	mutation *VerseMutation
}

// Where appends a list predicates to the VerseUpdate builder.
func (_u *VerseUpdate) Where(ps ...predicate.Verse) *VerseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBook sets the "book" field.
func (_u *VerseUpdate) SetBook(v string) *VerseUpdate {
	_u.mutation.SetBook(v)
	return _u
}

// SetNillableBook sets the "book" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableBook(v *string) *VerseUpdate {
	if v != nil {
		_u.SetBook(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *VerseUpdate) SetChapter(v int) *VerseUpdate {
	_u.mutation.ResetChapter()
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableChapter(v *int) *VerseUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// AddChapter adds value to the "chapter" field.
func (_u *VerseUpdate) AddChapter(v int) *VerseUpdate {
	_u.mutation.AddChapter(v)
	return _u
}

// SetVerseNum sets the "verse_num" field.
func (_u *VerseUpdate) SetVerseNum(v int) *VerseUpdate {
	_u.mutation.ResetVerseNum()
	_u.mutation.SetVerseNum(v)
	return _u
}

// SetNillableVerseNum sets the "verse_num" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableVerseNum(v *int) *VerseUpdate {
	if v != nil {
		_u.SetVerseNum(*v)
	}
	return _u
}

// AddVerseNum adds value to the "verse_num" field.
func (_u *VerseUpdate) AddVerseNum(v int) *VerseUpdate {
	_u.mutation.AddVerseNum(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *VerseUpdate) SetTags(v []string) *VerseUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *VerseUpdate) AppendTags(v []string) *VerseUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *VerseUpdate) ClearTags() *VerseUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *VerseUpdate) SetEaseFactor(v float64) *VerseUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableEaseFactor(v *float64) *VerseUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *VerseUpdate) AddEaseFactor(v float64) *VerseUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *VerseUpdate) SetIntervalDays(v int) *VerseUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableIntervalDays(v *int) *VerseUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *VerseUpdate) AddIntervalDays(v int) *VerseUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *VerseUpdate) SetRepetitions(v int) *VerseUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableRepetitions(v *int) *VerseUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *VerseUpdate) AddRepetitions(v int) *VerseUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *VerseUpdate) SetNextReviewDate(v time.Time) *VerseUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableNextReviewDate(v *time.Time) *VerseUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *VerseUpdate) SetStreak(v int) *VerseUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableStreak(v *int) *VerseUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *VerseUpdate) AddStreak(v int) *VerseUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *VerseUpdate) SetTotalReviews(v int) *VerseUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableTotalReviews(v *int) *VerseUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *VerseUpdate) AddTotalReviews(v int) *VerseUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *VerseUpdate) SetCorrectReviews(v int) *VerseUpdate {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableCorrectReviews(v *int) *VerseUpdate {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *VerseUpdate) AddCorrectReviews(v int) *VerseUpdate {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *VerseUpdate) SetLastReviewedAt(v time.Time) *VerseUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *VerseUpdate) SetNillableLastReviewedAt(v *time.Time) *VerseUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *VerseUpdate) ClearLastReviewedAt() *VerseUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the VerseMutation object of the builder.
func (_u *VerseUpdate) Mutation() *VerseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerseUpdate) check() error {
	if v, ok := _u.mutation.Book(); ok {
		if err := verse.BookValidator(v); err != nil {
			return &ValidationError{Name: "book", err: fmt.Errorf(`ent: validator failed for field "Verse.book": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chapter(); ok {
		if err := verse.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "Verse.chapter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerseNum(); ok {
		if err := verse.VerseNumValidator(v); err != nil {
			return &ValidationError{Name: "verse_num", err: fmt.Errorf(`ent: validator failed for field "Verse.verse_num": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := verse.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Verse.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := verse.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Verse.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := verse.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Verse.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReviews(); ok {
		if err := verse.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "Verse.total_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectReviews(); ok {
		if err := verse.CorrectReviewsValidator(v); err != nil {
			return &ValidationError{Name: "correct_reviews", err: fmt.Errorf(`ent: validator failed for field "Verse.correct_reviews": %w`, err)}
		}
	}
	return nil
}

func (_u *VerseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verse.Table, verse.Columns, sqlgraph.NewFieldSpec(verse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Book(); ok {
		_spec.SetField(verse.FieldBook, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(verse.FieldChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapter(); ok {
		_spec.AddField(verse.FieldChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerseNum(); ok {
		_spec.SetField(verse.FieldVerseNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerseNum(); ok {
		_spec.AddField(verse.FieldVerseNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(verse.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verse.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(verse.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(verse.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(verse.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(verse.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(verse.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(verse.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(verse.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(verse.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(verse.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(verse.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(verse.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(verse.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(verse.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(verse.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(verse.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(verse.FieldLastReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerseUpdateOne is the builder for updating a single Verse entity.
type VerseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerseMutation
}

// SetBook sets the "book" field.
func (_u *VerseUpdateOne) SetBook(v string) *VerseUpdateOne {
	_u.mutation.SetBook(v)
	return _u
}

// SetNillableBook sets the "book" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableBook(v *string) *VerseUpdateOne {
	if v != nil {
		_u.SetBook(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *VerseUpdateOne) SetChapter(v int) *VerseUpdateOne {
	_u.mutation.ResetChapter()
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableChapter(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// AddChapter adds value to the "chapter" field.
func (_u *VerseUpdateOne) AddChapter(v int) *VerseUpdateOne {
	_u.mutation.AddChapter(v)
	return _u
}

// SetVerseNum sets the "verse_num" field.
func (_u *VerseUpdateOne) SetVerseNum(v int) *VerseUpdateOne {
	_u.mutation.ResetVerseNum()
	_u.mutation.SetVerseNum(v)
	return _u
}

// SetNillableVerseNum sets the "verse_num" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableVerseNum(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetVerseNum(*v)
	}
	return _u
}

// AddVerseNum adds value to the "verse_num" field.
func (_u *VerseUpdateOne) AddVerseNum(v int) *VerseUpdateOne {
	_u.mutation.AddVerseNum(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *VerseUpdateOne) SetTags(v []string) *VerseUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *VerseUpdateOne) AppendTags(v []string) *VerseUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *VerseUpdateOne) ClearTags() *VerseUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *VerseUpdateOne) SetEaseFactor(v float64) *VerseUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableEaseFactor(v *float64) *VerseUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *VerseUpdateOne) AddEaseFactor(v float64) *VerseUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *VerseUpdateOne) SetIntervalDays(v int) *VerseUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableIntervalDays(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *VerseUpdateOne) AddIntervalDays(v int) *VerseUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *VerseUpdateOne) SetRepetitions(v int) *VerseUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableRepetitions(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *VerseUpdateOne) AddRepetitions(v int) *VerseUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *VerseUpdateOne) SetNextReviewDate(v time.Time) *VerseUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableNextReviewDate(v *time.Time) *VerseUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *VerseUpdateOne) SetStreak(v int) *VerseUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableStreak(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *VerseUpdateOne) AddStreak(v int) *VerseUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *VerseUpdateOne) SetTotalReviews(v int) *VerseUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableTotalReviews(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *VerseUpdateOne) AddTotalReviews(v int) *VerseUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *VerseUpdateOne) SetCorrectReviews(v int) *VerseUpdateOne {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableCorrectReviews(v *int) *VerseUpdateOne {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *VerseUpdateOne) AddCorrectReviews(v int) *VerseUpdateOne {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *VerseUpdateOne) SetLastReviewedAt(v time.Time) *VerseUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *VerseUpdateOne) SetNillableLastReviewedAt(v *time.Time) *VerseUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *VerseUpdateOne) ClearLastReviewedAt() *VerseUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// Mutation returns the VerseMutation object of the builder.
func (_u *VerseUpdateOne) Mutation() *VerseMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerseUpdate builder.
func (_u *VerseUpdateOne) Where(ps ...predicate.Verse) *VerseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerseUpdateOne) Select(field string, fields ...string) *VerseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verse entity.
func (_u *VerseUpdateOne) Save(ctx context.Context) (*Verse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerseUpdateOne) SaveX(ctx context.Context) *Verse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerseUpdateOne) check() error {
	if v, ok := _u.mutation.Book(); ok {
		if err := verse.BookValidator(v); err != nil {
			return &ValidationError{Name: "book", err: fmt.Errorf(`ent: validator failed for field "Verse.book": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chapter(); ok {
		if err := verse.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "Verse.chapter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerseNum(); ok {
		if err := verse.VerseNumValidator(v); err != nil {
			return &ValidationError{Name: "verse_num", err: fmt.Errorf(`ent: validator failed for field "Verse.verse_num": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := verse.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Verse.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := verse.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Verse.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Streak(); ok {
		if err := verse.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Verse.streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReviews(); ok {
		if err := verse.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "Verse.total_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectReviews(); ok {
		if err := verse.CorrectReviewsValidator(v); err != nil {
			return &ValidationError{Name: "correct_reviews", err: fmt.Errorf(`ent: validator failed for field "Verse.correct_reviews": %w`, err)}
		}
	}
	return nil
}

func (_u *VerseUpdateOne) sqlSave(ctx context.Context) (_node *Verse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verse.Table, verse.Columns, sqlgraph.NewFieldSpec(verse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verse.FieldID)
		for _, f := range fields {
			if !verse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verse.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Book(); ok {
		_spec.SetField(verse.FieldBook, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(verse.FieldChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapter(); ok {
		_spec.AddField(verse.FieldChapter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerseNum(); ok {
		_spec.SetField(verse.FieldVerseNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerseNum(); ok {
		_spec.AddField(verse.FieldVerseNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(verse.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verse.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(verse.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(verse.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(verse.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(verse.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(verse.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(verse.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(verse.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(verse.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(verse.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(verse.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(verse.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(verse.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(verse.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(verse.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(verse.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(verse.FieldLastReviewedAt, field.TypeTime)
	}
	_node = &Verse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
