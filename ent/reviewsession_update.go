// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/versekeep/versekeep/ent/predicate"
	"github.com/versekeep/versekeep/ent/reviewsession"
)

// ReviewSessionUpdate is the builder for updating ReviewSession entities.
type ReviewSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewSessionMutation
}

// Where appends a list predicates to the ReviewSessionUpdate builder.
func (_u *ReviewSessionUpdate) Where(ps ...predicate.ReviewSession) *ReviewSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersesReviewed sets the "verses_reviewed" field.
func (_u *ReviewSessionUpdate) SetVersesReviewed(v int) *ReviewSessionUpdate {
	_u.mutation.ResetVersesReviewed()
	_u.mutation.SetVersesReviewed(v)
	return _u
}

// SetNillableVersesReviewed sets the "verses_reviewed" field if the given value is not nil.
func (_u *ReviewSessionUpdate) SetNillableVersesReviewed(v *int) *ReviewSessionUpdate {
	if v != nil {
		_u.SetVersesReviewed(*v)
	}
	return _u
}

// AddVersesReviewed adds value to the "verses_reviewed" field.
func (_u *ReviewSessionUpdate) AddVersesReviewed(v int) *ReviewSessionUpdate {
	_u.mutation.AddVersesReviewed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ReviewSessionUpdate) SetCorrectAnswers(v int) *ReviewSessionUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ReviewSessionUpdate) SetNillableCorrectAnswers(v *int) *ReviewSessionUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ReviewSessionUpdate) AddCorrectAnswers(v int) *ReviewSessionUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAverageQuality sets the "average_quality" field.
func (_u *ReviewSessionUpdate) SetAverageQuality(v float64) *ReviewSessionUpdate {
	_u.mutation.ResetAverageQuality()
	_u.mutation.SetAverageQuality(v)
	return _u
}

// SetNillableAverageQuality sets the "average_quality" field if the given value is not nil.
func (_u *ReviewSessionUpdate) SetNillableAverageQuality(v *float64) *ReviewSessionUpdate {
	if v != nil {
		_u.SetAverageQuality(*v)
	}
	return _u
}

// AddAverageQuality adds value to the "average_quality" field.
func (_u *ReviewSessionUpdate) AddAverageQuality(v float64) *ReviewSessionUpdate {
	_u.mutation.AddAverageQuality(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *ReviewSessionUpdate) SetTimeSpentMinutes(v float64) *ReviewSessionUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *ReviewSessionUpdate) SetNillableTimeSpentMinutes(v *float64) *ReviewSessionUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *ReviewSessionUpdate) AddTimeSpentMinutes(v float64) *ReviewSessionUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// Mutation returns the ReviewSessionMutation object of the builder.
func (_u *ReviewSessionUpdate) Mutation() *ReviewSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewSessionUpdate) check() error {
	if v, ok := _u.mutation.VersesReviewed(); ok {
		if err := reviewsession.VersesReviewedValidator(v); err != nil {
			return &ValidationError{Name: "verses_reviewed", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.verses_reviewed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := reviewsession.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewsession.Table, reviewsession.Columns, sqlgraph.NewFieldSpec(reviewsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VersesReviewed(); ok {
		_spec.SetField(reviewsession.FieldVersesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersesReviewed(); ok {
		_spec.AddField(reviewsession.FieldVersesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(reviewsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(reviewsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageQuality(); ok {
		_spec.SetField(reviewsession.FieldAverageQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageQuality(); ok {
		_spec.AddField(reviewsession.FieldAverageQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(reviewsession.FieldTimeSpentMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(reviewsession.FieldTimeSpentMinutes, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewSessionUpdateOne is the builder for updating a single ReviewSession entity.
type ReviewSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewSessionMutation
}

// SetVersesReviewed sets the "verses_reviewed" field.
func (_u *ReviewSessionUpdateOne) SetVersesReviewed(v int) *ReviewSessionUpdateOne {
	_u.mutation.ResetVersesReviewed()
	_u.mutation.SetVersesReviewed(v)
	return _u
}

// SetNillableVersesReviewed sets the "verses_reviewed" field if the given value is not nil.
func (_u *ReviewSessionUpdateOne) SetNillableVersesReviewed(v *int) *ReviewSessionUpdateOne {
	if v != nil {
		_u.SetVersesReviewed(*v)
	}
	return _u
}

// AddVersesReviewed adds value to the "verses_reviewed" field.
func (_u *ReviewSessionUpdateOne) AddVersesReviewed(v int) *ReviewSessionUpdateOne {
	_u.mutation.AddVersesReviewed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ReviewSessionUpdateOne) SetCorrectAnswers(v int) *ReviewSessionUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ReviewSessionUpdateOne) SetNillableCorrectAnswers(v *int) *ReviewSessionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ReviewSessionUpdateOne) AddCorrectAnswers(v int) *ReviewSessionUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAverageQuality sets the "average_quality" field.
func (_u *ReviewSessionUpdateOne) SetAverageQuality(v float64) *ReviewSessionUpdateOne {
	_u.mutation.ResetAverageQuality()
	_u.mutation.SetAverageQuality(v)
	return _u
}

// SetNillableAverageQuality sets the "average_quality" field if the given value is not nil.
func (_u *ReviewSessionUpdateOne) SetNillableAverageQuality(v *float64) *ReviewSessionUpdateOne {
	if v != nil {
		_u.SetAverageQuality(*v)
	}
	return _u
}

// AddAverageQuality adds value to the "average_quality" field.
func (_u *ReviewSessionUpdateOne) AddAverageQuality(v float64) *ReviewSessionUpdateOne {
	_u.mutation.AddAverageQuality(v)
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *ReviewSessionUpdateOne) SetTimeSpentMinutes(v float64) *ReviewSessionUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *ReviewSessionUpdateOne) SetNillableTimeSpentMinutes(v *float64) *ReviewSessionUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *ReviewSessionUpdateOne) AddTimeSpentMinutes(v float64) *ReviewSessionUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// Mutation returns the ReviewSessionMutation object of the builder.
func (_u *ReviewSessionUpdateOne) Mutation() *ReviewSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewSessionUpdate builder.
func (_u *ReviewSessionUpdateOne) Where(ps ...predicate.ReviewSession) *ReviewSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewSessionUpdateOne) Select(field string, fields ...string) *ReviewSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewSession entity.
func (_u *ReviewSessionUpdateOne) Save(ctx context.Context) (*ReviewSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewSessionUpdateOne) SaveX(ctx context.Context) *ReviewSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewSessionUpdateOne) check() error {
	if v, ok := _u.mutation.VersesReviewed(); ok {
		if err := reviewsession.VersesReviewedValidator(v); err != nil {
			return &ValidationError{Name: "verses_reviewed", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.verses_reviewed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := reviewsession.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewSessionUpdateOne) sqlSave(ctx context.Context) (_node *ReviewSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewsession.Table, reviewsession.Columns, sqlgraph.NewFieldSpec(reviewsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewsession.FieldID)
		for _, f := range fields {
			if !reviewsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewsession.FieldID {
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
	if value, ok := _u.mutation.VersesReviewed(); ok {
		_spec.SetField(reviewsession.FieldVersesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersesReviewed(); ok {
		_spec.AddField(reviewsession.FieldVersesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(reviewsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(reviewsession.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageQuality(); ok {
		_spec.SetField(reviewsession.FieldAverageQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageQuality(); ok {
		_spec.AddField(reviewsession.FieldAverageQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(reviewsession.FieldTimeSpentMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(reviewsession.FieldTimeSpentMinutes, field.TypeFloat64, value)
	}
	_node = &ReviewSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
