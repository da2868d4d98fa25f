// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/versekeep/versekeep/ent/reviewsession"
)

// ReviewSessionCreate is the builder for creating a ReviewSession entity.
type ReviewSessionCreate struct {
	config
	mutation *ReviewSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewSessionCreate) SetSessionID(v string) *ReviewSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *ReviewSessionCreate) SetDate(v time.Time) *ReviewSessionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *ReviewSessionCreate) SetNillableDate(v *time.Time) *ReviewSessionCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetVersesReviewed sets the "verses_reviewed" field.
func (_c *ReviewSessionCreate) SetVersesReviewed(v int) *ReviewSessionCreate {
	_c.mutation.SetVersesReviewed(v)
	return _c
}

// SetNillableVersesReviewed sets the "verses_reviewed" field if the given value is not nil.
func (_c *ReviewSessionCreate) SetNillableVersesReviewed(v *int) *ReviewSessionCreate {
	if v != nil {
		_c.SetVersesReviewed(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ReviewSessionCreate) SetCorrectAnswers(v int) *ReviewSessionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ReviewSessionCreate) SetNillableCorrectAnswers(v *int) *ReviewSessionCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetAverageQuality sets the "average_quality" field.
func (_c *ReviewSessionCreate) SetAverageQuality(v float64) *ReviewSessionCreate {
	_c.mutation.SetAverageQuality(v)
	return _c
}

// SetNillableAverageQuality sets the "average_quality" field if the given value is not nil.
func (_c *ReviewSessionCreate) SetNillableAverageQuality(v *float64) *ReviewSessionCreate {
	if v != nil {
		_c.SetAverageQuality(*v)
	}
	return _c
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_c *ReviewSessionCreate) SetTimeSpentMinutes(v float64) *ReviewSessionCreate {
	_c.mutation.SetTimeSpentMinutes(v)
	return _c
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_c *ReviewSessionCreate) SetNillableTimeSpentMinutes(v *float64) *ReviewSessionCreate {
	if v != nil {
		_c.SetTimeSpentMinutes(*v)
	}
	return _c
}

// Mutation returns the ReviewSessionMutation object of the builder.
func (_c *ReviewSessionCreate) Mutation() *ReviewSessionMutation {
	return _c.mutation
}

// Save creates the ReviewSession in the database.
func (_c *ReviewSessionCreate) Save(ctx context.Context) (*ReviewSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewSessionCreate) SaveX(ctx context.Context) *ReviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewSessionCreate) defaults() {
	if _, ok := _c.mutation.Date(); !ok {
		v := reviewsession.DefaultDate()
		_c.mutation.SetDate(v)
	}
	if _, ok := _c.mutation.VersesReviewed(); !ok {
		v := reviewsession.DefaultVersesReviewed
		_c.mutation.SetVersesReviewed(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := reviewsession.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.AverageQuality(); !ok {
		v := reviewsession.DefaultAverageQuality
		_c.mutation.SetAverageQuality(v)
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		v := reviewsession.DefaultTimeSpentMinutes
		_c.mutation.SetTimeSpentMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReviewSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reviewsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "ReviewSession.date"`)}
	}
	if _, ok := _c.mutation.VersesReviewed(); !ok {
		return &ValidationError{Name: "verses_reviewed", err: errors.New(`ent: missing required field "ReviewSession.verses_reviewed"`)}
	}
	if v, ok := _c.mutation.VersesReviewed(); ok {
		if err := reviewsession.VersesReviewedValidator(v); err != nil {
			return &ValidationError{Name: "verses_reviewed", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.verses_reviewed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "ReviewSession.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := reviewsession.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "ReviewSession.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AverageQuality(); !ok {
		return &ValidationError{Name: "average_quality", err: errors.New(`ent: missing required field "ReviewSession.average_quality"`)}
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "ReviewSession.time_spent_minutes"`)}
	}
	return nil
}

func (_c *ReviewSessionCreate) sqlSave(ctx context.Context) (*ReviewSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewSessionCreate) createSpec() (*ReviewSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewsession.Table, sqlgraph.NewFieldSpec(reviewsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reviewsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(reviewsession.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.VersesReviewed(); ok {
		_spec.SetField(reviewsession.FieldVersesReviewed, field.TypeInt, value)
		_node.VersesReviewed = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(reviewsession.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.AverageQuality(); ok {
		_spec.SetField(reviewsession.FieldAverageQuality, field.TypeFloat64, value)
		_node.AverageQuality = value
	}
	if value, ok := _c.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(reviewsession.FieldTimeSpentMinutes, field.TypeFloat64, value)
		_node.TimeSpentMinutes = value
	}
	return _node, _spec
}

// ReviewSessionCreateBulk is the builder for creating many ReviewSession entities in bulk.
type ReviewSessionCreateBulk struct {
	config
	err      error
	builders []*ReviewSessionCreate
}

// Save creates the ReviewSession entities in the database.
func (_c *ReviewSessionCreateBulk) Save(ctx context.Context) ([]*ReviewSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewSessionCreateBulk) SaveX(ctx context.Context) []*ReviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
