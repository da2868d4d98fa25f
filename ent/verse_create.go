// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/versekeep/versekeep/ent/verse"
)

// VerseCreate is the builder for creating a Verse entity.
type VerseCreate struct {
	config
	mutation *VerseMutation
	hooks    []Hook
}

// SetVerseID sets the "verse_id" field.
func (_c *VerseCreate) SetVerseID(v string) *VerseCreate {
	_c.mutation.SetVerseID(v)
	return _c
}

// SetBook sets the "book" field.
func (_c *VerseCreate) SetBook(v string) *VerseCreate {
	_c.mutation.SetBook(v)
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *VerseCreate) SetChapter(v int) *VerseCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetVerseNum sets the "verse_num" field.
func (_c *VerseCreate) SetVerseNum(v int) *VerseCreate {
	_c.mutation.SetVerseNum(v)
	return _c
}

// SetText sets the "text" field.
func (_c *VerseCreate) SetText(v string) *VerseCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *VerseCreate) SetTags(v []string) *VerseCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *VerseCreate) SetEaseFactor(v float64) *VerseCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *VerseCreate) SetNillableEaseFactor(v *float64) *VerseCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *VerseCreate) SetIntervalDays(v int) *VerseCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *VerseCreate) SetNillableIntervalDays(v *int) *VerseCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *VerseCreate) SetRepetitions(v int) *VerseCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *VerseCreate) SetNillableRepetitions(v *int) *VerseCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetNextReviewDate sets the "next_review_date" field.
func (_c *VerseCreate) SetNextReviewDate(v time.Time) *VerseCreate {
	_c.mutation.SetNextReviewDate(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *VerseCreate) SetStreak(v int) *VerseCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *VerseCreate) SetNillableStreak(v *int) *VerseCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetTotalReviews sets the "total_reviews" field.
func (_c *VerseCreate) SetTotalReviews(v int) *VerseCreate {
	_c.mutation.SetTotalReviews(v)
	return _c
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_c *VerseCreate) SetNillableTotalReviews(v *int) *VerseCreate {
	if v != nil {
		_c.SetTotalReviews(*v)
	}
	return _c
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_c *VerseCreate) SetCorrectReviews(v int) *VerseCreate {
	_c.mutation.SetCorrectReviews(v)
	return _c
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_c *VerseCreate) SetNillableCorrectReviews(v *int) *VerseCreate {
	if v != nil {
		_c.SetCorrectReviews(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *VerseCreate) SetLastReviewedAt(v time.Time) *VerseCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *VerseCreate) SetNillableLastReviewedAt(v *time.Time) *VerseCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerseCreate) SetCreatedAt(v time.Time) *VerseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerseCreate) SetNillableCreatedAt(v *time.Time) *VerseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the VerseMutation object of the builder.
func (_c *VerseCreate) Mutation() *VerseMutation {
	return _c.mutation
}

// Save creates the Verse in the database.
func (_c *VerseCreate) Save(ctx context.Context) (*Verse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerseCreate) SaveX(ctx context.Context) *Verse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerseCreate) defaults() {
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := verse.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := verse.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := verse.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := verse.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		v := verse.DefaultTotalReviews
		_c.mutation.SetTotalReviews(v)
	}
	if _, ok := _c.mutation.CorrectReviews(); !ok {
		v := verse.DefaultCorrectReviews
		_c.mutation.SetCorrectReviews(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerseCreate) check() error {
	if _, ok := _c.mutation.VerseID(); !ok {
		return &ValidationError{Name: "verse_id", err: errors.New(`ent: missing required field "Verse.verse_id"`)}
	}
	if v, ok := _c.mutation.VerseID(); ok {
		if err := verse.VerseIDValidator(v); err != nil {
			return &ValidationError{Name: "verse_id", err: fmt.Errorf(`ent: validator failed for field "Verse.verse_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Book(); !ok {
		return &ValidationError{Name: "book", err: errors.New(`ent: missing required field "Verse.book"`)}
	}
	if v, ok := _c.mutation.Book(); ok {
		if err := verse.BookValidator(v); err != nil {
			return &ValidationError{Name: "book", err: fmt.Errorf(`ent: validator failed for field "Verse.book": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required field "Verse.chapter"`)}
	}
	if v, ok := _c.mutation.Chapter(); ok {
		if err := verse.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "Verse.chapter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerseNum(); !ok {
		return &ValidationError{Name: "verse_num", err: errors.New(`ent: missing required field "Verse.verse_num"`)}
	}
	if v, ok := _c.mutation.VerseNum(); ok {
		if err := verse.VerseNumValidator(v); err != nil {
			return &ValidationError{Name: "verse_num", err: fmt.Errorf(`ent: validator failed for field "Verse.verse_num": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Verse.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := verse.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Verse.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Verse.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Verse.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := verse.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Verse.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Verse.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := verse.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Verse.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "Verse.next_review_date"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Verse.streak"`)}
	}
	if v, ok := _c.mutation.Streak(); ok {
		if err := verse.StreakValidator(v); err != nil {
			return &ValidationError{Name: "streak", err: fmt.Errorf(`ent: validator failed for field "Verse.streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		return &ValidationError{Name: "total_reviews", err: errors.New(`ent: missing required field "Verse.total_reviews"`)}
	}
	if v, ok := _c.mutation.TotalReviews(); ok {
		if err := verse.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "Verse.total_reviews": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectReviews(); !ok {
		return &ValidationError{Name: "correct_reviews", err: errors.New(`ent: missing required field "Verse.correct_reviews"`)}
	}
	if v, ok := _c.mutation.CorrectReviews(); ok {
		if err := verse.CorrectReviewsValidator(v); err != nil {
			return &ValidationError{Name: "correct_reviews", err: fmt.Errorf(`ent: validator failed for field "Verse.correct_reviews": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Verse.created_at"`)}
	}
	return nil
}

func (_c *VerseCreate) sqlSave(ctx context.Context) (*Verse, error) {
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

func (_c *VerseCreate) createSpec() (*Verse, *sqlgraph.CreateSpec) {
	var (
		_node = &Verse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verse.Table, sqlgraph.NewFieldSpec(verse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.VerseID(); ok {
		_spec.SetField(verse.FieldVerseID, field.TypeString, value)
		_node.VerseID = value
	}
	if value, ok := _c.mutation.Book(); ok {
		_spec.SetField(verse.FieldBook, field.TypeString, value)
		_node.Book = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(verse.FieldChapter, field.TypeInt, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.VerseNum(); ok {
		_spec.SetField(verse.FieldVerseNum, field.TypeInt, value)
		_node.VerseNum = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(verse.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(verse.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(verse.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(verse.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(verse.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.NextReviewDate(); ok {
		_spec.SetField(verse.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(verse.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.TotalReviews(); ok {
		_spec.SetField(verse.FieldTotalReviews, field.TypeInt, value)
		_node.TotalReviews = value
	}
	if value, ok := _c.mutation.CorrectReviews(); ok {
		_spec.SetField(verse.FieldCorrectReviews, field.TypeInt, value)
		_node.CorrectReviews = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(verse.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VerseCreateBulk is the builder for creating many Verse entities in bulk.
type VerseCreateBulk struct {
	config
	err      error
	builders []*VerseCreate
}

// Save creates the Verse entities in the database.
func (_c *VerseCreateBulk) Save(ctx context.Context) ([]*Verse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerseMutation)
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
func (_c *VerseCreateBulk) SaveX(ctx context.Context) []*Verse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
