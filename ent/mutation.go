// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/versekeep/versekeep/ent/predicate"
	"github.com/versekeep/versekeep/ent/reviewsession"
	"github.com/versekeep/versekeep/ent/verse"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeReviewSession = "ReviewSession"
	TypeVerse         = "Verse"
)

// ReviewSessionMutation represents an operation that mutates the ReviewSession nodes in the graph.
type ReviewSessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	session_id            *string
	date                  *time.Time
	verses_reviewed       *int
	addverses_reviewed    *int
	correct_answers       *int
	addcorrect_answers    *int
	average_quality       *float64
	addaverage_quality    *float64
	time_spent_minutes    *float64
	addtime_spent_minutes *float64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ReviewSession, error)
	predicates            []predicate.ReviewSession
}

var _ ent.Mutation = (*ReviewSessionMutation)(nil)

// reviewsessionOption allows management of the mutation configuration using functional options.
type reviewsessionOption func(*ReviewSessionMutation)

// newReviewSessionMutation creates new mutation for the ReviewSession entity.
func newReviewSessionMutation(c config, op Op, opts ...reviewsessionOption) *ReviewSessionMutation {
	m := &ReviewSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewSessionID sets the ID field of the mutation.
func withReviewSessionID(id int) reviewsessionOption {
	return func(m *ReviewSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewSession
		)
		m.oldValue = func(ctx context.Context) (*ReviewSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewSession sets the old ReviewSession of the mutation.
func withReviewSession(node *ReviewSession) reviewsessionOption {
	return func(m *ReviewSessionMutation) {
		m.oldValue = func(context.Context) (*ReviewSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ReviewSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReviewSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ReviewSession entity.
// If the ReviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReviewSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDate sets the "date" field.
func (m *ReviewSessionMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *ReviewSessionMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the ReviewSession entity.
// If the ReviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewSessionMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *ReviewSessionMutation) ResetDate() {
	m.date = nil
}

// SetVersesReviewed sets the "verses_reviewed" field.
func (m *ReviewSessionMutation) SetVersesReviewed(i int) {
	m.verses_reviewed = &i
	m.addverses_reviewed = nil
}

// VersesReviewed returns the value of the "verses_reviewed" field in the mutation.
func (m *ReviewSessionMutation) VersesReviewed() (r int, exists bool) {
	v := m.verses_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldVersesReviewed returns the old "verses_reviewed" field's value of the ReviewSession entity.
// If the ReviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewSessionMutation) OldVersesReviewed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersesReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersesReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersesReviewed: %w", err)
	}
	return oldValue.VersesReviewed, nil
}

// AddVersesReviewed adds i to the "verses_reviewed" field.
func (m *ReviewSessionMutation) AddVersesReviewed(i int) {
	if m.addverses_reviewed != nil {
		*m.addverses_reviewed += i
	} else {
		m.addverses_reviewed = &i
	}
}

// AddedVersesReviewed returns the value that was added to the "verses_reviewed" field in this mutation.
func (m *ReviewSessionMutation) AddedVersesReviewed() (r int, exists bool) {
	v := m.addverses_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersesReviewed resets all changes to the "verses_reviewed" field.
func (m *ReviewSessionMutation) ResetVersesReviewed() {
	m.verses_reviewed = nil
	m.addverses_reviewed = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *ReviewSessionMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *ReviewSessionMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the ReviewSession entity.
// If the ReviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewSessionMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *ReviewSessionMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *ReviewSessionMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *ReviewSessionMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetAverageQuality sets the "average_quality" field.
func (m *ReviewSessionMutation) SetAverageQuality(f float64) {
	m.average_quality = &f
	m.addaverage_quality = nil
}

// AverageQuality returns the value of the "average_quality" field in the mutation.
func (m *ReviewSessionMutation) AverageQuality() (r float64, exists bool) {
	v := m.average_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageQuality returns the old "average_quality" field's value of the ReviewSession entity.
// If the ReviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewSessionMutation) OldAverageQuality(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageQuality: %w", err)
	}
	return oldValue.AverageQuality, nil
}

// AddAverageQuality adds f to the "average_quality" field.
func (m *ReviewSessionMutation) AddAverageQuality(f float64) {
	if m.addaverage_quality != nil {
		*m.addaverage_quality += f
	} else {
		m.addaverage_quality = &f
	}
}

// AddedAverageQuality returns the value that was added to the "average_quality" field in this mutation.
func (m *ReviewSessionMutation) AddedAverageQuality() (r float64, exists bool) {
	v := m.addaverage_quality
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageQuality resets all changes to the "average_quality" field.
func (m *ReviewSessionMutation) ResetAverageQuality() {
	m.average_quality = nil
	m.addaverage_quality = nil
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (m *ReviewSessionMutation) SetTimeSpentMinutes(f float64) {
	m.time_spent_minutes = &f
	m.addtime_spent_minutes = nil
}

// TimeSpentMinutes returns the value of the "time_spent_minutes" field in the mutation.
func (m *ReviewSessionMutation) TimeSpentMinutes() (r float64, exists bool) {
	v := m.time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMinutes returns the old "time_spent_minutes" field's value of the ReviewSession entity.
// If the ReviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewSessionMutation) OldTimeSpentMinutes(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMinutes: %w", err)
	}
	return oldValue.TimeSpentMinutes, nil
}

// AddTimeSpentMinutes adds f to the "time_spent_minutes" field.
func (m *ReviewSessionMutation) AddTimeSpentMinutes(f float64) {
	if m.addtime_spent_minutes != nil {
		*m.addtime_spent_minutes += f
	} else {
		m.addtime_spent_minutes = &f
	}
}

// AddedTimeSpentMinutes returns the value that was added to the "time_spent_minutes" field in this mutation.
func (m *ReviewSessionMutation) AddedTimeSpentMinutes() (r float64, exists bool) {
	v := m.addtime_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMinutes resets all changes to the "time_spent_minutes" field.
func (m *ReviewSessionMutation) ResetTimeSpentMinutes() {
	m.time_spent_minutes = nil
	m.addtime_spent_minutes = nil
}

// Where appends a list predicates to the ReviewSessionMutation builder.
func (m *ReviewSessionMutation) Where(ps ...predicate.ReviewSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewSession).
func (m *ReviewSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, reviewsession.FieldSessionID)
	}
	if m.date != nil {
		fields = append(fields, reviewsession.FieldDate)
	}
	if m.verses_reviewed != nil {
		fields = append(fields, reviewsession.FieldVersesReviewed)
	}
	if m.correct_answers != nil {
		fields = append(fields, reviewsession.FieldCorrectAnswers)
	}
	if m.average_quality != nil {
		fields = append(fields, reviewsession.FieldAverageQuality)
	}
	if m.time_spent_minutes != nil {
		fields = append(fields, reviewsession.FieldTimeSpentMinutes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewsession.FieldSessionID:
		return m.SessionID()
	case reviewsession.FieldDate:
		return m.Date()
	case reviewsession.FieldVersesReviewed:
		return m.VersesReviewed()
	case reviewsession.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case reviewsession.FieldAverageQuality:
		return m.AverageQuality()
	case reviewsession.FieldTimeSpentMinutes:
		return m.TimeSpentMinutes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case reviewsession.FieldDate:
		return m.OldDate(ctx)
	case reviewsession.FieldVersesReviewed:
		return m.OldVersesReviewed(ctx)
	case reviewsession.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case reviewsession.FieldAverageQuality:
		return m.OldAverageQuality(ctx)
	case reviewsession.FieldTimeSpentMinutes:
		return m.OldTimeSpentMinutes(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case reviewsession.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case reviewsession.FieldVersesReviewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersesReviewed(v)
		return nil
	case reviewsession.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case reviewsession.FieldAverageQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageQuality(v)
		return nil
	case reviewsession.FieldTimeSpentMinutes:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewSessionMutation) AddedFields() []string {
	var fields []string
	if m.addverses_reviewed != nil {
		fields = append(fields, reviewsession.FieldVersesReviewed)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, reviewsession.FieldCorrectAnswers)
	}
	if m.addaverage_quality != nil {
		fields = append(fields, reviewsession.FieldAverageQuality)
	}
	if m.addtime_spent_minutes != nil {
		fields = append(fields, reviewsession.FieldTimeSpentMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewsession.FieldVersesReviewed:
		return m.AddedVersesReviewed()
	case reviewsession.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case reviewsession.FieldAverageQuality:
		return m.AddedAverageQuality()
	case reviewsession.FieldTimeSpentMinutes:
		return m.AddedTimeSpentMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewsession.FieldVersesReviewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersesReviewed(v)
		return nil
	case reviewsession.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case reviewsession.FieldAverageQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageQuality(v)
		return nil
	case reviewsession.FieldTimeSpentMinutes:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewSessionMutation) ResetField(name string) error {
	switch name {
	case reviewsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case reviewsession.FieldDate:
		m.ResetDate()
		return nil
	case reviewsession.FieldVersesReviewed:
		m.ResetVersesReviewed()
		return nil
	case reviewsession.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case reviewsession.FieldAverageQuality:
		m.ResetAverageQuality()
		return nil
	case reviewsession.FieldTimeSpentMinutes:
		m.ResetTimeSpentMinutes()
		return nil
	}
	return fmt.Errorf("unknown ReviewSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewSession edge %s", name)
}

// VerseMutation represents an operation that mutates the Verse nodes in the graph.
type VerseMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	verse_id           *string
	book               *string
	chapter            *int
	addchapter         *int
	verse_num          *int
	addverse_num       *int
	text               *string
	tags               *[]string
	appendtags         []string
	ease_factor        *float64
	addease_factor     *float64
	interval_days      *int
	addinterval_days   *int
	repetitions        *int
	addrepetitions     *int
	next_review_date   *time.Time
	streak             *int
	addstreak          *int
	total_reviews      *int
	addtotal_reviews   *int
	correct_reviews    *int
	addcorrect_reviews *int
	last_reviewed_at   *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Verse, error)
	predicates         []predicate.Verse
}

var _ ent.Mutation = (*VerseMutation)(nil)

// verseOption allows management of the mutation configuration using functional options.
type verseOption func(*VerseMutation)

// newVerseMutation creates new mutation for the Verse entity.
func newVerseMutation(c config, op Op, opts ...verseOption) *VerseMutation {
	m := &VerseMutation{
		config:        c,
		op:            op,
		typ:           TypeVerse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerseID sets the ID field of the mutation.
func withVerseID(id int) verseOption {
	return func(m *VerseMutation) {
		var (
			err   error
			once  sync.Once
			value *Verse
		)
		m.oldValue = func(ctx context.Context) (*Verse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Verse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerse sets the old Verse of the mutation.
func withVerse(node *Verse) verseOption {
	return func(m *VerseMutation) {
		m.oldValue = func(context.Context) (*Verse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Verse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVerseID sets the "verse_id" field.
func (m *VerseMutation) SetVerseID(s string) {
	m.verse_id = &s
}

// VerseID returns the value of the "verse_id" field in the mutation.
func (m *VerseMutation) VerseID() (r string, exists bool) {
	v := m.verse_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVerseID returns the old "verse_id" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldVerseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerseID: %w", err)
	}
	return oldValue.VerseID, nil
}

// ResetVerseID resets all changes to the "verse_id" field.
func (m *VerseMutation) ResetVerseID() {
	m.verse_id = nil
}

// SetBook sets the "book" field.
func (m *VerseMutation) SetBook(s string) {
	m.book = &s
}

// Book returns the value of the "book" field in the mutation.
func (m *VerseMutation) Book() (r string, exists bool) {
	v := m.book
	if v == nil {
		return
	}
	return *v, true
}

// OldBook returns the old "book" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldBook(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBook: %w", err)
	}
	return oldValue.Book, nil
}

// ResetBook resets all changes to the "book" field.
func (m *VerseMutation) ResetBook() {
	m.book = nil
}

// SetChapter sets the "chapter" field.
func (m *VerseMutation) SetChapter(i int) {
	m.chapter = &i
	m.addchapter = nil
}

// Chapter returns the value of the "chapter" field in the mutation.
func (m *VerseMutation) Chapter() (r int, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapter returns the old "chapter" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldChapter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapter: %w", err)
	}
	return oldValue.Chapter, nil
}

// AddChapter adds i to the "chapter" field.
func (m *VerseMutation) AddChapter(i int) {
	if m.addchapter != nil {
		*m.addchapter += i
	} else {
		m.addchapter = &i
	}
}

// AddedChapter returns the value that was added to the "chapter" field in this mutation.
func (m *VerseMutation) AddedChapter() (r int, exists bool) {
	v := m.addchapter
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapter resets all changes to the "chapter" field.
func (m *VerseMutation) ResetChapter() {
	m.chapter = nil
	m.addchapter = nil
}

// SetVerseNum sets the "verse_num" field.
func (m *VerseMutation) SetVerseNum(i int) {
	m.verse_num = &i
	m.addverse_num = nil
}

// VerseNum returns the value of the "verse_num" field in the mutation.
func (m *VerseMutation) VerseNum() (r int, exists bool) {
	v := m.verse_num
	if v == nil {
		return
	}
	return *v, true
}

// OldVerseNum returns the old "verse_num" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldVerseNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerseNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerseNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerseNum: %w", err)
	}
	return oldValue.VerseNum, nil
}

// AddVerseNum adds i to the "verse_num" field.
func (m *VerseMutation) AddVerseNum(i int) {
	if m.addverse_num != nil {
		*m.addverse_num += i
	} else {
		m.addverse_num = &i
	}
}

// AddedVerseNum returns the value that was added to the "verse_num" field in this mutation.
func (m *VerseMutation) AddedVerseNum() (r int, exists bool) {
	v := m.addverse_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetVerseNum resets all changes to the "verse_num" field.
func (m *VerseMutation) ResetVerseNum() {
	m.verse_num = nil
	m.addverse_num = nil
}

// SetText sets the "text" field.
func (m *VerseMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *VerseMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *VerseMutation) ResetText() {
	m.text = nil
}

// SetTags sets the "tags" field.
func (m *VerseMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *VerseMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *VerseMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *VerseMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *VerseMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[verse.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *VerseMutation) TagsCleared() bool {
	_, ok := m.clearedFields[verse.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *VerseMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, verse.FieldTags)
}

// SetEaseFactor sets the "ease_factor" field.
func (m *VerseMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *VerseMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *VerseMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *VerseMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *VerseMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *VerseMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *VerseMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *VerseMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *VerseMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *VerseMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *VerseMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *VerseMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *VerseMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *VerseMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *VerseMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetNextReviewDate sets the "next_review_date" field.
func (m *VerseMutation) SetNextReviewDate(t time.Time) {
	m.next_review_date = &t
}

// NextReviewDate returns the value of the "next_review_date" field in the mutation.
func (m *VerseMutation) NextReviewDate() (r time.Time, exists bool) {
	v := m.next_review_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDate returns the old "next_review_date" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldNextReviewDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDate: %w", err)
	}
	return oldValue.NextReviewDate, nil
}

// ResetNextReviewDate resets all changes to the "next_review_date" field.
func (m *VerseMutation) ResetNextReviewDate() {
	m.next_review_date = nil
}

// SetStreak sets the "streak" field.
func (m *VerseMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *VerseMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *VerseMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *VerseMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *VerseMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetTotalReviews sets the "total_reviews" field.
func (m *VerseMutation) SetTotalReviews(i int) {
	m.total_reviews = &i
	m.addtotal_reviews = nil
}

// TotalReviews returns the value of the "total_reviews" field in the mutation.
func (m *VerseMutation) TotalReviews() (r int, exists bool) {
	v := m.total_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalReviews returns the old "total_reviews" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldTotalReviews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalReviews: %w", err)
	}
	return oldValue.TotalReviews, nil
}

// AddTotalReviews adds i to the "total_reviews" field.
func (m *VerseMutation) AddTotalReviews(i int) {
	if m.addtotal_reviews != nil {
		*m.addtotal_reviews += i
	} else {
		m.addtotal_reviews = &i
	}
}

// AddedTotalReviews returns the value that was added to the "total_reviews" field in this mutation.
func (m *VerseMutation) AddedTotalReviews() (r int, exists bool) {
	v := m.addtotal_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalReviews resets all changes to the "total_reviews" field.
func (m *VerseMutation) ResetTotalReviews() {
	m.total_reviews = nil
	m.addtotal_reviews = nil
}

// SetCorrectReviews sets the "correct_reviews" field.
func (m *VerseMutation) SetCorrectReviews(i int) {
	m.correct_reviews = &i
	m.addcorrect_reviews = nil
}

// CorrectReviews returns the value of the "correct_reviews" field in the mutation.
func (m *VerseMutation) CorrectReviews() (r int, exists bool) {
	v := m.correct_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectReviews returns the old "correct_reviews" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldCorrectReviews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectReviews: %w", err)
	}
	return oldValue.CorrectReviews, nil
}

// AddCorrectReviews adds i to the "correct_reviews" field.
func (m *VerseMutation) AddCorrectReviews(i int) {
	if m.addcorrect_reviews != nil {
		*m.addcorrect_reviews += i
	} else {
		m.addcorrect_reviews = &i
	}
}

// AddedCorrectReviews returns the value that was added to the "correct_reviews" field in this mutation.
func (m *VerseMutation) AddedCorrectReviews() (r int, exists bool) {
	v := m.addcorrect_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectReviews resets all changes to the "correct_reviews" field.
func (m *VerseMutation) ResetCorrectReviews() {
	m.correct_reviews = nil
	m.addcorrect_reviews = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *VerseMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *VerseMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *VerseMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[verse.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *VerseMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[verse.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *VerseMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, verse.FieldLastReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Verse entity.
// If the Verse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VerseMutation builder.
func (m *VerseMutation) Where(ps ...predicate.Verse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Verse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Verse).
func (m *VerseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerseMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.verse_id != nil {
		fields = append(fields, verse.FieldVerseID)
	}
	if m.book != nil {
		fields = append(fields, verse.FieldBook)
	}
	if m.chapter != nil {
		fields = append(fields, verse.FieldChapter)
	}
	if m.verse_num != nil {
		fields = append(fields, verse.FieldVerseNum)
	}
	if m.text != nil {
		fields = append(fields, verse.FieldText)
	}
	if m.tags != nil {
		fields = append(fields, verse.FieldTags)
	}
	if m.ease_factor != nil {
		fields = append(fields, verse.FieldEaseFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, verse.FieldIntervalDays)
	}
	if m.repetitions != nil {
		fields = append(fields, verse.FieldRepetitions)
	}
	if m.next_review_date != nil {
		fields = append(fields, verse.FieldNextReviewDate)
	}
	if m.streak != nil {
		fields = append(fields, verse.FieldStreak)
	}
	if m.total_reviews != nil {
		fields = append(fields, verse.FieldTotalReviews)
	}
	if m.correct_reviews != nil {
		fields = append(fields, verse.FieldCorrectReviews)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, verse.FieldLastReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, verse.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verse.FieldVerseID:
		return m.VerseID()
	case verse.FieldBook:
		return m.Book()
	case verse.FieldChapter:
		return m.Chapter()
	case verse.FieldVerseNum:
		return m.VerseNum()
	case verse.FieldText:
		return m.Text()
	case verse.FieldTags:
		return m.Tags()
	case verse.FieldEaseFactor:
		return m.EaseFactor()
	case verse.FieldIntervalDays:
		return m.IntervalDays()
	case verse.FieldRepetitions:
		return m.Repetitions()
	case verse.FieldNextReviewDate:
		return m.NextReviewDate()
	case verse.FieldStreak:
		return m.Streak()
	case verse.FieldTotalReviews:
		return m.TotalReviews()
	case verse.FieldCorrectReviews:
		return m.CorrectReviews()
	case verse.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case verse.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verse.FieldVerseID:
		return m.OldVerseID(ctx)
	case verse.FieldBook:
		return m.OldBook(ctx)
	case verse.FieldChapter:
		return m.OldChapter(ctx)
	case verse.FieldVerseNum:
		return m.OldVerseNum(ctx)
	case verse.FieldText:
		return m.OldText(ctx)
	case verse.FieldTags:
		return m.OldTags(ctx)
	case verse.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case verse.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case verse.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case verse.FieldNextReviewDate:
		return m.OldNextReviewDate(ctx)
	case verse.FieldStreak:
		return m.OldStreak(ctx)
	case verse.FieldTotalReviews:
		return m.OldTotalReviews(ctx)
	case verse.FieldCorrectReviews:
		return m.OldCorrectReviews(ctx)
	case verse.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case verse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Verse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verse.FieldVerseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerseID(v)
		return nil
	case verse.FieldBook:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBook(v)
		return nil
	case verse.FieldChapter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapter(v)
		return nil
	case verse.FieldVerseNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerseNum(v)
		return nil
	case verse.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case verse.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case verse.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case verse.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case verse.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case verse.FieldNextReviewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDate(v)
		return nil
	case verse.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case verse.FieldTotalReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalReviews(v)
		return nil
	case verse.FieldCorrectReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectReviews(v)
		return nil
	case verse.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case verse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Verse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerseMutation) AddedFields() []string {
	var fields []string
	if m.addchapter != nil {
		fields = append(fields, verse.FieldChapter)
	}
	if m.addverse_num != nil {
		fields = append(fields, verse.FieldVerseNum)
	}
	if m.addease_factor != nil {
		fields = append(fields, verse.FieldEaseFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, verse.FieldIntervalDays)
	}
	if m.addrepetitions != nil {
		fields = append(fields, verse.FieldRepetitions)
	}
	if m.addstreak != nil {
		fields = append(fields, verse.FieldStreak)
	}
	if m.addtotal_reviews != nil {
		fields = append(fields, verse.FieldTotalReviews)
	}
	if m.addcorrect_reviews != nil {
		fields = append(fields, verse.FieldCorrectReviews)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verse.FieldChapter:
		return m.AddedChapter()
	case verse.FieldVerseNum:
		return m.AddedVerseNum()
	case verse.FieldEaseFactor:
		return m.AddedEaseFactor()
	case verse.FieldIntervalDays:
		return m.AddedIntervalDays()
	case verse.FieldRepetitions:
		return m.AddedRepetitions()
	case verse.FieldStreak:
		return m.AddedStreak()
	case verse.FieldTotalReviews:
		return m.AddedTotalReviews()
	case verse.FieldCorrectReviews:
		return m.AddedCorrectReviews()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verse.FieldChapter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapter(v)
		return nil
	case verse.FieldVerseNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerseNum(v)
		return nil
	case verse.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case verse.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case verse.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case verse.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case verse.FieldTotalReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalReviews(v)
		return nil
	case verse.FieldCorrectReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectReviews(v)
		return nil
	}
	return fmt.Errorf("unknown Verse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verse.FieldTags) {
		fields = append(fields, verse.FieldTags)
	}
	if m.FieldCleared(verse.FieldLastReviewedAt) {
		fields = append(fields, verse.FieldLastReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerseMutation) ClearField(name string) error {
	switch name {
	case verse.FieldTags:
		m.ClearTags()
		return nil
	case verse.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Verse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerseMutation) ResetField(name string) error {
	switch name {
	case verse.FieldVerseID:
		m.ResetVerseID()
		return nil
	case verse.FieldBook:
		m.ResetBook()
		return nil
	case verse.FieldChapter:
		m.ResetChapter()
		return nil
	case verse.FieldVerseNum:
		m.ResetVerseNum()
		return nil
	case verse.FieldText:
		m.ResetText()
		return nil
	case verse.FieldTags:
		m.ResetTags()
		return nil
	case verse.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case verse.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case verse.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case verse.FieldNextReviewDate:
		m.ResetNextReviewDate()
		return nil
	case verse.FieldStreak:
		m.ResetStreak()
		return nil
	case verse.FieldTotalReviews:
		m.ResetTotalReviews()
		return nil
	case verse.FieldCorrectReviews:
		m.ResetCorrectReviews()
		return nil
	case verse.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case verse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Verse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Verse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Verse edge %s", name)
}
