package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/versekeep/versekeep/internal/grader"
	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/store"
	"github.com/versekeep/versekeep/internal/verse"
)

// ErrInvalidQuality rejects ratings outside the 0-5 scale before they
// reach the scheduler.
var ErrInvalidQuality = errors.New("quality rating must be between 0 and 5")

// ErrSessionDone is returned by verse-level calls after the last verse
// has been graded.
var ErrSessionDone = errors.New("session has no verses left")

// Phase is the state of the current verse within the session.
type Phase int

const (
	// PhasePresented: the question is shown, the timer is running.
	PhasePresented Phase = iota
	// PhaseAnswerEntered: the user's input is captured but not compared.
	PhaseAnswerEntered
	// PhaseRevealed: the expected answer is shown next to the input.
	PhaseRevealed
	// PhaseGraded: a quality rating was submitted; the verse is done.
	PhaseGraded
)

// ReviewResult is the outcome of one question within a session.
type ReviewResult struct {
	VerseID          string
	Quality          spacedrep.Quality
	Similarity       float64
	Correct          bool
	TimeSpentSeconds int
}

// Orchestrator drives quiz sessions over a verse store. Which verses a
// session covers is the caller's decision; the orchestrator only walks
// the list it is given, one verse at a time.
type Orchestrator struct {
	verses   store.VerseRepo
	sessions store.SessionRepo

	// rng drives question-mode and blank selection. Injected so tests
	// can pin the sequence.
	rng *rand.Rand

	// now is the clock, overridable in tests.
	now func() time.Time
}

// New creates an orchestrator with a time-seeded generator and the
// wall clock.
func New(verses store.VerseRepo, sessions store.SessionRepo) *Orchestrator {
	return &Orchestrator{
		verses:   verses,
		sessions: sessions,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// WithRand replaces the randomness source. Returns the orchestrator
// for chaining.
func (o *Orchestrator) WithRand(rng *rand.Rand) *Orchestrator {
	o.rng = rng
	return o
}

// WithClock replaces the clock. Returns the orchestrator for chaining.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Session is one bounded run of reviews. Verses advance strictly
// sequentially through Presented, AnswerEntered, Revealed and Graded;
// grading applies the scheduler transition and persists the verse
// before anything else happens.
type Session struct {
	orch *Orchestrator

	id      string
	mode    Mode
	verses  []*verse.MemorizedVerse
	idx     int
	phase   Phase
	current *Question
	answer  string

	startedAt     time.Time
	questionStart time.Time

	results     []ReviewResult
	persistErrs []error
	finished    bool
	abandoned   bool
}

// Start begins a session over the given verses. The list must be
// non-empty; an empty list means there was nothing to review and no
// session should exist.
func (o *Orchestrator) Start(verses []*verse.MemorizedVerse, mode Mode) (*Session, error) {
	if len(verses) == 0 {
		return nil, fmt.Errorf("no verses to review")
	}

	s := &Session{
		orch:      o,
		id:        uuid.NewString(),
		mode:      mode,
		verses:    verses,
		startedAt: o.now(),
	}
	s.present()
	return s, nil
}

// present builds the question for the current verse and starts its timer.
func (s *Session) present() {
	v := s.verses[s.idx]
	s.current = newQuestion(v, s.mode, s.orch.rng)
	s.answer = ""
	s.phase = PhasePresented
	s.questionStart = s.orch.now()
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Phase returns the state of the current verse.
func (s *Session) Phase() Phase { return s.phase }

// Done reports whether every verse has been graded.
func (s *Session) Done() bool { return s.idx >= len(s.verses) }

// Remaining returns how many verses are left, including the current one.
func (s *Session) Remaining() int { return len(s.verses) - s.idx }

// Current returns the active question, or nil when the session is done.
func (s *Session) Current() *Question {
	if s.Done() {
		return nil
	}
	return s.current
}

// Answer returns the text entered for the current verse.
func (s *Session) Answer() string { return s.answer }

// Results returns the per-verse outcomes recorded so far.
func (s *Session) Results() []ReviewResult { return s.results }

// PersistFailures returns the verse-update errors collected during the
// session. Non-empty failures mean some scheduling writes need a retry
// or reconciliation pass; they were never silently dropped.
func (s *Session) PersistFailures() []error { return s.persistErrs }

// EnterAnswer captures the user's free-text input. The text is not
// compared yet; grading is only final once a rating is submitted.
func (s *Session) EnterAnswer(text string) error {
	if s.Done() {
		return ErrSessionDone
	}
	if s.phase != PhasePresented && s.phase != PhaseAnswerEntered {
		return fmt.Errorf("cannot enter an answer in phase %d", s.phase)
	}
	s.answer = text
	s.phase = PhaseAnswerEntered
	return nil
}

// Reveal shows the expected answer. Requires an entered answer (which
// may be empty if the user gave up typing).
func (s *Session) Reveal() (string, error) {
	if s.Done() {
		return "", ErrSessionDone
	}
	if s.phase != PhaseAnswerEntered {
		return "", fmt.Errorf("cannot reveal in phase %d", s.phase)
	}
	s.phase = PhaseRevealed
	return s.current.Expected, nil
}

// Grade submits the quality rating for the current verse. It grades
// the entered text, runs the scheduler transition, persists the verse,
// records the result and advances to the next verse.
//
// A persistence failure does not block the session: the result is
// still recorded, the failure is collected for the caller, and the
// next verse is presented.
func (s *Session) Grade(ctx context.Context, q spacedrep.Quality) (*ReviewResult, error) {
	if s.Done() {
		return nil, ErrSessionDone
	}
	if s.phase != PhaseRevealed {
		return nil, fmt.Errorf("cannot grade in phase %d", s.phase)
	}
	if !q.Valid() {
		return nil, ErrInvalidQuality
	}

	now := s.orch.now()
	g := grader.Grade(s.answer, s.current.Expected, q)

	_, err := s.orch.verses.ApplyReview(ctx, s.current.VerseID, func(st spacedrep.SchedulingState) spacedrep.SchedulingState {
		return spacedrep.Transition(st, q, g.Correct, now)
	})
	if err != nil {
		s.persistErrs = append(s.persistErrs, fmt.Errorf("verse %s: %w", s.current.VerseID, err))
	}

	result := ReviewResult{
		VerseID:          s.current.VerseID,
		Quality:          q,
		Similarity:       g.Similarity,
		Correct:          g.Correct,
		TimeSpentSeconds: int(now.Sub(s.questionStart).Seconds()),
	}
	s.results = append(s.results, result)

	s.phase = PhaseGraded
	s.idx++
	if !s.Done() {
		s.present()
	}
	return &result, nil
}

// Complete finalizes a finished session: it computes the summary and
// persists the session record. The per-verse scheduling updates were
// already written during grading, so a failure here loses only the
// session-level statistic, never a review.
func (s *Session) Complete(ctx context.Context) (*store.SessionRecord, error) {
	if !s.Done() {
		return nil, fmt.Errorf("session still has %d verses left", s.Remaining())
	}
	if s.abandoned {
		return nil, fmt.Errorf("session was abandoned")
	}
	if s.finished {
		return nil, fmt.Errorf("session already completed")
	}

	rec := s.buildRecord(s.orch.now())
	if err := s.orch.sessions.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("append session record: %w", err)
	}
	s.finished = true
	return rec, nil
}

// Abandon ends the session without a session record. Verses already
// graded keep their persisted scheduling updates; the rest are
// untouched.
func (s *Session) Abandon() {
	s.abandoned = true
}
