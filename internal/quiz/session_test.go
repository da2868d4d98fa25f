package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/store"
	"github.com/versekeep/versekeep/internal/verse"
)

var sessionStart = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

// fakeVerseRepo is an in-memory VerseRepo that logs operations so
// tests can assert persistence ordering.
type fakeVerseRepo struct {
	verses    map[string]*verse.MemorizedVerse
	opLog     *[]string
	failApply bool
}

func (f *fakeVerseRepo) Create(_ context.Context, v *verse.MemorizedVerse) error {
	f.verses[v.ID] = v
	return nil
}

func (f *fakeVerseRepo) Get(_ context.Context, id string) (*verse.MemorizedVerse, error) {
	v, ok := f.verses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (f *fakeVerseRepo) List(_ context.Context) ([]*verse.MemorizedVerse, error) {
	var out []*verse.MemorizedVerse
	for _, v := range f.verses {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVerseRepo) ListDue(_ context.Context, asOf time.Time) ([]*verse.MemorizedVerse, error) {
	var out []*verse.MemorizedVerse
	for _, v := range f.verses {
		if v.Scheduling.IsDue(asOf) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVerseRepo) ApplyReview(_ context.Context, id string, fn func(spacedrep.SchedulingState) spacedrep.SchedulingState) (*verse.MemorizedVerse, error) {
	if f.failApply {
		return nil, fmt.Errorf("disk full")
	}
	v, ok := f.verses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	v.Scheduling = fn(v.Scheduling)
	*f.opLog = append(*f.opLog, "apply:"+id)
	return v, nil
}

func (f *fakeVerseRepo) Delete(_ context.Context, id string) error {
	delete(f.verses, id)
	return nil
}

type fakeSessionRepo struct {
	records []*store.SessionRecord
	opLog   *[]string
}

func (f *fakeSessionRepo) Append(_ context.Context, rec *store.SessionRecord) error {
	f.records = append(f.records, rec)
	*f.opLog = append(*f.opLog, "session:"+rec.ID)
	return nil
}

func (f *fakeSessionRepo) List(_ context.Context, _, _ time.Time) ([]*store.SessionRecord, error) {
	return f.records, nil
}

func testVerse(t *testing.T, book string, chapter, num int, text string) *verse.MemorizedVerse {
	t.Helper()
	v, err := verse.New(verse.Reference{Book: book, Chapter: chapter, Verse: num}, text, nil, sessionStart.AddDate(0, 0, -10))
	if err != nil {
		t.Fatalf("verse.New: %v", err)
	}
	return v
}

func testHarness(t *testing.T, verses ...*verse.MemorizedVerse) (*Orchestrator, *fakeVerseRepo, *fakeSessionRepo) {
	t.Helper()
	opLog := &[]string{}
	vr := &fakeVerseRepo{verses: make(map[string]*verse.MemorizedVerse), opLog: opLog}
	for _, v := range verses {
		vr.verses[v.ID] = v
	}
	sr := &fakeSessionRepo{opLog: opLog}

	clock := sessionStart
	o := New(vr, sr).
		WithRand(rand.New(rand.NewSource(1))).
		WithClock(func() time.Time {
			clock = clock.Add(30 * time.Second)
			return clock
		})
	return o, vr, sr
}

func gradeCurrent(t *testing.T, s *Session, answer string, q spacedrep.Quality) *ReviewResult {
	t.Helper()
	if err := s.EnterAnswer(answer); err != nil {
		t.Fatalf("EnterAnswer: %v", err)
	}
	if _, err := s.Reveal(); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	r, err := s.Grade(context.Background(), q)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	return r
}

func TestSession_FullRun(t *testing.T) {
	v1 := testVerse(t, "John", 3, 16, "For God so loved the world")
	v2 := testVerse(t, "Psalms", 23, 1, "The Lord is my shepherd I shall not want")
	o, vr, sr := testHarness(t, v1, v2)

	s, err := o.Start([]*verse.MemorizedVerse{v1, v2}, ModeReferenceToText)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	r1 := gradeCurrent(t, s, "For God so loved the world", 5)
	if !r1.Correct {
		t.Error("perfect answer should be correct")
	}
	r2 := gradeCurrent(t, s, "", 1)
	if r2.Correct {
		t.Error("blank answer with failing rating should be incorrect")
	}

	if !s.Done() {
		t.Fatal("session should be done after grading both verses")
	}
	rec, err := s.Complete(context.Background())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if rec.VersesReviewed != 2 {
		t.Errorf("VersesReviewed = %d, want 2", rec.VersesReviewed)
	}
	if rec.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", rec.CorrectAnswers)
	}
	if rec.AverageQuality != 3 {
		t.Errorf("AverageQuality = %v, want 3", rec.AverageQuality)
	}
	if rec.TimeSpentMinutes <= 0 {
		t.Errorf("TimeSpentMinutes = %v, want > 0", rec.TimeSpentMinutes)
	}

	// Scheduling state was persisted through the repo.
	if vr.verses[v1.ID].Scheduling.Repetitions != 1 {
		t.Errorf("v1 Repetitions = %d, want 1", vr.verses[v1.ID].Scheduling.Repetitions)
	}
	if vr.verses[v2.ID].Scheduling.Streak != 0 {
		t.Errorf("v2 Streak = %d, want 0", vr.verses[v2.ID].Scheduling.Streak)
	}

	// Verse updates land strictly before the session record.
	log := *vr.opLog
	if len(log) != 3 || log[2] != "session:"+rec.ID {
		t.Errorf("op log = %v, want two verse applies then the session append", log)
	}
	if len(sr.records) != 1 {
		t.Errorf("session records = %d, want 1", len(sr.records))
	}
}

func TestSession_AbandonmentKeepsGradedVersesOnly(t *testing.T) {
	verses := make([]*verse.MemorizedVerse, 5)
	for i := range verses {
		verses[i] = testVerse(t, "Proverbs", 3, i+1, "Trust in the Lord with all your heart")
	}
	o, vr, sr := testHarness(t, verses...)

	s, err := o.Start(verses, ModeReferenceToText)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	gradeCurrent(t, s, "Trust in the Lord with all your heart", 4)
	gradeCurrent(t, s, "Trust in the Lord with all your heart", 4)
	s.Abandon()

	applies := 0
	for _, op := range *vr.opLog {
		if op[:6] == "apply:" {
			applies++
		}
	}
	if applies != 2 {
		t.Errorf("persisted verse updates = %d, want exactly 2", applies)
	}
	if len(sr.records) != 0 {
		t.Errorf("session records = %d, want 0 after abandonment", len(sr.records))
	}
	if _, err := s.Complete(context.Background()); err == nil {
		t.Error("Complete after Abandon should fail")
	}
}

func TestSession_PersistFailureDoesNotBlock(t *testing.T) {
	v1 := testVerse(t, "John", 3, 16, "For God so loved the world")
	v2 := testVerse(t, "John", 3, 17, "For God did not send his Son to condemn")
	o, vr, _ := testHarness(t, v1, v2)
	vr.failApply = true

	s, err := o.Start([]*verse.MemorizedVerse{v1, v2}, ModeReferenceToText)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	r := gradeCurrent(t, s, "For God so loved the world", 5)
	if r == nil || !r.Correct {
		t.Fatal("grading should still produce a result when persistence fails")
	}
	if s.Done() {
		t.Error("session should have advanced to the second verse")
	}

	gradeCurrent(t, s, "", 0)
	if got := len(s.PersistFailures()); got != 2 {
		t.Errorf("PersistFailures = %d, want 2", got)
	}
}

func TestSession_InvalidQualityRejected(t *testing.T) {
	v := testVerse(t, "John", 3, 16, "For God so loved the world")
	o, vr, _ := testHarness(t, v)

	s, err := o.Start([]*verse.MemorizedVerse{v}, ModeReferenceToText)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.EnterAnswer("x"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Reveal(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Grade(context.Background(), 6); !errors.Is(err, ErrInvalidQuality) {
		t.Errorf("Grade(6) error = %v, want ErrInvalidQuality", err)
	}
	if _, err := s.Grade(context.Background(), -1); !errors.Is(err, ErrInvalidQuality) {
		t.Errorf("Grade(-1) error = %v, want ErrInvalidQuality", err)
	}

	// Nothing was persisted and the verse is still current.
	if len(*vr.opLog) != 0 {
		t.Errorf("op log = %v, want empty", *vr.opLog)
	}
	if s.Done() {
		t.Error("session should not have advanced")
	}
}

func TestSession_PhaseOrderEnforced(t *testing.T) {
	v := testVerse(t, "John", 3, 16, "For God so loved the world")
	o, _, _ := testHarness(t, v)

	s, err := o.Start([]*verse.MemorizedVerse{v}, ModeReferenceToText)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := s.Reveal(); err == nil {
		t.Error("Reveal before EnterAnswer should fail")
	}
	if _, err := s.Grade(context.Background(), 4); err == nil {
		t.Error("Grade before Reveal should fail")
	}
	if s.Phase() != PhasePresented {
		t.Errorf("Phase = %d, want PhasePresented", s.Phase())
	}
}

func TestStart_EmptyListFails(t *testing.T) {
	o, _, _ := testHarness(t)
	if _, err := o.Start(nil, ModeMixed); err == nil {
		t.Error("Start with no verses should fail")
	}
}

func TestMixedMode_DeterministicUnderInjectedRand(t *testing.T) {
	verses := make([]*verse.MemorizedVerse, 6)
	for i := range verses {
		verses[i] = testVerse(t, "Romans", 8, i+1, "There is therefore now no condemnation for those in Christ")
	}

	run := func() []Mode {
		o, _, _ := testHarness(t, verses...)
		o.WithRand(rand.New(rand.NewSource(42)))
		s, err := o.Start(verses, ModeMixed)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		var modes []Mode
		for !s.Done() {
			modes = append(modes, s.Current().Mode)
			gradeCurrent(t, s, "", 3)
		}
		return modes
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("mode sequence differs at %d: %v vs %v", i, first, second)
		}
		if first[i] == ModeMixed {
			t.Fatalf("resolved mode at %d is still mixed", i)
		}
	}
}
