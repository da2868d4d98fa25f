package stats

import (
	"testing"
	"time"

	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/store"
	"github.com/versekeep/versekeep/internal/verse"
)

var today = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func sessionOn(day time.Time, reviewed int) *store.SessionRecord {
	return &store.SessionRecord{
		ID:             "s-" + day.Format("2006-01-02"),
		Date:           day,
		VersesReviewed: reviewed,
		CorrectAnswers: reviewed,
		AverageQuality: 4,
	}
}

func verseWith(t *testing.T, s spacedrep.SchedulingState) *verse.MemorizedVerse {
	t.Helper()
	v, err := verse.New(verse.Reference{Book: "John", Chapter: 3, Verse: 16}, "For God so loved the world", nil, today.AddDate(0, 0, -60))
	if err != nil {
		t.Fatalf("verse.New: %v", err)
	}
	v.Scheduling = s
	return v
}

func TestCompute_AccuracyZeroWithoutReviews(t *testing.T) {
	v, err := verse.New(verse.Reference{Book: "John", Chapter: 3, Verse: 16}, "For God so loved the world", nil, today)
	if err != nil {
		t.Fatal(err)
	}

	o := Compute([]*verse.MemorizedVerse{v}, nil, today)
	if o.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", o.Accuracy)
	}
	if o.AverageEaseFactor != 0 {
		t.Errorf("AverageEaseFactor = %v, want 0 with no reviewed verses", o.AverageEaseFactor)
	}
}

func TestCompute_AccuracyHundredWhenAllCorrect(t *testing.T) {
	v := verseWith(t, spacedrep.SchedulingState{
		EaseFactor:     2.6,
		TotalReviews:   8,
		CorrectReviews: 8,
		LastReviewedAt: today.AddDate(0, 0, -1),
		NextReviewDate: today.AddDate(0, 0, 5),
	})

	o := Compute([]*verse.MemorizedVerse{v}, nil, today)
	if o.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", o.Accuracy)
	}
	if o.AverageEaseFactor != 2.6 {
		t.Errorf("AverageEaseFactor = %v, want 2.6", o.AverageEaseFactor)
	}
}

func TestCompute_NewVerseIsDueToday(t *testing.T) {
	v, err := verse.New(verse.Reference{Book: "Psalms", Chapter: 23, Verse: 1}, "The Lord is my shepherd", nil, today)
	if err != nil {
		t.Fatal(err)
	}

	o := Compute([]*verse.MemorizedVerse{v}, nil, today)
	if o.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1: a new verse is due on its creation date", o.DueToday)
	}
}

func TestCompute_MasteredCountsIntervalPastThreshold(t *testing.T) {
	at30 := verseWith(t, spacedrep.SchedulingState{IntervalDays: 30, LastReviewedAt: today, NextReviewDate: today.AddDate(0, 0, 30)})
	at31 := verseWith(t, spacedrep.SchedulingState{IntervalDays: 31, LastReviewedAt: today, NextReviewDate: today.AddDate(0, 0, 31)})

	o := Compute([]*verse.MemorizedVerse{at30, at31}, nil, today)
	if o.MasteredVerses != 1 {
		t.Errorf("MasteredVerses = %d, want 1 (interval must exceed 30)", o.MasteredVerses)
	}
}

func TestCompute_SevenDayStreak(t *testing.T) {
	var sessions []*store.SessionRecord
	for i := 6; i >= 0; i-- {
		sessions = append(sessions, sessionOn(today.AddDate(0, 0, -i), 3))
	}

	o := Compute(nil, sessions, today)
	if o.StreakDays != 7 {
		t.Errorf("StreakDays = %d, want 7", o.StreakDays)
	}
	if o.LongestStreak != 7 {
		t.Errorf("LongestStreak = %d, want 7", o.LongestStreak)
	}
}

func TestCompute_MissedDayResetsCurrentNotLongest(t *testing.T) {
	// Seven consecutive days, then a gap before today.
	var sessions []*store.SessionRecord
	for i := 8; i >= 2; i-- {
		sessions = append(sessions, sessionOn(today.AddDate(0, 0, -i), 2))
	}

	o := Compute(nil, sessions, today)
	if o.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0 after a missed day", o.StreakDays)
	}
	if o.LongestStreak != 7 {
		t.Errorf("LongestStreak = %d, want 7", o.LongestStreak)
	}
}

func TestCompute_StreakCountsMultipleSessionsPerDayOnce(t *testing.T) {
	sessions := []*store.SessionRecord{
		sessionOn(today.Add(-2*time.Hour), 1),
		sessionOn(today.Add(-1*time.Hour), 4),
		sessionOn(today.AddDate(0, 0, -1), 2),
	}

	o := Compute(nil, sessions, today)
	if o.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", o.StreakDays)
	}
}

func TestCompute_WeeklyProgressWindow(t *testing.T) {
	sessions := []*store.SessionRecord{
		sessionOn(today, 5),
		sessionOn(today.AddDate(0, 0, -2), 3),
		sessionOn(today.AddDate(0, 0, -2).Add(2*time.Hour), 2), // same day, summed
		sessionOn(today.AddDate(0, 0, -7), 9),                  // outside the window
	}

	o := Compute(nil, sessions, today)

	if o.WeeklyProgress[6].VersesReviewed != 5 {
		t.Errorf("today = %d, want 5", o.WeeklyProgress[6].VersesReviewed)
	}
	if o.WeeklyProgress[4].VersesReviewed != 5 {
		t.Errorf("two days ago = %d, want 5 (3+2)", o.WeeklyProgress[4].VersesReviewed)
	}
	if o.WeeklyProgress[0].VersesReviewed != 0 {
		t.Errorf("window edge = %d, want 0 (session 7 days back excluded)", o.WeeklyProgress[0].VersesReviewed)
	}

	// Days are aligned to calendar weekdays, oldest first.
	if o.WeeklyProgress[6].Weekday != today.Weekday() {
		t.Errorf("last slot weekday = %v, want %v", o.WeeklyProgress[6].Weekday, today.Weekday())
	}
	for i := 0; i < 6; i++ {
		if !o.WeeklyProgress[i].Date.Before(o.WeeklyProgress[i+1].Date) {
			t.Fatalf("window not ascending at %d", i)
		}
	}
}

func TestCompute_EmptyInputs(t *testing.T) {
	o := Compute(nil, nil, today)
	if o.TotalVerses != 0 || o.Accuracy != 0 || o.StreakDays != 0 || o.LongestStreak != 0 {
		t.Errorf("zero-input overview not zeroed: %+v", o)
	}
}

func TestCompute_StreakSpansDSTTransition(t *testing.T) {
	// US DST starts 2025-03-09: the Mar 8 -> Mar 9 midnight gap is
	// 23 hours in New York. Three consecutive days must still count
	// as a run of 3.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	sessions := []*store.SessionRecord{
		sessionOn(time.Date(2025, 3, 8, 20, 0, 0, 0, loc), 2),
		sessionOn(time.Date(2025, 3, 9, 20, 0, 0, 0, loc), 2),
		sessionOn(time.Date(2025, 3, 10, 9, 0, 0, 0, loc), 2),
	}
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, loc)

	o := Compute(nil, sessions, now)
	if o.StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3 across the DST change", o.StreakDays)
	}
	if o.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3 across the DST change", o.LongestStreak)
	}
}

func TestCompute_LongestStreakFallBackTransition(t *testing.T) {
	// DST ends 2025-11-02: a 25 hour midnight gap must not split a
	// historical run either.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	sessions := []*store.SessionRecord{
		sessionOn(time.Date(2025, 11, 1, 12, 0, 0, 0, loc), 1),
		sessionOn(time.Date(2025, 11, 2, 12, 0, 0, 0, loc), 1),
		sessionOn(time.Date(2025, 11, 3, 12, 0, 0, 0, loc), 1),
	}
	now := time.Date(2025, 11, 20, 10, 0, 0, 0, loc)

	o := Compute(nil, sessions, now)
	if o.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3 across the fall-back change", o.LongestStreak)
	}
	if o.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0 (run ended weeks ago)", o.StreakDays)
	}
}
