package spacedrep

import (
	"testing"
	"time"
)

var noon = time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

func reviewedState() SchedulingState {
	return SchedulingState{
		EaseFactor:     2.5,
		IntervalDays:   6,
		Repetitions:    2,
		NextReviewDate: DateOnly(noon),
		Streak:         4,
		TotalReviews:   9,
		CorrectReviews: 7,
		LastReviewedAt: noon.AddDate(0, 0, -6),
	}
}

func TestTransition_Lapse_ResetsRegardlessOfPriorState(t *testing.T) {
	for _, q := range []Quality{0, 1, 2} {
		next := Transition(reviewedState(), q, false, noon)

		if next.Repetitions != 0 {
			t.Errorf("q=%d: Repetitions = %d, want 0", q, next.Repetitions)
		}
		if next.IntervalDays != 1 {
			t.Errorf("q=%d: IntervalDays = %d, want 1", q, next.IntervalDays)
		}
		if next.Streak != 0 {
			t.Errorf("q=%d: Streak = %d, want 0", q, next.Streak)
		}
		if next.EaseFactor >= 2.5 {
			t.Errorf("q=%d: EaseFactor = %v, want decay below 2.5", q, next.EaseFactor)
		}
	}
}

func TestTransition_FirstSuccess_OneDayInterval(t *testing.T) {
	for _, q := range []Quality{3, 4, 5} {
		s := NewState(noon)
		next := Transition(s, q, true, noon)

		if next.Repetitions != 1 {
			t.Errorf("q=%d: Repetitions = %d, want 1", q, next.Repetitions)
		}
		if next.IntervalDays != 1 {
			t.Errorf("q=%d: IntervalDays = %d, want 1", q, next.IntervalDays)
		}
		if next.Streak != 1 {
			t.Errorf("q=%d: Streak = %d, want 1", q, next.Streak)
		}
	}
}

func TestTransition_SecondSuccess_SixDayInterval(t *testing.T) {
	s := NewState(noon)
	s = Transition(s, 4, true, noon)
	s = Transition(s, 4, true, noon.AddDate(0, 0, 1))

	if s.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", s.Repetitions)
	}
	if s.IntervalDays != SecondIntervalDays {
		t.Errorf("IntervalDays = %d, want %d", s.IntervalDays, SecondIntervalDays)
	}
}

func TestTransition_ThirdSuccess_UsesUpdatedEase(t *testing.T) {
	// EF 2.5 with q=5 rises to 2.6 before the multiplication,
	// so the interval is round(6 x 2.6) = 16, not round(6 x 2.5) = 15.
	s := reviewedState()
	next := Transition(s, 5, true, noon)

	if got := next.EaseFactor; got < 2.599 || got > 2.601 {
		t.Errorf("EaseFactor = %v, want 2.6", got)
	}
	if next.IntervalDays != 16 {
		t.Errorf("IntervalDays = %d, want 16", next.IntervalDays)
	}
	if next.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", next.Repetitions)
	}
}

func TestTransition_ThirdSuccess_BareQualityShrinksEaseFirst(t *testing.T) {
	// q=3 drops EF from 2.5 to 2.36; round(6 x 2.36) = 14.
	next := Transition(reviewedState(), 3, true, noon)

	if next.IntervalDays != 14 {
		t.Errorf("IntervalDays = %d, want 14", next.IntervalDays)
	}
}

func TestTransition_EaseFactorNeverBelowFloor(t *testing.T) {
	s := NewState(noon)
	now := noon
	for i := 0; i < 20; i++ {
		s = Transition(s, 0, false, now)
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("EaseFactor = %v after %d lapses, want >= %v", s.EaseFactor, i+1, MinEaseFactor)
		}
		now = now.AddDate(0, 0, 1)
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v after repeated lapses, want clamped to %v", s.EaseFactor, MinEaseFactor)
	}
}

func TestTransition_NextReviewDateIsCalendarDays(t *testing.T) {
	// A late-evening review still schedules from that calendar day.
	evening := time.Date(2025, 3, 10, 23, 45, 0, 0, time.UTC)
	s := NewState(evening)
	next := Transition(s, 4, true, evening)

	want := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !next.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", next.NextReviewDate, want)
	}
}

func TestTransition_Counters(t *testing.T) {
	s := reviewedState()

	next := Transition(s, 4, true, noon)
	if next.TotalReviews != s.TotalReviews+1 {
		t.Errorf("TotalReviews = %d, want %d", next.TotalReviews, s.TotalReviews+1)
	}
	if next.CorrectReviews != s.CorrectReviews+1 {
		t.Errorf("CorrectReviews = %d, want %d", next.CorrectReviews, s.CorrectReviews+1)
	}

	next = Transition(s, 2, false, noon)
	if next.CorrectReviews != s.CorrectReviews {
		t.Errorf("CorrectReviews = %d, want unchanged %d", next.CorrectReviews, s.CorrectReviews)
	}
	if next.LastReviewedAt != noon {
		t.Errorf("LastReviewedAt = %v, want %v", next.LastReviewedAt, noon)
	}
}

func TestTransition_MinimumGrowthInterval(t *testing.T) {
	// Even at the ease floor the interval never computes below 1 day.
	s := SchedulingState{EaseFactor: MinEaseFactor, IntervalDays: 0, Repetitions: 2}
	next := Transition(s, 3, true, noon)
	if next.IntervalDays < 1 {
		t.Errorf("IntervalDays = %d, want >= 1", next.IntervalDays)
	}
}

func TestNewState_DueImmediately(t *testing.T) {
	s := NewState(noon)

	if !s.IsDue(noon) {
		t.Error("new verse should be due on its creation day")
	}
	if s.EaseFactor != DefaultEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", s.EaseFactor, DefaultEaseFactor)
	}
	if s.Reviewed() {
		t.Error("new verse should not count as reviewed")
	}
}

func TestQuality_Valid(t *testing.T) {
	for q := Quality(0); q <= 5; q++ {
		if !q.Valid() {
			t.Errorf("Quality(%d).Valid() = false, want true", q)
		}
	}
	for _, q := range []Quality{-1, 6, 10} {
		if q.Valid() {
			t.Errorf("Quality(%d).Valid() = true, want false", q)
		}
	}
}

func TestReviewStatus(t *testing.T) {
	cases := []struct {
		name  string
		state SchedulingState
		want  Status
	}{
		{"never reviewed", NewState(noon), StatusNew},
		{"due today", SchedulingState{NextReviewDate: DateOnly(noon), LastReviewedAt: noon.AddDate(0, 0, -1)}, StatusDue},
		{"overdue", SchedulingState{NextReviewDate: DateOnly(noon).AddDate(0, 0, -3), LastReviewedAt: noon.AddDate(0, 0, -4)}, StatusOverdue},
		{"scheduled", SchedulingState{NextReviewDate: DateOnly(noon).AddDate(0, 0, 4), IntervalDays: 4, LastReviewedAt: noon}, StatusScheduled},
		{"mastered", SchedulingState{NextReviewDate: DateOnly(noon).AddDate(0, 0, 45), IntervalDays: 45, LastReviewedAt: noon}, StatusMastered},
	}
	for _, tc := range cases {
		if got := tc.state.ReviewStatus(noon); got != tc.want {
			t.Errorf("%s: ReviewStatus = %q, want %q", tc.name, got, tc.want)
		}
	}
}
