package spacedrep

import "time"

// SchedulingState holds the spaced repetition state for a single verse.
// It is mutated only by Transition; callers treat values as read-only.
type SchedulingState struct {
	EaseFactor     float64   `json:"ease_factor"`
	IntervalDays   int       `json:"interval_days"`
	Repetitions    int       `json:"repetitions"`
	NextReviewDate time.Time `json:"next_review_date"`
	Streak         int       `json:"streak"`
	TotalReviews   int       `json:"total_reviews"`
	CorrectReviews int       `json:"correct_reviews"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}

// NewState returns the scheduling state for a freshly added verse:
// default ease, zero interval, due immediately.
func NewState(addedAt time.Time) SchedulingState {
	return SchedulingState{
		EaseFactor:     DefaultEaseFactor,
		NextReviewDate: DateOnly(addedAt),
	}
}

// DateOnly truncates t to midnight in its own location. Review
// scheduling works in calendar days, so a review at any time on day D
// counts toward D.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsDue returns true if the verse is due for review on the calendar
// day containing now.
func (s SchedulingState) IsDue(now time.Time) bool {
	return !DateOnly(now).Before(DateOnly(s.NextReviewDate))
}

// OverdueDays returns how many days past due the verse is.
// Returns 0 if not yet due.
func (s SchedulingState) OverdueDays(now time.Time) float64 {
	if !s.IsDue(now) {
		return 0
	}
	return DateOnly(now).Sub(DateOnly(s.NextReviewDate)).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (s SchedulingState) DaysUntilReview(now time.Time) int {
	if s.IsDue(now) {
		return 0
	}
	return int(DateOnly(s.NextReviewDate).Sub(DateOnly(now)).Hours() / 24.0)
}

// Mastered reports whether the interval has grown past the mastery
// threshold, a coarse proxy for long-term retention.
func (s SchedulingState) Mastered() bool {
	return s.IntervalDays > MasteryIntervalDays
}

// Reviewed reports whether the verse has been reviewed at least once.
func (s SchedulingState) Reviewed() bool {
	return !s.LastReviewedAt.IsZero()
}

// Status describes a verse's review status for display.
type Status string

const (
	StatusNew       Status = "new"
	StatusDue       Status = "due"
	StatusOverdue   Status = "overdue"
	StatusScheduled Status = "scheduled"
	StatusMastered  Status = "mastered"
)

// ReviewStatus returns the display status for the verse as of now.
func (s SchedulingState) ReviewStatus(now time.Time) Status {
	if !s.Reviewed() {
		return StatusNew
	}
	if s.IsDue(now) {
		if s.OverdueDays(now) >= 1 {
			return StatusOverdue
		}
		return StatusDue
	}
	if s.Mastered() {
		return StatusMastered
	}
	return StatusScheduled
}
