package spacedrep

import (
	"math"
	"time"
)

// Quality is the 0-5 rating of how well a review went. 0 is a total
// blackout, 5 a perfect immediate recall. Ratings of PassingQuality or
// higher count as successful.
type Quality int

// Valid reports whether q is inside the 0-5 rating scale.
func (q Quality) Valid() bool {
	return q >= MinQuality && q <= MaxQuality
}

// Passing reports whether q counts as a successful recall.
func (q Quality) Passing() bool {
	return q >= PassingQuality
}

// Transition applies one review to a scheduling state and returns the
// next state. It is a pure function: no I/O, no clock reads, no
// mutation of the input. Callers must validate q with Valid() first;
// out-of-range ratings are a contract violation.
//
// The algorithm is SM-2:
//
//  1. The ease factor is adjusted from q and clamped at MinEaseFactor.
//  2. q below PassingQuality is a lapse: repetitions and streak reset,
//     the interval shrinks to one day. The ease factor still decays.
//  3. Otherwise the interval grows with the repetition count:
//     1 day, then 6 days, then round(previous interval x new ease).
//
// The ease factor is updated before the interval multiplication, so a
// third-or-later success uses the post-review ease.
func Transition(s SchedulingState, q Quality, correct bool, now time.Time) SchedulingState {
	next := s

	ef := s.EaseFactor + (0.1 - float64(MaxQuality-q)*(0.08+float64(MaxQuality-q)*0.02))
	next.EaseFactor = math.Max(ef, MinEaseFactor)

	if q.Passing() {
		next.Repetitions = s.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = FirstIntervalDays
		case 2:
			next.IntervalDays = SecondIntervalDays
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * next.EaseFactor))
			if next.IntervalDays < 1 {
				next.IntervalDays = 1
			}
		}
		next.Streak = s.Streak + 1
	} else {
		next.Repetitions = 0
		next.IntervalDays = FirstIntervalDays
		next.Streak = 0
	}

	next.NextReviewDate = DateOnly(now).AddDate(0, 0, next.IntervalDays)

	next.TotalReviews = s.TotalReviews + 1
	if correct {
		next.CorrectReviews = s.CorrectReviews + 1
	}
	next.LastReviewedAt = now

	return next
}
