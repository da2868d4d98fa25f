package stats

import (
	"sort"
	"time"

	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/store"
	"github.com/versekeep/versekeep/internal/verse"
)

// DayCount is one day of the trailing weekly window.
type DayCount struct {
	Date           time.Time
	Weekday        time.Weekday
	VersesReviewed int
}

// Overview holds the longitudinal metrics derived from the verse set
// and the session history. Display-only; computing it never mutates
// anything.
type Overview struct {
	TotalVerses int

	// Accuracy is the percentage of correct reviews across all verses,
	// 0 when nothing has been reviewed.
	Accuracy float64

	// AverageEaseFactor is the mean ease over verses with at least one
	// review.
	AverageEaseFactor float64

	// MasteredVerses counts verses whose interval has grown past the
	// mastery threshold.
	MasteredVerses int

	// DueToday counts verses due on or before today.
	DueToday int

	// StreakDays is the current run of consecutive calendar days with
	// at least one completed session, counted backward from today.
	StreakDays int

	// LongestStreak is the longest such run over all history.
	LongestStreak int

	// WeeklyProgress covers the trailing 7 calendar days ending today,
	// oldest first.
	WeeklyProgress [7]DayCount
}

// Compute derives an Overview as of now. It is a pure read over the
// slices it is given and tolerates a snapshot that is slightly stale
// relative to an in-flight session.
func Compute(verses []*verse.MemorizedVerse, sessions []*store.SessionRecord, now time.Time) Overview {
	o := Overview{TotalVerses: len(verses)}

	totalReviews, correctReviews := 0, 0
	easeSum, reviewed := 0.0, 0
	for _, v := range verses {
		totalReviews += v.Scheduling.TotalReviews
		correctReviews += v.Scheduling.CorrectReviews
		if v.Scheduling.Reviewed() {
			easeSum += v.Scheduling.EaseFactor
			reviewed++
		}
		if v.Scheduling.Mastered() {
			o.MasteredVerses++
		}
		if v.Scheduling.IsDue(now) {
			o.DueToday++
		}
	}
	if totalReviews > 0 {
		o.Accuracy = 100 * float64(correctReviews) / float64(totalReviews)
	}
	if reviewed > 0 {
		o.AverageEaseFactor = easeSum / float64(reviewed)
	}

	o.StreakDays, o.LongestStreak = streaks(sessions, now)
	o.WeeklyProgress = weeklyProgress(sessions, now)

	return o
}

// streaks returns the current and longest runs of consecutive calendar
// days that have at least one session record.
func streaks(sessions []*store.SessionRecord, now time.Time) (current, longest int) {
	if len(sessions) == 0 {
		return 0, 0
	}

	// Bucket by calendar day in now's location so records stored in a
	// different zone still land on the right day.
	seen := make(map[time.Time]bool, len(sessions))
	for _, s := range sessions {
		seen[spacedrep.DateOnly(s.Date.In(now.Location()))] = true
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		// Consecutive means the next calendar day, not a 24h gap:
		// DST transitions make day-midnights 23h or 25h apart.
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	for d := spacedrep.DateOnly(now); seen[d]; d = d.AddDate(0, 0, -1) {
		current++
	}
	return current, longest
}

// weeklyProgress sums verses reviewed per calendar day over the
// trailing 7-day window ending today, oldest day first.
func weeklyProgress(sessions []*store.SessionRecord, now time.Time) [7]DayCount {
	var week [7]DayCount

	today := spacedrep.DateOnly(now)
	byDay := make(map[time.Time]int)
	for _, s := range sessions {
		byDay[spacedrep.DateOnly(s.Date.In(now.Location()))] += s.VersesReviewed
	}

	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i-6)
		week[i] = DayCount{
			Date:           d,
			Weekday:        d.Weekday(),
			VersesReviewed: byDay[d],
		}
	}
	return week
}
