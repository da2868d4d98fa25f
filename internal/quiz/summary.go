package quiz

import (
	"time"

	"github.com/versekeep/versekeep/internal/store"
)

// buildRecord folds the session's results into a SessionRecord.
func (s *Session) buildRecord(completedAt time.Time) *store.SessionRecord {
	var qualitySum, avg float64
	correct := 0
	for _, r := range s.results {
		qualitySum += float64(r.Quality)
		if r.Correct {
			correct++
		}
	}
	if len(s.results) > 0 {
		avg = qualitySum / float64(len(s.results))
	}

	return &store.SessionRecord{
		ID:               s.id,
		Date:             completedAt,
		VersesReviewed:   len(s.results),
		CorrectAnswers:   correct,
		AverageQuality:   avg,
		TimeSpentMinutes: completedAt.Sub(s.startedAt).Minutes(),
	}
}
