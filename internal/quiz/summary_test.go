package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versekeep/versekeep/internal/store"
)

func TestBuildRecord(t *testing.T) {
	started := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s := &Session{
		id:        "session-1",
		startedAt: started,
		results: []ReviewResult{
			{VerseID: "a", Quality: 5, Correct: true},
			{VerseID: "b", Quality: 4, Correct: true},
			{VerseID: "c", Quality: 1, Correct: false},
		},
	}

	completedAt := started.Add(9 * time.Minute)
	rec := s.buildRecord(completedAt)

	require.NotNil(t, rec)
	assert.Equal(t, &store.SessionRecord{
		ID:               "session-1",
		Date:             completedAt,
		VersesReviewed:   3,
		CorrectAnswers:   2,
		AverageQuality:   10.0 / 3.0,
		TimeSpentMinutes: 9,
	}, rec)
}

func TestBuildRecord_NoResults(t *testing.T) {
	started := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s := &Session{id: "session-2", startedAt: started}

	rec := s.buildRecord(started.Add(30 * time.Second))

	assert.Zero(t, rec.VersesReviewed)
	assert.Zero(t, rec.AverageQuality)
	assert.InDelta(t, 0.5, rec.TimeSpentMinutes, 1e-9)
}
