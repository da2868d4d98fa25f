package store

import (
	"context"
	"errors"
	"time"

	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/verse"
)

// ErrNotFound is returned when a verse id is unknown. It is a caller
// error and not worth retrying.
var ErrNotFound = errors.New("verse not found")

// SessionRecord is the persisted summary of one completed quiz
// session. Immutable after creation; the session history is the input
// to the stats aggregator.
type SessionRecord struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	VersesReviewed   int       `json:"verses_reviewed"`
	CorrectAnswers   int       `json:"correct_answers"`
	AverageQuality   float64   `json:"average_quality"`
	TimeSpentMinutes float64   `json:"time_spent_minutes"`
}

// VerseRepo is the durable storage contract for memorized verses.
type VerseRepo interface {
	// Create stores a new verse. The id must not already exist.
	Create(ctx context.Context, v *verse.MemorizedVerse) error

	// Get returns the verse with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*verse.MemorizedVerse, error)

	// List returns all verses.
	List(ctx context.Context) ([]*verse.MemorizedVerse, error)

	// ListDue returns the verses due as of the given time, most
	// overdue first.
	ListDue(ctx context.Context, asOf time.Time) ([]*verse.MemorizedVerse, error)

	// ApplyReview atomically replaces the stored scheduling state of
	// the verse with fn(current). No other writer can interleave
	// between the read and the write; implementations serialize per
	// verse id. Returns the verse with the new state applied.
	ApplyReview(ctx context.Context, id string, fn func(spacedrep.SchedulingState) spacedrep.SchedulingState) (*verse.MemorizedVerse, error)

	// Delete removes a verse permanently.
	Delete(ctx context.Context, id string) error
}

// SessionRepo is the durable storage contract for session records.
type SessionRepo interface {
	// Append stores a completed session record.
	Append(ctx context.Context, rec *SessionRecord) error

	// List returns session records ordered by date ascending. Zero
	// from/to times mean unbounded on that side.
	List(ctx context.Context, from, to time.Time) ([]*SessionRecord, error)
}
