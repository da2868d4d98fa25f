package store

import (
	"context"
	"fmt"
	"time"

	"github.com/versekeep/versekeep/ent"
	entverse "github.com/versekeep/versekeep/ent/verse"
	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/verse"
)

type verseRepo struct {
	client *ent.Client
	locks  *keyedMutex
}

func (r *verseRepo) Create(ctx context.Context, v *verse.MemorizedVerse) error {
	builder := r.client.Verse.Create().
		SetVerseID(v.ID).
		SetBook(v.Reference.Book).
		SetChapter(v.Reference.Chapter).
		SetVerseNum(v.Reference.Verse).
		SetText(v.Text).
		SetCreatedAt(v.CreatedAt)

	if len(v.Tags) > 0 {
		builder = builder.SetTags(v.Tags)
	}

	applyScheduling(builder.Mutation(), v.Scheduling)

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save verse: %w", err)
	}
	return nil
}

func (r *verseRepo) Get(ctx context.Context, id string) (*verse.MemorizedVerse, error) {
	row, err := r.client.Verse.Query().
		Where(entverse.VerseID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("verse %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query verse: %w", err)
	}
	return toDomain(row), nil
}

func (r *verseRepo) List(ctx context.Context) ([]*verse.MemorizedVerse, error) {
	rows, err := r.client.Verse.Query().
		Order(ent.Asc(entverse.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list verses: %w", err)
	}
	return toDomainAll(rows), nil
}

func (r *verseRepo) ListDue(ctx context.Context, asOf time.Time) ([]*verse.MemorizedVerse, error) {
	rows, err := r.client.Verse.Query().
		Where(entverse.NextReviewDateLTE(spacedrep.DateOnly(asOf))).
		Order(ent.Asc(entverse.FieldNextReviewDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due verses: %w", err)
	}
	return toDomainAll(rows), nil
}

// ApplyReview performs the read-modify-write of a verse's scheduling
// state under the per-id lock, so a concurrent update of the same
// verse can never be lost.
func (r *verseRepo) ApplyReview(ctx context.Context, id string, fn func(spacedrep.SchedulingState) spacedrep.SchedulingState) (*verse.MemorizedVerse, error) {
	r.locks.Lock(id)
	defer r.locks.Unlock(id)

	row, err := r.client.Verse.Query().
		Where(entverse.VerseID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("verse %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query verse: %w", err)
	}

	next := fn(schedulingOf(row))

	builder := r.client.Verse.UpdateOne(row)
	applyScheduling(builder.Mutation(), next)

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update scheduling: %w", err)
	}
	return toDomain(updated), nil
}

func (r *verseRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Verse.Delete().
		Where(entverse.VerseID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete verse: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("verse %s: %w", id, ErrNotFound)
	}
	return nil
}

// applyScheduling copies a scheduling state onto a verse mutation.
func applyScheduling(m *ent.VerseMutation, s spacedrep.SchedulingState) {
	m.SetEaseFactor(s.EaseFactor)
	m.SetIntervalDays(s.IntervalDays)
	m.SetRepetitions(s.Repetitions)
	m.SetNextReviewDate(s.NextReviewDate)
	m.SetStreak(s.Streak)
	m.SetTotalReviews(s.TotalReviews)
	m.SetCorrectReviews(s.CorrectReviews)
	if !s.LastReviewedAt.IsZero() {
		m.SetLastReviewedAt(s.LastReviewedAt)
	}
}

func schedulingOf(row *ent.Verse) spacedrep.SchedulingState {
	s := spacedrep.SchedulingState{
		EaseFactor:     row.EaseFactor,
		IntervalDays:   row.IntervalDays,
		Repetitions:    row.Repetitions,
		NextReviewDate: row.NextReviewDate,
		Streak:         row.Streak,
		TotalReviews:   row.TotalReviews,
		CorrectReviews: row.CorrectReviews,
	}
	if row.LastReviewedAt != nil {
		s.LastReviewedAt = *row.LastReviewedAt
	}
	return s
}

func toDomain(row *ent.Verse) *verse.MemorizedVerse {
	return &verse.MemorizedVerse{
		ID: row.VerseID,
		Reference: verse.Reference{
			Book:    row.Book,
			Chapter: row.Chapter,
			Verse:   row.VerseNum,
		},
		Text:       row.Text,
		Tags:       row.Tags,
		Scheduling: schedulingOf(row),
		CreatedAt:  row.CreatedAt,
	}
}

func toDomainAll(rows []*ent.Verse) []*verse.MemorizedVerse {
	out := make([]*verse.MemorizedVerse, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
