package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/versekeep/versekeep/internal/spacedrep"
	"github.com/versekeep/versekeep/internal/verse"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "versekeep.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestVerse(t *testing.T, book string, chapter, num int, tags ...string) *verse.MemorizedVerse {
	t.Helper()
	v, err := verse.New(
		verse.Reference{Book: book, Chapter: chapter, Verse: num},
		"For God so loved the world that he gave his only Son",
		tags,
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("verse.New: %v", err)
	}
	return v
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestVerseCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Verses()
	ctx := context.Background()

	v := newTestVerse(t, "John", 3, 16, "gospel", "love")
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Reference != v.Reference {
		t.Errorf("reference = %+v, want %+v", got.Reference, v.Reference)
	}
	if got.Text != v.Text {
		t.Errorf("text = %q, want %q", got.Text, v.Text)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "gospel" || got.Tags[1] != "love" {
		t.Errorf("tags = %v, want [gospel love]", got.Tags)
	}
	if got.Scheduling.EaseFactor != spacedrep.DefaultEaseFactor {
		t.Errorf("ease = %v, want %v", got.Scheduling.EaseFactor, spacedrep.DefaultEaseFactor)
	}
	if got.Scheduling.Reviewed() {
		t.Error("a new verse must round-trip with no last-reviewed time")
	}
}

func TestVerseGet_UnknownIDIsNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Verses().Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestVerseDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Verses()
	ctx := context.Background()

	v := newTestVerse(t, "John", 3, 16)
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, v.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, v.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestApplyReview_PersistsTransition(t *testing.T) {
	s := openTestStore(t)
	repo := s.Verses()
	ctx := context.Background()

	v := newTestVerse(t, "John", 3, 16)
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	updated, err := repo.ApplyReview(ctx, v.ID, func(st spacedrep.SchedulingState) spacedrep.SchedulingState {
		return spacedrep.Transition(st, 5, true, now)
	})
	if err != nil {
		t.Fatalf("apply review: %v", err)
	}
	if updated.Scheduling.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", updated.Scheduling.Repetitions)
	}

	// The new state is durable, not just returned.
	got, err := repo.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Scheduling.Repetitions != 1 || got.Scheduling.TotalReviews != 1 || got.Scheduling.CorrectReviews != 1 {
		t.Errorf("persisted scheduling = %+v, want one correct review applied", got.Scheduling)
	}
	if !got.Scheduling.Reviewed() {
		t.Error("last-reviewed time should be set after a review")
	}
}

func TestApplyReview_UnknownIDIsNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Verses().ApplyReview(context.Background(), "no-such-id", func(st spacedrep.SchedulingState) spacedrep.SchedulingState {
		return st
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyReview_ConcurrentUpdatesNotLost(t *testing.T) {
	s := openTestStore(t)
	repo := s.Verses()
	ctx := context.Background()

	v := newTestVerse(t, "John", 3, 16)
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Each writer bumps the counter based on the state it read. If the
	// read-modify-write were not serialized per id, increments would
	// be lost.
	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ApplyReview(ctx, v.ID, func(st spacedrep.SchedulingState) spacedrep.SchedulingState {
				st.TotalReviews++
				return st
			})
			if err != nil {
				t.Errorf("apply review: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Scheduling.TotalReviews != writers {
		t.Errorf("TotalReviews = %d, want %d (lost updates)", got.Scheduling.TotalReviews, writers)
	}
}

func TestListDue_BoundaryAndOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Verses()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	schedule := func(v *verse.MemorizedVerse, due time.Time) {
		t.Helper()
		if err := repo.Create(ctx, v); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := repo.ApplyReview(ctx, v.ID, func(st spacedrep.SchedulingState) spacedrep.SchedulingState {
			st.NextReviewDate = due
			return st
		})
		if err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}

	overdue := newTestVerse(t, "Psalms", 23, 1)
	schedule(overdue, spacedrep.DateOnly(now).AddDate(0, 0, -3))
	dueToday := newTestVerse(t, "John", 3, 16)
	schedule(dueToday, spacedrep.DateOnly(now))
	tomorrow := newTestVerse(t, "Romans", 8, 28)
	schedule(tomorrow, spacedrep.DateOnly(now).AddDate(0, 0, 1))

	due, err := repo.ListDue(ctx, now)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}

	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2 (tomorrow's verse excluded)", len(due))
	}
	if due[0].ID != overdue.ID {
		t.Errorf("due[0] = %s, want the most overdue verse first", due[0].Reference)
	}
	if due[1].ID != dueToday.ID {
		t.Errorf("due[1] = %s, want the verse due today", due[1].Reference)
	}
}

func TestSessionAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, &SessionRecord{
			ID:               "session-" + string(rune('a'+i)),
			Date:             base.AddDate(0, 0, i),
			VersesReviewed:   i + 1,
			CorrectAnswers:   i,
			AverageQuality:   3.5,
			TimeSpentMinutes: 4.25,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.List(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.Before(all[i-1].Date) {
			t.Fatal("records not ordered by date ascending")
		}
	}
	if all[0].VersesReviewed != 1 || all[0].AverageQuality != 3.5 {
		t.Errorf("first record = %+v, want the Mar 1 session", all[0])
	}

	// Range bounds are inclusive on both sides.
	ranged, err := repo.List(ctx, base.AddDate(0, 0, 1), base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("list ranged: %v", err)
	}
	if len(ranged) != 1 || ranged[0].ID != "session-b" {
		t.Errorf("ranged = %+v, want only the Mar 2 session", ranged)
	}
}
