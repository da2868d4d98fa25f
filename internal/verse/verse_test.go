package verse

import (
	"testing"
	"time"
)

var addedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestNew_InitialScheduling(t *testing.T) {
	v, err := New(Reference{Book: "John", Chapter: 3, Verse: 16}, "For God so loved the world", nil, addedAt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v.ID == "" {
		t.Error("expected a generated id")
	}
	if v.Scheduling.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5", v.Scheduling.EaseFactor)
	}
	if v.Scheduling.IntervalDays != 0 || v.Scheduling.Repetitions != 0 {
		t.Errorf("interval/repetitions = %d/%d, want 0/0", v.Scheduling.IntervalDays, v.Scheduling.Repetitions)
	}
	if !v.Scheduling.IsDue(addedAt) {
		t.Error("new verse should be due immediately")
	}
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		ref  Reference
		text string
	}{
		{"blank book", Reference{Book: "  ", Chapter: 1, Verse: 1}, "text"},
		{"zero chapter", Reference{Book: "Psalms", Chapter: 0, Verse: 1}, "text"},
		{"zero verse", Reference{Book: "Psalms", Chapter: 23, Verse: 0}, "text"},
		{"blank text", Reference{Book: "Psalms", Chapter: 23, Verse: 1}, "   "},
	}
	for _, tc := range cases {
		if _, err := New(tc.ref, tc.text, nil, addedAt); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestReferenceString(t *testing.T) {
	ref := Reference{Book: "1 Corinthians", Chapter: 13, Verse: 4}
	if got := ref.String(); got != "1 Corinthians 13:4" {
		t.Errorf("String() = %q", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	v, err := New(Reference{Book: "Romans", Chapter: 8, Verse: 28}, "And we know", []string{" Hope ", "hope", "Promise", ""}, addedAt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"hope", "promise"}
	if len(v.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", v.Tags, want)
	}
	for i := range want {
		if v.Tags[i] != want[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, v.Tags[i], want[i])
		}
	}
	if !v.HasTag("HOPE") {
		t.Error("HasTag should be case-insensitive")
	}
}
