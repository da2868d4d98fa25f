package quiz

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/versekeep/versekeep/internal/verse"
)

func blankVerse(t *testing.T, words int) *verse.MemorizedVerse {
	t.Helper()
	parts := make([]string, words)
	for i := range parts {
		parts[i] = "word" + string(rune('a'+i%26))
	}
	v, err := verse.New(verse.Reference{Book: "Psalms", Chapter: 119, Verse: 11}, strings.Join(parts, " "), nil, time.Now())
	if err != nil {
		t.Fatalf("verse.New: %v", err)
	}
	return v
}

func TestPickBlanks_CountClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cases := []struct {
		words int
		want  int
	}{
		{1, 1},   // floor(1/5) = 0, clamped up to 1
		{4, 1},   //
		{5, 1},   //
		{10, 2},  //
		{14, 2},  //
		{15, 3},  //
		{40, 3},  // capped at MaxBlanks
		{100, 3}, //
	}
	for _, tc := range cases {
		got := pickBlanks(tc.words, rng)
		if len(got) != tc.want {
			t.Errorf("pickBlanks(%d) chose %d indices, want %d", tc.words, len(got), tc.want)
		}
	}
}

func TestPickBlanks_DistinctAscendingInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		idx := pickBlanks(15, rng)
		for i, n := range idx {
			if n < 0 || n >= 15 {
				t.Fatalf("index %d out of range", n)
			}
			if i > 0 && idx[i-1] >= n {
				t.Fatalf("indices not strictly ascending: %v", idx)
			}
		}
	}
}

func TestNewQuestion_ReferenceToText(t *testing.T) {
	v := blankVerse(t, 6)
	q := newQuestion(v, ModeReferenceToText, rand.New(rand.NewSource(1)))

	if q.Prompt != "Psalms 119:11" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if q.Expected != v.Text {
		t.Errorf("Expected = %q, want verse text", q.Expected)
	}
}

func TestNewQuestion_TextToReference(t *testing.T) {
	v := blankVerse(t, 6)
	q := newQuestion(v, ModeTextToReference, rand.New(rand.NewSource(1)))

	if q.Prompt != v.Text {
		t.Errorf("Prompt = %q, want verse text", q.Prompt)
	}
	if q.Expected != "Psalms 119:11" {
		t.Errorf("Expected = %q", q.Expected)
	}
}

func TestNewQuestion_FillBlanks(t *testing.T) {
	v := blankVerse(t, 15)
	words := strings.Fields(v.Text)
	q := newQuestion(v, ModeFillBlanks, rand.New(rand.NewSource(5)))

	if len(q.BlankIndices) != 3 {
		t.Fatalf("BlankIndices = %v, want 3 indices for 15 words", q.BlankIndices)
	}

	// Expected answer is the redacted words joined in index order.
	var want []string
	for _, i := range q.BlankIndices {
		want = append(want, words[i])
	}
	if q.Expected != strings.Join(want, " ") {
		t.Errorf("Expected = %q, want %q", q.Expected, strings.Join(want, " "))
	}

	// The prompt shows a blank at each redacted position.
	if got := strings.Count(q.Prompt, Blank); got != 3 {
		t.Errorf("prompt contains %d blanks, want 3", got)
	}
	promptBody := strings.SplitN(q.Prompt, "\n", 2)[1]
	shown := strings.Fields(promptBody)
	for _, i := range q.BlankIndices {
		if shown[i] != Blank {
			t.Errorf("word %d = %q, want %q", i, shown[i], Blank)
		}
	}
}

func TestParseMode_RoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeMixed, ModeReferenceToText, ModeTextToReference, ModeFillBlanks} {
		if got := ParseMode(m.String()); got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if got := ParseMode("bogus"); got != ModeMixed {
		t.Errorf("ParseMode(bogus) = %v, want ModeMixed", got)
	}
}
