package grader

import (
	"strings"
	"unicode"

	"github.com/versekeep/versekeep/internal/spacedrep"
)

// CorrectThreshold is the similarity score at or above which a
// free-text answer counts as correct on its own.
const CorrectThreshold = 0.7

// Result is the grading outcome for one free-text answer.
type Result struct {
	Similarity float64
	Correct    bool
}

// Grade scores a free-text answer against the expected text and
// combines it with the self-reported quality rating.
//
// An answer is correct when either the text similarity reaches
// CorrectThreshold or the rating is a passing one. Either signal alone
// suffices: a strong paraphrase with a low self-report passes, and so
// does a confident self-report with a weak text match. That leniency
// is policy, not an accident.
func Grade(answer, expected string, q spacedrep.Quality) Result {
	sim := Score(answer, expected)
	return Result{
		Similarity: sim,
		Correct:    sim >= CorrectThreshold || q.Passing(),
	}
}

// Score returns a similarity between two texts in [0, 1].
//
// Both texts are normalized first (see Normalize). Identical
// normalized texts score 1. Otherwise the score is the number of
// shared words divided by the longer word count; word order and
// repetition are not scored beyond presence.
func Score(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 1
	}

	wa, wb := strings.Fields(na), strings.Fields(nb)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	inA := make(map[string]bool, len(wa))
	for _, w := range wa {
		inA[w] = true
	}
	shared := make(map[string]bool)
	for _, w := range wb {
		if inA[w] {
			shared[w] = true
		}
	}

	longer := len(wa)
	if len(wb) > longer {
		longer = len(wb)
	}
	return float64(len(shared)) / float64(longer)
}

// Normalize prepares a text for comparison:
// lowercase, drop everything that is not a letter, digit or space,
// collapse whitespace runs to single spaces, trim the ends.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
