package quiz

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/versekeep/versekeep/internal/verse"
)

// Mode selects how a verse is asked.
type Mode int

const (
	// ModeMixed picks one of the concrete modes uniformly at random
	// per verse.
	ModeMixed Mode = iota
	// ModeReferenceToText shows the reference and asks for the text.
	ModeReferenceToText
	// ModeTextToReference shows the text and asks for the reference.
	ModeTextToReference
	// ModeFillBlanks redacts a few words and asks for them.
	ModeFillBlanks
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeReferenceToText:
		return "reference-to-text"
	case ModeTextToReference:
		return "text-to-reference"
	case ModeFillBlanks:
		return "fill-in-blanks"
	default:
		return "mixed"
	}
}

// ParseMode maps a mode name back to a Mode. Unknown names fall back
// to mixed.
func ParseMode(s string) Mode {
	switch s {
	case "reference-to-text":
		return ModeReferenceToText
	case "text-to-reference":
		return ModeTextToReference
	case "fill-in-blanks":
		return ModeFillBlanks
	default:
		return ModeMixed
	}
}

// Blank is the placeholder shown for a redacted word.
const Blank = "_____"

// MaxBlanks caps how many words a fill-in-blanks question redacts.
const MaxBlanks = 3

// Question is one prompt generated for a verse.
type Question struct {
	VerseID   string
	Reference verse.Reference
	Mode      Mode
	// Prompt is the text shown to the user.
	Prompt string
	// Expected is the answer the grader compares against and the
	// reveal shows.
	Expected string
	// BlankIndices are the redacted word positions, ascending
	// (fill-in-blanks only).
	BlankIndices []int
}

// newQuestion builds a question for the verse in the given mode,
// resolving ModeMixed with the supplied generator.
func newQuestion(v *verse.MemorizedVerse, mode Mode, rng *rand.Rand) *Question {
	if mode == ModeMixed {
		mode = []Mode{ModeReferenceToText, ModeTextToReference, ModeFillBlanks}[rng.Intn(3)]
	}

	q := &Question{
		VerseID:   v.ID,
		Reference: v.Reference,
		Mode:      mode,
	}

	switch mode {
	case ModeTextToReference:
		q.Prompt = v.Text
		q.Expected = v.Reference.String()
	case ModeFillBlanks:
		words := strings.Fields(v.Text)
		q.BlankIndices = pickBlanks(len(words), rng)

		redacted := make([]string, 0, len(q.BlankIndices))
		display := make([]string, len(words))
		copy(display, words)
		for _, i := range q.BlankIndices {
			redacted = append(redacted, words[i])
			display[i] = Blank
		}
		q.Prompt = v.Reference.String() + "\n" + strings.Join(display, " ")
		q.Expected = strings.Join(redacted, " ")
	default: // ModeReferenceToText
		q.Prompt = v.Reference.String()
		q.Expected = v.Text
	}

	return q
}

// pickBlanks chooses clamp(wordCount/5, 1, MaxBlanks) distinct word
// indices, returned in ascending order so the expected answer reads in
// verse order.
func pickBlanks(wordCount int, rng *rand.Rand) []int {
	if wordCount == 0 {
		return nil
	}

	n := wordCount / 5
	if n < 1 {
		n = 1
	}
	if n > MaxBlanks {
		n = MaxBlanks
	}
	if n > wordCount {
		n = wordCount
	}

	chosen := make(map[int]bool, n)
	for len(chosen) < n {
		chosen[rng.Intn(wordCount)] = true
	}

	out := make([]int, 0, n)
	for i := range chosen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
