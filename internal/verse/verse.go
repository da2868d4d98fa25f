package verse

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/versekeep/versekeep/internal/spacedrep"
)

// Reference identifies a verse within a book.
type Reference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// String renders the reference in the usual "Book C:V" form.
func (r Reference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Validate checks the reference fields. Book must be non-blank and
// chapter/verse numbers start at 1.
func (r Reference) Validate() error {
	if strings.TrimSpace(r.Book) == "" {
		return fmt.Errorf("book name is required")
	}
	if r.Chapter < 1 {
		return fmt.Errorf("chapter must be >= 1, got %d", r.Chapter)
	}
	if r.Verse < 1 {
		return fmt.Errorf("verse must be >= 1, got %d", r.Verse)
	}
	return nil
}

// MemorizedVerse is the unit being learned: a verse text plus the
// scheduling state the spaced repetition engine maintains for it.
// Text is immutable once set. Scheduling is written only through
// spacedrep.Transition.
type MemorizedVerse struct {
	ID         string                    `json:"id"`
	Reference  Reference                 `json:"reference"`
	Text       string                    `json:"text"`
	Tags       []string                  `json:"tags,omitempty"`
	Scheduling spacedrep.SchedulingState `json:"scheduling"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// New creates a memorized verse with a fresh UUID and scheduling state
// that makes it due immediately.
func New(ref Reference, text string, tags []string, now time.Time) (*MemorizedVerse, error) {
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("verse text is required")
	}
	return &MemorizedVerse{
		ID:         uuid.NewString(),
		Reference:  ref,
		Text:       text,
		Tags:       normalizeTags(tags),
		Scheduling: spacedrep.NewState(now),
		CreatedAt:  now,
	}, nil
}

// HasTag reports whether the verse carries the given tag.
func (v *MemorizedVerse) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// WordCount returns the number of whitespace-separated words in the
// verse text.
func (v *MemorizedVerse) WordCount() int {
	return len(strings.Fields(v.Text))
}

// normalizeTags trims, lowercases, dedupes and sorts tags. Insertion
// order carries no meaning, so a canonical order keeps comparisons and
// persistence stable.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
