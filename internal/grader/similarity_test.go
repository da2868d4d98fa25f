package grader

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"For God so loved the world,", "for god so loved the world"},
		{"  Trust   in the LORD!  ", "trust in the lord"},
		{"He said: \"I am.\"", "he said i am"},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScore_Reflexive(t *testing.T) {
	texts := []string{
		"For God so loved the world",
		"a",
		"The LORD is my shepherd; I shall not want.",
	}
	for _, s := range texts {
		if got := Score(s, s); got != 1 {
			t.Errorf("Score(%q, same) = %v, want 1", s, got)
		}
	}
}

func TestScore_Symmetric(t *testing.T) {
	a := "the lord is my shepherd"
	b := "my shepherd is the lord almighty"
	if Score(a, b) != Score(b, a) {
		t.Errorf("Score(a,b) = %v, Score(b,a) = %v", Score(a, b), Score(b, a))
	}
}

func TestScore_SharedWordsOverLongerLength(t *testing.T) {
	// 5 of the 6 words of the longer text are shared.
	a := "for god so loved the world"
	b := "god so loved the world"
	got := Score(a, b)
	want := 5.0 / 6.0
	if got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScore_NoOverlap(t *testing.T) {
	if got := Score("alpha beta", "gamma delta"); got != 0 {
		t.Errorf("Score = %v, want 0", got)
	}
}

func TestScore_PunctuationAndCaseIgnored(t *testing.T) {
	if got := Score("Trust in the LORD, with all your heart!", "trust in the lord with all your heart"); got != 1 {
		t.Errorf("Score = %v, want 1", got)
	}
}

func TestGrade_QualityOverridesPoorMatch(t *testing.T) {
	// A passing self-report marks the answer correct even at similarity 0.
	r := Grade("completely different words", "for god so loved the world", 3)
	if !r.Correct {
		t.Error("quality >= 3 should mark the answer correct regardless of similarity")
	}
	if r.Similarity >= CorrectThreshold {
		t.Fatalf("test premise broken: similarity = %v", r.Similarity)
	}
}

func TestGrade_SimilarityOverridesLowQuality(t *testing.T) {
	r := Grade("For God so loved the world", "for god so loved the world!", 1)
	if !r.Correct {
		t.Error("similarity >= threshold should mark the answer correct despite a low rating")
	}
	if r.Similarity != 1 {
		t.Errorf("Similarity = %v, want 1", r.Similarity)
	}
}

func TestGrade_BothSignalsWeak(t *testing.T) {
	r := Grade("alpha beta", "gamma delta epsilon", 2)
	if r.Correct {
		t.Error("neither signal passes; answer should be incorrect")
	}
}
