package fuzzy

import (
	"math"
	"testing"
)

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"developer", "developer", 0},
		{"engineer", "enginer", 1},
	}
	for _, c := range cases {
		if got := EditDistance(c.a, c.b); got != c.want {
			t.Fatalf("EditDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"", "go", "software engineer"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Fatalf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"software engineer", "software developer"},
		{"data analyst", "data scientist"},
		{"", "abc"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Fatalf("similarity not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("similarity out of range: %v", ab)
		}
	}
}

func TestExtractWords(t *testing.T) {
	words := ExtractWords("The Senior Go Developer, with SQL and APIs!")
	want := map[string]bool{"senior": true, "developer": true, "sql": true, "apis": true}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), words)
	}
	for _, w := range words {
		if !want[w] {
			t.Fatalf("unexpected word %q in %v", w, words)
		}
	}
}

func TestExtractWords_DropsShortAndStopWords(t *testing.T) {
	words := ExtractWords("to be or not to be a go qa")
	if len(words) != 0 {
		t.Fatalf("expected no words, got %v", words)
	}
}

func TestWordOverlap(t *testing.T) {
	if got := WordOverlap("", ""); got != 0 {
		t.Fatalf("empty overlap = %v, want 0", got)
	}

	text := "senior backend engineer building distributed systems"
	if got := WordOverlap(text, text); got != 1.0 {
		t.Fatalf("self overlap = %v, want 1.0", got)
	}

	ab := WordOverlap("python developer", "python engineer")
	ba := WordOverlap("python engineer", "python developer")
	if ab != ba {
		t.Fatalf("overlap not symmetric: %v vs %v", ab, ba)
	}
	if math.Abs(ab-1.0/3.0) > 1e-9 {
		t.Fatalf("overlap = %v, want 1/3", ab)
	}
}
