package sections

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Smith
jane@example.com | 07700 900123

SUMMARY
Seasoned backend developer.

EXPERIENCE
Hireall | Lead Developer | 2021 - Present
- Built the extraction pipeline

EDUCATION
University of Leeds
BSc Computer Science

Skills:
Go, SQL, Docker`

func TestSegment_KnownHeaders(t *testing.T) {
	secs := Segment(sampleResume)

	wantOrder := []Kind{KindContact, KindSummary, KindExperience, KindEducation, KindSkills}
	if len(secs) != len(wantOrder) {
		t.Fatalf("expected %d sections, got %d: %+v", len(wantOrder), len(secs), secs)
	}
	for i, k := range wantOrder {
		if secs[i].Kind != k {
			t.Fatalf("section %d = %s, want %s", i, secs[i].Kind, k)
		}
	}

	for _, s := range secs[1:4] {
		if s.Confidence != 0.9 {
			t.Fatalf("section %s confidence = %v, want 0.9", s.Kind, s.Confidence)
		}
	}
}

func TestSegment_HeuristicHeaderConfidence(t *testing.T) {
	secs := Segment(sampleResume)

	skills, ok := Find(secs, KindSkills)
	if !ok {
		t.Fatalf("expected skills section")
	}
	// "Skills:" carries a colon, so it is resolved by the header heuristic.
	if skills.Confidence != 0.7 {
		t.Fatalf("skills confidence = %v, want 0.7", skills.Confidence)
	}
	if !strings.Contains(skills.Content, "Go, SQL, Docker") {
		t.Fatalf("skills content missing items: %q", skills.Content)
	}
}

func TestSegment_FallbackSubstringGuess(t *testing.T) {
	text := "WHERE I WORKED\nAcme Ltd\n\nMY SCHOOLING\nLeeds"
	secs := Segment(text)
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].Kind != KindExperience || secs[0].Confidence != 0.7 {
		t.Fatalf("unexpected first section: %+v", secs[0])
	}
	if secs[1].Kind != KindEducation {
		t.Fatalf("unexpected second section: %+v", secs[1])
	}
}

func TestSegment_ReconstructsNonHeaderLines(t *testing.T) {
	secs := Segment(sampleResume)

	got := make([]string, 0)
	for _, s := range secs {
		if s.Content == "" {
			continue
		}
		got = append(got, strings.Split(s.Content, "\n")...)
	}

	headerSet := map[string]bool{"SUMMARY": true, "EXPERIENCE": true, "EDUCATION": true, "Skills:": true}
	want := make([]string, 0)
	for _, line := range strings.Split(sampleResume, "\n") {
		if headerSet[strings.TrimSpace(line)] {
			continue
		}
		want = append(want, line)
	}

	// Leading blank lines of the preamble are skipped before a section opens;
	// everything else must appear exactly once, in order.
	wi := 0
	for _, g := range got {
		for wi < len(want) && strings.TrimSpace(want[wi]) == "" && strings.TrimSpace(g) != "" {
			wi++
		}
		if wi >= len(want) || want[wi] != g {
			t.Fatalf("line %q not reconstructed in order", g)
		}
		wi++
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	if secs := Segment(""); len(secs) != 0 {
		t.Fatalf("expected no sections, got %+v", secs)
	}
}
