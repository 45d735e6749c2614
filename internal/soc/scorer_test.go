package soc

import (
	"math"
	"testing"

	"hireall/internal/posting"
)

func TestClassify_ExactTitleMatch(t *testing.T) {
	job := &posting.JobRecord{NormalizedTitle: "software engineer"}
	entries := []OccupationCode{
		{Code: "2134", Title: "Software Engineer", EligibilityNote: "eligible for sponsorship"},
	}

	m := Classify(job, entries)
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.Code != "2134" {
		t.Fatalf("code = %q", m.Code)
	}
	if math.Abs(m.Confidence-0.5) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.5", m.Confidence)
	}
	if len(m.MatchedKeywords) != 1 || m.MatchedKeywords[0] != "Software Engineer" {
		t.Fatalf("matched = %v", m.MatchedKeywords)
	}
	if m.EligibilityNote != "eligible for sponsorship" {
		t.Fatalf("note = %q", m.EligibilityNote)
	}
}

func TestClassify_NilWhenNothingClearsThreshold(t *testing.T) {
	job := &posting.JobRecord{NormalizedTitle: "zookeeper"}
	entries := []OccupationCode{
		{Code: "2421", Title: "Accountant"},
		{Code: "3543", Title: "Marketing Associate"},
	}
	if m := Classify(job, entries); m != nil {
		t.Fatalf("expected nil, got %+v", m)
	}
}

func TestClassify_KeywordBonusAloneBelowThreshold(t *testing.T) {
	// Two keyword hits score 0.2, which does not clear the 0.3 floor.
	job := &posting.JobRecord{
		NormalizedTitle: "chartered ledger clerk",
		Keywords:        []string{"chartered", "ledger"},
	}
	entries := []OccupationCode{
		{Code: "2421", Title: "Chartered Ledger Accountant"},
	}
	if m := Classify(job, entries); m != nil {
		t.Fatalf("expected nil, got %+v", m)
	}
}

func TestClassify_StackedBonusesClampToOne(t *testing.T) {
	job := &posting.JobRecord{
		NormalizedTitle: "software engineer",
		Description:     "builds software systems",
		Keywords:        []string{"software", "engineer"},
	}
	entries := []OccupationCode{
		{
			Code:          "2134",
			Title:         "Software Engineer",
			RelatedTitles: []string{"Software Engineer", "Software Engineers"},
		},
	}

	m := Classify(job, entries)
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want clamp to 1.0", m.Confidence)
	}
	// "Software Engineer" shows up as both canonical and related title and
	// must be reported once.
	if len(m.MatchedKeywords) != 4 {
		t.Fatalf("matched = %v", m.MatchedKeywords)
	}
}

func TestClassify_FirstOfEqualScoresWins(t *testing.T) {
	job := &posting.JobRecord{NormalizedTitle: "software engineer"}
	entries := []OccupationCode{
		{Code: "1111", Title: "Software Engineer"},
		{Code: "2222", Title: "Software Engineer"},
	}

	m := Classify(job, entries)
	if m == nil || m.Code != "1111" {
		t.Fatalf("match = %+v", m)
	}
}

func TestClassify_DepartmentAndSeniorityBonuses(t *testing.T) {
	job := &posting.JobRecord{
		NormalizedTitle: "marketing executive",
		Department:      "marketing",
		Seniority:       "executive",
	}
	entries := []OccupationCode{
		{Code: "3543", Title: "Marketing Executive"},
	}

	m := Classify(job, entries)
	if m == nil {
		t.Fatalf("expected a match")
	}
	want := 0.5 + 0.15 + 0.1
	if math.Abs(m.Confidence-want) > 1e-9 {
		t.Fatalf("confidence = %v, want %v", m.Confidence, want)
	}
}

func TestClassify_EmptyInputs(t *testing.T) {
	if m := Classify(nil, nil); m != nil {
		t.Fatalf("expected nil for nil job")
	}
	if m := Classify(&posting.JobRecord{}, []OccupationCode{{Code: "1", Title: "Anything"}}); m != nil {
		t.Fatalf("expected nil for empty title")
	}
}
