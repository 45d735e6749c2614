package fields

import "testing"

func TestParseEducation(t *testing.T) {
	content := `University of Leeds 2014 - 2017
BSc Computer Science
GPA: 3.8

Leeds City College
A-Levels in Mathematics`

	entries := ParseEducation(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Institution != "University of Leeds" {
		t.Fatalf("institution = %q", first.Institution)
	}
	if first.Degree != "BSc Computer Science" {
		t.Fatalf("degree = %q", first.Degree)
	}
	if first.Field != "Computer Science" {
		t.Fatalf("field = %q", first.Field)
	}
	if first.GPA != "3.8" {
		t.Fatalf("gpa = %q", first.GPA)
	}
	if first.StartDate != "2014" || first.EndDate != "2017" {
		t.Fatalf("dates = %q-%q", first.StartDate, first.EndDate)
	}

	second := entries[1]
	if second.Institution != "Leeds City College" {
		t.Fatalf("institution = %q", second.Institution)
	}
	if second.Field != "Mathematics" {
		t.Fatalf("field = %q", second.Field)
	}
}

func TestParseEducation_DegreeFirstMatchWins(t *testing.T) {
	content := `Open University
Master of Science in Data Engineering
Bachelor of Arts in History`

	entries := ParseEducation(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Degree != "Master of Science in Data Engineering" {
		t.Fatalf("degree = %q", entries[0].Degree)
	}
	if entries[0].Field != "Data Engineering" {
		t.Fatalf("field = %q", entries[0].Field)
	}
}
