package fields

import (
	"strings"
	"testing"
)

func TestParseExperience_SeparatedHeader(t *testing.T) {
	content := `Hireall | Lead Developer | London, UK | 2021 - Present
- Shipped the job extraction pipeline end to end
- Cut classification latency by 40 percent
- Mentored four junior engineers across two teams`

	entries := ParseExperience(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if !strings.Contains(e.Company, "Hireall") {
		t.Fatalf("company = %q, want Hireall", e.Company)
	}
	if !strings.Contains(e.Title, "Lead Developer") {
		t.Fatalf("title = %q, want Lead Developer", e.Title)
	}
	if len(e.Achievements) != 3 {
		t.Fatalf("achievements = %d, want 3: %v", len(e.Achievements), e.Achievements)
	}
	if !e.IsCurrent {
		t.Fatalf("expected IsCurrent")
	}
	if e.StartDate != "2021" {
		t.Fatalf("start = %q, want 2021", e.StartDate)
	}
	if e.Location != "London, UK" {
		t.Fatalf("location = %q, want London, UK", e.Location)
	}
}

func TestParseExperience_CompanySuffixWins(t *testing.T) {
	entries := ParseExperience("Acme Solutions Ltd | Backend Engineer | 2019 - 2021")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Company != "Acme Solutions Ltd" {
		t.Fatalf("company = %q", e.Company)
	}
	if e.Title != "Backend Engineer" {
		t.Fatalf("title = %q", e.Title)
	}
	if e.IsCurrent {
		t.Fatalf("unexpected IsCurrent")
	}
	if e.EndDate != "2021" {
		t.Fatalf("end = %q, want 2021", e.EndDate)
	}
}

func TestParseExperience_TwoLineHeaderWithDate(t *testing.T) {
	content := `Acme Ltd 2018 - 2020
Software Engineer
Worked on the billing platform.`

	entries := ParseExperience(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Company != "Acme Ltd" {
		t.Fatalf("company = %q, want Acme Ltd", e.Company)
	}
	if e.Title != "Software Engineer" {
		t.Fatalf("title = %q", e.Title)
	}
	if !strings.Contains(e.Description, "billing platform") {
		t.Fatalf("description = %q", e.Description)
	}
}

func TestParseExperience_MultipleBlocks(t *testing.T) {
	content := `Hireall | Lead Developer | 2021 - Present
- Shipped the extraction pipeline

Acme Ltd | Software Engineer | 2018 - 2021
- Built the billing system from scratch`

	entries := ParseExperience(content)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].IsCurrent || entries[1].IsCurrent {
		t.Fatalf("IsCurrent flags wrong: %v %v", entries[0].IsCurrent, entries[1].IsCurrent)
	}
}

func TestParseExperience_ShortAchievementsDropped(t *testing.T) {
	content := `Acme Ltd | Engineer | 2019 - 2020
- ok
- Delivered a complete platform migration`

	entries := ParseExperience(content)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if len(entries[0].Achievements) != 1 {
		t.Fatalf("achievements = %v, want only the long one", entries[0].Achievements)
	}
}
