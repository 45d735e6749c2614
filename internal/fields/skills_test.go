package fields

import "testing"

func TestParseSkillsSection_Labeled(t *testing.T) {
	content := `Languages: Go, Python, TypeScript
Databases: PostgreSQL; Redis
Docker, Kubernetes`

	groups := ParseSkillsSection(content)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %+v", groups)
	}
	if groups[0].Category != "Languages" || len(groups[0].Items) != 3 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Category != "Databases" || len(groups[1].Items) != 2 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
	if groups[2].Category != GeneralCategory || len(groups[2].Items) != 2 {
		t.Fatalf("unexpected general group: %+v", groups[2])
	}
}

func TestParseSkillsSection_DedupsGeneral(t *testing.T) {
	groups := ParseSkillsSection("Go, SQL\nsql, Docker")
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %+v", groups)
	}
	if len(groups[0].Items) != 3 {
		t.Fatalf("expected Go, SQL, Docker, got %v", groups[0].Items)
	}
}

func TestScanSkillKeywords(t *testing.T) {
	text := "We built services in Go and Python backed by PostgreSQL, deployed with Docker on AWS."
	groups := ScanSkillKeywords(text)

	byCategory := map[string][]string{}
	for _, g := range groups {
		byCategory[g.Category] = g.Items
	}

	if len(byCategory["Programming"]) != 2 {
		t.Fatalf("programming = %v", byCategory["Programming"])
	}
	if len(byCategory["Database"]) == 0 {
		t.Fatalf("expected database hits")
	}
	if len(byCategory["Cloud"]) != 1 {
		t.Fatalf("cloud = %v", byCategory["Cloud"])
	}
	if _, ok := byCategory["Data Science"]; ok {
		t.Fatalf("unexpected data science hits")
	}
}

func TestScanSkillKeywords_NoFalseSubstringHits(t *testing.T) {
	groups := ScanSkillKeywords("We googled how to cargo-cult categories.")
	for _, g := range groups {
		for _, item := range g.Items {
			if item == "go" {
				t.Fatalf("substring match leaked: %+v", groups)
			}
		}
	}
}
