package resume

import "testing"

const sampleResume = `Jane Doe
Leeds, United Kingdom
jane.doe@example.com | +44 7700 900123
linkedin.com/in/janedoe

SUMMARY
Backend engineer with eight years of experience building distributed systems.

EXPERIENCE
Hireall Ltd | Senior Software Engineer | 2021 - Present
- Led the migration of the matching service to Go, cutting p99 latency by 40%
- Mentored four junior engineers across two squads

Acme Solutions | Software Developer | 2017 - 2021
- Built the billing pipeline processing two million events per day

EDUCATION
University of Leeds 2013 - 2016
BSc Computer Science

SKILLS
Languages: Go, Python
Databases: PostgreSQL, Redis

CERTIFICATIONS
- AWS Certified Solutions Architect`

func TestParse_FullResume(t *testing.T) {
	r := Parse(sampleResume)

	if r.Contact.Name != "Jane Doe" {
		t.Fatalf("name = %q", r.Contact.Name)
	}
	if r.Contact.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q", r.Contact.Email)
	}
	if r.Contact.Phone == "" {
		t.Fatalf("expected a phone number")
	}
	if r.Contact.LinkedIn != "janedoe" {
		t.Fatalf("linkedin = %q", r.Contact.LinkedIn)
	}
	if r.Contact.Location != "Leeds, United Kingdom" {
		t.Fatalf("location = %q", r.Contact.Location)
	}

	if r.Summary == "" {
		t.Fatalf("expected a summary")
	}

	if len(r.Experience) != 2 {
		t.Fatalf("experience entries = %d", len(r.Experience))
	}
	first := r.Experience[0]
	if first.Company != "Hireall Ltd" || first.Title != "Senior Software Engineer" {
		t.Fatalf("first experience = %+v", first)
	}
	if !first.IsCurrent {
		t.Fatalf("expected current role")
	}
	if len(first.Achievements) != 2 {
		t.Fatalf("achievements = %v", first.Achievements)
	}

	if len(r.Education) != 1 || r.Education[0].Institution != "University of Leeds" {
		t.Fatalf("education = %+v", r.Education)
	}

	if len(r.SkillGroups) != 2 {
		t.Fatalf("skill groups = %+v", r.SkillGroups)
	}
	if len(r.Certifications) != 1 {
		t.Fatalf("certifications = %v", r.Certifications)
	}

	if r.WordCount == 0 {
		t.Fatalf("expected a word count")
	}
	if r.ParseConfidence != 100 {
		t.Fatalf("confidence = %d", r.ParseConfidence)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	r := Parse("   \n\n  ")
	if r.ParseConfidence != 0 {
		t.Fatalf("confidence = %d", r.ParseConfidence)
	}
	if len(r.Sections) != 0 || len(r.Experience) != 0 {
		t.Fatalf("expected empty result, got %+v", r)
	}
}

func TestParse_ConfidenceMonotonic(t *testing.T) {
	bare := Parse("just some unstructured text about nothing in particular")
	full := Parse(sampleResume)
	if bare.ParseConfidence > full.ParseConfidence {
		t.Fatalf("bare %d > full %d", bare.ParseConfidence, full.ParseConfidence)
	}
}

func TestParse_SkillScanFallback(t *testing.T) {
	r := Parse(`John Smith
john@example.com

SUMMARY
I ship services written in Go backed by PostgreSQL.`)

	if len(r.SkillGroups) == 0 {
		t.Fatalf("expected keyword-scanned skills")
	}
}
