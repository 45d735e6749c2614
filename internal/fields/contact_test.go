package fields

import "testing"

const contactSample = `Jane Smith
London, United Kingdom
jane.smith@example.com | +44 7700 900123
linkedin.com/in/janesmith | github.com/jsmith
https://janesmith.dev`

func TestExtractContact(t *testing.T) {
	c := ExtractContact(contactSample)

	if c.Name != "Jane Smith" {
		t.Fatalf("name = %q", c.Name)
	}
	if c.Email != "jane.smith@example.com" {
		t.Fatalf("email = %q", c.Email)
	}
	if c.Phone == "" {
		t.Fatalf("expected phone")
	}
	if c.LinkedIn != "janesmith" {
		t.Fatalf("linkedin = %q", c.LinkedIn)
	}
	if c.GitHub != "jsmith" {
		t.Fatalf("github = %q", c.GitHub)
	}
	if c.Website != "https://janesmith.dev" {
		t.Fatalf("website = %q", c.Website)
	}
	if c.Location != "London, United Kingdom" {
		t.Fatalf("location = %q", c.Location)
	}
}

func TestExtractContact_NameRejectsNonName(t *testing.T) {
	c := ExtractContact("ACME SOLUTIONS LTD PLC GROUP HOLDINGS\ncontact@acme.com")
	if c.Name != "" {
		t.Fatalf("expected no name, got %q", c.Name)
	}
	if c.Email != "contact@acme.com" {
		t.Fatalf("email = %q", c.Email)
	}
}

func TestExtractContact_AllEmpty(t *testing.T) {
	c := ExtractContact("just some text without anything useful")
	if c.Name != "" || c.Email != "" || c.Phone != "" || c.LinkedIn != "" {
		t.Fatalf("expected empty contact, got %+v", c)
	}
}
