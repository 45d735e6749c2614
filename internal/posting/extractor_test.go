package posting

import (
	"strings"
	"testing"
)

const descriptionHTML = `<div>
<p>We are hiring a senior backend developer to join our engineering team.</p>
<p>Requirements: 5 years of Go experience, deep PostgreSQL knowledge, comfort with Kubernetes.</p>
<p>Benefits: 25 days holiday, private healthcare, remote working available.</p>
</div>`

func TestExtract_FullRecord(t *testing.T) {
	rec := Extract(Fragments{
		Title:           "Senior Backend Developer",
		Company:         "Hireall",
		Location:        "London, UK",
		URL:             "https://jobs.example.com/123",
		DescriptionHTML: descriptionHTML,
		SalaryText:      "£70,000 - £90,000 per annum",
	})
	if rec == nil {
		t.Fatalf("expected a record")
	}

	if rec.Title != "Senior Backend Developer" || rec.Company != "Hireall" {
		t.Fatalf("record = %+v", rec)
	}
	if strings.Contains(rec.Description, "<") {
		t.Fatalf("description still has markup: %q", rec.Description)
	}

	if rec.Salary == nil {
		t.Fatalf("expected a salary")
	}
	if rec.Salary.Min != 70000 || rec.Salary.Max != 90000 || rec.Salary.Period != "annum" {
		t.Fatalf("salary = %+v", rec.Salary)
	}

	if rec.NormalizedTitle != "senior backend engineer" {
		t.Fatalf("normalized title = %q", rec.NormalizedTitle)
	}
	if len(rec.Keywords) != 3 {
		t.Fatalf("keywords = %v", rec.Keywords)
	}

	if len(rec.Requirements) != 3 {
		t.Fatalf("requirements = %v", rec.Requirements)
	}
	if len(rec.Benefits) != 3 {
		t.Fatalf("benefits = %v", rec.Benefits)
	}

	if rec.Department != "engineering" {
		t.Fatalf("department = %q", rec.Department)
	}
	if rec.Seniority != "senior" {
		t.Fatalf("seniority = %q", rec.Seniority)
	}
	if rec.EmploymentType != "full-time" {
		t.Fatalf("employment type = %q", rec.EmploymentType)
	}
	if rec.LocationType != "remote" {
		t.Fatalf("location type = %q", rec.LocationType)
	}
}

func TestExtract_NoTitleIsNoResult(t *testing.T) {
	rec := Extract(Fragments{
		Company:         "Hireall",
		DescriptionHTML: "<p>Great role.</p>",
	})
	if rec != nil {
		t.Fatalf("expected nil, got %+v", rec)
	}
}

func TestExtract_SalaryFallsBackToDescription(t *testing.T) {
	rec := Extract(Fragments{
		Title:           "Warehouse Operative",
		DescriptionHTML: "Pay is £12.50 per hour with weekly payouts.",
	})
	if rec == nil || rec.Salary == nil {
		t.Fatalf("expected salary from description, got %+v", rec)
	}
	if rec.Salary.Min != 12.5 || rec.Salary.Period != "hour" {
		t.Fatalf("salary = %+v", rec.Salary)
	}
}

func TestHTMLToText_PlainTextPassthrough(t *testing.T) {
	if got := htmlToText("  just plain text  "); got != "just plain text" {
		t.Fatalf("got %q", got)
	}
	if got := htmlToText(""); got != "" {
		t.Fatalf("got %q", got)
	}
}
