package posting

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hireall/internal/fields"
)

var (
	blockBreakRe = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</li>|</div>|</h[1-6]>|</tr>`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
)

// Extract builds the full JobRecord from one page's resolved fragments.
// Returns nil when the title fragment is empty: a titleless record has no
// useful identity, so the whole page is treated as a miss.
func Extract(f Fragments) *JobRecord {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return nil
	}

	rec := &JobRecord{
		Title:       title,
		Company:     strings.TrimSpace(f.Company),
		Location:    strings.TrimSpace(f.Location),
		URL:         strings.TrimSpace(f.URL),
		Description: htmlToText(f.DescriptionHTML),
		CompanySize: strings.TrimSpace(f.CompanySize),
		PostedDate:  strings.TrimSpace(f.PostedDate),
	}

	salarySource := f.SalaryText
	if strings.TrimSpace(salarySource) == "" {
		salarySource = rec.Description
	}
	rec.Salary = fields.ExtractSalary(salarySource)

	enhance(rec, f)
	return rec
}

// enhance fills the derived fields. Called exactly once per record.
func enhance(rec *JobRecord, f Fragments) {
	rec.NormalizedTitle = fields.NormalizeTitle(rec.Title)
	rec.Keywords = fields.TitleKeywords(rec.NormalizedTitle)

	rec.Skills = fields.ExtractDescriptionSkills(rec.Description)
	rec.Requirements = fields.ExtractRequirements(rec.Description)
	rec.Benefits = fields.ExtractBenefits(rec.Description)
	rec.Qualifications = fields.ExtractQualifications(rec.Description)

	combined := rec.Title + " " + rec.Description
	rec.Department = fields.InferDepartment(combined)
	rec.Seniority = fields.InferSeniority(rec.Title + " " + f.SeniorityText)
	rec.EmploymentType = fields.InferEmploymentType(combined + " " + f.EmploymentTypeText)
	rec.LocationType = fields.InferLocationType(combined)
}

// htmlToText flattens description HTML into plain text, keeping block
// boundaries as line breaks so the sentence-level extractors still work.
// Inputs without markup pass through unchanged.
func htmlToText(html string) string {
	trimmed := strings.TrimSpace(html)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "<") {
		return trimmed
	}

	withBreaks := blockBreakRe.ReplaceAllString(trimmed, "\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		return trimmed
	}
	text := doc.Text()
	text = multiBlankRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
