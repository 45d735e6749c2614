package fields

import (
	"regexp"
	"strings"
)

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	GPA         string `json:"gpa"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// degreeKeywords: a line containing any of these becomes the degree line.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "mba",
	"bsc", "msc", "beng", "meng", "bs", "ba", "ms", "ma",
	"computer science", "engineering", "mathematics", "physics", "business",
	"economics", "marketing", "finance", "law", "psychology",
}

var gpaRe = regexp.MustCompile(`(?i)gpa[:\s]+([0-4](?:\.\d{1,2})?)`)

// ParseEducation splits the education section on blank lines; the first line
// of each block is the institution.
func ParseEducation(content string) []Education {
	out := make([]Education, 0, 2)
	for _, block := range splitBlocks(content) {
		e := parseEducationBlock(block)
		if e.Institution == "" && e.Degree == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func parseEducationBlock(lines []string) Education {
	e := Education{}
	if len(lines) == 0 {
		return e
	}

	first := strings.TrimSpace(lines[0])
	if s, en, matched := extractDateRange(first); matched != "" {
		e.StartDate, e.EndDate = s, en
		first = stripDateRange(first)
	}
	e.Institution = first

	block := strings.Join(lines, "\n")
	if m := gpaRe.FindStringSubmatch(block); m != nil {
		e.GPA = m[1]
	}
	if e.StartDate == "" {
		e.StartDate, e.EndDate, _ = extractDateRange(block)
	}

	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if hasAnyWord(lower, degreeKeywords) {
			e.Degree = stripDateRange(line)
			e.Field = degreeField(e.Degree)
			break
		}
	}
	return e
}

// degreeField pulls the subject out of a degree line, either after " in " or
// after a leading degree abbreviation.
func degreeField(degree string) string {
	lower := strings.ToLower(degree)
	if i := strings.Index(lower, " in "); i >= 0 {
		return strings.TrimSpace(degree[i+4:])
	}
	parts := strings.Fields(degree)
	if len(parts) < 2 {
		return ""
	}
	head := strings.ToLower(strings.Trim(parts[0], ".,"))
	for _, kw := range []string{"bsc", "msc", "beng", "meng", "bs", "ba", "ms", "ma", "mba", "phd"} {
		if head == kw {
			return strings.TrimSpace(strings.Join(parts[1:], " "))
		}
	}
	return ""
}
