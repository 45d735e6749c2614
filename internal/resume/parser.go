package resume

import (
	"strings"

	"hireall/internal/fields"
	"hireall/internal/sections"
)

// ParseResult is the full structured output for one resume. Every field
// defaults to an empty value; consumers never need to distinguish "missing"
// from "present but empty".
type ParseResult struct {
	Contact        fields.Contact      `json:"contact"`
	Summary        string              `json:"summary"`
	Experience     []fields.Experience `json:"experience"`
	Education      []fields.Education  `json:"education"`
	SkillGroups    []fields.SkillGroup `json:"skill_groups"`
	Certifications []string            `json:"certifications"`
	Projects       []string            `json:"projects"`
	Sections       []sections.Section  `json:"sections"`
	RawText        string              `json:"raw_text"`
	WordCount      int                 `json:"word_count"`

	// ParseConfidence is a 0-100 heuristic summarizing how much of the
	// expected resume structure was recognized. Not a probability.
	ParseConfidence int `json:"parse_confidence"`
}

// Parse runs the full resume pipeline: segment, extract per section, score.
// Never fails; malformed input degrades to an empty result.
func Parse(text string) ParseResult {
	out := ParseResult{
		Experience:     []fields.Experience{},
		Education:      []fields.Education{},
		SkillGroups:    []fields.SkillGroup{},
		Certifications: []string{},
		Projects:       []string{},
		RawText:        text,
		WordCount:      len(strings.Fields(text)),
	}
	if strings.TrimSpace(text) == "" {
		out.Sections = []sections.Section{}
		return out
	}

	out.Contact = fields.ExtractContact(text)
	out.Sections = sections.Segment(text)

	if s, ok := sections.Find(out.Sections, sections.KindSummary); ok {
		out.Summary = strings.TrimSpace(s.Content)
	}
	if s, ok := sections.Find(out.Sections, sections.KindExperience); ok {
		out.Experience = fields.ParseExperience(s.Content)
	}
	if s, ok := sections.Find(out.Sections, sections.KindEducation); ok {
		out.Education = fields.ParseEducation(s.Content)
	}
	if s, ok := sections.Find(out.Sections, sections.KindSkills); ok {
		out.SkillGroups = fields.ParseSkillsSection(s.Content)
	} else {
		out.SkillGroups = fields.ScanSkillKeywords(text)
	}
	if s, ok := sections.Find(out.Sections, sections.KindCertifications); ok {
		out.Certifications = listItems(s.Content)
	}
	if s, ok := sections.Find(out.Sections, sections.KindProjects); ok {
		out.Projects = listItems(s.Content)
	}

	out.ParseConfidence = scoreConfidence(out)
	return out
}

// listItems flattens a certifications/projects section into trimmed lines.
func listItems(content string) []string {
	out := []string{}
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-•●○◦▪▫■□◆◇*→ \t")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// scoreConfidence rewards each recognized structural element. Monotonic:
// recognizing more structure never lowers the score.
func scoreConfidence(r ParseResult) int {
	score := 0

	if r.Contact.Name != "" {
		score += 10
	}
	if r.Contact.Email != "" {
		score += 15
	}
	if r.Contact.Phone != "" {
		score += 10
	}
	if r.Summary != "" {
		score += 10
	}
	if len(r.Experience) > 0 {
		score += 20
		for _, e := range r.Experience {
			if e.Company != "" && e.Title != "" {
				score += 5
				break
			}
		}
	}
	if len(r.Education) > 0 {
		score += 10
	}
	if len(r.SkillGroups) > 0 {
		score += 10
	}
	if len(r.Certifications) > 0 {
		score += 5
	}
	if len(r.Sections) >= 3 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
