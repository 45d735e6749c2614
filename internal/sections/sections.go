package sections

import (
	"strings"
	"unicode"
)

type Kind string

const (
	KindContact        Kind = "contact"
	KindSummary        Kind = "summary"
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindCertifications Kind = "certifications"
	KindProjects       Kind = "projects"
	KindLanguages      Kind = "languages"
	KindAwards         Kind = "awards"
	KindReferences     Kind = "references"
)

const (
	// confidenceExact is assigned when a line matches a known header pattern.
	confidenceExact = 0.9
	// confidenceGuess is assigned when the short/ALL-CAPS/colon heuristic
	// resolved the header.
	confidenceGuess = 0.7

	maxHeaderLen = 50
)

type Section struct {
	Kind       Kind
	StartLine  int
	EndLine    int
	Content    string
	Confidence float64
}

type headerRule struct {
	kind     Kind
	patterns []string
}

// headerRules maps section kinds to the exact (case-insensitive, whole-line)
// header spellings seen in the wild. Ordered: the first matching rule wins.
var headerRules = []headerRule{
	{KindSummary, []string{"summary", "profile", "professional summary", "objective", "career objective", "about", "about me"}},
	{KindExperience, []string{"experience", "work experience", "employment", "employment history", "work history", "professional experience", "career history", "relevant experience"}},
	{KindEducation, []string{"education", "academic background", "academics", "education and training", "qualifications"}},
	{KindSkills, []string{"skills", "technical skills", "core competencies", "key skills", "competencies", "technologies", "areas of expertise"}},
	{KindCertifications, []string{"certifications", "certificates", "licenses", "licences", "accreditations"}},
	{KindProjects, []string{"projects", "personal projects", "key projects", "portfolio"}},
	{KindLanguages, []string{"languages", "language skills"}},
	{KindAwards, []string{"awards", "honors", "honours", "achievements"}},
	{KindReferences, []string{"references", "referees"}},
	{KindContact, []string{"contact", "contact information", "contact details", "personal details"}},
}

type fallbackRule struct {
	kind       Kind
	substrings []string
}

// fallbackRules resolve header-looking lines that are not an exact known
// spelling. Ordered: the first rule with a matching substring wins.
var fallbackRules = []fallbackRule{
	{KindExperience, []string{"work", "job", "career", "employ"}},
	{KindEducation, []string{"school", "degree", "university", "college"}},
	{KindSkills, []string{"skill", "competenc", "expert", "proficien"}},
	{KindCertifications, []string{"cert", "licen"}},
	{KindProjects, []string{"project", "portfolio"}},
	{KindSummary, []string{"summar", "profil", "objectiv", "about"}},
}

// Segment partitions the document's lines into contiguous named sections in
// a single pass. Lines before the first recognized header fall into an
// implicit contact section so that every non-header line is attributed to
// exactly one section.
func Segment(text string) []Section {
	lines := strings.Split(text, "\n")

	out := make([]Section, 0, 8)

	type open struct {
		kind       Kind
		startLine  int
		confidence float64
		content    []string
		active     bool
	}
	curr := open{}

	closeCurr := func(endLine int) {
		if !curr.active {
			return
		}
		out = append(out, Section{
			Kind:       curr.kind,
			StartLine:  curr.startLine,
			EndLine:    endLine,
			Content:    strings.Join(curr.content, "\n"),
			Confidence: curr.confidence,
		})
		curr = open{}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if kind, ok := matchHeader(line); ok {
			closeCurr(i - 1)
			curr = open{kind: kind, startLine: i, confidence: confidenceExact, active: true}
			continue
		}

		if looksLikeHeader(line) {
			if kind, ok := guessHeader(line); ok && (!curr.active || kind != curr.kind) {
				closeCurr(i - 1)
				curr = open{kind: kind, startLine: i, confidence: confidenceGuess, active: true}
				continue
			}
		}

		if !curr.active {
			if line == "" {
				continue
			}
			curr = open{kind: KindContact, startLine: i, confidence: confidenceGuess, active: true}
		}
		curr.content = append(curr.content, raw)
	}

	closeCurr(len(lines) - 1)
	return out
}

// Find returns the first section of the given kind, if any.
func Find(secs []Section, kind Kind) (Section, bool) {
	for _, s := range secs {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

func matchHeader(line string) (Kind, bool) {
	norm := strings.ToLower(strings.TrimSpace(line))
	if norm == "" {
		return "", false
	}
	for _, rule := range headerRules {
		for _, p := range rule.patterns {
			if norm == p {
				return rule.kind, true
			}
		}
	}
	return "", false
}

// looksLikeHeader accepts short lines that are entirely upper-case (with at
// least one letter) or end with a colon.
func looksLikeHeader(line string) bool {
	if line == "" || len(line) >= maxHeaderLen {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func guessHeader(line string) (Kind, bool) {
	norm := strings.ToLower(strings.TrimSpace(line))
	norm = strings.TrimRight(norm, ":")
	norm = strings.TrimSpace(norm)
	if norm == "" {
		return "", false
	}

	// Re-test the known header table on the stripped form first.
	if kind, ok := matchHeader(norm); ok {
		return kind, true
	}

	for _, rule := range fallbackRules {
		for _, sub := range rule.substrings {
			if strings.Contains(norm, sub) {
				return rule.kind, true
			}
		}
	}
	return "", false
}
