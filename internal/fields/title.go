package fields

import (
	"strings"

	"hireall/internal/fuzzy"
)

const DefaultSeniority = "mid-level"

type seniorityLevel struct {
	level    string
	synonyms []string
}

// seniorityLevels is ordered; the first level with a matching synonym wins.
var seniorityLevels = []seniorityLevel{
	{"junior", []string{"junior", "jr", "entry level", "entry-level", "graduate", "trainee", "intern"}},
	{"mid-level", []string{"mid-level", "mid level", "intermediate"}},
	{"senior", []string{"senior", "sr", "lead", "principal", "staff"}},
	{"manager", []string{"manager", "management", "head of"}},
	{"director", []string{"director", "vp", "vice president"}},
	{"executive", []string{"executive", "chief", "ceo", "cto", "cfo", "coo", "founder"}},
}

type titleVariant struct {
	canonical string
	variants  []string
}

// titleVariants rewrites common title spellings toward a canonical family.
var titleVariants = []titleVariant{
	{"software engineer", []string{"software developer", "sde", "software eng", "programmer", "coder"}},
	{"frontend engineer", []string{"front end developer", "front-end developer", "frontend developer", "ui developer"}},
	{"backend engineer", []string{"back end developer", "back-end developer", "backend developer", "server developer"}},
	{"full stack engineer", []string{"full stack developer", "full-stack developer", "fullstack developer"}},
	{"devops engineer", []string{"site reliability engineer", "sre", "platform engineer", "infrastructure engineer"}},
	{"data scientist", []string{"machine learning engineer", "ml engineer", "data science engineer"}},
	{"data analyst", []string{"business analyst", "bi analyst", "reporting analyst"}},
	{"qa engineer", []string{"test engineer", "quality assurance engineer", "software tester", "tester"}},
	{"product manager", []string{"product owner"}},
}

// InferSeniority buckets a title into a seniority level. First match wins;
// mid-level when nothing matches.
func InferSeniority(title string) string {
	lower := strings.ToLower(title)
	for _, lv := range seniorityLevels {
		for _, syn := range lv.synonyms {
			if containsWord(lower, syn) {
				return lv.level
			}
		}
	}
	return DefaultSeniority
}

// NormalizeTitle lower-cases the title and rewrites known variants to their
// canonical form. A title already carrying a canonical form is returned
// unchanged, and variants only match on word boundaries, so normalization is
// idempotent and never rewrites inside a longer word.
func NormalizeTitle(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	for _, tv := range titleVariants {
		if containsWord(lower, tv.canonical) {
			return lower
		}
	}
	for _, tv := range titleVariants {
		for _, v := range tv.variants {
			if containsWord(lower, v) {
				lower = strings.Replace(lower, v, tv.canonical, 1)
				return strings.TrimSpace(lower)
			}
		}
	}
	return lower
}

// TitleKeywords tokenizes the normalized title for downstream matching.
func TitleKeywords(normalizedTitle string) []string {
	return fuzzy.ExtractWords(normalizedTitle)
}
