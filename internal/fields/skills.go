package fields

import (
	"regexp"
	"strings"
)

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// GeneralCategory buckets skills that arrive as a flat list with no label.
const GeneralCategory = "General"

var (
	labeledSkillsRe = regexp.MustCompile(`^([A-Za-z][A-Za-z &/\-]{1,40}):\s*(.+)$`)
	skillItemSepRe  = regexp.MustCompile(`[,;|]`)
)

type skillCategory struct {
	name     string
	keywords []string
}

// skillCategories backs the whole-document fallback scan used when no
// skills section was segmented. Ordered for stable output.
var skillCategories = []skillCategory{
	{"Programming", []string{"go", "golang", "python", "java", "javascript", "typescript", "c#", "c++", "ruby", "php", "rust", "kotlin", "swift", "scala"}},
	{"Frontend", []string{"react", "angular", "vue", "html", "css", "sass", "redux", "next.js", "svelte"}},
	{"Backend", []string{"node.js", "django", "flask", "spring", "rails", "express", ".net", "laravel", "fastapi"}},
	{"Database", []string{"sql", "postgresql", "postgres", "mysql", "mongodb", "redis", "sqlite", "oracle", "elasticsearch"}},
	{"Cloud", []string{"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean"}},
	{"DevOps", []string{"docker", "kubernetes", "terraform", "jenkins", "ci/cd", "ansible", "git", "github actions"}},
	{"Data Science", []string{"pandas", "numpy", "tensorflow", "pytorch", "machine learning", "spark", "scikit-learn"}},
	{"Tools", []string{"jira", "figma", "postman", "linux", "excel", "confluence"}},
	{"Soft Skills", []string{"leadership", "communication", "teamwork", "problem solving", "agile", "scrum", "mentoring"}},
}

// ParseSkillsSection turns each line of a skills section into a group:
// "Label: a, b, c" keeps its label, anything else lands in General.
func ParseSkillsSection(content string) []SkillGroup {
	groups := make([]SkillGroup, 0, 4)
	general := []string{}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = stripAchievementMarker(line)

		if m := labeledSkillsRe.FindStringSubmatch(line); m != nil {
			items := splitSkillItems(m[2])
			if len(items) > 0 {
				groups = append(groups, SkillGroup{Category: strings.TrimSpace(m[1]), Items: items})
			}
			continue
		}
		general = append(general, splitSkillItems(line)...)
	}

	if len(general) > 0 {
		groups = append(groups, SkillGroup{Category: GeneralCategory, Items: dedupStrings(general)})
	}
	return groups
}

// ScanSkillKeywords is the fallback when the document has no skills section:
// scan everything for known skill keywords and report only categories with
// at least one hit.
func ScanSkillKeywords(text string) []SkillGroup {
	lower := strings.ToLower(text)

	out := make([]SkillGroup, 0, len(skillCategories))
	for _, cat := range skillCategories {
		items := make([]string, 0, 4)
		for _, kw := range cat.keywords {
			if mentionsKeyword(lower, kw) {
				items = append(items, kw)
			}
		}
		if len(items) > 0 {
			out = append(out, SkillGroup{Category: cat.name, Items: items})
		}
	}
	return out
}

func splitSkillItems(s string) []string {
	parts := skillItemSepRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(stripAchievementMarker(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// mentionsKeyword matches on non-alphanumeric boundaries so that "c++" and
// "node.js" survive while "go" does not hit "google".
func mentionsKeyword(lower, keyword string) bool {
	pat := `(^|[^a-z0-9])` + regexp.QuoteMeta(keyword) + `([^a-z0-9]|$)`
	re, err := regexp.Compile(pat)
	if err != nil {
		return false
	}
	return re.MatchString(lower)
}

func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
