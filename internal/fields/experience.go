package fields

import (
	"regexp"
	"strings"
)

type Experience struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// companySuffixes marks a header part as the company rather than the title.
var companySuffixes = []string{
	"inc", "corp", "llc", "ltd", "company", "solutions", "systems", "tech", "technologies",
}

// titleKeywords marks a header part as the job title.
var titleKeywords = []string{
	"developer", "engineer", "manager", "designer", "analyst", "consultant",
	"director", "lead", "architect", "specialist", "administrator", "scientist",
	"officer", "head", "intern", "assistant", "coordinator",
}

var (
	headerSeparatorRe = regexp.MustCompile(`\s*\|\s*|\s+•\s+|\s+-\s+`)
	numberedListRe    = regexp.MustCompile(`^\d+[.)]\s+`)
)

var bulletGlyphs = []string{"•", "●", "○", "◦", "▪", "▫", "■", "□", "◆", "◇", "→", "-", "*"}

const minAchievementLen = 10

// ParseExperience splits the experience section content on blank lines and
// parses each block into one entry.
func ParseExperience(content string) []Experience {
	out := make([]Experience, 0, 4)
	for _, block := range splitBlocks(content) {
		e := parseExperienceBlock(block)
		if e.Company == "" && e.Title == "" && len(e.Achievements) == 0 && e.Description == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func parseExperienceBlock(lines []string) Experience {
	e := Experience{Achievements: []string{}}
	if len(lines) == 0 {
		return e
	}

	e.IsCurrent = isCurrent(strings.Join(lines, "\n"))

	first := strings.TrimSpace(lines[0])
	rest := lines[1:]

	// The date range is pulled off the header before the separator check so
	// that "2018 - 2020" does not read as a title/company separator.
	start, end, matched := extractDateRange(first)
	header := first
	if matched != "" {
		e.StartDate, e.EndDate = start, end
		header = stripDateRange(first)
	}

	switch {
	case headerSeparatorRe.MatchString(header):
		parseSeparatedHeader(header, &e)
	case matched != "":
		// A bare date on line 1 means line 1 is the company, line 2 the title.
		e.Company = header
		if len(rest) > 0 {
			e.Title = strings.TrimSpace(rest[0])
			rest = rest[1:]
		}
	default:
		e.Title = header
		if len(rest) > 0 && !isAchievementLine(rest[0]) {
			next := strings.TrimSpace(rest[0])
			if s, en, m := extractDateRange(next); m != "" {
				e.StartDate, e.EndDate = s, en
				next = stripDateRange(next)
			}
			e.Company = next
			rest = rest[1:]
		}
	}

	desc := make([]string, 0, len(rest))
	for _, raw := range rest {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isAchievementLine(line) {
			a := stripAchievementMarker(line)
			if len(a) > minAchievementLen {
				e.Achievements = append(e.Achievements, a)
			}
			continue
		}
		desc = append(desc, line)
	}
	e.Description = strings.Join(desc, "\n")
	return e
}

// parseSeparatedHeader classifies pipe/bullet/dash separated header parts
// into company, title and location. A company-suffix keyword wins, then a
// title keyword; leftover parts fall back to title-then-company order.
func parseSeparatedHeader(header string, e *Experience) {
	parts := headerSeparatorRe.Split(header, -1)
	leftover := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lower := strings.ToLower(p)
		switch {
		case e.Company == "" && hasAnyWord(lower, companySuffixes):
			e.Company = p
		case e.Title == "" && hasAnyWord(lower, titleKeywords):
			e.Title = p
		case e.Location == "" && strings.Contains(p, ","):
			e.Location = p
		default:
			leftover = append(leftover, p)
		}
	}

	for _, p := range leftover {
		switch {
		case e.Title == "":
			e.Title = p
		case e.Company == "":
			e.Company = p
		case e.Location == "":
			e.Location = p
		}
	}
}

func splitBlocks(content string) [][]string {
	blocks := make([][]string, 0, 4)
	curr := make([]string, 0, 8)
	for _, raw := range strings.Split(content, "\n") {
		if strings.TrimSpace(raw) == "" {
			if len(curr) > 0 {
				blocks = append(blocks, curr)
				curr = make([]string, 0, 8)
			}
			continue
		}
		curr = append(curr, raw)
	}
	if len(curr) > 0 {
		blocks = append(blocks, curr)
	}
	return blocks
}

func isAchievementLine(line string) bool {
	line = strings.TrimSpace(line)
	if numberedListRe.MatchString(line) {
		return true
	}
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return true
		}
	}
	return false
}

func stripAchievementMarker(line string) string {
	line = strings.TrimSpace(line)
	if m := numberedListRe.FindString(line); m != "" {
		return strings.TrimSpace(line[len(m):])
	}
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return strings.TrimSpace(line[len(g):])
		}
	}
	return line
}

func hasAnyWord(lower string, words []string) bool {
	for _, w := range words {
		if containsWord(lower, w) {
			return true
		}
	}
	return false
}

// containsWord matches whole words only, so "ltd" does not hit "multiday".
func containsWord(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isWordChar(lower[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(lower) || !isWordChar(lower[afterIdx])
		if before && after {
			return true
		}
		idx = i + len(word)
		if idx >= len(lower) {
			return false
		}
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
