package fields

import (
	"regexp"
	"strings"
)

const monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

var (
	datePointPattern = `(?:` + monthPattern + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`

	dateRangeRe = regexp.MustCompile(`(?i)(` + datePointPattern + `)\s*(?:-|–|—|to)\s*(` + datePointPattern + `|present|current|now|ongoing)`)

	currentMarkerRe = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
)

// extractDateRange returns the start and end of the first date range found
// in the text, plus the full matched substring. End may be a present-marker
// word; callers use isCurrent for that signal.
func extractDateRange(text string) (start, end, matched string) {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), m[0]
}

func isCurrent(text string) bool {
	return currentMarkerRe.MatchString(text)
}

// stripDateRange removes the first date range from the text and tidies the
// leftover separators.
func stripDateRange(text string) string {
	m := dateRangeRe.FindString(text)
	if m == "" {
		return strings.TrimSpace(text)
	}
	out := strings.Replace(text, m, "", 1)
	out = strings.Trim(out, " \t|,-–—")
	return strings.TrimSpace(out)
}
