package fields

import (
	"regexp"
	"strconv"
	"strings"
)

type SalaryPeriod string

const (
	PeriodHour  SalaryPeriod = "hour"
	PeriodDay   SalaryPeriod = "day"
	PeriodMonth SalaryPeriod = "month"
	PeriodAnnum SalaryPeriod = "annum"
)

type Salary struct {
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	Currency    string       `json:"currency"`
	Period      SalaryPeriod `json:"period"`
	MatchedText string       `json:"matched_text"`
}

// salaryPatterns is tried in order; the first pattern that matches anywhere
// in the text wins, and its first occurrence is taken.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)£\s*([\d,]+(?:\.\d+)?k?)\s*(?:-|–|—|to)\s*£\s*([\d,]+(?:\.\d+)?k?)`),
	regexp.MustCompile(`(?i)£\s*(\d+(?:\.\d+)?k)\s*(?:-|–|—|to)\s*£?\s*(\d+(?:\.\d+)?k)`),
	regexp.MustCompile(`(?i)£\s*([\d,]+(?:\.\d+)?k?)\s*per\s+(?:annum|year)`),
	regexp.MustCompile(`(?i)£\s*([\d,]+(?:\.\d+)?k?)\s*per\s+hour`),
	regexp.MustCompile(`(?i)£\s*([\d,]+(?:\.\d+)?k?)\s*(?:-|–|—|to)?\s*£?\s*([\d,]+(?:\.\d+)?k?)?\s*(?:doe|negotiable)`),
}

// ExtractSalary pulls a GBP salary out of free text. UK postings only, so
// the currency is fixed. Returns nil when no pattern matches.
func ExtractSalary(text string) *Salary {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	for _, re := range salaryPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		out := &Salary{
			Currency:    "GBP",
			Period:      inferPeriod(text),
			MatchedText: strings.TrimSpace(m[0]),
		}

		minVal, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		out.Min = minVal
		out.Max = minVal
		if len(m) > 2 && strings.TrimSpace(m[2]) != "" {
			if maxVal, ok := parseAmount(m[2]); ok {
				out.Max = maxVal
			}
		}
		return out
	}
	return nil
}

// parseAmount strips thousands separators and expands k-shorthand ("50k" ->
// 50000). The k expansion applies regardless of which pattern matched.
func parseAmount(raw string) (float64, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}
	thousands := strings.HasSuffix(raw, "k")
	raw = strings.TrimSuffix(raw, "k")
	raw = strings.ReplaceAll(raw, ",", "")

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if thousands {
		v *= 1000
	}
	return v, true
}

// inferPeriod scans the whole source text, not just the matched substring.
func inferPeriod(text string) SalaryPeriod {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "hour") || strings.Contains(lower, "hr"):
		return PeriodHour
	case strings.Contains(lower, "day"):
		return PeriodDay
	case strings.Contains(lower, "month"):
		return PeriodMonth
	default:
		return PeriodAnnum
	}
}
