package fields

import (
	"regexp"
	"strings"
)

// Limits and minimum fragment lengths for the description enhancement pulls.
const (
	maxRequirements   = 5
	maxBenefits       = 5
	maxQualifications = 3

	minLongFragment  = 10
	minShortFragment = 5
)

var fragmentSepRe = regexp.MustCompile(`[,;•\n]| and `)

// Each extractor matches an introductory phrase followed by the rest of its
// sentence and up to two more sentences.
var (
	skillsIntroRe = regexp.MustCompile(`(?i)(?:skills?|technologies|tech stack|experience (?:with|in))[:\s]+([^.!?\n]+(?:[.!?][^.!?\n]+){0,2})`)

	requirementsIntroRe = regexp.MustCompile(`(?i)(?:requirements?|you will need|you must have|we require|essential)[:\s]+([^.!?\n]+(?:[.!?][^.!?\n]+){0,2})`)

	benefitsIntroRe = regexp.MustCompile(`(?i)(?:benefits?|we offer|perks|what you get|in return)[:\s]+([^.!?\n]+(?:[.!?][^.!?\n]+){0,2})`)

	qualificationsIntroRe = regexp.MustCompile(`(?i)(?:qualifications?|qualified|certified|degree in|education)[:\s]+([^.!?\n]+(?:[.!?][^.!?\n]+){0,2})`)
)

// ExtractDescriptionSkills pulls skill fragments from a job description.
// Unlimited, deduplicated.
func ExtractDescriptionSkills(description string) []string {
	return dedupStrings(collectFragments(description, skillsIntroRe, minShortFragment, 0))
}

func ExtractRequirements(description string) []string {
	return capList(collectFragments(description, requirementsIntroRe, minLongFragment, maxRequirements), maxRequirements)
}

func ExtractBenefits(description string) []string {
	return capList(collectFragments(description, benefitsIntroRe, minLongFragment, maxBenefits), maxBenefits)
}

func ExtractQualifications(description string) []string {
	return capList(collectFragments(description, qualificationsIntroRe, minLongFragment, maxQualifications), maxQualifications)
}

func collectFragments(text string, re *regexp.Regexp, minLen, limit int) []string {
	out := make([]string, 0, 8)
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		for _, frag := range splitFragments(m[1]) {
			if len(frag) < minLen {
				continue
			}
			out = append(out, frag)
			if limit > 0 && len(out) >= limit {
				return out
			}
		}
	}
	return out
}

func splitFragments(s string) []string {
	parts := fragmentSepRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(stripAchievementMarker(p))
		p = strings.Trim(p, ".")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func capList(in []string, max int) []string {
	if len(in) > max {
		return in[:max]
	}
	return in
}
