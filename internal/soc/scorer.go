package soc

import (
	"strings"

	"hireall/internal/fuzzy"
	"hireall/internal/posting"
)

// Per-factor gates and weights. Each contribution is gated on its own local
// threshold; the factors are independent and additive.
const (
	titleSimThreshold   = 0.7
	titleWeight         = 0.5
	relatedSimThreshold = 0.6
	relatedWeight       = 0.4
	overlapThreshold    = 0.3
	overlapWeight       = 0.2
	keywordBonus        = 0.1
	departmentBonus     = 0.15
	seniorityBonus      = 0.1

	// minScore is the absolute floor a candidate must clear to be
	// reported at all.
	minScore = 0.3
)

// Classify scores every taxonomy entry against the job record and returns
// the single best match, or nil when no entry clears the minimum score.
// Scores can exceed 1.0 internally when related-title bonuses stack; the
// comparison between candidates uses the raw score and the clamp to 1.0 is
// applied only when building the returned match.
func Classify(job *posting.JobRecord, entries []OccupationCode) *Match {
	if job == nil {
		return nil
	}

	title := strings.ToLower(strings.TrimSpace(job.NormalizedTitle))
	if title == "" {
		title = strings.ToLower(strings.TrimSpace(job.Title))
	}
	if title == "" {
		return nil
	}
	// With no description the overlap factor degenerates to comparing the
	// title against itself, so it only runs when a description exists.
	overlapSource := ""
	if strings.TrimSpace(job.Description) != "" {
		overlapSource = title + " " + strings.ToLower(job.Description)
	}

	var best *OccupationCode
	bestScore := 0.0
	var bestKeywords []string

	for i := range entries {
		entry := &entries[i]
		score, matched := scoreEntry(job, title, overlapSource, entry)
		if score > minScore && score > bestScore {
			best = entry
			bestScore = score
			bestKeywords = matched
		}
	}

	if best == nil {
		return nil
	}

	confidence := bestScore
	if confidence > 1.0 {
		confidence = 1.0
	}
	return &Match{
		Code:            best.Code,
		Title:           best.Title,
		Confidence:      confidence,
		MatchedKeywords: dedup(bestKeywords),
		RelatedTitles:   best.RelatedTitles,
		EligibilityNote: best.EligibilityNote,
	}
}

func scoreEntry(job *posting.JobRecord, title, overlapSource string, entry *OccupationCode) (float64, []string) {
	canonical := strings.ToLower(entry.Title)
	score := 0.0
	matched := []string{}

	if sim := fuzzy.Similarity(title, canonical); sim >= titleSimThreshold {
		score += sim * titleWeight
		matched = append(matched, entry.Title)
	}

	for _, rel := range entry.RelatedTitles {
		if sim := fuzzy.Similarity(title, strings.ToLower(rel)); sim >= relatedSimThreshold {
			score += sim * relatedWeight
			matched = append(matched, rel)
		}
	}

	if overlapSource != "" {
		if ov := fuzzy.WordOverlap(overlapSource, canonical); ov >= overlapThreshold {
			score += ov * overlapWeight
		}
	}

	for _, kw := range job.Keywords {
		if entryContains(entry, canonical, strings.ToLower(kw)) {
			score += keywordBonus
			matched = append(matched, kw)
		}
	}

	if job.Department != "" && strings.Contains(canonical, strings.ToLower(job.Department)) {
		score += departmentBonus
	}
	if job.Seniority != "" && strings.Contains(canonical, strings.ToLower(job.Seniority)) {
		score += seniorityBonus
	}

	return score, matched
}

func entryContains(entry *OccupationCode, canonical, keyword string) bool {
	if keyword == "" {
		return false
	}
	if strings.Contains(canonical, keyword) {
		return true
	}
	for _, rel := range entry.RelatedTitles {
		if strings.Contains(strings.ToLower(rel), keyword) {
			return true
		}
	}
	return false
}

func dedup(in []string) []string {
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
