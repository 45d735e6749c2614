package fuzzy

import (
	"strings"
	"unicode"
)

// stopWords filters common English words that carry no signal for
// title/keyword matching.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "day": {}, "get": {}, "has": {}, "him": {},
	"his": {}, "how": {}, "its": {}, "may": {}, "new": {}, "now": {},
	"old": {}, "see": {}, "two": {}, "way": {}, "who": {}, "did": {},
	"use": {}, "she": {}, "they": {}, "this": {}, "that": {},
	"with": {}, "have": {}, "will": {}, "from": {}, "been": {}, "were": {},
	"than": {}, "your": {}, "into": {}, "each": {}, "such": {},
}

// EditDistance is the classic dynamic-programming Levenshtein distance.
// Substitution, insertion and deletion all cost 1. Case-sensitive; callers
// lower-case first.
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity normalizes edit distance into [0,1]. Two empty strings are
// trivially identical, so that case is 1.0.
func Similarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-EditDistance(a, b)) / float64(maxLen)
}

// ExtractWords lower-cases the text, turns non-word runes into spaces,
// splits on whitespace and drops short tokens and stop words.
func ExtractWords(text string) []string {
	text = strings.ToLower(text)

	b := strings.Builder{}
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	out := make([]string, 0, 16)
	seen := make(map[string]struct{}, 16)
	for _, w := range strings.Fields(b.String()) {
		if len([]rune(w)) <= 2 {
			continue
		}
		if _, ok := stopWords[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// WordOverlap is the Jaccard similarity between the two texts' word sets.
// Returns 0 when the union is empty.
func WordOverlap(a, b string) float64 {
	wa := ExtractWords(a)
	wb := ExtractWords(b)

	setA := make(map[string]struct{}, len(wa))
	for _, w := range wa {
		setA[w] = struct{}{}
	}

	inter := 0
	union := len(setA)
	seenB := make(map[string]struct{}, len(wb))
	for _, w := range wb {
		if _, ok := seenB[w]; ok {
			continue
		}
		seenB[w] = struct{}{}
		if _, ok := setA[w]; ok {
			inter++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
