package search

import (
	"strings"

	"hireall/internal/fields"
)

type QueryContext struct {
	Original   string
	Normalized string
	Variants   []string
}

const maxVariants = 10

// ProcessQuery normalizes a listing search query the same way posting titles
// are normalized, then expands it with known title synonyms.
func ProcessQuery(input string) QueryContext {
	ctx := QueryContext{Original: input}
	ctx.Normalized = fields.NormalizeTitle(input)
	if ctx.Normalized == "" {
		ctx.Variants = []string{}
		return ctx
	}
	ctx.Variants = ExpandQuery(ctx.Normalized)
	return ctx
}

func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	// Replace a leading one- or two-word phrase that has synonyms, keeping
	// the rest of the query. "backend manchester" gains "back end manchester".
	words := strings.Fields(normalized)
	tryPrefix := func(phrase string, rest []string) {
		syns := GetSynonyms(phrase)
		if len(syns) == 0 {
			return
		}
		restStr := strings.Join(rest, " ")
		for _, syn := range syns {
			if restStr == "" {
				add(syn)
				continue
			}
			add(syn + " " + restStr)
		}
	}
	if len(words) >= 1 {
		tryPrefix(words[0], words[1:])
	}
	if len(words) >= 2 {
		tryPrefix(words[0]+" "+words[1], words[2:])
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}
