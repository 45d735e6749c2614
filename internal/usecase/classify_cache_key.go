package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"hireall/internal/posting"
)

type classifyCacheKeyInput struct {
	NormalizedTitle string   `json:"normalized_title"`
	Department      string   `json:"department"`
	Seniority       string   `json:"seniority"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
}

// ClassifyCacheKey hashes every record field the scorer reads, so only
// records that would classify identically share a cache entry.
func ClassifyCacheKey(rec *posting.JobRecord) string {
	in := classifyCacheKeyInput{
		NormalizedTitle: normalizeCacheValue(rec.NormalizedTitle),
		Department:      normalizeCacheValue(rec.Department),
		Seniority:       normalizeCacheValue(rec.Seniority),
		Description:     normalizeCacheValue(rec.Description),
	}
	for _, kw := range rec.Keywords {
		kw = normalizeCacheValue(kw)
		if kw == "" {
			continue
		}
		in.Keywords = append(in.Keywords, kw)
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "classify:" + hex.EncodeToString(sum[:])
}

func normalizeCacheValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
