// Package soc matches normalized job records against the UK standard
// occupational classification taxonomy.
package soc

// OccupationCode is one taxonomy entry. The list is externally sourced and
// read-only to the scorer.
type OccupationCode struct {
	Code            string   `json:"code"`
	Title           string   `json:"title"`
	RelatedTitles   []string `json:"related_titles"`
	EligibilityNote string   `json:"eligibility_note"`
}

// Match is the scored best-match result for one classification call.
type Match struct {
	Code            string   `json:"code"`
	Title           string   `json:"title"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
	RelatedTitles   []string `json:"related_titles"`
	EligibilityNote string   `json:"eligibility_note"`
}
