package search

// Synonyms maps a normalized query phrase to the title variants UK boards
// commonly use for the same role.
var Synonyms = map[string][]string{
	"software engineer":  {"software developer", "programmer", "developer"},
	"software developer": {"software engineer", "programmer", "developer"},
	"frontend":           {"front end", "frontend developer", "ui developer"},
	"backend":            {"back end", "backend developer", "server side developer"},
	"devops":             {"devops engineer", "site reliability engineer", "platform engineer"},
	"data scientist":     {"data analyst", "machine learning engineer"},
	"qa":                 {"test engineer", "quality assurance", "tester"},
	"solicitor":          {"lawyer", "legal counsel"},
	"accountant":         {"chartered accountant", "management accountant", "finance officer"},
	"nurse":              {"registered nurse", "staff nurse"},
	"care assistant":     {"care worker", "support worker", "carer"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	if v, ok := Synonyms[query]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
