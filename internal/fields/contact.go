package fields

import (
	"regexp"
	"strings"
)

type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Location string `json:"location"`
}

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{1,4}\)[\s.\-]?)?\d{3,5}[\s.\-]?\d{3,4}(?:[\s.\-]?\d{3,4})?`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9\-_%]+)`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9\-_]+)`)
	handleRe   = regexp.MustCompile(`(?:^|\s)@([A-Za-z0-9\-_]{2,})`)
	websiteRe  = regexp.MustCompile(`(?i)https?://[^\s|,;]+`)

	// nameRe accepts 2-4 capitalized words so that a leading company name or
	// headline does not get mistaken for a person.
	nameRe = regexp.MustCompile(`^([A-Z][A-Za-z'\-]+)(\s+[A-Z][A-Za-z'\-]+){1,3}$`)

	locationLineRe = regexp.MustCompile(`^[A-Z][A-Za-z .'\-]+,\s*[A-Z][A-Za-z .'\-]*$`)
)

// ExtractContact pulls contact details from resume text. Every field is
// extracted independently; a miss leaves the field empty.
func ExtractContact(text string) Contact {
	out := Contact{}

	if m := emailRe.FindString(text); m != "" {
		out.Email = strings.TrimSpace(m)
	}
	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		out.LinkedIn = m[1]
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		out.GitHub = m[1]
	}
	if out.GitHub == "" && out.LinkedIn == "" {
		if m := handleRe.FindStringSubmatch(text); m != nil {
			out.GitHub = m[1]
		}
	}
	out.Website = findWebsite(text)
	out.Phone = findPhone(text)

	lines := strings.Split(text, "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if nameRe.MatchString(line) {
			out.Name = line
		}
		break
	}

	// Location: scan the top of the document for a "City, Region" line.
	for i, raw := range lines {
		if i >= 10 {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" || line == out.Name {
			continue
		}
		if locationLineRe.MatchString(line) {
			out.Location = line
			break
		}
	}

	return out
}

func findWebsite(text string) string {
	for _, m := range websiteRe.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return strings.TrimRight(m, ".,)")
	}
	return ""
}

// findPhone requires at least 9 digits so that dates and postcodes do not
// pass as phone numbers.
func findPhone(text string) string {
	for _, m := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 9 && digits <= 15 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}
