package fields

import "strings"

const (
	DefaultEmploymentType = "full-time"
	DefaultLocationType   = "onsite"
	DefaultDepartment     = "general"
)

type keywordRule struct {
	category string
	keywords []string
}

// The inference tables below are ordered: the first category with any
// keyword present anywhere in the text wins.
var employmentTypeRules = []keywordRule{
	{"contract", []string{"contract", "contractor", "freelance", "temporary", "fixed term", "fixed-term"}},
	{"part-time", []string{"part-time", "part time"}},
	{"internship", []string{"internship", "intern", "placement"}},
	{"apprenticeship", []string{"apprenticeship", "apprentice"}},
	{"full-time", []string{"full-time", "full time", "permanent"}},
}

var locationTypeRules = []keywordRule{
	{"remote", []string{"remote", "work from home", "wfh", "fully distributed", "anywhere"}},
	{"hybrid", []string{"hybrid"}},
	{"onsite", []string{"onsite", "on-site", "on site", "in office", "office based", "office-based"}},
}

var departmentRules = []keywordRule{
	{"engineering", []string{"engineer", "developer", "software", "devops", "sre", "architect", "programmer"}},
	{"data", []string{"data", "analytics", "machine learning", "scientist", "statistician"}},
	{"design", []string{"designer", "design", "ux", "ui"}},
	{"product", []string{"product"}},
	{"marketing", []string{"marketing", "seo", "content", "brand", "social media"}},
	{"sales", []string{"sales", "account executive", "business development"}},
	{"finance", []string{"finance", "accounting", "accountant", "payroll", "audit"}},
	{"hr", []string{"human resources", "recruitment", "recruiter", "talent", "people operations"}},
	{"operations", []string{"operations", "logistics", "supply chain", "procurement"}},
	{"support", []string{"support", "customer service", "helpdesk", "customer success"}},
}

func InferEmploymentType(text string) string {
	return inferCategory(text, employmentTypeRules, DefaultEmploymentType)
}

func InferLocationType(text string) string {
	return inferCategory(text, locationTypeRules, DefaultLocationType)
}

func InferDepartment(text string) string {
	return inferCategory(text, departmentRules, DefaultDepartment)
}

func inferCategory(text string, rules []keywordRule, fallback string) string {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return fallback
}
