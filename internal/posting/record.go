package posting

import "hireall/internal/fields"

// Fragments is the set of labeled strings a page adapter resolved from one
// posting. Only Title is required; everything else may be empty.
type Fragments struct {
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	URL                string `json:"url"`
	DescriptionHTML    string `json:"description_html"`
	SalaryText         string `json:"salary_text"`
	EmploymentTypeText string `json:"employment_type_text"`
	SeniorityText      string `json:"seniority_text"`
	CompanySize        string `json:"company_size"`
	PostedDate         string `json:"posted_date"`
}

// JobRecord is the structured posting: the raw scraped fields plus the
// enhancement-derived ones. Enhancement fields are filled exactly once by
// Extract; a JobRecord is never handed out partially enhanced.
type JobRecord struct {
	Title       string         `json:"title"`
	Company     string         `json:"company"`
	Location    string         `json:"location"`
	URL         string         `json:"url"`
	Description string         `json:"description"`
	Salary      *fields.Salary `json:"salary,omitempty"`
	CompanySize string         `json:"company_size"`
	PostedDate  string         `json:"posted_date"`

	NormalizedTitle string   `json:"normalized_title"`
	Keywords        []string `json:"keywords"`
	Skills          []string `json:"skills"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
	Qualifications  []string `json:"qualifications"`
	Department      string   `json:"department"`
	Seniority       string   `json:"seniority"`
	EmploymentType  string   `json:"employment_type"`
	LocationType    string   `json:"location_type"`
}
