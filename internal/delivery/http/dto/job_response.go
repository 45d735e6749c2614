package dto

import (
	"time"

	"github.com/google/uuid"

	"hireall/internal/repository"
)

type SalaryResponse struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
	Period   string  `json:"period"`
}

type ClassificationResponse struct {
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

type JobResponse struct {
	ID              uuid.UUID               `json:"id"`
	Title           string                  `json:"title"`
	Company         string                  `json:"company"`
	Location        string                  `json:"location"`
	URL             string                  `json:"url"`
	Source          string                  `json:"source"`
	Description     string                  `json:"description"`
	Salary          *SalaryResponse         `json:"salary"`
	NormalizedTitle string                  `json:"normalized_title"`
	Keywords        []string                `json:"keywords"`
	Skills          []string                `json:"skills"`
	Department      string                  `json:"department"`
	Seniority       string                  `json:"seniority"`
	EmploymentType  string                  `json:"employment_type"`
	LocationType    string                  `json:"location_type"`
	Classification  *ClassificationResponse `json:"classification"`
	CreatedAt       time.Time               `json:"created_at"`
}

func JobFromStored(j repository.StoredJob) JobResponse {
	out := JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Company:         j.Company,
		Location:        j.Location,
		URL:             j.URL,
		Source:          j.Source,
		Description:     j.Description,
		NormalizedTitle: j.NormTitle,
		Keywords:        j.Keywords,
		Skills:          j.Skills,
		Department:      j.Department,
		Seniority:       j.Seniority,
		EmploymentType:  j.Employment,
		LocationType:    j.LocationType,
		CreatedAt:       j.CreatedAt,
	}
	if j.SalaryMin.Valid || j.SalaryMax.Valid {
		out.Salary = &SalaryResponse{
			Min:      j.SalaryMin.Float64,
			Max:      j.SalaryMax.Float64,
			Currency: j.Currency,
			Period:   j.Period,
		}
	}
	if j.SOCCode != "" {
		out.Classification = &ClassificationResponse{Code: j.SOCCode, Confidence: j.SOCConfidence}
	}
	return out
}
