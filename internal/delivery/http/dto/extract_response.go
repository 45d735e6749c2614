package dto

import (
	"github.com/google/uuid"

	"hireall/internal/posting"
	"hireall/internal/soc"
	"hireall/internal/usecase"
)

type ExtractResponse struct {
	JobID uuid.UUID          `json:"job_id"`
	Job   *posting.JobRecord `json:"job"`
	Match *soc.Match         `json:"match"`
}

func ExtractFromResult(res usecase.ExtractResult) ExtractResponse {
	return ExtractResponse{JobID: res.JobID, Job: res.Record, Match: res.Match}
}
