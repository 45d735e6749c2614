package dto

import (
	"time"

	"github.com/google/uuid"

	"hireall/internal/repository"
	"hireall/internal/resume"
)

type ResumeResponse struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	Parsed          resume.ParseResult `json:"parsed"`
	ParseConfidence int                `json:"parse_confidence"`
	WordCount       int                `json:"word_count"`
	CreatedAt       time.Time          `json:"created_at"`
}

func ResumeFromStored(r repository.StoredResume) ResumeResponse {
	return ResumeResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Parsed:          r.Parsed,
		ParseConfidence: r.ParseConfidence,
		WordCount:       r.WordCount,
		CreatedAt:       r.CreatedAt,
	}
}
