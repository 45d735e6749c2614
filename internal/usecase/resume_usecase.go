package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"hireall/internal/repository"
	"hireall/internal/resume"
)

var ErrEmptyResume = errors.New("empty resume text")

type ResumeUsecase interface {
	Parse(ctx context.Context, userID uuid.UUID, text string) (uuid.UUID, resume.ParseResult, error)
	Get(ctx context.Context, id uuid.UUID) (repository.StoredResume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]repository.StoredResume, error)
}

type Resumes struct {
	resumes repository.ResumeRepository
}

func NewResumeUsecase(resumes repository.ResumeRepository) *Resumes {
	return &Resumes{resumes: resumes}
}

// Parse runs the resume extraction pipeline and stores the result. Parsing
// itself never fails; only blank input and storage errors are reported.
func (u *Resumes) Parse(ctx context.Context, userID uuid.UUID, text string) (uuid.UUID, resume.ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return uuid.Nil, resume.ParseResult{}, ErrEmptyResume
	}

	result := resume.Parse(text)
	id, err := u.resumes.Insert(ctx, userID, result)
	if err != nil {
		return uuid.Nil, resume.ParseResult{}, err
	}
	return id, result, nil
}

func (u *Resumes) Get(ctx context.Context, id uuid.UUID) (repository.StoredResume, error) {
	return u.resumes.GetByID(ctx, id)
}

func (u *Resumes) ListByUser(ctx context.Context, userID uuid.UUID) ([]repository.StoredResume, error) {
	return u.resumes.ListByUser(ctx, userID)
}
