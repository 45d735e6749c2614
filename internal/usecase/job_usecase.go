package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hireall/internal/logger"
	"hireall/internal/posting"
	"hireall/internal/repository"
	"hireall/internal/search"
	"hireall/internal/soc"
)

var ErrNoExtractableJob = errors.New("no extractable job posting")

type JobUsecase interface {
	ExtractAndClassify(ctx context.Context, frags posting.Fragments, source string) (ExtractResult, error)
	Classify(ctx context.Context, rec *posting.JobRecord) (*soc.Match, error)
	List(ctx context.Context, limit, offset int) ([]repository.StoredJob, error)
	Search(ctx context.Context, query string, limit int) ([]repository.StoredJob, error)
	Get(ctx context.Context, id uuid.UUID) (repository.StoredJob, error)
}

type ExtractResult struct {
	JobID  uuid.UUID
	Record *posting.JobRecord
	Match  *soc.Match
}

type Jobs struct {
	jobs        repository.JobRepository
	occupations repository.OccupationRepository
	cache       Cache
}

func NewJobUsecase(jobs repository.JobRepository, occupations repository.OccupationRepository, cache Cache) *Jobs {
	return &Jobs{jobs: jobs, occupations: occupations, cache: cache}
}

// ExtractAndClassify runs the full posting path: structured extraction,
// taxonomy classification, persistence. A titleless page is a definite miss
// and reported as ErrNoExtractableJob; a failed classification is not, the
// record is stored unclassified.
func (u *Jobs) ExtractAndClassify(ctx context.Context, frags posting.Fragments, source string) (ExtractResult, error) {
	rec := posting.Extract(frags)
	if rec == nil {
		return ExtractResult{}, ErrNoExtractableJob
	}

	match, err := u.Classify(ctx, rec)
	if err != nil {
		logger.Warn().Err(err).Str("title", rec.Title).Msg("classification skipped")
		match = nil
	}

	id, err := u.jobs.Upsert(ctx, rec, source, match)
	if err != nil {
		return ExtractResult{}, err
	}
	return ExtractResult{JobID: id, Record: rec, Match: match}, nil
}

// Classify matches the record against the stored taxonomy, with a cache in
// front. A cache hit that holds a null match is still a hit: "no code fits
// this title" is a cacheable answer.
func (u *Jobs) Classify(ctx context.Context, rec *posting.JobRecord) (*soc.Match, error) {
	if rec == nil {
		return nil, nil
	}

	key := ClassifyCacheKey(rec)
	if u.cache != nil {
		var cached *soc.Match
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	entries, err := u.occupations.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	match := soc.Classify(rec, entries)
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, match, 0); err != nil {
			logger.Warn().Err(err).Msg("classification cache write failed")
		}
	}
	return match, nil
}

func (u *Jobs) List(ctx context.Context, limit, offset int) ([]repository.StoredJob, error) {
	return u.jobs.List(ctx, limit, offset)
}

// Search ranks recent postings against the expanded query instead of paging
// in stored order. Ranking happens over a bounded window of recent rows.
func (u *Jobs) Search(ctx context.Context, query string, limit int) ([]repository.StoredJob, error) {
	if limit <= 0 {
		limit = 20
	}

	qc := search.ProcessQuery(query)
	if len(qc.Variants) == 0 {
		return u.jobs.List(ctx, limit, 0)
	}

	const searchWindow = 50
	jobs, err := u.jobs.List(ctx, searchWindow, 0)
	if err != nil {
		return nil, err
	}

	ranked := search.RankJobs(jobs, qc.Variants)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (repository.StoredJob, error) {
	return u.jobs.GetByID(ctx, id)
}
