package usecase

import (
	"context"

	"hireall/internal/repository"
)

type StatusUsecase interface {
	PipelineSummary(ctx context.Context) (repository.PipelineSummary, error)
}

type Status struct {
	stats repository.StatsRepository
	cache Cache
}

func NewStatusUsecase(stats repository.StatsRepository, cache Cache) *Status {
	return &Status{stats: stats, cache: cache}
}

const statusCacheKey = "status:pipeline"

func (u *Status) PipelineSummary(ctx context.Context) (repository.PipelineSummary, error) {
	if u.cache != nil {
		var cached repository.PipelineSummary
		if hit, err := u.cache.GetJSON(ctx, statusCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	summary, err := u.stats.GetPipelineSummary(ctx)
	if err != nil {
		return repository.PipelineSummary{}, err
	}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, statusCacheKey, summary, 0)
	}
	return summary, nil
}
