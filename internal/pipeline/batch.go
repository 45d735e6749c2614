package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"hireall/internal/config"
	"hireall/internal/logger"
	"hireall/internal/posting"
	"hireall/internal/scraper"
	"hireall/internal/usecase"
	"hireall/internal/ws"
)

type BatchParams struct {
	Pages   int
	Workers int
}

var ErrBatchAlreadyRunning = errors.New("batch pipeline already running")

const (
	batchLockKey = "pipeline:batch:lock"
	batchLockTTL = 30 * time.Minute
)

// BatchPipeline runs the full posting path across every configured board:
// scrape, extract, classify, persist. One bad page never aborts the batch.
type BatchPipeline struct {
	jobs  usecase.JobUsecase
	cache usecase.Cache
	cfg   config.ScraperConfig
	sites func(scraper.Sink) []scraper.Site
}

func NewBatchPipeline(jobs usecase.JobUsecase, cache usecase.Cache, cfg config.ScraperConfig) *BatchPipeline {
	return &BatchPipeline{
		jobs:  jobs,
		cache: cache,
		cfg:   cfg,
		sites: func(sink scraper.Sink) []scraper.Site {
			return []scraper.Site{
				scraper.NewReedScraperWithBaseURL(sink, cfg, cfg.ReedAPIBase),
				scraper.NewTotaljobsScraper(sink, cfg),
			}
		},
	}
}

func (p *BatchPipeline) Run(ctx context.Context, params BatchParams) error {
	if p == nil {
		return nil
	}
	start := time.Now()
	if params.Workers <= 0 {
		params.Workers = p.cfg.Workers
	}

	if p.cache != nil {
		acquired, err := p.cache.SetIfNotExists(ctx, batchLockKey, "1", batchLockTTL)
		if err != nil {
			return err
		}
		if !acquired {
			return ErrBatchAlreadyRunning
		}
		defer func() {
			_ = p.cache.Delete(context.Background(), batchLockKey)
		}()
	}

	logger.Info().Msg("batch pipeline started")
	defer func() {
		logger.Info().Dur("duration", time.Since(start)).Msg("batch pipeline finished")
	}()

	sink := &usecaseSink{jobs: p.jobs}
	for _, site := range p.sites(sink) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.runSite(ctx, site, params, sink)
	}
	return nil
}

func (p *BatchPipeline) runSite(ctx context.Context, site scraper.Site, params BatchParams, sink *usecaseSink) {
	name := site.Name()
	sink.reset(name)
	ws.Notify(ws.PipelineEvent{Type: ws.EventBatchStarted, Source: name})

	stats, err := site.Scrape(ctx, params.Pages, params.Workers)
	processed, failed := sink.counts()
	if err != nil {
		logger.Warn().Err(err).Str("source", name).Msg("site scrape failed")
	}

	logger.Info().
		Str("source", name).
		Int("pages", stats.Pages).
		Int("processed", processed).
		Int("failed", failed+stats.Errors).
		Msg("site scrape finished")
	ws.Notify(ws.PipelineEvent{
		Type:      ws.EventBatchFinished,
		Source:    name,
		Processed: processed,
		Failed:    failed + stats.Errors,
	})
}

// usecaseSink feeds scraped fragments into the extraction usecase and
// counts outcomes for progress reporting.
type usecaseSink struct {
	jobs usecase.JobUsecase

	mu        sync.Mutex
	source    string
	processed int
	failed    int
}

func (s *usecaseSink) reset(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = source
	s.processed = 0
	s.failed = 0
}

func (s *usecaseSink) counts() (processed, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed, s.failed
}

func (s *usecaseSink) Consume(ctx context.Context, frags posting.Fragments, source string) error {
	res, err := s.jobs.ExtractAndClassify(ctx, frags, source)
	if err != nil {
		s.mu.Lock()
		s.failed++
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.processed++
	processed := s.processed
	s.mu.Unlock()

	evt := ws.PipelineEvent{
		Type:      ws.EventJobProcessed,
		Source:    source,
		Title:     res.Record.Title,
		Processed: processed,
	}
	if res.Match != nil {
		evt.SOCCode = res.Match.Code
	}
	ws.Notify(evt)
	return nil
}
