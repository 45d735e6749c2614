package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"hireall/internal/config"
	"hireall/internal/posting"
	"hireall/internal/repository"
	"hireall/internal/scraper"
	"hireall/internal/soc"
	"hireall/internal/usecase"
)

type fakeJobs struct {
	calls   int
	sources []string
}

func (f *fakeJobs) ExtractAndClassify(_ context.Context, frags posting.Fragments, source string) (usecase.ExtractResult, error) {
	f.calls++
	f.sources = append(f.sources, source)
	rec := posting.Extract(frags)
	if rec == nil {
		return usecase.ExtractResult{}, usecase.ErrNoExtractableJob
	}
	return usecase.ExtractResult{JobID: uuid.New(), Record: rec}, nil
}

func (f *fakeJobs) Classify(_ context.Context, _ *posting.JobRecord) (*soc.Match, error) {
	return nil, nil
}

func (f *fakeJobs) List(_ context.Context, _, _ int) ([]repository.StoredJob, error) {
	return nil, nil
}

func (f *fakeJobs) Search(_ context.Context, _ string, _ int) ([]repository.StoredJob, error) {
	return nil, nil
}

func (f *fakeJobs) Get(_ context.Context, _ uuid.UUID) (repository.StoredJob, error) {
	return repository.StoredJob{}, repository.ErrJobNotFound
}

type fakeSite struct {
	name  string
	frags []posting.Fragments
	sink  scraper.Sink
}

func (s *fakeSite) Name() string { return s.name }

func (s *fakeSite) Scrape(ctx context.Context, _, _ int) (scraper.Stats, error) {
	var stats scraper.Stats
	stats.Pages = 1
	for _, f := range s.frags {
		if err := s.sink.Consume(ctx, f, s.name); err != nil {
			stats.Errors++
			continue
		}
		stats.Postings++
	}
	return stats, nil
}

func TestBatchPipeline_IsolatesBadPages(t *testing.T) {
	jobs := &fakeJobs{}
	p := NewBatchPipeline(jobs, nil, config.ScraperConfig{Workers: 2})
	p.sites = func(sink scraper.Sink) []scraper.Site {
		return []scraper.Site{&fakeSite{
			name: "fakeboard",
			sink: sink,
			frags: []posting.Fragments{
				{Title: "Software Engineer"},
				{},
				{Title: "Data Analyst"},
			},
		}}
	}

	if err := p.Run(context.Background(), BatchParams{Pages: 1}); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if jobs.calls != 3 {
		t.Fatalf("usecase called %d times, want 3", jobs.calls)
	}
	for _, src := range jobs.sources {
		if src != "fakeboard" {
			t.Fatalf("source = %q", src)
		}
	}
}

func TestBatchPipeline_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewBatchPipeline(&fakeJobs{}, nil, config.ScraperConfig{})
	if err := p.Run(ctx, BatchParams{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

type fakeLockCache struct {
	held map[string]string
}

func (c *fakeLockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) { return false, nil }

func (c *fakeLockCache) SetJSON(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

func (c *fakeLockCache) Delete(_ context.Context, key string) error {
	delete(c.held, key)
	return nil
}

func (c *fakeLockCache) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if c.held == nil {
		c.held = map[string]string{}
	}
	if _, ok := c.held[key]; ok {
		return false, nil
	}
	c.held[key] = value
	return true, nil
}

func TestBatchPipeline_RefusesConcurrentRun(t *testing.T) {
	cache := &fakeLockCache{}
	if _, err := cache.SetIfNotExists(context.Background(), batchLockKey, "1", 0); err != nil {
		t.Fatalf("seed lock: %v", err)
	}

	p := NewBatchPipeline(&fakeJobs{}, cache, config.ScraperConfig{})
	if err := p.Run(context.Background(), BatchParams{Pages: 1}); !errors.Is(err, ErrBatchAlreadyRunning) {
		t.Fatalf("err = %v", err)
	}
}

func TestBatchPipeline_ReleasesLock(t *testing.T) {
	jobs := &fakeJobs{}
	cache := &fakeLockCache{}
	p := NewBatchPipeline(jobs, cache, config.ScraperConfig{Workers: 1})
	p.sites = func(sink scraper.Sink) []scraper.Site {
		return []scraper.Site{&fakeSite{name: "fakeboard", sink: sink}}
	}

	if err := p.Run(context.Background(), BatchParams{Pages: 1}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if _, ok := cache.held[batchLockKey]; ok {
		t.Fatalf("lock still held after run")
	}
}
