package scraper

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"hireall/internal/config"
	"hireall/internal/logger"
	"hireall/internal/posting"
)

// TotaljobsScraper walks Totaljobs listing pages with colly and resolves
// each detail page to labeled fragments. When the static listing markup
// yields nothing the board has switched to client-side rendering, and the
// adapter falls back to a headless pass over the same page.
type TotaljobsScraper struct {
	sink        Sink
	baseURL     string
	allowedHost string
	userAgent   string
	delay       time.Duration
}

func NewTotaljobsScraper(sink Sink, cfg config.ScraperConfig) *TotaljobsScraper {
	return NewTotaljobsScraperWithBaseURL(sink, cfg, "https://www.totaljobs.com")
}

func NewTotaljobsScraperWithBaseURL(sink Sink, cfg config.ScraperConfig, baseURL string) *TotaljobsScraper {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://www.totaljobs.com"
	}
	return &TotaljobsScraper{
		sink:        sink,
		baseURL:     strings.TrimRight(baseURL, "/"),
		allowedHost: hostFromBaseURL(baseURL, "www.totaljobs.com"),
		userAgent:   cfg.UserAgent,
		delay:       cfg.RequestDelay,
	}
}

func (s *TotaljobsScraper) Name() string { return "totaljobs" }

func (s *TotaljobsScraper) Scrape(ctx context.Context, pages, workers int) (Stats, error) {
	if s == nil || s.sink == nil {
		return Stats{}, fmt.Errorf("nil scraper/sink")
	}
	if pages <= 0 {
		pages = 1
	}

	var stats Stats
	pool := NewWorkerPool(workers, workers*2)
	pool.SetRequestInterval(s.delay)
	results := pool.Run(ctx)

	// Results are drained while pages are still being submitted; draining
	// after Close would wedge the producer once the buffers fill.
	var postings, itemErrors int
	var drain sync.WaitGroup
	drain.Add(1)
	go func() {
		defer drain.Done()
		for err := range results {
			if err != nil {
				logger.Warn().Err(err).Msg("totaljobs item failed")
				itemErrors++
				continue
			}
			postings++
		}
	}()

	var submitErr error
pageLoop:
	for page := 1; page <= pages; page++ {
		listURL := fmt.Sprintf("%s/jobs?page=%d", s.baseURL, page)
		links, err := s.scrapeListingPage(ctx, listURL)
		if err == nil && len(links) == 0 {
			links, err = harvestJobLinks(ctx, listURL, s.baseURL, "/job/", s.userAgent)
		}
		if err != nil {
			logger.Warn().Err(err).Int("page", page).Msg("totaljobs listing failed")
			stats.Errors++
			continue
		}
		stats.Pages++
		for _, link := range links {
			link := link
			submitErr = pool.Submit(ctx, func(ctx context.Context) error {
				frags, err := s.scrapeDetailPage(ctx, link)
				if err != nil {
					return fmt.Errorf("totaljobs %s: %w", link, err)
				}
				return s.sink.Consume(ctx, frags, s.Name())
			})
			if submitErr != nil {
				break pageLoop
			}
		}
	}

	pool.Close()
	drain.Wait()
	stats.Postings = postings
	stats.Errors += itemErrors
	return stats, submitErr
}

func (s *TotaljobsScraper) newCollector() *colly.Collector {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: s.delay})
	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders(s.userAgent) {
			r.Headers.Set(k, v)
		}
	})
	return c
}

func (s *TotaljobsScraper) scrapeListingPage(ctx context.Context, listURL string) ([]string, error) {
	c := s.newCollector()

	links := make([]string, 0)
	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/job/") {
			return
		}
		if abs := e.Request.AbsoluteURL(href); abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, link := range links {
		u := normalizeURL(link)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out, nil
}

func (s *TotaljobsScraper) scrapeDetailPage(ctx context.Context, jobURL string) (posting.Fragments, error) {
	c := s.newCollector()

	frags := posting.Fragments{URL: normalizeURL(jobURL)}
	var reqErr error

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if frags.Title == "" {
			frags.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("[data-at=header-company-name], .company", func(e *colly.HTMLElement) {
		if frags.Company == "" {
			frags.Company = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("[data-at=job-item-location], .location", func(e *colly.HTMLElement) {
		if frags.Location == "" {
			frags.Location = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("[data-at=job-item-salary-info], .salary", func(e *colly.HTMLElement) {
		if frags.SalaryText == "" {
			frags.SalaryText = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("[data-at=job-item-work-type], .job-type", func(e *colly.HTMLElement) {
		if frags.EmploymentTypeText == "" {
			frags.EmploymentTypeText = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("[data-at=job-description], .job-description", func(e *colly.HTMLElement) {
		if frags.DescriptionHTML == "" {
			if html, err := e.DOM.Html(); err == nil {
				frags.DescriptionHTML = html
			}
		}
	})

	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return posting.Fragments{}, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return posting.Fragments{}, err
	}
	c.Wait()
	if reqErr != nil {
		return posting.Fragments{}, reqErr
	}
	return frags, nil
}
