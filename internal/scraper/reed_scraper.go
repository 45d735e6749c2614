package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"hireall/internal/config"
	"hireall/internal/logger"
	"hireall/internal/posting"
)

// ReedScraper pulls postings from the Reed jobseeker API. The search
// endpoint returns truncated descriptions, so every hit gets a detail
// fetch before it reaches the sink.
type ReedScraper struct {
	sink      Sink
	client    *http.Client
	apiBase   string
	userAgent string
	delay     time.Duration
}

func NewReedScraper(sink Sink, cfg config.ScraperConfig) *ReedScraper {
	return &ReedScraper{
		sink:      sink,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		apiBase:   "https://www.reed.co.uk/api/1.0",
		userAgent: cfg.UserAgent,
		delay:     cfg.RequestDelay,
	}
}

// NewReedScraperWithBaseURL points the adapter at a different API root,
// with credentials carried as URL userinfo when the API needs them.
func NewReedScraperWithBaseURL(sink Sink, cfg config.ScraperConfig, apiBase string) *ReedScraper {
	s := NewReedScraper(sink, cfg)
	if strings.TrimSpace(apiBase) != "" {
		s.apiBase = strings.TrimRight(strings.TrimSpace(apiBase), "/")
	}
	return s
}

func (s *ReedScraper) Name() string { return "reed" }

type reedSearchResponse struct {
	Results      []reedSearchResult `json:"results"`
	TotalResults int                `json:"totalResults"`
}

type reedSearchResult struct {
	JobID         int     `json:"jobId"`
	EmployerName  string  `json:"employerName"`
	JobTitle      string  `json:"jobTitle"`
	LocationName  string  `json:"locationName"`
	MinimumSalary float64 `json:"minimumSalary"`
	MaximumSalary float64 `json:"maximumSalary"`
	Date          string  `json:"date"`
	JobURL        string  `json:"jobUrl"`
}

type reedJobDetail struct {
	JobID          int     `json:"jobId"`
	EmployerName   string  `json:"employerName"`
	JobTitle       string  `json:"jobTitle"`
	LocationName   string  `json:"locationName"`
	MinimumSalary  float64 `json:"minimumSalary"`
	MaximumSalary  float64 `json:"maximumSalary"`
	Currency       string  `json:"currency"`
	SalaryType     string  `json:"salaryType"`
	ContractType   string  `json:"contractType"`
	FullTime       bool    `json:"fullTime"`
	PartTime       bool    `json:"partTime"`
	DatePosted     string  `json:"datePosted"`
	JobDescription string  `json:"jobDescription"`
	ExternalURL    string  `json:"externalUrl"`
	JobURL         string  `json:"jobUrl"`
}

func (s *ReedScraper) Scrape(ctx context.Context, pages, workers int) (Stats, error) {
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
				logger.Warn().Err(err).Msg("reed item failed")
				itemErrors++
				continue
			}
			postings++
		}
	}()

	const pageSize = 100
	var submitErr error
pageLoop:
	for page := 0; page < pages; page++ {
		hits, err := s.fetchSearchPage(ctx, page*pageSize, pageSize)
		if err != nil {
			logger.Warn().Err(err).Int("page", page).Msg("reed search page failed")
			stats.Errors++
			continue
		}
		stats.Pages++
		for _, hit := range hits {
			hit := hit
			if hit.JobID == 0 {
				continue
			}
			submitErr = pool.Submit(ctx, func(ctx context.Context) error {
				detail, err := s.fetchJobDetail(ctx, hit.JobID)
				if err != nil {
					return fmt.Errorf("reed job %d: %w", hit.JobID, err)
				}
				return s.sink.Consume(ctx, reedFragments(hit, detail), s.Name())
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

func (s *ReedScraper) fetchSearchPage(ctx context.Context, skip, take int) ([]reedSearchResult, error) {
	u := fmt.Sprintf("%s/search?resultsToSkip=%d&resultsToTake=%d", s.apiBase, skip, take)
	body, err := httpGetWithRetry(ctx, s.client, u, s.userAgent, 3)
	if err != nil {
		return nil, err
	}
	var out reedSearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (s *ReedScraper) fetchJobDetail(ctx context.Context, id int) (reedJobDetail, error) {
	u := fmt.Sprintf("%s/jobs/%d", s.apiBase, id)
	body, err := httpGetWithRetry(ctx, s.client, u, s.userAgent, 3)
	if err != nil {
		return reedJobDetail{}, err
	}
	var out reedJobDetail
	if err := json.Unmarshal(body, &out); err != nil {
		return reedJobDetail{}, err
	}
	return out, nil
}

func reedFragments(hit reedSearchResult, detail reedJobDetail) posting.Fragments {
	return posting.Fragments{
		Title:              pickNonEmpty(detail.JobTitle, hit.JobTitle),
		Company:            pickNonEmpty(detail.EmployerName, hit.EmployerName),
		Location:           pickNonEmpty(detail.LocationName, hit.LocationName),
		URL:                normalizeURL(pickNonEmpty(detail.ExternalURL, pickNonEmpty(detail.JobURL, hit.JobURL))),
		DescriptionHTML:    detail.JobDescription,
		SalaryText:         reedSalaryText(detail),
		EmploymentTypeText: reedEmploymentText(detail),
		PostedDate:         pickNonEmpty(detail.DatePosted, hit.Date),
	}
}

// reedSalaryText rebuilds a salary phrase from the API's numeric fields so
// the posting extractor parses it with the same patterns it uses for
// free-text pages.
func reedSalaryText(d reedJobDetail) string {
	if d.MinimumSalary <= 0 && d.MaximumSalary <= 0 {
		return ""
	}
	period := "per annum"
	switch strings.ToLower(strings.TrimSpace(d.SalaryType)) {
	case "hourly", "per hour":
		period = "per hour"
	case "daily", "per day":
		period = "per day"
	}
	min := d.MinimumSalary
	max := d.MaximumSalary
	if min <= 0 {
		min = max
	}
	if max <= 0 || max < min {
		max = min
	}
	if min == max {
		// The salary parser has no single-amount daily pattern, so a flat
		// day rate goes out as a degenerate range.
		if period == "per day" {
			return fmt.Sprintf("£%s - £%s %s", formatAmount(min), formatAmount(max), period)
		}
		return fmt.Sprintf("£%s %s", formatAmount(min), period)
	}
	return fmt.Sprintf("£%s - £%s %s", formatAmount(min), formatAmount(max), period)
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func reedEmploymentText(d reedJobDetail) string {
	switch {
	case d.PartTime && !d.FullTime:
		return "part-time"
	case strings.EqualFold(d.ContractType, "contract"):
		return "contract"
	case d.FullTime:
		return "full-time"
	default:
		return strings.TrimSpace(d.ContractType)
	}
}
