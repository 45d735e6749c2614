package scraper

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hireall/internal/posting"
)

// Sink receives the labeled fragments one page resolved to. The pipeline
// plugs the extraction usecase in here; tests plug in a recorder.
type Sink interface {
	Consume(ctx context.Context, frags posting.Fragments, source string) error
}

// Site is one job board adapter. Each adapter owns its selector strategy
// and hands every resolved page to the sink.
type Site interface {
	Name() string
	Scrape(ctx context.Context, pages, workers int) (Stats, error)
}

type Stats struct {
	Pages    int
	Postings int
	Errors   int
}

const defaultUserAgent = "Mozilla/5.0 (compatible; hireall-bot/1.0)"

func httpHeaders(userAgent string) map[string]string {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	return map[string]string{
		"User-Agent":      userAgent,
		"Accept-Language": "en-GB,en;q=0.9",
	}
}

func httpGetWithRetry(ctx context.Context, client *http.Client, url, userAgent string, attempts int) ([]byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var body []byte
	var lastErr error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		for k, v := range httpHeaders(userAgent) {
			req.Header.Set(k, v)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
			continue
		}
		func() {
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				return
			}
			b, err := readAllLimit(resp.Body, 5<<20)
			if err != nil {
				lastErr = err
				return
			}
			lastErr = nil
			body = b
		}()
		if lastErr == nil {
			return body, nil
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return nil, lastErr
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

// normalizeURL drops fragments and tracking noise so the same posting
// always lands on the same row.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/")
}

func hostFromBaseURL(base, fallback string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return fallback
	}
	host := u.Host
	if host == "" {
		return fallback
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
