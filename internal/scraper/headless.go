package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// harvestJobLinks renders a listing page in headless Chrome and pulls out
// the anchors whose href contains pathFilter. Used when the static markup
// carries no links because the board renders its listings client-side.
func harvestJobLinks(ctx context.Context, pageURL, baseURL, pathFilter, userAgent string) ([]string, error) {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(userAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	script := fmt.Sprintf(`Array.from(document.querySelectorAll('a[href]'))
		.map(a => a.getAttribute('href'))
		.filter(h => h && h.includes(%q))`, pathFilter)

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(script, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(baseURL, "/")
	seen := map[string]struct{}{}
	out := make([]string, 0, len(hrefs))
	for _, h := range hrefs {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		switch {
		case strings.HasPrefix(h, "http://"), strings.HasPrefix(h, "https://"):
		case strings.HasPrefix(h, "/"):
			h = base + h
		default:
			h = base + "/" + h
		}
		u := normalizeURL(h)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no job links found (headless)")
	}
	return out, nil
}
