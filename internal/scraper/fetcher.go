package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; KitchenSwipe/1.0)"

// PageFetcher downloads a page and returns the raw contents of its
// application/ld+json script blocks.
type PageFetcher interface {
	FetchJSONLD(ctx context.Context, pageURL string) ([]string, error)
}

type collyFetcher struct {
	timeout   time.Duration
	userAgent string
}

func NewPageFetcher(timeout time.Duration) PageFetcher {
	return &collyFetcher{timeout: timeout, userAgent: defaultUserAgent}
}

func (f *collyFetcher) FetchJSONLD(ctx context.Context, pageURL string) ([]string, error) {
	// Collectors remember visited URLs, so each fetch gets its own.
	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.StdlibContext(ctx),
	)
	if f.timeout > 0 {
		c.SetRequestTimeout(f.timeout)
	}

	var blocks []string
	c.OnHTML(`script[type="application/ld+json"]`, func(e *colly.HTMLElement) {
		blocks = append(blocks, e.Text)
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	c.Wait()

	return blocks, nil
}
