package crawler

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"sjsage522/competitorshots/helpers"
	"sjsage522/competitorshots/logger"
	"sjsage522/competitorshots/pkg/errors"
	"sjsage522/competitorshots/services/cache"

	"github.com/PuerkitoBio/goquery"
)

// ScreenshotCrawler locates screenshot images on a marketplace listing page.
// Marketplaces differ only in their Patterns.
type ScreenshotCrawler struct {
	BaseCrawler
	Patterns          []string
	Keywords          []string
	MaxScreenshots    int
	InterRequestDelay time.Duration
	Fetcher           *ImageFetcher
}

// NewScreenshotCrawler creates a new screenshot crawler
func NewScreenshotCrawler(config CrawlerConfig, client *helpers.Client, cacheSvc cache.CacheService, interRequestDelay time.Duration) *ScreenshotCrawler {
	return &ScreenshotCrawler{
		BaseCrawler: BaseCrawler{
			Provider:  config.Provider,
			CacheKey:  config.CacheKey,
			CacheSvc:  cacheSvc,
			BlockTime: time.Duration(config.BlockTime) * time.Second,
			Client:    client,
			log:       logger.ForCrawler(string(config.Provider)),
		},
		Patterns:          config.Patterns,
		Keywords:          config.Keywords,
		MaxScreenshots:    config.MaxScreenshots,
		InterRequestDelay: interRequestDelay,
		Fetcher:           NewImageFetcher(client),
	}
}

// Locate fetches the listing page, collects screenshot URLs and downloads
// the first MaxScreenshots of them into outputDir.
func (c *ScreenshotCrawler) Locate(ctx context.Context, listingURL, outputDir, filePrefix string) *Report {
	report := &Report{
		Source:     c.Provider,
		ListingURL: listingURL,
		Discovered: []string{},
		Downloaded: []string{},
	}

	screenshots, err := c.FindScreenshots(ctx, listingURL)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("url", listingURL).
			Bool("retryable", errors.Retryable(err)).
			Msg("Failed to extract screenshots")
		report.Error = err.Error()
		return report
	}
	report.Discovered = screenshots

	c.log.Info().
		Str("url", listingURL).
		Int("found", len(screenshots)).
		Msg("Located screenshots")

	limit := min(len(screenshots), c.MaxScreenshots)
	for i, screenshotURL := range screenshots[:limit] {
		filename := helpers.ScreenshotFilename(filePrefix, i+1)
		if c.Fetcher.Fetch(ctx, screenshotURL, filepath.Join(outputDir, filename)) {
			c.log.Info().Str("file", filename).Msgf("✓ downloaded: %s", filename)
			report.Downloaded = append(report.Downloaded, filename)
		} else {
			report.Failed++
		}

		if !helpers.Pause(ctx, c.InterRequestDelay) {
			c.log.Warn().Str("url", listingURL).Msg("Interrupted, stopping downloads")
			break
		}
	}

	return report
}

// FindScreenshots fetches and parses the listing page and returns the unique
// absolute screenshot URLs in first-seen order.
func (c *ScreenshotCrawler) FindScreenshots(ctx context.Context, listingURL string) ([]string, error) {
	pageURL, err := url.Parse(listingURL)
	if err != nil {
		return nil, errors.NewNetwork(string(c.Provider), "invalid listing URL", err)
	}

	body, err := c.fetchWithCache(ctx, listingURL)
	if err != nil {
		return nil, err
	}

	doc, err := c.createDocument(body)
	if err != nil {
		return nil, err
	}

	return c.extractScreenshots(doc, pageURL), nil
}

// extractScreenshots applies every pattern in order. An element matched by
// several patterns is tested again each time but recorded once.
func (c *ScreenshotCrawler) extractScreenshots(doc *goquery.Document, pageURL *url.URL) []string {
	screenshots := []string{}
	seen := make(map[string]struct{})

	for _, pattern := range c.Patterns {
		doc.Find(pattern).Each(func(_ int, s *goquery.Selection) {
			src := imageSource(s)
			if src == "" || !c.matchesKeyword(src) {
				return
			}

			fullURL, err := ResolveURL(pageURL, src)
			if err != nil {
				c.log.Debug().Err(err).Str("src", src).Msg("Skipping unresolvable image source")
				return
			}

			if _, dup := seen[fullURL]; dup {
				return
			}
			seen[fullURL] = struct{}{}
			screenshots = append(screenshots, fullURL)
		})
	}

	return screenshots
}

// matchesKeyword reports whether the lowercased source contains any keyword
func (c *ScreenshotCrawler) matchesKeyword(src string) bool {
	lower := strings.ToLower(src)
	for _, keyword := range c.Keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// imageSource prefers a non-empty data-src over src
func imageSource(s *goquery.Selection) string {
	if dataSrc, exists := s.Attr("data-src"); exists && dataSrc != "" {
		return dataSrc
	}
	src, _ := s.Attr("src")
	return src
}
