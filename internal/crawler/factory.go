package crawler

import (
	"time"

	"sjsage522/competitorshots/config"
	"sjsage522/competitorshots/helpers"
	"sjsage522/competitorshots/internal/registry"
	"sjsage522/competitorshots/logger"
	"sjsage522/competitorshots/services/cache"
)

// screenshotKeywords mark an image source as a screenshot
var screenshotKeywords = []string{"screenshot", "screen"}

// CreateCrawlers creates one screenshot crawler per marketplace
func CreateCrawlers(cfg *config.Config, cacheSvc cache.CacheService) map[registry.Source]Crawler {
	client := helpers.NewClient(cfg.UserAgent, cfg.RequestTimeout)

	crawlers := make(map[registry.Source]Crawler)
	for _, crawlerConfig := range marketplaceConfigs(cfg) {
		crawlers[crawlerConfig.Provider] = NewScreenshotCrawler(crawlerConfig, client, cacheSvc, cfg.InterRequestDelay)
	}

	for source, c := range crawlers {
		logger.Debug("Crawler %s ready for %s", c.GetName(), source)
	}

	return crawlers
}

// marketplaceConfigs defines the per-marketplace selection patterns
func marketplaceConfigs(cfg *config.Config) []CrawlerConfig {
	blockTime := int(cfg.RateLimitBlock / time.Second)

	return []CrawlerConfig{
		{
			// Cafe Bazaar crawler configuration
			Provider:  registry.SourceCafeBazaar,
			CacheKey:  "cafebazaar_rate_limited",
			BlockTime: blockTime,
			Patterns: []string{
				"img.screenshot",
				"img.app-screenshot",
				"img.screenshot-image",
				"img[data-src]",
				"img[src]",
			},
			Keywords:       screenshotKeywords,
			MaxScreenshots: cfg.MaxScreenshotsPerSource,
		},
		{
			// Myket crawler configuration
			Provider:  registry.SourceMyket,
			CacheKey:  "myket_rate_limited",
			BlockTime: blockTime,
			Patterns: []string{
				"img.screenshot",
				"img.app-screenshot",
				"img[data-src]",
				"img[src]",
			},
			Keywords:       screenshotKeywords,
			MaxScreenshots: cfg.MaxScreenshotsPerSource,
		},
	}
}
