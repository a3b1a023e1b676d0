package crawler

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"sjsage522/competitorshots/helpers"
	"sjsage522/competitorshots/internal/registry"
	"sjsage522/competitorshots/logger"
	"sjsage522/competitorshots/pkg/errors"
	"sjsage522/competitorshots/services/cache"

	"github.com/PuerkitoBio/goquery"
)

// BaseCrawler provides common functionality for all crawlers
type BaseCrawler struct {
	Provider  registry.Source
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration
	Client    *helpers.Client
	log       *logger.Logger
}

// fetchWithCache fetches a listing page unless the marketplace is currently
// blocked after an earlier rate-limit response.
func (c *BaseCrawler) fetchWithCache(ctx context.Context, listingURL string) (io.Reader, error) {
	// Check if the crawler is rate limited
	if c.CacheSvc != nil && c.CacheKey != "" {
		if _, err := c.CacheSvc.Get(c.CacheKey); err == nil {
			return nil, errors.New(errors.ErrorTypeRateLimit, string(c.Provider),
				fmt.Sprintf("blocked for up to %v after an earlier rate limit", c.BlockTime), nil)
		}
	}

	body, err := c.Client.FetchPage(ctx, listingURL)
	if err != nil {
		// A zero expiration never expires in memcache, so no block is recorded
		if c.CacheSvc != nil && c.CacheKey != "" && c.BlockTime > 0 && errors.IsType(err, errors.ErrorTypeRateLimit) {
			value := []byte(fmt.Sprintf("%d", int(c.BlockTime/time.Second)))
			if setErr := c.CacheSvc.Set(c.CacheKey, value, c.BlockTime); setErr != nil {
				c.log.Debug().Err(setErr).Msg("Failed to set rate limit cache")
			}
		}
		return nil, err
	}

	return body, nil
}

// createDocument creates a goquery document from a reader
func (c *BaseCrawler) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, errors.NewParsing(string(c.Provider), "failed to parse listing HTML", err)
	}
	return doc, nil
}

// ResolveURL resolves ref against the listing page URL.
// A '%' that does not start a valid escape is kept literally as %25.
func ResolveURL(base *url.URL, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	refURL, err := url.Parse(ref)
	if err != nil {
		refURL, err = url.Parse(escapeStrayPercent(ref))
		if err != nil {
			return "", err
		}
	}
	return base.ResolveReference(refURL).String(), nil
}

// escapeStrayPercent rewrites every '%' not followed by two hex digits as %25
func escapeStrayPercent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// GetName returns the crawler's name for logging
func (c *BaseCrawler) GetName() string {
	return string(c.Provider) + "-screenshots"
}

// GetProvider returns the marketplace served by the crawler
func (c *BaseCrawler) GetProvider() registry.Source {
	return c.Provider
}
