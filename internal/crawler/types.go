package crawler

import (
	"context"

	"sjsage522/competitorshots/internal/registry"
)

// Report describes one locator pass over a single listing page
type Report struct {
	Competitor string          `json:"competitor,omitempty"`
	Source     registry.Source `json:"source"`
	ListingURL string          `json:"listing_url"`
	Discovered []string        `json:"discovered"`
	Downloaded []string        `json:"downloaded"`
	Failed     int             `json:"failed"`
	Error      string          `json:"error,omitempty"`
}

// Crawler interface defines the contract for a marketplace screenshot locator
type Crawler interface {
	// Locate finds screenshot URLs on a listing page and downloads up to the
	// configured cap into outputDir, naming files <filePrefix>screenshot_<n>.jpg.
	// Failures are logged and reflected in the report, never returned.
	Locate(ctx context.Context, listingURL, outputDir, filePrefix string) *Report

	// GetName returns the crawler's name for logging and identification
	GetName() string

	// GetProvider returns the marketplace the crawler serves
	GetProvider() registry.Source
}

// CrawlerConfig contains configuration for a crawler
type CrawlerConfig struct {
	Provider  registry.Source
	CacheKey  string
	BlockTime int

	// Patterns are goquery selectors tried in order; narrower ones first
	Patterns []string

	// Keywords are matched case-insensitively against each image source
	Keywords []string

	// MaxScreenshots caps downloads per pass
	MaxScreenshots int
}
