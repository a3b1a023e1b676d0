package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"sjsage522/competitorshots/helpers"
	"sjsage522/competitorshots/internal/crawler"
	"sjsage522/competitorshots/internal/registry"
	"sjsage522/competitorshots/logger"
	"sjsage522/competitorshots/pkg/errors"
	"sjsage522/competitorshots/services/publisher"
)

// Summary totals one run
type Summary struct {
	Competitors int
	Passes      int
	Discovered  int
	Downloaded  int
	Failed      int
}

// Worker walks the registry and runs the marketplace crawlers for each competitor
type Worker struct {
	registry             *registry.Registry
	crawlers             map[registry.Source]crawler.Crawler
	publisher            publisher.Publisher
	outputRoot           string
	interCompetitorDelay time.Duration
	log                  *logger.Logger
}

// NewWorker creates a new worker. pub may be nil.
func NewWorker(
	reg *registry.Registry,
	crawlers map[registry.Source]crawler.Crawler,
	pub publisher.Publisher,
	outputRoot string,
	interCompetitorDelay time.Duration,
) *Worker {
	return &Worker{
		registry:             reg,
		crawlers:             crawlers,
		publisher:            pub,
		outputRoot:           outputRoot,
		interCompetitorDelay: interCompetitorDelay,
		log:                  logger.ForWorker(),
	}
}

// Run processes every competitor in registry order. Individual failures are
// logged and never stop the run; the only early exit is ctx cancellation.
func (w *Worker) Run(ctx context.Context) Summary {
	var summary Summary
	start := time.Now()

	for _, competitor := range w.registry.All() {
		if ctx.Err() != nil {
			w.log.Warn().Msg("Run interrupted")
			break
		}

		w.processCompetitor(ctx, competitor, &summary)
		summary.Competitors++

		if !helpers.Pause(ctx, w.interCompetitorDelay) {
			w.log.Warn().Msg("Run interrupted")
			break
		}
	}

	if w.publisher != nil {
		if err := w.publisher.TrimStreams(); err != nil {
			w.log.Error().Err(err).Msg("Failed to trim report stream")
		}
	}

	w.log.Info().
		Int("competitors", summary.Competitors).
		Int("passes", summary.Passes).
		Int("discovered", summary.Discovered).
		Int("downloaded", summary.Downloaded).
		Int("failed", summary.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("✅ Done")

	return summary
}

// processCompetitor runs every applicable marketplace crawler for one competitor
func (w *Worker) processCompetitor(ctx context.Context, competitor registry.Competitor, summary *Summary) {
	log := w.log.WithField("competitor", competitor.ID)
	log.Info().Str("name", competitor.Name).Msg("Processing competitor")

	dir := filepath.Join(w.outputRoot, competitor.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Error().Err(errors.NewFilesystem(competitor.ID, "failed to create "+dir, err)).Msg("Skipping competitor")
		return
	}

	// Prefix file names only when two marketplaces share the directory
	shared := competitor.MarketplaceCount() > 1

	for _, source := range registry.Marketplaces {
		listingURL, ok := competitor.URL(source)
		if !ok {
			continue
		}
		c, ok := w.crawlers[source]
		if !ok {
			log.Warn().Str("source", string(source)).Msg("No crawler for marketplace")
			continue
		}

		prefix := ""
		if shared {
			prefix = string(source) + "_"
		}

		log.Info().Str("source", string(source)).Str("url", listingURL).Msg("📱 Processing marketplace")
		report := c.Locate(ctx, listingURL, dir, prefix)
		report.Competitor = competitor.ID

		summary.Passes++
		summary.Discovered += len(report.Discovered)
		summary.Downloaded += len(report.Downloaded)
		summary.Failed += report.Failed

		w.publish(report)
	}

	if website, ok := competitor.URL(registry.SourceWebsite); ok {
		// Website scraping is not implemented; the URL is only recorded
		log.Info().Str("url", website).Msg("🌐 Website recorded, not scraped")
	}
}

// publish sends the pass report when a publisher is configured
func (w *Worker) publish(report *crawler.Report) {
	if w.publisher == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to marshal report")
		return
	}

	key := report.Competitor + "/" + string(report.Source)
	if err := w.publisher.Publish(key, data); err != nil {
		w.log.Error().Err(err).Str("key", key).Msg("Failed to publish report")
	}
}
