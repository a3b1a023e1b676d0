package crawler

import (
	"context"
	"os"

	"sjsage522/competitorshots/helpers"
	"sjsage522/competitorshots/logger"
	"sjsage522/competitorshots/pkg/errors"
)

// ImageFetcher downloads a single image to a file
type ImageFetcher struct {
	client *helpers.Client
	log    *logger.Logger
}

// NewImageFetcher creates an image fetcher sharing the given client
func NewImageFetcher(client *helpers.Client) *ImageFetcher {
	return &ImageFetcher{
		client: client,
		log:    logger.ForFetcher(),
	}
}

// Fetch downloads imageURL and writes the body to destPath, overwriting any
// existing file. The file is written only on a 200 response. Failures are
// logged and reported as false.
func (f *ImageFetcher) Fetch(ctx context.Context, imageURL, destPath string) bool {
	data, err := f.client.FetchBytes(ctx, imageURL)
	if err != nil {
		f.log.Error().
			Err(err).
			Str("url", imageURL).
			Bool("retryable", errors.Retryable(err)).
			Msg("Failed to download image")
		return false
	}

	// Saved with a .jpg name whatever the content type; no format check
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		f.log.Error().
			Err(errors.NewFilesystem(imageURL, "failed to write "+destPath, err)).
			Str("url", imageURL).
			Msg("Failed to save image")
		return false
	}

	return true
}
