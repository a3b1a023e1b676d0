package helpers

import (
	"context"
	"fmt"
	"time"
)

// ScreenshotFilename returns the file name for the screenshot at the given 1-based rank
func ScreenshotFilename(prefix string, rank int) string {
	return fmt.Sprintf("%sscreenshot_%d.jpg", prefix, rank)
}

// Pause blocks for d or until ctx is done. It returns false if ctx ended first.
func Pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
