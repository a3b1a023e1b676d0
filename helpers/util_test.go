package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScreenshotFilename(t *testing.T) {
	assert.Equal(t, "screenshot_1.jpg", ScreenshotFilename("", 1))
	assert.Equal(t, "screenshot_10.jpg", ScreenshotFilename("", 10))
	assert.Equal(t, "myket_screenshot_2.jpg", ScreenshotFilename("myket_", 2))
}

func TestPause(t *testing.T) {
	assert.True(t, Pause(context.Background(), 0))
	assert.True(t, Pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, Pause(ctx, time.Hour))
	assert.False(t, Pause(ctx, 0))
}
