package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sjsage522/competitorshots/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write([]byte("fresh"))
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	fetcher := NewImageFetcher(helpers.NewClient("Mozilla/5.0 (test)", time.Second))
	dir := t.TempDir()

	// Success overwrites an existing file
	dest := filepath.Join(dir, "screenshot_1.jpg")
	require.NoError(t, os.WriteFile(dest, []byte("stale content"), 0644))
	assert.True(t, fetcher.Fetch(context.Background(), server.URL+"/ok.png", dest))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))

	// Non-200 leaves no file behind
	missing := filepath.Join(dir, "screenshot_2.jpg")
	assert.False(t, fetcher.Fetch(context.Background(), server.URL+"/denied.png", missing))
	assert.NoFileExists(t, missing)

	// Write failure is reported, not raised
	unwritable := filepath.Join(dir, "no-such-dir", "screenshot_3.jpg")
	assert.False(t, fetcher.Fetch(context.Background(), server.URL+"/ok.png", unwritable))
}
