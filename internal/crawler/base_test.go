package crawler

import (
	"net/url"
	"strings"
	"testing"

	"sjsage522/competitorshots/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	base, err := url.Parse("https://site.example/app/x")
	require.NoError(t, err)

	tests := []struct {
		ref  string
		want string
	}{
		{"img/shot1.png", "https://site.example/app/img/shot1.png"},
		{"/static/screen.png", "https://site.example/static/screen.png"},
		{"//cdn.example/screen.png", "https://cdn.example/screen.png"},
		{"https://other.example/a/screenshot.webp", "https://other.example/a/screenshot.webp"},
		{"  img/padded_screen.png ", "https://site.example/app/img/padded_screen.png"},
		{"img/screen_50%.png", "https://site.example/app/img/screen_50%25.png"},
	}

	for _, tt := range tests {
		got, err := ResolveURL(base, tt.ref)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.ref)
	}

	_, err = ResolveURL(base, "http://[::1")
	assert.Error(t, err)
}

func TestCreateDocument(t *testing.T) {
	c := BaseCrawler{Provider: registry.SourceCafeBazaar}
	doc, err := c.createDocument(strings.NewReader(`<img class="screenshot" src="a.png">`))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("img.screenshot").Length())

	// An empty body parses into an empty document
	doc, err = c.createDocument(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("img").Length())
}

func TestGetName(t *testing.T) {
	c := BaseCrawler{Provider: registry.SourceMyket}
	assert.Equal(t, "myket-screenshots", c.GetName())
	assert.Equal(t, registry.SourceMyket, c.GetProvider())
}
