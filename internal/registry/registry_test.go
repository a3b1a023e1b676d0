package registry

import (
	"os"
	"path/filepath"
	"testing"

	"sjsage522/competitorshots/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, 5, r.Len())

	ids := make([]string, 0, r.Len())
	for _, c := range r.All() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"doriyar", "mashin-man", "khodroyar", "soupop", "virazh"}, ids)

	soupop, ok := r.Get("soupop")
	require.True(t, ok)
	assert.Equal(t, 0, soupop.MarketplaceCount())
	_, hasWebsite := soupop.URL(SourceWebsite)
	assert.True(t, hasWebsite)

	doriyar, _ := r.Get("doriyar")
	assert.Equal(t, 2, doriyar.MarketplaceCount())

	_, ok = r.Get("unknown")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	doc := `
competitors:
  - id: beta
    name: Beta App
    sources:
      myket: https://myket.example/app/beta
  - id: alpha
    sources:
      website: https://alpha.example
      cafebazaar: not a url at all
`
	r, err := Parse([]byte(doc))
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "beta", all[0].ID)
	assert.Equal(t, "Beta App", all[0].Name)
	assert.Equal(t, "alpha", all[1].ID)
	// Name falls back to the id
	assert.Equal(t, "alpha", all[1].Name)

	// URLs are not validated
	u, ok := all[1].URL(SourceCafeBazaar)
	assert.True(t, ok)
	assert.Equal(t, "not a url at all", u)
}

func TestParseRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", "competitors:\n  - name: nameless\n"},
		{"duplicate id", "competitors:\n  - id: a\n  - id: a\n"},
		{"unknown source", "competitors:\n  - id: a\n    sources:\n      playstore: https://play.example\n"},
		{"malformed yaml", "competitors: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeRegistry))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "competitors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("competitors:\n  - id: solo\n    sources:\n      myket: https://myket.example/app/solo\n"), 0644))

	r, err := Load(path)
	require.NoError(t, err)
	solo, ok := r.Get("solo")
	require.True(t, ok)
	assert.Equal(t, 1, solo.MarketplaceCount())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
