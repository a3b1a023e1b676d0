// Package registry holds the tracked competitors and their marketplace listings.
package registry

import (
	"fmt"
	"os"

	"sjsage522/competitorshots/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Source names a place a competitor is listed
type Source string

const (
	// SourceCafeBazaar is marketplace-A
	SourceCafeBazaar Source = "cafebazaar"
	// SourceMyket is marketplace-B
	SourceMyket Source = "myket"
	// SourceWebsite is the competitor's own site; recorded but not scraped
	SourceWebsite Source = "website"
)

// Marketplaces lists the sources with a screenshot locator, in processing order
var Marketplaces = []Source{SourceCafeBazaar, SourceMyket}

// Valid reports whether s belongs to the known source vocabulary
func (s Source) Valid() bool {
	switch s {
	case SourceCafeBazaar, SourceMyket, SourceWebsite:
		return true
	}
	return false
}

// Competitor is one tracked rival application
type Competitor struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Sources map[Source]string `yaml:"sources"`
}

// URL returns the listing URL for a source and whether it is present
func (c Competitor) URL(source Source) (string, bool) {
	u, ok := c.Sources[source]
	return u, ok && u != ""
}

// MarketplaceCount returns how many marketplace sources the competitor has
func (c Competitor) MarketplaceCount() int {
	n := 0
	for _, source := range Marketplaces {
		if _, ok := c.URL(source); ok {
			n++
		}
	}
	return n
}

// Registry is an ordered, read-only set of competitors
type Registry struct {
	competitors []Competitor
	index       map[string]int
}

// New builds a registry, rejecting empty or duplicate ids and unknown sources.
// URLs themselves are not validated.
func New(competitors []Competitor) (*Registry, error) {
	r := &Registry{
		competitors: make([]Competitor, 0, len(competitors)),
		index:       make(map[string]int, len(competitors)),
	}

	for i, c := range competitors {
		if c.ID == "" {
			return nil, errors.NewRegistry(fmt.Sprintf("competitor #%d has no id", i+1), nil)
		}
		if _, dup := r.index[c.ID]; dup {
			return nil, errors.NewRegistry(fmt.Sprintf("duplicate competitor id %q", c.ID), nil)
		}
		for source := range c.Sources {
			if !source.Valid() {
				return nil, errors.NewRegistry(fmt.Sprintf("competitor %q has unknown source %q", c.ID, source), nil)
			}
		}
		if c.Name == "" {
			c.Name = c.ID
		}
		r.index[c.ID] = len(r.competitors)
		r.competitors = append(r.competitors, c)
	}

	return r, nil
}

// Load reads a registry from a YAML file
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewRegistry("failed to read registry file "+path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML registry document of the form
//
//	competitors:
//	  - id: doriyar
//	    name: Doriyar
//	    sources:
//	      cafebazaar: https://cafebazaar.ir/app/com.servicapp
func Parse(data []byte) (*Registry, error) {
	var doc struct {
		Competitors []Competitor `yaml:"competitors"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewRegistry("failed to decode registry", err)
	}
	return New(doc.Competitors)
}

// All returns the competitors in registry order
func (r *Registry) All() []Competitor {
	out := make([]Competitor, len(r.competitors))
	copy(out, r.competitors)
	return out
}

// Get returns the competitor with the given id
func (r *Registry) Get(id string) (Competitor, bool) {
	i, ok := r.index[id]
	if !ok {
		return Competitor{}, false
	}
	return r.competitors[i], true
}

// Len returns the number of competitors
func (r *Registry) Len() int {
	return len(r.competitors)
}
