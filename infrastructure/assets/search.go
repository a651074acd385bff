// Package assets serves stock-image search results. The placeholder
// searcher returns deterministic seeded URLs so the editor's image picker
// works without an external image provider.
package assets

import (
	"context"
	"fmt"
	"net/url"

	"colorboard/application/ports"
)

// PlaceholderSearcher implements ports.ImageSearcher with seeded
// placeholder images
type PlaceholderSearcher struct{}

// NewPlaceholderSearcher creates a placeholder image searcher
func NewPlaceholderSearcher() *PlaceholderSearcher {
	return &PlaceholderSearcher{}
}

// Search returns count deterministic placeholder results for the query
func (s *PlaceholderSearcher) Search(ctx context.Context, query string, count int) ([]ports.ImageResult, error) {
	if count <= 0 {
		count = 8
	}
	seed := url.QueryEscape(query)
	out := make([]ports.ImageResult, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, ports.ImageResult{
			URL:          fmt.Sprintf("https://picsum.photos/seed/%s-%d/800/600", seed, i),
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s-%d/200/150", seed, i),
			Alt:          query,
			Credit:       "Lorem Picsum",
		})
	}
	return out, nil
}
