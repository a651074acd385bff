// Package ports defines the interfaces the application layer depends on.
// Infrastructure packages provide the implementations; the application
// never imports them directly.
package ports

import (
	"context"

	"colorboard/domain/core/aggregates"
	"colorboard/domain/events"
)

// BoardStore persists board snapshots. One snapshot per client slot; a
// save overwrites the previous snapshot wholesale.
type BoardStore interface {
	// Load returns the stored snapshot for the client, or (nil, nil)
	// when the client has no saved board yet.
	Load(ctx context.Context, clientID string) (*aggregates.Snapshot, error)

	// Save overwrites the client's stored snapshot.
	Save(ctx context.Context, clientID string, snapshot aggregates.Snapshot) error

	// Delete removes the client's stored snapshot. Missing is not an error.
	Delete(ctx context.Context, clientID string) error
}

// EventPublisher pushes domain events to interested consumers.
// Publishing is best-effort; board mutations never fail on a publisher
// error.
type EventPublisher interface {
	Publish(ctx context.Context, events []events.DomainEvent) error
}

// Completer produces a completion for a prompt from an upstream language
// model. Implementations own the transport, credentials and timeout.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// BoardRenderer rasterizes a board snapshot to an image.
type BoardRenderer interface {
	RenderPNG(ctx context.Context, snapshot aggregates.Snapshot) ([]byte, error)
}

// ImageSearcher finds stock images for a query. The local variant serves
// deterministic placeholder results.
type ImageSearcher interface {
	Search(ctx context.Context, query string, count int) ([]ImageResult, error)
}

// ImageResult is one hit from an image search.
type ImageResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Alt          string `json:"alt"`
	Credit       string `json:"credit,omitempty"`
}
