package provider

import (
	"context"

	"github.com/tacogips/setupguide/internal/repo/model"
)

// Provider abstracts repository sources (GitHub, local filesystem, etc.).
type Provider interface {
	// Fetch returns the repository metadata and its shallow root listing.
	Fetch(ctx context.Context, ref model.RepoRef) (*model.Snapshot, error)

	// Readme returns the raw README.md content of the repository.
	Readme(ctx context.Context, ref model.RepoRef) (string, error)

	// Resolve converts a URL string to a RepoRef.
	// The URL format depends on the provider (e.g., GitHub URL, local path).
	Resolve(url string) (model.RepoRef, error)

	// Name returns the provider name (e.g., "github", "local").
	Name() string
}
