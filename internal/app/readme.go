package app

import (
	"context"
	"fmt"

	"github.com/tacogips/setupguide/internal/debug"
	"github.com/tacogips/setupguide/internal/repo/provider"
)

// ReadmeOptions holds options for fetching a README.
type ReadmeOptions struct {
	// URL is the repository URL or local path.
	URL string
	// Provider is used when set; otherwise the provider owning URL is built
	// from ProviderOptions.Config. A single fetch needs no cache.
	Provider provider.Provider
	// ProviderOptions configures the provider built when Provider is nil.
	ProviderOptions ProviderOptions
	// MaxChars truncates the README (0 = no truncation).
	MaxChars int
}

// Readme fetches the repository's README.md, truncated to MaxChars runes.
func Readme(ctx context.Context, opts ReadmeOptions) (string, error) {
	debug.DebugSection("[app] Readme workflow start")
	debug.DebugValue("[app] URL", opts.URL)
	debug.DebugValue("[app] Max chars", opts.MaxChars)

	if opts.URL == "" {
		return "", NewValidationError("repository URL or path is required", nil)
	}
	if opts.MaxChars < 0 {
		return "", NewValidationError(fmt.Sprintf("max chars cannot be negative: %d", opts.MaxChars), nil)
	}

	url := NormalizeRepoURL(opts.URL)

	p := opts.Provider
	if p == nil {
		var err error
		p, err = provider.NewProviderWithConfig(url, opts.ProviderOptions.Config)
		if err != nil {
			return "", NewResolveError(fmt.Sprintf("failed to resolve %s", opts.URL), err)
		}
		debug.DebugValue("[app] Provider", p.Name())
	}

	ref, err := p.Resolve(url)
	if err != nil {
		return "", NewResolveError(fmt.Sprintf("failed to resolve %s", opts.URL), err)
	}

	content, err := p.Readme(ctx, ref)
	if err != nil {
		debug.Debug("[app] Failed to fetch README: %v", err)
		return "", NewReadmeError(fmt.Sprintf("failed to fetch README of %s", describeRef(ref.Owner, ref.Repo)), err)
	}

	return TruncateReadme(content, opts.MaxChars), nil
}
