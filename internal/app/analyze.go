package app

import (
	"context"
	"fmt"

	"github.com/tacogips/setupguide/internal/debug"
	"github.com/tacogips/setupguide/internal/repo/model"
	"github.com/tacogips/setupguide/internal/repo/provider"
	"github.com/tacogips/setupguide/internal/setup"
)

// AnalyzeOptions holds options for analyzing a repository.
type AnalyzeOptions struct {
	// URL is the repository URL or local path.
	URL string
	// Provider is used when set; otherwise one is built from ProviderOptions.
	Provider provider.Provider
	// ProviderOptions configures the provider built when Provider is nil.
	ProviderOptions ProviderOptions
	// IncludeReadme also fetches README.md.
	IncludeReadme bool
	// ReadmeMaxChars truncates the README (0 = no truncation).
	ReadmeMaxChars int
}

// AnalyzeResult holds the result of a repository analysis.
type AnalyzeResult struct {
	// Ref is the resolved repository reference.
	Ref model.RepoRef `json:"ref" yaml:"ref"`
	// Metadata is the repository metadata.
	Metadata model.RepoMetadata `json:"metadata" yaml:"metadata"`
	// Manifest is the root listing the analysis ran on.
	Manifest model.FileManifest `json:"-" yaml:"-"`
	// Tags are the detected technologies, language first.
	Tags setup.TagSet `json:"-" yaml:"-"`
	// Plan is the synthesized setup plan.
	Plan setup.Plan `json:"plan" yaml:"plan"`
	// Readme is the (possibly truncated) README content when requested.
	Readme string `json:"readme,omitempty" yaml:"readme,omitempty"`
	// ReadmeErr is why a requested README could not be fetched. An empty
	// README leaves it nil.
	ReadmeErr error `json:"-" yaml:"-"`
}

// Analyze resolves a repository, fetches its snapshot, classifies it and
// synthesizes the setup plan.
func Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	debug.DebugSection("[app] Analyze workflow start")
	debug.DebugValue("[app] URL", opts.URL)
	debug.DebugValue("[app] Include README", opts.IncludeReadme)

	if opts.URL == "" {
		return nil, NewValidationError("repository URL or path is required", nil)
	}

	p := opts.Provider
	if p == nil {
		debug.Debug("[app] Creating repository provider")
		p = NewProvider(opts.ProviderOptions)
	}

	return analyzeWith(ctx, p, opts)
}

// analyzeWith runs the analysis against an existing provider so batches can
// share one provider (and its cache).
func analyzeWith(ctx context.Context, p provider.Provider, opts AnalyzeOptions) (*AnalyzeResult, error) {
	url := NormalizeRepoURL(opts.URL)
	debug.DebugValue("[app] Normalized URL", url)

	ref, err := p.Resolve(url)
	if err != nil {
		debug.Debug("[app] Failed to resolve URL: %v", err)
		return nil, NewResolveError(fmt.Sprintf("failed to resolve %s", opts.URL), err)
	}
	debug.DebugValue("[app] Resolved repository", ref.FullName())

	snap, err := p.Fetch(ctx, ref)
	if err != nil {
		debug.Debug("[app] Failed to fetch repository: %v", err)
		return nil, NewFetchError(fmt.Sprintf("failed to fetch %s", describeRef(ref.Owner, ref.Repo)), err)
	}
	debug.DebugValue("[app] Root entries", snap.Manifest.Len())
	debug.DebugValue("[app] Language", snap.Metadata.Language)

	analysis := setup.Analyze(setup.Target{
		Owner:    snap.Ref.Owner,
		Repo:     snap.Ref.Repo,
		CloneURL: snap.Ref.CloneURL,
	}, snap.Manifest, snap.Metadata.Language)
	debug.DebugValue("[app] Detected technologies", analysis.Tags.Strings())
	debug.DebugValue("[app] Plan steps", len(analysis.Plan))

	result := &AnalyzeResult{
		Ref:      snap.Ref,
		Metadata: snap.Metadata,
		Manifest: snap.Manifest,
		Tags:     analysis.Tags,
		Plan:     analysis.Plan,
	}

	if opts.IncludeReadme {
		readme, err := p.Readme(ctx, snap.Ref)
		if err != nil {
			// A missing README does not invalidate the plan.
			debug.Debug("[app] README unavailable: %v", err)
			result.ReadmeErr = err
		} else {
			result.Readme = TruncateReadme(readme, opts.ReadmeMaxChars)
		}
	}

	debug.Debug("[app] Analyze workflow completed")
	return result, nil
}
