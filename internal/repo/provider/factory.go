package provider

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tacogips/setupguide/internal/repo/model"
)

// ProviderConfig holds the settings used to build providers.
type ProviderConfig struct {
	// GitHubToken is the optional GitHub personal access token.
	GitHubToken string
	// GitHubAPIURL overrides the GitHub API base URL.
	GitHubAPIURL string
	// Timeout bounds each remote request.
	Timeout time.Duration
	// BaseDir is the base directory for resolving local paths.
	BaseDir string
}

// NewProviderWithConfig creates the provider owning url: local for paths,
// GitHub for everything else.
func NewProviderWithConfig(url string, config ProviderConfig) (Provider, error) {
	if url == "" {
		return nil, fmt.Errorf("URL or path cannot be empty")
	}

	if IsLocalPath(url) {
		return newLocalFromConfig(config), nil
	}
	return newGitHubFromConfig(config), nil
}

func newLocalFromConfig(config ProviderConfig) *LocalProvider {
	if config.BaseDir != "" {
		return NewLocalProviderWithBase(config.BaseDir)
	}
	return NewLocalProvider()
}

func newGitHubFromConfig(config ProviderConfig) *GitHubProvider {
	return NewGitHubProviderWithOptions(GitHubOptions{
		Token:   config.GitHubToken,
		APIURL:  config.GitHubAPIURL,
		Timeout: config.Timeout,
	})
}

// GetGitHubTokenFromEnv retrieves the GitHub token from environment variables.
// Checks GITHUB_TOKEN first, then falls back to GH_TOKEN.
func GetGitHubTokenFromEnv() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}
	return ""
}

// Registry routes URLs and refs to the provider that owns them, so a single
// Provider value can serve a mix of GitHub URLs and local paths.
type Registry struct {
	GitHub Provider
	Local  Provider
}

// NewRegistry builds a registry with a GitHub and a local provider.
func NewRegistry(config ProviderConfig) *Registry {
	return &Registry{
		GitHub: newGitHubFromConfig(config),
		Local:  newLocalFromConfig(config),
	}
}

// Name returns the provider name.
func (r *Registry) Name() string {
	return "registry"
}

// Resolve hands local paths to the local provider and everything else to GitHub.
func (r *Registry) Resolve(url string) (model.RepoRef, error) {
	if url == "" {
		return model.RepoRef{}, NewInvalidURLError(r.Name(), url, fmt.Errorf("URL or path cannot be empty"))
	}
	if IsLocalPath(url) {
		return r.Local.Resolve(url)
	}
	return r.GitHub.Resolve(url)
}

// Fetch delegates by ref.Provider.
func (r *Registry) Fetch(ctx context.Context, ref model.RepoRef) (*model.Snapshot, error) {
	p, err := r.providerFor(ref)
	if err != nil {
		return nil, err
	}
	return p.Fetch(ctx, ref)
}

// Readme delegates by ref.Provider.
func (r *Registry) Readme(ctx context.Context, ref model.RepoRef) (string, error) {
	p, err := r.providerFor(ref)
	if err != nil {
		return "", err
	}
	return p.Readme(ctx, ref)
}

func (r *Registry) providerFor(ref model.RepoRef) (Provider, error) {
	switch ref.Provider {
	case r.GitHub.Name():
		return r.GitHub, nil
	case r.Local.Name():
		return r.Local, nil
	default:
		return nil, NewInvalidURLError(r.Name(), ref.FullName(),
			fmt.Errorf("no provider named %q", ref.Provider))
	}
}
